package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/autoshop-manager/internal/audit"
	"github.com/BruksfildServices01/autoshop-manager/internal/httperr"
	"github.com/BruksfildServices01/autoshop-manager/internal/models"
)

var now = time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)

func TestCreateAppointment_Success(t *testing.T) {
	repo := new(MockAppointmentRepository)
	auditor := &recordingAuditor{}
	cache := &invalidationCounter{}

	repo.On("CreateAppointment", mock.Anything, mock.MatchedBy(func(ap *models.Appointment) bool {
		return ap.VehicleID == 2 &&
			ap.ServicePackageID == nil &&
			ap.Status == "scheduled" &&
			ap.AppointmentTime == "08:00"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Appointment).ID = 5
	}).Return(nil)

	ap, err := NewCreateAppointment(repo, auditor, cache.invalidate).Execute(context.Background(), CreateAppointmentInput{
		VehicleID: 2,
		Date:      "2026-11-01",
		Time:      "08:00",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(5), ap.ID)
	assert.Equal(t, 1, cache.calls)
	assert.Equal(t, []string{audit.ActionAppointmentCreated}, auditor.actions())
	repo.AssertExpectations(t)
}

func TestCreateAppointment_InvalidReference(t *testing.T) {
	repo := new(MockAppointmentRepository)
	repo.On("CreateAppointment", mock.Anything, mock.Anything).
		Return(httperr.ErrBusiness(httperr.CodeInvalidReference))

	_, err := NewCreateAppointment(repo, &recordingAuditor{}, nil).Execute(context.Background(), CreateAppointmentInput{
		VehicleID: 404,
		Date:      "2026-11-01",
		Time:      "08:00",
	})

	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidReference))
}

func TestCancelAppointment_Success(t *testing.T) {
	repo := new(MockAppointmentRepository)
	auditor := &recordingAuditor{}

	ap := &models.Appointment{ID: 3, Status: "scheduled"}
	repo.On("GetAppointment", mock.Anything, uint(3)).Return(ap, nil)
	repo.On("UpdateAppointment", mock.Anything, ap).Return(nil)

	out, err := NewCancelAppointment(repo, auditor, fixedClock(now), nil).Execute(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, "cancelled", out.Status)
	require.NotNil(t, out.CancelledAt)
	assert.Equal(t, now, *out.CancelledAt)
	assert.Equal(t, []string{audit.ActionAppointmentCancelled}, auditor.actions())
	repo.AssertExpectations(t)
}

func TestCancelAppointment_NotScheduled(t *testing.T) {
	repo := new(MockAppointmentRepository)
	auditor := &recordingAuditor{}

	repo.On("GetAppointment", mock.Anything, uint(3)).
		Return(&models.Appointment{ID: 3, Status: "completed"}, nil)

	_, err := NewCancelAppointment(repo, auditor, fixedClock(now), nil).Execute(context.Background(), 3)

	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState))
	assert.Empty(t, auditor.actions())
	repo.AssertNotCalled(t, "UpdateAppointment", mock.Anything, mock.Anything)
}

func TestCancelAppointment_NotFound(t *testing.T) {
	repo := new(MockAppointmentRepository)
	repo.On("GetAppointment", mock.Anything, uint(77)).
		Return(nil, httperr.ErrBusiness(httperr.CodeNotFound))

	_, err := NewCancelAppointment(repo, &recordingAuditor{}, fixedClock(now), nil).Execute(context.Background(), 77)

	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
}

func TestCompleteAppointment_Success(t *testing.T) {
	repo := new(MockAppointmentRepository)
	auditor := &recordingAuditor{}
	cache := &invalidationCounter{}

	ap := &models.Appointment{ID: 8, Status: "scheduled"}
	repo.On("GetAppointment", mock.Anything, uint(8)).Return(ap, nil)
	repo.On("UpdateAppointment", mock.Anything, ap).Return(nil)

	out, err := NewCompleteAppointment(repo, auditor, fixedClock(now), cache.invalidate).Execute(context.Background(), 8)

	require.NoError(t, err)
	assert.Equal(t, "completed", out.Status)
	require.NotNil(t, out.CompletedAt)
	assert.Equal(t, 1, cache.calls)
	assert.Equal(t, []string{audit.ActionAppointmentCompleted}, auditor.actions())
}

func TestCompleteAppointment_UpdateFailure(t *testing.T) {
	repo := new(MockAppointmentRepository)
	auditor := &recordingAuditor{}
	boom := errors.New("connection reset")

	repo.On("GetAppointment", mock.Anything, uint(8)).
		Return(&models.Appointment{ID: 8, Status: "scheduled"}, nil)
	repo.On("UpdateAppointment", mock.Anything, mock.Anything).Return(boom)

	_, err := NewCompleteAppointment(repo, auditor, fixedClock(now), nil).Execute(context.Background(), 8)

	assert.ErrorIs(t, err, boom)
	assert.Empty(t, auditor.actions())
}
