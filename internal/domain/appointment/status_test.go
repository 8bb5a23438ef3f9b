package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/autoshop-manager/internal/httperr"
	"github.com/BruksfildServices01/autoshop-manager/internal/models"
)

func TestStatus_Valid(t *testing.T) {
	assert.True(t, StatusScheduled.Valid())
	assert.True(t, StatusCompleted.Valid())
	assert.True(t, StatusCancelled.Valid())
	assert.False(t, Status("canceled").Valid())
	assert.False(t, Status("").Valid())
}

func TestCancel(t *testing.T) {
	now := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

	ap := &models.Appointment{Status: string(StatusScheduled)}
	require.NoError(t, Cancel(ap, now))
	assert.Equal(t, "cancelled", ap.Status)
	require.NotNil(t, ap.CancelledAt)
	assert.Equal(t, now, *ap.CancelledAt)

	err := Cancel(ap, now)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState))
}

func TestComplete(t *testing.T) {
	now := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

	ap := &models.Appointment{Status: string(StatusScheduled)}
	require.NoError(t, Complete(ap, now))
	assert.Equal(t, "completed", ap.Status)
	require.NotNil(t, ap.CompletedAt)

	cancelled := &models.Appointment{Status: string(StatusCancelled)}
	err := Complete(cancelled, now)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState))
	assert.Nil(t, cancelled.CompletedAt)
}

func TestScheduleError_UnwrapsCause(t *testing.T) {
	cause := httperr.ErrBusiness(httperr.CodeNotFound)
	err := &ScheduleError{Step: StepConsumeInventory, InventoryID: 42, Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "consume_inventory")
	assert.Contains(t, err.Error(), "inventory 42")
	assert.Equal(t, httperr.CodeNotFound, httperr.CodeOf(err))
}

func TestCanTransition(t *testing.T) {
	assert.NoError(t, CanTransition(StatusScheduled, StatusCancelled))
	assert.NoError(t, CanTransition(StatusScheduled, StatusCompleted))
	assert.Error(t, CanTransition(StatusCancelled, StatusCompleted))
	assert.Error(t, CanTransition(StatusCompleted, StatusCancelled))
	assert.Error(t, CanTransition(StatusScheduled, StatusScheduled))
}
