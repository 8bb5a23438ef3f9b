package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestFromDB(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{"record not found", gorm.ErrRecordNotFound, CodeNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505"}, CodeDuplicate},
		{"wrapped fk violation", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23503"}), CodeInvalidReference},
		{"check violation", &pgconn.PgError{Code: "23514"}, CodeConstraintViolation},
		{"business passthrough", ErrBusiness(CodeInvalidState), CodeInvalidState},
		{"unknown", errors.New("connection refused"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, CodeOf(FromDB(tt.err)))
		})
	}

	assert.NoError(t, FromDB(nil))
}

func TestRespond(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"not found", ErrBusiness(CodeNotFound), http.StatusNotFound, `"error_code":"not_found"`},
		{"duplicate", &pgconn.PgError{Code: "23505"}, http.StatusConflict, `"error_code":"duplicate"`},
		{"invalid reference", &pgconn.PgError{Code: "23503"}, http.StatusUnprocessableEntity, `"error_code":"invalid_reference"`},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, `"error_code":"failed_to_save"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			Respond(c, tt.err, "failed_to_save")

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.body)
		})
	}
}
