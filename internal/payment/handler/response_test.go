package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finworks/payment-portal/internal/payment/domain"
	"github.com/finworks/payment-portal/pkg/auth"
)

func TestRespondError_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", domain.ErrNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", domain.ErrNotFound), http.StatusNotFound},
		{"invalid transition", fmt.Errorf("%w: no", domain.ErrInvalidTransition), http.StatusBadRequest},
		{"invalid reason code", domain.ErrInvalidReasonCode, http.StatusBadRequest},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"confirmation required", domain.ErrConfirmationRequired, http.StatusLocked},
		{"token expired", auth.ErrTokenExpired, http.StatusUnauthorized},
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"anything else", errors.New("pq: connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			respondError(rec, tt.err)

			assert.Equal(t, tt.status, rec.Code)

			var resp Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestRespondError_InternalDetailHidden(t *testing.T) {
	rec := httptest.NewRecorder()
	respondError(rec, errors.New("pq: password authentication failed for user postgres"))

	assert.NotContains(t, rec.Body.String(), "postgres")
	assert.Contains(t, rec.Body.String(), "internal error")
}

func TestRespondError_ValidationFields(t *testing.T) {
	vErr := &domain.ValidationError{}
	vErr.Add("iban", "invalid IBAN")
	vErr.Add("amount", "amount must be positive")

	rec := httptest.NewRecorder()
	respondError(rec, vErr)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Data struct {
			Fields []domain.FieldError `json:"fields"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Fields, 2)
	assert.Equal(t, "iban", resp.Data.Fields[0].Field)
}

func TestNewPagination(t *testing.T) {
	p := newPagination(2, 20, 45)
	assert.Equal(t, int64(3), p.Pages)

	p = newPagination(1, 20, 40)
	assert.Equal(t, int64(2), p.Pages)

	p = newPagination(1, 20, 0)
	assert.Equal(t, int64(0), p.Pages)
}
