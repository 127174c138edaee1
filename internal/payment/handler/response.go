package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/finworks/payment-portal/internal/payment/domain"
	"github.com/finworks/payment-portal/pkg/auth"
)

// Response is the envelope every endpoint returns
type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	Timestamp string      `json:"timestamp"`
}

// Pagination is attached to paginated list responses
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

// PaginatedResponse extends the envelope with pagination info
type PaginatedResponse struct {
	Response
	Pagination Pagination `json:"pagination"`
}

func newPagination(page, limit int, total int64) Pagination {
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func success(message string, data interface{}) Response {
	return Response{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

func failure(message string) Response {
	return Response{
		Success:   false,
		Error:     message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// respondError maps the error taxonomy to stable HTTP statuses. Internal
// detail is never surfaced; callers log it server-side.
func respondError(w http.ResponseWriter, err error) {
	var vErr *domain.ValidationError

	switch {
	case errors.As(err, &vErr):
		resp := failure("validation failed")
		resp.Data = map[string]interface{}{"fields": vErr.Fields}
		respondJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, domain.ErrNotFound):
		respondJSON(w, http.StatusNotFound, failure("payment not found"))
	case errors.Is(err, domain.ErrInvalidTransition):
		respondJSON(w, http.StatusBadRequest, failure(err.Error()))
	case errors.Is(err, domain.ErrInvalidReasonCode):
		respondJSON(w, http.StatusBadRequest, failure(err.Error()))
	case errors.Is(err, domain.ErrForbidden):
		respondJSON(w, http.StatusForbidden, failure("forbidden"))
	case errors.Is(err, domain.ErrConfirmationRequired):
		respondJSON(w, http.StatusLocked, failure("confirmation required for destructive actions"))
	case errors.Is(err, auth.ErrTokenExpired):
		respondJSON(w, http.StatusUnauthorized, failure("token expired"))
	case errors.Is(err, auth.ErrInvalidToken):
		respondJSON(w, http.StatusUnauthorized, failure("invalid token"))
	default:
		respondJSON(w, http.StatusInternalServerError, failure("internal error"))
	}
}
