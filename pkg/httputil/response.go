package httputil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	apperrors "github.com/Jinxhater/LUXE/pkg/errors"
	"github.com/Jinxhater/LUXE/pkg/logger"
	"github.com/Jinxhater/LUXE/pkg/validator"
)

// Response is the JSON envelope returned by every storefront endpoint.
// Success responses carry Data; failures carry Error and Code.
type Response struct {
	Success    bool              `json:"success"`
	Data       any               `json:"data,omitempty"`
	Error      string            `json:"error,omitempty"`
	Code       string            `json:"code,omitempty"`
	Fields     map[string]string `json:"fields,omitempty"`
	RequestID  string            `json:"request_id,omitempty"`
	Pagination *Pagination       `json:"pagination,omitempty"`
}

// Pagination describes the page a list response was cut from.
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
}

// NewPagination computes TotalPages and HasNext for the given window.
func NewPagination(total, page, limit int) *Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = total / limit
		if total%limit > 0 {
			totalPages++
		}
	}
	return &Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
	}
}

// WriteJSON writes v as JSON with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Headers are already sent; nothing meaningful can be done if encoding fails.
	_ = json.NewEncoder(w).Encode(v)
}

// WriteData writes a success envelope around data.
func WriteData(w http.ResponseWriter, status int, data any) {
	WriteJSON(w, status, Response{Success: true, Data: data})
}

// WriteList writes a success envelope around a page of items.
func WriteList[T any](w http.ResponseWriter, items []T, p *Pagination) {
	if items == nil {
		items = []T{}
	}
	WriteJSON(w, http.StatusOK, Response{Success: true, Data: items, Pagination: p})
}

// WriteError maps err onto the envelope. AppErrors keep their status, code and
// message; bare sentinels get a generic message; anything else is a logged 500.
// The request-scoped logger from RequestLogger is preferred over fallback.
func WriteError(w http.ResponseWriter, r *http.Request, err error, fallback *slog.Logger) {
	l := logger.FromContext(r.Context())
	if l == slog.Default() && fallback != nil {
		l = fallback
	}

	requestID := logger.CorrelationIDFromContext(r.Context())

	var valErr *validator.ValidationError
	if errors.As(err, &valErr) {
		writeValidation(w, valErr, requestID)
		return
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Status >= http.StatusInternalServerError {
			logInternal(l, r, err)
		}
		WriteJSON(w, appErr.Status, Response{
			Error:     appErr.Message,
			Code:      appErr.Code,
			RequestID: requestID,
		})
		return
	}

	status := apperrors.HTTPStatus(err)
	code := "INTERNAL_ERROR"
	message := "an internal error occurred"

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		code, message = "NOT_FOUND", "resource not found"
	case errors.Is(err, apperrors.ErrAlreadyExists):
		code, message = "ALREADY_EXISTS", "resource already exists"
	case errors.Is(err, apperrors.ErrInvalidInput):
		code, message = "INVALID_INPUT", err.Error()
	case errors.Is(err, apperrors.ErrBusinessRule):
		code, message = "BUSINESS_RULE_VIOLATION", err.Error()
	case errors.Is(err, apperrors.ErrUnauthorized):
		code, message = "UNAUTHORIZED", "Not authenticated"
	case errors.Is(err, apperrors.ErrForbidden):
		code, message = "FORBIDDEN", "Forbidden"
	}

	if status == http.StatusInternalServerError {
		logInternal(l, r, err)
	}

	WriteJSON(w, status, Response{Error: message, Code: code, RequestID: requestID})
}

func logInternal(l *slog.Logger, r *http.Request, err error) {
	l.ErrorContext(r.Context(), "internal error",
		slog.String("error", err.Error()),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	)
}

// WriteValidationError writes a 400 response. Validator errors carry per-field
// messages; any other error is reported as INVALID_INPUT with its text.
func WriteValidationError(w http.ResponseWriter, err error) {
	var valErr *validator.ValidationError
	if errors.As(err, &valErr) {
		writeValidation(w, valErr, "")
		return
	}

	WriteJSON(w, http.StatusBadRequest, Response{Error: err.Error(), Code: "INVALID_INPUT"})
}

func writeValidation(w http.ResponseWriter, valErr *validator.ValidationError, requestID string) {
	WriteJSON(w, http.StatusBadRequest, Response{
		Error:     "request validation failed",
		Code:      "VALIDATION_ERROR",
		Fields:    valErr.Fields(),
		RequestID: requestID,
	})
}
