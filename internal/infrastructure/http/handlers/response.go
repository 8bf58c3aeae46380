package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	domerrors "github.com/Sloan357/task-management-api/internal/domain/errors"
)

// timeFormat is RFC3339 with offset, matching the store's timestamptz.
const timeFormat = "2006-01-02T15:04:05Z07:00"

// writeErr sends JSON { "error": message, "code": errCode }. If errCode is
// empty, a default is used from code.
func writeErr(w http.ResponseWriter, code int, errCode string, message string) {
	if errCode == "" {
		errCode = defaultErrCode(code)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message, "code": errCode})
}

func defaultErrCode(httpCode int) string {
	switch httpCode {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	default:
		return ErrCodeInternal
	}
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeDomainErr maps sentinel domain errors to HTTP status. Anything
// unmapped is an internal fault and returns a generic message with no
// error detail in the payload.
func writeDomainErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domerrors.ErrTaskNotFound):
		writeErr(w, http.StatusNotFound, ErrCodeNotFound, "task not found")
	case errors.Is(err, domerrors.ErrProjectNotFound):
		writeErr(w, http.StatusNotFound, ErrCodeNotFound, "project not found")
	case errors.Is(err, domerrors.ErrUserNotFound):
		writeErr(w, http.StatusNotFound, ErrCodeNotFound, "user not found")
	case errors.Is(err, domerrors.ErrUserExists):
		writeErr(w, http.StatusConflict, ErrCodeConflict, err.Error())
	case errors.Is(err, domerrors.ErrInvalidCredentials):
		writeErr(w, http.StatusUnauthorized, ErrCodeInvalidCredentials, err.Error())
	case errors.Is(err, domerrors.ErrValidation):
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())
	default:
		writeErr(w, http.StatusInternalServerError, ErrCodeInternal, "internal error")
	}
}
