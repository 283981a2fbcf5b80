package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Error codes grouped by concern. The code selects the HTTP status; the
// message is what the dashboard shows the user.
const (
	// Validation errors (client side, never retried)
	ErrMissingParameter = "VAL_001" // required query parameter absent
	ErrInvalidParameter = "VAL_002" // parameter present but malformed
	ErrMissingFile      = "VAL_003" // multipart upload without a file part
	ErrInvalidWorkbook  = "VAL_004" // file is not a readable workbook
	ErrTooManyRowErrors = "VAL_005" // row error rate above the batch threshold

	// Authentication errors
	ErrInvalidCredentials = "AUTH_001"
	ErrInvalidInviteCode  = "AUTH_002"
	ErrUserAlreadyExists  = "AUTH_003"

	// Server errors
	ErrDataAccess = "SRV_001" // underlying store failure
	ErrInternal   = "SRV_002"
)

var httpStatusMap = map[string]int{
	ErrMissingParameter:   http.StatusBadRequest,
	ErrInvalidParameter:   http.StatusBadRequest,
	ErrMissingFile:        http.StatusBadRequest,
	ErrInvalidWorkbook:    http.StatusBadRequest,
	ErrTooManyRowErrors:   http.StatusBadRequest,
	ErrInvalidCredentials: http.StatusUnauthorized,
	ErrInvalidInviteCode:  http.StatusBadRequest,
	ErrUserAlreadyExists:  http.StatusConflict,
	ErrDataAccess:         http.StatusInternalServerError,
	ErrInternal:           http.StatusInternalServerError,
}

// APIError is the JSON error body. The dashboard keys off the "error"
// message; "details" carries the underlying cause for server errors.
type APIError struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// WriteError writes the standardized error response for the given code.
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(APIError{
		Error:   message,
		Details: details,
	})
}
