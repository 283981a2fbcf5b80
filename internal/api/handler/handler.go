package handler

import (
	"fmt"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/qu18354531302/product-analytics-api/internal/domain"
	"github.com/qu18354531302/product-analytics-api/pkg/apiErrors"
	"github.com/qu18354531302/product-analytics-api/pkg/log"
	"github.com/qu18354531302/product-analytics-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// requireDate reads a mandatory YYYY-MM-DD query parameter. On failure it
// writes the error response and reports false.
func requireDate(w http.ResponseWriter, r *http.Request, name string) (time.Time, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingParameter, fmt.Sprintf("Missing %s parameter", name), nil)
		return time.Time{}, false
	}

	date, err := utils.ParseDate(raw)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidParameter, fmt.Sprintf("Invalid %s parameter: %s", name, raw), nil)
		return time.Time{}, false
	}

	return date, true
}

// requireDateRange reads the start_date/end_date pair every range report
// takes.
func requireDateRange(w http.ResponseWriter, r *http.Request) (time.Time, time.Time, bool) {
	startDate, ok := requireDate(w, r, "start_date")
	if !ok {
		return time.Time{}, time.Time{}, false
	}

	endDate, ok := requireDate(w, r, "end_date")
	if !ok {
		return time.Time{}, time.Time{}, false
	}

	if endDate.Before(startDate) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidParameter, "end_date must not precede start_date", nil)
		return time.Time{}, time.Time{}, false
	}

	return startDate, endDate, true
}

func writeJSON(w http.ResponseWriter, logger log.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithError(err).Error("failed to encode response")
	}
}

// writeServiceError maps usecase failures onto the error taxonomy: bad
// input is a 400, store failures are a 500 carrying the cause.
func writeServiceError(w http.ResponseWriter, logger log.Logger, err error) {
	var valErr *domain.ValidationError
	if errors.As(err, &valErr) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidParameter, valErr.Message, nil)
		return
	}

	var dataErr *domain.DataAccessError
	if errors.As(err, &dataErr) {
		logger.WithError(err).Error("data access failure")
		apiErrors.WriteError(w, apiErrors.ErrDataAccess, "Data access failed", dataErr.Error())
		return
	}

	logger.WithError(err).Error("unexpected failure")
	apiErrors.WriteError(w, apiErrors.ErrInternal, "Internal server error", nil)
}
