package handler

import (
	"net/http"
	"strconv"

	"github.com/qu18354531302/product-analytics-api/internal/usecases/reporting"
	"github.com/qu18354531302/product-analytics-api/pkg/apiErrors"
	"github.com/qu18354531302/product-analytics-api/pkg/log"
)

// parseLimit reads the optional limit parameter, falling back to the
// default top-N size.
func parseLimit(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return reporting.DefaultTopLimit, true
	}

	limit, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || limit == 0 {
		apiErrors.WriteError(w, apiErrors.ErrInvalidParameter, "Invalid limit parameter: "+raw, nil)
		return 0, false
	}

	return limit, true
}

func InventoryTop(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		date, ok := requireDate(w, r, "date")
		if !ok {
			return
		}

		limit, ok := parseLimit(w, r)
		if !ok {
			return
		}

		items, err := service.InventoryTop(date, limit)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, items)
	})
}

func InventorySummary(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		date, ok := requireDate(w, r, "date")
		if !ok {
			return
		}

		summary, err := service.InventorySummary(date)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, summary)
	})
}

func InventoryDistribution(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		date, ok := requireDate(w, r, "date")
		if !ok {
			return
		}

		limit, ok := parseLimit(w, r)
		if !ok {
			return
		}

		slices, err := service.InventoryDistribution(date, limit)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, slices)
	})
}
