package handler

import (
	"net/http"

	"github.com/qu18354531302/product-analytics-api/internal/usecases/reporting"
	"github.com/qu18354531302/product-analytics-api/pkg/log"
)

func Summary(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		startDate, endDate, ok := requireDateRange(w, r)
		if !ok {
			return
		}

		summary, err := service.Summary(startDate, endDate)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, summary)
	})
}

func SalesPriceTrend(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		startDate, endDate, ok := requireDateRange(w, r)
		if !ok {
			return
		}

		points, err := service.SalesPriceTrend(startDate, endDate)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, points)
	})
}

func RatioTrend(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		startDate, endDate, ok := requireDateRange(w, r)
		if !ok {
			return
		}

		points, err := service.RatioTrend(startDate, endDate)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, points)
	})
}

func RatioStats(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		startDate, endDate, ok := requireDateRange(w, r)
		if !ok {
			return
		}

		stats, err := service.RatioStats(startDate, endDate)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, stats)
	})
}
