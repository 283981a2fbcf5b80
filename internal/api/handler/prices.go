package handler

import (
	"net/http"
	"strconv"

	"github.com/qu18354531302/product-analytics-api/internal/usecases/reporting"
	"github.com/qu18354531302/product-analytics-api/pkg/apiErrors"
	"github.com/qu18354531302/product-analytics-api/pkg/log"
)

func PriceChanges(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		startDate, endDate, ok := requireDateRange(w, r)
		if !ok {
			return
		}

		minPriceDiff := reporting.DefaultMinPriceDiff
		if raw := r.URL.Query().Get("min_price_diff"); raw != "" {
			parsed, err := strconv.ParseFloat(raw, 64)
			if err != nil || parsed < 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidParameter, "Invalid min_price_diff parameter: "+raw, nil)
				return
			}
			minPriceDiff = parsed
		}

		changes, err := service.PriceChanges(startDate, endDate, minPriceDiff)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, changes)
	})
}

func PriceTrends(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		startDate, endDate, ok := requireDateRange(w, r)
		if !ok {
			return
		}

		// product_name is optional: absent means all products.
		productName := r.URL.Query().Get("product_name")

		trends, err := service.PriceTrends(startDate, endDate, productName)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, trends)
	})
}
