package handler

import (
	"net/http"

	"github.com/qu18354531302/product-analytics-api/internal/usecases/reporting"
	"github.com/qu18354531302/product-analytics-api/pkg/log"
)

func ListProducts(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		products, err := service.ListProducts()
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, products)
	})
}
