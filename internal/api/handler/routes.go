package handler

import (
	"net/http"

	"github.com/qu18354531302/product-analytics-api/internal/api/handler/router"
	"github.com/qu18354531302/product-analytics-api/internal/usecases/authenticating"
	"github.com/qu18354531302/product-analytics-api/internal/usecases/ingesting"
	"github.com/qu18354531302/product-analytics-api/internal/usecases/reporting"
	"github.com/qu18354531302/product-analytics-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Products(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/api/products",
			Method:  http.MethodGet,
			Handler: ListProducts(service),
		},
	}
}

func Inventory(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/api/inventory/top",
			Method:  http.MethodGet,
			Handler: InventoryTop(service),
		},
		{
			Path:    "/api/inventory/summary",
			Method:  http.MethodGet,
			Handler: InventorySummary(service),
		},
		{
			Path:    "/api/inventory/distribution",
			Method:  http.MethodGet,
			Handler: InventoryDistribution(service),
		},
	}
}

func Trends(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/api/summary",
			Method:  http.MethodGet,
			Handler: Summary(service),
		},
		{
			Path:    "/api/trends/sales-price",
			Method:  http.MethodGet,
			Handler: SalesPriceTrend(service),
		},
		{
			Path:    "/api/trends/ratio",
			Method:  http.MethodGet,
			Handler: RatioTrend(service),
		},
		{
			Path:    "/api/production/ratio-stats",
			Method:  http.MethodGet,
			Handler: RatioStats(service),
		},
	}
}

func Prices(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/api/price-changes",
			Method:  http.MethodGet,
			Handler: PriceChanges(service),
		},
		{
			Path:    "/api/price-trends",
			Method:  http.MethodGet,
			Handler: PriceTrends(service),
		},
	}
}

func Uploads(service ingesting.Ingestor, authenticator authenticating.Authenticator) []router.Route {
	authOnly := []func(http.Handler) http.Handler{middleware.Authenticate(authenticator)}

	return []router.Route{
		{
			Path:        "/api/upload/price-adjustments",
			Method:      http.MethodPost,
			Handler:     UploadPriceAdjustments(service),
			Middlewares: authOnly,
		},
		{
			Path:        "/api/upload",
			Method:      http.MethodPost,
			Handler:     UploadDailyMetrics(service),
			Middlewares: authOnly,
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/api/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/api/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
	}
}
