package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"orderview/internal/metrics"
	"orderview/internal/service"
)

type OrderStore interface {
	OrderLister
	OrderCreator
}

// NewRouter wires the orders backend routes.
func NewRouter(orders OrderStore, pricing *service.PricingService, gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		list := metrics.Instrument("orders_list")(ListOrdersHandler(orders))
		create := metrics.Instrument("orders_create")(CreateOrderHandler(orders))
		for _, p := range []string{"/orders", "/orders/"} {
			r.Method(http.MethodGet, p, list)
			r.Method(http.MethodPost, p, create)
		}

		r.Method(http.MethodPost, "/price", metrics.Instrument("price")(PriceHandler(pricing)))
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return r
}
