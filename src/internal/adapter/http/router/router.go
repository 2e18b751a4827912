package router

import "net/http"

type BankRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler)
}

// New mounts the bank routes behind authMiddleware. Swagger, /healthz and
// /metrics stay unauthenticated; a nil metricsHandler leaves /metrics unmounted.
func New(
	bankController BankRouteRegistrar,
	authMiddleware func(http.Handler) http.Handler,
	metricsHandler http.Handler,
) *http.ServeMux {
	mux := http.NewServeMux()
	registerSwaggerRoutes(mux)

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if metricsHandler != nil {
		mux.Handle("/metrics", metricsHandler)
	}
	if bankController != nil {
		bankController.RegisterRoutes(mux, authMiddleware)
	}

	return mux
}
