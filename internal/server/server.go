// Package server exposes the tax footprint engine over HTTP.
package server

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/taxfootprint/footprint-calculator/internal/calculation"
)

// APIPrefix is the path prefix of every versioned endpoint.
const APIPrefix = "/api/v1"

// maxBodyBytes caps request bodies; a full questionnaire is a few kilobytes.
const maxBodyBytes = 1 << 20

// NewHTTPServer returns an HTTP server serving the API on addr.
func NewHTTPServer(addr string, engine *calculation.Engine, logger *logrus.Logger) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           NewRouter(engine, logger),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// NewRouter wires the API routes and middleware onto a fresh router.
func NewRouter(engine *calculation.Engine, logger *logrus.Logger) *mux.Router {
	h := newHandler(engine, logger)

	r := mux.NewRouter()
	r.Use(h.middleware()...)
	h.setFallbacks(r)

	r.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)
	h.RegisterRoutes(r.PathPrefix(APIPrefix).Subrouter())
	return r
}

type handler struct {
	engine *calculation.Engine
	log    *logrus.Logger
}

func newHandler(engine *calculation.Engine, logger *logrus.Logger) *handler {
	if engine == nil {
		engine = calculation.NewEngine()
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &handler{engine: engine, log: logger}
}

func (h *handler) middleware() []mux.MiddlewareFunc {
	return []mux.MiddlewareFunc{RequestIDMiddleware, AccessLogMiddleware(h.log), RecoverMiddleware(h.log)}
}

// setFallbacks installs the 404 and 405 handlers on router. A subrouter
// answers for its own prefix, so each one needs them. Router middleware is
// skipped for these handlers and is applied here instead.
func (h *handler) setFallbacks(router *mux.Router) {
	router.NotFoundHandler = chain(http.HandlerFunc(h.notFound), h.middleware()...)
	router.MethodNotAllowedHandler = chain(http.HandlerFunc(h.methodNotAllowed), h.middleware()...)
}

// RegisterRoutes registers the calculation endpoints on router.
func (h *handler) RegisterRoutes(router *mux.Router) {
	h.setFallbacks(router)
	router.HandleFunc("/footprint", h.Footprint).Methods(http.MethodPost)
	router.HandleFunc("/live", h.Live).Methods(http.MethodPost)
	router.HandleFunc("/display", h.Display).Methods(http.MethodPost)
	router.HandleFunc("/income-from-hours", h.IncomeFromHours).Methods(http.MethodPost)
	router.HandleFunc("/business", h.Business).Methods(http.MethodPost)
	router.HandleFunc("/inheritance", h.Inheritance).Methods(http.MethodPost)
	router.HandleFunc("/rates", h.Rates).Methods(http.MethodGet)
	router.HandleFunc("/formats", h.Formats).Methods(http.MethodGet)
}
