// Package server exposes the calculator over HTTP as a JSON API with
// SVG, PDF and XLSX endpoints for charts and reports.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

// Server wraps the HTTP surface of the calculator.
type Server struct {
	addr    string
	logger  *slog.Logger
	limiter *rate.Limiter
	router  *mux.Router
}

// New builds a server listening on addr. A nil logger falls back to
// slog.Default.
func New(addr string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		addr:    addr,
		logger:  logger,
		limiter: rate.NewLimiter(rate.Limit(50), 100),
		router:  mux.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	api := s.router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/kinetic/translational", s.handleKineticTranslational).Methods(http.MethodPost)
	api.HandleFunc("/kinetic/rotational", s.handleKineticRotational).Methods(http.MethodPost)
	api.HandleFunc("/potential/gravitational", s.handlePotentialGravitational).Methods(http.MethodPost)
	api.HandleFunc("/potential/elastic", s.handlePotentialElastic).Methods(http.MethodPost)
	api.HandleFunc("/work/constant", s.handleWorkConstant).Methods(http.MethodPost)
	api.HandleFunc("/work/variable", s.handleWorkVariable).Methods(http.MethodPost)
	api.HandleFunc("/power", s.handlePower).Methods(http.MethodPost)
	api.HandleFunc("/inertia", s.handleInertia).Methods(http.MethodPost)
	api.HandleFunc("/analyze", s.handleAnalyze).Methods(http.MethodPost)
	api.HandleFunc("/shapes", s.handleShapes).Methods(http.MethodGet)

	api.HandleFunc("/chart/energy.svg", s.handleEnergyChartSVG).Methods(http.MethodPost)
	api.HandleFunc("/chart/force.svg", s.handleForceChartSVG).Methods(http.MethodPost)
	api.HandleFunc("/report.pdf", s.handleReportPDF).Methods(http.MethodPost)
	api.HandleFunc("/export.xlsx", s.handleExportXLSX).Methods(http.MethodPost)
}

// Handler returns the full middleware-wrapped handler, exported for
// tests.
func (s *Server) Handler() http.Handler {
	return s.withCORS(s.withRateLimit(s.withLogging(s.router)))
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.addr,
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
