package apiserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/worksprings/inventory-roi/internal/config"
	handlers "github.com/worksprings/inventory-roi/internal/handlers/v1alpha1"
	"github.com/worksprings/inventory-roi/internal/service"
	"github.com/worksprings/inventory-roi/internal/util"
	"github.com/worksprings/inventory-roi/pkg/metrics"
	"github.com/worksprings/inventory-roi/pkg/middleware"
)

const (
	gracefulShutdownTimeout = 5 * time.Second
)

type Server struct {
	cfg      *config.Config
	listener net.Listener
}

// New returns a new instance of the ROI calculator server.
func New(cfg *config.Config, listener net.Listener) *Server {
	return &Server{
		cfg:      cfg,
		listener: listener,
	}
}

// Router builds the handler chain of the server.
func (s *Server) Router() http.Handler {
	router := chi.NewRouter()

	metricMiddleware := metrics.NewMiddleware("api_server")
	metricMiddleware.MustRegisterDefault()

	router.Use(
		metricMiddleware.Handler,
		cors.Handler(cors.Options{
			AllowedOrigins: s.cfg.Service.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "HEAD", "OPTIONS"},
			AllowedHeaders: []string{"*"},
			MaxAge:         300,
		}),
		middleware.RequestID,
		util.PathPrefixRewrite(s.cfg.Service.PathPrefix),
	)
	if s.cfg.Service.HTTPLogging {
		router.Use(middleware.Logger())
	}
	router.Use(chiMiddleware.Recoverer)

	h := handlers.NewServiceHandler(
		service.NewRoiService(),
		service.NewReportService(),
		s.cfg,
	)
	h.Routes(router)

	return router
}

func (s *Server) Run(ctx context.Context) error {
	zap.S().Named("api_server").Info("Initializing API server")

	srv := http.Server{Addr: s.cfg.Service.Address, Handler: s.Router()}

	go func() {
		<-ctx.Done()
		zap.S().Named("api_server").Infof("Shutdown signal received: %s", ctx.Err())
		ctxTimeout, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
		defer cancel()

		srv.SetKeepAlivesEnabled(false)
		_ = srv.Shutdown(ctxTimeout)
		zap.S().Named("api_server").Info("api server terminated")
	}()

	zap.S().Named("api_server").Infof("Listening on %s...", s.listener.Addr().String())
	if err := srv.Serve(s.listener); err != nil && !errors.Is(err, net.ErrClosed) && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
