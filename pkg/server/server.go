// Package server exposes the order form over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	catalogcomponent "github.com/goliatone/go-pizzaform/components/catalog"
	"github.com/goliatone/go-pizzaform/pkg/catalog"
	"github.com/goliatone/go-pizzaform/pkg/order"
	"github.com/goliatone/go-pizzaform/pkg/orchestrator"
	"github.com/goliatone/go-pizzaform/pkg/render"
	"github.com/goliatone/go-pizzaform/pkg/renderers/vanilla"
)

const (
	DefaultAddr          = ":8080"
	DefaultShutdownGrace = 10 * time.Second

	// AssetsPath serves the embedded stylesheet.
	AssetsPath = "/assets/"
)

// Orchestrator is the subset of *orchestrator.Orchestrator the handlers use.
type Orchestrator interface {
	Catalog(ctx context.Context) (catalog.Catalog, error)
	Refresh(ctx context.Context) (catalog.Catalog, error)
	Fields() []order.Field
	Quote(ctx context.Context, form order.Form) (order.Receipt, error)
	Generate(ctx context.Context, req orchestrator.Request) ([]byte, error)
	Renderer(name string) (render.Renderer, error)
	RenderOptions(opts render.RenderOptions) render.RenderOptions
}

var _ Orchestrator = (*orchestrator.Orchestrator)(nil)

// Option configures a Server.
type Option func(*Server)

// WithAddr sets the listen address.
func WithAddr(addr string) Option {
	return func(s *Server) {
		if addr != "" {
			s.addr = addr
		}
	}
}

// WithLogger sets the request and lifecycle logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithLocale sets the locale used when a request has no ?lang= parameter.
func WithLocale(locale string) Option {
	return func(s *Server) {
		if locale != "" {
			s.locale = locale
		}
	}
}

// WithRenderer selects the renderer for HTML pages.
func WithRenderer(name string) Option {
	return func(s *Server) {
		s.renderer = name
	}
}

// WithShutdownGrace bounds how long Run waits for in-flight requests.
func WithShutdownGrace(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.grace = d
		}
	}
}

// Server serves the form, the receipt, the catalog and the JSON API.
type Server struct {
	orch     Orchestrator
	logger   *zap.Logger
	addr     string
	locale   string
	renderer string
	grace    time.Duration
	router   chi.Router
}

// New builds the router.
func New(orch Orchestrator, opts ...Option) (*Server, error) {
	if orch == nil {
		return nil, errors.New("server: orchestrator is required")
	}
	s := &Server{
		orch:   orch,
		logger: zap.NewNop(),
		addr:   DefaultAddr,
		locale: render.DefaultLocale,
		grace:  DefaultShutdownGrace,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if _, err := orch.Renderer(s.renderer); err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}
	if err := s.routes(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Server) routes() error {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleForm)
	r.Post("/order", s.handleOrder)
	r.Post("/refresh", s.handleRefresh)
	r.Get("/healthz", s.handleHealth)
	r.Get("/openapi.json", s.handleOpenAPI)

	r.Route("/api", func(r chi.Router) {
		r.Post("/orders", s.handleAPIOrder)
		r.Get("/catalog", s.handleAPICatalog)
	})

	if _, err := catalogcomponent.RegisterRoutes(r, "/",
		catalogcomponent.WithProvider(s.orch.Catalog),
	); err != nil {
		return fmt.Errorf("server: mount catalog: %w", err)
	}

	assets := http.StripPrefix(AssetsPath, http.FileServer(http.FS(vanilla.AssetsFS())))
	r.Handle(AssetsPath+"*", assets)

	s.router = r
	return nil
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.addr
}

// Run listens on the configured address until ctx is cancelled, then drains
// in-flight requests for up to the shutdown grace.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", s.addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run over an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		ErrorLog:          zap.NewStdLog(s.logger),
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.grace)
	defer cancel()
	s.logger.Info("shutting down", zap.Duration("grace", s.grace))
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: serve: %w", err)
	}
	return nil
}
