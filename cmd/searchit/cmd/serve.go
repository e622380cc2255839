package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/donaldgifford/searchit/internal/api/handlers"
	mw "github.com/donaldgifford/searchit/internal/api/middleware"
	"github.com/donaldgifford/searchit/internal/backend"
	"github.com/donaldgifford/searchit/internal/config"
	"github.com/donaldgifford/searchit/internal/engine"
	"github.com/donaldgifford/searchit/pkg/logger"
	domain "github.com/donaldgifford/searchit/pkg/types"
)

const (
	bootstrapTimeout = 30 * time.Second
	shutdownTimeout  = 10 * time.Second
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the gateway and the refresh scheduler",
		Long: "Starts the HTTP gateway in front of the SearchIt backend. The\n" +
			"current location and the wish list are loaded at startup and\n" +
			"refreshed on the configured schedule.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), viper.GetString("server_config"))
		},
	}
	cmd.Flags().String("server-config", "config.yaml", "gateway config file")
	cobra.CheckErr(viper.BindPFlag("server_config", cmd.Flags().Lookup("server-config")))

	return cmd
}

// gateway is the assembled server.
type gateway struct {
	echo      *echo.Echo
	engine    *engine.Engine
	scheduler *engine.Scheduler
	log       *slog.Logger
}

func newGateway(cfg *config.Config, log *slog.Logger) (*gateway, error) {
	httpClient := &http.Client{Timeout: cfg.Backend.Timeout}

	rl := backend.NewRateLimiter(
		cfg.Backend.RateLimit.PerSecond,
		cfg.Backend.RateLimit.Burst,
		cfg.Backend.RateLimit.DailyLimit,
	)
	be := backend.NewHTTPClient(cfg.Backend.BaseURL,
		backend.WithHTTPClient(httpClient),
		backend.WithRateLimiter(rl),
	)
	loc := backend.NewIPLocator(
		backend.WithLocationURL(cfg.Backend.LocationURL),
		backend.WithLocatorHTTPClient(httpClient),
	)

	eng := engine.NewEngine(be, loc,
		engine.WithLogger(log),
		engine.WithDefaultZip(cfg.Search.DefaultZipcode),
		engine.WithDefaultCategory(domain.Category(cfg.Search.DefaultCategory)),
	)

	sched, err := engine.NewScheduler(eng,
		cfg.Schedule.WishListRefreshInterval,
		cfg.Schedule.LocationRefreshInterval,
		log,
	)
	if err != nil {
		return nil, fmt.Errorf("creating scheduler: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(mw.Recovery(log))
	e.Use(mw.RequestLog(log))
	e.Use(mw.Metrics())

	health := handlers.NewHealthHandler(rl)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig("SearchIt API", Version))
	handlers.RegisterSearchRoutes(api, handlers.NewSearchHandler(eng))
	handlers.RegisterItemRoutes(api, handlers.NewItemHandler(eng))
	handlers.RegisterWishListRoutes(api, handlers.NewWishListHandler(eng.WishList()))
	handlers.RegisterLocationRoutes(api, handlers.NewLocationHandler(eng))
	handlers.RegisterQuotaRoutes(api, handlers.NewQuotaHandler(rl))

	return &gateway{echo: e, engine: eng, scheduler: sched, log: log}, nil
}

func runServe(ctx context.Context, path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	gw, err := newGateway(cfg, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		bctx, cancel := context.WithTimeout(ctx, bootstrapTimeout)
		defer cancel()
		if err := gw.engine.Bootstrap(bctx); err != nil {
			log.Warn("startup refresh incomplete", "error", err)
		}
	}()

	gw.scheduler.Start()

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", "addr", cfg.Server.Addr(), "backend", cfg.Backend.BaseURL)
		if err := gw.echo.Start(cfg.Server.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	log.Info("shutting down server")
	<-gw.scheduler.Stop().Done()

	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := gw.echo.Shutdown(sctx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}
