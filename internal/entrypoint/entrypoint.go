package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/catalog"
	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/database/history"
	http_controllers "github.com/mrlokans/bookshelf/internal/http"
	"github.com/mrlokans/bookshelf/internal/metrics"
	"github.com/mrlokans/bookshelf/internal/scheduler"
	"github.com/mrlokans/bookshelf/internal/services"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// App holds the wired components of a running server.
type App struct {
	Router    *gin.Engine
	Store     *catalog.Store
	Database  *database.Database
	Scheduler *scheduler.HistoryCleanupScheduler

	stopMetrics func()
}

// LoadCatalog opens the configured YAML catalog, or the built-in sample
// cabinet when no path is set.
func LoadCatalog(cfg *config.Config) (*catalog.Store, error) {
	if cfg.Catalog.Path == "" {
		log.Printf("No catalog path configured, loading sample data")
		return catalog.SampleData(), nil
	}

	store, err := catalog.LoadFile(cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded catalog from %s: %d books, %d libraries",
		cfg.Catalog.Path, len(store.Books()), len(store.Libraries()))
	return store, nil
}

// Build wires the catalog, move journal, metrics and router. The caller owns
// the returned App and must Close it.
func Build(cfg *config.Config, version string) (*App, error) {
	store, err := LoadCatalog(cfg)
	if err != nil {
		return nil, err
	}

	app := &App{Store: store}

	routerCfg := http_controllers.RouterConfig{
		Store:   store,
		Version: version,
	}

	var recorder services.MoveRecorder
	if cfg.History.Enabled {
		db, err := database.NewDatabase(cfg.Database.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		app.Database = db

		repo := history.NewRepository(db.DB)
		recorder = repo
		routerCfg.History = repo
		routerCfg.Database = db

		app.Scheduler = scheduler.NewHistoryCleanupScheduler(repo, scheduler.HistoryCleanupConfig{
			Enabled:       true,
			RetentionDays: cfg.History.RetentionDays,
			Schedule:      cfg.History.CleanupSchedule,
		})
	} else {
		log.Printf("Move history disabled")
	}

	routerCfg.PlacementService = services.NewPlacementService(store, recorder)

	if cfg.Metrics.Enabled {
		app.stopMetrics = metrics.Observe(store)
		routerCfg.MetricsPath = cfg.Metrics.Path
	}

	app.Router = http_controllers.NewRouter(routerCfg)
	return app, nil
}

// Close stops background work and releases the journal database.
func (a *App) Close() {
	if a.Scheduler != nil {
		a.Scheduler.Stop()
	}
	if a.stopMetrics != nil {
		a.stopMetrics()
	}
	if a.Database != nil {
		if err := a.Database.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}
}

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for an interrupt signal, then give in-flight requests the
	// configured timeout to finish.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server Shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Bookshelf v%s", version)

	app, err := Build(cfg, version)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	schedulerCtx, schedulerCancel := context.WithCancel(context.Background())
	if app.Scheduler != nil {
		if err := app.Scheduler.Start(schedulerCtx); err != nil {
			log.Printf("Warning: history cleanup scheduler not started: %v", err)
		}
	}

	onShutdown := func(ctx context.Context) {
		schedulerCancel()
		app.Close()
	}

	Serve(app.Router, cfg, onShutdown)
}
