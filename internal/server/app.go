// Package server initializes and runs the portfolio API server: database and
// migrations, object storage, mail transport, services, HTTP router and
// graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/fahmiks/portfolio-api/internal/logging"
	"github.com/fahmiks/portfolio-api/internal/server/assets"
	"github.com/fahmiks/portfolio-api/internal/server/config"
	"github.com/fahmiks/portfolio-api/internal/server/mail"
	"github.com/fahmiks/portfolio-api/internal/server/repositories/repomanager"
	"github.com/fahmiks/portfolio-api/internal/server/rest"
	"github.com/fahmiks/portfolio-api/internal/server/services"
	"github.com/fahmiks/portfolio-api/internal/server/storage"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *http.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	store, err := storage.NewS3Store(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}
	lifecycle := assets.NewLifecycle(store, logger)

	mailer, err := mail.NewSMTPMailer(cfg)
	if err != nil {
		return nil, fmt.Errorf("mail init error: %w", err)
	}

	handler := rest.NewHandler(db, logger,
		services.NewAuthService(db, rm, cfg),
		services.NewProjectService(db, rm, lifecycle),
		services.NewSkillService(db, rm, lifecycle),
		services.NewCertificateService(db, rm, lifecycle),
		services.NewCategoryService(db, rm),
		services.NewLevelService(db, rm),
		services.NewUserService(db, rm, lifecycle),
		services.NewContactService(mailer),
	)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: rest.NewRouter(cfg, logger, handler),
	}

	return &App{config: cfg, logger: logger, db: db, server: srv}, nil
}

// Run serves HTTP until the context is cancelled or a termination signal
// arrives, then drains in-flight requests before closing the database.
func (app *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	app.initSignalHandler(cancel)

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "starting server", "addr", app.config.Addr, "env", app.config.Env)
		if err := app.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info(ctx, "shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	if err := app.server.Shutdown(shutdownCtx); err != nil {
		app.logger.Error(ctx, "shutdown error", "error", err)
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}

	return nil
}

func (app *App) initSignalHandler(cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancel()
	}()
}
