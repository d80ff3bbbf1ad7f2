package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MGTheTrain/contact-web/internal/api/web"
	"github.com/MGTheTrain/contact-web/internal/app"
	"github.com/MGTheTrain/contact-web/internal/domain/contact"
	"github.com/MGTheTrain/contact-web/internal/domain/mail"
	"github.com/MGTheTrain/contact-web/internal/domain/users"
	"github.com/MGTheTrain/contact-web/internal/infrastructure/mailer"
	"github.com/MGTheTrain/contact-web/internal/infrastructure/persistence"
	"github.com/MGTheTrain/contact-web/internal/pkg/config"
	"github.com/MGTheTrain/contact-web/internal/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// InitServeCommand registers the serve command
func InitServeCommand(rootCmd *cobra.Command) {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Migrate the database and start the HTTP server",
		RunE:  runServe,
	}
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	deps, err := initializeDependencies(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := persistence.CloseDB(deps.db); err != nil {
			log.Warn("Failed to close database: ", err)
		}
	}()

	r, err := newRouter(cfg, deps, log)
	if err != nil {
		return fmt.Errorf("failed to set up router: %w", err)
	}

	return startServerWithGracefulShutdown(cfg, r, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db             *gorm.DB
	contactService contact.ContactService
	userService    users.UserService
}

// openDB is replaced in tests
var openDB = persistence.NewDBConnection

// initializeDependencies sets up the database, the mailer and the services.
// The database is closed again when a later step fails.
func initializeDependencies(cfg *config.AppConfig, log logger.Logger) (deps *appDependencies, err error) {
	db, err := openDB(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}
	defer func() {
		if err == nil {
			return
		}
		if closeErr := persistence.CloseDB(db); closeErr != nil {
			log.Warn("Failed to close database: ", closeErr)
		}
	}()

	if err = persistence.Migrate(db); err != nil {
		return nil, err
	}
	log.Info("Database migrations completed successfully")

	userRepo, err := persistence.NewGormUserRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}

	userService, err := app.NewUserService(userRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	sender, err := newMailSender(&cfg.Mail, log)
	if err != nil {
		return nil, err
	}

	contactService, err := app.NewContactService(sender, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appDependencies{
		db:             db,
		contactService: contactService,
		userService:    userService,
	}, nil
}

func newMailSender(settings *config.MailSettings, log logger.Logger) (mail.Sender, error) {
	renderer, err := mailer.NewTemplateRenderer(mailer.DefaultTemplates())
	if err != nil {
		return nil, fmt.Errorf("failed to load mail templates: %w", err)
	}

	transport, err := mailer.NewTransport(settings, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create mail transport: %w", err)
	}

	sender, err := mailer.NewSender(renderer, transport, settings.DefaultSender, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create mail sender: %w", err)
	}

	log.Info("Mail transport ", transport.Name(), " initialized")
	return sender, nil
}

func newRouter(cfg *config.AppConfig, deps *appDependencies, log logger.Logger) (*gin.Engine, error) {
	r, urls, err := web.NewEngine(cfg, log)
	if err != nil {
		return nil, err
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	if err := web.SetupRoutes(r, urls, deps.contactService, deps.userService, log); err != nil {
		return nil, err
	}

	if cfg.Debug {
		web.RegisterDebugRoutes(r)
		log.Debug("Profiling routes registered under /debug/pprof")
	}

	return r, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.AppConfig, handler http.Handler, log logger.Logger) error {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
