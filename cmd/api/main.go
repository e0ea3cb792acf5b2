package main

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

	_ "campus-safety/docs" // This is for Swagger
	"campus-safety/internal/auth"
	"campus-safety/internal/config"
	"campus-safety/internal/database"
	"campus-safety/internal/directory"
	"campus-safety/internal/handlers"
	"campus-safety/internal/logger"
	"campus-safety/internal/middleware"
	"campus-safety/internal/models"
	"campus-safety/internal/monitor"
	"campus-safety/internal/notify"
	"campus-safety/internal/repository"
	"campus-safety/internal/securestore"
	"campus-safety/internal/service"
	"campus-safety/internal/vault"

	"github.com/robfig/cron/v3"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Campus Safety API
// @version 1.0
// @description Backend API for campus safety coordination: SOS alerts, complaints, counseling and broadcasts
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@campussafety.example

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logger
	logger.Setup(logger.Config{
		Level: cfg.Log.Level,
	})

	slog.Info("Starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"env", cfg.App.Env,
		"log_level", cfg.Log.Level,
	)

	// Initialize database
	db, err := database.New(&cfg.Database)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func(db *database.Database) {
		err := db.Close()
		if err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}(db)

	slog.Info("Database connection established")

	// Run database migrations
	migrator := database.NewMigrationExecutor(db.DB)
	if err := migrator.RunMigrations("./migrations"); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed")

	// Initialize repositories
	sosRepo := repository.NewSosRepository(db.DB)
	complaintRepo := repository.NewComplaintRepository(db.DB)
	trailRepo := repository.NewTrailRepository(db.DB)
	counselingRepo := repository.NewCounselingRepository(db.DB)
	broadcastRepo := repository.NewBroadcastRepository(db.DB)
	auditRepo := repository.NewAuditRepository(db.DB)

	// Initialize token service and notification fan-out
	authService := auth.NewService(&cfg.JWT)
	notifier := notify.FromConfig(cfg.Redis)
	defer func() {
		if err := notifier.Close(); err != nil {
			slog.Error("Failed to close notifier", "error", err)
		}
	}()

	// Investigation trail encryption (if Vault is enabled)
	var cipher securestore.ContentCipher = securestore.PlainCipher{}
	if cfg.Vault.Enabled {
		slog.Info("Vault is enabled - initializing trail encryption")
		vaultClient, err := vault.NewClient(&vault.Config{
			Address:      cfg.Vault.Address,
			Token:        cfg.Vault.Token,
			TransitMount: cfg.Vault.TransitMount,
		})
		if err != nil {
			slog.Error("Failed to initialize Vault client", "error", err)
			os.Exit(1)
		}
		vaultCipher, err := securestore.NewVaultCipher(vaultClient)
		if err != nil {
			slog.Error("Failed to initialize trail cipher", "error", err)
			os.Exit(1)
		}
		cipher = vaultCipher
		slog.Info("Trail encryption initialized", "vault_addr", cfg.Vault.Address)
	} else {
		slog.Warn("Vault is disabled - investigation trail entries are stored in plaintext")
	}

	// Initialize services
	dir := directory.New(cfg.Directory)
	auditService := service.NewAuditService(auditRepo)
	sosService := service.NewSosService(sosRepo, notifier, auditService)
	complaintService := service.NewComplaintService(complaintRepo, trailRepo, cipher, auditService)
	counselingService := service.NewCounselingService(counselingRepo, auditService)
	broadcastService := service.NewBroadcastService(broadcastRepo, dir, notifier, auditService)
	analyticsService := service.NewAnalyticsService(complaintRepo, sosRepo, cfg.Monitor.HighRiskThreshold)

	// Active-alert monitoring loop
	monitorCtx, cancelMonitor := context.WithCancel(context.Background())
	defer cancelMonitor()
	sosMonitor := monitor.New(func(ctx context.Context) ([]models.SosAlert, error) {
		return sosRepo.ListActive()
	}, cfg.Monitor.Interval)
	sosMonitor.Start(monitorCtx)
	defer sosMonitor.Stop()

	// Stale-alert reminder sweep
	if cfg.Monitor.EnableStaleSweep {
		sweeper := cron.New(cron.WithSeconds())
		_, err := sweeper.AddFunc(cfg.Monitor.StaleSweepCron, func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			count, err := sosService.RemindStale(ctx, cfg.Monitor.StaleAfter)
			if err != nil {
				slog.Error("Stale SOS sweep failed", "error", err)
				return
			}
			if count > 0 {
				slog.Info("Stale SOS reminders dispatched", "count", count)
			}
		})
		if err != nil {
			slog.Error("Failed to schedule stale sweep", "error", err, "cron", cfg.Monitor.StaleSweepCron)
			os.Exit(1)
		}
		sweeper.Start()
		defer sweeper.Stop()
		slog.Info("Stale SOS sweep scheduled", "cron", cfg.Monitor.StaleSweepCron, "stale_after", cfg.Monitor.StaleAfter)
	}

	// Initialize middleware
	authMw := middleware.NewAuthMiddleware(authService)
	rbacMw := middleware.NewRBACMiddleware()
	corsMw := middleware.NewCORSMiddleware(&cfg.CORS)
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit)
	auditMw := middleware.NewAuditMiddleware(db.DB)

	// Initialize handlers
	sosHandler := handlers.NewSosHandler(sosService, sosMonitor)
	complaintHandler := handlers.NewComplaintHandler(complaintService)
	counselingHandler := handlers.NewCounselingHandler(counselingService)
	broadcastHandler := handlers.NewBroadcastHandler(broadcastService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	auditHandler := handlers.NewAuditHandler(auditRepo)

	// Setup router
	mux := http.NewServeMux()

	// SOS routes - any authenticated actor can trigger; responders drive the lifecycle
	mux.Handle("POST /api/v1/sos",
		authMw.Authenticate(http.HandlerFunc(sosHandler.Create)),
	)
	mux.Handle("PUT /api/v1/sos/{id}/status",
		authMw.Authenticate(
			rbacMw.RequireAnyRole(middleware.RoleResponder, middleware.RoleReviewer, middleware.RoleAdmin)(
				http.HandlerFunc(sosHandler.Transition),
			),
		),
	)
	mux.Handle("GET /api/v1/sos/active",
		authMw.Authenticate(
			rbacMw.RequireAnyRole(middleware.RoleResponder, middleware.RoleReviewer, middleware.RoleAdmin)(
				http.HandlerFunc(sosHandler.ListActive),
			),
		),
	)
	mux.Handle("GET /api/v1/sos/snapshot",
		authMw.Authenticate(
			rbacMw.RequireAnyRole(middleware.RoleResponder, middleware.RoleReviewer, middleware.RoleAdmin)(
				http.HandlerFunc(sosHandler.MonitorSnapshot),
			),
		),
	)
	mux.Handle("GET /api/v1/sos",
		authMw.Authenticate(
			rbacMw.RequireAnyRole(middleware.RoleReviewer, middleware.RoleAdmin)(
				http.HandlerFunc(sosHandler.ListAll),
			),
		),
	)

	// Complaint routes - reporters file and follow their own cases, reviewers work the queue
	mux.Handle("POST /api/v1/complaints",
		authMw.Authenticate(http.HandlerFunc(complaintHandler.Submit)),
	)
	mux.Handle("GET /api/v1/complaints",
		authMw.Authenticate(http.HandlerFunc(complaintHandler.List)),
	)
	mux.Handle("GET /api/v1/complaints/{id}",
		authMw.Authenticate(http.HandlerFunc(complaintHandler.Get)),
	)
	mux.Handle("PUT /api/v1/complaints/{id}/status",
		authMw.Authenticate(
			rbacMw.RequireAnyRole(middleware.RoleReviewer, middleware.RoleAdmin)(
				http.HandlerFunc(complaintHandler.Transition),
			),
		),
	)
	mux.Handle("PUT /api/v1/complaints/{id}/assign",
		authMw.Authenticate(
			rbacMw.RequireAnyRole(middleware.RoleReviewer, middleware.RoleAdmin)(
				http.HandlerFunc(complaintHandler.Assign),
			),
		),
	)

	// Investigation trail routes (only reviewers, NOT reporters - the trail is internal)
	mux.Handle("POST /api/v1/complaints/{id}/logs",
		authMw.Authenticate(
			rbacMw.RequireRole(middleware.RoleReviewer)(
				http.HandlerFunc(complaintHandler.AppendLog),
			),
		),
	)
	mux.Handle("GET /api/v1/complaints/{id}/logs",
		authMw.Authenticate(
			rbacMw.RequireRole(middleware.RoleReviewer)(
				http.HandlerFunc(complaintHandler.ListLogs),
			),
		),
	)

	// Anonymous message channel - participation is checked in the handler
	mux.Handle("POST /api/v1/complaints/{id}/messages",
		authMw.Authenticate(http.HandlerFunc(complaintHandler.SendMessage)),
	)
	mux.Handle("GET /api/v1/complaints/{id}/messages",
		authMw.Authenticate(http.HandlerFunc(complaintHandler.ListMessages)),
	)

	// Counseling routes
	mux.Handle("POST /api/v1/counseling",
		authMw.Authenticate(http.HandlerFunc(counselingHandler.Submit)),
	)
	mux.Handle("GET /api/v1/counseling",
		authMw.Authenticate(http.HandlerFunc(counselingHandler.List)),
	)
	mux.Handle("PUT /api/v1/counseling/{id}/status",
		authMw.Authenticate(
			rbacMw.RequireAnyRole(middleware.RoleCounselor, middleware.RoleAdmin)(
				http.HandlerFunc(counselingHandler.UpdateStatus),
			),
		),
	)

	// Broadcast routes
	mux.Handle("POST /api/v1/broadcasts",
		authMw.Authenticate(
			rbacMw.RequireAnyRole(middleware.RoleReviewer, middleware.RoleAdmin)(
				http.HandlerFunc(broadcastHandler.Create),
			),
		),
	)
	mux.Handle("PUT /api/v1/broadcasts/{id}/deactivate",
		authMw.Authenticate(
			rbacMw.RequireAnyRole(middleware.RoleReviewer, middleware.RoleAdmin)(
				http.HandlerFunc(broadcastHandler.Deactivate),
			),
		),
	)
	mux.Handle("GET /api/v1/broadcasts/active",
		authMw.Authenticate(http.HandlerFunc(broadcastHandler.ListActive)),
	)
	mux.Handle("GET /api/v1/broadcasts",
		authMw.Authenticate(
			rbacMw.RequireAnyRole(middleware.RoleReviewer, middleware.RoleAdmin)(
				http.HandlerFunc(broadcastHandler.ListAll),
			),
		),
	)

	// Analytics route (reviewer only)
	mux.Handle("GET /api/v1/analytics",
		authMw.Authenticate(
			rbacMw.RequireAnyRole(middleware.RoleReviewer, middleware.RoleAdmin)(
				http.HandlerFunc(analyticsHandler.Snapshot),
			),
		),
	)

	// Audit log route (reviewer only); reading the audit trail is itself audited
	mux.Handle("GET /api/v1/audit-logs",
		authMw.Authenticate(
			rbacMw.RequireAnyRole(middleware.RoleReviewer, middleware.RoleAdmin)(
				auditMw.Log("audit.view", "audit_logs", "")(
					http.HandlerFunc(auditHandler.ListAuditLogs),
				),
			),
		),
	)

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.HealthCheck(); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, err := w.Write([]byte(`{"status":"unhealthy","database":"error"}`))
			if err != nil {
				slog.Error("Failed to write health check response", "error", err)
				return
			}
			return
		}
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte(`{"status":"healthy","version":"` + cfg.App.Version + `"}`))
		if err != nil {
			slog.Error("Failed to write health check response", "error", err)
			return
		}
	})

	// Swagger documentation
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	// Apply global middleware
	handler := middleware.LoggingMiddleware(
		middleware.SecurityHeaders(
			corsMw.Handler(
				rateLimiter.Limit(mux),
			),
		),
	)

	// Create server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.TimeoutRead,
		WriteTimeout: cfg.Server.TimeoutWrite,
		IdleTimeout:  cfg.Server.TimeoutIdle,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server starting", "address", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Server shutting down...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped")
}
