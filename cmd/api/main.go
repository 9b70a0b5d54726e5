// Package main starts the campus calendar API.
//
// @title Campus Calendar API
// @version 1.0
// @description Registration and administration API for the inter-institutional academic calendar.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"campuscalendar/config"
	_ "campuscalendar/docs"
	"campuscalendar/internal/adapters/auth"
	"campuscalendar/internal/adapters/email"
	"campuscalendar/internal/calendar"
	"campuscalendar/internal/catalogue"
	deliveryhttp "campuscalendar/internal/delivery/http"
	"campuscalendar/internal/delivery/http/controllers"
	"campuscalendar/internal/delivery/http/middleware"
	"campuscalendar/internal/domain"
	"campuscalendar/internal/repository/postgres"
	"campuscalendar/internal/repository/postgres/migrations"
	"campuscalendar/internal/repository/rediscache"
	"campuscalendar/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := config.NewLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(ctx, cfg.RequestTimeout)
	err = db.PingContext(pingCtx)
	cancel()
	if err != nil {
		log.Fatalf("ping database: %v", err)
	}

	if cfg.RunMigrations {
		if err := postgres.ApplyMigrations(ctx, db, migrations.FS, logger); err != nil {
			log.Fatalf("apply migrations: %v", err)
		}
	}

	if cfg.AdminPasswordHash == "" {
		logger.Warn("ADMIN_PASSWORD_HASH is empty; admin login is disabled")
	}

	// Repositories
	calendarRepo := postgres.NewCalendarConfigRepository(db)
	submissionRepo := postgres.NewSubmissionRepository(db)
	appConfigRepo := postgres.NewAppConfigRepository(db)
	formRepo := postgres.NewFormConfigRepository(db)

	var catalogueCache domain.CatalogueCache
	if cfg.RedisAddr == "" {
		logger.Warn("REDIS_ADDR is not set; catalogue caching is disabled")
	} else {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		defer rdb.Close()
		pingCtx, cancel := context.WithTimeout(ctx, cfg.RequestTimeout)
		err := rdb.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			logger.Warn("redis unreachable; catalogue caching is disabled", "addr", cfg.RedisAddr, "err", err)
		} else {
			logger.Info("redis connected", "addr", cfg.RedisAddr)
			catalogueCache = rediscache.NewCatalogueCache(rdb, cfg.CatalogueCacheTTL)
		}
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.MailProvider,
		FromAddress: cfg.MailFromAddress,
		FromName:    cfg.MailFromName,
		SES: email.SESConfig{
			Region:             cfg.AWSRegion,
			AccessKeyID:        cfg.AWSAccessKeyID,
			SecretAccessKey:    cfg.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.SESInsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		log.Fatalf("create mailer: %v", err)
	}

	// Services
	engine := calendar.New(calendar.UUIDGenerator)
	builder := catalogue.NewBuilder(cfg.CatalogueLocale)
	calendarService := services.NewCalendarService(calendarRepo, submissionRepo, appConfigRepo, engine, builder, catalogueCache, logger, cfg.RequestTimeout)
	participationService := services.NewParticipationService(submissionRepo, builder, cfg.RequestTimeout)
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)
	registrationService := services.NewRegistrationService(submissionRepo, formRepo, emailService, catalogueCache, logger, cfg.RequestTimeout)
	formService := services.NewFormService(formRepo, catalogueCache, logger, cfg.RequestTimeout)
	appConfigService := services.NewAppConfigService(appConfigRepo, catalogueCache, logger, cfg.RequestTimeout)
	authService := services.NewAuthService(auth.NewBcryptChecker(), auth.NewJWTIssuer(cfg.JWTSecret), cfg.AdminPasswordHash, cfg.JWTExpiry)

	// HTTP
	router := deliveryhttp.NewRouter(
		controllers.NewCalendarController(logger, calendarService),
		controllers.NewCatalogueController(logger, calendarService, participationService),
		controllers.NewRegistrationController(logger, registrationService),
		controllers.NewFormController(logger, formService),
		controllers.NewAppConfigController(logger, appConfigService),
		controllers.NewAuthController(logger, authService),
		middleware.RequireAuth(auth.NewJWTVerifier(cfg.JWTSecret), logger),
	)
	handler := middleware.LoggingMiddleware(logger, middleware.CORS(cfg.CORSAllowedOrigins, router))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "err", err)
	}
	logger.Info("server stopped")
}
