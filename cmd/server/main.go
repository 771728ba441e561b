package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mywallet/backend/docs"
	"github.com/mywallet/backend/internal/audit"
	"github.com/mywallet/backend/internal/config"
	"github.com/mywallet/backend/internal/database"
	"github.com/mywallet/backend/internal/handlers"
	"github.com/mywallet/backend/internal/services"
	log "github.com/sirupsen/logrus"
)

// @title MyWallet API
// @version 1.0
// @description Personal finance wallet: sign-up, sign-in and per-user entries
// @host localhost:5000
// @BasePath /
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg := config.Load()
	cfg.ConfigureLogging()

	docs.SwaggerInfo.Host = "localhost:" + cfg.Port

	ctx := context.Background()

	gw, err := database.OpenGateway(ctx, cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize database")
	}
	defer gw.Close()

	if err := gw.EnsureSchema(ctx); err != nil {
		log.WithError(err).Fatal("Failed to prepare collections")
	}

	var store services.SessionStore = services.NewSQLSessionStore(gw)
	if cfg.SessionStore == config.SessionStoreRedis {
		redisClient := database.InitRedis(ctx)
		if redisClient == nil {
			log.Fatal("SESSION_STORE=redis but Redis is unreachable")
		}
		defer redisClient.Close()
		store = services.NewRedisSessionStore(redisClient)
	}
	log.WithField("store", cfg.SessionStore).Info("Session store selected")

	auditor := audit.NewAuditLogger(nil)
	sessionService := services.NewSessionService(store)
	credentialService := services.NewCredentialService(gw, sessionService, cfg.BcryptCost)
	// the date stamp is fixed for the life of the process
	entryService := services.NewEntryService(gw, credentialService, services.EntryServiceConfig{
		EnforceOwnership: cfg.EnforceOwnership,
	})
	if !cfg.EnforceOwnership {
		log.Warn("Entry ownership is not enforced on update and delete")
	}

	r := handlers.NewRouter(handlers.RouterConfig{
		Auth:           handlers.NewAuthHandler(credentialService, auditor),
		Values:         handlers.NewValueHandler(sessionService, entryService, auditor),
		AllowedOrigins: cfg.AllowedOrigins,
		RequestTimeout: cfg.RequestTimeout,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.WithField("addr", server.Addr).Info("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Server shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Fatal("Server forced to shutdown")
	}

	log.Info("Server stopped")
}
