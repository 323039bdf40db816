package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"github.com/Najehsaidani/We-Connect-sub000/config"
	"github.com/Najehsaidani/We-Connect-sub000/internal/adapters/auth"
	"github.com/Najehsaidani/We-Connect-sub000/internal/adapters/directory"
	"github.com/Najehsaidani/We-Connect-sub000/internal/adapters/events"
	delivery "github.com/Najehsaidani/We-Connect-sub000/internal/delivery/http"
	"github.com/Najehsaidani/We-Connect-sub000/internal/delivery/http/controllers"
	"github.com/Najehsaidani/We-Connect-sub000/internal/delivery/http/middleware"
	"github.com/Najehsaidani/We-Connect-sub000/internal/services"
)

// @title We-Connect Event API
// @version 1.0
// @description Aggregation service unifying the university and club event domains behind one attending/not-attending model.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger := config.NewLogger(cfg)

	httpClient := &http.Client{Timeout: 15 * time.Second}
	burst := int(cfg.UpstreamRPS)
	if burst < 1 {
		burst = 1
	}

	userDirectory := directory.NewHTTPDirectory(cfg.UserAPIURL, httpClient)
	university := events.NewUniversity(cfg.UniversityAPIURL, httpClient,
		rate.NewLimiter(rate.Limit(cfg.UpstreamRPS), burst), userDirectory, logger)
	club := events.NewClub(cfg.ClubAPIURL, httpClient,
		rate.NewLimiter(rate.Limit(cfg.UpstreamRPS), burst), userDirectory, logger)

	resolver := services.NewParticipationResolver(university, club, logger)
	reconciler := services.NewReconciler(university, club, logger)
	catalog := services.NewCatalogService(university, club, reconciler, logger)
	eventSvc := services.NewEventService(university, club)

	router := delivery.NewRouter(
		controllers.NewCatalogController(logger, catalog),
		controllers.NewParticipationController(logger, resolver, reconciler),
		controllers.NewEventController(logger, eventSvc),
		auth.NewJWTVerifier(cfg.JWTSecret),
	)
	handler := middleware.CORS(cfg.AllowedOrigins, middleware.Logging(logger, router))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "err", err)
	}
}
