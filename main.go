package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jarayid-admin/domain/repository"
	"jarayid-admin/infrastructure/cache"
	"jarayid-admin/infrastructure/clients/automation"
	"jarayid-admin/infrastructure/clients/dashboard"
	"jarayid-admin/infrastructure/configuration"
	"jarayid-admin/infrastructure/logger"
	"jarayid-admin/infrastructure/persistence"
	httpHandler "jarayid-admin/interfaces/http"
	"jarayid-admin/server"
	"jarayid-admin/usecase"

	"golang.org/x/sync/errgroup"
)

var httpServer *http.Server

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx := context.Background()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	// Load env from files (non-destructive; OS env still has precedence)
	configuration.LoadEnvFromFile("config.env", ".env")

	app := configuration.C.App

	// The automation backend owns every bulletin, source, scheduler and
	// sponsor row; a bad base URL means nothing can work, so fail fast.
	automationHost, err := automation.NewHost(
		configuration.C.Automation.Host,
		time.Duration(configuration.C.Automation.TimeoutSeconds)*time.Second,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Fatal("Invalid automation backend host")
	}

	dashboardClient, err := dashboard.NewClient(
		configuration.C.Dashboard.Host,
		time.Duration(configuration.C.Dashboard.TimeoutSeconds)*time.Second,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Fatal("Invalid dashboard host")
	}

	redisClient, _ := cache.NewCache(
		ctx,
		fmt.Sprintf("%s:%s", configuration.C.RedisClient.Host, configuration.C.RedisClient.Port),
		configuration.C.RedisClient.Username,
		configuration.C.RedisClient.Password,
	)
	referenceCache := cache.NewReferenceCache(redisClient)

	// PostgreSQL only backs the operator audit trail; the gateway still
	// runs without it.
	var auditLog repository.IAuditLog
	var auditHandler httpHandler.IAuditHandler
	if postgres, dbErr := persistence.NewPostgreSQLDB(); dbErr != nil {
		logger.GetLogger().WithField("error", dbErr).Warn("PostgreSQL not available; audit trail disabled")
	} else {
		if err := persistence.EnsureAuditSchema(postgres); err != nil {
			logger.GetLogger().WithField("error", err).Error("failed ensuring audit schema")
		}
		auditRepository := persistence.NewAuditRepository(postgres)
		auditLog = auditRepository
		auditHandler = httpHandler.NewAuditHandler(auditRepository)
	}

	videoTimeout := time.Duration(configuration.C.Video.TimeoutSeconds) * time.Second

	bulletinUsecase := usecase.NewBulletinUsecase(automationHost, automationHost, auditLog, videoTimeout)
	sourceUsecase := usecase.NewSourceUsecase(automationHost, dashboardClient, referenceCache, auditLog)
	schedulerUsecase := usecase.NewSchedulerUsecase(automationHost, dashboardClient, referenceCache, auditLog)
	sponsorUsecase := usecase.NewSponsorUsecase(automationHost, auditLog)
	configurationUsecase := usecase.NewConfigurationUsecase(automationHost, auditLog)

	bulletinHandler := httpHandler.NewBulletinHandler(bulletinUsecase)
	sourceHandler := httpHandler.NewSourceHandler(sourceUsecase)
	schedulerHandler := httpHandler.NewSchedulerHandler(schedulerUsecase)
	sponsorHandler := httpHandler.NewSponsorHandler(sponsorUsecase)
	configurationHandler := httpHandler.NewConfigurationHandler(configurationUsecase)
	referenceHandler := httpHandler.NewReferenceHandler(dashboardClient, referenceCache)

	router := server.InitiateRouter(
		bulletinHandler,
		sourceHandler,
		schedulerHandler,
		sponsorHandler,
		configurationHandler,
		referenceHandler,
		auditHandler,
		configuration.C.Operator.Default,
	)

	port := app.Port
	logger.GetLogger().WithField("port", port).Info("Starting application")
	g.Go(func() error {
		httpServer = &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		}
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-ctx.Done():
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if httpServer != nil {
		_ = httpServer.Shutdown(shutdownCtx)
	}

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}
