package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"liyu1981.xyz/energy-meter-service/pkg/common"
	"liyu1981.xyz/energy-meter-service/pkg/config"
	"liyu1981.xyz/energy-meter-service/pkg/db"
	meterHttp "liyu1981.xyz/energy-meter-service/pkg/http"
	"liyu1981.xyz/energy-meter-service/pkg/meter"
)

const shutdownGrace = 10 * time.Second

func main() {
	err := godotenv.Load()
	if err != nil {
		common.GetLogger().Warn("Error loading .env file", zap.Error(err))
	}
	if err := config.Load(); err != nil {
		common.GetLogger().Fatal("Error loading config", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database := db.New(db.Options{
		URI:            config.MongoURI(),
		Database:       config.MongoDatabase(),
		Collection:     config.MongoCollection(),
		ConnectTimeout: config.MongoConnectTimeout(),
	})
	database.Connect(ctx)

	core := meter.Meter{Db: database}
	core.WithServices(meter.ServiceOpts{
		Reading: core.GetIReading(),
	})

	rs := meterHttp.RestfulServer{
		Server:             gin.Default(),
		Meter:              &core,
		Status:             database.Status(),
		DatabaseConfigured: config.MongoURI() != "",
	}
	rs.Setup()

	server := &http.Server{
		Addr:    ":" + config.Port(),
		Handler: rs.Server,
	}

	go func() {
		common.GetLogger().Info("Energy meter service listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			common.GetLogger().Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	stop()
	common.GetLogger().Info("Shutdown signal received, draining")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		common.GetLogger().Error("HTTP server shutdown", zap.Error(err))
	}
	if err := database.Disconnect(shutdownCtx); err != nil {
		common.GetLogger().Error("MongoDB disconnect", zap.Error(err))
	}
	common.GetLogger().Info("Energy meter service stopped")
}
