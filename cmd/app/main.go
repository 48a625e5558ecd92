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

	"campusdelivery/api"
	"campusdelivery/cmd"
	httpin "campusdelivery/internal/adapters/in/http"
	"campusdelivery/internal/adapters/out/kafka"
	"campusdelivery/internal/adapters/out/postgres"
	"campusdelivery/internal/adapters/out/redis"
	"campusdelivery/internal/adapters/out/sms"
	"campusdelivery/internal/core/ports"

	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	redisClient, err := redis.NewClient(ctx, configs.RedisAddr, configs.RedisPassword, configs.RedisDB)
	if err != nil {
		log.Fatalf("Error connecting to redis: %v", err)
	}
	defer redisClient.Close()

	var publisher ports.EventPublisher
	if len(configs.KafkaBrokers) > 0 {
		kafkaPublisher := kafka.NewOrderEventsPublisher(configs.KafkaBrokers, configs.KafkaOrderEventsTopic)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
	} else {
		logger.Warn("KAFKA_BROKERS is empty, order events are not published")
	}

	var otpSender ports.OTPSender = sms.NewLogSender(logger)
	if configs.SMSGatewayURL != "" {
		otpSender = sms.NewGatewaySender(configs.SMSGatewayURL, configs.SMSGatewayToken)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, publisher, redis.NewOTPStore(redisClient), otpSender, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, &app, configs, logger)
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) {
	tokens := app.CreateTokens()
	e, err := httpin.NewRouter(ctx, app.CreateServer(tokens), tokens, httpin.RouterOptions{
		OpenAPI:        api.OpenAPI,
		AllowedOrigins: configs.FrontendOrigins,
		Logger:         logger,
	})
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP shutdown failed", "error", err)
	}
}
