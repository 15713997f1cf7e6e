package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"agrovista.dev/agro-telemetry-service/pkg/agro"
	"agrovista.dev/agro-telemetry-service/pkg/common"
	"agrovista.dev/agro-telemetry-service/pkg/db"
	agroHttp "agrovista.dev/agro-telemetry-service/pkg/http"
	"agrovista.dev/agro-telemetry-service/pkg/mail"
	"agrovista.dev/agro-telemetry-service/pkg/tsdb"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	logger := common.GetLogger()

	var dialector gorm.Dialector
	agroDbType := os.Getenv(common.EnvKeyAgroDBType)
	switch agroDbType {
	case "postgres":
		dialector = db.UsePostgresDialector(os.Getenv(common.EnvKeyAgroPostgresDSN))
	case "file":
		dialector = db.UseSqliteDialector()
	case "memory":
		dialector = db.UseMemorySqliteDialector()
	default:
		log.Fatal("Unknown AGRO_DB_TYPE: " + agroDbType)
	}

	dbInstance, err := db.Open(dialector)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer dbInstance.Close()

	var timeSeries tsdb.TimeSeries
	if influxURL := strings.TrimSpace(os.Getenv(common.EnvKeyInfluxURL)); influxURL != "" {
		influxClient := tsdb.NewClient(tsdb.Config{
			URL:    influxURL,
			Token:  os.Getenv(common.EnvKeyInfluxToken),
			Org:    os.Getenv(common.EnvKeyInfluxOrg),
			Bucket: os.Getenv(common.EnvKeyInfluxBucket),
		})
		defer influxClient.Close()
		timeSeries = influxClient
		logger.Info("Time-series store configured", zap.String("url", influxURL))
	}

	var mailer mail.Dispatcher
	if mailHost := strings.TrimSpace(os.Getenv(common.EnvKeyMailHost)); mailHost != "" {
		mailPort := 587
		if rawPort := os.Getenv(common.EnvKeyMailPort); rawPort != "" {
			if mailPort, err = strconv.Atoi(rawPort); err != nil {
				log.Fatal("Invalid MAIL_PORT, should be an int value")
			}
		}
		mailer = mail.NewSMTPDispatcher(mail.Config{
			Host:              mailHost,
			Port:              mailPort,
			Username:          os.Getenv(common.EnvKeyMailUsername),
			Password:          os.Getenv(common.EnvKeyMailPassword),
			OAuthClientID:     os.Getenv(common.EnvKeyOAuthClientID),
			OAuthClientSecret: os.Getenv(common.EnvKeyOAuthClientSecret),
			OAuthRefreshToken: os.Getenv(common.EnvKeyOAuthRefreshToken),
		})
		logger.Info("Mail dispatcher configured", zap.String("host", mailHost))
	}

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyAgroDefaultRate), 64); err != nil {
		log.Fatal("Invalid AGRO_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyAgroDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid AGRO_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	agroCore := agro.Agro{
		Db:         *dbInstance,
		TimeSeries: timeSeries,
		Mailer:     mailer,
		Recipient: agro.Recipient{
			UserID: os.Getenv(common.EnvKeyAlertUserID),
			Email:  os.Getenv(common.EnvKeyAlertEmail),
		},
	}
	agroCore.WithServices(agro.ServiceOpts{
		Telemetry:    agroCore.GetITelemetry(),
		Alert:        agroCore.GetIAlert(),
		Notification: agroCore.GetINotification(),
		Catalog:      agroCore.GetICatalog(),
	})

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyAgroHttpHostPort))
	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":3002"
	}

	rs := &agroHttp.RestfulServer{
		Server:           gin.Default(),
		Agro:             &agroCore,
		RateLimiterStore: agro.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.Float64("default_rate", defaultRate),
		zap.Int64("default_burst", defaultBurst))

	srv := &http.Server{
		Addr:    httpHostPort,
		Handler: rs.Server,
	}

	go func() {
		logger.Info("Starting HTTP server on: " + httpHostPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server failed to serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", zap.Error(err))
	}
}
