package main

import (
	"net/http"
	"os"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	authapp "github.com/Anukhusdevlopers/scrap-pickup-backend/application/auth"
	pickupapp "github.com/Anukhusdevlopers/scrap-pickup-backend/application/pickup"
	scrapapp "github.com/Anukhusdevlopers/scrap-pickup-backend/application/scrap"
	"github.com/Anukhusdevlopers/scrap-pickup-backend/cmd/config"
	redisclient "github.com/Anukhusdevlopers/scrap-pickup-backend/cmd/redis"
	_ "github.com/Anukhusdevlopers/scrap-pickup-backend/docs"
	otpRepo "github.com/Anukhusdevlopers/scrap-pickup-backend/repository/otp"
	pickupRepo "github.com/Anukhusdevlopers/scrap-pickup-backend/repository/pickup"
	scrapRepo "github.com/Anukhusdevlopers/scrap-pickup-backend/repository/scrap"
	userRepo "github.com/Anukhusdevlopers/scrap-pickup-backend/repository/user"
	"github.com/Anukhusdevlopers/scrap-pickup-backend/thirdparty/rabbitmq"
	"github.com/Anukhusdevlopers/scrap-pickup-backend/thirdparty/whatsapp"
	"github.com/Anukhusdevlopers/scrap-pickup-backend/transport"
	"github.com/Anukhusdevlopers/scrap-pickup-backend/utils/logger"
)

// @title SCRAP PICKUP API
// @version 1.0
// @description Scrap pickup backend API Documentation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	if cfg.Auth.JWTSecret == "" {
		logger.Fatal("JWT_SECRET must be set")
	}

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// OTP codes live in Redis when configured, otherwise in process memory.
	var otpStore otpRepo.Store
	if cfg.Redis.Host != "" {
		if err := redisclient.New(cfg); err != nil {
			logger.Fatal("err connect redis", zap.Error(err))
		}
		defer func() {
			_ = redisclient.Close()
		}()
		otpStore = otpRepo.NewRedisStore(redisclient.Get())
	} else {
		logger.Warn("REDIS_HOST not set, OTP codes are kept in memory and lost on restart")
		otpStore = otpRepo.NewMemoryStore()
	}

	// Optional broker; pickup created events are skipped when absent.
	var publisher pickupapp.EventPublisher
	if cfg.RabbitMQ.Host != "" {
		rabbitPublisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer func() {
			_ = rabbitPublisher.Close()
		}()
		publisher = rabbitPublisher
	}

	if err := os.MkdirAll(cfg.Server.UploadDir, 0o755); err != nil {
		logger.Fatal("err create upload dir", zap.Error(err))
	}

	dispatcher := whatsapp.NewClient(cfg.WhatsApp.APIURL, cfg.WhatsApp.APIKey, cfg.WhatsApp.Sender, cfg.WhatsApp.Timeout)

	// Initialize repositories
	UserRepo := userRepo.NewUserRepository(db)
	ScrapRepo := scrapRepo.NewScrapRepository(db)
	PickupRepo := pickupRepo.NewPickupRepository(db)

	// Initialize application layers
	AuthApp := authapp.NewAuthApp(cfg, UserRepo, otpStore, dispatcher)
	PickupApp := pickupapp.NewPickupApp(cfg, PickupRepo, publisher)
	ScrapApp := scrapapp.NewScrapApp(ScrapRepo)

	httpTransport := transport.NewTransport(cfg, AuthApp, PickupApp, ScrapApp)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
