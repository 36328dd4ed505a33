package main

import (
	"net/http"
	"os"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	authapp "github.com/muhammadheryan/contacts-api/application/auth"
	avatarapp "github.com/muhammadheryan/contacts-api/application/avatar"
	contactapp "github.com/muhammadheryan/contacts-api/application/contact"
	"github.com/muhammadheryan/contacts-api/cmd/config"
	redisclient "github.com/muhammadheryan/contacts-api/cmd/redis"
	_ "github.com/muhammadheryan/contacts-api/docs"
	accountRepo "github.com/muhammadheryan/contacts-api/repository/account"
	contactRepo "github.com/muhammadheryan/contacts-api/repository/contact"
	redisRepo "github.com/muhammadheryan/contacts-api/repository/redis"
	"github.com/muhammadheryan/contacts-api/thirdparty/rabbitmq"
	"github.com/muhammadheryan/contacts-api/transport"
	"github.com/muhammadheryan/contacts-api/utils/logger"
	"go.uber.org/zap"
)

// @title CONTACTS API
// @version 1.0
// @description Contact management API with account verification and avatars
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

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Make sure the public avatar directory exists
	if err := os.MkdirAll(cfg.Avatar.Dir, 0o755); err != nil {
		logger.Fatal("err create avatar dir", zap.Error(err))
	}

	// Connect to RabbitMQ for verification emails
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer func() {
		_ = publisher.Close()
	}()

	// Initialize repositories
	AccountRepo := accountRepo.NewAccountRepository(db)
	ContactRepo := contactRepo.NewContactRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	AuthApp := authapp.NewAuthApp(cfg, AccountRepo, RedisRepo, publisher)
	ContactApp := contactapp.NewContactApp(ContactRepo)
	AvatarApp := avatarapp.NewAvatarApp(cfg, AccountRepo)

	httpTransport := transport.NewTransport(cfg, AuthApp, ContactApp, AvatarApp)

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
