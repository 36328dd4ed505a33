package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/muhammadheryan/contacts-api/cmd/config"
	"github.com/muhammadheryan/contacts-api/thirdparty/rabbitmq"
	"github.com/muhammadheryan/contacts-api/utils/logger"
	"go.uber.org/zap"
)

// logMailer stands in for a real mail provider. The queue contract is the
// boundary; wiring SendGrid or SMTP means replacing this type only.
type logMailer struct{}

func (logMailer) SendVerificationEmail(ctx context.Context, email, verificationLink string) error {
	logger.Info("verification email",
		zap.String("to", email),
		zap.String("link", verificationLink),
	)
	return nil
}

func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting email worker", zap.String("env", cfg.Environment))

	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, logMailer{})
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer func() {
		_ = consumer.Close()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := consumer.Consume(ctx); err != nil && ctx.Err() == nil {
		logger.Fatal("consumer stopped", zap.Error(err))
	}

	logger.Info("email worker stopped")
}
