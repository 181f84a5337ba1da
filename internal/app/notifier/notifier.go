// Package notifier собирает процесс уведомлений об истекающих членствах.
package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/streadway/amqp"

	"github.com/sohagq3024/my-secret-web-2.0/internal/config"
	"github.com/sohagq3024/my-secret-web-2.0/internal/lib/rabbitmq"
	"github.com/sohagq3024/my-secret-web-2.0/internal/lib/sl"
	"github.com/sohagq3024/my-secret-web-2.0/internal/metrics"
	notifierservice "github.com/sohagq3024/my-secret-web-2.0/internal/services/notifier"
	"github.com/sohagq3024/my-secret-web-2.0/internal/storage/postgresql"
)

// App представляет приложение уведомлений.
type App struct {
	service  *notifierservice.Service
	db       *postgresql.Storage
	conn     *amqp.Connection
	ch       *amqp.Channel
	interval time.Duration
	logger   *slog.Logger
}

func waitForDB(ctx context.Context, db *postgresql.Storage) error {
	for range 10 {
		if err := db.CheckDatabaseReady(ctx); err == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(3 * time.Second):
		}
	}
	return fmt.Errorf("database not ready after retries")
}

// New создает новый экземпляр приложения уведомлений.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	if cfg.Driver != config.DriverPostgres {
		return nil, fmt.Errorf("expiry notifier requires driver %q, got %q", config.DriverPostgres, cfg.Driver)
	}

	conn, err := rabbitmq.Connect(ctx, cfg.RabbitMQURL, cfg.RabbitMQMaxRetries, cfg.RabbitMQRetryDelay)
	if err != nil {
		return nil, fmt.Errorf("failed to connect RabbitMQ: %w", err)
	}

	ch, err := rabbitmq.SetupChannel(conn, rabbitmq.GetNotificationQueues())
	if err != nil {
		closeResources(nil, conn, logger)
		return nil, fmt.Errorf("failed to setup RabbitMQ channel: %w", err)
	}

	db, err := postgresql.New(ctx, cfg.StorageConnectionString)
	if err != nil {
		closeResources(ch, conn, logger)
		return nil, fmt.Errorf("failed to connect storage: %w", err)
	}

	if err := waitForDB(ctx, db); err != nil {
		_ = db.Close()
		closeResources(ch, conn, logger)
		return nil, err
	}

	publisher := rabbitmq.NewPublisher(ch, rabbitmq.NotificationsExchange)
	m := metrics.New(prometheus.DefaultRegisterer)
	service := notifierservice.New(db, publisher, logger, m, cfg.Window)

	return &App{
		service:  service,
		db:       db,
		conn:     conn,
		ch:       ch,
		interval: cfg.Interval,
		logger:   logger,
	}, nil
}

func closeResources(ch *amqp.Channel, conn *amqp.Connection, logger *slog.Logger) {
	if ch != nil {
		if err := ch.Close(); err != nil {
			logger.Error("failed to close channel", sl.Err(err))
		}
	}
	if conn != nil {
		if err := conn.Close(); err != nil {
			logger.Error("failed to close connection", sl.Err(err))
		}
	}
}

// Run запускает проверку истекающих членств и блокируется до отмены ctx.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info("expiry notifier started", slog.Duration("interval", a.interval))

	a.service.Run(ctx, a.interval)

	a.logger.Info("shutting down expiry notifier")
	closeResources(a.ch, a.conn, a.logger)
	if err := a.db.Close(); err != nil {
		a.logger.Error("failed to close storage", sl.Err(err))
	}
	return nil
}
