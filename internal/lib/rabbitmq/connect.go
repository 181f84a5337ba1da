// Package rabbitmq содержит подключение к RabbitMQ, объявление топологии
// и публикацию JSON-сообщений.
package rabbitmq

import (
	"context"
	"fmt"
	"time"

	"github.com/streadway/amqp"
)

// Connect подключается к брокеру, повторяя попытку retries раз с паузой delay.
func Connect(ctx context.Context, connection string, retries int, delay time.Duration) (*amqp.Connection, error) {
	const op = "rabbitmq.Connect"
	if retries < 1 {
		retries = 1
	}

	var err error
	for attempt := 0; attempt < retries; attempt++ {
		var conn *amqp.Connection
		conn, err = amqp.Dial(connection)
		if err == nil {
			return conn, nil
		}
		if attempt == retries-1 {
			break
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%s: %w", op, ctx.Err())
		case <-time.After(delay):
		}
	}

	return nil, fmt.Errorf("%s: %w", op, err)
}

// SetupChannel открывает канал и объявляет exchange и очереди.
func SetupChannel(conn *amqp.Connection, queues []QueueConfig) (*amqp.Channel, error) {
	const op = "rabbitmq.SetupChannel"

	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := DeclareTopology(ch, queues); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ch, nil
}

// Declarer: часть amqp.Channel, нужная для объявления топологии.
type Declarer interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	QueueBind(name, key, exchange string, noWait bool, args amqp.Table) error
}

// DeclareTopology объявляет durable direct exchange и привязывает к нему очереди.
func DeclareTopology(ch Declarer, queues []QueueConfig) error {
	if err := ch.ExchangeDeclare(NotificationsExchange, "direct", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange %s: %w", NotificationsExchange, err)
	}

	for _, q := range queues {
		if _, err := ch.QueueDeclare(q.QueueName, true, false, false, false, nil); err != nil {
			return fmt.Errorf("declare queue %s: %w", q.QueueName, err)
		}
		if err := ch.QueueBind(q.QueueName, q.RoutingKey, NotificationsExchange, false, nil); err != nil {
			return fmt.Errorf("bind queue %s with routing key %s: %w", q.QueueName, q.RoutingKey, err)
		}
	}
	return nil
}
