package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ChannelMock struct {
	mock.Mock
}

func (m *ChannelMock) Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	args := m.Called(exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

func (m *ChannelMock) ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error {
	return m.Called(name, kind, durable).Error(0)
}

func (m *ChannelMock) QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error) {
	ret := m.Called(name, durable)
	return amqp.Queue{Name: name}, ret.Error(0)
}

func (m *ChannelMock) QueueBind(name, key, exchange string, noWait bool, args amqp.Table) error {
	return m.Called(name, key, exchange).Error(0)
}

func TestPublisher_Publish(t *testing.T) {
	type testMsg struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}

	t.Run("success", func(t *testing.T) {
		ch := new(ChannelMock)
		ch.On("Publish", NotificationsExchange, RoutingKeyMembershipExpiring, false, false,
			mock.MatchedBy(func(p amqp.Publishing) bool {
				var got testMsg
				if err := json.Unmarshal(p.Body, &got); err != nil {
					return false
				}
				_, uuidErr := uuid.Parse(p.MessageId)
				return got == testMsg{ID: 1, Name: "Hello"} &&
					p.ContentType == "application/json" &&
					p.DeliveryMode == amqp.Persistent &&
					uuidErr == nil
			})).Return(nil).Once()

		p := NewPublisher(ch, NotificationsExchange)
		err := p.Publish(context.Background(), RoutingKeyMembershipExpiring, testMsg{ID: 1, Name: "Hello"})
		require.NoError(t, err)
		ch.AssertExpectations(t)
	})

	t.Run("marshal error", func(t *testing.T) {
		ch := new(ChannelMock)
		p := NewPublisher(ch, NotificationsExchange)

		err := p.Publish(context.Background(), "key", struct {
			Ch chan int `json:"ch"`
		}{Ch: make(chan int)})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rabbitmq.Publish")
		ch.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("broker error", func(t *testing.T) {
		ch := new(ChannelMock)
		ch.On("Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("channel closed")).Once()

		err := NewPublisher(ch, NotificationsExchange).Publish(context.Background(), "key", "msg")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "channel closed")
	})

	t.Run("cancelled context", func(t *testing.T) {
		ch := new(ChannelMock)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := NewPublisher(ch, NotificationsExchange).Publish(ctx, "key", "msg")
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestDeclareTopology(t *testing.T) {
	ch := new(ChannelMock)
	ch.On("ExchangeDeclare", NotificationsExchange, "direct", true).Return(nil).Once()
	for _, q := range GetNotificationQueues() {
		ch.On("QueueDeclare", q.QueueName, true).Return(nil).Once()
		ch.On("QueueBind", q.QueueName, q.RoutingKey, NotificationsExchange).Return(nil).Once()
	}

	require.NoError(t, DeclareTopology(ch, GetNotificationQueues()))
	ch.AssertExpectations(t)
}

func TestDeclareTopology_ExchangeError(t *testing.T) {
	ch := new(ChannelMock)
	ch.On("ExchangeDeclare", NotificationsExchange, "direct", true).Return(errors.New("access refused")).Once()

	err := DeclareTopology(ch, GetNotificationQueues())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access refused")
}
