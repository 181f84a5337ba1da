package rabbitmq

// NotificationsExchange: exchange для уведомлений пользователям.
const NotificationsExchange = "notifications"

// RoutingKeyMembershipExpiring: ключ сообщений об истекающем членстве.
const RoutingKeyMembershipExpiring = "membership.expiring"

// QueueConfig связывает очередь с ключом маршрутизации.
type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// GetNotificationQueues возвращает очереди, которые слушают воркеры уведомлений.
func GetNotificationQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: "notifications.membership_expiring", RoutingKey: RoutingKeyMembershipExpiring},
	}
}
