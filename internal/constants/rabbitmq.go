package constants

// Имена обменников
const (
	ExchangeNotifications = "broker_notifications"
)

// Ключи маршрутизации
const (
	RoutingKeyCallReminder = "notify.call.reminder"
)
