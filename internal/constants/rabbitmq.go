package constants

// Ключи маршрутизации
const (
	RoutingKeySavedSearchAlerts = "notifications.saved_search.alerts"
	RoutingKeyNewLeads          = "notifications.leads.new"
)

// Обменник уведомлений
const (
	NotificationsExchange     = "notifications"
	NotificationsExchangeType = "direct"
)
