package rabbitmq

// savedSearchAlertMessage - тело сообщения для mailer-сервиса о новых
// объектах по сохраненному поиску.
type savedSearchAlertMessage struct {
	SearchID   string                 `json:"search_id"`
	UserID     string                 `json:"user_id"`
	SearchName string                 `json:"search_name"`
	Properties []alertPropertyMessage `json:"properties"`
}

type alertPropertyMessage struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	City  string  `json:"city"`
	Price float64 `json:"price"`
}

// newLeadMessage - тело сообщения о новой заявке по объявлению.
type newLeadMessage struct {
	LeadID        string `json:"lead_id"`
	PropertyID    string `json:"property_id"`
	OwnerID       string `json:"owner_id"`
	PropertyTitle string `json:"property_title"`
	Name          string `json:"name"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone"`
	Message       string `json:"message,omitempty"`
}
