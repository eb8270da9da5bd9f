package response

// WebhookResponse is the acknowledgment contract with Pagar.me: the webhook
// endpoint answers 200 with this body in virtually every case, because any
// non-2xx status triggers redelivery.

type WebhookResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
	EventType string `json:"event_type,omitempty"`
}

func WebhookProcessed(eventType string) WebhookResponse {
	return WebhookResponse{
		Success:   true,
		Message:   "Webhook processado com sucesso",
		EventType: eventType,
	}
}

func WebhookFailed(eventType string) WebhookResponse {
	return WebhookResponse{
		Success:   false,
		Error:     "Erro ao processar webhook",
		EventType: eventType,
	}
}
