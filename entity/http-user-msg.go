package entity

// ChatRequest is the inbound body of a chat POST. The caller resends the
// full prior conversation each turn, there is no server-side history.
type ChatRequest struct {
	Message      string          `json:"message" validate:"required"`
	Conversation []DialogMessage `json:"conversation"`
}

type ChatReply struct {
	Reply string `json:"reply"`
}

type HealthStatus struct {
	Status string `json:"status"`
}
