package entity

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// DialogMessage is one turn of the conversation as resent by the caller.
// Turns pass through the pipeline unmodified and order-preserved.
type DialogMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
