package domain

// Message is the client-facing shape of a stored chat message.
// ID is the full sort key; Timestamp is its ISO-8601 segment.
type Message struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	SenderID  string `json:"senderId"`
	Timestamp string `json:"timestamp"`
}

type SendMessageRequest struct {
	Content string `json:"content" validate:"required"`
}
