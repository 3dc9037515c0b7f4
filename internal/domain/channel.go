package domain

// Channel is a public or locked message channel. The META row in the table is
// the sole authority for the lock state; IsLocked here is always a normalized
// boolean regardless of how the stored attribute was typed.
type Channel struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsLocked  bool   `json:"isLocked"`
	CreatorID string `json:"creatorId"`
}

type CreateChannelRequest struct {
	Name     string `json:"name" validate:"required,max=64"`
	IsLocked bool   `json:"isLocked"`
}
