package domain

// User is a registered account. The profile is created once at registration
// and is immutable except for the password hash.
type User struct {
	UserID       string `json:"id"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
}

// UserSummary is the directory-listing view of a user.
type UserSummary struct {
	UserID string `json:"id"`
	Name   string `json:"name"`
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
}
