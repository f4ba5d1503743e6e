package domain

// User is a person who can author documents and act as a reviewer.
type User struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	IsActive bool   `json:"is_active"`
}
