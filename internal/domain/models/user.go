package models

import "time"

// User roles as issued by the backend.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// User is a backend account. Password is write-only: it is sent on
// create/update and never rendered back.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"password,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}
