package models

import "time"

type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"` // unique, 3-30 chars
	Email        string    `json:"email"`    // unique, stored lowercase
	PasswordHash string    `json:"-"`        // don't expose hash
	CreatedAt    time.Time `json:"created_at"`
}
