package models

import "time"

// User is the identity handed over by the authentication provider.
// The backend never authenticates; it only tags personalization data.
type User struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoURL"`
}

// UserProfile is the persisted profile record created on first login.
type UserProfile struct {
	UID         string    `json:"uid"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	PhotoURL    string    `json:"photoURL"`
	CreatedAt   time.Time `json:"createdAt"`
	XP          int       `json:"xp"`
	Level       int       `json:"level"`
}
