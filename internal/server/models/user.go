// Package models holds the rows the report service persists.
package models

import "time"

type User struct {
	ID           string
	Email        string
	Salt         []byte
	PasswordHash []byte
	CreatedAt    time.Time
}

// Session is a server-side login record. Its ID is embedded in the signed
// token, so deleting the row revokes the token.
type Session struct {
	ID        string
	UserID    string
	Expires   time.Time
	CreatedAt time.Time
}

func (s *Session) Expired(now time.Time) bool {
	return !s.Expires.After(now)
}
