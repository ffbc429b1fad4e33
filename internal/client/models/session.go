// Package models defines the records the client exchanges with the remote
// service and keeps in its local store.
package models

import (
	"errors"
	"regexp"
	"time"
)

// Session is the record returned by the service on successful login.
type Session struct {
	ID     string    `json:"session_id"`
	UserID string    `json:"user_id"`
	Email  string    `json:"email"`
	Token  string    `json:"token,omitempty"`
	Expire time.Time `json:"expire"`
}

// Valid reports whether the record carries a session id, which is the
// credential sent on authenticated calls.
func (s *Session) Valid() bool {
	return s != nil && s.ID != ""
}

// Credentials are what the login screen collects.
type Credentials struct {
	Email    string `json:"email_address"`
	Password string `json:"password"`
}

var (
	ErrEmptyField   = errors.New("empty field")
	ErrInvalidEmail = errors.New("invalid email address")
)

var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

// Validate checks the form before anything is sent. Empty fields are
// reported first, then a malformed address.
func (c Credentials) Validate() error {
	if c.Email == "" || c.Password == "" {
		return ErrEmptyField
	}
	if !emailPattern.MatchString(c.Email) {
		return ErrInvalidEmail
	}
	return nil
}
