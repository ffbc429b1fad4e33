package models

import "time"

// Photo is a public feed card.
type Photo struct {
	ID          string
	AccountID   string
	AccountName string
	Title       string
	Caption     string
	Location    string
	CapturedAt  time.Time
	Likes       int
	Comments    int
	Views       int
}

// Translation is a caption submitted in another language.
type Translation struct {
	ID        string
	PhotoID   string
	Language  string
	Caption   string
	CreatedAt time.Time
}
