package models

import "time"

// PhotoStub is one element of a feed page.
type PhotoStub struct {
	ID string `json:"photo_id"`
}

type Account struct {
	ID   string `json:"account_id"`
	Name string `json:"name"`
}

// Photo is the full feed card.
type Photo struct {
	ID         string    `json:"photo_id"`
	Account    Account   `json:"account"`
	Title      string    `json:"title"`
	Caption    string    `json:"caption"`
	Location   string    `json:"location"`
	CapturedAt time.Time `json:"captured_at"`
	Likes      int       `json:"likes"`
	Comments   int       `json:"comments"`
	Views      int       `json:"views"`
}

// Translation is a caption rendered in another language.
type Translation struct {
	Caption  string `json:"caption"`
	Language string `json:"language"`
}
