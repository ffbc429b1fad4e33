package httpapi

import (
	"time"

	"github.com/dmitrijs2005/heritagewatch/internal/server/models"
	"github.com/dmitrijs2005/heritagewatch/internal/server/services"
)

type credentialsRequest struct {
	Email    string `json:"email_address"`
	Password string `json:"password"`
}

type accountResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

type sessionResponse struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	Expire    time.Time `json:"expire"`
}

func newSessionResponse(g *services.SessionGrant) sessionResponse {
	return sessionResponse{
		SessionID: g.SessionID,
		UserID:    g.UserID,
		Email:     g.Email,
		Token:     g.Token,
		Expire:    g.Expires,
	}
}

type reportRequest struct {
	PlaceName   string   `json:"place_name"`
	Designation string   `json:"designation"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Photos      []string `json:"photos"`
}

type reportResponse struct {
	ID          string    `json:"report_id"`
	PlaceName   string    `json:"place_name"`
	Designation string    `json:"designation"`
	CreatedAt   time.Time `json:"creation_time"`
	Status      string    `json:"object_status"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Photos      []string  `json:"photos"`
}

func newReportResponse(r *models.Report) reportResponse {
	photos := r.Photos
	if photos == nil {
		photos = []string{}
	}
	return reportResponse{
		ID:          r.ID,
		PlaceName:   r.PlaceName,
		Designation: r.Designation,
		CreatedAt:   r.CreatedAt,
		Status:      r.Status,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		Photos:      photos,
	}
}

type uploadRequest struct {
	ContentType string `json:"content_type"`
}

type uploadResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

type photoStub struct {
	ID string `json:"photo_id"`
}

type accountRef struct {
	ID   string `json:"account_id"`
	Name string `json:"name"`
}

type photoResponse struct {
	ID         string     `json:"photo_id"`
	Account    accountRef `json:"account"`
	Title      string     `json:"title"`
	Caption    string     `json:"caption"`
	Location   string     `json:"location"`
	CapturedAt time.Time  `json:"captured_at"`
	Likes      int        `json:"likes"`
	Comments   int        `json:"comments"`
	Views      int        `json:"views"`
}

func newPhotoResponse(p *models.Photo) photoResponse {
	return photoResponse{
		ID:         p.ID,
		Account:    accountRef{ID: p.AccountID, Name: p.AccountName},
		Title:      p.Title,
		Caption:    p.Caption,
		Location:   p.Location,
		CapturedAt: p.CapturedAt,
		Likes:      p.Likes,
		Comments:   p.Comments,
		Views:      p.Views,
	}
}

type translationRequest struct {
	Caption  string `json:"caption"`
	Language string `json:"language"`
}

type translationResponse struct {
	ID       string `json:"translation_id"`
	PhotoID  string `json:"photo_id"`
	Caption  string `json:"caption"`
	Language string `json:"language"`
}
