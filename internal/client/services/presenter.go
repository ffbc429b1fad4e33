// Package services contains the client core: the session lifecycle, the
// report list cache and its deletion flow, caption translations, the photo
// feed paginator and the report-creation draft.
//
// Services never render anything themselves; state changes are published to
// a Presenter supplied by the UI.
package services

import (
	"errors"

	"github.com/dmitrijs2005/heritagewatch/internal/client/models"
	"github.com/dmitrijs2005/heritagewatch/internal/client/session"
)

const (
	WrongPasswordMessage = "Invalid Email Or Password"
	EmptyFieldMessage    = "You can't leave this empty!"
	InvalidEmailMessage  = "Invalid email address"
	DeleteFailedMessage  = "Could not delete the report, please try again later"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrDeleteFailed     = errors.New("report deletion failed")
	ErrNoDraft          = errors.New("no report draft in progress")
)

// Presenter receives every state change the UI has to render.
type Presenter interface {
	SessionChanged(state session.State)
	ReportsChanged(reports []models.Report)
	Alert(message string)
}

// FeedRenderer appends loaded photo cards to the feed.
type FeedRenderer interface {
	InsertPhotos(photos []models.Photo)
}
