package models

import (
	"time"

	"github.com/dmitrijs2005/heritagewatch/internal/common"
)

// Report is one heritage-at-risk report. Deleted reports keep their row with
// Status set to common.ObjectStatusDeleted.
type Report struct {
	ID          string
	UserID      string
	PlaceName   string
	Designation string
	Latitude    float64
	Longitude   float64
	Photos      []string
	Status      string
	CreatedAt   time.Time
}

func (r *Report) IsDeleted() bool {
	return r.Status == common.ObjectStatusDeleted
}
