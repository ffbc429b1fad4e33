package models

import (
	"time"

	"github.com/dmitrijs2005/heritagewatch/internal/common"
)

// Report is a "heritage at risk" report owned by the remote service.
// Transmitted is never sent by the service; the client sets it on every
// entry it receives.
type Report struct {
	ID          string    `json:"report_id"`
	PlaceName   string    `json:"place_name"`
	Designation string    `json:"designation"`
	CreatedAt   time.Time `json:"creation_time"`
	Status      string    `json:"object_status"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Photos      []string  `json:"photos,omitempty"`
	Transmitted bool      `json:"transmitted,omitempty"`
}

func (r Report) IsDeleted() bool {
	return r.Status == common.ObjectStatusDeleted
}

// VisibleReports drops soft-deleted reports and marks the rest as
// transmitted. The order of the input is preserved.
func VisibleReports(reports []Report) []Report {
	result := make([]Report, 0, len(reports))
	for _, r := range reports {
		if r.IsDeleted() {
			continue
		}
		r.Transmitted = true
		result = append(result, r)
	}
	return result
}

// NewReport is the payload for creating a report.
type NewReport struct {
	PlaceName   string   `json:"place_name"`
	Designation string   `json:"designation"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Photos      []string `json:"photos"`
}

// PhotoUpload is a presigned destination for one captured photo.
type PhotoUpload struct {
	Key string `json:"key"`
	URL string `json:"url"`
}
