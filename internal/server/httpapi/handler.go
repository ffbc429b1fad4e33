package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/heritagewatch/internal/common"
	"github.com/dmitrijs2005/heritagewatch/internal/server/models"
	"github.com/gorilla/mux"
)

// DefaultFeedLimit is used when /photos is called without a limit.
const DefaultFeedLimit = 10

func (s *HTTPServer) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

func (s *HTTPServer) register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	u, err := s.users.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "Registered", "user_id", u.ID)
	writeJSON(w, http.StatusCreated, accountResponse{UserID: u.ID, Email: u.Email})
}

func (s *HTTPServer) createSession(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	g, err := s.users.CreateSession(r.Context(), req.Email, req.Password)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newSessionResponse(g))
}

func (s *HTTPServer) deleteSession(w http.ResponseWriter, r *http.Request) {
	p := principalFrom(r.Context())

	if err := s.users.DeleteSession(r.Context(), p.UserID, mux.Vars(r)["id"]); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *HTTPServer) listReports(w http.ResponseWriter, r *http.Request) {
	p := principalFrom(r.Context())

	reports, err := s.reports.List(r.Context(), p.UserID)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	out := make([]reportResponse, 0, len(reports))
	for _, rep := range reports {
		out = append(out, newReportResponse(rep))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *HTTPServer) createReport(w http.ResponseWriter, r *http.Request) {
	p := principalFrom(r.Context())

	var req reportRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	created, err := s.reports.Create(r.Context(), p.UserID, &models.Report{
		PlaceName:   req.PlaceName,
		Designation: req.Designation,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Photos:      req.Photos,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, newReportResponse(created))
}

func (s *HTTPServer) deleteReport(w http.ResponseWriter, r *http.Request) {
	p := principalFrom(r.Context())

	if err := s.reports.SoftDelete(r.Context(), p.UserID, mux.Vars(r)["id"]); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *HTTPServer) presignUpload(w http.ResponseWriter, r *http.Request) {
	p := principalFrom(r.Context())

	var req uploadRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	key, url, err := s.reports.PresignUpload(r.Context(), p.UserID, req.ContentType)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, uploadResponse{Key: key, URL: url})
}

func (s *HTTPServer) photoFeed(w http.ResponseWriter, r *http.Request) {
	page, err := intQuery(r, "page", 1)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	limit, err := intQuery(r, "limit", DefaultFeedLimit)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	ids, err := s.photos.Feed(r.Context(), page, limit)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	out := make([]photoStub, 0, len(ids))
	for _, id := range ids {
		out = append(out, photoStub{ID: id})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *HTTPServer) photo(w http.ResponseWriter, r *http.Request) {
	p, err := s.photos.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newPhotoResponse(p))
}

func (s *HTTPServer) addTranslation(w http.ResponseWriter, r *http.Request) {
	var req translationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	t, err := s.photos.AddTranslation(r.Context(), mux.Vars(r)["id"], req.Language, req.Caption)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, translationResponse{
		ID:       t.ID,
		PhotoID:  t.PhotoID,
		Caption:  t.Caption,
		Language: t.Language,
	})
}

func intQuery(r *http.Request, name string, def int) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", common.ErrorValidation, name)
	}
	return n, nil
}
