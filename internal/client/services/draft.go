package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dmitrijs2005/heritagewatch/internal/client/client"
	"github.com/dmitrijs2005/heritagewatch/internal/client/models"
	"github.com/dmitrijs2005/heritagewatch/internal/filex"
	"github.com/dmitrijs2005/heritagewatch/internal/logging"
	"github.com/dmitrijs2005/heritagewatch/internal/netx"
)

// DraftService holds the report being composed. The draft lives in memory
// only and is dropped by Discard or after a successful Submit.
type DraftService interface {
	Start()
	AddPhoto(path string) error
	SetPosition(lat, lng float64) error
	Current() (models.Draft, bool)
	Discard()
	Submit(ctx context.Context, placeName, designation string) (*models.Report, error)
}

type draftService struct {
	client   client.Client
	http     *http.Client
	sessions SessionManager
	reports  ReportService
	logger   logging.Logger

	mu    sync.Mutex
	draft *models.Draft
}

func NewDraftService(c client.Client, h *http.Client, sessions SessionManager, reports ReportService, logger logging.Logger) DraftService {
	return &draftService{
		client:   c,
		http:     h,
		sessions: sessions,
		reports:  reports,
		logger:   logger.With("module", "draft"),
	}
}

// Start begins a new draft, dropping any previous one.
func (s *draftService) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = &models.Draft{}
}

func (s *draftService) AddPhoto(path string) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("photo path is empty")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft == nil {
		return ErrNoDraft
	}
	s.draft.Photos = append(s.draft.Photos, path)
	return nil
}

func (s *draftService) SetPosition(lat, lng float64) error {
	p, err := models.NewPosition(lat, lng)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft == nil {
		return ErrNoDraft
	}
	s.draft.Position = &p
	return nil
}

func (s *draftService) Current() (models.Draft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft == nil {
		return models.Draft{}, false
	}
	d := models.Draft{Photos: append([]string(nil), s.draft.Photos...), Position: s.draft.Position}
	return d, true
}

func (s *draftService) Discard() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = nil
}

// Submit uploads every photo to a presigned URL, creates the report and
// refreshes the cached list. The draft is kept if any step fails so the user
// can retry.
func (s *draftService) Submit(ctx context.Context, placeName, designation string) (*models.Report, error) {
	draft, ok := s.Current()
	if !ok {
		return nil, ErrNoDraft
	}
	if strings.TrimSpace(placeName) == "" {
		return nil, errors.New("place name is required")
	}
	if draft.Position == nil {
		return nil, models.ErrInvalidPosition
	}

	sess, ok := s.sessions.Current().Session()
	if !ok {
		return nil, ErrNotAuthenticated
	}

	keys := make([]string, 0, len(draft.Photos))
	for _, path := range draft.Photos {
		key, err := s.uploadPhoto(ctx, sess.ID, path)
		if err != nil {
			s.logger.Error(ctx, "photo upload failed", "path", path, "error", err)
			s.expireOnUnauthorized(ctx, err)
			return nil, err
		}
		keys = append(keys, key)
	}

	report, err := s.client.CreateReport(ctx, sess.ID, &models.NewReport{
		PlaceName:   placeName,
		Designation: designation,
		Latitude:    draft.Position.Latitude,
		Longitude:   draft.Position.Longitude,
		Photos:      keys,
	})
	if err != nil {
		s.logger.Error(ctx, "failed to create report", "error", err)
		s.expireOnUnauthorized(ctx, err)
		return nil, fmt.Errorf("create report: %w", err)
	}

	s.Discard()
	s.logger.Info(ctx, "report submitted", "report_id", report.ID, "photos", len(keys))

	_, _ = s.reports.FetchReportList(ctx)
	return report, nil
}

func (s *draftService) uploadPhoto(ctx context.Context, auth, path string) (string, error) {
	data, err := filex.ReadPhoto(path)
	if err != nil {
		return "", err
	}
	contentType := http.DetectContentType(data)

	upload, err := s.client.PresignPhotoUpload(ctx, auth, contentType)
	if err != nil {
		return "", fmt.Errorf("presign upload for %s: %w", filepath.Base(path), err)
	}
	if err := netx.UploadToPresignedURL(ctx, s.http, upload.URL, contentType, data); err != nil {
		return "", fmt.Errorf("upload %s: %w", filepath.Base(path), err)
	}
	return upload.Key, nil
}

func (s *draftService) expireOnUnauthorized(ctx context.Context, err error) {
	if errors.Is(err, client.ErrUnauthorized) {
		s.sessions.Expire(ctx)
	}
}
