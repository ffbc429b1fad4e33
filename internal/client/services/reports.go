package services

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/heritagewatch/internal/client/client"
	"github.com/dmitrijs2005/heritagewatch/internal/client/models"
	"github.com/dmitrijs2005/heritagewatch/internal/client/repositories/localstore"
	"github.com/dmitrijs2005/heritagewatch/internal/logging"
)

// ReportService keeps the locally cached report list in step with the
// service.
type ReportService interface {
	FetchReportList(ctx context.Context) ([]models.Report, error)
	DeleteReport(ctx context.Context, index int, reportID string) error
	Cached(ctx context.Context) []models.Report
}

type reportService struct {
	client    client.Client
	store     *localstore.Store
	sessions  SessionManager
	presenter Presenter
	logger    logging.Logger
}

func NewReportService(c client.Client, store *localstore.Store, sessions SessionManager, p Presenter, logger logging.Logger) ReportService {
	return &reportService{
		client:    c,
		store:     store,
		sessions:  sessions,
		presenter: p,
		logger:    logger.With("module", "reports"),
	}
}

// FetchReportList replaces the cached list with the service's list minus
// soft-deleted entries. On failure the cache is left as it was.
func (s *reportService) FetchReportList(ctx context.Context) ([]models.Report, error) {
	sess, ok := s.sessions.Current().Session()
	if !ok {
		return nil, ErrNotAuthenticated
	}

	visible, err := s.sync(ctx, sess.ID)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			s.sessions.Expire(ctx)
		}
		return nil, fmt.Errorf("fetch reports: %w", err)
	}
	return visible, nil
}

func (s *reportService) sync(ctx context.Context, sessionID string) ([]models.Report, error) {
	all, err := s.client.ListReports(ctx, sessionID)
	if err != nil {
		s.logger.Error(ctx, "failed to fetch reports", "error", err)
		return nil, err
	}

	visible := models.VisibleReports(all)
	if err := s.store.SaveReports(ctx, visible); err != nil {
		s.logger.Error(ctx, "failed to persist reports", "error", err)
	}
	s.presenter.ReportsChanged(visible)

	s.logger.Debug(ctx, "reports fetched", "received", len(all), "visible", len(visible))
	return visible, nil
}

// DeleteReport removes a report remotely and, only once the service
// confirmed it, from the cached list. index is the position the user
// picked; if that slot no longer holds reportID the entry is looked up by id.
// When the cached list cannot be read it is rebuilt from the service instead
// of being spliced.
func (s *reportService) DeleteReport(ctx context.Context, index int, reportID string) error {
	sess, err := s.store.Session(ctx)
	if err != nil {
		s.logger.Error(ctx, "failed to read stored session", "error", err)
	}
	if !sess.Valid() {
		return fmt.Errorf("%w: %w", ErrDeleteFailed, client.ErrLocalDataNotAvailable)
	}

	if err := s.client.DeleteReport(ctx, sess.ID, reportID); err != nil {
		s.logger.Error(ctx, "failed to delete report", "report_id", reportID, "error", err)
		return fmt.Errorf("%w: %w", ErrDeleteFailed, err)
	}
	s.logger.Info(ctx, "report deleted", "report_id", reportID)

	cached, ok, err := s.store.Reports(ctx)
	if err != nil || !ok {
		s.logger.Warn(ctx, "cached reports unreadable, resyncing", "error", err)
		if _, err := s.sync(ctx, sess.ID); err != nil {
			s.logger.Warn(ctx, "cache left as it was", "error", err)
		}
		return nil
	}

	updated := removeReport(cached, index, reportID)
	if err := s.store.SaveReports(ctx, updated); err != nil {
		s.logger.Error(ctx, "failed to persist reports", "error", err)
	}
	s.presenter.ReportsChanged(updated)
	return nil
}

func (s *reportService) Cached(ctx context.Context) []models.Report {
	list, _, err := s.store.Reports(ctx)
	if err != nil {
		s.logger.Error(ctx, "failed to read cached reports", "error", err)
	}
	if list == nil {
		return []models.Report{}
	}
	return list
}

func removeReport(list []models.Report, index int, reportID string) []models.Report {
	i := index
	if i < 0 || i >= len(list) || list[i].ID != reportID {
		i = slices.IndexFunc(list, func(r models.Report) bool { return r.ID == reportID })
	}
	if i < 0 {
		return slices.Clone(list)
	}
	return slices.Delete(slices.Clone(list), i, i+1)
}
