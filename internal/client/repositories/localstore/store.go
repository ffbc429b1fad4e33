// Package localstore maps the client's persisted records onto the metadata
// key/value table. Values are stored as JSON documents and always read and
// written whole.
package localstore

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/heritagewatch/internal/client/models"
	"github.com/dmitrijs2005/heritagewatch/internal/client/repositories/metadata"
)

const (
	KeySession = "session"
	KeyReports = "reports"

	captionPrefix = "caption/"
)

// CaptionKey is the scratch key for one (photo, language) pair. Both parts
// are path-escaped so ids containing "/" stay inside their own prefix.
func CaptionKey(photoID, languageCode string) string {
	return captionPhotoPrefix(photoID) + url.PathEscape(languageCode)
}

func captionPhotoPrefix(photoID string) string {
	return captionPrefix + url.PathEscape(photoID) + "/"
}

type Store struct {
	repo metadata.Repository
}

func New(repo metadata.Repository) *Store {
	return &Store{repo: repo}
}

func getJSON[T any](ctx context.Context, repo metadata.Repository, key string) (*T, error) {
	raw, err := repo.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return &v, nil
}

func setJSON(ctx context.Context, repo metadata.Repository, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return repo.Set(ctx, key, raw)
}

// Session returns the stored session, or nil if there is none.
func (s *Store) Session(ctx context.Context) (*models.Session, error) {
	return getJSON[models.Session](ctx, s.repo, KeySession)
}

func (s *Store) SaveSession(ctx context.Context, session *models.Session) error {
	return setJSON(ctx, s.repo, KeySession, session)
}

func (s *Store) DeleteSession(ctx context.Context) error {
	return s.repo.Delete(ctx, KeySession)
}

// Reports returns the cached list. The boolean is false when nothing was
// ever cached.
func (s *Store) Reports(ctx context.Context) ([]models.Report, bool, error) {
	v, err := getJSON[[]models.Report](ctx, s.repo, KeyReports)
	if err != nil || v == nil {
		return nil, false, err
	}
	return *v, true, nil
}

func (s *Store) SaveReports(ctx context.Context, reports []models.Report) error {
	if reports == nil {
		reports = []models.Report{}
	}
	return setJSON(ctx, s.repo, KeyReports, reports)
}

func (s *Store) DeleteReports(ctx context.Context) error {
	return s.repo.Delete(ctx, KeyReports)
}

// Caption returns the last text entered for the pair.
func (s *Store) Caption(ctx context.Context, photoID, languageCode string) (string, bool, error) {
	raw, err := s.repo.Get(ctx, CaptionKey(photoID, languageCode))
	if err != nil || raw == nil {
		return "", false, err
	}
	return string(raw), true, nil
}

func (s *Store) SaveCaption(ctx context.Context, photoID, languageCode, text string) error {
	return s.repo.Set(ctx, CaptionKey(photoID, languageCode), []byte(text))
}

// Captions returns every scratch caption of a photo keyed by language code.
func (s *Store) Captions(ctx context.Context, photoID string) (map[string]string, error) {
	prefix := captionPhotoPrefix(photoID)
	pairs, err := s.repo.List(ctx, prefix)
	if err != nil {
		return nil, err
	}
	result := make(map[string]string, len(pairs))
	for k, v := range pairs {
		lang, err := url.PathUnescape(strings.TrimPrefix(k, prefix))
		if err != nil {
			continue
		}
		result[lang] = string(v)
	}
	return result, nil
}
