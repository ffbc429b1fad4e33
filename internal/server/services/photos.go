package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/heritagewatch/internal/common"
	"github.com/dmitrijs2005/heritagewatch/internal/server/models"
	"github.com/dmitrijs2005/heritagewatch/internal/server/repositories/repomanager"
	"golang.org/x/text/language"
)

// MaxPageSize caps the number of photos a feed page may ask for.
const MaxPageSize = 50

type PhotoService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewPhotoService(db *sql.DB, repomanager repomanager.RepositoryManager) *PhotoService {
	return &PhotoService{db: db, repomanager: repomanager}
}

// Feed returns the photo ids of a 1-based page. A page past the end is empty.
func (s *PhotoService) Feed(ctx context.Context, page, limit int) ([]string, error) {
	if page < 1 {
		return nil, fmt.Errorf("%w: page must be positive", common.ErrorValidation)
	}
	if limit < 1 || limit > MaxPageSize {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", common.ErrorValidation, MaxPageSize)
	}
	return s.repomanager.Photos(s.db).Page(ctx, (page-1)*limit, limit)
}

func (s *PhotoService) Get(ctx context.Context, photoID string) (*models.Photo, error) {
	if !isUUID(photoID) {
		return nil, common.ErrorNotFound
	}
	return s.repomanager.Photos(s.db).Get(ctx, photoID)
}

// AddTranslation stores a caption for the photo. lang must be an ISO 639
// language code; it is stored in its three-letter form.
func (s *PhotoService) AddTranslation(ctx context.Context, photoID, lang, caption string) (*models.Translation, error) {
	caption = strings.TrimSpace(caption)
	if caption == "" {
		return nil, fmt.Errorf("%w: caption is required", common.ErrorValidation)
	}
	base, err := language.ParseBase(strings.TrimSpace(lang))
	if err != nil {
		return nil, fmt.Errorf("%w: unknown language %q", common.ErrorValidation, lang)
	}

	if _, err := s.Get(ctx, photoID); err != nil {
		return nil, err
	}

	return s.repomanager.Photos(s.db).AddTranslation(ctx, &models.Translation{
		PhotoID:  photoID,
		Language: base.ISO3(),
		Caption:  caption,
	})
}
