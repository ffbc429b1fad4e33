package services

import (
	"context"

	"github.com/dmitrijs2005/heritagewatch/internal/client/client"
	"github.com/dmitrijs2005/heritagewatch/internal/client/models"
	"github.com/dmitrijs2005/heritagewatch/internal/client/repositories/localstore"
	"github.com/dmitrijs2005/heritagewatch/internal/logging"
	"golang.org/x/text/language"
)

// supportedLanguages maps the two-letter base language to the code the
// translation endpoint expects. Its order is the order languages are offered.
var supportedLanguages = []struct {
	base string
	code string
}{
	{"en", "eng"},
	{"fr", "fra"},
	{"vi", "vie"},
	{"ch", "cha"},
	{"it", "ita"},
}

type CaptionService interface {
	Languages(preferred []string) []string
	Submit(ctx context.Context, photoID, caption, languageCode string) error
	Draft(ctx context.Context, photoID, languageCode string) (string, bool)
	Drafts(ctx context.Context, photoID string) map[string]string
}

type captionService struct {
	client client.Client
	store  *localstore.Store
	logger logging.Logger
}

func NewCaptionService(c client.Client, store *localstore.Store, logger logging.Logger) CaptionService {
	return &captionService{client: c, store: store, logger: logger.With("module", "captions")}
}

// Languages intersects the preferred tags with the supported set. The
// result follows the table order, not the preference order. Chinese tags
// ("zh", "zh-Hans", ...) select the "ch" entry.
func (s *captionService) Languages(preferred []string) []string {
	wanted := make(map[string]bool, len(preferred))
	for _, p := range preferred {
		tag, err := language.Parse(p)
		if err != nil {
			continue
		}
		base, _ := tag.Base()
		b := base.String()
		if b == "zh" {
			b = "ch"
		}
		wanted[b] = true
	}

	codes := make([]string, 0, len(supportedLanguages))
	for _, l := range supportedLanguages {
		if wanted[l.base] {
			codes = append(codes, l.code)
		}
	}
	return codes
}

// Submit sends the translation and keeps the text as the scratch value for
// the pair. The two writes are independent; a failure of one does not stop
// the other. Only the remote error is returned.
func (s *captionService) Submit(ctx context.Context, photoID, caption, languageCode string) error {
	err := s.client.SubmitTranslation(ctx, photoID, models.Translation{Caption: caption, Language: languageCode})
	if err != nil {
		s.logger.Error(ctx, "failed to submit translation", "photo_id", photoID, "language", languageCode, "error", err)
	}

	if serr := s.store.SaveCaption(ctx, photoID, languageCode, caption); serr != nil {
		s.logger.Error(ctx, "failed to save caption draft", "photo_id", photoID, "language", languageCode, "error", serr)
	}
	return err
}

func (s *captionService) Draft(ctx context.Context, photoID, languageCode string) (string, bool) {
	text, ok, err := s.store.Caption(ctx, photoID, languageCode)
	if err != nil {
		s.logger.Error(ctx, "failed to read caption draft", "photo_id", photoID, "error", err)
		return "", false
	}
	return text, ok
}

func (s *captionService) Drafts(ctx context.Context, photoID string) map[string]string {
	drafts, err := s.store.Captions(ctx, photoID)
	if err != nil {
		s.logger.Error(ctx, "failed to list caption drafts", "photo_id", photoID, "error", err)
		return map[string]string{}
	}
	return drafts
}
