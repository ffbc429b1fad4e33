package services

import (
	"context"
	"sync/atomic"

	"github.com/dmitrijs2005/heritagewatch/internal/client/client"
	"github.com/dmitrijs2005/heritagewatch/internal/client/models"
	"github.com/dmitrijs2005/heritagewatch/internal/logging"
)

const DefaultPageSize = 10

// FeedService loads the photo feed one page per scroll event.
type FeedService interface {
	// OnScroll loads the next page unless a load is already in flight, in
	// which case it returns false at once.
	OnScroll(ctx context.Context) bool
	// Page is the next page to be loaded.
	Page() int
}

type feedService struct {
	client   client.Client
	renderer FeedRenderer
	pageSize int
	logger   logging.Logger

	page    atomic.Int64
	loading atomic.Bool
}

func NewFeedService(c client.Client, r FeedRenderer, pageSize int, logger logging.Logger) FeedService {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	f := &feedService{client: c, renderer: r, pageSize: pageSize, logger: logger.With("module", "feed")}
	f.page.Store(1)
	return f
}

func (f *feedService) Page() int {
	return int(f.page.Load())
}

// The latch is held until the renderer returned, so a scroll that arrives
// while cards are still being inserted does not start a second load. The
// page only advances after a non-empty page was rendered.
func (f *feedService) OnScroll(ctx context.Context) bool {
	if !f.loading.CompareAndSwap(false, true) {
		return false
	}
	defer f.loading.Store(false)

	page := f.Page()
	stubs, err := f.client.PhotoPage(ctx, page, f.pageSize)
	if err != nil {
		f.logger.Error(ctx, "failed to load feed page", "page", page, "error", err)
		return true
	}

	photos := make([]models.Photo, 0, len(stubs))
	for _, stub := range stubs {
		p, err := f.client.Photo(ctx, stub.ID)
		if err != nil {
			f.logger.Error(ctx, "failed to load photo", "page", page, "photo_id", stub.ID, "error", err)
			return true
		}
		photos = append(photos, *p)
	}

	if len(photos) == 0 {
		f.logger.Debug(ctx, "feed page is empty", "page", page)
		return true
	}

	f.renderer.InsertPhotos(photos)
	f.page.Add(1)
	return true
}
