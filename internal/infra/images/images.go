package images

import (
	"context"
	"io"
	"log"
	"sync/atomic"

	"artstudio-api/internal/domain/media"

	"golang.org/x/sync/errgroup"
)

// Store is the slice of an image host the handlers need: put bytes in,
// destroy them later by public ID.
type Store interface {
	Upload(ctx context.Context, r io.Reader, filename string) (media.ImageRef, error)
	Destroy(ctx context.Context, publicID string) error
}

// Covers receives news, painting and shop cover images; Logos receives
// partner brand logos. Both are wired in main and swapped for fakes in
// tests.
var (
	Covers Store
	Logos  Store
)

// DestroyAll deletes every referenced image concurrently, best effort. A
// failed delete never cancels its siblings and never propagates; it is
// logged and counted so callers can report how much cleanup actually
// stuck.
func DestroyAll(ctx context.Context, store Store, refs []media.ImageRef) (failed int) {
	var failures int64
	var g errgroup.Group
	for _, ref := range refs {
		if ref.PublicID == "" {
			continue
		}
		g.Go(func() error {
			if err := store.Destroy(ctx, ref.PublicID); err != nil {
				log.Printf("❌ Failed to delete image %s: %v", ref.PublicID, err)
				atomic.AddInt64(&failures, 1)
			}
			return nil
		})
	}
	g.Wait()
	return int(failures)
}
