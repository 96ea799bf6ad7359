package images

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"artstudio-api/internal/domain/media"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// LocalStore keeps files on disk under dir and serves them from baseURL.
// Filenames are timestamp-prefixed with a random suffix so concurrent
// uploads never collide.
type LocalStore struct {
	dir     string
	baseURL string
}

func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (s *LocalStore) Upload(ctx context.Context, r io.Reader, filename string) (media.ImageRef, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], ext)
	dst := filepath.Join(s.dir, name)

	data, err := io.ReadAll(r)
	if err != nil {
		return media.ImageRef{}, fmt.Errorf("read upload: %w", err)
	}

	if img, derr := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true)); derr == nil {
		bounds := img.Bounds()
		if bounds.Dx() > 1200 || bounds.Dy() > 800 {
			img = imaging.Fit(img, 1200, 800, imaging.Lanczos)
		}
		if err := imaging.Save(img, dst); err != nil {
			return media.ImageRef{}, fmt.Errorf("save %s: %w", name, err)
		}
	} else {
		// Formats imaging cannot re-encode (webp) are stored verbatim.
		if err := os.WriteFile(dst, data, 0o644); err != nil {
			return media.ImageRef{}, fmt.Errorf("save %s: %w", name, err)
		}
	}

	return media.ImageRef{URL: s.baseURL + "/" + name, PublicID: name}, nil
}

func (s *LocalStore) Destroy(ctx context.Context, publicID string) error {
	// Legacy rows store bare filenames as the public ID; Base keeps the
	// delete inside the upload dir either way.
	err := os.Remove(filepath.Join(s.dir, filepath.Base(publicID)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
