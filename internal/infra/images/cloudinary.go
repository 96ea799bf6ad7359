package images

import (
	"context"
	"fmt"
	"io"

	"artstudio-api/internal/domain/media"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudStore uploads into a managed Cloudinary folder. Incoming files are
// bounded to 1200x800 by the c_limit transformation, which keeps the
// aspect ratio and never upscales.
type CloudStore struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudStore(cloudinaryURL, folder string) (*CloudStore, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	cld.Config.URL.Secure = true
	return &CloudStore{cld: cld, folder: folder}, nil
}

func (s *CloudStore) Upload(ctx context.Context, r io.Reader, filename string) (media.ImageRef, error) {
	resp, err := s.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder:         s.folder,
		Transformation: "c_limit,w_1200,h_800",
	})
	if err != nil {
		return media.ImageRef{}, err
	}
	if resp.Error.Message != "" {
		return media.ImageRef{}, fmt.Errorf("cloudinary upload %s: %s", filename, resp.Error.Message)
	}
	return media.ImageRef{URL: resp.SecureURL, PublicID: resp.PublicID}, nil
}

func (s *CloudStore) Destroy(ctx context.Context, publicID string) error {
	resp, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return err
	}
	// "not found" counts as destroyed: the bytes are gone either way.
	if resp.Result != "ok" && resp.Result != "not found" {
		return fmt.Errorf("cloudinary destroy %s: %s", publicID, resp.Result)
	}
	return nil
}
