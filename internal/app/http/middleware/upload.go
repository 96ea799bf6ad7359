package middleware

import (
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"artstudio-api/internal/domain/media"
	"artstudio-api/internal/infra/images"

	"github.com/gin-gonic/gin"
)

const uploadedKey = "uploadedImages"

// Per-file policy, matching the blob store configuration.
const maxFileSize = 5 << 20

var allowedExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// UploadCovers streams the multipart "cover" files into the cover store
// and attaches the resulting descriptors to the context, in upload order.
// Requests without files pass through untouched; handlers that require
// images reject those themselves.
func UploadCovers(maxFiles int) gin.HandlerFunc {
	return uploadField("cover", maxFiles, func() images.Store { return images.Covers })
}

// UploadLogo handles the single partner-brand logo, which goes to local
// disk instead of the image host.
func UploadLogo() gin.HandlerFunc {
	return uploadField("cover", 1, func() images.Store { return images.Logos })
}

func uploadField(field string, maxFiles int, store func() images.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		form, err := c.MultipartForm()
		if err != nil || form == nil {
			c.Next()
			return
		}

		files := form.File[field]
		if len(files) == 0 {
			c.Next()
			return
		}
		if len(files) > maxFiles {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"message": fmt.Sprintf("At most %d images are allowed per request", maxFiles),
			})
			return
		}

		dst := store()
		uploaded := make([]media.ImageRef, 0, len(files))
		for _, fh := range files {
			if fh.Size > maxFileSize {
				images.DestroyAll(c.Request.Context(), dst, uploaded)
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
					"message": fmt.Sprintf("%s exceeds the 5MB limit", fh.Filename),
				})
				return
			}
			if !allowedExts[strings.ToLower(filepath.Ext(fh.Filename))] {
				images.DestroyAll(c.Request.Context(), dst, uploaded)
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
					"message": fmt.Sprintf("%s is not a supported image format", fh.Filename),
				})
				return
			}

			f, err := fh.Open()
			if err != nil {
				images.DestroyAll(c.Request.Context(), dst, uploaded)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
				return
			}
			ref, err := dst.Upload(c.Request.Context(), f, fh.Filename)
			f.Close()
			if err != nil {
				log.Printf("❌ Upload failed for %s: %v", fh.Filename, err)
				images.DestroyAll(c.Request.Context(), dst, uploaded)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
				return
			}
			uploaded = append(uploaded, ref)
		}

		c.Set(uploadedKey, uploaded)
		c.Next()
	}
}

// Uploaded returns the descriptors attached by the upload middleware, in
// upload order, or nil when the request carried no files.
func Uploaded(c *gin.Context) []media.ImageRef {
	if v, ok := c.Get(uploadedKey); ok {
		if refs, ok := v.([]media.ImageRef); ok {
			return refs
		}
	}
	return nil
}
