package paintings

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"artstudio-api/database"
	"artstudio-api/internal/app/http/middleware"
	"artstudio-api/internal/domain/media"
	"artstudio-api/internal/domain/posts"
	"artstudio-api/internal/infra/images"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PaintingItem struct {
	ID          uint             `json:"id"`
	Title       string           `json:"title"`
	Content     string           `json:"content"`
	PublishedAt time.Time        `json:"published_at"`
	Cover       []media.ImageRef `json:"cover"`
}

func ListPaintingNews(c *gin.Context) {
	var rows []posts.PaintingPost
	if err := database.DB.Order("published_at DESC").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load painting news"})
		return
	}

	out := make([]PaintingItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, PaintingItem{
			ID:          r.ID,
			Title:       r.Title,
			Content:     r.Content,
			PublishedAt: r.PublishedAt,
			Cover:       media.DecodeCover(r.Cover),
		})
	}
	c.JSON(http.StatusOK, out)
}

func CreatePaintingNews(c *gin.Context) {
	title := c.PostForm("title")
	content := c.PostForm("content")
	uploaded := middleware.Uploaded(c)

	if title == "" || content == "" || len(uploaded) == 0 {
		images.DestroyAll(c.Request.Context(), images.Covers, uploaded)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing fields or images"})
		return
	}

	post := posts.PaintingPost{
		Title:       title,
		Content:     content,
		PublishedAt: time.Now(),
		AdminID:     adminIDOrDefault(c),
		Cover:       media.EncodeCover(uploaded),
	}
	if err := database.DB.Create(&post).Error; err != nil {
		log.Println("❌ Failed to create painting post:", err)
		if failed := images.DestroyAll(c.Request.Context(), images.Covers, uploaded); failed > 0 {
			log.Printf("⚠️ %d uploaded images could not be cleaned up", failed)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create painting post"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Painting post created successfully", "id": post.ID})
}

// UpdatePaintingNews takes the target id from the form body, the shape the
// frontend has always sent for this section.
func UpdatePaintingNews(c *gin.Context) {
	id := c.PostForm("id")
	title := c.PostForm("title")
	content := c.PostForm("content")
	uploaded := middleware.Uploaded(c)

	if id == "" || title == "" || content == "" {
		images.DestroyAll(c.Request.Context(), images.Covers, uploaded)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing fields"})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var post posts.PaintingPost
		if err := tx.First(&post, "id = ?", id).Error; err != nil {
			return err
		}

		if len(uploaded) > 0 {
			old := media.DecodeCover(post.Cover)
			if failed := images.DestroyAll(c.Request.Context(), images.Covers, old); failed > 0 {
				log.Printf("⚠️ %d superseded images could not be deleted", failed)
			}
			post.Cover = media.EncodeCover(uploaded)
		}

		post.Title = title
		post.Content = content
		return tx.Save(&post).Error
	})
	if err != nil {
		images.DestroyAll(c.Request.Context(), images.Covers, uploaded)
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Painting post not found"})
			return
		}
		log.Println("❌ Failed to update painting post:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update painting post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Painting post updated successfully"})
}

func DeletePaintingNews(c *gin.Context) {
	id := c.Param("id")

	var post posts.PaintingPost
	if err := database.DB.First(&post, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Painting post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load painting post"})
		return
	}

	cover := media.DecodeCover(post.Cover)
	failed := images.DestroyAll(c.Request.Context(), images.Covers, cover)

	if err := database.DB.Delete(&post).Error; err != nil {
		log.Println("❌ Failed to delete painting post:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete painting post"})
		return
	}

	resp := gin.H{"message": "Painting post deleted", "deletedImages": len(cover)}
	if failed > 0 {
		resp["failedImages"] = failed
	}
	c.JSON(http.StatusOK, resp)
}

func adminIDOrDefault(c *gin.Context) uint {
	if v := c.PostForm("admin_id"); v != "" {
		if parsed, err := strconv.ParseUint(v, 10, 32); err == nil && parsed > 0 {
			return uint(parsed)
		}
	}
	return 1
}
