package news

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

// ListNews returns every news post, newest first, with the author's
// display name joined in.
func ListNews(c *gin.Context) {
	var rows []struct {
		ID          uint
		Title       string
		Content     string
		PublishedAt time.Time
		Link        string
		Cover       string
		Author      string
	}
	err := database.DB.Model(&posts.NewsPost{}).
		Select("news_posts.id, news_posts.title, news_posts.content, news_posts.published_at, news_posts.link, news_posts.cover, administrators.name AS author").
		Joins("LEFT JOIN administrators ON administrators.id = news_posts.admin_id").
		Order("news_posts.published_at DESC").
		Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load news"})
		return
	}

	out := make([]NewsItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, NewsItem{
			ID:          r.ID,
			Title:       r.Title,
			Content:     r.Content,
			PublishedAt: r.PublishedAt,
			Link:        r.Link,
			Author:      r.Author,
			Cover:       media.DecodeCover(r.Cover),
		})
	}
	c.JSON(http.StatusOK, out)
}

// CreateNews inserts a news post from a multipart form. The author falls
// back to administrator 1 when the form carries no admin_id, which the
// public admin panel relies on.
func CreateNews(c *gin.Context) {
	title := c.PostForm("title")
	content := c.PostForm("content")
	link := c.PostForm("link")
	uploaded := middleware.Uploaded(c)

	if title == "" || content == "" || len(uploaded) == 0 {
		if len(uploaded) > 0 {
			images.DestroyAll(c.Request.Context(), images.Covers, uploaded)
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing fields or images"})
		return
	}

	post := posts.NewsPost{
		Title:       title,
		Content:     content,
		PublishedAt: time.Now(),
		Link:        link,
		AdminID:     adminIDOrDefault(c),
		Cover:       media.EncodeCover(uploaded),
	}
	if err := database.DB.Create(&post).Error; err != nil {
		log.Println("❌ Failed to create news post:", err)
		if failed := images.DestroyAll(c.Request.Context(), images.Covers, uploaded); failed > 0 {
			log.Printf("⚠️ %d uploaded images could not be cleaned up", failed)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create news post"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "News post created successfully", "id": post.ID})
}

// UpdateNews rewrites the textual fields and, when new images arrived,
// replaces the whole cover set. Old images are destroyed before the row is
// rewritten, so a failed write can orphan at most the fresh uploads, which
// are cleaned up below.
func UpdateNews(c *gin.Context) {
	id := c.Param("id")
	title := c.PostForm("title")
	content := c.PostForm("content")
	link := c.PostForm("link")
	uploaded := middleware.Uploaded(c)

	if title == "" || content == "" {
		images.DestroyAll(c.Request.Context(), images.Covers, uploaded)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing fields"})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var post posts.NewsPost
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
		post.Link = link
		return tx.Save(&post).Error
	})
	if err != nil {
		images.DestroyAll(c.Request.Context(), images.Covers, uploaded)
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "News post not found"})
			return
		}
		log.Println("❌ Failed to update news post:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update news post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "News post updated successfully"})
}

// DeleteNews removes the row and, best effort, every image it references.
// deletedImages counts the images targeted; failures are logged and only
// surfaced as a separate count.
func DeleteNews(c *gin.Context) {
	id := c.Param("id")

	var post posts.NewsPost
	if err := database.DB.First(&post, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "News post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load news post"})
		return
	}

	cover := media.DecodeCover(post.Cover)
	failed := images.DestroyAll(c.Request.Context(), images.Covers, cover)

	if err := database.DB.Delete(&post).Error; err != nil {
		log.Println("❌ Failed to delete news post:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete news post"})
		return
	}

	resp := gin.H{"message": "News post deleted", "deletedImages": len(cover)}
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
