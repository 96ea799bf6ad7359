package news

import (
	"time"

	"artstudio-api/internal/domain/media"
)

type NewsItem struct {
	ID          uint             `json:"id"`
	Title       string           `json:"title"`
	Content     string           `json:"content"`
	PublishedAt time.Time        `json:"published_at"`
	Link        string           `json:"link"`
	Author      string           `json:"author"`
	Cover       []media.ImageRef `json:"cover"`
}
