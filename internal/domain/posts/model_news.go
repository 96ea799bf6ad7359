package posts

import "time"

type NewsPost struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	PublishedAt time.Time `json:"published_at"`
	Link        string    `json:"link"`
	AdminID     uint      `gorm:"not null;default:1" json:"admin_id"`

	// Cover stores the JSON-encoded image descriptor array. Rows written by
	// earlier site revisions may still carry a single object or a bare
	// filename list; always read through media.DecodeCover.
	Cover string `gorm:"type:text" json:"-"`
}
