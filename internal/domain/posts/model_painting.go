package posts

import "time"

// PaintingPost mirrors NewsPost for the painting section of the site,
// which has its own table and no external link column.
type PaintingPost struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	PublishedAt time.Time `json:"published_at"`
	AdminID     uint      `gorm:"not null;default:1" json:"admin_id"`
	Cover       string    `gorm:"type:text" json:"-"`
}
