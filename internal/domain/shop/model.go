package shop

import "time"

type ShopItem struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Name    string  `gorm:"not null" json:"name"`
	Content string  `gorm:"type:text;not null" json:"content"`
	Price   float64 `gorm:"not null" json:"price"`
	AdminID uint    `gorm:"not null;default:1" json:"admin_id"`
	Cover   string  `gorm:"type:text" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
