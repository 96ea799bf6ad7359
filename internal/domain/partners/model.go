package partners

import "time"

// PartnerBrand is an allied brand shown on the public site. Image holds a
// single JSON descriptor; rows from the first site revision store a bare
// filename instead, which media.DecodeCover still understands.
type PartnerBrand struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"not null" json:"name"`
	Image string `gorm:"type:text" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
