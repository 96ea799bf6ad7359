package admins

import "time"

type Administrator struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null;uniqueIndex:idx_administrators_name" json:"name"`
	Email    string `gorm:"not null;uniqueIndex:idx_administrators_email" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     string `json:"role"`

	// SecurityPIN holds the bcrypt hash of the 4-character recovery PIN.
	SecurityPIN string `gorm:"column:security_pin;not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
