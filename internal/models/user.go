package models

import "time"

// User is an administrator account. The system currently runs with a single
// seeded admin; the role field exists so the session payload matches what a
// future multi-user setup would return.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Name      string    `gorm:"size:255" json:"name"`
	Role      string    `gorm:"size:50;default:'admin'" json:"role"`
	Password  string    `gorm:"size:255;not null" json:"-"` // Hashed, never exposed in JSON
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
