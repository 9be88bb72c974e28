package model

import "time"

// Profile is the published business card, looked up by a short uppercase
// alphanumeric identifier.
type Profile struct {
	UserID    string `gorm:"primaryKey;size:16;not null"`
	FullName  string `gorm:"size:128;not null"`
	JobTitle  string `gorm:"size:128"`
	Company   string `gorm:"size:128"`
	Bio       string `gorm:"size:512"`
	Email     string `gorm:"size:128"`
	Phone     string `gorm:"size:32"`
	Website   string `gorm:"size:256"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
