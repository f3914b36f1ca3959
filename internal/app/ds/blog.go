package ds

import "time"

// Blogs table: marketing content. CoverImage is an object name in MinIO.
type Blog struct {
	ID         uint   `gorm:"primaryKey"`
	Title      string `gorm:"type:varchar(200);not null"`
	Slug       string `gorm:"type:varchar(200);unique;not null"`
	Content    string `gorm:"type:text"`
	Author     string `gorm:"type:varchar(100)"`
	CoverImage string `gorm:"type:varchar(255)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
