package ds

import "time"

// Users table. Email is the login identifier and is stored lowercased.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	FullName     string `gorm:"type:varchar(100);not null"`
	Email        string `gorm:"type:varchar(100);unique;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Phone        string `gorm:"type:varchar(30)"`
	CompanyName  string `gorm:"type:varchar(100)"`
	Address      string `gorm:"type:varchar(255)"`
	City         string `gorm:"type:varchar(100)"`
	Country      string `gorm:"type:varchar(100)"`
	RoleID       uint   `gorm:"not null"`
	CreatedAt    time.Time

	Role Role `gorm:"foreignKey:RoleID"`
}
