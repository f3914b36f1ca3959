package ds

import "time"

// Domain registration statuses. The registration flow only moves
// available -> registered; transfers and renewals come later.
const (
	DomainStatusAvailable   = "available"
	DomainStatusRegistered  = "registered"
	DomainStatusTransferred = "transferred"
)

// Domains table: registered/transferred domains owned by a user.
type Domain struct {
	ID               uint   `gorm:"primaryKey"`
	Name             string `gorm:"type:varchar(255);unique;not null"`
	UserID           uint   `gorm:"not null;index"`
	Status           string `gorm:"type:varchar(20);not null;default:'available'"`
	RegistrationDate *time.Time
	ExpiryDate       *time.Time
	Price            float64 `gorm:"type:decimal(10,2)"`

	User User `gorm:"foreignKey:UserID"`
}
