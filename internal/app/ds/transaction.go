package ds

import "time"

// Transaction types.
const (
	TxTypeRegister       = "register"
	TxTypeTransfer       = "transfer"
	TxTypeRenew          = "renew"
	TxTypePayment        = "payment"
	TxTypeServicePayment = "service_payment"
	TxTypeHostingPayment = "hosting_payment"
)

// Transaction statuses. A transaction is created pending and moves exactly
// once to completed or failed; there is no transition out of either.
const (
	TxStatusPending   = "pending"
	TxStatusCompleted = "completed"
	TxStatusFailed    = "failed"
)

// Transactions table: one row per payment attempt. Exactly one of DomainID,
// ServiceID, HostingPackageID references the purchased entity.
type Transaction struct {
	ID                 uint  `gorm:"primaryKey"`
	DomainID           *uint `gorm:"index"`
	ServiceID          *uint `gorm:"index"`
	HostingPackageID   *uint `gorm:"index"`
	UserID             uint  `gorm:"not null;index"`
	Type               string  `gorm:"type:varchar(30);not null"`
	Amount             float64 `gorm:"type:decimal(10,2);not null"`
	Status             string  `gorm:"type:varchar(20);not null;default:'pending'"`
	PaymentReferenceID string  `gorm:"type:varchar(100)"`
	PaymentMethod      string  `gorm:"type:varchar(30);default:'waafi'"`
	Description        string  `gorm:"type:varchar(255)"`
	CreatedAt          time.Time
	CompletedAt        *time.Time

	User           User            `gorm:"foreignKey:UserID"`
	Domain         *Domain         `gorm:"foreignKey:DomainID"`
	Service        *Service        `gorm:"foreignKey:ServiceID"`
	HostingPackage *HostingPackage `gorm:"foreignKey:HostingPackageID"`
}
