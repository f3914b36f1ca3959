package ds

// Domain pricing table: TLD -> price reference data. TLD always begins
// with "." and is stored lowercased.
type PricingEntry struct {
	ID            uint    `gorm:"primaryKey"`
	TLD           string  `gorm:"type:varchar(20);unique;not null"`
	Price         float64 `gorm:"type:decimal(10,2);not null"`
	RenewalPrice  float64 `gorm:"type:decimal(10,2);not null"`
	TransferPrice float64 `gorm:"type:decimal(10,2);not null"`
	Duration      string  `gorm:"type:varchar(20);default:'1 Year'"`
}
