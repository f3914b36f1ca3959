package ds

// Hosting packages table: resold hosting plans.
type HostingPackage struct {
	ID          uint     `gorm:"primaryKey"`
	Name        string   `gorm:"type:varchar(100);not null"`
	Description string   `gorm:"type:text"`
	Price       float64  `gorm:"type:decimal(10,2);not null"`
	Features    []string `gorm:"serializer:json"`
}
