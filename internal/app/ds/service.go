package ds

// Services table: agency service catalog (graphic design, consulting, ...).
type Service struct {
	ID           uint   `gorm:"primaryKey"`
	ServiceTitle string `gorm:"type:varchar(100);not null"`
	ServiceIcon  string `gorm:"type:varchar(255)"`

	Packages []ServicePackage `gorm:"foreignKey:ServiceID"`
}

// Service packages: priced tiers under a service.
type ServicePackage struct {
	ID           uint     `gorm:"primaryKey"`
	ServiceID    uint     `gorm:"not null;index"`
	PackageTitle string   `gorm:"type:varchar(100);not null"`
	Price        float64  `gorm:"type:decimal(10,2);not null"`
	Features     []string `gorm:"serializer:json"`
}
