package ds

// Roles table. Fixed set: admin, manager, user (seeded by cmd/migrate).
type Role struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(20);unique;not null"`
}
