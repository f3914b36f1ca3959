package repository

import (
	"fmt"

	"adagency/internal/app/ds"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func New(dsn string) (*Repository, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return NewWithDB(db)
}

// NewWithDB wraps an already-open connection; tests use this with sqlite.
func NewWithDB(db *gorm.DB) (*Repository, error) {
	err := db.AutoMigrate(
		&ds.Role{},
		&ds.User{},
		&ds.PricingEntry{},
		&ds.Domain{},
		&ds.Service{},
		&ds.ServicePackage{},
		&ds.HostingPackage{},
		&ds.Transaction{},
		&ds.Blog{},
		&ds.Menu{},
		&ds.SubMenu{},
		&ds.RolePermission{},
		&ds.MenuAccess{},
		&ds.SubMenuAccess{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Repository{db: db}, nil
}
