package main

import (
	"log"

	"adagency/internal/app/ds"
	"adagency/internal/app/dsn"
	"adagency/internal/app/role"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	dsnStr := dsn.FromEnv()
	if dsnStr == "" {
		log.Fatal("DSN string is empty. Check your .env file")
	}

	db, err := gorm.Open(postgres.Open(dsnStr), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Connected to database successfully")

	err = db.AutoMigrate(
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
		log.Fatalf("Failed to migrate database: %v", err)
	}

	seedRoles(db)
	seedPricing(db)
	seedMenus(db)

	log.Println("Database migration completed successfully")
}

func seedRoles(db *gorm.DB) {
	for _, name := range []role.Role{role.User, role.Manager, role.Admin} {
		var count int64
		db.Model(&ds.Role{}).Where("name = ?", string(name)).Count(&count)
		if count == 0 {
			if err := db.Create(&ds.Role{Name: string(name)}).Error; err != nil {
				log.Fatalf("Failed to seed role %s: %v", name, err)
			}
		}
	}
	log.Println("Roles seeded")
}

func seedPricing(db *gorm.DB) {
	entries := []ds.PricingEntry{
		{TLD: ".com", Price: 12.99, RenewalPrice: 14.99, TransferPrice: 12.99, Duration: "1 Year"},
		{TLD: ".net", Price: 13.99, RenewalPrice: 15.99, TransferPrice: 13.99, Duration: "1 Year"},
		{TLD: ".org", Price: 12.49, RenewalPrice: 14.49, TransferPrice: 12.49, Duration: "1 Year"},
		{TLD: ".so", Price: 59.99, RenewalPrice: 64.99, TransferPrice: 59.99, Duration: "1 Year"},
		{TLD: ".info", Price: 4.99, RenewalPrice: 19.99, TransferPrice: 4.99, Duration: "1 Year"},
	}
	for _, e := range entries {
		var count int64
		db.Model(&ds.PricingEntry{}).Where("tld = ?", e.TLD).Count(&count)
		if count == 0 {
			if err := db.Create(&e).Error; err != nil {
				log.Fatalf("Failed to seed pricing %s: %v", e.TLD, err)
			}
		}
	}
	log.Println("Domain pricing seeded")
}

func seedMenus(db *gorm.DB) {
	var count int64
	db.Model(&ds.Menu{}).Count(&count)
	if count > 0 {
		return
	}

	menus := []ds.Menu{
		{Title: "Dashboard", Path: "/dashboard", SortOrder: 1},
		{Title: "Domains", Path: "/domains", SortOrder: 2, SubMenus: []ds.SubMenu{
			{Title: "Domain Prices", Path: "/domains/prices"},
			{Title: "My Domains", Path: "/domains/mine"},
		}},
		{Title: "Services", Path: "/services", SortOrder: 3},
		{Title: "Hosting", Path: "/hosting", SortOrder: 4},
		{Title: "Blogs", Path: "/blogs", SortOrder: 5},
		{Title: "Transactions", Path: "/transactions", SortOrder: 6},
		{Title: "Settings", Path: "/settings", SortOrder: 7, SubMenus: []ds.SubMenu{
			{Title: "Roles", Path: "/settings/roles"},
			{Title: "Permissions", Path: "/settings/permissions"},
			{Title: "Menus", Path: "/settings/menus"},
		}},
	}
	for _, m := range menus {
		if err := db.Create(&m).Error; err != nil {
			log.Fatalf("Failed to seed menu %s: %v", m.Title, err)
		}
	}
	log.Println("Menus seeded")
}
