package ds

// Menus and submenus: navigation nodes rendered by the frontend.
type Menu struct {
	ID        uint   `gorm:"primaryKey"`
	Title     string `gorm:"type:varchar(100);not null"`
	Path      string `gorm:"type:varchar(200)"`
	SortOrder int    `gorm:"default:0"`

	SubMenus []SubMenu `gorm:"foreignKey:MenuID"`
}

type SubMenu struct {
	ID     uint   `gorm:"primaryKey"`
	MenuID uint   `gorm:"not null;index"`
	Title  string `gorm:"type:varchar(100);not null"`
	Path   string `gorm:"type:varchar(200)"`
}
