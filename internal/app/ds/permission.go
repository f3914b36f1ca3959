package ds

// Role permissions: which menus/submenus a role may see. One record per
// role; updates replace the whole access tree (upsert-by-role).
type RolePermission struct {
	ID     uint `gorm:"primaryKey"`
	RoleID uint `gorm:"unique;not null"`

	Role       Role         `gorm:"foreignKey:RoleID"`
	MenuAccess []MenuAccess `gorm:"foreignKey:PermissionID"`
}

type MenuAccess struct {
	ID           uint `gorm:"primaryKey"`
	PermissionID uint `gorm:"not null;index"`
	MenuID       uint `gorm:"not null"`

	SubMenus []SubMenuAccess `gorm:"foreignKey:MenuAccessID"`
}

type SubMenuAccess struct {
	ID           uint `gorm:"primaryKey"`
	MenuAccessID uint `gorm:"not null;index"`
	SubMenuID    uint `gorm:"not null"`
}
