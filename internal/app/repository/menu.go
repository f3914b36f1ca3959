package repository

import (
	"context"
	"fmt"

	"adagency/internal/app/ds"

	"gorm.io/gorm"
)

// Menu and role-permission methods.

func (r *Repository) ListMenus(ctx context.Context) ([]ds.Menu, error) {
	var menus []ds.Menu
	err := r.db.WithContext(ctx).Preload("SubMenus").Order("sort_order").Find(&menus).Error
	return menus, err
}

func (r *Repository) CreateMenu(ctx context.Context, menu *ds.Menu) error {
	return r.db.WithContext(ctx).Create(menu).Error
}

func (r *Repository) UpdateMenu(ctx context.Context, id uint, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&ds.Menu{}).Where("id = ?", id).Updates(updates).Error
}

func (r *Repository) DeleteMenu(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("menu_id = ?", id).Delete(&ds.SubMenu{}).Error; err != nil {
			return err
		}
		return tx.Delete(&ds.Menu{}, id).Error
	})
}

func (r *Repository) MenuExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&ds.Menu{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *Repository) ListPermissions(ctx context.Context) ([]ds.RolePermission, error) {
	var perms []ds.RolePermission
	err := r.db.WithContext(ctx).
		Preload("Role").
		Preload("MenuAccess.SubMenus").
		Find(&perms).Error
	return perms, err
}

func (r *Repository) GetPermissionByRole(ctx context.Context, roleID uint) (*ds.RolePermission, error) {
	var perm ds.RolePermission
	err := r.db.WithContext(ctx).
		Preload("Role").
		Preload("MenuAccess.SubMenus").
		Where("role_id = ?", roleID).
		First(&perm).Error
	if err != nil {
		return nil, err
	}
	return &perm, nil
}

// UpsertPermission replaces the whole access tree for a role (full
// replace, not merge). Every referenced menu must exist; the write is
// rejected otherwise. Idempotent on identical input.
func (r *Repository) UpsertPermission(ctx context.Context, roleID uint, accesses []ds.MenuAccess) error {
	for _, a := range accesses {
		exists, err := r.MenuExists(ctx, a.MenuID)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("menu %d does not exist", a.MenuID)
		}
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var perm ds.RolePermission
		err := tx.Where("role_id = ?", roleID).First(&perm).Error
		if err != nil {
			perm = ds.RolePermission{RoleID: roleID}
			if err := tx.Create(&perm).Error; err != nil {
				return err
			}
		}

		// Drop the old tree before writing the new one.
		var old []ds.MenuAccess
		if err := tx.Where("permission_id = ?", perm.ID).Find(&old).Error; err != nil {
			return err
		}
		for _, a := range old {
			if err := tx.Where("menu_access_id = ?", a.ID).Delete(&ds.SubMenuAccess{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("permission_id = ?", perm.ID).Delete(&ds.MenuAccess{}).Error; err != nil {
			return err
		}

		for i := range accesses {
			accesses[i].ID = 0
			accesses[i].PermissionID = perm.ID
			for j := range accesses[i].SubMenus {
				accesses[i].SubMenus[j].ID = 0
			}
		}
		if len(accesses) == 0 {
			return nil
		}
		return tx.Create(&accesses).Error
	})
}
