package repository

import (
	"context"
	"testing"

	"adagency/internal/app/ds"
)

func seedMenuTree(t *testing.T, repo *Repository) (menu ds.Menu, roleID uint) {
	t.Helper()
	ctx := context.Background()

	role := ds.Role{Name: "manager"}
	if err := repo.db.Create(&role).Error; err != nil {
		t.Fatalf("could not seed role: %v", err)
	}

	menu = ds.Menu{
		Title: "Settings",
		Path:  "/settings",
		SubMenus: []ds.SubMenu{
			{Title: "Roles", Path: "/settings/roles"},
			{Title: "Menus", Path: "/settings/menus"},
		},
	}
	if err := repo.CreateMenu(ctx, &menu); err != nil {
		t.Fatalf("could not seed menu: %v", err)
	}
	return menu, role.ID
}

func TestUpsertPermissionRejectsUnknownMenu(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	_, roleID := seedMenuTree(t, repo)

	err := repo.UpsertPermission(ctx, roleID, []ds.MenuAccess{{MenuID: 9999}})
	if err == nil {
		t.Fatal("expected rejection for a menu that does not exist")
	}

	// The failed write must not leave a partial permission record behind.
	if _, err := repo.GetPermissionByRole(ctx, roleID); err == nil {
		t.Fatal("permission record created despite validation failure")
	}
}

func TestUpsertPermissionFullReplace(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	menu, roleID := seedMenuTree(t, repo)

	second := ds.Menu{Title: "Blogs", Path: "/blogs"}
	if err := repo.CreateMenu(ctx, &second); err != nil {
		t.Fatalf("CreateMenu: %v", err)
	}

	first := []ds.MenuAccess{{
		MenuID: menu.ID,
		SubMenus: []ds.SubMenuAccess{
			{SubMenuID: menu.SubMenus[0].ID},
			{SubMenuID: menu.SubMenus[1].ID},
		},
	}}
	if err := repo.UpsertPermission(ctx, roleID, first); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	perm, err := repo.GetPermissionByRole(ctx, roleID)
	if err != nil {
		t.Fatalf("GetPermissionByRole: %v", err)
	}
	if len(perm.MenuAccess) != 1 || len(perm.MenuAccess[0].SubMenus) != 2 {
		t.Fatalf("unexpected tree after first upsert: %+v", perm.MenuAccess)
	}

	// Second upsert replaces the tree entirely, it does not merge.
	replacement := []ds.MenuAccess{{MenuID: second.ID}}
	if err := repo.UpsertPermission(ctx, roleID, replacement); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	perm, err = repo.GetPermissionByRole(ctx, roleID)
	if err != nil {
		t.Fatalf("GetPermissionByRole: %v", err)
	}
	if len(perm.MenuAccess) != 1 || perm.MenuAccess[0].MenuID != second.ID {
		t.Fatalf("old tree survived the replace: %+v", perm.MenuAccess)
	}
	if len(perm.MenuAccess[0].SubMenus) != 0 {
		t.Errorf("stale submenu access rows: %+v", perm.MenuAccess[0].SubMenus)
	}

	// One permission record per role, however many times we upsert.
	var count int64
	repo.db.Model(&ds.RolePermission{}).Where("role_id = ?", roleID).Count(&count)
	if count != 1 {
		t.Errorf("expected one permission record, got %d", count)
	}
}

func TestUpsertPermissionIdempotent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	menu, roleID := seedMenuTree(t, repo)

	access := func() []ds.MenuAccess {
		return []ds.MenuAccess{{
			MenuID:   menu.ID,
			SubMenus: []ds.SubMenuAccess{{SubMenuID: menu.SubMenus[0].ID}},
		}}
	}

	if err := repo.UpsertPermission(ctx, roleID, access()); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if err := repo.UpsertPermission(ctx, roleID, access()); err != nil {
		t.Fatalf("repeat upsert: %v", err)
	}

	perm, err := repo.GetPermissionByRole(ctx, roleID)
	if err != nil {
		t.Fatalf("GetPermissionByRole: %v", err)
	}
	if len(perm.MenuAccess) != 1 || len(perm.MenuAccess[0].SubMenus) != 1 {
		t.Errorf("repeat upsert changed the tree: %+v", perm.MenuAccess)
	}
}

func TestDeleteMenuCascadesSubMenus(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	menu, _ := seedMenuTree(t, repo)

	if err := repo.DeleteMenu(ctx, menu.ID); err != nil {
		t.Fatalf("DeleteMenu: %v", err)
	}

	var count int64
	repo.db.Model(&ds.SubMenu{}).Where("menu_id = ?", menu.ID).Count(&count)
	if count != 0 {
		t.Errorf("submenus survived menu deletion: %d", count)
	}

	exists, err := repo.MenuExists(ctx, menu.ID)
	if err != nil || exists {
		t.Errorf("MenuExists after delete = %v, %v", exists, err)
	}
}
