package repository

import (
	"context"
	"testing"

	"adagency/internal/app/ds"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestRepo opens a fresh in-memory sqlite database per test.
func newTestRepo(t *testing.T) *Repository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("could not open sqlite: %v", err)
	}

	repo, err := NewWithDB(db)
	if err != nil {
		t.Fatalf("could not migrate: %v", err)
	}
	return repo
}

func seedUser(t *testing.T, repo *Repository) *ds.User {
	t.Helper()
	ctx := context.Background()

	role := ds.Role{Name: "user"}
	if err := repo.db.Create(&role).Error; err != nil {
		t.Fatalf("could not seed role: %v", err)
	}

	user := &ds.User{
		FullName:     "Test Buyer",
		Email:        "buyer@example.com",
		PasswordHash: "x",
		RoleID:       role.ID,
	}
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("could not seed user: %v", err)
	}
	return user
}

func TestCreateUserLowercasesEmail(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	role := ds.Role{Name: "user"}
	repo.db.Create(&role)

	user := &ds.User{FullName: "A", Email: "MiXeD@Example.COM", PasswordHash: "x", RoleID: role.ID}
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	got, err := repo.GetUserByEmail(ctx, "mixed@EXAMPLE.com")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if got.Email != "mixed@example.com" {
		t.Errorf("stored email = %q, want lowercased", got.Email)
	}
	if got.Role.Name != "user" {
		t.Errorf("role not preloaded: %+v", got.Role)
	}

	exists, err := repo.UserExistsByEmail(ctx, " MIXED@example.com ")
	if err != nil || !exists {
		t.Errorf("UserExistsByEmail = %v, %v, want true, nil", exists, err)
	}
}
