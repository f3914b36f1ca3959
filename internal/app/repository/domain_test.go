package repository

import (
	"context"
	"testing"
	"time"

	"adagency/internal/app/ds"
)

func TestActivateDomainOnce(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	user := seedUser(t, repo)

	domain, err := repo.RegisterDomain(ctx, user.ID, "example.com", 12.99)
	if err != nil {
		t.Fatalf("RegisterDomain: %v", err)
	}
	if domain.Status != ds.DomainStatusAvailable {
		t.Fatalf("new domain status = %s, want available", domain.Status)
	}

	if err := repo.ActivateDomain(ctx, domain.ID); err != nil {
		t.Fatalf("ActivateDomain: %v", err)
	}

	got, _ := repo.GetDomainByID(ctx, domain.ID)
	if got.Status != ds.DomainStatusRegistered {
		t.Errorf("status = %s, want registered", got.Status)
	}
	if got.RegistrationDate == nil || got.ExpiryDate == nil {
		t.Fatal("registration/expiry dates not set")
	}
	if got.ExpiryDate.Sub(*got.RegistrationDate) < 364*24*time.Hour {
		t.Errorf("expected a one-year term, got %s to %s", got.RegistrationDate, got.ExpiryDate)
	}

	if err := repo.ActivateDomain(ctx, domain.ID); err == nil {
		t.Fatal("expected error activating an already-registered domain")
	}
}

func TestRegisterDomainUniqueName(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	user := seedUser(t, repo)

	if _, err := repo.RegisterDomain(ctx, user.ID, "taken.com", 10); err != nil {
		t.Fatalf("RegisterDomain: %v", err)
	}
	if _, err := repo.RegisterDomain(ctx, user.ID, "taken.com", 10); err == nil {
		t.Fatal("expected unique constraint violation on duplicate name")
	}
}

func TestRenewDomainExtendsFromExpiry(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	user := seedUser(t, repo)

	domain, _ := repo.RegisterDomain(ctx, user.ID, "renew.com", 10)
	repo.ActivateDomain(ctx, domain.ID)

	before, _ := repo.GetDomainByID(ctx, domain.ID)
	if err := repo.RenewDomain(ctx, domain.ID, 2); err != nil {
		t.Fatalf("RenewDomain: %v", err)
	}

	after, _ := repo.GetDomainByID(ctx, domain.ID)
	want := before.ExpiryDate.AddDate(2, 0, 0)
	if !after.ExpiryDate.Equal(want) {
		t.Errorf("expiry = %s, want %s", after.ExpiryDate, want)
	}
}

func TestListDomainsByUser(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	user := seedUser(t, repo)

	other := &ds.User{FullName: "Other", Email: "other@example.com", PasswordHash: "x", RoleID: user.RoleID}
	repo.CreateUser(ctx, other)

	repo.RegisterDomain(ctx, user.ID, "mine.com", 10)
	repo.RegisterDomain(ctx, other.ID, "theirs.com", 10)

	domains, err := repo.ListDomainsByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListDomainsByUser: %v", err)
	}
	if len(domains) != 1 || domains[0].Name != "mine.com" {
		t.Errorf("unexpected domains: %+v", domains)
	}
}
