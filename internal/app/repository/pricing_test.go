package repository

import (
	"context"
	"testing"

	"adagency/internal/app/ds"
)

func TestPricingCaseInsensitiveLookup(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	entry := &ds.PricingEntry{TLD: ".COM", Price: 12.99, RenewalPrice: 14.99, TransferPrice: 12.99}
	if err := repo.CreatePricing(ctx, entry); err != nil {
		t.Fatalf("CreatePricing: %v", err)
	}
	if entry.TLD != ".com" {
		t.Errorf("TLD stored as %q, want lowercased", entry.TLD)
	}

	for _, q := range []string{".com", ".COM", ".CoM"} {
		got, err := repo.GetPricingByTLD(ctx, q)
		if err != nil {
			t.Fatalf("GetPricingByTLD(%q): %v", q, err)
		}
		if got.Price != 12.99 {
			t.Errorf("GetPricingByTLD(%q).Price = %v", q, got.Price)
		}
	}
}

func TestPricingUniqueTLD(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.CreatePricing(ctx, &ds.PricingEntry{TLD: ".so", Price: 59.99, RenewalPrice: 64.99, TransferPrice: 59.99}); err != nil {
		t.Fatalf("CreatePricing: %v", err)
	}
	if err := repo.CreatePricing(ctx, &ds.PricingEntry{TLD: ".SO", Price: 1, RenewalPrice: 1, TransferPrice: 1}); err == nil {
		t.Fatal("expected unique constraint violation on duplicate TLD")
	}
}

func TestListPricingOrderedByTLD(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, tld := range []string{".net", ".com", ".so"} {
		repo.CreatePricing(ctx, &ds.PricingEntry{TLD: tld, Price: 10, RenewalPrice: 10, TransferPrice: 10})
	}

	entries, err := repo.ListPricing(ctx)
	if err != nil {
		t.Fatalf("ListPricing: %v", err)
	}
	want := []string{".com", ".net", ".so"}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries", len(entries))
	}
	for i, tld := range want {
		if entries[i].TLD != tld {
			t.Errorf("entries[%d].TLD = %q, want %q", i, entries[i].TLD, tld)
		}
	}
}

func TestUpdateAndDeletePricing(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	entry := &ds.PricingEntry{TLD: ".org", Price: 12.49, RenewalPrice: 14.49, TransferPrice: 12.49}
	repo.CreatePricing(ctx, entry)

	if err := repo.UpdatePricing(ctx, entry.ID, map[string]interface{}{"price": 13.49}); err != nil {
		t.Fatalf("UpdatePricing: %v", err)
	}
	got, _ := repo.GetPricingByTLD(ctx, ".org")
	if got.Price != 13.49 {
		t.Errorf("price after update = %v", got.Price)
	}

	if err := repo.DeletePricing(ctx, entry.ID); err != nil {
		t.Fatalf("DeletePricing: %v", err)
	}
	if _, err := repo.GetPricingByTLD(ctx, ".org"); err == nil {
		t.Fatal("entry still present after delete")
	}
}
