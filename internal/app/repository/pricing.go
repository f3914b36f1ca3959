package repository

import (
	"context"
	"strings"

	"adagency/internal/app/ds"
)

// Pricing catalog methods. Lookups are case-insensitive on TLD.

func (r *Repository) ListPricing(ctx context.Context) ([]ds.PricingEntry, error) {
	var entries []ds.PricingEntry
	err := r.db.WithContext(ctx).Order("tld").Find(&entries).Error
	return entries, err
}

func (r *Repository) GetPricingByTLD(ctx context.Context, tld string) (*ds.PricingEntry, error) {
	var entry ds.PricingEntry
	err := r.db.WithContext(ctx).
		Where("LOWER(tld) = ?", strings.ToLower(tld)).
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *Repository) CreatePricing(ctx context.Context, entry *ds.PricingEntry) error {
	entry.TLD = strings.ToLower(entry.TLD)
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *Repository) UpdatePricing(ctx context.Context, id uint, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&ds.PricingEntry{}).Where("id = ?", id).Updates(updates).Error
}

func (r *Repository) DeletePricing(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&ds.PricingEntry{}, id).Error
}
