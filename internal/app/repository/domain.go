package repository

import (
	"context"
	"errors"
	"time"

	"adagency/internal/app/ds"
)

// Domain record methods. Status moves one way in the registration flow:
// available -> registered.

func (r *Repository) RegisterDomain(ctx context.Context, userID uint, name string, price float64) (*ds.Domain, error) {
	domain := ds.Domain{
		Name:   name,
		UserID: userID,
		Status: ds.DomainStatusAvailable,
		Price:  price,
	}
	err := r.db.WithContext(ctx).Create(&domain).Error
	if err != nil {
		return nil, err
	}
	return &domain, nil
}

// ActivateDomain marks a paid domain as registered with a one-year term.
func (r *Repository) ActivateDomain(ctx context.Context, domainID uint) error {
	now := time.Now()
	expiry := now.AddDate(1, 0, 0)

	result := r.db.WithContext(ctx).Model(&ds.Domain{}).
		Where("id = ? AND status = ?", domainID, ds.DomainStatusAvailable).
		Updates(map[string]interface{}{
			"status":            ds.DomainStatusRegistered,
			"registration_date": now,
			"expiry_date":       expiry,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("domain not found or already registered")
	}
	return nil
}

// RenewDomain pushes the expiry date out by the given number of years.
func (r *Repository) RenewDomain(ctx context.Context, domainID uint, years int) error {
	var domain ds.Domain
	err := r.db.WithContext(ctx).First(&domain, domainID).Error
	if err != nil {
		return err
	}

	base := time.Now()
	if domain.ExpiryDate != nil && domain.ExpiryDate.After(base) {
		base = *domain.ExpiryDate
	}
	expiry := base.AddDate(years, 0, 0)

	return r.db.WithContext(ctx).Model(&ds.Domain{}).
		Where("id = ?", domainID).
		Update("expiry_date", expiry).Error
}

// MarkTransferred records an inbound transfer.
func (r *Repository) MarkTransferred(ctx context.Context, domainID uint) error {
	return r.db.WithContext(ctx).Model(&ds.Domain{}).
		Where("id = ?", domainID).
		Update("status", ds.DomainStatusTransferred).Error
}

func (r *Repository) GetDomainByID(ctx context.Context, id uint) (*ds.Domain, error) {
	var domain ds.Domain
	err := r.db.WithContext(ctx).First(&domain, id).Error
	if err != nil {
		return nil, err
	}
	return &domain, nil
}

func (r *Repository) ListDomainsByUser(ctx context.Context, userID uint) ([]ds.Domain, error) {
	var domains []ds.Domain
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id desc").Find(&domains).Error
	return domains, err
}
