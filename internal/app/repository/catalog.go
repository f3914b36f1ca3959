package repository

import (
	"context"

	"adagency/internal/app/ds"

	"gorm.io/gorm"
)

// Service and hosting catalog methods (admin-managed reference data).

func (r *Repository) ListServices(ctx context.Context) ([]ds.Service, error) {
	var services []ds.Service
	err := r.db.WithContext(ctx).Preload("Packages").Order("id").Find(&services).Error
	return services, err
}

func (r *Repository) GetServiceByID(ctx context.Context, id uint) (*ds.Service, error) {
	var service ds.Service
	err := r.db.WithContext(ctx).Preload("Packages").First(&service, id).Error
	if err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *Repository) CreateService(ctx context.Context, service *ds.Service) error {
	return r.db.WithContext(ctx).Create(service).Error
}

// UpdateService replaces the service row and its package tiers.
func (r *Repository) UpdateService(ctx context.Context, service *ds.Service) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&ds.Service{}).Where("id = ?", service.ID).
			Updates(map[string]interface{}{
				"service_title": service.ServiceTitle,
				"service_icon":  service.ServiceIcon,
			}).Error; err != nil {
			return err
		}
		if err := tx.Where("service_id = ?", service.ID).Delete(&ds.ServicePackage{}).Error; err != nil {
			return err
		}
		for i := range service.Packages {
			service.Packages[i].ID = 0
			service.Packages[i].ServiceID = service.ID
		}
		if len(service.Packages) == 0 {
			return nil
		}
		return tx.Create(&service.Packages).Error
	})
}

func (r *Repository) DeleteService(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("service_id = ?", id).Delete(&ds.ServicePackage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&ds.Service{}, id).Error
	})
}

func (r *Repository) ServicePackageExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&ds.ServicePackage{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *Repository) ListHostingPackages(ctx context.Context) ([]ds.HostingPackage, error) {
	var packages []ds.HostingPackage
	err := r.db.WithContext(ctx).Order("price").Find(&packages).Error
	return packages, err
}

func (r *Repository) GetHostingPackageByID(ctx context.Context, id uint) (*ds.HostingPackage, error) {
	var pkg ds.HostingPackage
	err := r.db.WithContext(ctx).First(&pkg, id).Error
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *Repository) CreateHostingPackage(ctx context.Context, pkg *ds.HostingPackage) error {
	return r.db.WithContext(ctx).Create(pkg).Error
}

func (r *Repository) UpdateHostingPackage(ctx context.Context, pkg *ds.HostingPackage) error {
	return r.db.WithContext(ctx).Save(pkg).Error
}

func (r *Repository) DeleteHostingPackage(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&ds.HostingPackage{}, id).Error
}

func (r *Repository) HostingPackageExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&ds.HostingPackage{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
