package repository

import (
	"context"

	"adagency/internal/app/ds"
)

// Blog content methods.

func (r *Repository) ListBlogs(ctx context.Context) ([]ds.Blog, error) {
	var blogs []ds.Blog
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&blogs).Error
	return blogs, err
}

func (r *Repository) GetBlogByID(ctx context.Context, id uint) (*ds.Blog, error) {
	var blog ds.Blog
	err := r.db.WithContext(ctx).First(&blog, id).Error
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

func (r *Repository) GetBlogBySlug(ctx context.Context, slug string) (*ds.Blog, error) {
	var blog ds.Blog
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&blog).Error
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

func (r *Repository) CreateBlog(ctx context.Context, blog *ds.Blog) error {
	return r.db.WithContext(ctx).Create(blog).Error
}

func (r *Repository) UpdateBlog(ctx context.Context, id uint, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&ds.Blog{}).Where("id = ?", id).Updates(updates).Error
}

func (r *Repository) UpdateBlogCover(ctx context.Context, id uint, objectName string) error {
	return r.db.WithContext(ctx).Model(&ds.Blog{}).Where("id = ?", id).
		Update("cover_image", objectName).Error
}

func (r *Repository) DeleteBlog(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&ds.Blog{}, id).Error
}
