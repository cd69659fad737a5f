package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-cms-backend/errs"
	"github.com/rpupo63/portfolio-cms-backend/models"
)

type BlogRepo struct {
	db *gorm.DB
}

func NewBlogRepo(db *gorm.DB) *BlogRepo {
	return &BlogRepo{db}
}

// Add inserts a new blog post into the database
func (r *BlogRepo) Add(blog *models.Blog) error {
	return r.db.Create(blog).Error
}

// FindByID returns a blog post by its ID with the author preloaded
func (r *BlogRepo) FindByID(id uuid.UUID) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.Preload("Author").First(&blog, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFound("blog")
	}
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// FindPage returns one page of blog posts newest-first. The published filter
// applies when set; search matches title, content or tags case-insensitively
// with unanchored regex semantics.
func (r *BlogRepo) FindPage(opts ListOptions) ([]*models.Blog, Pagination, error) {
	filter := func(db *gorm.DB) *gorm.DB {
		if opts.Published != nil {
			db = db.Where("published = ?", *opts.Published)
		}
		if opts.Search != "" {
			db = db.Where("title ~* ? OR content ~* ? OR tags::text ~* ?",
				opts.Search, opts.Search, opts.Search)
		}
		return db
	}

	var total int64
	if err := r.db.Model(&models.Blog{}).Scopes(filter).Count(&total).Error; err != nil {
		return nil, Pagination{}, err
	}

	pagination := NewPagination(opts.Page, opts.Limit, total)

	var blogs []*models.Blog
	err := r.db.Scopes(filter).
		Preload("Author").
		Order("created_at DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit).
		Find(&blogs).Error
	if err != nil {
		return nil, Pagination{}, err
	}

	return blogs, pagination, nil
}

// UpdateOwned applies changes to the blog post matching both id and author.
// A missing id and an ownership mismatch are deliberately indistinguishable:
// both report not found.
func (r *BlogRepo) UpdateOwned(id, authorID uuid.UUID, changes map[string]any) error {
	result := r.db.Model(&models.Blog{}).
		Where("id = ? AND author_id = ?", id, authorID).
		Updates(changes)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewNotFound("blog")
	}
	return nil
}

// DeleteOwned removes the blog post matching both id and author, with the
// same not-found collapse as UpdateOwned.
func (r *BlogRepo) DeleteOwned(id, authorID uuid.UUID) error {
	result := r.db.Where("id = ? AND author_id = ?", id, authorID).Delete(&models.Blog{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewNotFound("blog")
	}
	return nil
}
