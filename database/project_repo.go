package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-cms-backend/errs"
	"github.com/rpupo63/portfolio-cms-backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// FindByID returns a project by its ID with the author preloaded
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("Author").First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFound("project")
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindPage returns one page of projects newest-first; search matches title,
// description or technologies case-insensitively.
func (r *ProjectRepo) FindPage(opts ListOptions) ([]*models.Project, Pagination, error) {
	filter := func(db *gorm.DB) *gorm.DB {
		if opts.Search != "" {
			db = db.Where("title ~* ? OR description ~* ? OR technologies::text ~* ?",
				opts.Search, opts.Search, opts.Search)
		}
		return db
	}

	var total int64
	if err := r.db.Model(&models.Project{}).Scopes(filter).Count(&total).Error; err != nil {
		return nil, Pagination{}, err
	}

	pagination := NewPagination(opts.Page, opts.Limit, total)

	var projects []*models.Project
	err := r.db.Scopes(filter).
		Preload("Author").
		Order("created_at DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit).
		Find(&projects).Error
	if err != nil {
		return nil, Pagination{}, err
	}

	return projects, pagination, nil
}

// UpdateOwned applies changes to the project matching both id and author.
// Missing id and ownership mismatch both report not found.
func (r *ProjectRepo) UpdateOwned(id, authorID uuid.UUID, changes map[string]any) error {
	result := r.db.Model(&models.Project{}).
		Where("id = ? AND author_id = ?", id, authorID).
		Updates(changes)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewNotFound("project")
	}
	return nil
}

// DeleteOwned removes the project matching both id and author.
func (r *ProjectRepo) DeleteOwned(id, authorID uuid.UUID) error {
	result := r.db.Where("id = ? AND author_id = ?", id, authorID).Delete(&models.Project{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewNotFound("project")
	}
	return nil
}
