package database

import (
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-cms-backend/models"
)

type ContactRepo struct {
	db *gorm.DB
}

func NewContactRepo(db *gorm.DB) *ContactRepo {
	return &ContactRepo{db}
}

// Add inserts a new contact submission into the database
func (r *ContactRepo) Add(contact *models.Contact) error {
	return r.db.Create(contact).Error
}

// FindPage returns contact submissions newest-first
func (r *ContactRepo) FindPage(opts ListOptions) ([]*models.Contact, Pagination, error) {
	var total int64
	if err := r.db.Model(&models.Contact{}).Count(&total).Error; err != nil {
		return nil, Pagination{}, err
	}

	pagination := NewPagination(opts.Page, opts.Limit, total)

	var contacts []*models.Contact
	err := r.db.
		Order("created_at DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit).
		Find(&contacts).Error
	if err != nil {
		return nil, Pagination{}, err
	}

	return contacts, pagination, nil
}
