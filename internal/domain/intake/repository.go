package intake

import (
	"context"

	"gorm.io/gorm"
)

// Repository handles lead and quote data access
type Repository struct {
	db *gorm.DB
}

// NewRepository creates intake repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateLead inserts a new lead
func (r *Repository) CreateLead(ctx context.Context, lead *Lead) error {
	return r.db.WithContext(ctx).Create(lead).Error
}

// CreateQuote inserts a new quote
func (r *Repository) CreateQuote(ctx context.Context, quote *Quote) error {
	return r.db.WithContext(ctx).Create(quote).Error
}

// ListLeads returns all leads, newest first
func (r *Repository) ListLeads(ctx context.Context) ([]Lead, error) {
	var leads []Lead
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&leads).Error
	return leads, err
}

// ListQuotes returns all quotes, newest first
func (r *Repository) ListQuotes(ctx context.Context) ([]Quote, error) {
	var quotes []Quote
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&quotes).Error
	return quotes, err
}
