package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository handles product data access
type Repository struct {
	db *gorm.DB
}

// NewRepository creates product repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Count returns the number of catalog entries
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&Product{}).Count(&total).Error
	return total, err
}

// CreateAll inserts products in one transaction. Rows whose name already
// exists are skipped, so a concurrent seed race leaves exactly one copy
// of each product.
func (r *Repository) CreateAll(ctx context.Context, products []Product) error {
	if len(products) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(&products).Error
}

// List returns products in catalog order, optionally filtered to one category
func (r *Repository) List(ctx context.Context, category *Category) ([]Product, error) {
	var products []Product

	q := r.db.WithContext(ctx).Model(&Product{})
	if category != nil {
		q = q.Where("category = ?", *category)
	}

	err := q.Order("position ASC").Find(&products).Error
	return products, err
}

// GetByID fetches a single product
func (r *Repository) GetByID(ctx context.Context, id string) (*Product, error) {
	var product Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// MissingIDs returns the subset of ids that do not exist in the catalog.
// Input order is preserved in the result.
func (r *Repository) MissingIDs(ctx context.Context, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var found []string
	err := r.db.WithContext(ctx).
		Model(&Product{}).
		Where("id IN ?", ids).
		Pluck("id", &found).Error
	if err != nil {
		return nil, err
	}

	known := make(map[string]bool, len(found))
	for _, id := range found {
		known[id] = true
	}

	var missing []string
	for _, id := range ids {
		if !known[id] {
			missing = append(missing, id)
		}
	}
	return missing, nil
}
