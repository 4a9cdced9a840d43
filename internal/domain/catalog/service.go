package catalog

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
)

// Service handles catalog business logic
type Service struct {
	repo *Repository
}

// NewService creates catalog service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Seed installs the starter catalog if and only if the store is empty.
// It returns the number of products inserted; an already seeded store is
// not an error because the storefront triggers seeding on every load.
// The unique index on product name keeps a concurrent race from inserting
// a second copy of anything.
func (s *Service) Seed(ctx context.Context) (int, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if total > 0 {
		log.Printf("catalog: seed skipped, %d products exist", total)
		return 0, nil
	}

	products := starterProducts()
	now := time.Now().UTC()
	for i := range products {
		products[i].ID = uuid.NewString()
		products[i].Position = i
		products[i].CreatedAt = now
	}

	if err := s.repo.CreateAll(ctx, products); err != nil {
		return 0, err
	}

	log.Printf("catalog: seeded %d products", len(products))
	return len(products), nil
}

// List returns product views, optionally filtered to one category.
// rawCategory is the unparsed query value; empty means no filter.
func (s *Service) List(ctx context.Context, rawCategory string) ([]ProductView, error) {
	var category *Category
	if rawCategory != "" {
		c, err := ParseCategory(rawCategory)
		if err != nil {
			return nil, ErrInvalidCategory
		}
		category = &c
	}

	products, err := s.repo.List(ctx, category)
	if err != nil {
		return nil, err
	}
	return newProductViews(products), nil
}

// Get returns a single product view
func (s *Service) Get(ctx context.Context, id string) (*ProductView, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := NewProductView(*product)
	return &view, nil
}
