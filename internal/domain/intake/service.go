package intake

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"jonesaica/internal/pkg/validator"
)

// ProductChecker verifies quote product references against the catalog.
type ProductChecker interface {
	MissingIDs(ctx context.Context, ids []string) ([]string, error)
}

// Service handles lead and quote intake
type Service struct {
	repo     *Repository
	products ProductChecker
}

// NewService creates intake service
func NewService(repo *Repository, products ProductChecker) *Service {
	return &Service{
		repo:     repo,
		products: products,
	}
}

// SubmitLead validates and persists a lead submission. A FieldErrors
// return lists every invalid field; any other error is a storage failure.
func (s *Service) SubmitLead(ctx context.Context, req *SubmitLeadRequest) (*Lead, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, FieldErrors(errs)
	}

	lead := &Lead{
		ID:            uuid.NewString(),
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Parish:        req.Parish,
		District:      req.District,
		Interest:      Interest(req.Interest),
		SpecificNeeds: req.SpecificNeeds,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.repo.CreateLead(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

// SubmitQuote validates and persists a quote request. Product references
// are deduplicated, then every id must exist in the catalog; unknown ids
// reject the whole submission rather than being silently dropped.
func (s *Service) SubmitQuote(ctx context.Context, req *SubmitQuoteRequest) (*Quote, error) {
	errs := validator.Validate(req)

	products := dedupe(req.Products)
	if len(products) > 0 {
		missing, err := s.products.MissingIDs(ctx, products)
		if err != nil {
			return nil, err
		}
		if len(missing) > 0 {
			if errs == nil {
				errs = make(map[string]string)
			}
			errs["products"] = fmt.Sprintf("unknown product ids: %s", strings.Join(missing, ", "))
		}
	}
	if errs != nil {
		return nil, FieldErrors(errs)
	}

	quote := &Quote{
		ID:            uuid.NewString(),
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Parish:        req.Parish,
		District:      req.District,
		Interest:      Interest(req.Interest),
		Products:      products,
		SpecificNeeds: req.SpecificNeeds,
		Status:        QuoteStatusPending,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.repo.CreateQuote(ctx, quote); err != nil {
		return nil, err
	}
	return quote, nil
}

// ListLeads returns all stored leads
func (s *Service) ListLeads(ctx context.Context) ([]Lead, error) {
	return s.repo.ListLeads(ctx)
}

// ListQuotes returns all stored quotes
func (s *Service) ListQuotes(ctx context.Context) ([]Quote, error) {
	return s.repo.ListQuotes(ctx)
}

// dedupe collapses duplicate ids, keeping first-seen order.
func dedupe(ids []string) []string {
	if len(ids) == 0 {
		return []string{}
	}
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
