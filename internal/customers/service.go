package customers

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/payd-hq/payd/internal/platform/httpx"
	"github.com/payd-hq/payd/internal/shared"
)

// ErrNotFound indicates the referenced customer does not exist.
var ErrNotFound = &httpx.DomainError{
	Kind:    "customer_not_found",
	Class:   httpx.ErrNotFound,
	Message: "customer not found",
}

// Repository defines data access for customers.
type Repository interface {
	Create(ctx context.Context, customer *Customer) (*Customer, error)
	Get(ctx context.Context, id uuid.UUID) (*Customer, error)
	List(ctx context.Context) ([]Customer, error)
	Update(ctx context.Context, customer *Customer) (*Customer, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	AdjustBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error
}

// Service owns balance mutation semantics for the customer ledger.
type Service struct {
	repo Repository
}

// NewService builds Service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create registers a new customer, assigning an ID when none is provided.
func (s *Service) Create(ctx context.Context, customer Customer) (*Customer, error) {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	return s.repo.Create(ctx, &customer)
}

// Get returns the customer or ErrNotFound. Soft-deleted customers remain
// readable; only mutations are guarded.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Customer, error) {
	return s.repo.Get(ctx, id)
}

// List returns all customers.
func (s *Service) List(ctx context.Context) ([]Customer, error) {
	return s.repo.List(ctx)
}

// Update replaces the customer's display fields. The deleted guard is applied
// against the stored record, not the caller's copy, to defend against
// stale-read races.
func (s *Service) Update(ctx context.Context, customer Customer) (*Customer, error) {
	return s.repo.Update(ctx, &customer)
}

// Delete soft-deletes the customer.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.SoftDelete(ctx, id)
}

// TopUp credits the customer's balance by a positive amount.
func (s *Service) TopUp(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return shared.ErrInvalidAmount
	}
	return s.repo.AdjustBalance(ctx, id, amount)
}

// AdjustBalance applies a signed delta to the stored balance. Deltas compose
// under concurrency and make undo a simple negation, which is why mutation is
// never expressed as an absolute set.
func (s *Service) AdjustBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error {
	return s.repo.AdjustBalance(ctx, id, delta)
}
