package staff

import (
	"context"

	"github.com/google/uuid"

	"github.com/payd-hq/payd/internal/platform/httpx"
)

// ErrNotFound indicates the referenced staff member does not exist or has
// been deactivated. A soft-deleted approver is treated as absent so that a
// departed employee can never sign off on a payment.
var ErrNotFound = &httpx.DomainError{
	Kind:    "staff_not_found",
	Class:   httpx.ErrNotFound,
	Message: "staff member not found",
}

// Repository defines data access for staff members.
type Repository interface {
	Create(ctx context.Context, member *Staff) (*Staff, error)
	Get(ctx context.Context, id uuid.UUID) (*Staff, error)
	List(ctx context.Context) ([]Staff, error)
	Update(ctx context.Context, member *Staff) (*Staff, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// Service manages the staff roster.
type Service struct {
	repo Repository
}

// NewService builds Service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create registers a staff member, assigning an ID when none is provided.
func (s *Service) Create(ctx context.Context, member Staff) (*Staff, error) {
	if member.ID == uuid.Nil {
		member.ID = uuid.New()
	}
	return s.repo.Create(ctx, &member)
}

// Get returns the active staff member or ErrNotFound.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Staff, error) {
	return s.repo.Get(ctx, id)
}

// List returns all active staff members.
func (s *Service) List(ctx context.Context) ([]Staff, error) {
	return s.repo.List(ctx)
}

// Update replaces the member's display fields.
func (s *Service) Update(ctx context.Context, member Staff) (*Staff, error) {
	return s.repo.Update(ctx, &member)
}

// Delete soft-deletes the staff member, removing them from the approver pool.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.SoftDelete(ctx, id)
}
