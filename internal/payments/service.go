package payments

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/payd-hq/payd/internal/clock"
	"github.com/payd-hq/payd/internal/customers"
	"github.com/payd-hq/payd/internal/platform/httpx"
	"github.com/payd-hq/payd/internal/shared"
	"github.com/payd-hq/payd/internal/staff"
)

var (
	// ErrNotFound indicates the referenced payment does not exist.
	ErrNotFound = &httpx.DomainError{
		Kind:    "payment_not_found",
		Class:   httpx.ErrNotFound,
		Message: "payment not found",
	}
	// ErrUnexpectedApprover rejects a fresh request that already names an
	// approver. Approval happens at decision time, never at creation.
	ErrUnexpectedApprover = &httpx.DomainError{
		Kind:    "unexpected_approver",
		Class:   httpx.ErrValidation,
		Message: "a new payment request must not carry an approver",
	}
	// ErrApproverMissing rejects a decision submitted without an approver.
	ErrApproverMissing = &httpx.DomainError{
		Kind:    "approver_missing",
		Class:   httpx.ErrValidation,
		Message: "a payment decision requires an approver",
	}
	// ErrNotPending rejects a decision against a payment already decided.
	ErrNotPending = &httpx.DomainError{
		Kind:    "payment_not_pending",
		Class:   httpx.ErrConflict,
		Message: "payment is not pending",
	}
	// ErrInvalidStatus rejects a decision whose target state is not terminal.
	ErrInvalidStatus = &httpx.DomainError{
		Kind:    "invalid_status",
		Class:   httpx.ErrValidation,
		Message: "decision status must be CLOSED or PROCESSED",
	}
)

// Store defines data access for payments.
type Store interface {
	Create(ctx context.Context, payment *Payment) (*Payment, error)
	Get(ctx context.Context, id uuid.UUID) (*Payment, error)
	Update(ctx context.Context, payment *Payment) (*Payment, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, skip, take int) ([]Payment, error)
}

// CustomerStore is the slice of the customer ledger the engine consumes.
type CustomerStore interface {
	Get(ctx context.Context, id uuid.UUID) (*customers.Customer, error)
	AdjustBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error
}

// StaffStore resolves approvers. Soft-deleted members read as absent.
type StaffStore interface {
	Get(ctx context.Context, id uuid.UUID) (*staff.Staff, error)
}

// TxRunner executes fn atomically. Store calls made with the ctx passed to
// fn join the same transaction, so an operation either fully applies or
// leaves no trace.
type TxRunner func(ctx context.Context, fn func(ctx context.Context) error) error

// Service is the payment lifecycle engine. It owns the two state
// transitions of the ledger: Request reserves funds and creates the payment,
// Decide finalizes it and settles the reservation.
type Service struct {
	store     Store
	customers CustomerStore
	staff     StaffStore
	clock     clock.Clock
	tx        TxRunner
	audit     *shared.AuditLogger
}

// NewService builds Service instance.
func NewService(store Store, customerStore CustomerStore, staffStore StaffStore, clk clock.Clock, tx TxRunner) *Service {
	return &Service{
		store:     store,
		customers: customerStore,
		staff:     staffStore,
		clock:     clk,
		tx:        tx,
	}
}

// SetAuditLogger injects the audit trail recorder.
func (s *Service) SetAuditLogger(audit *shared.AuditLogger) {
	s.audit = audit
}

// recordAudit writes a best-effort trail entry. Audit failures never fail
// the operation they describe.
func (s *Service) recordAudit(ctx context.Context, action string, p *Payment) {
	if s.audit == nil {
		return
	}
	_ = s.audit.Record(ctx, shared.AuditLog{
		ActorID:  p.ApproverID.String(),
		Action:   action,
		Entity:   "payment",
		EntityID: p.ID.String(),
		Meta: map[string]any{
			"customer_id": p.CustomerID.String(),
			"amount":      p.Amount.String(),
			"status":      string(p.Status),
		},
	})
}

// Request validates a draft payment and persists it. When the customer's
// balance covers the amount, the funds are reserved by debiting the balance
// and the payment is created PENDING. When it does not, the payment is
// auto-closed with a canonical comment and the balance is left untouched.
//
// The check order is load-bearing: later steps assume earlier ones passed,
// and validation fully precedes any mutation.
func (s *Service) Request(ctx context.Context, draft Payment) (*Payment, error) {
	if draft.Amount.Sign() <= 0 {
		return nil, shared.ErrInvalidAmount
	}
	if draft.ApproverID != uuid.Nil {
		return nil, ErrUnexpectedApprover
	}

	var created *Payment
	err := s.tx(ctx, func(ctx context.Context) error {
		customer, err := s.customers.Get(ctx, draft.CustomerID)
		if err != nil {
			return err
		}
		if err := shared.EnsureMutable(customer); err != nil {
			return err
		}

		if draft.ID == uuid.Nil {
			draft.ID = uuid.New()
		}
		// Single clock read so the auto-close path gets identical
		// requested and processed timestamps.
		now := s.clock.Now()
		draft.RequestedDateUTC = now
		if draft.PaymentDateUTC.IsZero() {
			draft.PaymentDateUTC = now
		}

		if customer.CurrentBalance.LessThan(draft.Amount) {
			draft.Status = StatusClosed
			draft.Comment = CommentInsufficientFunds
			draft.ProcessedDateUTC = &now
		} else {
			draft.Status = StatusPending
			draft.ProcessedDateUTC = nil
			if err := s.customers.AdjustBalance(ctx, customer.ID, draft.Amount.Neg()); err != nil {
				return err
			}
		}

		created, err = s.store.Create(ctx, &draft)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.recordAudit(ctx, "payment.requested", created)
	return created, nil
}

// Decide moves a pending payment to a terminal state. A PROCESSED decision
// consumes the reserved funds; a CLOSED decision credits them back. The
// failure order is fixed so callers can rely on which error fires first:
// approver checks precede existence checks precede state checks, and all
// checks precede any mutation.
func (s *Service) Decide(ctx context.Context, decision Payment) (*Payment, error) {
	// The engine enforces the terminal-target rule itself rather than
	// trusting callers: a PENDING target would refund the reservation while
	// leaving the payment decidable again.
	if !decision.Status.Terminal() {
		return nil, ErrInvalidStatus
	}
	if decision.ApproverID == uuid.Nil {
		return nil, ErrApproverMissing
	}

	var updated *Payment
	err := s.tx(ctx, func(ctx context.Context) error {
		if _, err := s.staff.Get(ctx, decision.ApproverID); err != nil {
			return err
		}
		customer, err := s.customers.Get(ctx, decision.CustomerID)
		if err != nil {
			return err
		}
		// Only the CLOSED path mutates the customer, so approving a payment
		// for a since-deleted customer stays possible; the funds were
		// already debited at request time.
		if decision.Status != StatusProcessed {
			if err := shared.EnsureMutable(customer); err != nil {
				return err
			}
		}

		stored, err := s.store.Get(ctx, decision.ID)
		if err != nil {
			return err
		}
		if stored.Status != StatusPending {
			return ErrNotPending
		}

		stored.Status = decision.Status
		stored.ApproverID = decision.ApproverID
		if decision.Comment != "" {
			stored.Comment = decision.Comment
		} else if decision.Status == StatusProcessed {
			stored.Comment = CommentProcessed
		}
		now := s.clock.Now()
		stored.ProcessedDateUTC = &now

		if updated, err = s.store.Update(ctx, stored); err != nil {
			return err
		}

		// A rejection releases the reservation made at request time.
		// Approval leaves the balance as is: the debit becomes final.
		if decision.Status != StatusProcessed {
			return s.customers.AdjustBalance(ctx, stored.CustomerID, stored.Amount)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.recordAudit(ctx, "payment.decided", updated)
	return updated, nil
}

// Get returns the payment or ErrNotFound.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Payment, error) {
	return s.store.Get(ctx, id)
}

// ListForCustomer returns a page of the customer's payments ordered by
// payment date descending.
func (s *Service) ListForCustomer(ctx context.Context, customerID uuid.UUID, skip, take int) ([]Payment, error) {
	skip, take = shared.ClampSkipTake(skip, take)
	return s.store.ListByCustomer(ctx, customerID, skip, take)
}
