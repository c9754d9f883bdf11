package payments

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status is the payment lifecycle state. The only transitions are
// PENDING to CLOSED and PENDING to PROCESSED; terminal states never move.
type Status string

const (
	// StatusPending means funds are reserved and a decision is outstanding.
	StatusPending Status = "PENDING"
	// StatusClosed means the request was rejected or could not be funded.
	StatusClosed Status = "CLOSED"
	// StatusProcessed means the request was approved and the funds consumed.
	StatusProcessed Status = "PROCESSED"
)

// Terminal reports whether no further transition is possible.
func (s Status) Terminal() bool {
	return s == StatusClosed || s == StatusProcessed
}

// Canonical comment values written by the lifecycle engine.
const (
	CommentInsufficientFunds = "Not enough funds"
	CommentProcessed         = "Processed"
)

// Payment is a request to spend part of a customer's balance.
type Payment struct {
	ID     uuid.UUID
	Amount decimal.Decimal
	// PaymentDateUTC is the date the payment is for, supplied by the caller.
	PaymentDateUTC   time.Time
	RequestedDateUTC time.Time
	// ProcessedDateUTC is set only when the payment reaches a terminal state.
	ProcessedDateUTC *time.Time
	Status           Status
	Comment          string
	CustomerID       uuid.UUID
	// ApproverID stays Nil until a staff member decides the payment.
	ApproverID uuid.UUID
}
