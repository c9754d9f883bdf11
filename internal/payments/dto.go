package payments

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentPayload is the wire shape for payment bodies and responses.
type PaymentPayload struct {
	ID               uuid.UUID       `json:"id"`
	Amount           decimal.Decimal `json:"amount"`
	PaymentDateUTC   time.Time       `json:"paymentDateUtc"`
	RequestedDateUTC time.Time       `json:"requestedDateUtc"`
	ProcessedDateUTC *time.Time      `json:"processedDateUtc"`
	Status           Status          `json:"status" validate:"omitempty,oneof=PENDING CLOSED PROCESSED"`
	Comment          string          `json:"comment"`
	CustomerID       uuid.UUID       `json:"customerId" validate:"required"`
	ApproverID       uuid.UUID       `json:"approverId"`
}

// DecidePayload is the wire shape for payment decisions. The target status
// must be terminal; the engine rejects everything else about the decision.
type DecidePayload struct {
	ID         uuid.UUID `json:"id"`
	Status     Status    `json:"status" validate:"required,oneof=CLOSED PROCESSED"`
	Comment    string    `json:"comment"`
	CustomerID uuid.UUID `json:"customerId" validate:"required"`
	ApproverID uuid.UUID `json:"approverId"`
}

func toPayload(p *Payment) PaymentPayload {
	return PaymentPayload{
		ID:               p.ID,
		Amount:           p.Amount,
		PaymentDateUTC:   p.PaymentDateUTC,
		RequestedDateUTC: p.RequestedDateUTC,
		ProcessedDateUTC: p.ProcessedDateUTC,
		Status:           p.Status,
		Comment:          p.Comment,
		CustomerID:       p.CustomerID,
		ApproverID:       p.ApproverID,
	}
}
