package customers

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Customer carries the ledger balance. Customers hold no payment references;
// a customer can accrue a massive number of payments over their lifetime, so
// payments are always fetched through queries by customer ID.
type Customer struct {
	ID             uuid.UUID
	Surname        string
	GivenNames     string
	Email          string
	CurrentBalance decimal.Decimal
	// Soft-delete to prevent orphan payments.
	IsDeleted bool
}

// Deleted reports the soft-delete flag.
func (c *Customer) Deleted() bool { return c.IsDeleted }
