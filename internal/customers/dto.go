package customers

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerPayload is the wire shape for customer bodies and responses.
type CustomerPayload struct {
	ID             uuid.UUID       `json:"id"`
	Surname        string          `json:"surname" validate:"required"`
	GivenNames     string          `json:"givenNames"`
	Email          string          `json:"email" validate:"omitempty,email"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	IsDeleted      bool            `json:"isDeleted"`
}

// TopUpPayload is the wire shape for balance top-ups.
type TopUpPayload struct {
	CustomerID  uuid.UUID       `json:"customerId" validate:"required"`
	TopUpAmount decimal.Decimal `json:"topUpAmount"`
}

func toPayload(c *Customer) CustomerPayload {
	return CustomerPayload{
		ID:             c.ID,
		Surname:        c.Surname,
		GivenNames:     c.GivenNames,
		Email:          c.Email,
		CurrentBalance: c.CurrentBalance,
		IsDeleted:      c.IsDeleted,
	}
}

func fromPayload(p CustomerPayload) Customer {
	return Customer{
		ID:             p.ID,
		Surname:        p.Surname,
		GivenNames:     p.GivenNames,
		Email:          p.Email,
		CurrentBalance: p.CurrentBalance,
		IsDeleted:      p.IsDeleted,
	}
}
