package customers

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/payd-hq/payd/internal/platform/httpx"
	"github.com/payd-hq/payd/internal/shared"
)

type memoryCustomerRepo struct {
	customers map[uuid.UUID]*Customer
}

func newMemoryCustomerRepo() *memoryCustomerRepo {
	return &memoryCustomerRepo{customers: make(map[uuid.UUID]*Customer)}
}

func (m *memoryCustomerRepo) Create(_ context.Context, customer *Customer) (*Customer, error) {
	cp := *customer
	m.customers[cp.ID] = &cp
	return &cp, nil
}

func (m *memoryCustomerRepo) Get(_ context.Context, id uuid.UUID) (*Customer, error) {
	c, ok := m.customers[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *memoryCustomerRepo) List(_ context.Context) ([]Customer, error) {
	out := make([]Customer, 0, len(m.customers))
	for _, c := range m.customers {
		out = append(out, *c)
	}
	return out, nil
}

func (m *memoryCustomerRepo) Update(_ context.Context, customer *Customer) (*Customer, error) {
	stored, ok := m.customers[customer.ID]
	if !ok {
		return nil, ErrNotFound
	}
	if stored.IsDeleted {
		return nil, shared.ErrRecordDeleted
	}
	cp := *customer
	cp.IsDeleted = stored.IsDeleted
	m.customers[cp.ID] = &cp
	return &cp, nil
}

func (m *memoryCustomerRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	c, ok := m.customers[id]
	if !ok {
		return ErrNotFound
	}
	c.IsDeleted = true
	return nil
}

func (m *memoryCustomerRepo) AdjustBalance(_ context.Context, id uuid.UUID, delta decimal.Decimal) error {
	c, ok := m.customers[id]
	if !ok {
		return ErrNotFound
	}
	if c.IsDeleted {
		return shared.ErrRecordDeleted
	}
	c.CurrentBalance = c.CurrentBalance.Add(delta)
	return nil
}

func TestCreateAssignsID(t *testing.T) {
	svc := NewService(newMemoryCustomerRepo())

	created, err := svc.Create(context.Background(), Customer{Surname: "Carter"})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, "Carter", got.Surname)
}

func TestGetUnknownCustomer(t *testing.T) {
	svc := NewService(newMemoryCustomerRepo())

	_, err := svc.Get(context.Background(), uuid.New())
	require.ErrorIs(t, err, httpx.ErrNotFound)

	var domainErr *httpx.DomainError
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, "customer_not_found", domainErr.Kind)
}

func TestGetReturnsDeletedCustomer(t *testing.T) {
	repo := newMemoryCustomerRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), Customer{Surname: "Ngata"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(context.Background(), created.ID))

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	require.True(t, got.IsDeleted)
}

func TestUpdateDeletedCustomerRejected(t *testing.T) {
	svc := NewService(newMemoryCustomerRepo())

	created, err := svc.Create(context.Background(), Customer{Surname: "Okafor"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err = svc.Update(context.Background(), Customer{ID: created.ID, Surname: "Changed"})
	require.ErrorIs(t, err, shared.ErrRecordDeleted)
	require.True(t, errors.Is(err, httpx.ErrConflict))
}

func TestTopUp(t *testing.T) {
	svc := NewService(newMemoryCustomerRepo())

	created, err := svc.Create(context.Background(), Customer{
		Surname:        "Silva",
		CurrentBalance: decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	require.NoError(t, svc.TopUp(context.Background(), created.ID, decimal.NewFromInt(50)))

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	require.True(t, got.CurrentBalance.Equal(decimal.NewFromInt(150)))
}

func TestTopUpRejectsNonPositiveAmount(t *testing.T) {
	svc := NewService(newMemoryCustomerRepo())

	created, err := svc.Create(context.Background(), Customer{Surname: "Silva"})
	require.NoError(t, err)

	err = svc.TopUp(context.Background(), created.ID, decimal.Zero)
	require.ErrorIs(t, err, shared.ErrInvalidAmount)

	err = svc.TopUp(context.Background(), created.ID, decimal.NewFromInt(-5))
	require.ErrorIs(t, err, shared.ErrInvalidAmount)
}

func TestTopUpDeletedCustomerRejected(t *testing.T) {
	svc := NewService(newMemoryCustomerRepo())

	created, err := svc.Create(context.Background(), Customer{Surname: "Silva"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(context.Background(), created.ID))

	err = svc.TopUp(context.Background(), created.ID, decimal.NewFromInt(10))
	require.ErrorIs(t, err, shared.ErrRecordDeleted)
}
