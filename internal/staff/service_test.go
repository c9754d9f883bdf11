package staff

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/payd-hq/payd/internal/platform/httpx"
	"github.com/payd-hq/payd/internal/shared"
)

type memoryStaffRepo struct {
	members map[uuid.UUID]*Staff
}

func newMemoryStaffRepo() *memoryStaffRepo {
	return &memoryStaffRepo{members: make(map[uuid.UUID]*Staff)}
}

func (m *memoryStaffRepo) Create(_ context.Context, member *Staff) (*Staff, error) {
	cp := *member
	m.members[cp.ID] = &cp
	return &cp, nil
}

func (m *memoryStaffRepo) Get(_ context.Context, id uuid.UUID) (*Staff, error) {
	member, ok := m.members[id]
	if !ok || member.IsDeleted {
		return nil, ErrNotFound
	}
	cp := *member
	return &cp, nil
}

func (m *memoryStaffRepo) List(_ context.Context) ([]Staff, error) {
	out := make([]Staff, 0, len(m.members))
	for _, member := range m.members {
		if member.IsDeleted {
			continue
		}
		out = append(out, *member)
	}
	return out, nil
}

func (m *memoryStaffRepo) Update(_ context.Context, member *Staff) (*Staff, error) {
	stored, ok := m.members[member.ID]
	if !ok {
		return nil, ErrNotFound
	}
	if stored.IsDeleted {
		return nil, shared.ErrRecordDeleted
	}
	cp := *member
	m.members[cp.ID] = &cp
	return &cp, nil
}

func (m *memoryStaffRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	member, ok := m.members[id]
	if !ok || member.IsDeleted {
		return ErrNotFound
	}
	member.IsDeleted = true
	return nil
}

func TestCreateAssignsID(t *testing.T) {
	svc := NewService(newMemoryStaffRepo())

	created, err := svc.Create(context.Background(), Staff{Surname: "Mercer"})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)
}

func TestGetUnknownStaff(t *testing.T) {
	svc := NewService(newMemoryStaffRepo())

	_, err := svc.Get(context.Background(), uuid.New())
	require.ErrorIs(t, err, httpx.ErrNotFound)

	var domainErr *httpx.DomainError
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, "staff_not_found", domainErr.Kind)
}

func TestDeletedStaffReadsAsAbsent(t *testing.T) {
	svc := NewService(newMemoryStaffRepo())

	created, err := svc.Create(context.Background(), Staff{Surname: "Mercer"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err = svc.Get(context.Background(), created.ID)
	require.ErrorIs(t, err, ErrNotFound)

	all, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestUpdateDeletedStaffRejected(t *testing.T) {
	svc := NewService(newMemoryStaffRepo())

	created, err := svc.Create(context.Background(), Staff{Surname: "Mercer"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err = svc.Update(context.Background(), Staff{ID: created.ID, Surname: "Changed"})
	require.ErrorIs(t, err, shared.ErrRecordDeleted)
}
