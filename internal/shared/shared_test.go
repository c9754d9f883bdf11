package shared

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type softDeletable struct {
	deleted bool
}

func (s softDeletable) Deleted() bool { return s.deleted }

func TestEnsureMutable(t *testing.T) {
	require.NoError(t, EnsureMutable(softDeletable{}))
	require.ErrorIs(t, EnsureMutable(softDeletable{deleted: true}), ErrRecordDeleted)
}

func TestClampSkipTake(t *testing.T) {
	skip, take := ClampSkipTake(-5, 0)
	require.Equal(t, 0, skip)
	require.Equal(t, DefaultTake, take)

	skip, take = ClampSkipTake(10, 500)
	require.Equal(t, 10, skip)
	require.Equal(t, MaxTake, take)

	skip, take = ClampSkipTake(2, 30)
	require.Equal(t, 2, skip)
	require.Equal(t, 30, take)
}
