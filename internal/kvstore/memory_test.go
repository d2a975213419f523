package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	_, err := s.Get(ctx, KeyOrders)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, KeyOrders, []byte(`[]`)))
	b, err := s.Get(ctx, KeyOrders)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), b)

	require.NoError(t, s.Delete(ctx, KeyOrders))
	_, err = s.Get(ctx, KeyOrders)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	require.NoError(t, s.Set(ctx, KeyCart, []byte(`abc`)))

	b, err := s.Get(ctx, KeyCart)
	require.NoError(t, err)
	b[0] = 'x'

	again, err := s.Get(ctx, KeyCart)
	require.NoError(t, err)
	assert.Equal(t, []byte(`abc`), again)
}
