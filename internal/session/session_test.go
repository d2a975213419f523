package session

import (
	"context"
	"testing"

	"github.com/ariefcatur/go-shopfront.git/internal/kvstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_GuestByDefault(t *testing.T) {
	s := New(context.Background(), "sid-1", kvstore.NewMemory(), nil, "test")
	assert.Nil(t, s.User())
}

func TestSession_SignInPersistsAndRehydrates(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemory()

	s := New(ctx, "sid-1", kv, nil, "test")
	u := s.SignIn(ctx, "Budi Santoso", "budi@example.com")
	assert.Equal(t, "budi@example.com", u.Email)
	require.NotNil(t, s.User())

	// "proses baru": sesi baru di atas store yang sama
	again := New(ctx, "sid-1", kv, nil, "test")
	require.NotNil(t, again.User())
	assert.Equal(t, "Budi Santoso", again.User().Name)
}

func TestSession_SignOutResetsToGuest(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemory()

	s := New(ctx, "sid-1", kv, nil, "test")
	s.SignIn(ctx, "Budi", "budi@example.com")
	s.SignOut(ctx)
	assert.Nil(t, s.User())

	// record-nya ikut hilang, bukan cuma state memory
	_, err := kv.Get(ctx, kvstore.KeyUser)
	assert.ErrorIs(t, err, kvstore.ErrNotFound)
}

func TestSession_MalformedUserRecordMeansGuest(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemory()
	require.NoError(t, kv.Set(ctx, kvstore.KeyUser, []byte("{rusak")))

	s := New(ctx, "sid-1", kv, nil, "test")
	assert.Nil(t, s.User())
}

func TestSession_SignOutKeepsCart(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemory()
	require.NoError(t, kv.Set(ctx, kvstore.KeyCart, []byte(`[{"id":1,"name":"Polo","price":50,"quantity":2}]`)))

	s := New(ctx, "sid-1", kv, nil, "test")
	require.Equal(t, 1, s.Cart.LineCount())

	s.SignIn(ctx, "Budi", "budi@example.com")
	s.SignOut(ctx)

	// logout tidak mengosongkan belanjaan
	assert.Equal(t, 1, s.Cart.LineCount())
}

func TestManager_ReturnsSameSessionForSameSID(t *testing.T) {
	ctx := context.Background()
	m := NewManager(func(string) kvstore.Store { return kvstore.NewMemory() }, nil, "test")

	a := m.Get(ctx, "sid-1")
	b := m.Get(ctx, "sid-1")
	other := m.Get(ctx, "sid-2")

	assert.Same(t, a, b)
	assert.NotSame(t, a, other)
}

func TestManager_DropForcesRehydrate(t *testing.T) {
	ctx := context.Background()
	stores := map[string]kvstore.Store{}
	m := NewManager(func(sid string) kvstore.Store {
		if s, ok := stores[sid]; ok {
			return s
		}
		s := kvstore.NewMemory()
		stores[sid] = s
		return s
	}, nil, "test")

	a := m.Get(ctx, "sid-1")
	a.SignIn(ctx, "Budi", "budi@example.com")

	m.Drop("sid-1")
	b := m.Get(ctx, "sid-1")

	assert.NotSame(t, a, b)
	// record persist tetap ada, jadi hasil hydrate tetap signed-in
	require.NotNil(t, b.User())
	assert.Equal(t, "budi@example.com", b.User().Email)
}
