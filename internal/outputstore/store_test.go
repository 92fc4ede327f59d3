package outputstore

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	_, found, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	created := time.Unix(1700000000, 0)
	in := Entry{Data: []byte("%PDF-1.7 ..."), PageCount: 3, Filename: "merged.pdf", CreatedAt: created}
	require.NoError(t, s.Put(ctx, "k1", in))

	out, found, err := s.Get(ctx, "k1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, in.Data, out.Data)
	assert.Equal(t, 3, out.PageCount)
	assert.Equal(t, "merged.pdf", out.Filename)
	assert.True(t, created.Equal(out.CreatedAt))

	// Put replaces.
	require.NoError(t, s.Put(ctx, "k1", Entry{Data: []byte("second"), PageCount: 1}))
	out, _, err = s.Get(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), out.Data)

	require.NoError(t, s.Delete(ctx, "k1"))
	_, found, err = s.Get(ctx, "k1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemory(0))
}

func TestMemoryStoreExpiry(t *testing.T) {
	m := NewMemory(time.Minute)
	now := time.Now()
	m.now = func() time.Time { return now }

	require.NoError(t, m.Put(context.Background(), "k", Entry{Data: []byte("x")}))
	_, found, _ := m.Get(context.Background(), "k")
	assert.True(t, found)

	now = now.Add(2 * time.Minute)
	_, found, _ = m.Get(context.Background(), "k")
	assert.False(t, found)
}

func TestNew(t *testing.T) {
	s, err := New(Conf{})
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, s)

	_, err = New(Conf{Type: "redis"})
	assert.ErrorContains(t, err, "address is required")

	_, err = New(Conf{Type: "s3"})
	assert.ErrorContains(t, err, "unknown store type")
}

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("NUPMERGE_REDIS_ADDR")
	if addr == "" {
		t.Skip("NUPMERGE_REDIS_ADDR not set")
	}
	r, err := NewRedis(Conf{Addr: addr, TTL: time.Minute, Prefix: "nupmerge:test:"})
	require.NoError(t, err)
	defer r.Close()
	require.NoError(t, r.Ping(context.Background()))

	exerciseStore(t, r)
}
