package store_test

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/skillmarket/skillmarket-api/internal/store"
)

func newTestStore(t *testing.T) (*store.RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mini, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mini.Close)

	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return store.NewRedisStore(client), mini
}

func TestGetSetRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.Get(ctx, "course:1:abc")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.Set(ctx, "course:1:abc", []byte(`{"title":"Go"}`)))

	raw, err := s.Get(ctx, "course:1:abc")
	require.NoError(t, err)
	require.JSONEq(t, `{"title":"Go"}`, string(raw))
}

func TestGetByPrefixReturnsExactlyMatchingKeys(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "course:1:a", []byte(`{"id":"course:1:a"}`)))
	require.NoError(t, s.Set(ctx, "course:2:b", []byte(`{"id":"course:2:b"}`)))
	require.NoError(t, s.Set(ctx, "enrollment:u:c", []byte(`{"id":"enrollment:u:c"}`)))

	values, err := s.GetByPrefix(ctx, "course:")
	require.NoError(t, err)
	require.Len(t, values, 2)

	empty, err := s.GetByPrefix(ctx, "certificate:")
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestMGetAlignsAbsentKeysWithNil(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "comment:1:a", []byte(`{"content":"first"}`)))
	require.NoError(t, s.Set(ctx, "comment:3:c", []byte(`{"content":"third"}`)))

	values, err := s.MGet(ctx, []string{"comment:1:a", "comment:2:b", "comment:3:c"})
	require.NoError(t, err)
	require.Len(t, values, 3)
	require.NotNil(t, values[0])
	require.Nil(t, values[1])
	require.NotNil(t, values[2])

	none, err := s.MGet(ctx, nil)
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestListHelpers(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	ids, err := store.GetList(ctx, s, "lesson:l1:comments")
	require.NoError(t, err)
	require.Empty(t, ids)

	require.NoError(t, store.AppendToList(ctx, s, "lesson:l1:comments", "comment:1:a"))
	require.NoError(t, store.AppendToList(ctx, s, "lesson:l1:comments", "comment:2:b"))

	ids, err = store.GetList(ctx, s, "lesson:l1:comments")
	require.NoError(t, err)
	require.Equal(t, []string{"comment:1:a", "comment:2:b"}, ids)
}
