package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisStore(rdb), mr
}

func TestCreateAndGet(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	token, err := store.Create(ctx, Data{
		UserID:   "u-1",
		Email:    "anna@example.com",
		Name:     "Anna Tran",
		Remember: true,
	}, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := store.Get(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", got.UserID)
	assert.Equal(t, "anna@example.com", got.Email)
	assert.Equal(t, "Anna Tran", got.Name)
	assert.True(t, got.Remember)
	assert.False(t, got.CreatedAt.IsZero())

	ttl := mr.TTL("session:" + token)
	assert.Equal(t, time.Hour, ttl)
}

func TestGetUnknownToken(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Get(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.Get(context.Background(), "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTokensAreUnique(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		token, err := store.Create(ctx, Data{UserID: "u"}, time.Minute)
		require.NoError(t, err)
		require.False(t, seen[token], "duplicate token issued")
		seen[token] = true
	}
}

func TestDestroy(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	token, err := store.Create(ctx, Data{UserID: "u-1"}, time.Hour)
	require.NoError(t, err)

	require.NoError(t, store.Destroy(ctx, token))

	_, err = store.Get(ctx, token)
	assert.ErrorIs(t, err, ErrNotFound)

	// Destroying again or destroying nothing is not an error.
	assert.NoError(t, store.Destroy(ctx, token))
	assert.NoError(t, store.Destroy(ctx, ""))
}

func TestExtend(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	token, err := store.Create(ctx, Data{UserID: "u-1"}, time.Hour)
	require.NoError(t, err)

	// Two weeks, the remember-me horizon.
	require.NoError(t, store.Extend(ctx, token, 1209600*time.Second))
	assert.Equal(t, 1209600*time.Second, mr.TTL("session:"+token))

	assert.ErrorIs(t, store.Extend(ctx, "missing", time.Hour), ErrNotFound)
}

func TestSessionExpires(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	token, err := store.Create(ctx, Data{UserID: "u-1"}, time.Minute)
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = store.Get(ctx, token)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFlashesPopOnce(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	token := "flash-token"

	require.NoError(t, store.AddFlash(ctx, token, Flash{Level: "success", Message: "Profile updated successfully!"}))
	require.NoError(t, store.AddFlash(ctx, token, Flash{Level: "error", Message: "Avatar upload failed. Please try again."}))

	flashes, err := store.PopFlashes(ctx, token)
	require.NoError(t, err)
	require.Len(t, flashes, 2)
	assert.Equal(t, Flash{Level: "success", Message: "Profile updated successfully!"}, flashes[0])
	assert.Equal(t, Flash{Level: "error", Message: "Avatar upload failed. Please try again."}, flashes[1])

	// Second pop returns nothing.
	flashes, err = store.PopFlashes(ctx, token)
	require.NoError(t, err)
	assert.Empty(t, flashes)
}

func TestFlashesSurviveSessionDestroy(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	token, err := store.Create(ctx, Data{UserID: "u-1"}, time.Hour)
	require.NoError(t, err)

	flashToken := "separate-flash-token"
	require.NoError(t, store.AddFlash(ctx, flashToken, Flash{Level: "success", Message: "You have been successfully logged out."}))
	require.NoError(t, store.Destroy(ctx, token))

	flashes, err := store.PopFlashes(ctx, flashToken)
	require.NoError(t, err)
	require.Len(t, flashes, 1)
	assert.Equal(t, "You have been successfully logged out.", flashes[0].Message)
}
