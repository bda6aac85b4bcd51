package services

import (
	"context"
	"testing"

	"chatconnect_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserServiceCreateAndGet(t *testing.T) {
	us := NewUserService()
	ctx := context.Background()

	require.NoError(t, us.Create(ctx, models.User{ID: "u1", Location: "mumbai"}))

	user, err := us.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "mumbai", user.Location)
	assert.Equal(t, 0, user.MatchCount)
}

func TestUserServiceDuplicateCreate(t *testing.T) {
	us := NewUserService()
	ctx := context.Background()

	require.NoError(t, us.Create(ctx, models.User{ID: "u1", Location: "delhi"}))
	err := us.Create(ctx, models.User{ID: "u1", Location: "mumbai"})
	assert.ErrorIs(t, err, ErrDuplicateUser)

	// the original record is untouched
	user, err := us.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "delhi", user.Location)
}

func TestUserServiceGetMissing(t *testing.T) {
	us := NewUserService()

	_, err := us.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserServiceIncrementMatchCount(t *testing.T) {
	us := NewUserService()
	ctx := context.Background()

	require.NoError(t, us.Create(ctx, models.User{ID: "u1", Location: "chennai"}))

	for want := 1; want <= 3; want++ {
		got, err := us.IncrementMatchCount(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := us.IncrementMatchCount(ctx, "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
