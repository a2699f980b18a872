package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accountd-dev/accountd/internal/models"
	"github.com/accountd-dev/accountd/internal/server/storage"
)

func newUser(email string) *models.User {
	return &models.User{
		ID:           uuid.New().String(),
		Username:     "testuser",
		FirstName:    "Test",
		LastName:     "User",
		Email:        email,
		PasswordHash: "hash",
		Role:         models.RoleForEmail(email),
		CreatedAt:    time.Now().UTC(),
	}
}

func TestMemory_CreateUser_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.NoError(t, s.CreateUser(ctx, newUser("a@x.com")))
	assert.ErrorIs(t, s.CreateUser(ctx, newUser("a@x.com")), storage.ErrEmailTaken)
}

func TestMemory_CreateUser_ConcurrentDuplicates(t *testing.T) {
	ctx := context.Background()
	s := New()

	const attempts = 32

	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := range attempts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = s.CreateUser(ctx, newUser("race@x.com"))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, storage.ErrEmailTaken)
		}
	}
	assert.Equal(t, 1, succeeded)
}

func TestMemory_GetUserByEmail(t *testing.T) {
	ctx := context.Background()
	s := New()

	user := newUser("find@x.com")
	require.NoError(t, s.CreateUser(ctx, user))

	got, err := s.GetUserByEmail(ctx, "find@x.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = s.GetUserByEmail(ctx, "missing@x.com")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestMemory_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := New()

	user := newUser("copy@x.com")
	require.NoError(t, s.CreateUser(ctx, user))

	got, err := s.GetUserByEmail(ctx, "copy@x.com")
	require.NoError(t, err)
	got.Email = "mutated@x.com"

	again, err := s.GetUserByEmail(ctx, "copy@x.com")
	require.NoError(t, err)
	assert.Equal(t, "copy@x.com", again.Email)
}

func TestMemory_ListUsers_Ordered(t *testing.T) {
	ctx := context.Background()
	s := New()

	first := newUser("first@x.com")
	first.CreatedAt = time.Now().Add(-time.Hour)
	second := newUser("second@x.com")

	require.NoError(t, s.CreateUser(ctx, second))
	require.NoError(t, s.CreateUser(ctx, first))

	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "first@x.com", users[0].Email)
	assert.Equal(t, "second@x.com", users[1].Email)
}

func TestMemory_Sessions(t *testing.T) {
	ctx := context.Background()
	s := New()

	now := time.Now().UTC()
	session := &models.Session{
		ID:        uuid.New().String(),
		UserID:    "user1",
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}

	require.NoError(t, s.CreateSession(ctx, session))

	got, err := s.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, "user1", got.UserID)

	require.NoError(t, s.DeleteSession(ctx, session.ID))
	_, err = s.GetSession(ctx, session.ID)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
	assert.ErrorIs(t, s.DeleteSession(ctx, session.ID), storage.ErrSessionNotFound)
}

func TestMemory_DeleteUserSessions(t *testing.T) {
	ctx := context.Background()
	s := New()

	now := time.Now().UTC()
	for range 3 {
		require.NoError(t, s.CreateSession(ctx, &models.Session{
			ID: uuid.New().String(), UserID: "u1", CreatedAt: now, ExpiresAt: now.Add(time.Hour),
		}))
	}
	require.NoError(t, s.CreateSession(ctx, &models.Session{
		ID: uuid.New().String(), UserID: "u2", CreatedAt: now, ExpiresAt: now.Add(time.Hour),
	}))

	count, err := s.DeleteUserSessions(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	left, err := s.GetUserSessions(ctx, "u2")
	require.NoError(t, err)
	assert.Len(t, left, 1)
}

func TestMemory_DeleteExpiredSessions(t *testing.T) {
	ctx := context.Background()
	s := New()

	now := time.Now().UTC()
	require.NoError(t, s.CreateSession(ctx, &models.Session{
		ID: "expired", UserID: "u1", CreatedAt: now.Add(-2 * time.Hour), ExpiresAt: now.Add(-time.Hour),
	}))
	require.NoError(t, s.CreateSession(ctx, &models.Session{
		ID: "active", UserID: "u1", CreatedAt: now, ExpiresAt: now.Add(time.Hour),
	}))

	count, err := s.DeleteExpiredSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = s.GetSession(ctx, "active")
	assert.NoError(t, err)
}
