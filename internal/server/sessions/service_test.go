package sessions

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accountd-dev/accountd/internal/models"
	"github.com/accountd-dev/accountd/internal/server/storage/memory"
	"github.com/accountd-dev/accountd/internal/server/users"
	"github.com/accountd-dev/accountd/internal/validation"
)

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testTokenConfig() TokenConfig {
	return TokenConfig{
		Secret: []byte("test-secret"),
		TTL:    time.Hour,
	}
}

// setupServices builds a registry and a session manager over one fresh
// in-memory store.
func setupServices(t *testing.T) (*users.Service, *Service, *memory.Storage) {
	t.Helper()

	store := memory.New()
	registry := users.NewService(setupTestLogger(), store)
	svc := NewService(setupTestLogger(), registry, store, testTokenConfig())
	return registry, svc, store
}

func registerUser(t *testing.T, registry *users.Service, email, password string) *models.User {
	t.Helper()

	user, err := registry.Register(context.Background(), validation.Registration{
		Username:  "testuser",
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Password:  password,
	})
	require.NoError(t, err)
	return user
}

func TestService_Login_Success(t *testing.T) {
	ctx := context.Background()
	registry, svc, _ := setupServices(t)
	user := registerUser(t, registry, "a@x.com", "p")

	token, expiresIn, err := svc.Login(ctx, "a@x.com", "p")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, int64(3600), expiresIn)

	identity, err := svc.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, identity.UserID)
	assert.Equal(t, "a@x.com", identity.Email)
	assert.Equal(t, models.RoleStandard, identity.Role)
	assert.Equal(t, user.ID, identity.User.ID)
}

func TestService_Login_UnknownEmailAndWrongPasswordIndistinguishable(t *testing.T) {
	ctx := context.Background()
	registry, svc, _ := setupServices(t)
	registerUser(t, registry, "a@x.com", "p")

	_, _, errUnknown := svc.Login(ctx, "nobody@x.com", "p")
	_, _, errWrong := svc.Login(ctx, "a@x.com", "wrong")

	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrong, ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrong.Error())
}

func TestService_Login_EachLoginGetsOwnSession(t *testing.T) {
	ctx := context.Background()
	registry, svc, _ := setupServices(t)
	registerUser(t, registry, "a@x.com", "p")

	token1, _, err := svc.Login(ctx, "a@x.com", "p")
	require.NoError(t, err)
	token2, _, err := svc.Login(ctx, "a@x.com", "p")
	require.NoError(t, err)

	assert.NotEqual(t, token1, token2)

	// Revoking one leaves the other usable
	require.NoError(t, svc.Logout(ctx, token1))

	_, err = svc.Resolve(ctx, token1)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = svc.Resolve(ctx, token2)
	assert.NoError(t, err)
}

func TestService_Resolve_MissingOrGarbageToken(t *testing.T) {
	ctx := context.Background()
	_, svc, _ := setupServices(t)

	_, err := svc.Resolve(ctx, "")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = svc.Resolve(ctx, "not-a-token")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestService_Resolve_ForgedToken(t *testing.T) {
	ctx := context.Background()
	registry, svc, _ := setupServices(t)
	registerUser(t, registry, "a@x.com", "p")

	// A token signed with a different secret never resolves
	otherCfg := TokenConfig{Secret: []byte("other-secret"), TTL: time.Hour}
	now := time.Now().UTC()
	forged, err := signToken(otherCfg, "some-session", "some-user", now, now.Add(time.Hour))
	require.NoError(t, err)

	_, err = svc.Resolve(ctx, forged)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestService_Resolve_ValidSignatureButNoSessionRow(t *testing.T) {
	ctx := context.Background()
	_, svc, _ := setupServices(t)

	// Correct secret, but the session id was never issued
	now := time.Now().UTC()
	token, err := signToken(testTokenConfig(), "never-issued", "some-user", now, now.Add(time.Hour))
	require.NoError(t, err)

	_, err = svc.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestService_Logout_RevocationIsPermanent(t *testing.T) {
	ctx := context.Background()
	registry, svc, _ := setupServices(t)
	registerUser(t, registry, "a@x.com", "p")

	token, _, err := svc.Login(ctx, "a@x.com", "p")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, token))

	_, err = svc.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	// Logging out again is a no-op, and the token stays dead
	require.NoError(t, svc.Logout(ctx, token))
	_, err = svc.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestService_Logout_UnknownTokenIsNotAnError(t *testing.T) {
	ctx := context.Background()
	_, svc, _ := setupServices(t)

	assert.NoError(t, svc.Logout(ctx, "garbage"))
	assert.NoError(t, svc.Logout(ctx, ""))
}

func TestService_Resolve_ExpiredSession(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	registry := users.NewService(setupTestLogger(), store)

	cfg := TokenConfig{Secret: []byte("test-secret"), TTL: -time.Minute}
	svc := NewService(setupTestLogger(), registry, store, cfg)
	registerUser(t, registry, "a@x.com", "p")

	// With a negative TTL the session is born expired; the JWT itself is
	// also past its exp claim, either path must end in ErrUnauthenticated.
	token, _, err := svc.Login(ctx, "a@x.com", "p")
	require.NoError(t, err)

	_, err = svc.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestService_PurgeExpired(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	registry := users.NewService(setupTestLogger(), store)

	cfg := TokenConfig{Secret: []byte("test-secret"), TTL: -time.Minute}
	svc := NewService(setupTestLogger(), registry, store, cfg)
	registerUser(t, registry, "a@x.com", "p")

	_, _, err := svc.Login(ctx, "a@x.com", "p")
	require.NoError(t, err)

	count, err := svc.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
