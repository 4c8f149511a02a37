package identity

import (
	"context"
	"testing"
	"time"

	"courtside/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticTokenService struct{}

func (staticTokenService) Generate(uuid.UUID, string, time.Duration) (string, error) {
	return "signed-token", nil
}

func (staticTokenService) Validate(string) (*jwt.Token, error) { return nil, nil }

func (staticTokenService) IdentityFromToken(*jwt.Token) (uuid.UUID, string, error) {
	return uuid.Nil, "", nil
}

func TestMemoryProvider_ExchangeCode(t *testing.T) {
	provider := NewMemoryProvider(staticTokenService{})
	identity := entity.Identity{UserID: uuid.New(), Email: "player@example.com"}
	provider.RegisterCode("code-1", identity)

	var observed []*entity.Session
	_, err := provider.OnChange(func(session *entity.Session) {
		observed = append(observed, session)
	})
	require.NoError(t, err)

	session, err := provider.ExchangeCode(context.Background(), "code-1")
	require.NoError(t, err)
	assert.Equal(t, identity, session.Identity)
	assert.Equal(t, "signed-token", session.AccessToken)
	require.Len(t, observed, 1)
	assert.Equal(t, session, observed[0])

	// Codes are single use.
	_, err = provider.ExchangeCode(context.Background(), "code-1")
	assert.Error(t, err)
}

func TestMemoryProvider_GetSessionAfterSignOut(t *testing.T) {
	provider := NewMemoryProvider(staticTokenService{})
	provider.RegisterCode("code-1", entity.Identity{UserID: uuid.New()})

	_, err := provider.ExchangeCode(context.Background(), "code-1")
	require.NoError(t, err)

	session, err := provider.GetSession(context.Background())
	require.NoError(t, err)
	require.NotNil(t, session)

	require.NoError(t, provider.SignOut(context.Background()))

	session, err = provider.GetSession(context.Background())
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestMemoryProvider_FailWith(t *testing.T) {
	provider := NewMemoryProvider(staticTokenService{})
	provider.FailWith(errors.New("provider down"))

	_, err := provider.GetSession(context.Background())
	assert.Error(t, err)

	_, err = provider.ExchangeCode(context.Background(), "any")
	assert.Error(t, err)
}

func TestMemoryProvider_SubscriptionLifecycle(t *testing.T) {
	provider := NewMemoryProvider(staticTokenService{})

	sub, err := provider.OnChange(func(*entity.Session) {})
	require.NoError(t, err)
	assert.False(t, sub.Closed())

	require.NoError(t, sub.Unsubscribe())
	assert.True(t, sub.Closed())

	// Unsubscribe is idempotent.
	assert.NoError(t, sub.Unsubscribe())
}
