package identity

import (
	"context"
	"sync"
	"time"

	"courtside/internal/domain/entity"
	"courtside/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const memorySessionTTL = time.Hour

// MemoryProvider is an in-process identity provider for development and
// tests. Codes are pre-registered against identities; exchanging a code
// mints a signed session through the token service.
type MemoryProvider struct {
	tokens   service.TokenService
	registry *handlerRegistry

	mu      sync.Mutex
	codes   map[string]entity.Identity
	current *entity.Session
	err     error
}

// NewMemoryProvider creates an empty in-memory identity provider.
func NewMemoryProvider(tokens service.TokenService) *MemoryProvider {
	return &MemoryProvider{
		tokens:   tokens,
		registry: newHandlerRegistry(),
		codes:    make(map[string]entity.Identity),
	}
}

// RegisterCode makes a one-time exchange code resolve to an identity.
func (p *MemoryProvider) RegisterCode(code string, identity entity.Identity) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.codes[code] = identity
}

// FailWith makes every subsequent provider call fail, simulating outage.
func (p *MemoryProvider) FailWith(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.err = err
}

// GetSession returns the current session, or nil when signed out.
func (p *MemoryProvider) GetSession(ctx context.Context) (*entity.Session, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.err != nil {
		return nil, p.err
	}

	if p.current != nil && p.current.Expired(time.Now()) {
		p.current = nil
	}

	return p.current, nil
}

// OnChange registers a handler for auth state changes.
func (p *MemoryProvider) OnChange(handler service.SessionHandler) (service.Subscription, error) {
	return p.registry.add(handler), nil
}

// ExchangeCode trades a pre-registered code for a fresh session.
func (p *MemoryProvider) ExchangeCode(ctx context.Context, code string) (*entity.Session, error) {
	p.mu.Lock()
	if p.err != nil {
		err := p.err
		p.mu.Unlock()

		return nil, err
	}

	identity, ok := p.codes[code]
	if !ok {
		p.mu.Unlock()

		return nil, errors.New("invalid authorization code")
	}
	delete(p.codes, code)
	p.mu.Unlock()

	token, err := p.tokens.Generate(identity.UserID, identity.Email, memorySessionTTL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to mint session token")
	}

	session := &entity.Session{
		AccessToken:  token,
		RefreshToken: uuid.NewString(),
		ExpiresAt:    time.Now().Add(memorySessionTTL),
		Identity:     identity,
	}

	p.mu.Lock()
	p.current = session
	p.mu.Unlock()

	p.registry.notify(session)

	return session, nil
}

// UpdatePassword succeeds whenever a session is active.
func (p *MemoryProvider) UpdatePassword(ctx context.Context, newPassword string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.err != nil {
		return p.err
	}

	if p.current == nil {
		return errors.New("no active session")
	}

	return nil
}

// SignOut destroys the current session and notifies change handlers.
func (p *MemoryProvider) SignOut(ctx context.Context) error {
	p.mu.Lock()
	p.current = nil
	p.mu.Unlock()

	p.registry.notify(nil)

	return nil
}
