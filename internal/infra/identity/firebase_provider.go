package identity

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"courtside/internal/domain/entity"
	"courtside/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// firebaseProvider adapts Firebase Auth to the IdentityProvider contract.
// Credential exchange accepts a Firebase ID token as the code; password
// updates go through the admin SDK.
type firebaseProvider struct {
	auth     *fbauth.Client
	logger   *slog.Logger
	registry *handlerRegistry

	mu      sync.Mutex
	current *entity.Session
}

// NewFirebaseProvider creates an identity provider adapter backed by Firebase Auth.
func NewFirebaseProvider(ctx context.Context, projectID, credentialsPath string, logger *slog.Logger) (service.IdentityProvider, error) {
	opt := option.WithCredentialsFile(credentialsPath)

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firebase auth client")
	}

	return &firebaseProvider{
		auth:     client,
		logger:   logger,
		registry: newHandlerRegistry(),
	}, nil
}

// GetSession returns the current session. Expired or unverifiable sessions
// count as signed out; the admin SDK cannot refresh client tokens.
func (p *firebaseProvider) GetSession(ctx context.Context) (*entity.Session, error) {
	p.mu.Lock()
	current := p.current
	p.mu.Unlock()

	if current == nil {
		return nil, nil
	}

	if current.Expired(time.Now()) {
		p.mu.Lock()
		p.current = nil
		p.mu.Unlock()

		return nil, nil
	}

	if _, err := p.auth.VerifyIDToken(ctx, current.AccessToken); err != nil {
		return nil, errors.Wrap(err, "failed to verify session token")
	}

	return current, nil
}

// OnChange registers a handler for auth state changes.
func (p *firebaseProvider) OnChange(handler service.SessionHandler) (service.Subscription, error) {
	return p.registry.add(handler), nil
}

// ExchangeCode verifies a Firebase ID token and installs it as the session.
func (p *firebaseProvider) ExchangeCode(ctx context.Context, code string) (*entity.Session, error) {
	decoded, err := p.auth.VerifyIDToken(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify id token")
	}

	record, err := p.auth.GetUser(ctx, decoded.UID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up user")
	}

	userID, err := uuid.Parse(decoded.UID)
	if err != nil {
		// Firebase UIDs are not always UUIDs; derive a stable one when needed.
		userID = uuid.NewSHA1(uuid.NameSpaceOID, []byte(decoded.UID))
	}

	session := &entity.Session{
		AccessToken: code,
		ExpiresAt:   time.Unix(decoded.Expires, 0),
		Identity: entity.Identity{
			UserID: userID,
			Email:  record.Email,
		},
	}

	p.mu.Lock()
	p.current = session
	p.mu.Unlock()

	p.registry.notify(session)

	return session, nil
}

// UpdatePassword sets a new password for the signed-in user via the admin SDK.
func (p *firebaseProvider) UpdatePassword(ctx context.Context, newPassword string) error {
	p.mu.Lock()
	current := p.current
	p.mu.Unlock()

	if current == nil {
		return errors.New("no active session")
	}

	decoded, err := p.auth.VerifyIDToken(ctx, current.AccessToken)
	if err != nil {
		return errors.Wrap(err, "failed to verify session token")
	}

	update := (&fbauth.UserToUpdate{}).Password(newPassword)
	if _, err := p.auth.UpdateUser(ctx, decoded.UID, update); err != nil {
		// The admin SDK message is what the user sees.
		return err
	}

	return nil
}

// SignOut destroys the current session and notifies change handlers.
func (p *firebaseProvider) SignOut(ctx context.Context) error {
	p.mu.Lock()
	p.current = nil
	p.mu.Unlock()

	p.registry.notify(nil)

	return nil
}
