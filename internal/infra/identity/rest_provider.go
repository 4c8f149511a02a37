package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"courtside/internal/domain/entity"
	"courtside/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// restProvider talks to a GoTrue-style identity provider over HTTP.
// The current session is held in memory and replaced wholesale on every
// auth event; expired sessions are refreshed lazily on GetSession.
type restProvider struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
	registry   *handlerRegistry

	mu      sync.Mutex
	current *entity.Session
}

// NewRESTProvider creates an identity provider adapter for an HTTP provider.
func NewRESTProvider(endpoint, apiKey string, logger *slog.Logger) service.IdentityProvider {
	return &restProvider{
		endpoint: endpoint,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger:   logger,
		registry: newHandlerRegistry(),
	}
}

// tokenResponse is the provider's session payload.
type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	User         struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

// providerError is the provider's failure payload. Its message is surfaced
// to callers verbatim.
type providerError struct {
	Msg string `json:"msg"`
}

// GetSession returns the current session, refreshing it first when expired.
func (p *restProvider) GetSession(ctx context.Context) (*entity.Session, error) {
	p.mu.Lock()
	current := p.current
	p.mu.Unlock()

	if current == nil {
		return nil, nil
	}

	if !current.Expired(time.Now()) {
		return current, nil
	}

	refreshed, err := p.refresh(ctx, current.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to refresh session")
	}

	p.setSession(refreshed)

	return refreshed, nil
}

// OnChange registers a handler for auth state changes.
func (p *restProvider) OnChange(handler service.SessionHandler) (service.Subscription, error) {
	return p.registry.add(handler), nil
}

// ExchangeCode trades an authorization code for a session.
func (p *restProvider) ExchangeCode(ctx context.Context, code string) (*entity.Session, error) {
	payload := map[string]string{"auth_code": code}

	session, err := p.postToken(ctx, "authorization_code", payload)
	if err != nil {
		return nil, err
	}

	p.setSession(session)

	return session, nil
}

// UpdatePassword sets a new password for the signed-in user.
func (p *restProvider) UpdatePassword(ctx context.Context, newPassword string) error {
	p.mu.Lock()
	current := p.current
	p.mu.Unlock()

	if current == nil {
		return errors.New("no active session")
	}

	body, err := json.Marshal(map[string]string{"password": newPassword})
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, p.endpoint+"/user", bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+current.AccessToken)
	req.Header.Set("apikey", p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "password update request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		// The provider's message is shown to the user verbatim.
		return errors.New(readProviderMessage(resp.Body, resp.StatusCode))
	}

	return nil
}

// SignOut destroys the current session and notifies change handlers.
func (p *restProvider) SignOut(ctx context.Context) error {
	p.mu.Lock()
	current := p.current
	p.current = nil
	p.mu.Unlock()

	if current != nil {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint+"/logout", nil)
		if err == nil {
			req.Header.Set("Authorization", "Bearer "+current.AccessToken)
			req.Header.Set("apikey", p.apiKey)
			if resp, doErr := p.httpClient.Do(req); doErr == nil {
				resp.Body.Close()
			} else {
				p.logger.Warn("Provider logout call failed", "error", doErr)
			}
		}
	}

	p.registry.notify(nil)

	return nil
}

// refresh exchanges a refresh token for a replacement session.
func (p *restProvider) refresh(ctx context.Context, refreshToken string) (*entity.Session, error) {
	payload := map[string]string{"refresh_token": refreshToken}

	return p.postToken(ctx, "refresh_token", payload)
}

// postToken performs the provider's token grant and maps the payload to a session.
func (p *restProvider) postToken(ctx context.Context, grantType string, payload map[string]string) (*entity.Session, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	url := p.endpoint + "/token?grant_type=" + grantType

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "token request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, errors.New(readProviderMessage(resp.Body, resp.StatusCode))
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return nil, errors.Wrap(err, "failed to decode token response")
	}

	userID, err := uuid.Parse(tr.User.ID)
	if err != nil {
		return nil, errors.Wrap(err, "provider returned invalid user id")
	}

	return &entity.Session{
		AccessToken:  tr.AccessToken,
		RefreshToken: tr.RefreshToken,
		ExpiresAt:    time.Now().Add(time.Duration(tr.ExpiresIn) * time.Second),
		Identity: entity.Identity{
			UserID: userID,
			Email:  tr.User.Email,
		},
	}, nil
}

func (p *restProvider) setSession(session *entity.Session) {
	p.mu.Lock()
	p.current = session
	p.mu.Unlock()

	p.registry.notify(session)
}

// readProviderMessage extracts the provider's error message from a failure
// body, falling back to the HTTP status text.
func readProviderMessage(body io.Reader, statusCode int) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err == nil && len(raw) > 0 {
		var pe providerError
		if jsonErr := json.Unmarshal(raw, &pe); jsonErr == nil && pe.Msg != "" {
			return pe.Msg
		}
	}

	return http.StatusText(statusCode)
}
