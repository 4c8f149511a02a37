// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"sync"

	"courtside/internal/domain/entity"
	"courtside/internal/domain/navigation"
	"courtside/internal/usecase"
)

// settlement is the guard's snapshot of its last settled decision. The
// fingerprint captures every input the decision depended on; a redirect is
// re-issued only when the fingerprint changes.
type settlement struct {
	state       usecase.GuardState
	fingerprint string
	redirected  bool
}

// navigationService implements the NavigationUsecase interface.
type navigationService struct {
	profiles usecase.ProfileUsecase
	sessions usecase.SessionUsecase
	logger   *slog.Logger

	mu              sync.Mutex
	appReady        bool
	sessionResolved bool
	session         *entity.Session
	path            string
	settled         settlement
}

// NewNavigationService is the constructor for navigationService. It hooks
// itself into the session source so every auth event counts as a session
// resolution.
func NewNavigationService(
	profiles usecase.ProfileUsecase,
	sessions usecase.SessionUsecase,
	logger *slog.Logger,
) (usecase.NavigationUsecase, error) {
	srv := &navigationService{
		profiles: profiles,
		sessions: sessions,
		logger:   logger,
		path:     navigation.PathRoot,
	}

	if _, err := sessions.Watch(srv.OnSessionResolved); err != nil {
		return nil, err
	}

	return srv, nil
}

// OnAppReady marks splash/init as finished.
func (srv *navigationService) OnAppReady() {
	srv.mu.Lock()
	srv.appReady = true
	srv.mu.Unlock()
}

// OnSessionResolved feeds a definitive session resolution. nil means signed out.
func (srv *navigationService) OnSessionResolved(session *entity.Session) {
	srv.mu.Lock()
	srv.session = session
	srv.sessionResolved = true
	srv.mu.Unlock()
}

// OnLocationChanged records the client's current path.
func (srv *navigationService) OnLocationChanged(path string) {
	if path == "" {
		return
	}

	srv.mu.Lock()
	srv.path = path
	srv.mu.Unlock()
}

// Evaluate settles the guard for the given path.
//
// The decision is computed from a consistent snapshot of (session, profile
// completeness, path); the profile lookup happens outside the lock since it
// is a suspension point. The redirect latch is applied at commit time, so
// concurrent evaluations of the same inputs issue at most one redirect.
func (srv *navigationService) Evaluate(ctx context.Context, path string) (*usecase.Decision, error) {
	srv.mu.Lock()
	if path != "" {
		srv.path = path
	} else {
		path = srv.path
	}
	appReady := srv.appReady
	sessionResolved := srv.sessionResolved
	session := srv.session
	srv.mu.Unlock()

	// Defer rather than defaulting to unauthenticated: the inputs are not
	// complete yet, so no decision can be final.
	if !appReady || !sessionResolved {
		return &usecase.Decision{State: usecase.GuardStateUnknown}, nil
	}

	if session == nil {
		decision := srv.commit(
			usecase.GuardStateUnauthenticated,
			fmt.Sprintf("unauthenticated|%s", path),
			!navigation.InAuthArea(path),
			navigation.PathAuth,
		)

		return decision, nil
	}

	status, err := srv.profiles.CheckCompletion(ctx, session.Identity.UserID)
	if err != nil {
		// Hold the last settled state instead of flapping on a transient
		// lookup failure.
		srv.logger.Warn("Profile lookup failed, holding settled state",
			"userID", session.Identity.UserID, "error", err)

		return srv.lastSettled(), nil
	}

	// The hosting evaluation may have been cancelled while the lookup was
	// in flight; a stale result must not be applied.
	if ctx.Err() != nil {
		return srv.lastSettled(), nil
	}

	if !status.Exists || !status.NamePresent {
		target := fmt.Sprintf("%s?%s=%s",
			navigation.PathCompleteProfile,
			navigation.PlayerIDParam,
			url.QueryEscape(status.PlayerID),
		)
		fingerprint := fmt.Sprintf("incomplete|%s|%s|%s", session.Identity.UserID, status.PlayerID, path)

		return srv.commit(
			usecase.GuardStateIncompleteProfile,
			fingerprint,
			!navigation.InCompletionArea(path),
			target,
		), nil
	}

	onEntryScreen := navigation.InAuthArea(path) ||
		navigation.InCompletionArea(path) ||
		navigation.IsLanding(path)
	fingerprint := fmt.Sprintf("complete|%s|%s", session.Identity.UserID, path)

	// A fully onboarded user may be deep in the app; only the entry screens
	// bounce to home.
	return srv.commit(usecase.GuardStateComplete, fingerprint, onEntryScreen, navigation.PathHome), nil
}

// commit applies the redirect latch and records the settlement.
func (srv *navigationService) commit(state usecase.GuardState, fingerprint string, wantRedirect bool, target string) *usecase.Decision {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if fingerprint == srv.settled.fingerprint && srv.settled.redirected {
		// Same inputs already produced a redirect; suppress the repeat.
		return &usecase.Decision{State: state}
	}

	srv.settled = settlement{
		state:       state,
		fingerprint: fingerprint,
		redirected:  wantRedirect,
	}

	decision := &usecase.Decision{State: state}
	if wantRedirect {
		decision.Redirect = &usecase.Redirect{Path: target}
		srv.logger.Info("Navigation guard redirect",
			"state", string(state), "target", target)
	}

	return decision
}

// lastSettled returns the last settled state without a redirect.
func (srv *navigationService) lastSettled() *usecase.Decision {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	state := srv.settled.state
	if state == "" {
		state = usecase.GuardStateUnknown
	}

	return &usecase.Decision{State: state}
}
