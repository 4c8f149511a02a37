package impl

import (
	"context"
	"testing"
	"time"

	"courtside/internal/domain/entity"
	"courtside/internal/domain/navigation"
	"courtside/internal/domain/repository"
	"courtside/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// navigationFixtures holds all test dependencies for navigation guard tests.
type navigationFixtures struct {
	guard       usecase.NavigationUsecase
	profileRepo *stubProfileRepo
	sessions    *stubSessionUsecase
}

func createTestNavigationService(t *testing.T) navigationFixtures {
	profileRepo := &stubProfileRepo{}
	sessions := &stubSessionUsecase{}
	logger := newDiscardLogger()

	profiles := NewProfileService(profileRepo, logger)
	guard, err := NewNavigationService(profiles, sessions, logger)
	require.NoError(t, err)

	return navigationFixtures{
		guard:       guard,
		profileRepo: profileRepo,
		sessions:    sessions,
	}
}

func testSession(userID uuid.UUID) *entity.Session {
	return &entity.Session{
		AccessToken: "token",
		ExpiresAt:   time.Now().Add(time.Hour),
		Identity: entity.Identity{
			UserID: userID,
			Email:  "player@example.com",
		},
	}
}

func completeProfile(userID uuid.UUID) *entity.Profile {
	return &entity.Profile{
		PlayerID: "p-100",
		UserID:   userID,
		Name:     "Casey Morgan",
		Handle:   "casey",
	}
}

func TestNavigationService_Evaluate_DefersUntilReady(t *testing.T) {
	fx := createTestNavigationService(t)
	ctx := context.Background()

	decision, err := fx.guard.Evaluate(ctx, "/home")
	require.NoError(t, err)
	assert.Equal(t, usecase.GuardStateUnknown, decision.State)
	assert.Nil(t, decision.Redirect)

	// Still deferred: the app is ready but the session is unresolved.
	fx.guard.OnAppReady()
	decision, err = fx.guard.Evaluate(ctx, "/home")
	require.NoError(t, err)
	assert.Equal(t, usecase.GuardStateUnknown, decision.State)
	assert.Nil(t, decision.Redirect)
}

func TestNavigationService_Evaluate_UnauthenticatedRedirectsToAuth(t *testing.T) {
	fx := createTestNavigationService(t)
	ctx := context.Background()

	fx.guard.OnAppReady()
	fx.guard.OnSessionResolved(nil)

	decision, err := fx.guard.Evaluate(ctx, "/home")
	require.NoError(t, err)
	assert.Equal(t, usecase.GuardStateUnauthenticated, decision.State)
	require.NotNil(t, decision.Redirect)
	assert.Equal(t, navigation.PathAuth, decision.Redirect.Path)
}

func TestNavigationService_Evaluate_UnauthenticatedStaysInAuthArea(t *testing.T) {
	fx := createTestNavigationService(t)
	ctx := context.Background()

	fx.guard.OnAppReady()
	fx.guard.OnSessionResolved(nil)

	for _, path := range []string{
		navigation.PathAuth,
		navigation.PathPasswordReset + "?" + navigation.RecoveryMarker,
	} {
		decision, err := fx.guard.Evaluate(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, usecase.GuardStateUnauthenticated, decision.State)
		assert.Nil(t, decision.Redirect, "no redirect expected on %s", path)
	}
}

func TestNavigationService_Evaluate_IncompleteProfileRedirects(t *testing.T) {
	fx := createTestNavigationService(t)
	ctx := context.Background()
	userID := uuid.New()

	// No profile row yet.
	fx.profileRepo.err = repository.ErrProfileNotFound

	fx.guard.OnAppReady()
	fx.guard.OnSessionResolved(testSession(userID))

	decision, err := fx.guard.Evaluate(ctx, "/home")
	require.NoError(t, err)
	assert.Equal(t, usecase.GuardStateIncompleteProfile, decision.State)
	require.NotNil(t, decision.Redirect)
	assert.Contains(t, decision.Redirect.Path, navigation.PathCompleteProfile)
}

func TestNavigationService_Evaluate_IncompleteWithoutNameRedirectsWithPlayerID(t *testing.T) {
	fx := createTestNavigationService(t)
	ctx := context.Background()
	userID := uuid.New()

	profile := completeProfile(userID)
	profile.Name = ""
	fx.profileRepo.profile = profile

	fx.guard.OnAppReady()
	fx.guard.OnSessionResolved(testSession(userID))

	decision, err := fx.guard.Evaluate(ctx, "/home")
	require.NoError(t, err)
	assert.Equal(t, usecase.GuardStateIncompleteProfile, decision.State)
	require.NotNil(t, decision.Redirect)
	assert.Equal(t, navigation.PathCompleteProfile+"?"+navigation.PlayerIDParam+"=p-100", decision.Redirect.Path)
}

func TestNavigationService_Evaluate_IncompleteStaysOnCompletionScreen(t *testing.T) {
	fx := createTestNavigationService(t)
	ctx := context.Background()
	userID := uuid.New()

	profile := completeProfile(userID)
	profile.Name = ""
	fx.profileRepo.profile = profile

	fx.guard.OnAppReady()
	fx.guard.OnSessionResolved(testSession(userID))

	decision, err := fx.guard.Evaluate(ctx, navigation.PathCompleteProfile+"?"+navigation.PlayerIDParam+"=p-100")
	require.NoError(t, err)
	assert.Equal(t, usecase.GuardStateIncompleteProfile, decision.State)
	assert.Nil(t, decision.Redirect)
}

func TestNavigationService_Evaluate_CompleteBouncesEntryScreensHome(t *testing.T) {
	fx := createTestNavigationService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.profile = completeProfile(userID)

	fx.guard.OnAppReady()
	fx.guard.OnSessionResolved(testSession(userID))

	for _, path := range []string{navigation.PathRoot, navigation.PathAuth, navigation.PathCompleteProfile} {
		decision, err := fx.guard.Evaluate(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, usecase.GuardStateComplete, decision.State)
		require.NotNil(t, decision.Redirect, "redirect expected on %s", path)
		assert.Equal(t, navigation.PathHome, decision.Redirect.Path)
	}
}

func TestNavigationService_Evaluate_CompleteLeavesDeepLinksAlone(t *testing.T) {
	fx := createTestNavigationService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.profile = completeProfile(userID)

	fx.guard.OnAppReady()
	fx.guard.OnSessionResolved(testSession(userID))

	decision, err := fx.guard.Evaluate(ctx, "/groups/42/matches")
	require.NoError(t, err)
	assert.Equal(t, usecase.GuardStateComplete, decision.State)
	assert.Nil(t, decision.Redirect)
}

func TestNavigationService_Evaluate_RedirectLatchSuppressesRepeats(t *testing.T) {
	fx := createTestNavigationService(t)
	ctx := context.Background()

	fx.guard.OnAppReady()
	fx.guard.OnSessionResolved(nil)

	first, err := fx.guard.Evaluate(ctx, "/home")
	require.NoError(t, err)
	require.NotNil(t, first.Redirect)

	// Same inputs again: the state persists but the redirect is not re-issued.
	second, err := fx.guard.Evaluate(ctx, "/home")
	require.NoError(t, err)
	assert.Equal(t, usecase.GuardStateUnauthenticated, second.State)
	assert.Nil(t, second.Redirect)

	// An input change (new path) re-arms the latch.
	third, err := fx.guard.Evaluate(ctx, "/groups")
	require.NoError(t, err)
	require.NotNil(t, third.Redirect)
	assert.Equal(t, navigation.PathAuth, third.Redirect.Path)
}

func TestNavigationService_Evaluate_ProfileErrorHoldsSettledState(t *testing.T) {
	fx := createTestNavigationService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.profile = completeProfile(userID)

	fx.guard.OnAppReady()
	fx.guard.OnSessionResolved(testSession(userID))

	settled, err := fx.guard.Evaluate(ctx, "/home")
	require.NoError(t, err)
	require.Equal(t, usecase.GuardStateComplete, settled.State)

	// The store starts failing; the guard must not flap to a new state or
	// emit a redirect.
	fx.profileRepo.err = errors.New("connection refused")

	held, err := fx.guard.Evaluate(ctx, "/home")
	require.NoError(t, err)
	assert.Equal(t, usecase.GuardStateComplete, held.State)
	assert.Nil(t, held.Redirect)
}

func TestNavigationService_Evaluate_CancelledContextDiscardsResult(t *testing.T) {
	fx := createTestNavigationService(t)
	userID := uuid.New()

	fx.profileRepo.profile = completeProfile(userID)

	fx.guard.OnAppReady()
	fx.guard.OnSessionResolved(testSession(userID))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	decision, err := fx.guard.Evaluate(ctx, navigation.PathAuth)
	require.NoError(t, err)
	assert.Equal(t, usecase.GuardStateUnknown, decision.State)
	assert.Nil(t, decision.Redirect)
}

func TestNavigationService_SessionWatchFeedsResolutions(t *testing.T) {
	fx := createTestNavigationService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.profile = completeProfile(userID)
	fx.guard.OnAppReady()

	// The guard registered itself with the session source; a provider-side
	// auth event resolves the session without an explicit call.
	require.Len(t, fx.sessions.handlers, 1)
	fx.sessions.handlers[0](testSession(userID))

	decision, err := fx.guard.Evaluate(ctx, "/home")
	require.NoError(t, err)
	assert.Equal(t, usecase.GuardStateComplete, decision.State)

	// Sign-out propagates the same way.
	fx.sessions.handlers[0](nil)

	decision, err = fx.guard.Evaluate(ctx, "/home")
	require.NoError(t, err)
	assert.Equal(t, usecase.GuardStateUnauthenticated, decision.State)
	require.NotNil(t, decision.Redirect)
	assert.Equal(t, navigation.PathAuth, decision.Redirect.Path)
}
