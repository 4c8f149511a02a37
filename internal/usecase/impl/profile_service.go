package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	domainerrors "courtside/internal/domain/errors"
	"courtside/internal/domain/repository"
	"courtside/internal/errors"
	"courtside/internal/usecase"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(profileRepo repository.ProfileRepository, logger *slog.Logger) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// CheckCompletion reports whether the identity has a profile with a display
// name. A missing row is a definitive "incomplete", not an error; only
// store-level failures propagate, wrapped as transient so callers can hold
// their previous state.
func (srv *profileService) CheckCompletion(ctx context.Context, userID uuid.UUID) (*usecase.ProfileStatus, error) {
	profile, err := srv.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return &usecase.ProfileStatus{Exists: false}, nil
		}

		srv.logger.Error("Profile fetch failed", "userID", userID, "error", err)

		return nil, errors.Wrap(domainerrors.ErrTransientFetch, "failed to fetch profile")
	}

	return &usecase.ProfileStatus{
		Exists:      true,
		NamePresent: profile.NamePresent(),
		PlayerID:    profile.PlayerID,
	}, nil
}
