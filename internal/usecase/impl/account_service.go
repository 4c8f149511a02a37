package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"courtside/internal/domain/entity"
	domainerrors "courtside/internal/domain/errors"
	"courtside/internal/domain/repository"
	"courtside/internal/domain/service"
	"courtside/internal/errors"
	"courtside/internal/usecase"
)

// auxKeyOnboardingQR is the auxiliary-cache key for rendered onboarding QRs.
const auxKeyOnboardingQR = "onboarding_qr"

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	qrcodes     service.QRCodeService
	logger      *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(
	accountRepo repository.AccountRepository,
	hasher service.PasswordHasher,
	qrcodes service.QRCodeService,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		accountRepo: accountRepo,
		hasher:      hasher,
		qrcodes:     qrcodes,
		logger:      logger,
	}
}

// Classify reports the partition side for an email.
func (srv *accountService) Classify(ctx context.Context, email string) (entity.Classification, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return entity.ClassificationUnknown, errors.WithStack(domainerrors.ErrInvalidIdentity)
	}

	return srv.accountRepo.Classify(ctx, email)
}

// ListDemonstration returns the regenerated demonstration dataset.
func (srv *accountService) ListDemonstration(ctx context.Context) ([]*entity.AccountRecord, error) {
	return srv.accountRepo.ListDemonstration(ctx)
}

// ListReal returns a snapshot of the real accounts.
func (srv *accountService) ListReal(ctx context.Context) ([]*entity.AccountRecord, error) {
	return srv.accountRepo.ListReal(ctx)
}

// CreateReal registers a real account.
func (srv *accountService) CreateReal(ctx context.Context, input *usecase.CreateAccountInput) (*entity.AccountRecord, error) {
	// 1. Hash the password before anything touches the store.
	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	// 2. Build and store the record; the repository owns the partition
	// bookkeeping for emails that previously classified as demonstration.
	record := &entity.AccountRecord{
		Email:          strings.TrimSpace(input.Email),
		Classification: entity.ClassificationReal,
		PlayerID:       input.PlayerID,
		Name:           input.Name,
		Handle:         input.Handle,
		PasswordHash:   passwordHash,
		CreatedAt:      time.Now(),
	}
	if err := srv.accountRepo.CreateReal(ctx, record); err != nil {
		return nil, err
	}

	srv.logger.Info("Successfully registered real account",
		"email", record.Email, "playerID", record.PlayerID)

	return record, nil
}

// Delete removes an account from the partition.
func (srv *accountService) Delete(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errors.WithStack(domainerrors.ErrInvalidIdentity)
	}

	if err := srv.accountRepo.Delete(ctx, email); err != nil {
		return err
	}

	srv.logger.Info("Successfully deleted account", "email", email)

	return nil
}

// OnboardingQR renders the profile-completion QR code for an account,
// caching the PNG in the store's auxiliary space so repeated requests do
// not re-encode.
func (srv *accountService) OnboardingQR(ctx context.Context, email string) ([]byte, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, errors.WithStack(domainerrors.ErrInvalidIdentity)
	}

	if cached, ok := srv.accountRepo.Auxiliary(email, auxKeyOnboardingQR); ok {
		if png, ok := cached.([]byte); ok {
			return png, nil
		}
	}

	record, err := srv.findRecord(ctx, email)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcodes.GenerateOnboardingQR(record.PlayerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render onboarding QR")
	}

	srv.accountRepo.PutAuxiliary(email, auxKeyOnboardingQR, png)

	return png, nil
}

// findRecord resolves an email to its account record on either side of the
// partition.
func (srv *accountService) findRecord(ctx context.Context, email string) (*entity.AccountRecord, error) {
	classification, err := srv.accountRepo.Classify(ctx, email)
	if err != nil {
		return nil, err
	}

	var records []*entity.AccountRecord
	switch classification {
	case entity.ClassificationReal:
		records, err = srv.accountRepo.ListReal(ctx)
	case entity.ClassificationDemonstration:
		records, err = srv.accountRepo.ListDemonstration(ctx)
	default:
		return nil, errors.WithStack(domainerrors.ErrAccountNotFound)
	}
	if err != nil {
		return nil, err
	}

	for _, record := range records {
		if record.Email == email {
			return record, nil
		}
	}

	return nil, errors.WithStack(domainerrors.ErrAccountNotFound)
}
