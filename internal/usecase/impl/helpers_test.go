package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"courtside/internal/domain/entity"
	"courtside/internal/domain/service"
	"courtside/internal/usecase"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- profile repository stub ---

type stubProfileRepo struct {
	profile *entity.Profile
	err     error
	calls   int
}

func (s *stubProfileRepo) FindByUserID(_ context.Context, _ uuid.UUID) (*entity.Profile, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}

	return s.profile, nil
}

// --- identity provider stub ---

type stubIdentityProvider struct {
	session     *entity.Session
	sessionErr  error
	exchangeErr error
	passwordErr error
	signOutErr  error
	handlers    []service.SessionHandler
}

func (s *stubIdentityProvider) GetSession(_ context.Context) (*entity.Session, error) {
	if s.sessionErr != nil {
		return nil, s.sessionErr
	}

	return s.session, nil
}

func (s *stubIdentityProvider) OnChange(handler service.SessionHandler) (service.Subscription, error) {
	s.handlers = append(s.handlers, handler)

	return &stubSubscription{}, nil
}

func (s *stubIdentityProvider) ExchangeCode(_ context.Context, _ string) (*entity.Session, error) {
	if s.exchangeErr != nil {
		return nil, s.exchangeErr
	}

	return s.session, nil
}

func (s *stubIdentityProvider) UpdatePassword(_ context.Context, _ string) error {
	return s.passwordErr
}

func (s *stubIdentityProvider) SignOut(_ context.Context) error {
	s.session = nil
	for _, handler := range s.handlers {
		handler(nil)
	}

	return s.signOutErr
}

// --- subscription / change stream stubs ---

type stubSubscription struct {
	mu     sync.Mutex
	closed bool
	err    error
}

func (s *stubSubscription) Unsubscribe() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true

	return s.err
}

func (s *stubSubscription) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.closed
}

type stubChangeStream struct {
	mu       sync.Mutex
	failing  map[string]error
	handlers map[string]service.ChangeHandler
	subs     map[string]*stubSubscription
}

func newStubChangeStream() *stubChangeStream {
	return &stubChangeStream{
		failing:  make(map[string]error),
		handlers: make(map[string]service.ChangeHandler),
		subs:     make(map[string]*stubSubscription),
	}
}

func (s *stubChangeStream) Subscribe(_ context.Context, table string, handler service.ChangeHandler) (service.Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err, ok := s.failing[table]; ok {
		return nil, err
	}

	sub := &stubSubscription{}
	s.handlers[table] = handler
	s.subs[table] = sub

	return sub, nil
}

func (s *stubChangeStream) emit(event entity.ChangeEvent) {
	s.mu.Lock()
	handler := s.handlers[event.Table]
	s.mu.Unlock()

	if handler != nil {
		handler(event)
	}
}

// --- account repository stub ---

type stubAccountRepo struct {
	classification map[string]entity.Classification
	real           map[string]*entity.AccountRecord
	demo           []*entity.AccountRecord
	aux            map[string]any
	classifyErr    error
	createErr      error
	deleteErr      error
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{
		classification: make(map[string]entity.Classification),
		real:           make(map[string]*entity.AccountRecord),
		aux:            make(map[string]any),
	}
}

func (s *stubAccountRepo) Classify(_ context.Context, email string) (entity.Classification, error) {
	if s.classifyErr != nil {
		return entity.ClassificationUnknown, s.classifyErr
	}
	if class, ok := s.classification[email]; ok {
		return class, nil
	}

	return entity.ClassificationUnknown, nil
}

func (s *stubAccountRepo) ListDemonstration(_ context.Context) ([]*entity.AccountRecord, error) {
	return s.demo, nil
}

func (s *stubAccountRepo) ListReal(_ context.Context) ([]*entity.AccountRecord, error) {
	records := make([]*entity.AccountRecord, 0, len(s.real))
	for _, record := range s.real {
		records = append(records, record)
	}

	return records, nil
}

func (s *stubAccountRepo) CreateReal(_ context.Context, record *entity.AccountRecord) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.classification[record.Email] = entity.ClassificationReal
	s.real[record.Email] = record

	return nil
}

func (s *stubAccountRepo) Delete(_ context.Context, email string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.classification, email)
	delete(s.real, email)

	return nil
}

func (s *stubAccountRepo) PutAuxiliary(email, key string, value any) {
	s.aux[email+"/"+key] = value
}

func (s *stubAccountRepo) Auxiliary(email, key string) (any, bool) {
	value, ok := s.aux[email+"/"+key]

	return value, ok
}

// --- password hasher / QR stubs ---

type stubHasher struct {
	err error
}

func (s *stubHasher) Hash(password string) (string, error) {
	if s.err != nil {
		return "", s.err
	}

	return "hashed:" + password, nil
}

func (s *stubHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

type stubQRCodeService struct {
	err   error
	calls int
}

func (s *stubQRCodeService) GenerateOnboardingQR(playerID string) ([]byte, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}

	return []byte("png:" + playerID), nil
}

// --- session usecase stub (navigation tests drive resolutions directly) ---

type stubSessionUsecase struct {
	handlers []service.SessionHandler
}

func (s *stubSessionUsecase) Current(_ context.Context) *entity.Session { return nil }

func (s *stubSessionUsecase) Watch(handler service.SessionHandler) (service.Subscription, error) {
	s.handlers = append(s.handlers, handler)

	return &stubSubscription{}, nil
}

func (s *stubSessionUsecase) ExchangeCode(_ context.Context, _ *usecase.ExchangeCodeInput) (*entity.Session, error) {
	return nil, nil
}

func (s *stubSessionUsecase) UpdatePassword(_ context.Context, _ *usecase.UpdatePasswordInput) error {
	return nil
}

func (s *stubSessionUsecase) SignOut(_ context.Context) error { return nil }
