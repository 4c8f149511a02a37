package memory

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"courtside/config"
	"courtside/internal/domain/entity"
	domainerrors "courtside/internal/domain/errors"
	"courtside/internal/domain/repository"
	"courtside/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultDemoSeed  = 1
	defaultDemoCount = 24
	demoPassword     = "courtside-demo"
)

// accountStore is the in-process account partition store. The classification
// map is the authority on which side of the partition an email lives on; the
// real map holds payloads for real accounts only. Both are updated under one
// mutex so a reader never observes one without the other.
type accountStore struct {
	logger *slog.Logger

	demoSeed     int64
	demoCount    int
	demoPassHash string

	mu             sync.RWMutex
	classification map[string]entity.Classification
	real           map[string]*entity.AccountRecord
	excluded       map[string]struct{}
	aux            map[string]map[string]any
}

// NewAccountStore constructs the partition store and seeds the
// classification map with the demonstration dataset's keys.
func NewAccountStore(cfg *config.Config, hasher service.PasswordHasher, logger *slog.Logger) (repository.AccountRepository, error) {
	seed := int64(defaultDemoSeed)
	count := defaultDemoCount
	if cfg.DemoAccounts != nil {
		if cfg.DemoAccounts.Seed != 0 {
			seed = cfg.DemoAccounts.Seed
		}
		if cfg.DemoAccounts.Count > 0 {
			count = cfg.DemoAccounts.Count
		}
	}
	if count > maxDemoAccounts {
		logger.Warn("Demo account count exceeds the name pool, clamping",
			slog.Int("requested", count),
			slog.Int("max", maxDemoAccounts),
		)
		count = maxDemoAccounts
	}

	// One hash shared by every demo record. Demo accounts are sample data;
	// per-record hashing would only slow startup.
	passHash, err := hasher.Hash(demoPassword)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash demo password")
	}

	store := &accountStore{
		logger:         logger,
		demoSeed:       seed,
		demoCount:      count,
		demoPassHash:   passHash,
		classification: make(map[string]entity.Classification),
		real:           make(map[string]*entity.AccountRecord),
		excluded:       make(map[string]struct{}),
		aux:            make(map[string]map[string]any),
	}

	for _, record := range generateDemoAccounts(seed, count, passHash) {
		store.classification[record.Email] = entity.ClassificationDemonstration
	}

	logger.Info("Account partition store initialized",
		slog.Int("demoAccounts", count),
		slog.Int64("demoSeed", seed),
	)

	return store, nil
}

// Classify reports which side of the partition an email falls on.
func (s *accountStore) Classify(_ context.Context, email string) (entity.Classification, error) {
	email = strings.TrimSpace(email)

	s.mu.RLock()
	defer s.mu.RUnlock()

	class, ok := s.classification[email]
	if !ok {
		return entity.ClassificationUnknown, nil
	}

	// The partition invariant: a Real classification must have a record and
	// a Demonstration classification must not. Disagreement means the store
	// is corrupt; fail loudly rather than guessing.
	if _, hasRecord := s.real[email]; hasRecord != (class == entity.ClassificationReal) {
		return entity.ClassificationUnknown, domainerrors.ErrInconsistentClassification.WrapMessage(email)
	}

	return class, nil
}

// ListDemonstration regenerates the demonstration dataset on every call and
// filters out excluded and reclassified emails.
func (s *accountStore) ListDemonstration(_ context.Context) ([]*entity.AccountRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	generated := generateDemoAccounts(s.demoSeed, s.demoCount, s.demoPassHash)
	records := make([]*entity.AccountRecord, 0, len(generated))
	for _, record := range generated {
		if _, gone := s.excluded[record.Email]; gone {
			continue
		}
		if s.classification[record.Email] != entity.ClassificationDemonstration {
			continue
		}
		records = append(records, record)
	}

	return records, nil
}

// ListReal returns a snapshot of the current real-account map.
func (s *accountStore) ListReal(_ context.Context) ([]*entity.AccountRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]*entity.AccountRecord, 0, len(s.real))
	for _, record := range s.real {
		clone := *record
		records = append(records, &clone)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Email < records[j].Email
	})

	return records, nil
}

// CreateReal stores a real account record, replacing any prior
// classification for the email.
func (s *accountStore) CreateReal(_ context.Context, record *entity.AccountRecord) error {
	if record == nil {
		return domainerrors.ErrInvalidIdentity.WrapMessage("nil record")
	}

	email := strings.TrimSpace(record.Email)
	if email == "" {
		return domainerrors.ErrInvalidIdentity.WrapMessage("empty email")
	}

	stored := *record
	stored.Email = email
	stored.Classification = entity.ClassificationReal

	s.mu.Lock()
	defer s.mu.Unlock()

	// A claimed demo email must not resurrect on the next listing if the
	// real account is later deleted.
	if s.classification[email] == entity.ClassificationDemonstration {
		s.excluded[email] = struct{}{}
	}

	s.classification[email] = entity.ClassificationReal
	s.real[email] = &stored

	// Cached derivations (rendered QR codes) of a replaced record are stale.
	delete(s.aux, email)

	return nil
}

// Delete removes the classification for an email.
func (s *accountStore) Delete(_ context.Context, email string) error {
	email = strings.TrimSpace(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	class, ok := s.classification[email]
	if !ok {
		return domainerrors.ErrAccountNotFound.WrapMessage(email)
	}

	switch class {
	case entity.ClassificationReal:
		delete(s.real, email)
		delete(s.classification, email)
		delete(s.aux, email)
	case entity.ClassificationDemonstration:
		delete(s.classification, email)
		s.excluded[email] = struct{}{}
	default:
		return domainerrors.ErrInconsistentClassification.WrapMessage(email)
	}

	return nil
}

// PutAuxiliary caches auxiliary data (rendered QR codes and the like) under
// an email. The cache is dropped when the account is deleted.
func (s *accountStore) PutAuxiliary(email, key string, value any) {
	email = strings.TrimSpace(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.aux[email] == nil {
		s.aux[email] = make(map[string]any)
	}
	s.aux[email][key] = value
}

// Auxiliary returns cached auxiliary data for an email.
func (s *accountStore) Auxiliary(email, key string) (any, bool) {
	email = strings.TrimSpace(email)

	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.aux[email][key]

	return value, ok
}
