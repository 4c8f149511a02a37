// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"courtside/internal/domain/entity"
)

// AccountRepository is the account partition store: every known email is
// classified as exactly one of demonstration or real.
//
// Implementations must apply the paired classification+record update
// atomically; a reader never observes one without the other.
type AccountRepository interface {
	// Classify reports which side of the partition an email falls on.
	// Emails with no record classify as ClassificationUnknown.
	Classify(ctx context.Context, email string) (entity.Classification, error)

	// ListDemonstration regenerates the demonstration dataset from the fixed
	// seed generator on every call. Callers must not assume anything beyond
	// key equality across calls.
	ListDemonstration(ctx context.Context) ([]*entity.AccountRecord, error)

	// ListReal returns a snapshot of the current real-account map.
	ListReal(ctx context.Context) ([]*entity.AccountRecord, error)

	// CreateReal stores a real account record, overwriting any prior record
	// for the same email, clearing a stale demonstration marker and dropping
	// cached auxiliary data derived from the replaced record.
	// Fails with domain errors.ErrInvalidIdentity for an empty trimmed email.
	CreateReal(ctx context.Context, record *entity.AccountRecord) error

	// Delete removes the classification for an email. Real records lose their
	// payload and cached auxiliary data; demonstration emails are added to the
	// exclusion set so they stay gone from subsequent listings.
	// Returns errors.ErrAccountNotFound when the email has no classification.
	Delete(ctx context.Context, email string) error

	// PutAuxiliary caches derived per-account data (rendered QR codes and
	// the like) under an email. Deleting the account drops the cache.
	PutAuxiliary(email, key string, value any)

	// Auxiliary returns previously cached auxiliary data for an email.
	Auxiliary(email, key string) (any, bool)
}
