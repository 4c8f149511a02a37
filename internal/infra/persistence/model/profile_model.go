// Package model contains the GORM persistence models mirroring the external
// relational store. They are mapped to pure domain entities at the
// repository boundary.
package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel mirrors the 'profiles' table owned by the external store.
// The name column is nullable: a row exists from registration, the name only
// once the user completes their profile.
type ProfileModel struct {
	PlayerID  string    `gorm:"type:varchar(32);primary_key"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Name      *string   `gorm:"type:varchar(100)"`
	Handle    string    `gorm:"type:varchar(40);unique;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
