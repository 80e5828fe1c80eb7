// Package model contains the GORM persistence models. They mirror the domain
// entities but carry storage concerns (column mappings, indexes).
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the GORM model for the users table. Username and email each
// carry a unique index; racing registrations are rejected by the database
// even when they slip past the application-level pre-check.
type UserModel struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Username     string    `gorm:"column:username;not null;uniqueIndex:users_username_key"`
	Email        string    `gorm:"column:email;not null;uniqueIndex:users_email_key"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

// TableName overrides the default GORM table name.
func (UserModel) TableName() string {
	return "users"
}
