// Package userrepo provides data transfer objects and mapping functions for
// user account persistence. The password credential is stored as its opaque
// hash and never leaves this package in any other form.
package userrepo

import (
	"time"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user aggregates.
// The email column is unique; the constraint is the system-wide guarantee
// that an email maps to at most one account.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"uniqueIndex"`
	FullName     string
	Role         string
	Phone        string
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time `gorm:"index"`
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user aggregate to its database representation.
func fromDomain(aggregate *account.User) UserDTO {
	return UserDTO{
		ID:           aggregate.ID().Bytes(),
		Email:        aggregate.Email(),
		FullName:     aggregate.FullName(),
		Role:         aggregate.Role().String(),
		Phone:        aggregate.Phone(),
		PasswordHash: aggregate.Credential().Hash(),
		IsActive:     aggregate.IsActive(),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a user aggregate.
func toDomain(dto UserDTO) (*account.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := account.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	credential, err := account.CredentialFromHash(dto.PasswordHash)
	if err != nil {
		return nil, err
	}

	return account.RestoreUser(id, dto.Email, dto.FullName, role, dto.Phone, credential, dto.IsActive, dto.CreatedAt)
}
