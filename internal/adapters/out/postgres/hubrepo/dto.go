// Package hubrepo provides data transfer objects and mapping functions for
// hub persistence.
package hubrepo

import (
	"time"

	"logistics/internal/core/domain/model/directory"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// HubDTO represents the database structure for persisting hub aggregates.
// The business key carries a unique index; shipments and routes reference
// hubs by key, never by the surrogate ID.
type HubDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Key       string    `gorm:"uniqueIndex"`
	Name      string
	Address   string
	Phone     string
	Capacity  int
	Status    string
	CreatedAt time.Time
}

// TableName specifies the database table name for hub entities.
func (HubDTO) TableName() string {
	return "hubs"
}

// fromDomain converts a hub aggregate to its database representation.
func fromDomain(aggregate *directory.Hub) HubDTO {
	return HubDTO{
		ID:        aggregate.ID().Bytes(),
		Key:       aggregate.Key(),
		Name:      aggregate.Name(),
		Address:   aggregate.Address(),
		Phone:     aggregate.Phone(),
		Capacity:  aggregate.Capacity(),
		Status:    aggregate.Status().String(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a hub aggregate.
func toDomain(dto HubDTO) (*directory.Hub, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := directory.HubStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return directory.RestoreHub(id, dto.Key, dto.Name, dto.Address, dto.Phone, dto.Capacity, status, dto.CreatedAt)
}
