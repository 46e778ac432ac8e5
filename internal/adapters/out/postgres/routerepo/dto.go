// Package routerepo provides data transfer objects and mapping functions for
// route persistence. A route's hub sequence is stored in an ordered child
// table rather than an array column, keeping the schema portable.
package routerepo

import (
	"time"

	"logistics/internal/core/domain/model/directory"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// RouteDTO represents the database structure for persisting route aggregates.
type RouteDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Key       string    `gorm:"uniqueIndex"`
	Name      string
	CreatedAt time.Time
}

// TableName specifies the database table name for route entities.
func (RouteDTO) TableName() string {
	return "routes"
}

// RouteHubDTO represents one hub position on a route.
type RouteHubDTO struct {
	RouteID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position int       `gorm:"primaryKey"`
	HubKey   string
}

// TableName specifies the database table name for route hub positions.
func (RouteHubDTO) TableName() string {
	return "route_hubs"
}

// fromDomain converts a route aggregate to its database representation.
func fromDomain(aggregate *directory.Route) (RouteDTO, []RouteHubDTO) {
	dto := RouteDTO{
		ID:        aggregate.ID().Bytes(),
		Key:       aggregate.Key(),
		Name:      aggregate.Name(),
		CreatedAt: aggregate.CreatedAt(),
	}

	hubKeys := aggregate.HubKeys()
	hubs := make([]RouteHubDTO, 0, len(hubKeys))
	for i, hubKey := range hubKeys {
		hubs = append(hubs, RouteHubDTO{
			RouteID:  dto.ID,
			Position: i,
			HubKey:   hubKey,
		})
	}

	return dto, hubs
}

// toDomain converts database rows to a route aggregate. Hub rows must
// already be ordered by position.
func toDomain(dto RouteDTO, hubDTOs []RouteHubDTO) (*directory.Route, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	hubKeys := make([]string, 0, len(hubDTOs))
	for _, hub := range hubDTOs {
		hubKeys = append(hubKeys, hub.HubKey)
	}

	return directory.RestoreRoute(id, dto.Key, dto.Name, hubKeys, dto.CreatedAt)
}
