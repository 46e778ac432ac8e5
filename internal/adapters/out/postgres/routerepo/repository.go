package routerepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/directory"
	"logistics/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolationCode = "23505"

// GormRouteRepository implements RouteRepository using GORM.
type GormRouteRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id any, aggregate any)
}

// NewGormRouteRepository creates a new GORM route repository.
func NewGormRouteRepository(db *gorm.DB, tracker aggregateTracker) *GormRouteRepository {
	return &GormRouteRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new route and its hub sequence. A taken business key surfaces
// as DuplicateValue.
func (r *GormRouteRepository) Add(ctx context.Context, aggregate *directory.Route) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, hubs := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return errs.NewDuplicateValueError("key", aggregate.Key())
		}
		return err
	}

	if err := r.db.WithContext(ctx).Create(&hubs).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByKey retrieves a route by business key. An unknown key is a nil route
// with a nil error.
func (r *GormRouteRepository) GetByKey(ctx context.Context, key string) (*directory.Route, error) {
	var dto RouteDTO
	if err := r.db.WithContext(ctx).First(&dto, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	hubs, err := r.hubsFor(ctx, dto)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, hubs)
}

// GetAll retrieves every route, ordered by key.
func (r *GormRouteRepository) GetAll(ctx context.Context) ([]*directory.Route, error) {
	var dtos []RouteDTO
	if err := r.db.WithContext(ctx).Order("key").Find(&dtos).Error; err != nil {
		return nil, err
	}

	routes := make([]*directory.Route, 0, len(dtos))
	for _, dto := range dtos {
		hubs, err := r.hubsFor(ctx, dto)
		if err != nil {
			return nil, err
		}

		route, err := toDomain(dto, hubs)
		if err != nil {
			return nil, err
		}
		routes = append(routes, route)
	}

	return routes, nil
}

func (r *GormRouteRepository) hubsFor(ctx context.Context, dto RouteDTO) ([]RouteHubDTO, error) {
	var hubs []RouteHubDTO
	if err := r.db.WithContext(ctx).
		Order("position").
		Find(&hubs, "route_id = ?", dto.ID).Error; err != nil {
		return nil, err
	}
	return hubs, nil
}
