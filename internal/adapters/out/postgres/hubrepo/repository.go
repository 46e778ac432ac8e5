package hubrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/directory"
	"logistics/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolationCode = "23505"

// GormHubRepository implements HubRepository using GORM.
type GormHubRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id any, aggregate any)
}

// NewGormHubRepository creates a new GORM hub repository.
func NewGormHubRepository(db *gorm.DB, tracker aggregateTracker) *GormHubRepository {
	return &GormHubRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new hub. A taken business key surfaces as DuplicateValue.
func (r *GormHubRepository) Add(ctx context.Context, aggregate *directory.Hub) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return errs.NewDuplicateValueError("key", aggregate.Key())
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing hub to the database.
func (r *GormHubRepository) Update(ctx context.Context, aggregate *directory.Hub) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&HubDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id", "key", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("hub", aggregate.Key())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByKey retrieves a hub by business key. An unknown key is a nil hub
// with a nil error; the directory resolver decides what that means.
func (r *GormHubRepository) GetByKey(ctx context.Context, key string) (*directory.Hub, error) {
	var dto HubDTO
	if err := r.db.WithContext(ctx).First(&dto, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every hub, ordered by key.
func (r *GormHubRepository) GetAll(ctx context.Context) ([]*directory.Hub, error) {
	var dtos []HubDTO
	if err := r.db.WithContext(ctx).Order("key").Find(&dtos).Error; err != nil {
		return nil, err
	}

	hubs := make([]*directory.Hub, 0, len(dtos))
	for _, dto := range dtos {
		hub, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		hubs = append(hubs, hub)
	}

	return hubs, nil
}
