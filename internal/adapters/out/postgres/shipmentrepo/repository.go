package shipmentrepo

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolationCode = "23505"

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id any, aggregate any)
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add reserves the tracking number and saves the aggregate with its events.
// The reservation insert hits the issued_tracking_numbers primary key, so a
// collision with any previously issued number fails with DuplicateValue and
// aborts the surrounding transaction.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	trackingNumber := aggregate.TrackingNumber().String()

	reservation := TrackingReservationDTO{
		TrackingNumber: trackingNumber,
		IssuedAt:       time.Now().UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&reservation).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewDuplicateValueError("trackingNumber", trackingNumber)
		}
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	events := eventsFromDomain(trackingNumber, aggregate.UncommittedEvents())
	if len(events) > 0 {
		if err := r.db.WithContext(ctx).Create(&events).Error; err != nil {
			return err
		}
	}
	aggregate.MarkEventsFlushed()

	r.tracker.TrackAggregate(trackingNumber, aggregate)
	return nil
}

// Update saves an existing shipment, appending only the uncommitted tail of
// its event history. The write is conditional on the version read earlier;
// losing the race fails with VersionConflict.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	trackingNumber := aggregate.TrackingNumber().String()

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Where("tracking_number = ? AND version = ?", trackingNumber, aggregate.Version()).
		Select("*").Omit("tracking_number", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&ShipmentDTO{}).
			Where("tracking_number = ?", trackingNumber).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("trackingNumber", trackingNumber)
		}
		return errs.NewVersionConflictError("shipment", trackingNumber)
	}

	events := eventsFromDomain(trackingNumber, aggregate.UncommittedEvents())
	if len(events) > 0 {
		if err := r.db.WithContext(ctx).Create(&events).Error; err != nil {
			return err
		}
	}
	aggregate.MarkEventsFlushed()

	r.tracker.TrackAggregate(trackingNumber, aggregate)
	return nil
}

// Get retrieves a shipment with its full event history by tracking number.
func (r *GormShipmentRepository) Get(
	ctx context.Context,
	trackingNumber kernel.TrackingNumber,
) (*shipment.Shipment, error) {
	if err := trackingNumber.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "tracking_number = ?", trackingNumber.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("trackingNumber", trackingNumber.String())
		}
		return nil, err
	}

	var eventDTOs []EventDTO
	if err := r.db.WithContext(ctx).
		Order("seq").
		Find(&eventDTOs, "tracking_number = ?", trackingNumber.String()).Error; err != nil {
		return nil, err
	}

	return toDomain(dto, eventDTOs)
}

// Delete removes the shipment and its events. The tracking number
// reservation row stays, keeping the number burned forever.
func (r *GormShipmentRepository) Delete(ctx context.Context, trackingNumber kernel.TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ShipmentDTO{}, "tracking_number = ?", trackingNumber.String())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("trackingNumber", trackingNumber.String())
	}

	return r.db.WithContext(ctx).
		Delete(&EventDTO{}, "tracking_number = ?", trackingNumber.String()).Error
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
