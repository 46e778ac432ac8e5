// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. Shipments span three tables: the shipment row,
// an append-only event history, and the tracking number reservation ledger
// that guarantees a number is issued at most once, ever.
package shipmentrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. The tracking number is the primary key; the version column
// backs optimistic concurrency control.
type ShipmentDTO struct {
	TrackingNumber    string   `gorm:"primaryKey"`
	Sender            PartyDTO `gorm:"embedded;embeddedPrefix:sender_"`
	Receiver          PartyDTO `gorm:"embedded;embeddedPrefix:receiver_"`
	PackageDetails    string
	WeightKg          float64
	LengthCm          float64
	WidthCm           float64
	HeightCm          float64
	ServiceType       string
	CostCents         int64
	HubKey            string
	RouteKey          string
	PickupDate        *time.Time
	EstimatedDelivery *time.Time
	ActualDelivery    *time.Time
	Status            string `gorm:"index"`
	Version           int
	CreatedAt         time.Time `gorm:"index"`
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// PartyDTO represents the embedded sender or receiver columns within the
// shipment table.
type PartyDTO struct {
	Name    string
	Phone   string
	Address string
}

// EventDTO represents one row of a shipment's append-only event history.
// Rows are only ever inserted; (tracking_number, seq) is unique.
type EventDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingNumber string    `gorm:"index:idx_shipment_events_seq,unique"`
	Seq            int       `gorm:"index:idx_shipment_events_seq,unique"`
	Status         string
	Location       string
	Description    string
	OccurredAt     time.Time
}

// TableName specifies the database table name for shipment events.
func (EventDTO) TableName() string {
	return "shipment_events"
}

// TrackingReservationDTO represents one issued tracking number. Rows are
// inserted when a shipment is created and never deleted, shipment deletion
// included, so a number can never be issued twice.
type TrackingReservationDTO struct {
	TrackingNumber string `gorm:"primaryKey"`
	IssuedAt       time.Time
}

// TableName specifies the database table name for tracking reservations.
func (TrackingReservationDTO) TableName() string {
	return "issued_tracking_numbers"
}

// fromDomain converts a shipment aggregate to its database representation.
// The event history travels separately via eventsFromDomain.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		TrackingNumber: aggregate.TrackingNumber().String(),
		Sender: PartyDTO{
			Name:    aggregate.Sender().Name(),
			Phone:   aggregate.Sender().Phone(),
			Address: aggregate.Sender().Address(),
		},
		Receiver: PartyDTO{
			Name:    aggregate.Receiver().Name(),
			Phone:   aggregate.Receiver().Phone(),
			Address: aggregate.Receiver().Address(),
		},
		PackageDetails:    aggregate.PackageDetails(),
		WeightKg:          aggregate.Weight().Kg(),
		LengthCm:          aggregate.Dimensions().Length(),
		WidthCm:           aggregate.Dimensions().Width(),
		HeightCm:          aggregate.Dimensions().Height(),
		ServiceType:       aggregate.ServiceType().String(),
		CostCents:         aggregate.Cost().Cents(),
		HubKey:            aggregate.HubKey(),
		RouteKey:          aggregate.RouteKey(),
		PickupDate:        aggregate.PickupDate(),
		EstimatedDelivery: aggregate.EstimatedDelivery(),
		ActualDelivery:    aggregate.ActualDelivery(),
		Status:            aggregate.Status().String(),
		Version:           aggregate.Version(),
		CreatedAt:         aggregate.CreatedAt(),
	}
}

// eventsFromDomain converts domain events to rows.
func eventsFromDomain(trackingNumber string, events []shipment.Event) []EventDTO {
	dtos := make([]EventDTO, 0, len(events))
	for _, event := range events {
		dtos = append(dtos, EventDTO{
			ID:             event.ID().Bytes(),
			TrackingNumber: trackingNumber,
			Seq:            event.Seq(),
			Status:         event.Status().String(),
			Location:       event.Location(),
			Description:    event.Description(),
			OccurredAt:     event.OccurredAt(),
		})
	}
	return dtos
}

// toDomain converts database rows to a shipment aggregate. Event rows must
// already be ordered by sequence.
func toDomain(dto ShipmentDTO, eventDTOs []EventDTO) (*shipment.Shipment, error) {
	trackingNumber, err := kernel.NewTrackingNumber(dto.TrackingNumber)
	if err != nil {
		return nil, err
	}

	sender, err := shipment.NewParty(dto.Sender.Name, dto.Sender.Phone, dto.Sender.Address)
	if err != nil {
		return nil, err
	}

	receiver, err := shipment.NewParty(dto.Receiver.Name, dto.Receiver.Phone, dto.Receiver.Address)
	if err != nil {
		return nil, err
	}

	weight, err := shipment.NewWeight(dto.WeightKg)
	if err != nil {
		return nil, err
	}

	dimensions, err := shipment.NewDimensions(dto.LengthCm, dto.WidthCm, dto.HeightCm)
	if err != nil {
		return nil, err
	}

	serviceType, err := shipment.ServiceTypeFromString(dto.ServiceType)
	if err != nil {
		return nil, err
	}

	cost, err := kernel.MoneyFromCents(dto.CostCents)
	if err != nil {
		return nil, err
	}

	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	events := make([]shipment.Event, 0, len(eventDTOs))
	for _, eventDTO := range eventDTOs {
		event, eventErr := eventToDomain(eventDTO)
		if eventErr != nil {
			return nil, eventErr
		}
		events = append(events, event)
	}

	return shipment.RestoreShipment(
		trackingNumber,
		sender,
		receiver,
		dto.PackageDetails,
		weight,
		dimensions,
		serviceType,
		cost,
		dto.HubKey,
		dto.RouteKey,
		dto.PickupDate,
		dto.EstimatedDelivery,
		dto.ActualDelivery,
		dto.CreatedAt,
		status,
		events,
		dto.Version,
	)
}

func eventToDomain(dto EventDTO) (shipment.Event, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return shipment.Event{}, err
	}

	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return shipment.Event{}, err
	}

	return shipment.RestoreEvent(id, dto.Seq, status, dto.Location, dto.Description, dto.OccurredAt)
}
