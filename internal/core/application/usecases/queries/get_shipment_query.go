package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetShipmentQueryIsNotConstructed = errors.New(
	"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
)

// GetShipmentQuery retrieves a single shipment with its full event history.
//
// Example:
//
//	query, err := NewGetShipmentQuery(trackingNumber)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetShipmentQueryHandler(db)
//	shipment, err := handler.Handle(ctx, query)
type GetShipmentQuery struct { //nolint:recvcheck //using for validation
	trackingNumber kernel.TrackingNumber

	guard guard.ConstructorGuard
}

// NewGetShipmentQuery creates a query for one shipment by tracking number.
func NewGetShipmentQuery(trackingNumber kernel.TrackingNumber) (GetShipmentQuery, error) {
	query := GetShipmentQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setTrackingNumber(trackingNumber); err != nil {
		return GetShipmentQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

// TrackingNumber returns the requested tracking number.
func (q GetShipmentQuery) TrackingNumber() kernel.TrackingNumber {
	return q.trackingNumber
}

func (q *GetShipmentQuery) setTrackingNumber(trackingNumber kernel.TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}

	q.trackingNumber = trackingNumber
	return nil
}

// ShipmentEventResponse is the read model of one tracking event.
type ShipmentEventResponse struct {
	Seq         int
	Status      string
	Location    string
	Description string
	OccurredAt  time.Time
}

// GetShipmentQueryResponse is the read model of a shipment. The events are
// ordered by sequence; the shipment's status always equals the status of the
// last event.
type GetShipmentQueryResponse struct {
	TrackingNumber    string
	SenderName        string
	SenderPhone       string
	SenderAddress     string
	ReceiverName      string
	ReceiverPhone     string
	ReceiverAddress   string
	PackageDetails    string
	WeightKg          float64
	LengthCm          float64
	WidthCm           float64
	HeightCm          float64
	ServiceType       string
	Cost              float64
	HubKey            string
	RouteKey          string
	PickupDate        *time.Time
	EstimatedDelivery *time.Time
	ActualDelivery    *time.Time
	Status            string
	CreatedAt         time.Time
	Events            []ShipmentEventResponse
}
