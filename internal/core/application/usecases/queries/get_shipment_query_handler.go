package queries

import (
	"context"
	"database/sql"
	"errors"

	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetShipmentQueryHandler retrieves shipments from the read side of the store.
// Reads go straight to SQL and bypass the aggregate; the write side is the
// only path that mutates shipments.
type GetShipmentQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentQueryHandler creates a handler for single-shipment queries.
func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

// Handle executes the query. An unknown tracking number fails with
// ObjectNotFound.
func (h GetShipmentQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentQuery,
) (GetShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentQueryResponse{}, err
	}

	trackingNumber := query.TrackingNumber().String()

	var resp GetShipmentQueryResponse
	var costCents int64

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			tracking_number,
			sender_name, sender_phone, sender_address,
			receiver_name, receiver_phone, receiver_address,
			package_details,
			weight_kg, length_cm, width_cm, height_cm,
			service_type, cost_cents,
			hub_key, route_key,
			pickup_date, estimated_delivery, actual_delivery,
			status, created_at
		FROM shipments
		WHERE tracking_number = ?
	`, trackingNumber).Row()

	err := row.Scan(
		&resp.TrackingNumber,
		&resp.SenderName, &resp.SenderPhone, &resp.SenderAddress,
		&resp.ReceiverName, &resp.ReceiverPhone, &resp.ReceiverAddress,
		&resp.PackageDetails,
		&resp.WeightKg, &resp.LengthCm, &resp.WidthCm, &resp.HeightCm,
		&resp.ServiceType, &costCents,
		&resp.HubKey, &resp.RouteKey,
		&resp.PickupDate, &resp.EstimatedDelivery, &resp.ActualDelivery,
		&resp.Status, &resp.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetShipmentQueryResponse{}, errs.NewObjectNotFoundError("trackingNumber", trackingNumber)
	}
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}

	resp.Cost = float64(costCents) / 100

	events, err := h.loadEvents(ctx, trackingNumber)
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}
	resp.Events = events

	return resp, nil
}

func (h GetShipmentQueryHandler) loadEvents(
	ctx context.Context,
	trackingNumber string,
) ([]ShipmentEventResponse, error) {
	events := make([]ShipmentEventResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			seq,
			status,
			location,
			description,
			occurred_at
		FROM shipment_events
		WHERE tracking_number = ?
		ORDER BY seq
	`, trackingNumber).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var event ShipmentEventResponse
		if err = rows.Scan(
			&event.Seq,
			&event.Status,
			&event.Location,
			&event.Description,
			&event.OccurredAt,
		); err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
