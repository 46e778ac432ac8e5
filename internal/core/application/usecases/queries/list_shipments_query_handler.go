package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListShipmentsQueryHandler retrieves pages of shipments.
// It fetches one row beyond the requested limit to learn whether a next
// page exists without a second count query.
type ListShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewListShipmentsQueryHandler creates a handler for shipment listings.
func NewListShipmentsQueryHandler(db *gorm.DB) ListShipmentsQueryHandler {
	return ListShipmentsQueryHandler{db: db}
}

// Handle executes the listing query. A page past the end of the data is an
// empty page, not an error.
func (h ListShipmentsQueryHandler) Handle(
	ctx context.Context,
	query ListShipmentsQuery,
) (ListShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListShipmentsQueryResponse{}, err
	}

	sqlQuery := `
		SELECT
			tracking_number,
			sender_name,
			receiver_name,
			service_type,
			status,
			hub_key,
			route_key,
			estimated_delivery,
			created_at
		FROM shipments
	`
	args := make([]any, 0, 3)

	if query.Status() != "" {
		sqlQuery += ` WHERE status = ?`
		args = append(args, query.Status())
	}

	sqlQuery += ` ORDER BY created_at, tracking_number LIMIT ? OFFSET ?`
	args = append(args, query.Limit()+1, query.Skip())

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return ListShipmentsQueryResponse{}, err
	}
	defer rows.Close()

	shipments := make([]ListShipmentsItemResponse, 0, query.Limit())
	for rows.Next() {
		var item ListShipmentsItemResponse
		if err = rows.Scan(
			&item.TrackingNumber,
			&item.SenderName,
			&item.ReceiverName,
			&item.ServiceType,
			&item.Status,
			&item.HubKey,
			&item.RouteKey,
			&item.EstimatedDelivery,
			&item.CreatedAt,
		); err != nil {
			return ListShipmentsQueryResponse{}, err
		}
		shipments = append(shipments, item)
	}

	if err = rows.Err(); err != nil {
		return ListShipmentsQueryResponse{}, err
	}

	hasMore := len(shipments) > query.Limit()
	if hasMore {
		shipments = shipments[:query.Limit()]
	}

	return ListShipmentsQueryResponse{Shipments: shipments, HasMore: hasMore}, nil
}
