package queries

import (
	"context"

	"logistics/internal/core/domain/model/shipment"

	"gorm.io/gorm"
)

// GetDashboardStatsQueryHandler computes the operations overview with
// aggregate SQL; nothing here loads full aggregates.
type GetDashboardStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetDashboardStatsQueryHandler creates a handler for dashboard queries.
func NewGetDashboardStatsQueryHandler(db *gorm.DB) GetDashboardStatsQueryHandler {
	return GetDashboardStatsQueryHandler{db: db}
}

// Handle executes the dashboard query. Statuses with no shipments appear in
// the per-status map with a zero count.
func (h GetDashboardStatsQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardStatsQuery,
) (GetDashboardStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	resp := GetDashboardStatsQueryResponse{
		ShipmentsByStatus: map[string]int{
			shipment.Created.String():        0,
			shipment.InTransit.String():      0,
			shipment.AtHub.String():          0,
			shipment.OutForDelivery.String(): 0,
			shipment.Delivered.String():      0,
			shipment.Cancelled.String():      0,
			shipment.Returned.String():       0,
		},
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM shipments
		GROUP BY status
	`).Rows()
	if err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int
		if err = rows.Scan(&status, &count); err != nil {
			return GetDashboardStatsQueryResponse{}, err
		}
		resp.ShipmentsByStatus[status] = count
		resp.TotalShipments += count
	}
	if err = rows.Err(); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	resp.InTransitShipments = resp.ShipmentsByStatus[shipment.InTransit.String()]
	resp.DeliveredShipments = resp.ShipmentsByStatus[shipment.Delivered.String()]

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM users WHERE is_active),
			(SELECT COUNT(*) FROM hubs),
			(SELECT COUNT(*) FROM routes)
	`).Row()
	if err = row.Scan(&resp.ActiveUsers, &resp.Hubs, &resp.Routes); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	return resp, nil
}
