package queries

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrGetDashboardStatsQueryIsNotConstructed = errors.New(
	"GetDashboardStatsQuery must be created via NewGetDashboardStatsQuery constructor",
)

// GetDashboardStatsQuery retrieves the operations overview: shipment counts
// per status plus directory and account totals.
//
// Example:
//
//	query := NewGetDashboardStatsQuery()
//	handler := NewGetDashboardStatsQueryHandler(db)
//
//	stats, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get dashboard stats: %w", err)
//	}
//	fmt.Printf("%d shipments in flight\n", stats.InTransitShipments)
type GetDashboardStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDashboardStatsQuery creates a parameterless dashboard query.
func NewGetDashboardStatsQuery() GetDashboardStatsQuery {
	return GetDashboardStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardStatsQueryIsNotConstructed)
}

// GetDashboardStatsQueryResponse is the operations overview read model.
type GetDashboardStatsQueryResponse struct {
	TotalShipments     int
	ShipmentsByStatus  map[string]int
	InTransitShipments int
	DeliveredShipments int
	ActiveUsers        int
	Hubs               int
	Routes             int
}
