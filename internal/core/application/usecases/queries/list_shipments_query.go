package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrListShipmentsQueryIsNotConstructed = errors.New(
	"ListShipmentsQuery must be created via NewListShipmentsQuery constructor",
)

// MaxListLimit caps how many rows one page may request. A larger limit is
// clamped, never rejected.
const MaxListLimit = 100

// DefaultListLimit applies when the caller does not name a page size.
const DefaultListLimit = 20

// ListShipmentsQuery retrieves a page of shipments.
//
// Pagination is skip/limit over a stable created_at ascending order, with
// tracking number as tiebreaker, so two shipments created in the same
// instant still page deterministically. An optional status filter narrows
// the listing.
//
// Example:
//
//	query, err := NewListShipmentsQuery(0, 20, "")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewListShipmentsQueryHandler(db)
//	page, err := handler.Handle(ctx, query)
//	fmt.Printf("%d shipments, more: %v\n", len(page.Shipments), page.HasMore)
type ListShipmentsQuery struct { //nolint:recvcheck //using for validation
	skip   int
	limit  int
	status string

	guard guard.ConstructorGuard
}

// NewListShipmentsQuery creates a paging query. Skip must be non-negative
// and limit positive; zero limit means DefaultListLimit. The status filter
// is optional; when present it must be a defined status.
func NewListShipmentsQuery(skip, limit int, status string) (ListShipmentsQuery, error) {
	query := ListShipmentsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setSkip(skip),
		query.setLimit(limit),
		query.setStatus(status),
	); err != nil {
		return ListShipmentsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListShipmentsQueryIsNotConstructed)
}

// Skip returns the number of rows to pass over.
func (q ListShipmentsQuery) Skip() int {
	return q.skip
}

// Limit returns the page size after defaulting and clamping.
func (q ListShipmentsQuery) Limit() int {
	return q.limit
}

// Status returns the optional status filter, possibly empty.
func (q ListShipmentsQuery) Status() string {
	return q.status
}

func (q *ListShipmentsQuery) setSkip(skip int) error {
	if skip < 0 {
		return errs.NewValueIsOutOfRangeError("skip", skip, 0, "unbounded")
	}

	q.skip = skip
	return nil
}

func (q *ListShipmentsQuery) setLimit(limit int) error {
	if limit < 0 {
		return errs.NewValueIsOutOfRangeError("limit", limit, 0, MaxListLimit)
	}
	if limit == 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	q.limit = limit
	return nil
}

func (q *ListShipmentsQuery) setStatus(status string) error {
	if status == "" {
		return nil
	}
	if _, err := shipment.StatusFromString(status); err != nil {
		return err
	}

	q.status = status
	return nil
}

// ListShipmentsItemResponse is the read model of one listing row. Listings
// omit the event history; GetShipmentQuery returns it.
type ListShipmentsItemResponse struct {
	TrackingNumber    string
	SenderName        string
	ReceiverName      string
	ServiceType       string
	Status            string
	HubKey            string
	RouteKey          string
	EstimatedDelivery *time.Time
	CreatedAt         time.Time
}

// ListShipmentsQueryResponse is one page of shipments. HasMore reports
// whether rows exist beyond this page.
type ListShipmentsQueryResponse struct {
	Shipments []ListShipmentsItemResponse
	HasMore   bool
}
