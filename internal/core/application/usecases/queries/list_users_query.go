package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrListUsersQueryIsNotConstructed = errors.New(
	"ListUsersQuery must be created via NewListUsersQuery constructor",
)

// ListUsersQuery retrieves a page of user accounts. The read model never
// includes the password credential.
type ListUsersQuery struct { //nolint:recvcheck //using for validation
	skip  int
	limit int

	guard guard.ConstructorGuard
}

// NewListUsersQuery creates a paging query over users. The same skip/limit
// rules apply as for shipment listings.
func NewListUsersQuery(skip, limit int) (ListUsersQuery, error) {
	query := ListUsersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setSkip(skip),
		query.setLimit(limit),
	); err != nil {
		return ListUsersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListUsersQuery) Validate() error {
	return q.guard.Validate(ErrListUsersQueryIsNotConstructed)
}

// Skip returns the number of rows to pass over.
func (q ListUsersQuery) Skip() int {
	return q.skip
}

// Limit returns the page size after defaulting and clamping.
func (q ListUsersQuery) Limit() int {
	return q.limit
}

func (q *ListUsersQuery) setSkip(skip int) error {
	if skip < 0 {
		return errs.NewValueIsOutOfRangeError("skip", skip, 0, "unbounded")
	}

	q.skip = skip
	return nil
}

func (q *ListUsersQuery) setLimit(limit int) error {
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

// ListUsersItemResponse is the read model of one user account.
type ListUsersItemResponse struct {
	ID        kernel.UUID
	Email     string
	FullName  string
	Role      string
	Phone     string
	IsActive  bool
	CreatedAt time.Time
}

// ListUsersQueryResponse is one page of users.
type ListUsersQueryResponse struct {
	Users   []ListUsersItemResponse
	HasMore bool
}
