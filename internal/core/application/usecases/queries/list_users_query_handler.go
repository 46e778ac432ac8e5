package queries

import (
	"context"

	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListUsersQueryHandler retrieves pages of user accounts. The password hash
// column is never selected.
type ListUsersQueryHandler struct {
	db *gorm.DB
}

// NewListUsersQueryHandler creates a handler for user listings.
func NewListUsersQueryHandler(db *gorm.DB) ListUsersQueryHandler {
	return ListUsersQueryHandler{db: db}
}

// Handle executes the listing query, ordered by account creation time with
// the identifier as tiebreaker.
func (h ListUsersQueryHandler) Handle(
	ctx context.Context,
	query ListUsersQuery,
) (ListUsersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListUsersQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			email,
			full_name,
			role,
			phone,
			is_active,
			created_at
		FROM users
		ORDER BY created_at, id
		LIMIT ? OFFSET ?
	`, query.Limit()+1, query.Skip()).Rows()
	if err != nil {
		return ListUsersQueryResponse{}, err
	}
	defer rows.Close()

	users := make([]ListUsersItemResponse, 0, query.Limit())
	for rows.Next() {
		var item ListUsersItemResponse
		var id uuid.UUID

		if err = rows.Scan(
			&id,
			&item.Email,
			&item.FullName,
			&item.Role,
			&item.Phone,
			&item.IsActive,
			&item.CreatedAt,
		); err != nil {
			return ListUsersQueryResponse{}, err
		}

		userID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return ListUsersQueryResponse{}, idErr
		}
		item.ID = userID
		users = append(users, item)
	}

	if err = rows.Err(); err != nil {
		return ListUsersQueryResponse{}, err
	}

	hasMore := len(users) > query.Limit()
	if hasMore {
		users = users[:query.Limit()]
	}

	return ListUsersQueryResponse{Users: users, HasMore: hasMore}, nil
}
