package account

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Role is the closed set of permission roles a user may hold.
// Roles only change through an explicit administrative operation.
type Role int

const (
	// RoleAdmin may manage users, hubs, routes and every shipment.
	RoleAdmin Role = iota + 1
	// RoleHubManager runs a hub and its shipments.
	RoleHubManager
	// RoleDriver moves shipments and records checkpoint scans.
	RoleDriver
	// RoleOperations monitors shipments and handles back-office work.
	RoleOperations
)

func roleStrings() map[Role]string {
	return map[Role]string{
		RoleAdmin:      "admin",
		RoleHubManager: "hub_manager",
		RoleDriver:     "driver",
		RoleOperations: "operations",
	}
}

// RoleFromString parses the external string form of a role.
func RoleFromString(s string) (Role, error) {
	for role, str := range roleStrings() {
		if str == s {
			return role, nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks that the role is a defined value.
func (r Role) Validate() error {
	if _, ok := roleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the external name of the role, e.g. "hub_manager".
func (r Role) String() string {
	if str, ok := roleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
