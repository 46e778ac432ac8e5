// Package services provides domain services that coordinate business
// operations across multiple aggregates.
//
// The package includes:
//   - DirectoryResolver: validates hub and route references against the
//     directory before a shipment may point at them
//
// Domain services hold logic that spans aggregates and therefore belongs to
// no single aggregate root.
package services
