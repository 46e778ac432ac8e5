// Package shipment provides domain entities and business logic for shipment
// management in the logistics system. It implements the Shipment aggregate
// root with lifecycle management, state transitions and an append-only event
// history.
//
// The package includes:
//   - Shipment: The aggregate root owning tracking identity, package details,
//     status and event history
//   - Status: A state machine with a single transition table enforcing the
//     delivery workflow
//   - Event: An immutable, timestamped history record
//   - Party, Weight, Dimensions, ServiceType: validated value objects
//
// Key business rules:
//   - The tracking number is assigned exactly once, at creation
//   - Status follows the workflow created -> in_transit -> at_hub ->
//     out_for_delivery -> delivered, with cancellation from any non-terminal
//     state and returns from out_for_delivery or delivered
//   - Every status change appends exactly one event; the current status always
//     equals the status of the most recent event
//   - delivered, cancelled and returned are terminal
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package shipment
