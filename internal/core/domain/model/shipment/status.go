package shipment

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
// It implements a state machine with a single transition table so the
// delivery workflow is defined in exactly one place.
//
// State transitions:
//
//	Created ──> InTransit ──> AtHub ──> OutForDelivery ──> Delivered ──> Returned
//	                ^           │             │
//	                └───────────┘             └──> Returned
//	(Cancelled is reachable from any non-terminal state)
//
// Delivered may still move to Returned; Cancelled and Returned accept no
// further transitions. Status is a value object that validates state
// transitions and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status assigned at shipment creation.
	Created

	// InTransit indicates the shipment is moving between facilities.
	InTransit

	// AtHub indicates the shipment is being processed at a hub.
	AtHub

	// OutForDelivery indicates the shipment left the last hub toward the receiver.
	OutForDelivery

	// Delivered indicates the shipment reached the receiver.
	// Only a return may follow.
	Delivered

	// Cancelled indicates the shipment was cancelled before delivery.
	// This is a terminal state.
	Cancelled

	// Returned indicates the shipment came back to the sender.
	// This is a terminal state; redelivery is deliberately not modeled.
	Returned
)

// statusStrings maps Status values to their external string form, which is
// used both for persistence and on the wire.
func statusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Created:        "created",
		InTransit:      "in_transit",
		AtHub:          "at_hub",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
		Returned:       "returned",
	}
}

// transitions is the single source of truth for the state graph.
// A status missing from the map, or mapped to an empty set, is terminal.
func transitions() map[Status][]Status {
	return map[Status][]Status{
		Created:        {InTransit, Cancelled},
		InTransit:      {AtHub, OutForDelivery, Cancelled},
		AtHub:          {InTransit, OutForDelivery, Cancelled},
		OutForDelivery: {Delivered, Returned, Cancelled},
		Delivered:      {Returned},
	}
}

// StatusFromString parses the external string form of a status.
// Unknown is not accepted: it never travels over the wire or into storage.
func StatusFromString(s string) (Status, error) {
	for status, str := range statusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is a defined, non-Unknown state.
func (s Status) Validate() error {
	if _, ok := statusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the external name of the status, e.g. "out_for_delivery".
// Safe to call on any value; undefined values print as "unknown".
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are accepted from s.
func (s Status) IsTerminal() bool {
	if s.Validate() != nil {
		return false
	}
	return len(transitions()[s]) == 0
}

// CanTransitionTo reports whether target is directly reachable from s
// in the state graph.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range transitions()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo validates and performs a transition to target.
//
// Returns:
//   - (target, nil) when the state graph permits the move
//   - (Unknown, InvalidTransitionError) when it does not, including every
//     attempt to leave Delivered (except to Returned), Cancelled or Returned
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewInvalidTransitionError(s.String(), target.String())
	}
	return target, nil
}
