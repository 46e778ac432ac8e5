package shipment

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// Event is an immutable, timestamped record in a shipment's history.
// Every event carries the shipment status that was current when the event was
// appended, so "current status equals the status of the most recent event"
// holds for the whole history, checkpoint scans included.
//
// Events are appended by the Shipment aggregate only and are never reordered
// or mutated afterwards. Seq is 1-based and strictly increasing per shipment.
type Event struct {
	id          kernel.UUID
	seq         int
	status      Status
	location    string
	description string
	occurredAt  time.Time
}

// RestoreEvent rebuilds an event from persistence.
func RestoreEvent(
	id kernel.UUID,
	seq int,
	status Status,
	location string,
	description string,
	occurredAt time.Time,
) (Event, error) {
	if err := id.Validate(); err != nil {
		return Event{}, err
	}
	if seq < 1 {
		return Event{}, errs.NewValueIsOutOfRangeError("seq", seq, 1, int(^uint(0)>>1))
	}
	if err := status.Validate(); err != nil {
		return Event{}, err
	}
	if occurredAt.IsZero() {
		return Event{}, errs.NewValueIsRequiredError("occurredAt")
	}

	return Event{
		id:          id,
		seq:         seq,
		status:      status,
		location:    location,
		description: description,
		occurredAt:  occurredAt,
	}, nil
}

// newEvent creates the next event in a shipment's history.
func newEvent(seq int, status Status, location, description string, occurredAt time.Time) Event {
	return Event{
		id:          kernel.NewUUID(),
		seq:         seq,
		status:      status,
		location:    location,
		description: description,
		occurredAt:  occurredAt,
	}
}

// ID returns the event's unique identifier.
func (e Event) ID() kernel.UUID {
	return e.id
}

// Seq returns the 1-based position of the event in the shipment's history.
func (e Event) Seq() int {
	return e.seq
}

// Status returns the shipment status carried by the event.
func (e Event) Status() Status {
	return e.status
}

// Location returns the optional free-text location of the event.
func (e Event) Location() string {
	return e.location
}

// Description returns the optional free-text detail of the event.
func (e Event) Description() string {
	return e.description
}

// OccurredAt returns the event timestamp (UTC).
func (e Event) OccurredAt() time.Time {
	return e.occurredAt
}
