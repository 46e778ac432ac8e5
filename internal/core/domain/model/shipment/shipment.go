package shipment

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
	// created through NewShipment or RestoreShipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")
)

// initialEventDescription is the detail of the first event every shipment receives.
const initialEventDescription = "Shipment created"

// Shipment is the central aggregate of the system. It owns the shipment's
// status and its append-only event history and is the sole writer of both.
//
// Invariants maintained by this type:
//   - The tracking number is assigned exactly once, at construction.
//   - The event sequence grows monotonically and is never reordered or mutated.
//   - The current status always equals the status of the most recent event;
//     the two are not independently settable.
//   - Status changes happen only through TransitionTo, which consults the
//     state graph and appends the matching event in the same call.
type Shipment struct {
	trackingNumber kernel.TrackingNumber

	sender   Party
	receiver Party

	packageDetails string
	weight         Weight
	dimensions     Dimensions

	serviceType ServiceType
	cost        kernel.Money

	hubKey   string
	routeKey string

	pickupDate        *time.Time
	estimatedDelivery *time.Time
	actualDelivery    *time.Time
	createdAt         time.Time

	status Status
	events []Event

	// version is the optimistic concurrency token, 1 for a fresh
	// aggregate and bumped by the persistence layer on every update;
	// flushedEvents marks how many events are already persisted so
	// repositories can append only the new tail.
	version       int
	flushedEvents int

	isConstructed bool
}

// NewShipment creates a shipment in Created status with its first event
// already appended. Hub and route references are attached afterwards via
// AssignHub/AssignRoute, once the caller has resolved them.
func NewShipment(
	trackingNumber kernel.TrackingNumber,
	sender Party,
	receiver Party,
	packageDetails string,
	weight Weight,
	dimensions Dimensions,
	serviceType ServiceType,
	cost kernel.Money,
) (*Shipment, error) {
	now := time.Now().UTC()

	s := &Shipment{
		status:        Created,
		createdAt:     now,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setTrackingNumber(trackingNumber),
		s.setSender(sender),
		s.setReceiver(receiver),
		s.setPackageDetails(packageDetails),
		s.setServiceType(serviceType),
	); err != nil {
		return nil, err
	}

	s.weight = weight
	s.dimensions = dimensions
	s.cost = cost
	s.recalculateEstimatedDelivery()
	s.appendEvent(Created, "", initialEventDescription, now)

	return s, nil
}

// RestoreShipment rebuilds a shipment from persistence, including its event
// history and optimistic concurrency version. Events must already be in
// sequence order.
func RestoreShipment(
	trackingNumber kernel.TrackingNumber,
	sender Party,
	receiver Party,
	packageDetails string,
	weight Weight,
	dimensions Dimensions,
	serviceType ServiceType,
	cost kernel.Money,
	hubKey string,
	routeKey string,
	pickupDate *time.Time,
	estimatedDelivery *time.Time,
	actualDelivery *time.Time,
	createdAt time.Time,
	status Status,
	events []Event,
	version int,
) (*Shipment, error) {
	s := &Shipment{
		weight:            weight,
		dimensions:        dimensions,
		cost:              cost,
		hubKey:            hubKey,
		routeKey:          routeKey,
		pickupDate:        pickupDate,
		estimatedDelivery: estimatedDelivery,
		actualDelivery:    actualDelivery,
		createdAt:         createdAt,
		isConstructed:     true,
	}

	if err := errors.Join(
		s.setTrackingNumber(trackingNumber),
		s.setSender(sender),
		s.setReceiver(receiver),
		s.setPackageDetails(packageDetails),
		s.setServiceType(serviceType),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if len(events) == 0 {
		return nil, errs.NewValueIsRequiredError("events")
	}
	if last := events[len(events)-1].Status(); last != status {
		return nil, errs.NewValueIsInvalidErrorWithCause("status",
			errors.New("status does not match the most recent event"))
	}
	if version < 1 {
		return nil, errs.NewVersionIsInvalidErrorWithCause("version")
	}

	s.status = status
	s.events = events
	s.version = version
	s.flushedEvents = len(events)
	return s, nil
}

// Validate ensures the Shipment instance was properly constructed.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two shipments by tracking number.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.trackingNumber.IsEqual(other.trackingNumber)
}

// TrackingNumber returns the shipment's immutable external key.
func (s *Shipment) TrackingNumber() kernel.TrackingNumber {
	return s.trackingNumber
}

// Sender returns the sending party.
func (s *Shipment) Sender() Party {
	return s.sender
}

// Receiver returns the receiving party.
func (s *Shipment) Receiver() Party {
	return s.receiver
}

// PackageDetails returns the free-text description of the package contents.
func (s *Shipment) PackageDetails() string {
	return s.packageDetails
}

// Weight returns the package weight.
func (s *Shipment) Weight() Weight {
	return s.weight
}

// Dimensions returns the package dimensions.
func (s *Shipment) Dimensions() Dimensions {
	return s.dimensions
}

// ServiceType returns the declared service tier.
func (s *Shipment) ServiceType() ServiceType {
	return s.serviceType
}

// Cost returns the shipping cost.
func (s *Shipment) Cost() kernel.Money {
	return s.cost
}

// HubKey returns the referenced hub key, or "" when none is assigned.
func (s *Shipment) HubKey() string {
	return s.hubKey
}

// RouteKey returns the referenced route key, or "" when none is assigned.
func (s *Shipment) RouteKey() string {
	return s.routeKey
}

// PickupDate returns the scheduled pickup time, if any.
func (s *Shipment) PickupDate() *time.Time {
	return s.pickupDate
}

// EstimatedDelivery returns the promised delivery time derived from the
// service tier and pickup date.
func (s *Shipment) EstimatedDelivery() *time.Time {
	return s.estimatedDelivery
}

// ActualDelivery returns the time the shipment reached Delivered, if it has.
func (s *Shipment) ActualDelivery() *time.Time {
	return s.actualDelivery
}

// CreatedAt returns the creation time of the shipment.
func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

// Status returns the current status of the shipment.
func (s *Shipment) Status() Status {
	return s.status
}

// Events returns a copy of the full event history in sequence order.
func (s *Shipment) Events() []Event {
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

// Version returns the optimistic concurrency token of the loaded snapshot.
func (s *Shipment) Version() int {
	return s.version
}

// UncommittedEvents returns the events appended since the aggregate was
// constructed or last flushed. Repositories persist exactly this tail.
func (s *Shipment) UncommittedEvents() []Event {
	out := make([]Event, len(s.events)-s.flushedEvents)
	copy(out, s.events[s.flushedEvents:])
	return out
}

// MarkEventsFlushed records that the whole history is persisted.
// Called by repositories after a successful write.
func (s *Shipment) MarkEventsFlushed() {
	s.flushedEvents = len(s.events)
}

// TransitionTo moves the shipment to target and appends the matching event.
// The status update and the event append are one indivisible operation: no
// caller can ever observe one without the other.
//
// Returns InvalidTransitionError when the state graph forbids the move,
// including every attempt to leave a terminal state.
func (s *Shipment) TransitionTo(target Status, location, description string) error {
	newStatus, err := s.status.TransitionTo(target)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	s.appendEvent(newStatus, location, description, now)
	s.status = newStatus
	if newStatus == Delivered {
		s.actualDelivery = &now
	}
	return nil
}

// AddEvent appends an informational checkpoint event carrying the current
// status. The status field is untouched; AddEvent exists precisely for scans
// and remarks that are not status changes.
func (s *Shipment) AddEvent(location, description string) error {
	if location == "" && description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	s.appendEvent(s.status, location, description, time.Now().UTC())
	return nil
}

// ChangeSender replaces the sending party.
func (s *Shipment) ChangeSender(sender Party) error {
	return s.setSender(sender)
}

// ChangeReceiver replaces the receiving party.
func (s *Shipment) ChangeReceiver(receiver Party) error {
	return s.setReceiver(receiver)
}

// ChangePackage replaces the package description, weight and dimensions.
func (s *Shipment) ChangePackage(details string, weight Weight, dimensions Dimensions) error {
	if err := s.setPackageDetails(details); err != nil {
		return err
	}
	s.weight = weight
	s.dimensions = dimensions
	return nil
}

// ChangeServiceType replaces the service tier and recomputes the estimated
// delivery date.
func (s *Shipment) ChangeServiceType(serviceType ServiceType) error {
	if err := s.setServiceType(serviceType); err != nil {
		return err
	}
	s.recalculateEstimatedDelivery()
	return nil
}

// ChangeCost replaces the shipping cost.
func (s *Shipment) ChangeCost(cost kernel.Money) {
	s.cost = cost
}

// SchedulePickup sets the pickup date and recomputes the estimated delivery date.
func (s *Shipment) SchedulePickup(pickupDate time.Time) error {
	if pickupDate.IsZero() {
		return errs.NewValueIsRequiredError("pickupDate")
	}
	t := pickupDate.UTC()
	s.pickupDate = &t
	s.recalculateEstimatedDelivery()
	return nil
}

// AssignHub attaches an already-resolved hub reference.
// Resolution against the directory is the caller's responsibility and
// happens at assignment time only.
func (s *Shipment) AssignHub(hubKey string) error {
	if hubKey == "" {
		return errs.NewValueIsRequiredError("hubKey")
	}
	s.hubKey = hubKey
	return nil
}

// AssignRoute attaches an already-resolved route reference.
func (s *Shipment) AssignRoute(routeKey string) error {
	if routeKey == "" {
		return errs.NewValueIsRequiredError("routeKey")
	}
	s.routeKey = routeKey
	return nil
}

func (s *Shipment) appendEvent(status Status, location, description string, occurredAt time.Time) {
	s.events = append(s.events, newEvent(len(s.events)+1, status, location, description, occurredAt))
}

func (s *Shipment) recalculateEstimatedDelivery() {
	base := s.createdAt
	if s.pickupDate != nil {
		base = *s.pickupDate
	}
	eta := base.AddDate(0, 0, s.serviceType.TransitDays())
	s.estimatedDelivery = &eta
}

func (s *Shipment) setTrackingNumber(trackingNumber kernel.TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}
	s.trackingNumber = trackingNumber
	return nil
}

func (s *Shipment) setSender(sender Party) error {
	if err := sender.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("sender", err)
	}
	s.sender = sender
	return nil
}

func (s *Shipment) setReceiver(receiver Party) error {
	if err := receiver.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("receiver", err)
	}
	s.receiver = receiver
	return nil
}

func (s *Shipment) setPackageDetails(details string) error {
	if details == "" {
		return errs.NewValueIsRequiredError("packageDetails")
	}
	s.packageDetails = details
	return nil
}

func (s *Shipment) setServiceType(serviceType ServiceType) error {
	if err := serviceType.Validate(); err != nil {
		return err
	}
	s.serviceType = serviceType
	return nil
}
