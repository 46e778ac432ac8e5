package directory

import (
	"errors"
	"math"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	// ErrHubIsNotConstructed is returned when a Hub instance was not created
	// through NewHub or RestoreHub.
	ErrHubIsNotConstructed = errors.New("Hub must be created via NewHub or RestoreHub")
)

// HubStatus is the operational state of a hub.
type HubStatus int

const (
	// HubActive hubs accept shipment assignments.
	HubActive HubStatus = iota + 1
	// HubInactive hubs are closed; existing assignments stay valid.
	HubInactive
	// HubMaintenance hubs are temporarily out of rotation.
	HubMaintenance
)

func hubStatusStrings() map[HubStatus]string {
	return map[HubStatus]string{
		HubActive:      "active",
		HubInactive:    "inactive",
		HubMaintenance: "maintenance",
	}
}

// HubStatusFromString parses the external string form of a hub status.
func HubStatusFromString(s string) (HubStatus, error) {
	for status, str := range hubStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return 0, errs.NewValueIsInvalidError("hubStatus")
}

// Validate checks that the status is a defined value.
func (s HubStatus) Validate() error {
	if _, ok := hubStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("hubStatus")
	}
	return nil
}

// String returns the external name of the status, e.g. "maintenance".
func (s HubStatus) String() string {
	if str, ok := hubStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Hub is a physical sorting facility that shipments pass through.
//
// The business key is a short human-assigned code such as "HUB-SEA-01".
// Shipments reference hubs by this key, never by the surrogate UUID, so a
// hub's key is immutable once created.
type Hub struct {
	id        kernel.UUID
	key       string
	name      string
	address   string
	phone     string
	capacity  int
	status    HubStatus
	createdAt time.Time

	isConstructed bool
}

// NewHub creates an active hub.
func NewHub(id kernel.UUID, key, name, address, phone string, capacity int) (*Hub, error) {
	h := &Hub{
		phone:         phone,
		status:        HubActive,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		h.setID(id),
		h.setKey(key),
		h.setName(name),
		h.setAddress(address),
		h.setCapacity(capacity),
	); err != nil {
		return nil, err
	}

	return h, nil
}

// RestoreHub rebuilds a hub from persistence.
func RestoreHub(
	id kernel.UUID,
	key, name, address, phone string,
	capacity int,
	status HubStatus,
	createdAt time.Time,
) (*Hub, error) {
	h := &Hub{
		phone:         phone,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		h.setID(id),
		h.setKey(key),
		h.setName(name),
		h.setAddress(address),
		h.setCapacity(capacity),
		h.setStatus(status),
	); err != nil {
		return nil, err
	}

	return h, nil
}

// Validate ensures the Hub instance was properly constructed.
func (h *Hub) Validate() error {
	if h == nil || !h.isConstructed {
		return ErrHubIsNotConstructed
	}
	return nil
}

// IsEqual compares two hubs by identifier.
func (h *Hub) IsEqual(other *Hub) bool {
	return other != nil && h.id.IsEqual(other.id)
}

// ID returns the hub's surrogate identifier.
func (h *Hub) ID() kernel.UUID {
	return h.id
}

// Key returns the immutable business key, e.g. "HUB-SEA-01".
func (h *Hub) Key() string {
	return h.key
}

// Name returns the hub's display name.
func (h *Hub) Name() string {
	return h.name
}

// Address returns the hub's street address.
func (h *Hub) Address() string {
	return h.address
}

// Phone returns the hub's contact phone, possibly empty.
func (h *Hub) Phone() string {
	return h.phone
}

// Capacity returns the maximum number of shipments the hub holds at once.
func (h *Hub) Capacity() int {
	return h.capacity
}

// Status returns the hub's operational state.
func (h *Hub) Status() HubStatus {
	return h.status
}

// CreatedAt returns the hub creation time.
func (h *Hub) CreatedAt() time.Time {
	return h.createdAt
}

// ChangeStatus moves the hub between operational states. Any state may
// follow any other; shipments already assigned to the hub are unaffected.
func (h *Hub) ChangeStatus(status HubStatus) error {
	return h.setStatus(status)
}

// ChangeDetails updates the mutable descriptive fields. The key is fixed.
func (h *Hub) ChangeDetails(name, address, phone string, capacity int) error {
	if err := errors.Join(
		h.setName(name),
		h.setAddress(address),
		h.setCapacity(capacity),
	); err != nil {
		return err
	}
	h.phone = phone
	return nil
}

func (h *Hub) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	h.id = id
	return nil
}

func (h *Hub) setKey(key string) error {
	if key == "" {
		return errs.NewValueIsRequiredError("key")
	}
	h.key = key
	return nil
}

func (h *Hub) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	h.name = name
	return nil
}

func (h *Hub) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	h.address = address
	return nil
}

func (h *Hub) setCapacity(capacity int) error {
	if capacity < 0 {
		return errs.NewValueIsOutOfRangeError("capacity", capacity, 0, math.MaxInt)
	}
	h.capacity = capacity
	return nil
}

func (h *Hub) setStatus(status HubStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	h.status = status
	return nil
}
