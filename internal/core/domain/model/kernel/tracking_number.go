package kernel

import (
	"crypto/rand"
	"fmt"
	"regexp"

	"logistics/internal/pkg/errs"
)

const (
	// trackingNumberPrefix is the stable, human-readable prefix of every tracking number.
	trackingNumberPrefix = "SH"
	// trackingNumberSuffixLen is the fixed width of the numeric suffix.
	trackingNumberSuffixLen = 8
)

// trackingNumberPattern matches the complete external form, e.g. "SH12345678".
var trackingNumberPattern = regexp.MustCompile(`^SH[0-9]{8}$`)

// ErrTrackingNumberIsNotConstructed is returned when attempting to use an improperly
// initialized TrackingNumber. Tracking numbers must be created via NewTrackingNumber
// or GenerateTrackingNumber.
var ErrTrackingNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"tracking number must be created via NewTrackingNumber or GenerateTrackingNumber")

// TrackingNumber is the unique, immutable external-facing key of a shipment.
// It follows a fixed human-readable pattern: the "SH" prefix followed by an
// eight-digit suffix. A tracking number is assigned exactly once, at shipment
// creation, and is never reused even after the shipment is deleted.
//
// The zero value is invalid; use NewTrackingNumber to parse an existing number
// or GenerateTrackingNumber to produce a fresh candidate. Uniqueness of a
// candidate is not a property of this value object: it is enforced by the
// persistence layer through an atomic reservation.
type TrackingNumber struct {
	value string
}

// NewTrackingNumber parses a tracking number from its string form.
// Returns a validation error if the string does not match the pattern.
func NewTrackingNumber(s string) (TrackingNumber, error) {
	if s == "" {
		return TrackingNumber{}, errs.NewValueIsRequiredError("trackingNumber")
	}
	if !trackingNumberPattern.MatchString(s) {
		return TrackingNumber{}, errs.NewValueIsInvalidErrorWithCause("trackingNumber",
			fmt.Errorf("%q does not match pattern %s", s, trackingNumberPattern))
	}
	return TrackingNumber{value: s}, nil
}

// GenerateTrackingNumber produces a fresh candidate tracking number with a
// uniformly random suffix. The caller must reserve it atomically against the
// persistence layer before treating it as issued.
func GenerateTrackingNumber() TrackingNumber {
	suffix := make([]byte, 0, trackingNumberSuffixLen)
	buf := make([]byte, trackingNumberSuffixLen)
	for len(suffix) < trackingNumberSuffixLen {
		// crypto/rand.Read only fails if the platform entropy source is
		// broken, which is not recoverable here.
		if _, err := rand.Read(buf); err != nil {
			panic(fmt.Sprintf("tracking number generation: %v", err))
		}
		for _, b := range buf {
			// Bytes 250..255 would skew b%10 toward the low digits, so
			// they are redrawn.
			if b >= 250 {
				continue
			}
			suffix = append(suffix, '0'+b%10)
			if len(suffix) == trackingNumberSuffixLen {
				break
			}
		}
	}
	return TrackingNumber{value: trackingNumberPrefix + string(suffix)}
}

// String returns the external form of the tracking number, e.g. "SH12345678".
func (t TrackingNumber) String() string {
	return t.value
}

// IsEqual compares two tracking numbers for equality.
func (t TrackingNumber) IsEqual(other TrackingNumber) bool {
	return t.value == other.value
}

// Validate checks that the tracking number was produced by a constructor.
func (t TrackingNumber) Validate() error {
	if t.value == "" {
		return ErrTrackingNumberIsNotConstructed
	}
	return nil
}
