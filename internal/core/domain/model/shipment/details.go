package shipment

import (
	"fmt"
	"math"

	"logistics/internal/pkg/errs"
)

// Party identifies one side of a shipment: the sender or the receiver.
// Name and address are required; phone is optional.
type Party struct {
	name    string
	phone   string
	address string
}

// NewParty creates a validated Party.
func NewParty(name, phone, address string) (Party, error) {
	if name == "" {
		return Party{}, errs.NewValueIsRequiredError("name")
	}
	if address == "" {
		return Party{}, errs.NewValueIsRequiredError("address")
	}
	return Party{name: name, phone: phone, address: address}, nil
}

// Name returns the party's display name.
func (p Party) Name() string { return p.name }

// Phone returns the party's phone number, possibly empty.
func (p Party) Phone() string { return p.phone }

// Address returns the party's postal address.
func (p Party) Address() string { return p.address }

// Validate checks that the party was built through NewParty.
func (p Party) Validate() error {
	if p.name == "" || p.address == "" {
		return errs.NewValueIsRequiredError("party must be created via NewParty")
	}
	return nil
}

// Weight is the package weight in kilograms. Non-negative.
type Weight struct {
	kg float64
}

// NewWeight creates a validated Weight.
func NewWeight(kg float64) (Weight, error) {
	if math.IsNaN(kg) || math.IsInf(kg, 0) {
		return Weight{}, errs.NewValueIsInvalidError("weight")
	}
	if kg < 0 {
		return Weight{}, errs.NewValueIsOutOfRangeError("weight", kg, 0, math.MaxFloat64)
	}
	return Weight{kg: kg}, nil
}

// Kg returns the weight in kilograms.
func (w Weight) Kg() float64 { return w.kg }

// Dimensions are the package measurements in centimeters. Each side is
// non-negative.
type Dimensions struct {
	length float64
	width  float64
	height float64
}

// NewDimensions creates validated Dimensions.
func NewDimensions(length, width, height float64) (Dimensions, error) {
	for name, v := range map[string]float64{
		"length": length,
		"width":  width,
		"height": height,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Dimensions{}, errs.NewValueIsInvalidError(name)
		}
		if v < 0 {
			return Dimensions{}, errs.NewValueIsOutOfRangeError(name, v, 0, math.MaxFloat64)
		}
	}
	return Dimensions{length: length, width: width, height: height}, nil
}

// Length returns the package length in centimeters.
func (d Dimensions) Length() float64 { return d.length }

// Width returns the package width in centimeters.
func (d Dimensions) Width() float64 { return d.width }

// Height returns the package height in centimeters.
func (d Dimensions) Height() float64 { return d.height }

// ServiceType is the declared service tier of a shipment.
// The tier drives the estimated delivery date.
type ServiceType int

const (
	// ServiceStandard delivers within three days of pickup.
	ServiceStandard ServiceType = iota + 1
	// ServiceExpress delivers within two days of pickup.
	ServiceExpress
	// ServiceOvernight delivers the next day.
	ServiceOvernight
)

func serviceTypeStrings() map[ServiceType]string {
	return map[ServiceType]string{
		ServiceStandard:  "standard",
		ServiceExpress:   "express",
		ServiceOvernight: "overnight",
	}
}

// ServiceTypeFromString parses the external string form of a service tier.
func ServiceTypeFromString(s string) (ServiceType, error) {
	for st, str := range serviceTypeStrings() {
		if str == s {
			return st, nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause("serviceType",
		fmt.Errorf("%q is not a valid service type", s))
}

// Validate checks that the service tier is a defined value.
func (s ServiceType) Validate() error {
	if _, ok := serviceTypeStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("serviceType",
			fmt.Errorf("%d is not a valid service type", s))
	}
	return nil
}

// String returns the external name of the tier, e.g. "express".
func (s ServiceType) String() string {
	if str, ok := serviceTypeStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// TransitDays returns the promised number of transit days for the tier.
func (s ServiceType) TransitDays() int {
	switch s {
	case ServiceExpress:
		return 2
	case ServiceOvernight:
		return 1
	default:
		return 3
	}
}
