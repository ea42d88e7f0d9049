// Package units normalizes lengths between supported measurement units.
//
// All geometry in the planning engine is computed in a single canonical unit,
// millimeters. Conversions use fixed linear factors and apply no rounding;
// formatting for display is a presentation concern that belongs to callers.
package units

import "github.com/tilewright/tilewright/pkg/errors"

// Unit identifies a supported length unit.
type Unit string

// Supported units. Canonical is the unit all geometry is normalized to
// before computation.
const (
	Millimeter Unit = "mm"
	Centimeter Unit = "cm"
	Meter      Unit = "m"
	Inch       Unit = "in"
	Foot       Unit = "ft"

	Canonical = Millimeter
)

// factors maps each unit to its size in millimeters.
var factors = map[Unit]float64{
	Millimeter: 1,
	Centimeter: 10,
	Meter:      1000,
	Inch:       25.4,
	Foot:       304.8,
}

// Parse converts a unit string (e.g. from a plan manifest) into a Unit.
// Unknown strings yield an INVALID_UNIT error.
func Parse(s string) (Unit, error) {
	u := Unit(s)
	if _, ok := factors[u]; !ok {
		return "", errors.New(errors.ErrCodeInvalidUnit, "unknown unit: %q", s)
	}
	return u, nil
}

// Valid reports whether u is one of the supported units.
func Valid(u Unit) bool {
	_, ok := factors[u]
	return ok
}

// ToCanonical converts value from the given unit into millimeters.
//
// An unknown unit is a programming error upstream validation should have
// caught; it is surfaced as an INVALID_UNIT error rather than silently
// miscalculating.
func ToCanonical(value float64, u Unit) (float64, error) {
	f, ok := factors[u]
	if !ok {
		return 0, errors.New(errors.ErrCodeInvalidUnit, "unknown unit: %q", u)
	}
	return value * f, nil
}

// FromCanonical converts a millimeter value back into the given unit.
// It is the exact inverse of ToCanonical.
func FromCanonical(value float64, u Unit) (float64, error) {
	f, ok := factors[u]
	if !ok {
		return 0, errors.New(errors.ErrCodeInvalidUnit, "unknown unit: %q", u)
	}
	return value / f, nil
}

// Length is a magnitude paired with its unit. A bare float is meaningless
// without the unit tag; cross-entity comparisons must happen in canonical
// units via Canonical().
type Length struct {
	Value float64 `json:"value" toml:"value"`
	Unit  Unit    `json:"unit" toml:"unit"`
}

// MM constructs a Length in millimeters.
func MM(v float64) Length { return Length{Value: v, Unit: Millimeter} }

// Canonical returns the length in millimeters.
func (l Length) Canonical() (float64, error) {
	return ToCanonical(l.Value, l.Unit)
}
