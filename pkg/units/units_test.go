package units

import (
	"math"
	"testing"

	"github.com/tilewright/tilewright/pkg/errors"
)

func TestToCanonical(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		unit  Unit
		want  float64
	}{
		{name: "millimeters pass through", value: 42, unit: Millimeter, want: 42},
		{name: "centimeters", value: 2.54, unit: Centimeter, want: 25.4},
		{name: "meters", value: 3, unit: Meter, want: 3000},
		{name: "inches", value: 1, unit: Inch, want: 25.4},
		{name: "feet", value: 1, unit: Foot, want: 304.8},
		{name: "zero", value: 0, unit: Meter, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToCanonical(tt.value, tt.unit)
			if err != nil {
				t.Fatalf("ToCanonical() error = %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ToCanonical() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestToCanonicalInvalidUnit(t *testing.T) {
	_, err := ToCanonical(1, Unit("furlong"))
	if err == nil {
		t.Fatal("ToCanonical() error = nil, want INVALID_UNIT")
	}
	if !errors.Is(err, errors.ErrCodeInvalidUnit) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidUnit)
	}
}

func TestFromCanonicalInvalidUnit(t *testing.T) {
	_, err := FromCanonical(1, Unit(""))
	if !errors.Is(err, errors.ErrCodeInvalidUnit) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidUnit)
	}
}

// TestRoundTrip verifies that FromCanonical inverts ToCanonical within a
// 1e-9 relative tolerance for every supported unit.
func TestRoundTrip(t *testing.T) {
	unitsUnderTest := []Unit{Millimeter, Centimeter, Meter, Inch, Foot}
	samples := []float64{0.001, 0.1, 1, 2.54, 12, 300, 9999.75}

	for _, u := range unitsUnderTest {
		for _, v := range samples {
			mm, err := ToCanonical(v, u)
			if err != nil {
				t.Fatalf("ToCanonical(%v, %s) error = %v", v, u, err)
			}
			back, err := FromCanonical(mm, u)
			if err != nil {
				t.Fatalf("FromCanonical(%v, %s) error = %v", mm, u, err)
			}
			if rel := math.Abs(back-v) / v; rel > 1e-9 {
				t.Errorf("round trip %v %s: got %v (relative error %g)", v, u, back, rel)
			}
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Unit
		wantErr bool
	}{
		{in: "mm", want: Millimeter},
		{in: "cm", want: Centimeter},
		{in: "m", want: Meter},
		{in: "in", want: Inch},
		{in: "ft", want: Foot},
		{in: "yd", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLengthCanonical(t *testing.T) {
	l := Length{Value: 1.5, Unit: Meter}
	got, err := l.Canonical()
	if err != nil {
		t.Fatalf("Canonical() error = %v", err)
	}
	if got != 1500 {
		t.Errorf("Canonical() = %v, want 1500", got)
	}
}
