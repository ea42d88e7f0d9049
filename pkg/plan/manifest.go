package plan

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/tilewright/tilewright/pkg/errors"
	"github.com/tilewright/tilewright/pkg/geometry"
	"github.com/tilewright/tilewright/pkg/units"
)

// Manifest is the on-disk TOML description of a tiling project. It is the
// validation boundary: the planning engine itself assumes numeric, finite,
// positive dimensions, so everything user-facing is checked here.
//
// Example:
//
//	[room]
//	shape  = "l-shape"
//	length = 3.6
//	width  = 2.4
//	unit   = "m"
//
//	[tile]
//	length = 300
//	width  = 300
//	grout  = 2
//	unit   = "mm"
//
//	[layout]
//	pattern = "brick"
//
//	[pricing]
//	per_tile = 4.25
type Manifest struct {
	Room    RoomSection    `toml:"room"`
	Tile    TileSection    `toml:"tile"`
	Layout  LayoutSection  `toml:"layout"`
	Pricing PricingSection `toml:"pricing"`
}

// RoomSection describes the room in the manifest's own unit.
type RoomSection struct {
	Shape  string       `toml:"shape"`
	Length float64      `toml:"length"`
	Width  float64      `toml:"width"`
	Unit   string       `toml:"unit"`
	Points [][2]float64 `toml:"points"` // custom boundary, same unit
}

// TileSection describes the tile and grout gap.
type TileSection struct {
	Length float64 `toml:"length"`
	Width  float64 `toml:"width"`
	Grout  float64 `toml:"grout"`
	Unit   string  `toml:"unit"`
}

// LayoutSection selects the tiling pattern.
type LayoutSection struct {
	Pattern string `toml:"pattern"`
}

// PricingSection carries optional purchase pricing.
type PricingSection struct {
	PerTile float64 `toml:"per_tile"`
}

// LoadManifest reads and validates a plan manifest from path.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "plan file not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "failed to read plan file: %s", path)
	}
	return ParseManifest(data)
}

// ParseManifest decodes and validates manifest TOML.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "failed to parse plan manifest")
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks the manifest against the rules the engine assumes hold.
func (m *Manifest) Validate() error {
	shape, err := ParseShape(m.Room.Shape)
	if err != nil {
		return err
	}
	if _, err := ParsePattern(m.Layout.Pattern); err != nil {
		return err
	}

	if _, err := units.Parse(m.Room.Unit); err != nil {
		return err
	}
	if _, err := units.Parse(m.Tile.Unit); err != nil {
		return err
	}

	// Custom rooms take their extents from the boundary points, so the
	// length/width entries may be omitted there.
	if shape != ShapeCustom && (m.Room.Length <= 0 || m.Room.Width <= 0) {
		return errors.New(errors.ErrCodeInvalidManifest,
			"room dimensions must be positive, got %g x %g", m.Room.Length, m.Room.Width)
	}
	if m.Tile.Length <= 0 || m.Tile.Width <= 0 {
		return errors.New(errors.ErrCodeInvalidManifest,
			"tile dimensions must be positive, got %g x %g", m.Tile.Length, m.Tile.Width)
	}
	if m.Tile.Grout < 0 {
		return errors.New(errors.ErrCodeInvalidManifest,
			"grout width must not be negative, got %g", m.Tile.Grout)
	}
	if shape == ShapeCustom && len(m.Room.Points) < 3 {
		return errors.New(errors.ErrCodeInvalidManifest,
			"custom shape requires at least 3 boundary points, got %d", len(m.Room.Points))
	}
	if shape != ShapeCustom && len(m.Room.Points) > 0 {
		return errors.New(errors.ErrCodeInvalidManifest,
			"boundary points are only valid for the custom shape")
	}
	if m.Pricing.PerTile < 0 {
		return errors.New(errors.ErrCodeInvalidManifest,
			"price per tile must not be negative, got %g", m.Pricing.PerTile)
	}
	return nil
}

// RoomSpec converts the manifest's room section into engine value objects.
func (m *Manifest) RoomSpec() RoomSpec {
	u := units.Unit(m.Room.Unit)
	spec := RoomSpec{
		Shape:  Shape(m.Room.Shape),
		Length: units.Length{Value: m.Room.Length, Unit: u},
		Width:  units.Length{Value: m.Room.Width, Unit: u},
	}
	if spec.Shape == ShapeCustom {
		spec.Boundary = make([]geometry.Point, len(m.Room.Points))
		for i, p := range m.Room.Points {
			spec.Boundary[i] = geometry.Point{X: p[0], Y: p[1]}
		}
	}
	return spec
}

// TileSpec converts the manifest's tile section into engine value objects.
func (m *Manifest) TileSpec() TileSpec {
	u := units.Unit(m.Tile.Unit)
	return TileSpec{
		Length: units.Length{Value: m.Tile.Length, Unit: u},
		Width:  units.Length{Value: m.Tile.Width, Unit: u},
		Grout:  units.Length{Value: m.Tile.Grout, Unit: u},
	}
}

// Pattern returns the validated pattern selector.
func (m *Manifest) Pattern() Pattern {
	return Pattern(m.Layout.Pattern)
}
