// Package tiling enumerates tile placements for a room's bounding
// rectangle.
//
// The engine tiles the bounding rectangle of the room shape and relies on
// cut-flagging near the edges; it does not clip tiles against non-rectangular
// boundaries precisely. Enumeration is row-major and fully deterministic:
// identical inputs always yield the identical ordered placement sequence.
// Room-sized inputs stay small (a few thousand placements at most), so the
// result is materialized eagerly rather than streamed.
package tiling

import (
	"math"

	"github.com/tilewright/tilewright/pkg/geometry"
	"github.com/tilewright/tilewright/pkg/plan"
)

// EdgeEpsilon is the tolerance, in working units, used by cut detection and
// the sliver filter. Tiles landing exactly on the boundary are not flagged
// as cut despite floating-point error, and clamped remainders thinner than
// this are dropped entirely.
const EdgeEpsilon = 2

// Spec carries the engine inputs. Dimensions are canonical-unit extents of
// the room's bounding rectangle and of the nominal tile; Frame is the same
// offset/scale the room resolver used, so placements align with the
// boundary path. A zero-value Frame is treated as the identity.
type Spec struct {
	RoomLength float64
	RoomWidth  float64
	TileLength float64
	TileWidth  float64
	GroutWidth float64
	Pattern    plan.Pattern
	Frame      geometry.Frame
}

// Counts returns the number of full columns and rows the base grid holds:
// floor((room + grout) / (tile + grout)) per axis. This deliberately
// undercounts; edge remainders become cut tiles, not extra columns or rows.
// Degenerate extents or step sizes yield zero counts.
func (s Spec) Counts() (cols, rows int) {
	stepX := s.TileLength + s.GroutWidth
	stepY := s.TileWidth + s.GroutWidth
	if stepX <= 0 || stepY <= 0 || s.RoomLength <= 0 || s.RoomWidth <= 0 {
		return 0, 0
	}
	cols = int(math.Floor((s.RoomLength + s.GroutWidth) / stepX))
	rows = int(math.Floor((s.RoomWidth + s.GroutWidth) / stepY))
	return cols, rows
}

// Generate enumerates tile placements for the spec in row-major order.
//
// For each cell the base placement is offset + index*(tile+grout), the
// pattern strategy adjusts it, and cut detection clamps anything reaching
// within EdgeEpsilon of the far boundary. Placements whose clamped width or
// height ends up at or below EdgeEpsilon are discarded as slivers.
//
// Degenerate input (non-positive extents or step) produces an empty list,
// never a panic.
func Generate(s Spec) []plan.TilePlacement {
	frame := s.Frame
	if frame.Scale == 0 {
		frame.Scale = 1
	}

	roomL := s.RoomLength * frame.Scale
	roomW := s.RoomWidth * frame.Scale
	tileL := s.TileLength * frame.Scale
	tileW := s.TileWidth * frame.Scale
	grout := s.GroutWidth * frame.Scale

	scaled := Spec{
		RoomLength: roomL, RoomWidth: roomW,
		TileLength: tileL, TileWidth: tileW,
		GroutWidth: grout,
	}
	cols, rows := scaled.Counts()
	if cols == 0 || rows == 0 {
		return nil
	}

	stepX := tileL + grout
	stepY := tileW + grout
	maxX := frame.OffsetX + roomL
	maxY := frame.OffsetY + roomW
	strategy := ForPattern(s.Pattern)

	placements := make([]plan.TilePlacement, 0, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			r := strategy.Adjust(row, col, geometry.Rect{
				X:      frame.OffsetX + float64(col)*stepX,
				Y:      frame.OffsetY + float64(row)*stepY,
				Width:  tileL,
				Height: tileW,
			})

			cut := false
			if r.Right() > maxX-EdgeEpsilon {
				cut = true
				r.Width = math.Min(r.Width, maxX-r.X-EdgeEpsilon)
			}
			if r.Bottom() > maxY-EdgeEpsilon {
				cut = true
				r.Height = math.Min(r.Height, maxY-r.Y-EdgeEpsilon)
			}
			if r.Width <= EdgeEpsilon || r.Height <= EdgeEpsilon {
				continue
			}

			placements = append(placements, plan.TilePlacement{
				Rect: r,
				Row:  row,
				Col:  col,
				Cut:  cut,
			})
		}
	}
	return placements
}
