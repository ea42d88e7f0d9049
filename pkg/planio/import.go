package planio

import (
	"encoding/json"
	"io"
	"os"

	"github.com/tilewright/tilewright/pkg/errors"
	"github.com/tilewright/tilewright/pkg/geometry"
	"github.com/tilewright/tilewright/pkg/plan"
)

// ReadJSON decodes a JSON layout document from r.
//
// The document must carry the current format version, a known pattern name,
// and positive room extents. Placements with non-positive dimensions are
// rejected rather than silently dropped, since an exported document never
// contains them. The returned layout is independent of r; ReadJSON does not
// close r.
func ReadJSON(r io.Reader) (*plan.LayoutResult, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode layout document")
	}

	if doc.Version != formatVersion {
		return nil, errors.New(errors.ErrCodeUnsupported,
			"layout document version %d (want %d)", doc.Version, formatVersion)
	}
	pattern, err := plan.ParsePattern(doc.Pattern)
	if err != nil {
		return nil, err
	}
	if doc.RoomLength <= 0 || doc.RoomWidth <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"room extents %gx%g must be positive", doc.RoomLength, doc.RoomWidth)
	}

	l := &plan.LayoutResult{
		Boundary:   doc.Boundary,
		Placements: make([]plan.TilePlacement, len(doc.Placements)),
		RoomLength: doc.RoomLength,
		RoomWidth:  doc.RoomWidth,
		GroutWidth: doc.GroutWidth,
		Pattern:    pattern,
	}
	for i, p := range doc.Placements {
		if p.Width <= 0 || p.Height <= 0 {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"placement %d has degenerate size %gx%g", i, p.Width, p.Height)
		}
		l.Placements[i] = plan.TilePlacement{
			Rect: geometry.Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height},
			Row:  p.Row, Col: p.Col, Cut: p.Cut,
		}
	}
	return l, nil
}

// ImportJSON reads a JSON layout file at path.
//
// ImportJSON opens the file, decodes it using [ReadJSON], and closes the
// file. Errors wrap the underlying cause with the file path for context.
func ImportJSON(path string) (*plan.LayoutResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}
