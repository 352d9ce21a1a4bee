package catalog

import (
	"slices"

	"github.com/gdamore/tcell/v2"
)

// Surface is a part of a room a material can cover.
type Surface string

const (
	SurfaceFloor   Surface = "floor"
	SurfaceWall    Surface = "wall"
	SurfaceCeiling Surface = "ceiling"
	SurfaceSky     Surface = "sky"
)

// MaterialDef defines a material loaded from JSON.
type MaterialDef struct {
	ID       string    `json:"id"`       // Identifier stored on rooms (e.g., "stone")
	Name     string    `json:"name"`     // Display name
	Texture  string    `json:"texture"`  // Albedo image path used by renderers
	Color    string    `json:"color"`    // Hex colour for the terminal plan view
	Glyph    string    `json:"glyph"`    // Fill character for the terminal plan view
	Surfaces []Surface `json:"surfaces"` // Surfaces the material may be applied to
}

// Supports reports whether the material may be applied to s.
func (m *MaterialDef) Supports(s Surface) bool {
	return slices.Contains(m.Surfaces, s)
}

// GlyphRune returns the glyph as a rune for rendering.
func (m *MaterialDef) GlyphRune() rune {
	if len(m.Glyph) == 0 {
		return ' '
	}
	return []rune(m.Glyph)[0]
}

// TCellColor returns the colour as a tcell.Color.
func (m *MaterialDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(m.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// MaterialsFile represents the structure of materials.json.
type MaterialsFile struct {
	Materials []MaterialDef `json:"materials"`
}

// LoadMaterials loads material definitions from the embedded materials.json.
func LoadMaterials() ([]MaterialDef, error) {
	file, err := Load[MaterialsFile]("materials.json")
	if err != nil {
		return nil, err
	}
	return file.Materials, nil
}
