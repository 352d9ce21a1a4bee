package floorplan

// WallType is the state of one wall slot.
type WallType int

const (
	Solid WallType = iota
	Door
	Window
)

// String returns the lower case name of the wall type.
func (w WallType) String() string {
	switch w {
	case Solid:
		return "solid"
	case Door:
		return "door"
	case Window:
		return "window"
	default:
		return "unknown"
	}
}

// Material is an opaque surface identifier. Callers validate it against the
// material catalog before it reaches the plan.
type Material string

// NoMaterial leaves a surface out. A room whose ceiling is NoMaterial is built
// without a ceiling.
const NoMaterial Material = ""

// Materials holds the surface materials of a room.
type Materials struct {
	Floor   Material
	Ceiling Material
	Walls   [4]Material
}

// UniformMaterials uses one material for every wall.
func UniformMaterials(floor, ceiling, walls Material) Materials {
	return Materials{
		Floor:   floor,
		Ceiling: ceiling,
		Walls:   [4]Material{walls, walls, walls, walls},
	}
}

// Wall returns the material of the wall facing d.
func (m Materials) Wall(d Direction) Material {
	return m.Walls[d]
}

// Opening holds the size and offset ratios of a door or window. Both are zero
// on a solid wall.
type Opening struct {
	Size   float64
	Offset float64
}

// DefaultOpeningOffset centres an opening on its wall.
const DefaultOpeningOffset = 0.5

func validRatio(r float64) bool {
	return r > 0 && r < 1
}
