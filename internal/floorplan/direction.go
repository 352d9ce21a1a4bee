package floorplan

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Direction identifies one of the four walls of a room.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists every direction in wall order.
var Directions = [4]Direction{North, East, South, West}

// String returns the lower case name of the direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	return d >= North && d <= West
}

// Opposite returns the direction facing d.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Plot returns the unit lattice step for the direction. East is -x and west
// is +x on the plan.
func (d Direction) Plot() Plot {
	switch d {
	case North:
		return Plot{0, 1}
	case East:
		return Plot{-1, 0}
	case South:
		return Plot{0, -1}
	default:
		return Plot{1, 0}
	}
}

// Vec2 returns the lattice step as a plan vector (x, z).
func (d Direction) Vec2() mgl64.Vec2 {
	p := d.Plot()
	return mgl64.Vec2{float64(p.X), float64(p.Z)}
}

// ParseDirection converts a direction name to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "north":
		return North, nil
	case "east":
		return East, nil
	case "south":
		return South, nil
	case "west":
		return West, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// Plot is a position on the room lattice relative to some reference room.
type Plot struct {
	X, Z int
}

// Add returns p + o.
func (p Plot) Add(o Plot) Plot {
	return Plot{p.X + o.X, p.Z + o.Z}
}

// Manhattan returns |x| + |z|.
func (p Plot) Manhattan() int {
	return abs(p.X) + abs(p.Z)
}

// Direction returns the direction of a unit plot.
func (p Plot) Direction() (Direction, bool) {
	for _, d := range Directions {
		if d.Plot() == p {
			return d, true
		}
	}
	return 0, false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Tags pairs a direction with its opposite. Primary is the wall on the first
// room of a link and Secondary the wall on the second.
type Tags struct {
	Primary   Direction
	Secondary Direction
}

// DirectionalTags returns the tag pair for a unit lattice step.
func DirectionalTags(p Plot) (Tags, error) {
	d, ok := p.Direction()
	if !ok {
		return Tags{}, fmt.Errorf("%w: no direction for plot %v", ErrInconsistentGraph, p)
	}
	return Tags{Primary: d, Secondary: d.Opposite()}, nil
}
