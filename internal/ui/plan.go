package ui

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/samdwyer/roomplanner/internal/camera"
	"github.com/samdwyer/roomplanner/internal/floorplan"
	"github.com/samdwyer/roomplanner/internal/geometry"
)

// cellAspect is how much taller a terminal cell is than it is wide.
const cellAspect = 2.0

// Viewport maps between terminal cells and plan coordinates. The plan is
// drawn north up, which puts west (+x) on the left.
type Viewport struct {
	Center     orb.Point
	Scale      float64 // plan units per column
	Cols, Rows int
}

// FitViewport returns the viewport that shows all of bound in cols x rows
// cells without distorting it.
func FitViewport(bound orb.Bound, cols, rows int) Viewport {
	cols, rows = max(cols, 1), max(rows, 1)
	dx := bound.Max[0] - bound.Min[0]
	dz := bound.Max[1] - bound.Min[1]
	scale := max(dx/float64(cols), dz/(float64(rows)*cellAspect))
	if scale <= 0 {
		scale = 1
	}
	return Viewport{Center: bound.Center(), Scale: scale, Cols: cols, Rows: rows}
}

// World returns the plan point at the centre of a cell.
func (v Viewport) World(col, row int) orb.Point {
	x := v.Center[0] + (float64(v.Cols)/2-float64(col)-0.5)*v.Scale
	z := v.Center[1] + (float64(v.Rows)/2-float64(row)-0.5)*v.Scale*cellAspect
	return orb.Point{x, z}
}

// Cell returns the cell containing a plan point.
func (v Viewport) Cell(p orb.Point) (col, row int, ok bool) {
	col = int(math.Floor(float64(v.Cols)/2 - (p[0]-v.Center[0])/v.Scale))
	row = int(math.Floor(float64(v.Rows)/2 - (p[1]-v.Center[1])/(v.Scale*cellAspect)))
	ok = col >= 0 && col < v.Cols && row >= 0 && row < v.Rows
	return col, row, ok
}

// CellKind is what a plan cell shows.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellFloor
	CellWall
	CellDoor
	CellWindow
	CellObject
)

// Sample is the content of the plan at one point.
type Sample struct {
	Kind     CellKind
	Room     *floorplan.Room
	Wall     floorplan.Direction
	Material floorplan.Material
}

// SampleAt returns what the plan shows at p.
func SampleAt(rooms []*floorplan.Room, p orb.Point) Sample {
	for _, r := range rooms {
		if !camera.Footprint(r).Contains(p) {
			continue
		}
		if d, ok := wallAt(r, p); ok {
			return wallSample(r, d, p)
		}
		for _, obj := range r.Objects() {
			c := obj.Collider().Offset(r.Position())
			if c.X.Min <= p[0] && p[0] <= c.X.Max && c.Z.Min <= p[1] && p[1] <= c.Z.Max {
				return Sample{Kind: CellObject, Room: r}
			}
		}
		return Sample{Kind: CellFloor, Room: r, Material: r.Materials().Floor}
	}
	return Sample{Kind: CellEmpty}
}

// wallAt finds the wall under p. North and south walls span the full width
// so they win at the corners.
func wallAt(r *floorplan.Room, p orb.Point) (floorplan.Direction, bool) {
	b := r.Bounds()
	t := geometry.WallThickness
	switch {
	case p[1] > b.Z.Max-t:
		return floorplan.North, true
	case p[1] < b.Z.Min+t:
		return floorplan.South, true
	case p[0] > b.X.Max-t:
		return floorplan.West, true
	case p[0] < b.X.Min+t:
		return floorplan.East, true
	}
	return 0, false
}

func wallSample(r *floorplan.Room, d floorplan.Direction, p orb.Point) Sample {
	s := Sample{Kind: CellWall, Room: r, Wall: d, Material: r.Materials().Wall(d)}
	extent, ok := r.OpeningExtent(d)
	if !ok {
		return s
	}
	along := p[0]
	if d == floorplan.East || d == floorplan.West {
		along = p[1]
	}
	if extent.Min <= along && along <= extent.Max {
		if r.WallType(d) == floorplan.Door {
			s.Kind = CellDoor
		} else {
			s.Kind = CellWindow
		}
	}
	return s
}
