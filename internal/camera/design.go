package camera

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/paulmach/orb"

	"github.com/samdwyer/roomplanner/internal/floorplan"
)

// Design camera settings.
const (
	DesignHeight = 30.0
	PanSpeed     = 0.3
	ZoomStep     = 0.2
	MinViewSize  = 3.0
	MaxViewSize  = 40.0

	orthoDepth = 50.0
)

// Pan directions on the plan. Screen left is +x.
var (
	panLeft  = mgl64.Vec3{1, 0, 0}
	panRight = mgl64.Vec3{-1, 0, 0}
	panUp    = mgl64.Vec3{0, 0, 1}
	panDown  = mgl64.Vec3{0, 0, -1}
)

// DesignCamera looks straight down on the plan with an orthographic
// projection. It pans over x/z and zooms by changing the view size.
type DesignCamera struct {
	position mgl64.Vec3
	target   mgl64.Vec3
	up       mgl64.Vec3
	size     float64
}

// NewDesignCamera returns a design camera over the origin, zoomed fully out.
func NewDesignCamera() *DesignCamera {
	return &DesignCamera{
		position: mgl64.Vec3{0, DesignHeight, 0},
		target:   mgl64.Vec3{0, 0, 0},
		up:       mgl64.Vec3{0, 0, 1},
		size:     MaxViewSize,
	}
}

// Mode implements Camera.
func (d *DesignCamera) Mode() Mode { return ModeDesign }

// Position returns the camera position.
func (d *DesignCamera) Position() mgl64.Vec3 { return d.position }

// Size returns the side length of the visible square.
func (d *DesignCamera) Size() float64 { return d.size }

// Update pans and zooms the camera.
func (d *DesignCamera) Update(c Controls) {
	var move mgl64.Vec3
	if c.Left {
		move = move.Add(panLeft)
	}
	if c.Right {
		move = move.Add(panRight)
	}
	if c.Forward || c.Up {
		move = move.Add(panUp)
	}
	if c.Backward || c.Down {
		move = move.Add(panDown)
	}

	if c.ZoomOut {
		d.size += ZoomStep
	}
	if c.ZoomIn {
		d.size -= ZoomStep
	}
	d.size = min(MaxViewSize, max(MinViewSize, d.size))

	if move.LenSqr() > epsilon {
		d.position = d.position.Add(move.Normalize().Mul(PanSpeed))
		d.target = d.position
		d.target[1] = max(0, d.target[1]-1)
	}
}

// ViewState implements Camera.
func (d *DesignCamera) ViewState() ViewState {
	half := d.size / 2
	return ViewState{
		Mode:       ModeDesign,
		Eye:        d.position,
		Target:     d.target,
		Up:         d.up,
		View:       mgl64.LookAtV(d.position, d.target, d.up),
		Projection: mgl64.Ortho(-half, half, -half, half, -orthoDepth, orthoDepth),
	}
}

// VisibleBounds returns the part of the plan in view, as an x/z bound.
func (d *DesignCamera) VisibleBounds() orb.Bound {
	half := d.size / 2
	return orb.Bound{
		Min: orb.Point{d.position[0] - half, d.position[2] - half},
		Max: orb.Point{d.position[0] + half, d.position[2] + half},
	}
}

// VisibleRooms returns the rooms whose footprint is at least partly in view.
func (d *DesignCamera) VisibleRooms(plan Plan) []*floorplan.Room {
	view := d.VisibleBounds()
	var result []*floorplan.Room
	for _, r := range plan.Rooms() {
		if view.Intersects(Footprint(r)) {
			result = append(result, r)
		}
	}
	return result
}

// Footprint returns the x/z bound of a room.
func Footprint(r *floorplan.Room) orb.Bound {
	b := r.Bounds()
	return orb.Bound{
		Min: orb.Point{b.X.Min, b.Z.Min},
		Max: orb.Point{b.X.Max, b.Z.Max},
	}
}
