// Package camera provides the design (top down) and exploration (first
// person) cameras used to view a plan.
package camera

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/samdwyer/roomplanner/internal/floorplan"
)

// Mode selects the camera behaviour.
type Mode int

const (
	// ModeDesign is the orthographic top down view used while editing.
	ModeDesign Mode = iota
	// ModeExplore walks through the rooms at eye height, passing walls only
	// through doorways.
	ModeExplore
	// ModeRoam floats freely inside a box around the plan.
	ModeRoam
)

// String returns the name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeDesign:
		return "design"
	case ModeExplore:
		return "explore"
	case ModeRoam:
		return "roam"
	default:
		return "unknown"
	}
}

// Controls is the input held during one update.
type Controls struct {
	Left, Right       bool
	Forward, Backward bool
	Up, Down          bool
	ZoomIn, ZoomOut   bool

	// Yaw and Pitch are look movements in degrees.
	Yaw, Pitch float64
}

// ViewState is what a renderer needs to draw the scene from a camera.
type ViewState struct {
	Mode       Mode
	Eye        mgl64.Vec3
	Target     mgl64.Vec3
	Up         mgl64.Vec3
	View       mgl64.Mat4
	Projection mgl64.Mat4
}

// Camera is implemented by every camera mode.
type Camera interface {
	Mode() Mode
	Update(c Controls)
	ViewState() ViewState
}

// Plan is the part of a floor plan the cameras need.
type Plan interface {
	IsEmpty() bool
	Rooms() []*floorplan.Room
}

// New returns a camera for mode.
func New(mode Mode, plan Plan) Camera {
	switch mode {
	case ModeExplore, ModeRoam:
		return NewExplorationCamera(mode, plan)
	default:
		return NewDesignCamera()
	}
}
