package editor

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/roomplanner/internal/camera"
	"github.com/samdwyer/roomplanner/internal/floorplan"
)

// Command is a single editor action.
type Command int

const (
	CmdNone Command = iota
	CmdQuit

	// Selection.
	CmdNextRoom
	CmdPrevRoom
	CmdSelectNorth
	CmdSelectEast
	CmdSelectSouth
	CmdSelectWest

	// Structural edits on the selected room and wall.
	CmdInsertRoom
	CmdAddDoor
	CmdAddWindow
	CmdAddWall
	CmdGrowWidth
	CmdShrinkWidth
	CmdGrowBreadth
	CmdShrinkBreadth
	CmdMoveRoom
	CmdPlaceObject
	CmdGenerate

	// Materials.
	CmdCycleFloor
	CmdCycleWall
	CmdToggleCeiling

	// Camera.
	CmdCycleCamera
	CmdLeft
	CmdRight
	CmdForward
	CmdBackward
	CmdRise
	CmdSink
	CmdZoomIn
	CmdZoomOut
	CmdTurnLeft
	CmdTurnRight
	CmdLookUp
	CmdLookDown
)

var commandNames = map[Command]string{
	CmdNone:          "none",
	CmdQuit:          "quit",
	CmdNextRoom:      "next_room",
	CmdPrevRoom:      "prev_room",
	CmdSelectNorth:   "select_north",
	CmdSelectEast:    "select_east",
	CmdSelectSouth:   "select_south",
	CmdSelectWest:    "select_west",
	CmdInsertRoom:    "insert_room",
	CmdAddDoor:       "add_door",
	CmdAddWindow:     "add_window",
	CmdAddWall:       "add_wall",
	CmdGrowWidth:     "grow_width",
	CmdShrinkWidth:   "shrink_width",
	CmdGrowBreadth:   "grow_breadth",
	CmdShrinkBreadth: "shrink_breadth",
	CmdMoveRoom:      "move_room",
	CmdPlaceObject:   "place_object",
	CmdGenerate:      "generate",
	CmdCycleFloor:    "cycle_floor",
	CmdCycleWall:     "cycle_wall",
	CmdToggleCeiling: "toggle_ceiling",
	CmdCycleCamera:   "cycle_camera",
	CmdLeft:          "left",
	CmdRight:         "right",
	CmdForward:       "forward",
	CmdBackward:      "backward",
	CmdRise:          "rise",
	CmdSink:          "sink",
	CmdZoomIn:        "zoom_in",
	CmdZoomOut:       "zoom_out",
	CmdTurnLeft:      "turn_left",
	CmdTurnRight:     "turn_right",
	CmdLookUp:        "look_up",
	CmdLookDown:      "look_down",
}

// String returns the command name used in spans.
func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// edits reports whether the command changes the plan.
func (c Command) edits() bool {
	return c >= CmdInsertRoom && c <= CmdToggleCeiling
}

// lookStep is the look input, in degrees, of one turn keystroke.
const lookStep = 15.0

// controls translates a camera command into one frame of camera input.
func (c Command) controls() (camera.Controls, bool) {
	switch c {
	case CmdLeft:
		return camera.Controls{Left: true}, true
	case CmdRight:
		return camera.Controls{Right: true}, true
	case CmdForward:
		return camera.Controls{Forward: true}, true
	case CmdBackward:
		return camera.Controls{Backward: true}, true
	case CmdRise:
		return camera.Controls{Up: true}, true
	case CmdSink:
		return camera.Controls{Down: true}, true
	case CmdZoomIn:
		return camera.Controls{ZoomIn: true}, true
	case CmdZoomOut:
		return camera.Controls{ZoomOut: true}, true
	case CmdTurnLeft:
		return camera.Controls{Yaw: -lookStep}, true
	case CmdTurnRight:
		return camera.Controls{Yaw: lookStep}, true
	case CmdLookUp:
		return camera.Controls{Pitch: -lookStep}, true
	case CmdLookDown:
		return camera.Controls{Pitch: lookStep}, true
	default:
		return camera.Controls{}, false
	}
}

// wallSelection maps the wall selection commands to their direction.
func (c Command) wallSelection() (floorplan.Direction, bool) {
	switch c {
	case CmdSelectNorth:
		return floorplan.North, true
	case CmdSelectEast:
		return floorplan.East, true
	case CmdSelectSouth:
		return floorplan.South, true
	case CmdSelectWest:
		return floorplan.West, true
	default:
		return 0, false
	}
}

// KeyCommand maps a key press to a command. Arrow keys select walls while
// designing and walk while exploring.
func KeyCommand(ev *tcell.EventKey, mode camera.Mode) Command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CmdQuit
	case tcell.KeyTab:
		return CmdNextRoom
	case tcell.KeyBacktab:
		return CmdPrevRoom
	case tcell.KeyPgUp:
		return CmdRise
	case tcell.KeyPgDn:
		return CmdSink
	}

	if mode == camera.ModeDesign {
		return designKey(ev)
	}
	return exploreKey(ev)
}

func designKey(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyUp:
		return CmdSelectNorth
	case tcell.KeyDown:
		return CmdSelectSouth
	case tcell.KeyLeft:
		return CmdSelectWest
	case tcell.KeyRight:
		return CmdSelectEast
	case tcell.KeyRune:
	default:
		return CmdNone
	}

	switch ev.Rune() {
	case 'q', 'Q':
		return CmdQuit
	case 'h':
		return CmdLeft
	case 'l':
		return CmdRight
	case 'k':
		return CmdForward
	case 'j':
		return CmdBackward
	case 'z':
		return CmdZoomIn
	case 'x':
		return CmdZoomOut
	case 'r':
		return CmdInsertRoom
	case 'd':
		return CmdAddDoor
	case 'w':
		return CmdAddWindow
	case 's':
		return CmdAddWall
	case '+', '=':
		return CmdGrowWidth
	case '-':
		return CmdShrinkWidth
	case '>', '.':
		return CmdGrowBreadth
	case '<', ',':
		return CmdShrinkBreadth
	case 'm':
		return CmdMoveRoom
	case 'o':
		return CmdPlaceObject
	case 'g':
		return CmdGenerate
	case '[':
		return CmdCycleFloor
	case ']':
		return CmdCycleWall
	case 't':
		return CmdToggleCeiling
	case 'c':
		return CmdCycleCamera
	}
	return CmdNone
}

func exploreKey(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyUp:
		return CmdForward
	case tcell.KeyDown:
		return CmdBackward
	case tcell.KeyLeft:
		return CmdLeft
	case tcell.KeyRight:
		return CmdRight
	case tcell.KeyRune:
	default:
		return CmdNone
	}

	switch ev.Rune() {
	case 'q', 'Q':
		return CmdQuit
	case 'w':
		return CmdForward
	case 's':
		return CmdBackward
	case 'a':
		return CmdLeft
	case 'd':
		return CmdRight
	case ' ':
		return CmdRise
	case 'x':
		return CmdSink
	case 'h':
		return CmdTurnLeft
	case 'l':
		return CmdTurnRight
	case 'k':
		return CmdLookUp
	case 'j':
		return CmdLookDown
	case 'c':
		return CmdCycleCamera
	}
	return CmdNone
}
