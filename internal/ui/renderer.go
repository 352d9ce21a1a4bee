package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/paulmach/orb"

	"github.com/samdwyer/roomplanner/internal/camera"
	"github.com/samdwyer/roomplanner/internal/catalog"
	"github.com/samdwyer/roomplanner/internal/floorplan"
)

// statusLines is the number of rows reserved below the plan.
const statusLines = 2

// View is everything the renderer draws in one frame.
type View struct {
	Rooms    []*floorplan.Room
	Selected int
	Wall     floorplan.Direction
	Moving   int
	Bounds   orb.Bound
	Camera   camera.ViewState
	Status   string
}

// Renderer handles drawing the plan to the screen.
type Renderer struct {
	screen    *Screen
	materials *catalog.Registry
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, materials *catalog.Registry) *Renderer {
	return &Renderer{screen: screen, materials: materials}
}

// Render draws the plan and the status lines.
func (r *Renderer) Render(v View) {
	r.screen.Clear()

	width, height := r.screen.Size()
	vp := FitViewport(v.Bounds, width, height-statusLines)

	for row := 0; row < vp.Rows; row++ {
		for col := 0; col < vp.Cols; col++ {
			s := SampleAt(v.Rooms, vp.World(col, row))
			ch, style := r.cellStyle(s, v)
			r.screen.SetContent(col, row, ch, style)
		}
	}

	if v.Camera.Mode != camera.ModeDesign {
		r.drawEye(vp, v.Camera)
	}

	r.drawStatus(v, height)
	r.screen.Show()
}

func (r *Renderer) cellStyle(s Sample, v View) (rune, tcell.Style) {
	style := tcell.StyleDefault
	ch := ' '

	switch s.Kind {
	case CellEmpty:
		return ch, style
	case CellFloor:
		ch = '.'
		if m := r.materials.GetByID(string(s.Material)); m != nil {
			ch = m.GlyphRune()
			style = style.Foreground(m.TCellColor())
		}
	case CellWall:
		ch = '#'
		if m := r.materials.GetByID(string(s.Material)); m != nil {
			style = style.Foreground(m.TCellColor())
		}
	case CellDoor:
		ch = '+'
		style = style.Foreground(tcell.ColorYellow)
	case CellWindow:
		ch = '~'
		style = style.Foreground(tcell.ColorAqua)
	case CellObject:
		ch = 'o'
		style = style.Foreground(tcell.ColorWhite).Bold(true)
	}

	id := s.Room.ID()
	switch {
	case id == v.Moving:
		style = style.Background(tcell.ColorPurple)
	case id == v.Selected:
		style = style.Background(tcell.ColorNavy)
		if s.Kind != CellFloor && s.Kind != CellObject && s.Wall == v.Wall {
			style = style.Background(tcell.ColorOlive).Bold(true)
		}
	}
	return ch, style
}

// drawEye marks an exploration camera and the cell it faces.
func (r *Renderer) drawEye(vp Viewport, vs camera.ViewState) {
	style := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	if col, row, ok := vp.Cell(orb.Point{vs.Eye[0], vs.Eye[2]}); ok {
		r.screen.SetContent(col, row, '@', style)
	}
	dir := vs.Target.Sub(vs.Eye)
	dir[1] = 0
	if dir.LenSqr() == 0 {
		return
	}
	ahead := vs.Eye.Add(dir.Normalize().Mul(vp.Scale * cellAspect))
	if col, row, ok := vp.Cell(orb.Point{ahead[0], ahead[2]}); ok {
		r.screen.SetContent(col, row, '*', style)
	}
}

func (r *Renderer) drawStatus(v View, height int) {
	info := fmt.Sprintf("[%s] rooms:%d", v.Camera.Mode, len(v.Rooms))
	for _, room := range v.Rooms {
		if room.ID() == v.Selected {
			info += fmt.Sprintf(" | %s %gx%g wall:%s (%s)",
				room.Name(), room.Width(), room.Breadth(), v.Wall, room.WallType(v.Wall))
		}
	}
	r.screen.DrawText(0, height-statusLines, info, tcell.StyleDefault.Foreground(tcell.ColorGray))
	r.RenderMessage(v.Status, height-1)
}

// RenderMessage displays a message at the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	r.screen.DrawText(0, y, msg, tcell.StyleDefault.Foreground(tcell.ColorWhite))
}
