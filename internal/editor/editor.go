package editor

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/roomplanner/internal/catalog"
	"github.com/samdwyer/roomplanner/internal/telemetry"
	"github.com/samdwyer/roomplanner/internal/ui"
)

// Editor runs a session in the terminal.
type Editor struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	running  bool
}

// New creates an editor with a fresh session.
func New(cfg Config) (*Editor, error) {
	materials, err := catalog.LoadRegistry()
	if err != nil {
		return nil, err
	}
	session, err := NewSession(cfg, materials, telemetry.Tracer("editor"))
	if err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Editor{
		screen:   screen,
		renderer: ui.NewRenderer(screen, materials),
		session:  session,
		running:  true,
	}, nil
}

// Run executes the main editor loop.
func (e *Editor) Run(ctx context.Context) error {
	_, span := telemetry.Tracer("editor").Start(ctx, "editor.start")
	span.SetAttributes(
		attribute.String("session.id", e.session.ID.String()),
		attribute.Float64("config.room_width", e.session.Config.RoomWidth),
		attribute.Float64("config.room_breadth", e.session.Config.RoomBreadth),
		attribute.Int("catalog.materials", e.session.Catalog.Count()),
	)
	span.End()

	for e.running {
		e.render()
		e.handleInput(ctx)
	}

	e.screen.Close()
	return nil
}

func (e *Editor) render() {
	s := e.session
	moving, _ := s.Moving()
	e.renderer.Render(ui.View{
		Rooms:    s.Plan.Rooms(),
		Selected: s.selected,
		Wall:     s.Wall(),
		Moving:   moving,
		Bounds:   s.Viewport(),
		Camera:   s.Camera().ViewState(),
		Status:   s.Message(),
	})
}

// handleInput processes a single input event.
func (e *Editor) handleInput(ctx context.Context) {
	ev := e.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		cmd := KeyCommand(ev, e.session.Camera().Mode())
		switch cmd {
		case CmdQuit:
			e.running = false
			return
		case CmdNone:
			return
		}
		// Failures are shown on the status line and recorded on the span.
		_ = e.session.Apply(ctx, cmd)
	case *tcell.EventResize:
		e.screen.Sync()
	}
}

// Close cleans up editor resources.
func (e *Editor) Close() {
	if e.screen != nil {
		e.screen.Close()
	}
}
