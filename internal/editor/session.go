// Package editor provides the interactive editing session and its terminal
// event loop.
package editor

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/roomplanner/internal/camera"
	"github.com/samdwyer/roomplanner/internal/catalog"
	"github.com/samdwyer/roomplanner/internal/floorplan"
	"github.com/samdwyer/roomplanner/internal/geometry"
	"github.com/samdwyer/roomplanner/internal/layout"
)

var (
	// ErrNoSelection is returned by edits when the plan has no rooms yet.
	ErrNoSelection = errors.New("no room selected")
	// ErrNotEditing is returned by edits while an exploration camera is active.
	ErrNotEditing = errors.New("edits are only available in design mode")
)

// objectSize is the side of the crate placed by CmdPlaceObject.
const objectSize = 0.5

// Session is one editing session. It owns the plan, the material catalog
// and the active camera; nothing is shared between sessions.
type Session struct {
	ID      uuid.UUID
	Plan    *floorplan.Map
	Catalog *catalog.Registry
	Config  Config

	design    *camera.DesignCamera
	camera    camera.Camera
	generator *layout.Generator
	selected  int
	wall      floorplan.Direction
	moving    int
	message   string
	tracer    trace.Tracer
}

// NewSession creates a session with an empty plan.
func NewSession(cfg Config, materials *catalog.Registry, tracer trace.Tracer) (*Session, error) {
	if err := cfg.Validate(materials); err != nil {
		return nil, err
	}
	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}
	design := camera.NewDesignCamera()
	s := &Session{
		ID:      uuid.New(),
		Plan:    floorplan.NewMap(floorplan.WithTracer(tracer)),
		Catalog: materials,
		Config:  cfg,
		design:  design,
		camera:  design,
		wall:    floorplan.North,
		message: "Press r to create the first room or g to generate a plan",
		tracer:  tracer,
	}
	s.generator = layout.NewGenerator(rng, s.materials(), tracer)
	return s, nil
}

// Selected returns the selected room.
func (s *Session) Selected() (*floorplan.Room, bool) {
	return s.Plan.Room(s.selected)
}

// Wall returns the selected wall of the selected room.
func (s *Session) Wall() floorplan.Direction { return s.wall }

// Moving returns the id of the room marked for moving, if any.
func (s *Session) Moving() (int, bool) { return s.moving, s.moving != 0 }

// Message returns the status line for the last command.
func (s *Session) Message() string { return s.message }

// Camera returns the active camera.
func (s *Session) Camera() camera.Camera { return s.camera }

// Viewport returns the x/z area of the plan to draw. Exploration cameras are
// kept at the centre of the design camera's view size.
func (s *Session) Viewport() orb.Bound {
	if s.camera.Mode() == camera.ModeDesign {
		return s.design.VisibleBounds()
	}
	eye := s.camera.ViewState().Eye
	half := s.design.Size() / 2
	return orb.Bound{
		Min: orb.Point{eye[0] - half, eye[2] - half},
		Max: orb.Point{eye[0] + half, eye[2] + half},
	}
}

// Apply runs one command against the session.
func (s *Session) Apply(ctx context.Context, cmd Command) error {
	ctx, span := s.tracer.Start(ctx, "editor.apply")
	defer span.End()
	span.SetAttributes(
		attribute.String("session.id", s.ID.String()),
		attribute.String("command", cmd.String()),
		attribute.String("camera.mode", s.camera.Mode().String()),
	)

	err := s.apply(ctx, cmd)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		var editErr *floorplan.EditError
		if errors.As(err, &editErr) {
			span.SetAttributes(attribute.String("error.kind", floorplan.KindOf(err).String()))
		}
		s.message = err.Error()
	}
	span.SetAttributes(
		attribute.Int("plan.rooms", s.Plan.Len()),
		attribute.Int("selected.room", s.selected),
	)
	return err
}

func (s *Session) apply(ctx context.Context, cmd Command) error {
	if controls, ok := cmd.controls(); ok {
		s.camera.Update(controls)
		return nil
	}
	if d, ok := cmd.wallSelection(); ok {
		s.wall = d
		s.message = fmt.Sprintf("Selected %s wall", d)
		return nil
	}

	switch cmd {
	case CmdNone, CmdQuit:
		return nil
	case CmdNextRoom:
		s.cycleRoom(1)
		return nil
	case CmdPrevRoom:
		s.cycleRoom(-1)
		return nil
	case CmdCycleCamera:
		s.cycleCamera()
		return nil
	}

	if !cmd.edits() {
		return fmt.Errorf("unhandled command %s", cmd)
	}
	if s.camera.Mode() != camera.ModeDesign {
		return ErrNotEditing
	}
	switch cmd {
	case CmdInsertRoom:
		return s.insertRoom(ctx)
	case CmdGenerate:
		return s.generate(ctx)
	}

	room, ok := s.Selected()
	if !ok {
		return ErrNoSelection
	}
	switch cmd {
	case CmdAddDoor:
		return s.report(s.Plan.AddDoor(ctx, room.ID(), s.wall, s.Config.DoorSize, floorplan.DefaultOpeningOffset, floorplan.NoMaterial),
			"Added a door to the %s wall", s.wall)
	case CmdAddWindow:
		return s.report(s.Plan.AddWindow(ctx, room.ID(), s.wall, s.Config.WindowSize, floorplan.DefaultOpeningOffset, floorplan.NoMaterial),
			"Added a window to the %s wall", s.wall)
	case CmdAddWall:
		return s.report(s.Plan.AddWall(ctx, room.ID(), s.wall, floorplan.NoMaterial),
			"Closed the %s wall", s.wall)
	case CmdGrowWidth:
		return s.resize(ctx, room, s.Config.ResizeStep, 0)
	case CmdShrinkWidth:
		return s.resize(ctx, room, -s.Config.ResizeStep, 0)
	case CmdGrowBreadth:
		return s.resize(ctx, room, 0, s.Config.ResizeStep)
	case CmdShrinkBreadth:
		return s.resize(ctx, room, 0, -s.Config.ResizeStep)
	case CmdMoveRoom:
		return s.moveRoom(ctx, room)
	case CmdPlaceObject:
		return s.placeObject(ctx, room)
	case CmdCycleFloor:
		next := s.Catalog.Next(string(room.Materials().Floor), catalog.SurfaceFloor)
		return s.report(s.Plan.UpdateFloorMaterial(room.ID(), floorplan.Material(next)), "Floor is now %s", next)
	case CmdCycleWall:
		next := s.Catalog.Next(string(room.Materials().Wall(s.wall)), catalog.SurfaceWall)
		return s.report(s.Plan.UpdateWallMaterial(room.ID(), s.wall, floorplan.Material(next)), "%s wall is now %s", s.wall, next)
	case CmdToggleCeiling:
		if room.HasCeiling() {
			return s.report(s.Plan.UpdateCeilingMaterial(room.ID(), floorplan.NoMaterial), "Removed the ceiling")
		}
		return s.report(s.Plan.UpdateCeilingMaterial(room.ID(), floorplan.Material(s.Config.CeilingMaterial)), "Added a ceiling")
	}
	return fmt.Errorf("unhandled command %s", cmd)
}

// report sets the status line when err is nil and passes err through.
func (s *Session) report(err error, format string, args ...any) error {
	if err == nil {
		s.message = fmt.Sprintf(format, args...)
	}
	return err
}

func (s *Session) materials() floorplan.Materials {
	return floorplan.UniformMaterials(
		floorplan.Material(s.Config.FloorMaterial),
		floorplan.Material(s.Config.CeilingMaterial),
		floorplan.Material(s.Config.WallMaterial),
	)
}

// insertRoom attaches a new room to the selected wall, taking any clamped
// dimension from the neighbours. The first room becomes the main room.
func (s *Session) insertRoom(ctx context.Context) error {
	name := fmt.Sprintf("Room %d", s.Plan.Len()+1)
	width, breadth := s.Config.RoomWidth, s.Config.RoomBreadth

	if s.Plan.IsEmpty() {
		room, err := s.Plan.InsertRoom(ctx, name, width, breadth, s.materials(), floorplan.North, 0, s.Config.DoorSize)
		if err != nil {
			return err
		}
		s.selected = room.ID()
		s.message = fmt.Sprintf("Created %s", room.Name())
		return nil
	}

	anchor, ok := s.Selected()
	if !ok {
		return ErrNoSelection
	}
	dims, err := s.Plan.ClampedFloorDimensions(anchor.ID(), s.wall)
	if err != nil {
		return err
	}
	if dims.WidthFixed {
		width = dims.Width
	}
	if dims.BreadthFixed {
		breadth = dims.Breadth
	}

	room, err := s.Plan.InsertRoom(ctx, name, width, breadth, s.materials(), s.wall, anchor.ID(), s.Config.DoorSize)
	if err != nil {
		return err
	}
	s.selected = room.ID()
	s.message = fmt.Sprintf("Created %s (%gx%g) %s of %s", room.Name(), width, breadth, s.wall, anchor.Name())
	return nil
}

func (s *Session) generate(ctx context.Context) error {
	added, err := s.generator.Generate(ctx, s.Plan, s.Config.GenerateRooms)
	if _, ok := s.Selected(); !ok {
		if root, ok := s.Plan.Root(); ok {
			s.selected = root.ID()
		}
	}
	return s.report(err, "Generated %d rooms", added)
}

func (s *Session) resize(ctx context.Context, room *floorplan.Room, dw, db float64) error {
	err := s.Plan.ResizeRoom(ctx, room.ID(), room.Width()+dw, room.Breadth()+db)
	return s.report(err, "%s is now %gx%g", room.Name(), room.Width(), room.Breadth())
}

// moveRoom is a two step command: the first marks the selected room, the
// second moves it against the then selected room and wall.
func (s *Session) moveRoom(ctx context.Context, room *floorplan.Room) error {
	if s.moving == 0 {
		s.moving = room.ID()
		s.message = fmt.Sprintf("Moving %s: select an anchor room and wall, then press m", room.Name())
		return nil
	}

	movingID := s.moving
	s.moving = 0
	if err := s.Plan.MoveRoom(ctx, movingID, room.ID(), s.wall); err != nil {
		return err
	}
	s.selected = movingID
	s.message = fmt.Sprintf("Moved room %d %s of %s", movingID, s.wall, room.Name())
	return nil
}

func (s *Session) placeObject(ctx context.Context, room *floorplan.Room) error {
	name := fmt.Sprintf("crate %d", len(room.Objects())+1)
	mesh := geometry.Cuboid(objectSize, objectSize, objectSize, mgl64.Vec3{})
	obj, err := s.Plan.PlaceObject(ctx, room.ID(), name, mesh, mgl64.Vec3{}, floorplan.PlacementGround)
	return s.report(err, "Placed %s in %s", obj.Name, room.Name())
}

func (s *Session) cycleRoom(step int) {
	rooms := s.Plan.Rooms()
	if len(rooms) == 0 {
		return
	}
	i := slices.IndexFunc(rooms, func(r *floorplan.Room) bool { return r.ID() == s.selected })
	if i < 0 {
		i = 0
	} else {
		i = (i + step + len(rooms)) % len(rooms)
	}
	s.selected = rooms[i].ID()
	s.message = fmt.Sprintf("Selected %s", rooms[i].Name())
}

// cycleCamera switches design -> explore -> roam -> design. Exploration
// cameras start in the middle of the selected room.
func (s *Session) cycleCamera() {
	var next camera.Mode
	switch s.camera.Mode() {
	case camera.ModeDesign:
		next = camera.ModeExplore
	case camera.ModeExplore:
		next = camera.ModeRoam
	default:
		next = camera.ModeDesign
	}

	if next == camera.ModeDesign {
		s.camera = s.design
	} else {
		explorer := camera.NewExplorationCamera(next, s.Plan)
		if room, ok := s.Selected(); ok {
			explorer.MoveTo(room.Position().Add(mgl64.Vec3{0, camera.EyeHeight, 0}))
		}
		s.camera = explorer
	}
	s.message = fmt.Sprintf("Camera: %s", next)
}
