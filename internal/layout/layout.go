// Package layout grows random floor plans from a seeded generator, for demos
// and for exercising the plan edits at scale.
package layout

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/roomplanner/internal/floorplan"
)

const (
	// Generated rooms use dimensions from minSize to maxSize in sizeStep steps.
	minSize  = 2.0
	maxSize  = 6.0
	sizeStep = 0.5

	doorSize = 0.5

	// attemptsPerRoom bounds the retries after overlapping placements.
	attemptsPerRoom = 20

	// Chance of cutting an extra door or a window during decoration.
	doorChance   = 0.5
	windowChance = 0.3
)

// Generator adds randomly sized rooms to a plan.
type Generator struct {
	rng       *rand.Rand
	materials floorplan.Materials
	tracer    trace.Tracer
}

// NewGenerator returns a generator. A nil rng is seeded from the clock.
func NewGenerator(rng *rand.Rand, materials floorplan.Materials, tracer trace.Tracer) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng, materials: materials, tracer: tracer}
}

// Generate adds up to count rooms to m and returns how many were added. An
// empty plan first gets its main room, which brings the entrance with it.
// Afterwards some shared walls get doors and some exterior walls windows.
func (g *Generator) Generate(ctx context.Context, m *floorplan.Map, count int) (int, error) {
	ctx, span := g.tracer.Start(ctx, "layout.generate")
	defer span.End()

	startTime := time.Now()
	before := m.Len()
	target := before + count

	attempts := 0
	for m.Len() < target && attempts < count*attemptsPerRoom {
		attempts++
		if err := g.grow(ctx, m); err != nil {
			if floorplan.KindOf(err) == floorplan.KindStructural {
				continue
			}
			span.RecordError(err)
			return m.Len() - before, err
		}
	}

	doors, windows, err := g.decorate(ctx, m)
	if err != nil {
		span.RecordError(err)
		return m.Len() - before, err
	}

	span.SetAttributes(
		attribute.Int("layout.requested", count),
		attribute.Int("layout.added", m.Len()-before),
		attribute.Int("layout.attempts", attempts),
		attribute.Int("layout.doors", doors),
		attribute.Int("layout.windows", windows),
		attribute.Int64("layout.generation_ms", time.Since(startTime).Milliseconds()),
	)
	return m.Len() - before, nil
}

// grow inserts one room against a random free wall.
func (g *Generator) grow(ctx context.Context, m *floorplan.Map) error {
	name := fmt.Sprintf("Room %d", m.Len()+1)
	if m.IsEmpty() {
		_, err := m.InsertRoom(ctx, name, g.size(), g.size(), g.materials, floorplan.North, 0, doorSize)
		return err
	}

	anchors := m.AvailableAnchorRooms(0)
	if len(anchors) == 0 {
		return errors.New("no free walls left")
	}
	anchor := anchors[g.rng.Intn(len(anchors))]

	dirs, err := m.FreePlotDirections(anchor.ID())
	if err != nil {
		return err
	}
	dir := dirs[g.rng.Intn(len(dirs))]

	dims, err := m.ClampedFloorDimensions(anchor.ID(), dir)
	if err != nil {
		return err
	}
	width, breadth := g.size(), g.size()
	if dims.WidthFixed {
		width = dims.Width
	}
	if dims.BreadthFixed {
		breadth = dims.Breadth
	}

	_, err = m.InsertRoom(ctx, name, width, breadth, g.materials, dir, anchor.ID(), doorSize)
	return err
}

// decorate opens some walls between rooms that touch without a door and
// glazes some exterior walls.
func (g *Generator) decorate(ctx context.Context, m *floorplan.Map) (doors, windows int, err error) {
	for _, r := range m.DisjointNeighbours() {
		for _, d := range r.SolidWalls(true) {
			if g.rng.Float64() >= doorChance {
				continue
			}
			if err := m.AddDoor(ctx, r.ID(), d, doorSize, floorplan.DefaultOpeningOffset, floorplan.NoMaterial); err != nil {
				return doors, windows, err
			}
			doors++
		}
	}

	for _, r := range m.RoomsWithUnlinkedSolidWalls() {
		walls := r.SolidWalls(false)
		if len(walls) == 0 || g.rng.Float64() >= windowChance {
			continue
		}
		d := walls[g.rng.Intn(len(walls))]
		if err := m.AddWindow(ctx, r.ID(), d, doorSize, floorplan.DefaultOpeningOffset, floorplan.NoMaterial); err != nil {
			return doors, windows, err
		}
		windows++
	}
	return doors, windows, nil
}

func (g *Generator) size() float64 {
	steps := int((maxSize - minSize) / sizeStep)
	return minSize + float64(g.rng.Intn(steps+1))*sizeStep
}
