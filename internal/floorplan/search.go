package floorplan

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
)

// visit is a room seen during a lattice walk, with its plot relative to the
// cell the walk is centred on.
type visit struct {
	plot Plot
	room *Room
}

// relativePlots returns the neighbours of r, each placed at its step from r
// shifted by modifier.
func (m *Map) relativePlots(r *Room, modifier Plot) []visit {
	var result []visit
	for _, d := range Directions {
		if id := r.neighbours[d]; id != 0 {
			result = append(result, visit{plot: d.Plot().Add(modifier), room: m.rooms[id]})
		}
	}
	return result
}

// walk runs a breadth-first search over the lattice from seeds, skipping ids
// already in visited. fn is called once per room reached; returning false
// stops the walk.
func (m *Map) walk(seeds []visit, visited mapset.Set[int], fn func(visit) bool) {
	q := queue.New[visit]()
	for _, s := range seeds {
		q.Enqueue(s)
	}

	for !q.Empty() {
		v := q.Dequeue()
		if v.room == nil || visited.Has(v.room.id) {
			continue
		}
		visited.Put(v.room.id)

		if !fn(v) {
			return
		}

		for _, next := range m.relativePlots(v.room, v.plot) {
			if !visited.Has(next.room.id) {
				q.Enqueue(next)
			}
		}
	}
}

// adjacentRooms finds the rooms one lattice step away from a room about to be
// placed in direction dir of anchor. Rooms in skip are never reported.
func (m *Map) adjacentRooms(anchor *Room, dir Direction, skip ...int) []visit {
	visited := mapset.New[int]()
	visited.Put(anchor.id)
	for _, id := range skip {
		visited.Put(id)
	}

	var found []visit
	m.walk(m.relativePlots(anchor, dir.Opposite().Plot()), visited, func(v visit) bool {
		if v.plot.Manhattan() == 1 {
			found = append(found, v)
		}
		return true
	})
	return found
}

// ClampedDimensions reports which footprint dimensions a new room must take to
// fit against existing rooms.
type ClampedDimensions struct {
	Width        float64
	Breadth      float64
	WidthFixed   bool
	BreadthFixed bool
}

// ClampedFloorDimensions returns the dimensions fixed for a room attached to
// wall dir of the given room. The dimension along that wall always matches the
// room. The other one is fixed by the first room found next to the new plot,
// which needs at least three rooms in the plan.
func (m *Map) ClampedFloorDimensions(roomID int, dir Direction) (ClampedDimensions, error) {
	r, err := m.lookup("clamped_dimensions", roomID)
	if err != nil {
		return ClampedDimensions{}, err
	}
	if !dir.Valid() {
		return ClampedDimensions{}, editError("clamped_dimensions", roomID, ErrUnknownDirection)
	}

	var result ClampedDimensions
	if dir == North || dir == South {
		result.Width, result.WidthFixed = r.width, true
	} else {
		result.Breadth, result.BreadthFixed = r.breadth, true
	}

	if len(m.rooms) < 3 {
		return result, nil
	}

	visited := mapset.New[int]()
	visited.Put(r.id)
	m.walk(m.relativePlots(r, dir.Opposite().Plot()), visited, func(v visit) bool {
		if v.plot.Manhattan() != 1 {
			return true
		}
		d, _ := v.plot.Direction()
		switch {
		case (d == North || d == South) && !result.WidthFixed:
			result.Width, result.WidthFixed = v.room.width, true
			return false
		case (d == East || d == West) && !result.BreadthFixed:
			result.Breadth, result.BreadthFixed = v.room.breadth, true
			return false
		}
		return true
	})
	return result, nil
}
