package collision

import (
	"slices"

	"github.com/dhconnelly/rtreego"
)

// broadPhasePad widens query boxes so degenerate (zero width) colliders still
// produce a valid search rectangle.
const broadPhasePad = 1e-6

// Hit is the result of a registry query.
type Hit struct {
	RoomID  int
	Overlap AABB
}

// Registry maps room ids to their colliders. An R-tree narrows queries down to
// candidate rooms before the exact overlap test runs.
type Registry struct {
	tree    *rtreego.Rtree
	entries map[int]*entry
}

// entry is the spatial record stored in the tree. Entries are immutable; an
// upsert replaces the whole entry.
type entry struct {
	id  int
	box AABB
}

// Bounds implements the rtreego.Spatial interface.
func (e *entry) Bounds() rtreego.Rect {
	return toRect(e.box, 0)
}

// toRect converts b to an index rectangle. NewRectFromPoints only fails on
// points of different dimensions, and both points here are 3D.
func toRect(b AABB, pad float64) rtreego.Rect {
	rect, _ := rtreego.NewRectFromPoints(
		rtreego.Point{b.X.Min - pad, b.Y.Min - pad, b.Z.Min - pad},
		rtreego.Point{b.X.Max + pad, b.Y.Max + pad, b.Z.Max + pad},
	)
	return rect
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		tree:    rtreego.NewTree(3, 2, 8),
		entries: make(map[int]*entry),
	}
}

// Upsert stores or replaces the collider for a room.
func (r *Registry) Upsert(roomID int, box AABB) {
	if old, ok := r.entries[roomID]; ok {
		r.tree.Delete(old)
	}
	e := &entry{id: roomID, box: box}
	r.entries[roomID] = e
	r.tree.Insert(e)
}

// Get returns the collider registered for a room.
func (r *Registry) Get(roomID int) (AABB, bool) {
	e, ok := r.entries[roomID]
	if !ok {
		return AABB{}, false
	}
	return e.box, true
}

// Len returns the number of registered rooms.
func (r *Registry) Len() int {
	return len(r.entries)
}

// OverlapsAny returns the first registered room, in ascending id order, whose
// collider overlaps box. A room id of excludingID is skipped; pass 0 to check
// every room.
func (r *Registry) OverlapsAny(box AABB, excludingID int) (Hit, bool) {
	for _, id := range r.candidates(box) {
		if id == excludingID {
			continue
		}
		if overlap, ok := Overlap(box, r.entries[id].box); ok {
			return Hit{RoomID: id, Overlap: overlap}, true
		}
	}
	return Hit{}, false
}

// Locate returns the id of the first room whose collider overlaps box. It is
// used to find which room a camera collider is in.
func (r *Registry) Locate(box AABB) (int, bool) {
	hit, ok := r.OverlapsAny(box, 0)
	return hit.RoomID, ok
}

// candidates returns the ids of rooms whose colliders may overlap box, sorted
// ascending.
func (r *Registry) candidates(box AABB) []int {
	var ids []int
	for _, s := range r.tree.SearchIntersect(toRect(box, broadPhasePad)) {
		ids = append(ids, s.(*entry).id)
	}
	slices.Sort(ids)
	return ids
}
