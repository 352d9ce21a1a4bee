package editor

import (
	"github.com/samdwyer/roomplanner/internal/floorplan"
	"github.com/samdwyer/roomplanner/internal/geometry"
)

// Scene returns every mesh a 3D view of the plan draws, in world space: the
// parts of each room, the objects placed in them, then the sky box.
func (s *Session) Scene() []floorplan.Part {
	var parts []floorplan.Part
	for _, r := range s.Plan.Rooms() {
		for _, p := range r.Parts() {
			p.Mesh = p.Mesh.Translate(r.Position())
			parts = append(parts, p)
		}
		for _, obj := range r.Objects() {
			parts = append(parts, floorplan.Part{
				Name: obj.Name,
				Mesh: obj.Mesh.Translate(r.Position().Add(obj.Position)),
			})
		}
	}
	return append(parts, floorplan.Part{
		Name:     "sky",
		Material: floorplan.Material(s.Config.Sky),
		Mesh:     geometry.SkyBox(geometry.DefaultSkyBoxSize),
	})
}
