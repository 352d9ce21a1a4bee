package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownMaterial is returned for an id missing from the catalog.
	ErrUnknownMaterial = errors.New("unknown material")
	// ErrUnsupportedSurface is returned when a material cannot cover a surface.
	ErrUnsupportedSurface = errors.New("material not supported on surface")
)

// Registry holds loaded material definitions and provides lookup utilities.
type Registry struct {
	materials map[string]*MaterialDef
	all       []MaterialDef
}

// NewRegistry creates a registry from loaded material definitions.
func NewRegistry(materials []MaterialDef) *Registry {
	registry := &Registry{
		materials: make(map[string]*MaterialDef),
		all:       materials,
	}
	for i := range materials {
		registry.materials[materials[i].ID] = &materials[i]
	}
	return registry
}

// LoadRegistry loads and creates a registry from the embedded materials.json.
func LoadRegistry() (*Registry, error) {
	materials, err := LoadMaterials()
	if err != nil {
		return nil, err
	}
	if len(materials) == 0 {
		return nil, errors.New("no materials loaded from materials.json")
	}
	return NewRegistry(materials), nil
}

// MustLoadRegistry loads a registry, panicking on error.
func MustLoadRegistry() *Registry {
	registry, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the material definition with the given ID, or nil if not found.
func (r *Registry) GetByID(id string) *MaterialDef {
	return r.materials[id]
}

// All returns all material definitions.
func (r *Registry) All() []MaterialDef {
	return r.all
}

// Count returns the number of materials in the registry.
func (r *Registry) Count() int {
	return len(r.all)
}

// ForSurface returns the ids of every material usable on s, in catalog order.
func (r *Registry) ForSurface(s Surface) []string {
	var ids []string
	for i := range r.all {
		if r.all[i].Supports(s) {
			ids = append(ids, r.all[i].ID)
		}
	}
	return ids
}

// Validate checks that id names a material that may cover s. The empty id is
// accepted for ceilings, where it means no ceiling.
func (r *Registry) Validate(id string, s Surface) error {
	if id == "" && s == SurfaceCeiling {
		return nil
	}
	m := r.GetByID(id)
	if m == nil {
		return fmt.Errorf("%w: %q", ErrUnknownMaterial, id)
	}
	if !m.Supports(s) {
		return fmt.Errorf("%w: %q on %s", ErrUnsupportedSurface, id, s)
	}
	return nil
}

// Next returns the material after id among those usable on s, wrapping
// around. An unknown id yields the first usable material.
func (r *Registry) Next(id string, s Surface) string {
	ids := r.ForSurface(s)
	if len(ids) == 0 {
		return id
	}
	for i, candidate := range ids {
		if candidate == id {
			return ids[(i+1)%len(ids)]
		}
	}
	return ids[0]
}
