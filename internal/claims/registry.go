// Package claims records which territory owns each cell of the map.
package claims

import (
	"sync"

	"islands/internal/core"
)

// ID identifies a territory. The zero ID means unclaimed.
type ID uint16

// Registry is the shared claim set. Claims are permanent; every operation is
// serialized so two callers can never both claim one cell.
type Registry struct {
	mu     sync.Mutex
	size   core.Size
	owners []ID
	count  int
}

// New allocates an empty registry for a w*h map.
func New(w, h int) *Registry {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Registry{size: core.Size{W: w, H: h}, owners: make([]ID, w*h)}
}

// Size reports the map dimensions covered by the registry.
func (r *Registry) Size() core.Size { return r.size }

// InBounds reports whether c addresses a cell of the map.
func (r *Registry) InBounds(c core.Coord) bool { return r.size.Contains(c.X, c.Y) }

// IsClaimed reports whether c is owned by any territory.
func (r *Registry) IsClaimed(c core.Coord) bool {
	_, ok := r.Owner(c)
	return ok
}

// Owner returns the territory owning c.
func (r *Registry) Owner(c core.Coord) (ID, bool) {
	if !r.InBounds(c) {
		return 0, false
	}
	r.mu.Lock()
	id := r.owners[r.index(c)]
	r.mu.Unlock()
	return id, id != 0
}

// Claim assigns c to id if it is in bounds and not yet claimed. It reports
// whether the claim took effect.
func (r *Registry) Claim(c core.Coord, id ID) bool {
	if id == 0 || !r.InBounds(c) {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(c)
	if r.owners[i] != 0 {
		return false
	}
	r.owners[i] = id
	r.count++
	return true
}

// Len returns the number of claimed cells.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// CountOwned returns the number of cells owned by id.
func (r *Registry) CountOwned(id ID) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, o := range r.owners {
		if o == id {
			n++
		}
	}
	return n
}

func (r *Registry) index(c core.Coord) int { return c.Y*r.size.W + c.X }
