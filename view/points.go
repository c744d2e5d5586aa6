package view

import (
	"github.com/google/uuid"

	"orbview/orbgl"
)

// Point is a placed surface marker. Points are immutable once created;
// IDs are unique but carry no ordering.
type Point struct {
	ID  string
	Pos orbgl.Vec3
}

// Store is the append-only ordered collection of placed points.
//
// It is the single owner of the sequence; readers get copies. A version
// counter lets derived state (the curve) notice changes without the
// store knowing who derives from it.
type Store struct {
	points  []Point
	version uint64
}

func NewStore() *Store {
	return &Store{version: 1}
}

// Add appends a point at the given position and returns it. The same
// position can be added twice; each add mints a fresh identity.
func (s *Store) Add(pos orbgl.Vec3) Point {
	p := Point{ID: uuid.NewString(), Pos: pos}
	s.points = append(s.points, p)
	s.version++
	return p
}

// Clear removes every point.
func (s *Store) Clear() {
	if len(s.points) == 0 {
		return
	}
	s.points = s.points[:0]
	s.version++
}

func (s *Store) Len() int { return len(s.points) }

// Points returns a snapshot of the sequence in placement order.
func (s *Store) Points() []Point {
	out := make([]Point, len(s.points))
	copy(out, s.points)
	return out
}

// Version increases on every mutation.
func (s *Store) Version() uint64 { return s.version }
