package coloring

import (
	"cmp"
	"maps"
	"slices"

	cerrors "github.com/matzehuels/colorgraph/pkg/errors"
	"github.com/matzehuels/colorgraph/pkg/graph"
)

// Coloring maps vertices to non-negative integer colors. It also records the
// order in which vertices were assigned, which fixes the member order of
// [Coloring.Groups].
//
// A Coloring is immutable once returned by an algorithm. The zero value is
// an empty coloring.
type Coloring[V cmp.Ordered] struct {
	order  []V
	colors map[V]int
}

// Assignment is a single vertex/color pair.
type Assignment[V cmp.Ordered] struct {
	Vertex V
	Color  int
}

func newColoring[V cmp.Ordered](capacity int) *Coloring[V] {
	return &Coloring[V]{
		order:  make([]V, 0, capacity),
		colors: make(map[V]int, capacity),
	}
}

// assign records v's color. Callers guarantee v is not yet assigned.
func (c *Coloring[V]) assign(v V, color int) {
	c.order = append(c.order, v)
	c.colors[v] = color
}

// FromMap builds a Coloring from a plain map. Assignment order is ascending
// vertex order. Returns an INVALID_INPUT error if any color is negative.
func FromMap[V cmp.Ordered](m map[V]int) (*Coloring[V], error) {
	c := newColoring[V](len(m))
	for _, v := range slices.Sorted(maps.Keys(m)) {
		if m[v] < 0 {
			return nil, cerrors.New(cerrors.ErrCodeInvalidInput, "vertex %v has negative color %d", v, m[v])
		}
		c.assign(v, m[v])
	}
	return c, nil
}

// Color returns the color of v and whether v is colored.
func (c *Coloring[V]) Color(v V) (int, bool) {
	color, ok := c.colors[v]
	return color, ok
}

// Len returns the number of colored vertices.
func (c *Coloring[V]) Len() int { return len(c.order) }

// NumColors returns the number of distinct colors in use.
func (c *Coloring[V]) NumColors() int {
	seen := make(map[int]struct{}, len(c.colors))
	for _, color := range c.colors {
		seen[color] = struct{}{}
	}
	return len(seen)
}

// Vertices returns the colored vertices in assignment order.
func (c *Coloring[V]) Vertices() []V { return slices.Clone(c.order) }

// Map returns a copy of the vertex to color mapping.
func (c *Coloring[V]) Map() map[V]int { return maps.Clone(c.colors) }

// Sorted returns every assignment ordered by vertex.
func (c *Coloring[V]) Sorted() []Assignment[V] {
	out := make([]Assignment[V], 0, len(c.order))
	for _, v := range slices.Sorted(maps.Keys(c.colors)) {
		out = append(out, Assignment[V]{Vertex: v, Color: c.colors[v]})
	}
	return out
}

// Groups partitions the colored vertices into color groups, one per distinct
// color, ordered by ascending color value. Members keep assignment order.
// Color labels are dropped; only membership and group order remain.
func (c *Coloring[V]) Groups() [][]V {
	byColor := make(map[int][]V)
	for _, v := range c.order {
		color := c.colors[v]
		byColor[color] = append(byColor[color], v)
	}
	groups := make([][]V, 0, len(byColor))
	for _, color := range slices.Sorted(maps.Keys(byColor)) {
		groups = append(groups, byColor[color])
	}
	return groups
}

// Validate checks that c is a complete, proper coloring of g: every vertex
// of g is colored, nothing outside g is colored, and no edge joins two
// vertices of the same color.
func (c *Coloring[V]) Validate(g graph.Graph[V]) error {
	if err := c.covers(g); err != nil {
		return err
	}
	for _, v := range g.Vertices() {
		for _, u := range g.Neighbors(v) {
			if c.colors[u] == c.colors[v] {
				return cerrors.New(cerrors.ErrCodeInvalidInput,
					"adjacent vertices %v and %v share color %d", v, u, c.colors[v])
			}
		}
	}
	return nil
}

// covers reports an INCOMPLETE_COLORING error unless c colors exactly the
// vertex set of g.
func (c *Coloring[V]) covers(g graph.Graph[V]) error {
	for _, v := range g.Vertices() {
		if _, ok := c.colors[v]; !ok {
			return cerrors.New(cerrors.ErrCodeIncompleteColoring, "vertex %v is not colored", v)
		}
	}
	if len(c.colors) != g.Len() {
		return cerrors.New(cerrors.ErrCodeIncompleteColoring,
			"coloring has %d vertices, graph has %d", len(c.colors), g.Len())
	}
	return nil
}

// neighborColors returns the set of colors already used by v's colored
// neighbors. Uncolored neighbors are ignored.
func neighborColors[V cmp.Ordered](g graph.Graph[V], v V, c *Coloring[V]) map[int]struct{} {
	used := make(map[int]struct{})
	for _, u := range g.Neighbors(v) {
		if color, ok := c.colors[u]; ok {
			used[color] = struct{}{}
		}
	}
	return used
}

// smallestAvailable returns the smallest non-negative integer not in used.
func smallestAvailable(used map[int]struct{}) int {
	color := 0
	for {
		if _, taken := used[color]; !taken {
			return color
		}
		color++
	}
}
