package coloring

import (
	"maps"
	"slices"
	"testing"
)

func TestDSaturTieBreaks(t *testing.T) {
	// After C is colored, E, A and D share saturation 1. E wins on degree;
	// A then beats B and D on identity.
	g := build(t, []string{"A", "B", "C", "D", "E"},
		[2]string{"C", "A"}, [2]string{"C", "D"}, [2]string{"C", "E"}, [2]string{"E", "B"})

	c := DSatur(g)

	if got, want := c.Vertices(), []string{"C", "E", "A", "B", "D"}; !slices.Equal(got, want) {
		t.Errorf("coloring order = %v, want %v", got, want)
	}
	if got, want := c.Map(), map[string]int{"C": 0, "E": 1, "A": 1, "B": 0, "D": 1}; !maps.Equal(got, want) {
		t.Errorf("Map() = %v, want %v", got, want)
	}
	if err := c.Validate(g); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestDSaturSaturationBeatsDegree(t *testing.T) {
	// A goes first on degree. W has the next highest degree but no colored
	// neighbor, so the saturated B and C are colored before it.
	g := build(t, []string{"A", "B", "C", "D", "E", "W", "X", "Y", "Z"},
		[2]string{"A", "B"}, [2]string{"A", "C"}, [2]string{"A", "D"}, [2]string{"A", "E"},
		[2]string{"B", "C"}, [2]string{"W", "X"}, [2]string{"W", "Y"}, [2]string{"W", "Z"})

	c := DSatur(g)
	order := c.Vertices()
	if len(order) != 9 {
		t.Fatalf("colored %d vertices, want 9", len(order))
	}
	if !slices.Equal(order[:3], []string{"A", "B", "C"}) {
		t.Errorf("first three = %v, want [A B C]", order[:3])
	}
	if c.NumColors() != 3 {
		t.Errorf("NumColors() = %d, want 3", c.NumColors())
	}
	if err := c.Validate(g); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestDSaturKnownGraphs(t *testing.T) {
	tests := []struct {
		name string
		g    func(*testing.T) *Coloring[string]
		want int
	}{
		{"square", func(t *testing.T) *Coloring[string] { return DSatur(square(t)) }, 2},
		{"K4", func(t *testing.T) *Coloring[string] { return DSatur(complete(t, 4)) }, 4},
		{"K7", func(t *testing.T) *Coloring[string] { return DSatur(complete(t, 7)) }, 7},
		{"no edges", func(t *testing.T) *Coloring[string] { return DSatur(build(t, []string{"A", "B", "C"})) }, 1},
		{"odd cycle", func(t *testing.T) *Coloring[string] {
			return DSatur(build(t, []string{"A", "B", "C", "D", "E"},
				[2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "D"},
				[2]string{"D", "E"}, [2]string{"E", "A"}))
		}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.g(t).NumColors(); got != tt.want {
				t.Errorf("NumColors() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDSaturValidOnRandomGraphs(t *testing.T) {
	for seed := uint64(1); seed <= 10; seed++ {
		g := erdosRenyi(t, 30, 0.25, seed)
		c := DSatur(g)
		if err := c.Validate(g); err != nil {
			t.Fatalf("seed %d: Validate() = %v", seed, err)
		}
		if !sameColoring(c, DSatur(g)) {
			t.Errorf("seed %d: DSatur is not deterministic", seed)
		}
	}
}

func TestDSaturEmptyGraph(t *testing.T) {
	if n := DSatur(build(t, nil)).Len(); n != 0 {
		t.Errorf("Len() = %d, want 0", n)
	}
}
