package coloring

import (
	"reflect"
	"slices"
	"strings"
	"testing"

	cerrors "github.com/matzehuels/colorgraph/pkg/errors"
)

func igOptions(seed uint64) IGOptions {
	return IGOptions{
		Limit:  20,
		Goal:   1,
		Ratios: DefaultRatios(),
		Rand:   NewRand(seed),
	}
}

func TestIteratedGreedyCompleteGraph(t *testing.T) {
	g := complete(t, 4)

	c, err := IteratedGreedy(g, DSatur(g), igOptions(1))
	if err != nil {
		t.Fatal(err)
	}
	if c.NumColors() != 4 {
		t.Errorf("NumColors() = %d, want 4", c.NumColors())
	}
	if err := c.Validate(g); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestIteratedGreedyNeverWorseThanInitial(t *testing.T) {
	for seed := uint64(1); seed <= 15; seed++ {
		g := erdosRenyi(t, 30, 0.3, seed)
		initial, err := Greedy(g, RandomOrder(g, NewRand(seed)))
		if err != nil {
			t.Fatal(err)
		}

		opts := igOptions(seed)
		opts.Ratios = Ratios{Reverse: 1, Random: 1, LargestFirst: 1, SmallestFirst: 1, IncreasingDegree: 1, DecreasingDegree: 1}
		opts.SortByDegree = seed%2 == 0

		prev := initial.NumColors()
		opts.OnIteration = func(it Iteration) {
			if it.Colors > prev {
				t.Errorf("seed %d iteration %d: %d colors, up from %d", seed, it.Index, it.Colors, prev)
			}
			prev = it.Colors
		}

		c, err := IteratedGreedy(g, initial, opts)
		if err != nil {
			t.Fatal(err)
		}
		if err := c.Validate(g); err != nil {
			t.Fatalf("seed %d: Validate() = %v", seed, err)
		}
		if c.NumColors() > initial.NumColors() {
			t.Errorf("seed %d: %d colors, initial had %d", seed, c.NumColors(), initial.NumColors())
		}
	}
}

func TestIteratedGreedyReproducible(t *testing.T) {
	g := erdosRenyi(t, 40, 0.25, 9)
	initial, err := Greedy(g, RandomOrder(g, NewRand(9)))
	if err != nil {
		t.Fatal(err)
	}

	a, err := IteratedGreedy(g, initial, igOptions(77))
	if err != nil {
		t.Fatal(err)
	}
	b, err := IteratedGreedy(g, initial, igOptions(77))
	if err != nil {
		t.Fatal(err)
	}
	if !sameColoring(a, b) {
		t.Error("same seed produced different colorings")
	}
}

func TestIteratedGreedyDoesNotModifyInitial(t *testing.T) {
	g := erdosRenyi(t, 20, 0.3, 4)
	initial, err := Greedy(g, RandomOrder(g, NewRand(4)))
	if err != nil {
		t.Fatal(err)
	}
	snapshot, err := FromMap(initial.Map())
	if err != nil {
		t.Fatal(err)
	}
	order := initial.Vertices()

	if _, err := IteratedGreedy(g, initial, igOptions(4)); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(snapshot.Map(), initial.Map()) || !slices.Equal(order, initial.Vertices()) {
		t.Error("IteratedGreedy modified the initial coloring")
	}
}

func TestIteratedGreedyFirstIterationAlwaysRuns(t *testing.T) {
	g := square(t)
	initial := DSatur(g)
	if initial.NumColors() != 2 {
		t.Fatalf("DSatur(square) = %d colors, want 2", initial.NumColors())
	}

	var iterations []Iteration
	opts := igOptions(1)
	opts.Goal = g.Len()
	opts.OnIteration = func(it Iteration) { iterations = append(iterations, it) }

	c, err := IteratedGreedy(g, initial, opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(iterations) != 1 || iterations[0].Index != 0 {
		t.Fatalf("iterations = %+v, want exactly the first", iterations)
	}
	if c.NumColors() != 2 {
		t.Errorf("NumColors() = %d, want 2", c.NumColors())
	}
}

func TestIteratedGreedyStopsAfterLimit(t *testing.T) {
	g := complete(t, 5)

	var iterations []Iteration
	opts := igOptions(3)
	opts.Limit = 7
	opts.OnIteration = func(it Iteration) { iterations = append(iterations, it) }

	if _, err := IteratedGreedy(g, DSatur(g), opts); err != nil {
		t.Fatal(err)
	}

	// K5 can never drop below five colors, so every iteration is stale.
	if len(iterations) != 7 {
		t.Fatalf("ran %d iterations, want 7", len(iterations))
	}
	for i, it := range iterations {
		if it.Index != i || it.Stale != i+1 || it.Colors != 5 {
			t.Errorf("iteration %d = %+v, want index %d, stale %d, 5 colors", i, it, i, i+1)
		}
	}
}

func TestIteratedGreedyTerminates(t *testing.T) {
	g := erdosRenyi(t, 50, 0.2, 21)
	initial, err := Greedy(g, RandomOrder(g, NewRand(21)))
	if err != nil {
		t.Fatal(err)
	}

	var last Iteration
	opts := igOptions(21)
	opts.Limit = 10
	opts.OnIteration = func(it Iteration) { last = it }

	c, err := IteratedGreedy(g, initial, opts)
	if err != nil {
		t.Fatal(err)
	}
	// A 50 vertex graph with p=0.2 is never 1-colorable, so the run ends on
	// the stale limit.
	if last.Stale != 10 {
		t.Errorf("last iteration stale = %d, want 10", last.Stale)
	}
	if last.Colors != c.NumColors() {
		t.Errorf("last iteration colors = %d, result has %d", last.Colors, c.NumColors())
	}
}

func TestIteratedGreedyErrors(t *testing.T) {
	g := square(t)
	full := DSatur(g)
	partial, err := FromMap(map[string]int{"A": 0, "B": 1})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		initial  *Coloring[string]
		mutate   func(*IGOptions)
		wantCode cerrors.Code
	}{
		{"zero ratios", full, func(o *IGOptions) { o.Ratios = Ratios{} }, cerrors.ErrCodeInvalidRatios},
		{"negative ratio", full, func(o *IGOptions) { o.Ratios = Ratios{Reverse: -1, Random: 5} }, cerrors.ErrCodeInvalidRatios},
		{"zero limit", full, func(o *IGOptions) { o.Limit = 0 }, cerrors.ErrCodeInvalidInput},
		{"zero goal", full, func(o *IGOptions) { o.Goal = 0 }, cerrors.ErrCodeInvalidInput},
		{"incomplete initial", partial, func(*IGOptions) {}, cerrors.ErrCodeIncompleteColoring},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := igOptions(1)
			tt.mutate(&opts)
			c, err := IteratedGreedy(g, tt.initial, opts)
			if c != nil {
				t.Error("IteratedGreedy() returned a coloring alongside an error")
			}
			if got := cerrors.GetCode(err); got != tt.wantCode {
				t.Errorf("error code = %q (%v), want %q", got, err, tt.wantCode)
			}
		})
	}
}

func TestIteratedGreedyNilRandUsesDefaultSeed(t *testing.T) {
	g := erdosRenyi(t, 25, 0.3, 2)
	initial := DSatur(g)

	opts := igOptions(0)
	opts.Rand = nil
	a, err := IteratedGreedy(g, initial, opts)
	if err != nil {
		t.Fatal(err)
	}
	b, err := IteratedGreedy(g, initial, igOptions(DefaultSeed))
	if err != nil {
		t.Fatal(err)
	}
	if !sameColoring(a, b) {
		t.Error("nil Rand did not behave like NewRand(DefaultSeed)")
	}
}

func TestRatiosValidate(t *testing.T) {
	for _, r := range []Ratios{DefaultRatios(), {DecreasingDegree: 1}} {
		if err := r.Validate(); err != nil {
			t.Errorf("%+v.Validate() = %v", r, err)
		}
	}

	if err := (Ratios{}).Validate(); !cerrors.Is(err, cerrors.ErrCodeInvalidRatios) {
		t.Errorf("zero ratios error = %v, want INVALID_RATIOS", err)
	}

	err := Ratios{Reverse: 10, SmallestFirst: -2}.Validate()
	if err == nil || !strings.Contains(err.Error(), "smallest-first") {
		t.Errorf("negative weight error = %v, want it to name smallest-first", err)
	}
}

func TestRatiosSample(t *testing.T) {
	rng := NewRand(5)

	only := Ratios{Random: 3}
	for range 50 {
		if s := only.Sample(rng); s != StrategyRandom {
			t.Fatalf("Sample() = %v, want random", s)
		}
	}

	pair := Ratios{SmallestFirst: 1, DecreasingDegree: 1}
	seen := make(map[Strategy]int)
	for range 400 {
		seen[pair.Sample(rng)]++
	}
	if len(seen) != 2 || seen[StrategySmallestFirst] <= 100 || seen[StrategyDecreasingDegree] <= 100 {
		t.Errorf("Sample() counts = %v, want both strategies well represented", seen)
	}
}

func TestRatiosSampleFollowsWeights(t *testing.T) {
	rng := NewRand(8)
	r := DefaultRatios()

	counts := make(map[Strategy]int)
	const draws = 13000
	for range draws {
		counts[r.Sample(rng)]++
	}
	// Expected 5000 / 3000 / 5000 out of 13000.
	want := map[Strategy]int{StrategyReverse: 5000, StrategyRandom: 3000, StrategyLargestFirst: 5000}
	for s := range numStrategies {
		got, exp := counts[s], want[s]
		if got < exp-400 || got > exp+400 {
			t.Errorf("%v drawn %d times, want %d±400", s, got, exp)
		}
	}
}

func TestRatiosSampleRejectsInvalid(t *testing.T) {
	tests := []struct {
		name   string
		ratios Ratios
	}{
		{"all zero", Ratios{}},
		{"negative", Ratios{Reverse: 5, Random: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				err, _ := recover().(error)
				if !cerrors.Is(err, cerrors.ErrCodeInvalidRatios) {
					t.Errorf("Sample() panicked with %v, want an INVALID_RATIOS error", err)
				}
			}()
			tt.ratios.Sample(NewRand(1))
		})
	}
}

func TestStrategyString(t *testing.T) {
	tests := []struct {
		s    Strategy
		want string
	}{
		{StrategyReverse, "reverse"},
		{StrategyLargestFirst, "largest-first"},
		{StrategyDecreasingDegree, "decreasing-degree"},
		{Strategy(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("Strategy(%d).String() = %q, want %q", int(tt.s), got, tt.want)
		}
	}
}

func groupsFixture() [][]string {
	return [][]string{{"A"}, {"B", "C", "D"}, {"E", "F"}, {"G", "H", "I"}}
}

func TestReorderReverse(t *testing.T) {
	g := build(t, []string{"A"})
	reorder := reorderTable(g, NewRand(1), false)

	got := reorder[StrategyReverse](groupsFixture())
	want := [][]string{{"G", "H", "I"}, {"E", "F"}, {"B", "C", "D"}, {"A"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("reverse = %v, want %v", got, want)
	}
	if back := reorder[StrategyReverse](got); !reflect.DeepEqual(back, groupsFixture()) {
		t.Errorf("reverse twice = %v, want the original order", back)
	}
}

func TestReorderBySize(t *testing.T) {
	g := build(t, []string{"A"})
	reorder := reorderTable(g, NewRand(1), false)

	// largest-first sorts ascending by size, smallest-first descending.
	// Both keep the relative order of equal sized groups.
	tests := []struct {
		s    Strategy
		want [][]string
	}{
		{StrategyLargestFirst, [][]string{{"A"}, {"E", "F"}, {"B", "C", "D"}, {"G", "H", "I"}}},
		{StrategySmallestFirst, [][]string{{"B", "C", "D"}, {"G", "H", "I"}, {"E", "F"}, {"A"}}},
	}
	for _, tt := range tests {
		if got := reorder[tt.s](groupsFixture()); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%v = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestReorderRandomKeepsMembers(t *testing.T) {
	g := build(t, []string{"A"})
	reorder := reorderTable(g, NewRand(1), false)

	got := reorder[StrategyRandom](groupsFixture())
	if len(got) != 4 {
		t.Fatalf("random kept %d groups, want 4", len(got))
	}
	for _, group := range groupsFixture() {
		if !slices.ContainsFunc(got, func(x []string) bool { return slices.Equal(x, group) }) {
			t.Errorf("group %v lost", group)
		}
	}
}

func TestReorderByDegree(t *testing.T) {
	// Degrees: A=3, B=C=D=1, others 0.
	g := build(t, []string{"A", "B", "C", "D", "E", "F", "G", "H", "I"},
		[2]string{"A", "B"}, [2]string{"A", "C"}, [2]string{"A", "D"})

	keep := reorderTable(g, NewRand(1), false)
	for _, s := range []Strategy{StrategyIncreasingDegree, StrategyDecreasingDegree} {
		if got := keep[s](groupsFixture()); !reflect.DeepEqual(got, groupsFixture()) {
			t.Errorf("%v without sorting = %v, want the original order", s, got)
		}
	}

	sorted := reorderTable(g, NewRand(1), true)
	tests := []struct {
		s    Strategy
		want [][]string
	}{
		{StrategyIncreasingDegree, [][]string{{"E", "F"}, {"G", "H", "I"}, {"A"}, {"B", "C", "D"}}},
		{StrategyDecreasingDegree, [][]string{{"A"}, {"B", "C", "D"}, {"E", "F"}, {"G", "H", "I"}}},
	}
	for _, tt := range tests {
		if got := sorted[tt.s](groupsFixture()); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%v = %v, want %v", tt.s, got, tt.want)
		}
	}
}
