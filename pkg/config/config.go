// Package config loads colorgraph settings from a TOML file.
//
// Every key is optional. A key with the wrong type or an invalid value is
// reported as an INVALID_CONFIG warning and keeps its default; the rest of
// the file still applies. Only a file that is not valid TOML fails the load.
//
// Example file:
//
//	graph_size = 12
//	erdos_renyi_p = 0.3
//	coloring_to_show = "DSatur"
//	times_to_run = 1
//	seed = 7
//
//	[iterated_greedy]
//	limit = 100
//	goal = 3
//
//	[iterated_greedy.ratios]
//	reverse = 50
//	random = 30
//	largest = 50
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/colorgraph/pkg/coloring"
	cerrors "github.com/matzehuels/colorgraph/pkg/errors"
	"github.com/matzehuels/colorgraph/pkg/graph"
	"github.com/matzehuels/colorgraph/pkg/graph/gen"
)

// DefaultFile is the file name looked up in the working directory.
const DefaultFile = "colorgraph.toml"

// Config holds every setting the CLI and API read.
type Config struct {
	GraphSize             int      `toml:"graph_size"`
	RandomGraphEdgeNumber int      `toml:"random_graph_edge_number"`
	ErdosRenyiP           float64  `toml:"erdos_renyi_p"`
	ColoringToShow        string   `toml:"coloring_to_show"`
	ShowLabels            bool     `toml:"show_labels"`
	UseErdosRenyi         bool     `toml:"use_erdos_renyi"`
	TimesToRun            int      `toml:"times_to_run"`
	Seed                  uint64   `toml:"seed"`
	IteratedGreedy        IGConfig `toml:"iterated_greedy"`
}

// IGConfig holds the Iterated Greedy settings.
type IGConfig struct {
	Limit        int             `toml:"limit"`
	Goal         int             `toml:"goal"`
	SortByDegree bool            `toml:"sort_by_degree"`
	Ratios       coloring.Ratios `toml:"ratios"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		GraphSize:             6,
		RandomGraphEdgeNumber: 2,
		ErdosRenyiP:           0.5,
		ColoringToShow:        "",
		ShowLabels:            true,
		UseErdosRenyi:         true,
		TimesToRun:            1,
		Seed:                  coloring.DefaultSeed,
		IteratedGreedy: IGConfig{
			Limit:  100,
			Goal:   1,
			Ratios: coloring.DefaultRatios(),
		},
	}
}

// IGOptions converts the Iterated Greedy settings. Rand and OnIteration are
// left for the caller.
func (c Config) IGOptions() coloring.IGOptions {
	return coloring.IGOptions{
		Limit:        c.IteratedGreedy.Limit,
		Goal:         c.IteratedGreedy.Goal,
		Ratios:       c.IteratedGreedy.Ratios,
		SortByDegree: c.IteratedGreedy.SortByDegree,
	}
}

// NewGraph generates a random graph of GraphSize vertices, with the
// Erdős–Rényi model when UseErdosRenyi is set and the random edge model
// otherwise.
func (c Config) NewGraph(rng *rand.Rand) (*graph.Undirected[string], error) {
	if c.UseErdosRenyi {
		return gen.ErdosRenyi(c.GraphSize, c.ErdosRenyiP, rng)
	}
	return gen.RandomEdges(c.GraphSize, c.RandomGraphEdgeNumber, rng)
}

// Write encodes c as TOML.
func (c Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Load reads path and applies it over [Default].
//
// A missing file is not an error: the defaults are returned with a single
// NOT_FOUND warning. Invalid keys produce INVALID_CONFIG warnings and keep
// their defaults. err is non-nil only when the file cannot be read or
// parsed.
func Load(path string) (cfg Config, warnings []error, err error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), []error{cerrors.New(cerrors.ErrCodeNotFound, "%s not found, using default values", path)}, nil
	}
	if err != nil {
		return Config{}, nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// rawConfig defers decoding of each key so one bad value does not discard
// the others.
type rawConfig struct {
	GraphSize             toml.Primitive `toml:"graph_size"`
	RandomGraphEdgeNumber toml.Primitive `toml:"random_graph_edge_number"`
	ErdosRenyiP           toml.Primitive `toml:"erdos_renyi_p"`
	ColoringToShow        toml.Primitive `toml:"coloring_to_show"`
	ShowLabels            toml.Primitive `toml:"show_labels"`
	UseErdosRenyi         toml.Primitive `toml:"use_erdos_renyi"`
	TimesToRun            toml.Primitive `toml:"times_to_run"`
	Seed                  toml.Primitive `toml:"seed"`
	IteratedGreedy        struct {
		Limit        toml.Primitive `toml:"limit"`
		Goal         toml.Primitive `toml:"goal"`
		SortByDegree toml.Primitive `toml:"sort_by_degree"`
		Ratios       toml.Primitive `toml:"ratios"`
	} `toml:"iterated_greedy"`
}

// Parse decodes TOML data over [Default]. See [Load] for the warning rules.
func Parse(data []byte) (Config, []error, error) {
	var raw rawConfig
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return Config{}, nil, cerrors.Wrap(cerrors.ErrCodeInvalidConfig, err, "parse config")
	}

	cfg := Default()
	ig := &raw.IteratedGreedy
	warnings := []error{
		decodeKey(md, raw.GraphSize, "graph_size", &cfg.GraphSize, positive("graph_size")),
		decodeKey(md, raw.RandomGraphEdgeNumber, "random_graph_edge_number", &cfg.RandomGraphEdgeNumber, positive("random_graph_edge_number")),
		decodeKey(md, raw.ErdosRenyiP, "erdos_renyi_p", &cfg.ErdosRenyiP, probability("erdos_renyi_p")),
		decodeKey(md, raw.ColoringToShow, "coloring_to_show", &cfg.ColoringToShow, cerrors.ValidateAlgorithmKey),
		decodeKey(md, raw.ShowLabels, "show_labels", &cfg.ShowLabels, nil),
		decodeKey(md, raw.UseErdosRenyi, "use_erdos_renyi", &cfg.UseErdosRenyi, nil),
		decodeKey(md, raw.TimesToRun, "times_to_run", &cfg.TimesToRun, positive("times_to_run")),
		decodeKey(md, raw.Seed, "seed", &cfg.Seed, nil),
		decodeKey(md, ig.Limit, "iterated_greedy.limit", &cfg.IteratedGreedy.Limit, positive("iterated_greedy.limit")),
		decodeKey(md, ig.Goal, "iterated_greedy.goal", &cfg.IteratedGreedy.Goal, positive("iterated_greedy.goal")),
		decodeKey(md, ig.SortByDegree, "iterated_greedy.sort_by_degree", &cfg.IteratedGreedy.SortByDegree, nil),
		decodeKey(md, ig.Ratios, "iterated_greedy.ratios", &cfg.IteratedGreedy.Ratios, coloring.Ratios.Validate),
	}
	warnings = append(warnings, unknownKeys(md)...)

	return cfg, compact(warnings), nil
}

// decodeKey decodes prim into dst when key is present. On a type mismatch or
// a failed check dst keeps its value and an INVALID_CONFIG error is returned.
func decodeKey[T any](md toml.MetaData, prim toml.Primitive, key string, dst *T, check func(T) error) error {
	if !md.IsDefined(strings.Split(key, ".")...) {
		return nil
	}
	var v T
	if err := md.PrimitiveDecode(prim, &v); err != nil {
		return cerrors.Wrap(cerrors.ErrCodeInvalidConfig, err, "%s has the wrong type, using default %v", key, *dst)
	}
	if check != nil {
		if err := check(v); err != nil {
			return cerrors.Wrap(cerrors.ErrCodeInvalidConfig, err, "%s is invalid, using default %v", key, *dst)
		}
	}
	*dst = v
	return nil
}

func positive(name string) func(int) error {
	return func(v int) error { return cerrors.ValidatePositive(name, v) }
}

func probability(name string) func(float64) error {
	return func(v float64) error { return cerrors.ValidateProbability(name, v) }
}

var knownKeys = map[string]bool{
	"graph_size":                        true,
	"random_graph_edge_number":          true,
	"erdos_renyi_p":                     true,
	"coloring_to_show":                  true,
	"show_labels":                       true,
	"use_erdos_renyi":                   true,
	"times_to_run":                      true,
	"seed":                              true,
	"iterated_greedy":                   true,
	"iterated_greedy.limit":             true,
	"iterated_greedy.goal":              true,
	"iterated_greedy.sort_by_degree":    true,
	"iterated_greedy.ratios":            true,
	"iterated_greedy.ratios.reverse":    true,
	"iterated_greedy.ratios.random":     true,
	"iterated_greedy.ratios.largest":    true,
	"iterated_greedy.ratios.smallest":   true,
	"iterated_greedy.ratios.increasing": true,
	"iterated_greedy.ratios.decreasing": true,
}

func unknownKeys(md toml.MetaData) []error {
	var errs []error
	for _, k := range md.Keys() {
		if !knownKeys[k.String()] {
			errs = append(errs, cerrors.New(cerrors.ErrCodeInvalidConfig, "unknown key %q ignored", k.String()))
		}
	}
	return errs
}

func compact(errs []error) []error {
	out := errs[:0]
	for _, err := range errs {
		if err != nil {
			out = append(out, err)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
