// Package harness times coloring algorithms and reports their results.
//
// An [Algorithm] pairs a display name and a stable key with a [ColorFunc].
// [DefaultAlgorithms] returns the standard table; callers may trim or extend
// it since the slice is theirs.
//
// # Modes
//
//   - [Run]: time a single algorithm on a single graph
//   - [Runner.Once]: run every algorithm on one graph and return a [Report]
//   - [Runner.Many]: run every algorithm on many generated graphs and return
//     one [Stats] per algorithm
//
// # Usage
//
//	runner := harness.NewRunner(nil, 42, logger)
//	report, err := runner.Once(ctx, g)
//	if err != nil {
//	    return err
//	}
//	for _, res := range report.Results {
//	    fmt.Println(res.Name, res.Colors, res.Duration)
//	}
//
// Observability hooks registered with [observability.SetColoringHooks] fire
// around every run and after every Iterated Greedy iteration.
package harness
