package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/colorgraph/pkg/coloring"
	"github.com/matzehuels/colorgraph/pkg/harness"
)

func squareResult(t *testing.T) harness.Result {
	t.Helper()
	c, err := coloring.FromMap(map[string]int{"A": 0, "B": 1, "C": 0, "D": 1})
	if err != nil {
		t.Fatal(err)
	}
	return harness.Result{
		Name:      "Degree greedy",
		Key:       harness.KeyDegreeGreedy,
		UsesOrder: true,
		Coloring:  c,
		Order:     []string{"A", "B", "C", "D"},
		Colors:    2,
		Duration:  1500 * time.Microsecond,
	}
}

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	c := &CLI{Out: &buf}

	c.printResult(squareResult(t))

	for _, want := range []string{"[A B C D]", "{A:0 B:1 C:0 D:1}", "1.500 ms", "2 colors (including creating the order)"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("output missing %q:\n%s", want, buf.String())
		}
	}
}

func TestPrintGroups(t *testing.T) {
	tests := []struct {
		labels bool
		want   string
	}{
		{true, "A C"},
		{false, "2 vertices"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		c := &CLI{Out: &buf}
		c.printGroups(squareResult(t), tt.labels)
		if !strings.Contains(buf.String(), tt.want) {
			t.Errorf("labels=%v: output missing %q:\n%s", tt.labels, tt.want, buf.String())
		}
	}
}

func TestRenderStatsTable(t *testing.T) {
	out := renderStatsTable([]harness.Stats{
		{Name: "DSatur", Key: harness.KeyDSatur, Runs: 4, TotalColors: 10, TotalTime: 8 * time.Millisecond},
	})

	for _, want := range []string{"Algorithm", "DSatur", "2.50", "8.000 ms", "2.000 ms"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}
