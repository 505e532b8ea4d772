package phylo

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/AlgoLab/cppp/graph"
)

// writeDOT renders g as an undirected DOT graph. Every vertex appears as a
// node statement so isolated vertices survive the round trip, and each edge
// is listed once with u < v.
func writeDOT(g *graph.Undirected, name string) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "graph %s {\n", name)
	for v := 0; v < g.Order(); v++ {
		fmt.Fprintf(&b, "  %d;\n", v)
	}
	for u := 0; u < g.Order(); u++ {
		for _, v := range g.Neighbors(u) {
			if u < v {
				fmt.Fprintf(&b, "  %d -- %d;\n", u, v)
			}
		}
	}
	b.WriteString("}\n")

	return b.Bytes()
}

// readDOTFile loads the edges of a dump produced by writeDOT into g, which
// must already have the right order. Node statements are skipped; only
// "u -- v;" lines contribute edges.
func readDOTFile(path string, g *graph.Undirected) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("phylo: reading graph dump: %w", err)
	}
	g.NukeEdges()
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(strings.TrimSpace(line), ";")
		left, right, found := strings.Cut(line, "--")
		if !found {
			continue
		}
		u, err := strconv.Atoi(strings.TrimSpace(left))
		if err != nil {
			return fmt.Errorf("phylo: bad edge line %q in %s", line, path)
		}
		v, err := strconv.Atoi(strings.TrimSpace(right))
		if err != nil {
			return fmt.Errorf("phylo: bad edge line %q in %s", line, path)
		}
		if err = g.AddEdge(u, v); err != nil {
			return fmt.Errorf("phylo: bad edge (%d,%d) in %s: %w", u, v, path, err)
		}
	}

	return nil
}
