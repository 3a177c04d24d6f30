package instance

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/qubo/graph"
)

// ReadDIMACS reads an undirected graph from a DIMACS edge-list file.
// Comment ("c"), problem ("p") and empty lines are skipped; every "e u v"
// line becomes one undirected edge. Returns ErrNotFound for a missing file
// and ErrMalformedEdge for an edge line without exactly two integer
// endpoints or with u == v.
func ReadDIMACS(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}

		return nil, err
	}
	defer f.Close()

	g := graph.New()
	sc := bufio.NewScanner(f)
	for line := 1; sc.Scan(); line++ {
		parts := strings.Fields(sc.Text())
		if len(parts) == 0 || parts[0] == "c" || parts[0] == "p" {
			continue
		}
		if parts[0] != "e" {
			continue
		}
		if len(parts) != 3 {
			return nil, fmt.Errorf("%w: %s line %d: %q", ErrMalformedEdge, path, line, sc.Text())
		}
		u, errU := strconv.Atoi(parts[1])
		v, errV := strconv.Atoi(parts[2])
		if errU != nil || errV != nil {
			return nil, fmt.Errorf("%w: %s line %d: invalid endpoints %q",
				ErrMalformedEdge, path, line, sc.Text())
		}
		if addErr := g.AddEdge(u, v); addErr != nil {
			return nil, fmt.Errorf("%w: %s line %d: %v", ErrMalformedEdge, path, line, addErr)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return g, nil
}
