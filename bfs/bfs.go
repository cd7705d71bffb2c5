package bfs

import (
	"errors"
	"fmt"

	"github.com/SpectralGraphDrawingKbtuDiploma/spectra/core"
)

// ErrGraphNil is returned when a nil *core.Graph is passed to Distances.
var ErrGraphNil = errors.New("bfs: graph is nil")

// ErrStartOutOfRange is returned when start is outside [0, g.N()).
var ErrStartOutOfRange = errors.New("bfs: start vertex out of range")

// walker encapsulates mutable BFS state, kept off the Graph so that
// Distances can be called concurrently from multiple goroutines against
// the same (immutable) core.Graph.
type walker struct {
	g       *core.Graph
	queue   []int
	visited []bool
	dist    []int
}

// Distances runs single-source BFS from start over g and returns a
// length-g.N() slice of edge-count distances; unreachable vertices hold
// -1. Returns ErrGraphNil or ErrStartOutOfRange on invalid input.
//
// Complexity: O(V + E) time, O(V) memory.
func Distances(g *core.Graph, start int) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.N()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("bfs.Distances(start=%d): %w", start, ErrStartOutOfRange)
	}

	w := &walker{
		g:       g,
		queue:   make([]int, 0, n),
		visited: make([]bool, n),
		dist:    make([]int, n),
	}
	for i := range w.dist {
		w.dist[i] = -1
	}

	w.enqueue(start, 0)
	w.loop()

	return w.dist, nil
}

// enqueue marks v visited at distance d and appends it to the queue.
func (w *walker) enqueue(v, d int) {
	w.visited[v] = true
	w.dist[v] = d
	w.queue = append(w.queue, v)
}

// loop drains the queue, visiting neighbors in adjacency order.
func (w *walker) loop() {
	for len(w.queue) > 0 {
		u := w.queue[0]
		w.queue = w.queue[1:]
		nextDepth := w.dist[u] + 1
		for _, v := range w.g.Neighbors(u) {
			if !w.visited[v] {
				w.enqueue(v, nextDepth)
			}
		}
	}
}
