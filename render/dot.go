package render

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/awalterschulze/gographviz"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/turnmaze/relax"
	"github.com/katalvlaran/turnmaze/statespace"
)

// ErrNilTable indicates that a nil *relax.Table was passed to Graph or DOT.
var ErrNilTable = errors.New("render: table is nil")

// GraphName is the name of the exported digraph.
const GraphName = "optimal"

// Node fill colours.
const (
	dotColorStart = "seagreen2"
	dotColorGoal  = "steelblue2"
	dotColorNode  = "seashell2"
)

// DOT writes the optimal subgraph of tbl restricted to vs in Graphviz DOT
// format. vs normally comes from optimal.Collect.
func DOT(w io.Writer, tbl *relax.Table, vs mapset.Set[statespace.Vertex]) error {
	graph, err := Graph(tbl, vs)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, graph.String())
	return err
}

// Graph builds the optimal subgraph: one node per vertex of vs, labelled with
// its cost, and one edge per forward move or rotation between two vertices of
// vs whose weight exactly accounts for their cost difference.
func Graph(tbl *relax.Table, vs mapset.Set[statespace.Vertex]) (*gographviz.Graph, error) {
	if tbl == nil {
		return nil, ErrNilTable
	}
	s := tbl.Space()

	// Deterministic order: dense vertex index.
	order := make([]statespace.Vertex, 0, vs.Size())
	vs.Each(func(v statespace.Vertex) {
		order = append(order, v)
	})
	slices.SortFunc(order, func(a, b statespace.Vertex) int {
		return s.Index(a) - s.Index(b)
	})

	graph := gographviz.NewGraph()
	if err := graph.SetName(GraphName); err != nil {
		return nil, err
	}
	if err := graph.SetDir(true); err != nil {
		return nil, err
	}
	for field, value := range map[string]string{
		"rankdir": "LR",
		"nodesep": "0.3",
		"ranksep": "0.4",
	} {
		if err := graph.AddAttr(GraphName, field, value); err != nil {
			return nil, fmt.Errorf("render: graph attribute %s: %w", field, err)
		}
	}

	start := tbl.Start()
	goalCost := maxCost(tbl, order)

	for _, v := range order {
		d := tbl.Dist(v)
		fill := dotColorNode
		switch {
		case v == start:
			fill = dotColorStart
		case d == goalCost:
			fill = dotColorGoal
		}
		err := graph.AddNode(GraphName, nodeID(v), map[string]string{
			"label":     fmt.Sprintf(`"%v\n%d"`, v, d),
			"shape":     "box",
			"style":     "filled",
			"fillcolor": fill,
		})
		if err != nil {
			return nil, fmt.Errorf("render: node %v: %w", v, err)
		}
	}

	buf := make([]statespace.Edge, 0, 2*4)
	for _, v := range order {
		d := tbl.Dist(v)
		buf = s.AppendNeighbors(buf[:0], v)
		buf = s.AppendRotations(buf, v)
		for _, e := range buf {
			if !vs.Has(e.To) || d+e.Weight != tbl.Dist(e.To) {
				continue
			}
			attrs := map[string]string{
				"label": fmt.Sprintf(`"%d"`, e.Weight),
			}
			if e.Kind == statespace.Rotate {
				attrs["style"] = "dashed"
			}
			if err := graph.AddEdge(nodeID(v), nodeID(e.To), true, attrs); err != nil {
				return nil, fmt.Errorf("render: edge %v→%v: %w", v, e.To, err)
			}
		}
	}

	return graph, nil
}

// nodeID is a bare DOT identifier such as "x3y1E".
func nodeID(v statespace.Vertex) string {
	return fmt.Sprintf("x%dy%d%c", v.Cell.X, v.Cell.Y, v.Facing.String()[0])
}

// maxCost is the largest finite cost among vs; on an optimal set that is the
// goal's minimum cost.
func maxCost(tbl *relax.Table, vs []statespace.Vertex) int64 {
	var hi int64 = -1
	for _, v := range vs {
		if d := tbl.Dist(v); d != relax.Infinity && d > hi {
			hi = d
		}
	}
	return hi
}
