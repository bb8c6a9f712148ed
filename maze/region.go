package maze

import "github.com/zyedidia/generic/mapset"

// Region returns every walkable cell 4-connected to from, including from
// itself. A blocked or out-of-bounds start yields an empty set.
//
// Time:   O(W·H).
// Memory: O(W·H) for the visited set and queue.
func (g *Grid) Region(from Cell) mapset.Set[Cell] {
	seen := mapset.New[Cell]()
	if !g.IsWalkable(from) {
		return seen
	}

	// BFS to collect the component
	queue := []Cell{from}
	seen.Put(from)
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, d := range Directions() {
			v, ok := g.Neighbor(u, d)
			if !ok || seen.Has(v) {
				continue
			}
			seen.Put(v)
			queue = append(queue, v)
		}
	}
	return seen
}

// Connected reports whether a and b lie in the same walkable region.
func (g *Grid) Connected(a, b Cell) bool {
	if !g.IsWalkable(a) || !g.IsWalkable(b) {
		return false
	}
	return g.Region(a).Has(b)
}
