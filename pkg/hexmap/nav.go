// pkg/hexmap/nav.go
package hexmap

import astar "github.com/beefsack/go-astar"

// navHex adapts an arena hex to astar.Pather. It is a value type so the
// library can use it as a map key.
type navHex struct {
	hex   Hex
	arena *Arena
}

// PathNeighbors returns adjacent passable hexes (implements astar.Pather)
func (n navHex) PathNeighbors() []astar.Pather {
	var out []astar.Pather
	for _, h := range n.arena.Neighbors(n.hex) {
		if n.arena.IsPassable(h) {
			out = append(out, navHex{hex: h, arena: n.arena})
		}
	}
	return out
}

// PathNeighborCost — все шаги между соседями стоят одинаково
func (n navHex) PathNeighborCost(to astar.Pather) float64 {
	return 1
}

// PathEstimatedCost returns the hex distance heuristic (implements astar.Pather)
func (n navHex) PathEstimatedCost(to astar.Pather) float64 {
	return float64(n.hex.Distance(to.(navHex).hex))
}

// Path находит кратчайший путь от start до goal включительно. Возвращает nil,
// если пути нет или одна из клеток непроходима.
func (a *Arena) Path(start, goal Hex) []Hex {
	if !a.IsPassable(start) || !a.IsPassable(goal) {
		return nil
	}
	if start == goal {
		return []Hex{start}
	}

	path, _, found := astar.Path(navHex{hex: start, arena: a}, navHex{hex: goal, arena: a})
	if !found {
		return nil
	}

	result := make([]Hex, len(path))
	for i, p := range path {
		result[i] = p.(navHex).hex
	}
	// go-astar отдаёт путь от цели к началу
	if result[0] != start {
		for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
			result[i], result[j] = result[j], result[i]
		}
	}
	return result
}
