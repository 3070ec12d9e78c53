package graph

// pathFrontier pairs a partial path (sink-to-here, in final left-to-right
// order) with the set of vertices one more hop back from its head.
type pathFrontier struct {
	path  []string
	steps map[string]struct{}
}

// Paths enumerates every simple path from source to sink by walking
// backward from sink through inbound edges, breadth-first, so that
// shorter paths tend to surface before longer ones (spec §4.2).
func (g *Graph) Paths(source, sink string) [][]string {
	var out [][]string
	queue := []pathFrontier{{path: []string{sink}, steps: g.inbound[sink]}}

	for len(queue) > 0 {
		front := queue[0]
		queue = queue[1:]

		for item := range front.steps {
			if item == source {
				full := append([]string{item}, front.path...)
				out = append(out, full)
				continue
			}
			if contains(front.path, item) {
				continue
			}
			inbound := g.inbound[item]
			if len(inbound) == 0 {
				continue
			}
			nextPath := append([]string{item}, front.path...)
			queue = append(queue, pathFrontier{path: nextPath, steps: inbound})
		}
	}

	return out
}

func contains(path []string, v string) bool {
	for _, p := range path {
		if p == v {
			return true
		}
	}
	return false
}
