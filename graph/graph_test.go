package graph_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eswald/rankedvote/graph"
)

func sortedPairs(pairs []graph.Pair) [][2]string {
	out := make([][2]string, len(pairs))
	for i, p := range pairs {
		out[i] = p
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})
	return out
}

func TestEdgeAndRoots(t *testing.T) {
	g := graph.New("A", "B", "C")
	g.Edge("A", "B")
	require.ElementsMatch(t, []string{"A", "C"}, g.Roots())
}

func TestPopDrainsLayers(t *testing.T) {
	g := graph.New("A", "B", "C")
	g.Edge("A", "B")
	g.Edge("B", "C")

	require.ElementsMatch(t, []string{"A"}, g.Pop())
	require.ElementsMatch(t, []string{"B"}, g.Pop())
	require.ElementsMatch(t, []string{"C"}, g.Pop())
	require.True(t, g.Empty())
}

func TestRemoveEdgePanicsIfAbsent(t *testing.T) {
	g := graph.New("A", "B")
	require.Panics(t, func() { g.RemoveEdge("A", "B") })
}

func TestRemoveVertexDropsTouchingEdges(t *testing.T) {
	g := graph.New("A", "B", "C")
	g.Edge("A", "B")
	g.Edge("B", "C")
	g.RemoveVertex("B")
	require.False(t, g.HasEdge("A", "B"))
	require.False(t, g.HasEdge("B", "C"))
	require.ElementsMatch(t, []string{"A", "C"}, g.Roots())
}

func TestAcyclicEdgesPrunesCycleAtomically(t *testing.T) {
	// A->B and B->A submitted together: both are pruned symmetrically
	// because the pruning decision is made against the snapshot with
	// both edges present, not edge-by-edge.
	g := graph.New("A", "B")
	added := g.AcyclicEdges([]graph.Pair{{"A", "B"}, {"B", "A"}})
	require.Equal(t, 0, added)
	require.False(t, g.HasEdge("A", "B"))
	require.False(t, g.HasEdge("B", "A"))
}

func TestAcyclicEdgesKeepsNonCyclicBatch(t *testing.T) {
	g := graph.New("A", "B", "C")
	added := g.AcyclicEdges([]graph.Pair{{"A", "B"}, {"B", "C"}})
	require.Equal(t, 2, added)
	require.True(t, g.HasEdge("A", "B"))
	require.True(t, g.HasEdge("B", "C"))
}

func TestAcyclicEdgesRejectsThirdEdgeClosingCycle(t *testing.T) {
	g := graph.New("A", "B", "C")
	g.AcyclicEdges([]graph.Pair{{"A", "B"}, {"B", "C"}})
	added := g.AcyclicEdges([]graph.Pair{{"C", "A"}})
	require.Equal(t, 0, added)
	require.False(t, g.HasEdge("C", "A"))
}

func TestRiverEdgesRejectsBranching(t *testing.T) {
	g := graph.New("A", "B", "C")
	rejected := g.RiverEdges([]graph.Pair{{"A", "C"}, {"B", "C"}})
	require.ElementsMatch(t, [][2]string{{"A", "C"}, {"B", "C"}}, sortedPairs(rejected))
	require.False(t, g.HasEdge("A", "C"))
	require.False(t, g.HasEdge("B", "C"))
}

func TestRiverEdgesRejectsSecondInboundToSameSink(t *testing.T) {
	g := graph.New("A", "B", "C")
	rejected := g.RiverEdges([]graph.Pair{{"A", "B"}})
	require.Empty(t, rejected)
	require.True(t, g.HasEdge("A", "B"))

	rejected = g.RiverEdges([]graph.Pair{{"C", "B"}})
	require.Equal(t, []graph.Pair{{"C", "B"}}, rejected)
	require.False(t, g.HasEdge("C", "B"))
}

func TestPathsShortestFirst(t *testing.T) {
	g := graph.New("A", "B", "C", "D")
	g.Edge("A", "B")
	g.Edge("B", "D")
	g.Edge("A", "C")
	g.Edge("C", "D")
	g.Edge("A", "D")

	paths := g.Paths("A", "D")
	require.Len(t, paths, 3)
	require.Equal(t, []string{"A", "D"}, paths[0])
}

func TestEdgesEnumeration(t *testing.T) {
	g := graph.New("A", "B")
	g.Edge("A", "B")
	require.Equal(t, [][2]string{{"A", "B"}}, g.Edges())
}
