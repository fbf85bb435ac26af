// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for core tests.
package core_test

import (
	"testing"

	"github.com/katalvlaran/chroma/core"
	"github.com/stretchr/testify/require"
)

// petersenAdj is the Petersen graph exactly as listed in the coloring notes.
var petersenAdj = map[core.VertexID][]core.VertexID{
	1: {2, 4, 3}, 2: {1, 5, 9}, 3: {1, 7, 8}, 4: {1, 6, 10}, 5: {2, 6, 8},
	6: {4, 5, 7}, 7: {3, 6, 9}, 8: {3, 5, 10}, 9: {2, 7, 10}, 10: {4, 8, 9},
}

// oneWayTriangle records each triangle edge from a single endpoint only.
var oneWayTriangle = map[core.VertexID][]core.VertexID{
	1: {2},
	2: {3},
	3: {1},
}

// mustGraph builds a graph or fails the test immediately.
func mustGraph(t *testing.T, adj map[core.VertexID][]core.VertexID, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(adj, opts...)
	require.NoError(t, err)
	require.NotNil(t, g)

	return g
}
