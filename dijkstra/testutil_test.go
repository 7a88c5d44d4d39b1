// Package dijkstra_test fixtures: small undirected weighted graphs
// (modeled as directed edges in both orientations), drawn from classic
// grid and barbell shapes, plus helpers to assert path validity.
package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afbarnard/digraph/dijkstra"
	"github.com/afbarnard/digraph/graph"
)

// graphDef describes a fixture: dists are two-rune "AB" keys mapping to
// the undirected edge weight; edges lists unweighted undirected edges.
type graphDef struct {
	dists map[string]float64
	edges []string
}

var testGraphs = map[string]graphDef{

	// 3×3 grid with a cheap S-shaped corridor:
	//
	//      1      1
	//   U------D------Y
	// 2 |    5 |    8 |
	//   |  1   |  2   |
	//   J------K------W
	// 9 |    6 |    1 |
	//   |  2   |  2   |
	//   S------M------P
	"3x3 grid S path": {
		dists: map[string]float64{
			"UD": 1, "DY": 1,
			"UJ": 2, "DK": 5, "YW": 8,
			"JK": 1, "KW": 2,
			"JS": 9, "KM": 6, "WP": 1,
			"SM": 2, "MP": 2,
		},
	},

	// 4×6 grid with random-looking weights; corners W (top-left),
	// Y (top-right), H (bottom-left), R (bottom-right).
	"4x6 grid random": {
		dists: map[string]float64{
			"WT": 18, "TM": 8, "MP": 5, "PG": 19, "GY": 7,
			"WE": 14, "TX": 6, "MU": 10, "PL": 16, "GK": 9, "YA": 14,
			"EX": 1, "XU": 5, "UL": 13, "LK": 16, "KA": 14,
			"EQ": 20, "XB": 11, "UN": 15, "LJ": 10, "KS": 1, "AF": 6,
			"QB": 2, "BN": 9, "NJ": 7, "JS": 11, "SF": 17,
			"QH": 2, "BV": 14, "NZ": 12, "JD": 7, "SC": 3, "FR": 6,
			"HV": 11, "VZ": 12, "ZD": 8, "DC": 6, "CR": 10,
		},
	},

	// Two K6-ish bells joined by the bridge F-G-H-I.
	"barbell": {
		edges: []string{
			"AB", "AE", "AL", "BF", "BK", "EF", "EK", "FL", "KL",
			"FG", "GH", "HI",
			"CD", "CI", "CN", "DJ", "DM", "IJ", "IM", "JN", "MN",
		},
	},

	// A long cheap chain A..I with increasingly expensive shortcuts to K.
	"decreasing paths": {
		dists: map[string]float64{
			"AB": 1, "AK": 17, "BC": 1, "BK": 15, "CD": 1, "CK": 13,
			"DE": 1, "DK": 11, "EF": 1, "EK": 9, "FG": 1, "FK": 7,
			"GH": 1, "GK": 5, "HI": 1, "HK": 3, "IK": 1,
		},
	},

	// Seven two-hop routes from A to Z with opposed costs.
	"up down from A to Z": {
		dists: map[string]float64{
			"AB": 1, "AC": 3, "AD": 5, "AE": 7, "AF": 9, "AG": 11, "AH": 13,
			"BZ": 14, "CZ": 13, "DZ": 12, "EZ": 11, "FZ": 10, "GZ": 9, "HZ": 8,
		},
	},

	// Pascal's-triangle-shaped fan-out from A; distances grow toward the
	// middle of each row and shrink toward the rims.
	"Pascal's triangle": {
		dists: map[string]float64{
			"AB": 1, "AC": 1,
			"BD": 1, "BE": 2, "CE": 2, "CF": 1,
			"DG": 1, "DH": 3, "EH": 3, "EI": 3, "FI": 3, "FJ": 1,
			"GK": 1, "GL": 4, "HL": 4, "HM": 6, "IM": 6, "IN": 4, "JN": 4, "JO": 1,
			"KP": 1, "KQ": 5, "LQ": 5, "LR": 10, "MR": 10,
			"MS": 10, "NS": 10, "NT": 5, "OT": 5, "OU": 1,
			"PV": 1, "PW": 6, "QW": 6, "QX": 15, "RX": 15, "RY": 20,
			"SY": 20, "SZ": 15, "TZ": 15, "Ta": 6, "Ua": 6, "Ub": 1,
		},
	},
}

// mkGraph builds a fixture graph: every listed connection becomes a pair
// of directed edges, weighted on both orientations when dists are given.
func mkGraph(def graphDef) *graph.Graph[string] {
	g := graph.New(graph.WithDefaultWeight[string](1))
	for _, e := range def.edges {
		a, b := e[:1], e[1:]
		g.AddEdge(a, b)
		g.AddEdge(b, a)
	}
	for e, w := range def.dists {
		a, b := e[:1], e[1:]
		g.SetWeight(a, b, w)
		g.SetWeight(b, a, w)
	}

	return g
}

// byWeight is the distance function used by all weighted fixtures.
func byWeight() dijkstra.DistanceFunc[string] {
	return dijkstra.EdgeWeight[string](1)
}

// nodesOf splits a compact path spelling ("UJKWP") into node IDs.
func nodesOf(s string) []string {
	nodes := make([]string, 0, len(s))
	for i := range s {
		nodes = append(nodes, s[i:i+1])
	}

	return nodes
}

// excludedBothWays expands space-separated undirected edge spellings
// ("SM DY") into both directed orientations.
func excludedBothWays(spelled string) [][2]string {
	var pairs [][2]string
	start := 0
	for i := 0; i <= len(spelled); i++ {
		if i == len(spelled) || spelled[i] == ' ' {
			e := spelled[start:i]
			pairs = append(pairs, [2]string{e[:1], e[1:]}, [2]string{e[1:], e[:1]})
			start = i + 1
		}
	}

	return pairs
}

// requireShortest asserts that res is a valid path from one of begins to
// one of ends with the expected total distance and per-edge sum.
func requireShortest(
	t *testing.T,
	g *graph.Graph[string],
	res *dijkstra.Result[string],
	begins, ends []string,
	wantDist float64,
	distf dijkstra.DistanceFunc[string],
) {
	t.Helper()
	require.NotNil(t, res)
	require.NotEmpty(t, res.Path)
	assert.Contains(t, begins, res.Path[0])
	assert.Contains(t, ends, res.Path[len(res.Path)-1])
	total := 0.0
	for i := 1; i < len(res.Path); i++ {
		require.True(t, g.HasEdge(res.Path[i-1], res.Path[i]),
			"missing edge %v->%v in returned path", res.Path[i-1], res.Path[i])
		total += distf(g, res.Path[i-1], res.Path[i])
	}
	assert.Equal(t, wantDist, res.Distance)
	assert.Equal(t, res.Distance, total, "distance must equal the per-edge sum")
}
