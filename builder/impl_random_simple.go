// SPDX-License-Identifier: MIT
// Package: chroma/builder
//
// impl_random_simple.go — implementation of RandomSimple(n).
//
// Model: every vertex v, in ascending order, draws k uniformly from [1, n-1]
// and samples k distinct vertices from V (v itself included). Each sampled
// u ≠ v becomes a neighbor of v and v a neighbor of u; self-picks are
// discarded. Lists are finally sorted ascending, so the result is symmetric
// but the degree distribution is uneven.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).

package builder

import (
	"sort"

	"github.com/katalvlaran/chroma/core"
)

const (
	methodRandomSimple   = "RandomSimple"
	minRandomSimpleNodes = 2
)

// RandomSimple returns a Constructor for the uneven random graph described above.
func RandomSimple(n int) Constructor {
	return func(a *Assembly, cfg builderConfig) error {
		if err := validateMin(methodRandomSimple, "n", n, minRandomSimpleNodes); err != nil {
			return err
		}
		if err := requireRand(methodRandomSimple, cfg); err != nil {
			return err
		}

		nbrs := make([]map[int]struct{}, n)
		for i := range nbrs {
			nbrs[i] = make(map[int]struct{})
		}
		pool := make([]int, n)
		for v := 0; v < n; v++ {
			k := 1 + cfg.rng.Intn(n-1)
			for i := range pool {
				pool[i] = i
			}
			// Partial Fisher–Yates: the first k entries are a uniform k-sample.
			for i := 0; i < k; i++ {
				j := i + cfg.rng.Intn(n-i)
				pool[i], pool[j] = pool[j], pool[i]
				if u := pool[i]; u != v {
					nbrs[v][u] = struct{}{}
					nbrs[u][v] = struct{}{}
				}
			}
		}

		addRange(a, cfg, 0, n)
		for v := 0; v < n; v++ {
			sorted := make([]core.VertexID, 0, len(nbrs[v]))
			for u := range nbrs[v] {
				sorted = append(sorted, cfg.id(u))
			}
			sort.Ints(sorted)
			for _, u := range sorted {
				a.AddArc(cfg.id(v), u)
			}
		}

		return nil
	}
}
