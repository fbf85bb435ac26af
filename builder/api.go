// SPDX-License-Identifier: MIT
// Package: chroma/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Resolves cfg, runs
//     cons in order against one Assembly, then freezes it with core.FromEntries.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs, options, seed and constructor order ⇒ identical graphs.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/chroma/core"
)

// Constructor records one topology into a using the resolved builderConfig.
// Constructors MUST validate parameters before touching a and keep a
// stable emission order for the same config.
type Constructor func(a *Assembly, cfg builderConfig) error

// BuildGraph resolves the builder configuration from bopts, applies all
// constructors in order to a fresh Assembly and builds a *core.Graph from
// it with graph options gopts.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Any constructor error, wrapped with "BuildGraph: %w".
//   - core errors from FromEntries (e.g. core.ErrSelfLoop without core.WithLoops()).
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	a := NewAssembly()

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(a, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	g, err := core.FromEntries(a.Entries(), gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// Shift runs con with every id moved by delta, so families can be laid
// side by side: BuildGraph(nil, nil, Cycle(5), Shift(5, Complete(3))).
func Shift(delta int, con Constructor) Constructor {
	return func(a *Assembly, cfg builderConfig) error {
		if con == nil {
			return fmt.Errorf("Shift: nil constructor: %w", ErrConstructFailed)
		}
		cfg.firstID += delta

		return con(a, cfg)
	}
}

// =============================================================================
// Topology factories - implemented in impl_*.go
// =============================================================================
//
// Each factory returns a Constructor. Vertex declaration order (and thus the
// graph's natural order) is documented per factory:
//
//   Complete(n)             ids first..first+n-1                    n ≥ 1
//   Cycle(n)                ring i-(i+1), last-first                n ≥ 3
//   Path(n)                 chain i-(i+1)                           n ≥ 2
//   Star(n)                 center first, then n-1 leaves           n ≥ 2
//   Wheel(n)                hub first, then a ring of n-1           n ≥ 4
//   CompleteBipartite(l,r)  left side first, then right             l,r ≥ 1
//   Grid(rows, cols)        row-major, 4-neighborhood               rows,cols ≥ 1
//   Petersen()              classic labelling, lists pre-mirrored   10 vertices
//   PlatonicSolid(name)     canonical labelling of the solid
//   RandomSparse(n, p)      Erdős–Rényi G(n,p), needs rng for 0<p<1
//   RandomRegular(n, d)     d-regular by stub matching, needs rng
//   RandomSimple(n)         random picks recorded both ways, needs rng
