package coloring

import (
	"context"
	"fmt"
	"math"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/chroma/core"
)

const methodChromatic = "Chromatic"

// ctxCheckEvery is how many orderings run between cancellation checks.
const ctxCheckEvery = 4096

// Chromatic returns χ(G) together with an optimal coloring by running the
// greedy pass under every ordering of the vertex set. See ChromaticContext.
func Chromatic(g *core.Graph, opts ...Option) (Result, error) {
	return ChromaticContext(context.Background(), g, opts...)
}

// ChromaticContext is Chromatic with cancellation.
//
// Orderings are enumerated lexicographically over positions of g.Order().
// The ordering kept is the first one reaching the minimum color count, so
// the result depends only on g and its iteration order.
//
// Errors:
//   - core.ErrNilGraph if g is nil.
//   - ErrEmptyGraph if g has no vertices.
//   - ErrTooManyVertices if |V| exceeds WithMaxVertices (default 10).
//   - ctx.Err() if ctx is cancelled before the search finishes.
func ChromaticContext(ctx context.Context, g *core.Graph, opts ...Option) (Result, error) {
	cfg := newConfig(opts...)
	if g == nil {
		return Result{}, fmt.Errorf("%s: %w", methodChromatic, core.ErrNilGraph)
	}

	n := g.VertexCount()
	if n == 0 {
		return Result{}, fmt.Errorf("%s: %w", methodChromatic, ErrEmptyGraph)
	}
	if cfg.maxVertices > 0 && n > cfg.maxVertices {
		return Result{}, fmt.Errorf("%s: |V|=%d > max=%d: %w", methodChromatic, n, cfg.maxVertices, ErrTooManyVertices)
	}

	s := &search{g: g, base: g.Slots(), bound: cliqueNumber(g), cfg: cfg}
	if total, ok := factorial(n); ok {
		cfg.debugf("chromatic: |V|=%d |E|=%d orderings=%d lower bound=%d workers=%d", n, g.EdgeCount(), total, s.bound, cfg.workers)
	} else {
		cfg.debugf("chromatic: |V|=%d |E|=%d orderings>2^64 lower bound=%d workers=%d", n, g.EdgeCount(), s.bound, cfg.workers)
	}

	var (
		best candidate
		err  error
	)
	if cfg.workers > 1 && n > 1 {
		best, err = s.parallel(ctx)
	} else {
		best, err = s.block(ctx, 0, NewPermutations(n))
	}
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", methodChromatic, err)
	}

	order := make([]core.VertexID, n)
	for i, p := range best.perm {
		order[i] = g.SlotID(s.base[p])
	}
	coloring, err := GreedyOrder(g, order)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", methodChromatic, err)
	}
	cfg.debugf("chromatic: χ=%d after %d orderings", best.colors, best.evaluated)

	return Result{
		Coloring:  coloring,
		Colors:    best.colors,
		Order:     order,
		Evaluated: best.evaluated,
	}, nil
}

// candidate is the best ordering seen by one enumeration block.
type candidate struct {
	colors    int
	perm      []int // positions into search.base
	evaluated uint64
}

// search holds the per-call state shared by all blocks.
type search struct {
	g     *core.Graph
	base  []int // slots in g's iteration order
	bound int   // ω(G); reaching it ends a block
	cfg   config

	// cut is the smallest block index that reached bound. Blocks after it
	// cannot win (they can only tie and lose the tie-break) and may stop.
	cut atomic.Int64
}

// block walks it and returns the first ordering with the fewest colors.
// idx orders blocks for the cross-block cut; the sequential search is block 0.
func (s *search) block(ctx context.Context, idx int, it *Permutations) (candidate, error) {
	n := len(s.base)
	order := make([]int, n)
	colors := make([]int, n)
	best := candidate{colors: math.MaxInt}

	for it.Next() {
		if best.evaluated%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return best, err
			}
			if int64(idx) > s.cut.Load() {
				break
			}
		}

		perm := it.Current()
		for i, p := range perm {
			order[i] = s.base[p]
		}
		best.evaluated++

		k := firstFit(s.g, order, colors)
		if k >= best.colors {
			continue
		}
		best.colors = k
		best.perm = append(best.perm[:0], perm...)
		s.cfg.debugf("chromatic: block %d: %d colors at ordering %d", idx, k, best.evaluated)

		if k <= s.bound {
			s.lowerCut(int64(idx))
			break
		}
	}

	return best, nil
}

// parallel splits the enumeration by leading position, runs the blocks on
// cfg.workers goroutines and merges by (colors, block index), which is the
// sequential tie-break.
func (s *search) parallel(ctx context.Context) (candidate, error) {
	n := len(s.base)
	s.cut.Store(int64(n))
	results := make([]candidate, n)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(s.cfg.workers)
	for lead := 0; lead < n; lead++ {
		lead := lead
		eg.Go(func() error {
			c, err := s.block(ctx, lead, newLeadingBlock(n, lead))
			results[lead] = c
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return candidate{}, err
	}

	best := candidate{colors: math.MaxInt}
	var total uint64
	for _, c := range results {
		total += c.evaluated
		if c.perm != nil && c.colors < best.colors {
			best = c
		}
	}
	best.evaluated = total

	return best, nil
}

// lowerCut records idx as the cut if it precedes the current one.
func (s *search) lowerCut(idx int64) {
	for {
		cur := s.cut.Load()
		if idx >= cur || s.cut.CompareAndSwap(cur, idx) {
			return
		}
	}
}
