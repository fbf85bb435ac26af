// SPDX-License-Identifier: MIT
// Package: chroma/builder
//
// impl_grid.go — implementation of Grid(rows, cols).
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices). A 1×1 grid has no edges.
//   • Vertex (r,c) has index r*cols+c; declaration is row-major.
//   • For each (r,c) the Right edge is emitted, then the Bottom edge.
//
// Complexity: O(rows·cols) time.

package builder

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols 4-neighborhood grid.
func Grid(rows, cols int) Constructor {
	return func(a *Assembly, cfg builderConfig) error {
		if err := validateMin(methodGrid, "rows", rows, minGridDim); err != nil {
			return err
		}
		if err := validateMin(methodGrid, "cols", cols, minGridDim); err != nil {
			return err
		}

		cell := func(r, c int) int { return r*cols + c }
		addRange(a, cfg, 0, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					a.AddEdge(cfg.id(cell(r, c)), cfg.id(cell(r, c+1)))
				}
				if r+1 < rows {
					a.AddEdge(cfg.id(cell(r, c)), cfg.id(cell(r+1, c)))
				}
			}
		}

		return nil
	}
}
