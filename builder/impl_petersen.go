// SPDX-License-Identifier: MIT
// Package: chroma/builder
//
// impl_petersen.go — implementation of Petersen().

package builder

const methodPetersen = "Petersen"

// petersenNeighbors is the classic labelling (1-based) of the Petersen graph,
// each list in its conventional order. It is 3-regular, triangle-free and has χ = 3.
var petersenNeighbors = [10][3]int{
	{2, 4, 3}, {1, 5, 9}, {1, 7, 8}, {1, 6, 10}, {2, 6, 8},
	{4, 5, 7}, {3, 6, 9}, {3, 5, 10}, {2, 7, 10}, {4, 8, 9},
}

// Petersen returns a Constructor that records the Petersen graph on ten
// consecutive ids, every neighbor list stored as listed (already mirrored).
func Petersen() Constructor {
	return func(a *Assembly, cfg builderConfig) error {
		addRange(a, cfg, 0, len(petersenNeighbors))
		for i, nbrs := range petersenNeighbors {
			for _, j := range nbrs {
				a.AddArc(cfg.id(i), cfg.id(j-1))
			}
		}

		return nil
	}
}
