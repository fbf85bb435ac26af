package coloring

import "github.com/katalvlaran/chroma/core"

// cliqueNumber returns ω(G), the size of a largest clique, by Bron–Kerbosch
// with pivoting. ω(G) ≤ χ(G), which lets the exhaustive search stop early.
//
// Complexity: O(3^(V/3)) worst case; negligible next to V! enumeration.
func cliqueNumber(g *core.Graph) int {
	n := g.VertexCount()
	nbr := make([][]bool, n)
	for s := 0; s < n; s++ {
		nbr[s] = make([]bool, n)
		for _, t := range g.ClosureAt(s) {
			nbr[s][t] = true
		}
	}

	all := make([]int, n)
	for i := range all {
		all[i] = i
	}

	best := 0
	var expand func(size int, cand, excl []int)
	expand = func(size int, cand, excl []int) {
		if len(cand) == 0 {
			if size > best {
				best = size
			}
			return
		}
		if size+len(cand) <= best {
			return
		}

		pivot := choosePivot(nbr, cand, excl)
		for i := 0; i < len(cand); {
			v := cand[i]
			if nbr[pivot][v] {
				i++
				continue
			}
			expand(size+1, restrict(cand, nbr[v]), restrict(excl, nbr[v]))

			// Move v from cand to excl; both are rebuilt so callers' slices stay intact.
			cand = append(cand[:i:i], cand[i+1:]...)
			excl = append(excl[:len(excl):len(excl)], v)
		}
	}
	expand(0, all, nil)

	return best
}

// choosePivot picks the vertex of cand ∪ excl with most neighbors in cand.
func choosePivot(nbr [][]bool, cand, excl []int) int {
	pivot, most := cand[0], -1
	for _, set := range [2][]int{cand, excl} {
		for _, u := range set {
			k := 0
			for _, v := range cand {
				if nbr[u][v] {
					k++
				}
			}
			if k > most {
				pivot, most = u, k
			}
		}
	}

	return pivot
}

// restrict returns the members of set adjacent per row.
func restrict(set []int, row []bool) []int {
	out := make([]int, 0, len(set))
	for _, v := range set {
		if row[v] {
			out = append(out, v)
		}
	}

	return out
}
