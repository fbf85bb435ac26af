package coloring

// Permutations lazily enumerates the permutations of 0..n-1 in
// lexicographic order, one at a time, in O(n) memory.
//
// The first `fixed` positions can be pinned so a caller can walk a single
// block of the enumeration (all permutations sharing a prefix); blocks are
// visited in the same relative order as in the full enumeration.
//
//	p := NewPermutations(3)
//	for p.Next() {
//		use(p.Current()) // [0 1 2] [0 2 1] [1 0 2] [1 2 0] [2 0 1] [2 1 0]
//	}
type Permutations struct {
	start []int // first permutation of the walk
	perm  []int
	fixed int
	state int
}

const (
	permFresh = iota
	permRunning
	permDone
)

// NewPermutations returns an iterator over all n! permutations of 0..n-1.
// n == 0 yields exactly one, empty permutation.
func NewPermutations(n int) *Permutations {
	if n < 0 {
		n = 0
	}
	start := make([]int, n)
	for i := range start {
		start[i] = i
	}

	return newPermutationsFrom(start, 0)
}

// newLeadingBlock returns an iterator over the (n-1)! permutations whose
// first element is lead, in the order the full enumeration visits them.
func newLeadingBlock(n, lead int) *Permutations {
	start := make([]int, 0, n)
	start = append(start, lead)
	for i := 0; i < n; i++ {
		if i != lead {
			start = append(start, i)
		}
	}

	return newPermutationsFrom(start, 1)
}

func newPermutationsFrom(start []int, fixed int) *Permutations {
	p := &Permutations{start: start, perm: make([]int, len(start)), fixed: fixed}
	p.Reset()

	return p
}

// Reset rewinds the iterator to its first permutation.
func (p *Permutations) Reset() {
	copy(p.perm, p.start)
	p.state = permFresh
}

// Next advances to the next permutation and reports whether one exists.
// The first call yields the first permutation.
func (p *Permutations) Next() bool {
	switch p.state {
	case permFresh:
		p.state = permRunning
		return true
	case permDone:
		return false
	}
	if !nextPermutation(p.perm[p.fixed:]) {
		p.state = permDone
		return false
	}

	return true
}

// Current returns the current permutation. The slice is reused by Next;
// copy it to retain it.
func (p *Permutations) Current() []int { return p.perm }

// nextPermutation rearranges a into its lexicographic successor and
// reports false (leaving a unchanged) when a is the last permutation.
func nextPermutation(a []int) bool {
	i := len(a) - 2
	for i >= 0 && a[i] >= a[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(a) - 1
	for a[j] <= a[i] {
		j--
	}
	a[i], a[j] = a[j], a[i]
	for l, r := i+1, len(a)-1; l < r; l, r = l+1, r-1 {
		a[l], a[r] = a[r], a[l]
	}

	return true
}

// factorial returns n! and false when it does not fit in a uint64.
func factorial(n int) (uint64, bool) {
	f := uint64(1)
	for i := 2; i <= n; i++ {
		if f > ^uint64(0)/uint64(i) {
			return 0, false
		}
		f *= uint64(i)
	}

	return f, true
}
