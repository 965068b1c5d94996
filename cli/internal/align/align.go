// Package align computes a maximum-cardinality, order-preserving pairing
// between two sequences under a caller-supplied equivalence predicate. It is
// the longest-common-subsequence computation of a classic line diff with the
// equality test replaced by the predicate, which is how suppression patterns
// get reconciled against diagnostic lines: the predicate is "pattern fully
// matches line", but this package never sees a regex.
package align

// Op classifies one position of the alignment in diff presentation order.
type Op int

const (
	// OpMatch pairs one element of each sequence.
	OpMatch Op = iota
	// OpStale is an unpaired element of the first sequence (a suppression
	// pattern nothing matched).
	OpStale
	// OpNew is an unpaired element of the second sequence (a diagnostic
	// line nothing suppressed).
	OpNew
)

// Edit is one step of the alignment. P and T are indices into the first and
// second sequence; the one not participating in the step is -1.
type Edit struct {
	Op   Op
	P, T int
}

// Result is a complete alignment. Every index of both sequences appears in
// exactly one Edit, in diff presentation order.
type Result struct {
	Edits   []Edit
	Matched int
	Stale   int
	New     int
}

// Align aligns sequences of length nP and nT under match. The pairing has
// maximum cardinality among all order-preserving pairings; when several
// maximum pairings exist, a pattern takes the earliest line available to it,
// so diffs are reported against later lines.
//
// match must be deterministic for the run; it is called at most once per
// (p, t) index pair.
func Align(nP, nT int, match func(p, t int) bool) Result {
	// Fast path: greedily pair p[i] with t[i] from the top while the
	// predicate holds. A pair in the first remaining position of both
	// sequences always extends to some maximum alignment, and CI runs
	// where everything is suppressed never build the table at all.
	k := 0
	probeFailed := false
	var edits []Edit
	for k < nP && k < nT {
		if !match(k, k) {
			probeFailed = true
			break
		}
		edits = append(edits, Edit{Op: OpMatch, P: k, T: k})
		k++
	}
	m, n := nP-k, nT-k

	// LCS table over the remainder. table[i][j] is the maximum number of
	// pairs between the first i remaining patterns and first j remaining
	// lines. Predicate results are kept for the backtracking walk.
	table := make([][]int, m+1)
	for i := range table {
		table[i] = make([]int, n+1)
	}
	matched := make([][]bool, m)
	for i := range matched {
		matched[i] = make([]bool, n)
	}
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			// The probe that ended the fast path already answered
			// for (k, k); do not ask again.
			if i == 1 && j == 1 && probeFailed {
				table[i][j] = 0
				continue
			}
			if match(k+i-1, k+j-1) {
				matched[i-1][j-1] = true
				table[i][j] = table[i-1][j-1] + 1
			} else if table[i][j-1] >= table[i-1][j] {
				table[i][j] = table[i][j-1]
			} else {
				table[i][j] = table[i-1][j]
			}
		}
	}

	// Walk the table back from the corner, collecting edits in reverse.
	rev := make([]Edit, 0, m+n)
	i, j := m, n
	for i > 0 || j > 0 {
		switch {
		case i == 0:
			j--
			rev = append(rev, Edit{Op: OpNew, P: -1, T: k + j})
		case j == 0:
			i--
			rev = append(rev, Edit{Op: OpStale, P: k + i, T: -1})
		case matched[i-1][j-1]:
			if table[i][j-1] == table[i][j] {
				// An earlier line can take this match; report
				// this line as unmatched instead.
				j--
				rev = append(rev, Edit{Op: OpNew, P: -1, T: k + j})
			} else {
				i--
				j--
				rev = append(rev, Edit{Op: OpMatch, P: k + i, T: k + j})
			}
		case table[i][j-1] > table[i-1][j]:
			j--
			rev = append(rev, Edit{Op: OpNew, P: -1, T: k + j})
		default:
			i--
			rev = append(rev, Edit{Op: OpStale, P: k + i, T: -1})
		}
	}
	for x := len(rev) - 1; x >= 0; x-- {
		edits = append(edits, rev[x])
	}

	res := Result{Edits: edits}
	for _, e := range edits {
		switch e.Op {
		case OpMatch:
			res.Matched++
		case OpStale:
			res.Stale++
		case OpNew:
			res.New++
		}
	}
	return res
}
