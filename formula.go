package solstice

import "fmt"

// Variable is a single propositional variable together with the
// bookkeeping the Assignment and Propagation engines need to run in
// time proportional to the clauses that actually change, not the
// whole formula.
//
// posOcc and negOcc list the indices of clauses in which the variable
// appears positively and negatively, respectively. actPos and actNeg
// cache how many of those clauses are both unsatisfied and contain
// the variable, so the branching heuristic never has to rescan a
// clause to score a variable.
type Variable struct {
	Value    Value
	IsForced bool

	posOcc []int
	negOcc []int
	actPos int
	actNeg int
}

// clauseNone marks a clause with no satisfying variable.
const clauseNone = 0

// Clause is a disjunction of literals, stored as the signed DIMACS
// integers they were parsed from: a positive int k is the literal
// over variable k, -k is its negation. Duplicate literals and
// tautologies are accepted as-is; they leave activeCount and the
// occurrence counters slightly inflated but never unsound, since a
// clause is only ever waiting on its true active count, not an exact
// one.
type Clause struct {
	Lits        []int
	SatisfiedBy int // variable index, or clauseNone
	ActiveCount int
}

// Formula is the arena that owns every Variable and Clause for one
// solve. Variables and clauses reference each other only by index;
// there is no pointer cycle to manage. It also owns the Force Queue
// and Assignment Stack that the Assignment/Propagation/Search
// components mutate in lockstep.
type Formula struct {
	NumVars int
	Vars    []Variable // 1-indexed; Vars[0] is unused
	Clauses []Clause

	queue     []int
	queueHead int

	Stack []int

	// emptyClause records that some clause was added with zero
	// literals. Such a clause can never be satisfied, but it also
	// never decrements through the usual ActiveCount-reaches-zero
	// path (nothing is ever assigned against a literal it doesn't
	// have), so Solve checks this flag directly instead of relying on
	// Propagate to discover it.
	emptyClause bool

	decisions    int
	propagations int
	backtracks   int
}

// NewFormula allocates a formula with numVars variables and no
// clauses yet.
func NewFormula(numVars int) *Formula {
	return &Formula{
		NumVars: numVars,
		Vars:    make([]Variable, numVars+1),
	}
}

func litVar(lit int) int {
	if lit < 0 {
		return -lit
	}
	return lit
}

func litIsPos(lit int) bool { return lit > 0 }

// AddClause appends a clause built from lits, a slice of nonzero
// signed DIMACS literals, and wires it into every named variable's
// occurrence lists and activity counters.
//
// If the clause has exactly one literal, that literal is a syntactic
// unit and is enqueued on the Force Queue immediately so the first
// Propagate call after construction digests it (and anything it
// cascades into) before the Search Driver makes its first decision.
func (f *Formula) AddClause(lits []int) error {
	for _, l := range lits {
		if l == 0 {
			return fmt.Errorf("solstice: clause contains literal 0")
		}
		v := litVar(l)
		if v < 1 || v > f.NumVars {
			return fmt.Errorf("solstice: literal %d out of range for %d variables", l, f.NumVars)
		}
	}

	if len(lits) == 0 {
		f.emptyClause = true
	}

	ci := len(f.Clauses)
	clause := Clause{Lits: append([]int(nil), lits...), SatisfiedBy: clauseNone}
	f.Clauses = append(f.Clauses, clause)

	for _, l := range lits {
		v := litVar(l)
		vr := &f.Vars[v]
		if litIsPos(l) {
			vr.posOcc = append(vr.posOcc, ci)
			vr.actPos++
		} else {
			vr.negOcc = append(vr.negOcc, ci)
			vr.actNeg++
		}
	}
	f.Clauses[ci].ActiveCount = len(lits)

	if len(lits) == 1 {
		f.enqueue(lits[0])
	}
	return nil
}

func (f *Formula) enqueue(lit int) {
	f.queue = append(f.queue, lit)
}

// dequeue returns the next literal whose variable is still Free,
// skipping and discarding any stale entries ahead of it. It reports
// false once the queue is exhausted.
func (f *Formula) dequeue() (int, bool) {
	for f.queueHead < len(f.queue) {
		lit := f.queue[f.queueHead]
		f.queueHead++
		if f.Vars[litVar(lit)].Value == Free {
			return lit, true
		}
	}
	return 0, false
}

// clearQueue discards every pending implication. Called at every
// backtrack boundary: an implication left over from the branch being
// abandoned would otherwise be applied against the flipped state and
// could manufacture a spurious conflict.
func (f *Formula) clearQueue() {
	f.queue = f.queue[:0]
	f.queueHead = 0
}

// Stats reports the decision/propagation/backtrack counters
// accumulated by the most recent (or in-progress) Solve call.
type Stats struct {
	Decisions    int
	Propagations int
	Backtracks   int
}

func (f *Formula) Stats() Stats {
	return Stats{
		Decisions:    f.decisions,
		Propagations: f.propagations,
		Backtracks:   f.backtracks,
	}
}
