package solstice

import "time"

// Verdict is the result of one Solve call.
type Verdict int

const (
	SAT Verdict = iota
	UNSAT
	TIMEOUT
)

func (v Verdict) String() string {
	switch v {
	case SAT:
		return "SAT"
	case UNSAT:
		return "UNSAT"
	case TIMEOUT:
		return "TIMEOUT"
	default:
		return "INVALID"
	}
}

// Solve runs the DPLL decision procedure to completion against f. If
// deadline is non-zero and is reached before a verdict is found, Solve
// returns TIMEOUT and f's variable assignments are left undefined (the
// Assignment Stack is not unwound on timeout; callers that need a
// clean formula afterward should discard f).
//
// On SAT, every variable in f.Vars that occurs in some clause carries
// its satisfying value; a variable that occurs in no clause stays Free. On
// UNSAT, the Assignment Stack has been fully unwound and variable
// values are undefined. The returned duration is the wall-clock time
// spent inside Solve.
func Solve(f *Formula, deadline time.Time) (Verdict, time.Duration) {
	start := time.Now()
	hasDeadline := !deadline.IsZero()

	if f.emptyClause {
		return UNSAT, time.Since(start)
	}

	if f.Propagate() == OutcomeConflict {
		f.backtrack() // no free decision exists yet; this only unwinds the stack
		return UNSAT, time.Since(start)
	}

	for {
		if hasDeadline && time.Now().After(deadline) {
			return TIMEOUT, time.Since(start)
		}

		v, value, ok := f.Select()
		if !ok {
			return SAT, time.Since(start)
		}

		f.decisions++
		if f.Assign(v, value, false) == OutcomeConflict {
			if !f.backtrack() {
				return UNSAT, time.Since(start)
			}
			continue
		}

		if f.Propagate() == OutcomeConflict {
			if !f.backtrack() {
				return UNSAT, time.Since(start)
			}
		}
	}
}

// backtrack pops the Assignment Stack, unassigning each variable,
// until it finds one that was a free decision (not an implication).
// It flips that decision, marks the flip forced (so it can never be
// flipped again — the next flippable decision must lie deeper on the
// stack), clears the Force Queue first so no stale implication from
// the abandoned branch survives into the flipped state, and
// re-propagates. If the flip itself conflicts, or propagation after
// it conflicts, backtrack keeps popping from where it left off. It
// reports false once the stack empties with no flip surviving, which
// is the UNSAT verdict.
func (f *Formula) backtrack() bool {
	for {
		if len(f.Stack) == 0 {
			return false
		}
		v := f.Stack[len(f.Stack)-1]
		f.Stack = f.Stack[:len(f.Stack)-1]
		wasForced := f.Vars[v].IsForced
		value := f.Vars[v].Value
		f.Unassign(v)
		if wasForced {
			continue
		}

		f.backtracks++
		f.clearQueue()
		flipped := Other(value)
		if f.Assign(v, flipped, true) == OutcomeConflict {
			continue
		}
		if f.Propagate() == OutcomeConflict {
			continue
		}
		return true
	}
}
