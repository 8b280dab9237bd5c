package solstice

// Outcome is the local result of one Assign or Propagate step. A
// conflict is always recovered by the Search Driver; it never reaches
// a caller of Solve.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeConflict
)

// Assign sets v to value, pushes it onto the Assignment Stack, and
// updates every clause the assignment touches: clauses falsified by
// this assignment lose an active literal (and, at one active literal
// left, hand their sole survivor to the Force Queue); clauses
// satisfied by it record v as their satisfier and release the
// now-irrelevant occurrence count on every other Free variable they
// contain, which can itself surface a pure literal.
//
// Assign always finishes updating every clause it touches even after
// it has seen a conflict, so that a later Unassign(v) is an exact
// inverse regardless of whether this call conflicted.
func (f *Formula) Assign(v int, value Value, forced bool) Outcome {
	vr := &f.Vars[v]
	vr.IsForced = forced
	vr.Value = value
	f.Stack = append(f.Stack, v)

	falsifying, satisfying := vr.negOcc, vr.posOcc
	if value == False {
		falsifying, satisfying = vr.posOcc, vr.negOcc
	}

	outcome := OutcomeOK
	for _, ci := range falsifying {
		c := &f.Clauses[ci]
		if c.SatisfiedBy != clauseNone {
			continue
		}
		c.ActiveCount--
		switch c.ActiveCount {
		case 0:
			outcome = OutcomeConflict
		case 1:
			for _, l := range c.Lits {
				if f.Vars[litVar(l)].Value == Free {
					f.enqueue(l)
					break
				}
			}
		}
	}

	for _, ci := range satisfying {
		c := &f.Clauses[ci]
		if c.SatisfiedBy != clauseNone {
			continue
		}
		c.SatisfiedBy = v
		for _, l := range c.Lits {
			lv := litVar(l)
			lr := &f.Vars[lv]
			if lr.Value != Free {
				continue
			}
			if litIsPos(l) {
				lr.actPos--
				if lr.actPos == 0 && lr.actNeg > 0 {
					f.enqueue(-lv) // only the negative polarity remains live
				}
			} else {
				lr.actNeg--
				if lr.actNeg == 0 && lr.actPos > 0 {
					f.enqueue(lv) // only the positive polarity remains live
				}
			}
		}
	}
	return outcome
}

// Unassign is the exact inverse of the Assign call that most recently
// set v, keyed off v's current value, and removes v from the
// Assignment Stack if it is still there. It must be called with no other
// assignment having been made to v in between. Calling it on a
// variable that is already Free is an internal invariant violation —
// there is no prior Assign to invert — and it panics rather than
// silently corrupting the occurrence/active-count bookkeeping.
func (f *Formula) Unassign(v int) {
	vr := &f.Vars[v]
	if vr.Value == Free {
		panic("solstice: Unassign called on a Free variable")
	}
	value := vr.Value
	falsifying, satisfying := vr.negOcc, vr.posOcc
	if value == False {
		falsifying, satisfying = vr.posOcc, vr.negOcc
	}

	for _, ci := range satisfying {
		c := &f.Clauses[ci]
		if c.SatisfiedBy != v {
			continue
		}
		c.SatisfiedBy = clauseNone
		for _, l := range c.Lits {
			lv := litVar(l)
			lr := &f.Vars[lv]
			if lr.Value != Free {
				continue
			}
			if litIsPos(l) {
				lr.actPos++
			} else {
				lr.actNeg++
			}
		}
	}

	for _, ci := range falsifying {
		c := &f.Clauses[ci]
		if c.SatisfiedBy != clauseNone {
			continue
		}
		c.ActiveCount++
	}

	for i := len(f.Stack) - 1; i >= 0; i-- {
		if f.Stack[i] == v {
			f.Stack = append(f.Stack[:i], f.Stack[i+1:]...)
			break
		}
	}
	vr.Value = Free
}
