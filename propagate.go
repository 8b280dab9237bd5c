package solstice

// Propagate drains the Force Queue, applying every pending
// unit/pure-literal implication via Assign until the queue empties or
// an assignment conflicts. Queue order is FIFO; soundness does not
// depend on it, only performance does.
//
// On conflict, the remaining (unprocessed) queue entries are left in
// place. They belong to the branch that just failed and are discarded
// wholesale by the Search Driver's backtrack step, not by Propagate
// itself.
func (f *Formula) Propagate() Outcome {
	for {
		lit, ok := f.dequeue()
		if !ok {
			return OutcomeOK
		}
		v := litVar(lit)
		value := True
		if !litIsPos(lit) {
			value = False
		}
		f.propagations++
		if f.Assign(v, value, true) == OutcomeConflict {
			return OutcomeConflict
		}
	}
}
