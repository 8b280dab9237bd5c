package solstice

// Select implements Dynamic Largest Individual Sum branching: it
// scans every Free variable and returns the one maximizing
// max(actPos, actNeg), the count of currently-unsatisfied clauses the
// variable would help settle either way. Ties go to the
// first-encountered variable in index order; the chosen polarity is
// True when actPos >= actNeg, False otherwise. A variable that occurs
// in no clause is never selected and stays Free.
//
// The scan is linear in NumVars per decision. Earlier drafts of this
// solver cached variables in a heap ordered by occurrence-list size
// (as the teacher's watched-literal scheme does for its own
// heuristic), but DLIS scores change with every assignment in ways a
// heap invalidates constantly, and a plain rescan is simpler and
// fast enough at the sizes this solver targets.
//
// ok is false once every variable that occurs in some clause is
// assigned, signaling the Search Driver that the current assignment
// covers every clause (and is therefore satisfying).
func (f *Formula) Select() (v int, value Value, ok bool) {
	best := -1
	for i := 1; i <= f.NumVars; i++ {
		vr := &f.Vars[i]
		if vr.Value != Free || len(vr.posOcc)+len(vr.negOcc) == 0 {
			continue
		}
		score := vr.actPos
		if vr.actNeg > score {
			score = vr.actNeg
		}
		if score > best {
			best = score
			v = i
			if vr.actPos >= vr.actNeg {
				value = True
			} else {
				value = False
			}
		}
	}
	if v == 0 {
		return 0, Free, false
	}
	return v, value, true
}
