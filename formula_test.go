package solstice

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// snapshot captures the clause and variable counters and satisfier
// marks needed to compare a formula's state before and after an
// operation that is supposed to be a no-op (like Assign immediately
// followed by Unassign).
type snapshot struct {
	ActiveCounts []int
	Satisfiers   []int
	ActPos       []int
	ActNeg       []int
}

func takeSnapshot(f *Formula) snapshot {
	s := snapshot{
		ActiveCounts: make([]int, len(f.Clauses)),
		Satisfiers:   make([]int, len(f.Clauses)),
		ActPos:       make([]int, len(f.Vars)),
		ActNeg:       make([]int, len(f.Vars)),
	}
	for i, c := range f.Clauses {
		s.ActiveCounts[i] = c.ActiveCount
		s.Satisfiers[i] = c.SatisfiedBy
	}
	for i, v := range f.Vars {
		s.ActPos[i] = v.actPos
		s.ActNeg[i] = v.actNeg
	}
	return s
}

// checkInvariants recomputes every invariant in spec.md §3 directly
// from the live assignment and fails t if the cached bookkeeping has
// drifted from it.
func checkInvariants(t *testing.T, f *Formula) {
	t.Helper()

	for ci, c := range f.Clauses {
		if c.SatisfiedBy != clauseNone {
			v := &f.Vars[c.SatisfiedBy]
			if v.Value == Free {
				t.Errorf("clause %d satisfied by unassigned variable %d", ci, c.SatisfiedBy)
			}
			continue
		}
		want := 0
		for _, l := range c.Lits {
			if f.Vars[litVar(l)].Value == Free {
				want++
			}
		}
		if c.ActiveCount != want {
			t.Errorf("clause %d ActiveCount = %d, want %d (recomputed)", ci, c.ActiveCount, want)
		}
	}

	wantPos := make([]int, len(f.Vars))
	wantNeg := make([]int, len(f.Vars))
	for ci, c := range f.Clauses {
		if c.SatisfiedBy != clauseNone {
			continue
		}
		for _, l := range c.Lits {
			v := litVar(l)
			if f.Vars[v].Value != Free {
				continue
			}
			if litIsPos(l) {
				wantPos[v]++
			} else {
				wantNeg[v]++
			}
		}
		_ = ci
	}
	for v := 1; v <= f.NumVars; v++ {
		vr := &f.Vars[v]
		if vr.Value != Free {
			continue
		}
		if vr.actPos != wantPos[v] {
			t.Errorf("var %d actPos = %d, want %d", v, vr.actPos, wantPos[v])
		}
		if vr.actNeg != wantNeg[v] {
			t.Errorf("var %d actNeg = %d, want %d", v, vr.actNeg, wantNeg[v])
		}
	}

	seen := make(map[int]bool)
	for _, v := range f.Stack {
		if seen[v] {
			t.Errorf("variable %d appears twice on the Assignment Stack", v)
		}
		seen[v] = true
		if f.Vars[v].Value == Free {
			t.Errorf("variable %d is on the Assignment Stack but Free", v)
		}
	}
	for v := 1; v <= f.NumVars; v++ {
		if f.Vars[v].Value != Free && !seen[v] {
			t.Errorf("variable %d is assigned but missing from the Assignment Stack", v)
		}
	}
}

func TestAssignUnassignSymmetry(t *testing.T) {
	f := NewFormula(4)
	clauses := [][]int{
		{1, 2, -3},
		{-1, 3, 4},
		{2, -4},
		{-2, -3, 4},
	}
	for _, c := range clauses {
		if err := f.AddClause(c); err != nil {
			t.Fatal(err)
		}
	}

	for v := 1; v <= f.NumVars; v++ {
		for _, value := range []Value{True, False} {
			before := takeSnapshot(f)
			f.Assign(v, value, false)
			f.Unassign(v)
			after := takeSnapshot(f)
			if diff := cmp.Diff(before, after); diff != "" {
				t.Fatalf("assign(%d,%v); unassign(%d) changed state (-before,+after):\n%s", v, value, v, diff)
			}
			checkInvariants(t, f)
		}
	}
}

// TestAssignUnassignSymmetryDeep assigns a chain of variables (so the
// snapshot taken before the final assign/unassign pair reflects a
// non-trivial reachable state, per spec.md §8 property 3), then
// verifies that assign/unassign of a variable that is still Free
// round-trips exactly.
func TestAssignUnassignSymmetryDeep(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 200; trial++ {
		numVars := 3 + rng.Intn(8)
		numClauses := 3 + rng.Intn(12)
		f := randomFormula(rng, numVars, numClauses)

		order := rng.Perm(numVars)
		var assigned []int
		for _, vi := range order[:len(order)-1] {
			v := vi + 1
			if f.Vars[v].Value != Free {
				continue
			}
			value := True
			if rng.Intn(2) == 0 {
				value = False
			}
			if f.Assign(v, value, false) == OutcomeConflict {
				break
			}
			assigned = append(assigned, v)
		}

		free := -1
		for _, vi := range order {
			if f.Vars[vi+1].Value == Free {
				free = vi + 1
				break
			}
		}
		if free == -1 {
			continue
		}

		before := takeSnapshot(f)
		value := True
		if rng.Intn(2) == 0 {
			value = False
		}
		f.Assign(free, value, false)
		f.Unassign(free)
		after := takeSnapshot(f)
		if diff := cmp.Diff(before, after); diff != "" {
			t.Fatalf("trial %d: assign(%d); unassign(%d) changed state (-before,+after):\n%s", trial, free, free, diff)
		}
		checkInvariants(t, f)

		for i := len(assigned) - 1; i >= 0; i-- {
			f.Unassign(assigned[i])
		}
	}
}

func randomFormula(rng *rand.Rand, numVars, numClauses int) *Formula {
	f := NewFormula(numVars)
	for i := 0; i < numClauses; i++ {
		size := 1 + rng.Intn(numVars)
		clause := make([]int, 0, size)
		for j := 0; j < size; j++ {
			v := rng.Intn(numVars) + 1
			if rng.Intn(2) == 0 {
				v = -v
			}
			clause = append(clause, v)
		}
		if err := f.AddClause(clause); err != nil {
			panic(err)
		}
	}
	return f
}
