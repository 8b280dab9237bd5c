package solstice

import (
	"fmt"
	"io"
)

// WriteResult writes verdict and, for a SAT verdict, f's satisfying
// assignment in the DIMACS result format of spec.md §6: "SAT\n"
// followed by a line listing every variable in index order as k if
// True, -k if False, omitted if still Free, terminated by " 0\n"; or a
// single "UNSAT\n" line. A TIMEOUT verdict writes nothing, matching
// "no result file is written" — callers that reach this with a
// TIMEOUT are expected to have already decided not to open an output
// file at all; WriteResult simply declines to produce a body for one.
func WriteResult(w io.Writer, verdict Verdict, f *Formula) error {
	switch verdict {
	case UNSAT:
		_, err := io.WriteString(w, "UNSAT\n")
		return err
	case TIMEOUT:
		return nil
	case SAT:
		if _, err := io.WriteString(w, "SAT\n"); err != nil {
			return err
		}
		for i := 1; i <= f.NumVars; i++ {
			switch f.Vars[i].Value {
			case True:
				if _, err := fmt.Fprintf(w, "%d ", i); err != nil {
					return err
				}
			case False:
				if _, err := fmt.Fprintf(w, "%d ", -i); err != nil {
					return err
				}
			}
		}
		_, err := io.WriteString(w, "0\n")
		return err
	default:
		return fmt.Errorf("solstice: unknown verdict %v", verdict)
	}
}
