// Package solstice implements a SAT solver for formulas in
// conjunctive normal form using the Davis-Putnam-Logemann-Loveland
// algorithm: unit propagation, pure-literal elimination, a Dynamic
// Largest Individual Sum branching heuristic, and chronological
// backtracking. It deliberately stops short of clause learning,
// non-chronological backjumping, VSIDS, restarts, and two-watched-
// literal indexing — this is a classical DPLL core, not a CDCL engine.
package solstice
