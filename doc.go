// Package otlearn learns a phonological grammar from a corpus of
// surface word forms by searching the joint space of a probabilistic
// lexicon (a hidden Markov emitter) and a ranked list of
// Optimality-Theoretic constraints.
//
// Search minimizes a Minimum Description Length energy: the bit-length
// of the grammar plus the bit-length of the data given the grammar.
// The search itself is simulated annealing over local mutations of
// the joint (ConstraintSet, Lexicon) state.
//
// Canonical form. Every cache in this package is keyed by a type's
// String() form: a Constraint prints as "Name[bundle1 bundle2]" with
// feature bundles printed as "[+f1 -f2]" in label-sorted order; a
// ConstraintSet prints its constraints in rank order separated by
// " >> "; a Word prints as its underlying segment string. These forms
// are documented here once and never re-derived elsewhere.
package otlearn
