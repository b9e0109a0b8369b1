// Package solver turns a stoichiometric matrix into balancing coefficients.
//
// Solve computes the exact rational null space of the matrix (see
// matrix.NullSpace). A balancing exists as a single reaction only when that
// null space is one-dimensional; otherwise the system is over- or
// under-determined and Solve fails with ErrNoUniqueSolution.
//
// The single basis vector is then normalised (Normalize):
//
//  1. multiply by the LCM of all denominators → integers;
//  2. if any entry is negative, negate the whole vector;
//  3. divide by the GCD of all entries → irreducible.
//
// The result must be strictly positive everywhere. A zero or remaining
// negative coefficient means a compound cannot take part in the reaction
// (e.g. a species that appears on one side only with an element nobody
// else carries), and is reported as ErrNonPositiveCoefficient rather than
// returned silently.
package solver
