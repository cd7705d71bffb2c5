// Package koren extracts the second and third eigenvectors of a
// transition matrix by power iteration with degree-weighted ("D-orthogonal")
// deflation against the eigenvectors already found.
//
// What
//
//	SecondEigenvector deflates against the (known) first eigenvector —
//	the constant vector — before every matrix-vector multiply, so the
//	iterate is pushed out of the dominant eigenspace and converges toward
//	the second-largest eigenvalue's eigenvector instead.
//	ThirdEigenvector additionally deflates against the converged second
//	eigenvector, using twice the convergence tolerance.
//
// Why
//
//	M = ½(I + D⁻¹A) is row-stochastic with eigenvalue 1 for the constant
//	vector; plain power iteration converges to that trivial eigenvector.
//	D-orthogonal deflation against already-known eigenvectors is the
//	standard way to recover the next eigenvector of a symmetric-in-the-
//	D-inner-product operator without ever forming D explicitly.
//
// Convergence
//
//	Iteration stops once the Euclidean distance between the deflated
//	pre-multiply vector and the normalized post-multiply vector drops
//	below Options.Eps. Options.MaxIter, when positive, bounds the number
//	of rounds; reaching it is reported through Options.OnWarning rather
//	than as an error, matching the source algorithm's reliance on
//	epsilon convergence with an optional safety cap.
package koren
