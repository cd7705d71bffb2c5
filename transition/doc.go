// Package transition builds the sparse row-major transition matrix
// M = ½(I + D⁻¹A) for either the fine core.Graph or a coarsened
// core.CoarseGraph, alongside the degree vector the rest of the pipeline
// needs for D-orthogonal inner products.
//
// What
//
//   - BuildFine constructs M for an unweighted fine graph: M[i,i] = ½,
//     M[i,v] = 1/(2·deg(i)) for each neighbor v (multiplicities summed).
//   - BuildCoarse constructs M for a weighted coarse graph: off-diagonal
//     entries are w(i,v)/(2·deg(i)); a coarse self-loop's weight is folded
//     into the ½ diagonal entry rather than kept as a separate entry.
//   - Both return a row-stochastic Matrix and the Degree vector used to
//     build it.
//
// Why
//
//	M is shared verbatim by HDE's D-orthogonalization, Koren's power
//	iteration, and Tutte smoothing; building it once per resolution (fine
//	or coarse) and handing out the same *Matrix keeps their results
//	consistent and avoids redundant sparse-matrix construction.
//
// Concurrency
//
//	Matrix is immutable after construction. MulVec is safe to call
//	concurrently from multiple goroutines against the same Matrix;
//	MulVecParallel partitions rows across a bounded worker pool and writes
//	each row's result to a disjoint output slot, so it is bit-identical to
//	the serial MulVec for the same input vector.
package transition
