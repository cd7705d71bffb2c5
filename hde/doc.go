// Package hde computes the High-Dimensional Embedding initialization: a
// pair of starting vectors for Koren's power iteration, built from
// BFS distance columns taken from maximally-distant pivots.
//
// What
//
//	Init runs K iterated BFS passes, each time picking the vertex farthest
//	(in the running minimum-distance sense) from all prior pivots, writes
//	each pass's distances into a column, D-orthogonalizes the columns
//	against each other (discarding any that collapse to near-zero norm),
//	assembles the small dense matrix XᵀLX over the surviving columns, and
//	lifts the two eigenvectors of that small problem back through X to
//	produce full-length second/third eigenvector seeds.
//
// Why
//
//	A random starting vector for Koren's power iteration can take many
//	iterations to separate from noise in the slow subspace; HDE biases the
//	seed toward that subspace using purely combinatorial (BFS) information,
//	so the downstream power iteration converges in far fewer rounds.
//
// Requirements
//
//	Init requires a connected graph: BFS from any pivot must reach every
//	vertex. Init returns ErrDisconnectedGraph otherwise rather than
//	guessing a policy for unreached vertices.
package hde
