// Package tutte implements Tutte smoothing: repeated multiplication of an
// eigenvector by a zero-diagonal doubled transition matrix, an alternative
// or complementary refinement to Koren's power iteration.
//
// What
//
//	Smooth builds M₂ = 2M with its diagonal zeroed once, then applies
//	vec ← M₂·vec for a fixed number of rounds (default 500), with no
//	renormalization between rounds or at the end — the resulting scale is
//	irrelevant to a renderer that normalizes by bounding box.
//
// Why
//
//	Tutte's barycentric embedding theorem: placing every vertex at the
//	weighted average of its neighbors' positions converges to a planar,
//	non-crossing embedding for 3-connected planar graphs, and produces a
//	visually pleasant relaxation even outside that guarantee. Doubling M
//	and zeroing the diagonal turns the lazy-walk update into exactly that
//	neighbor-average step.
package tutte
