// Package spectral wires core, bfs, coarsen, transition, hde, koren, and
// tutte into the end-to-end 2D spectral embedding pipeline: edges in,
// second/third eigenvector coordinates out.
//
// What
//
//	Run selects among three resolutions of the problem — coarsen-and-stop
//	(embed the coarse graph only), coarsen-and-lift (embed coarse, seed
//	fine iteration from the lifted coarse result), or no coarsening. The
//	coarse level always starts from sign-fixed random vectors and refines
//	with Koren; the fine level selects a starting vector (HDE,
//	lifted-from-coarse, or sign-fixed random) and a refinement strategy
//	(none, Koren, Tutte, or Tutte then Koren).
//
// Why
//
//	Each of those phases is independently useful (coarsening is a
//	multilevel preconditioner, HDE a smarter seed, Koren/Tutte alternative
//	refinements), but the policy of which to run together, and in what
//	order, only makes sense assembled — this package is that policy.
//
// Errors
//
//	Every failure Run returns is wrapped in one of InputError, NumericError,
//	or Internal, each exposing Unwrap so callers can errors.Is against the
//	originating sentinel from whichever package raised it. Koren hitting
//	its iteration cap is non-fatal and is reported through
//	Options.OnWarning instead. HDE column discards are non-fatal and are
//	not reported at all.
package spectral
