// Package align is the public entry point for pairwise sequence alignment:
// five flavors (global, local, fitting, overlap, extended-gap) built from
// package dag's alignment graphs, computed either densely (package
// backtrack) or in linear space (package subdivide), per the caller's
// chosen Options.
//
// A typical call looks like:
//
//	v, w := seq.FromString("hello"), seq.FromString("mellow")
//	res, err := align.AlignGlobal(ctx, v, w, scorer.Constant(1, -1), scorer.Gap(-1))
//	top, bottom := align.Format(align.EdgesToElementPairs(res.Path, v, w))
package align
