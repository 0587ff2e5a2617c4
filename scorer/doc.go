// Package scorer provides concrete core.Scorer implementations: constant
// match/mismatch/gap scorers for simple alphabets, a substitution-matrix
// scorer for amino-acid or custom alphabets, and free-ride and
// extended-gap presets. The align.Align* entry points take their scorers
// from the caller; only AlignExtendedGap supplies one itself, a zero-weight
// free-ride for gap-close.
package scorer
