// Package resolve picks canonical artist/title/album metadata for an audio
// file out of an AcoustID lookup response.
//
// The lookup returns a nested, partially-missing structure: results carry an
// acoustic confidence score and zero or more recordings, each recording zero
// or more release groups. ExtractCandidates flattens that structure into
// scoring candidates, SelectBestMatch ranks them against the original
// filename, and Policy decides whether the winning match can be trusted
// without a human in the loop.
//
// Ranking uses filename similarity and release classification only. The
// acoustic score deliberately participates in the confidence gate alone: it
// measures fingerprint quality, not which of several equally-plausible
// metadata texts is right, so it must not bias the pick.
//
// Everything in this package is a pure computation over an already-fetched
// response; network access lives in pipeline/acoustid.
package resolve
