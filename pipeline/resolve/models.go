package resolve

// Song is the final identification for one audio file. Empty strings are the
// "unknown" sentinel; fields are never conceptually null.
type Song struct {
	Artist string
	Title  string
	Album  string
}

// Release is one classified release group of a recording.
type Release struct {
	Title string
	Tier  ReleaseTier
}

// Recording is one fingerprint match's metadata candidate.
type Recording struct {
	Artist   string
	Title    string
	Releases []Release
}

// Candidate pairs a normalized recording with the acoustic confidence of the
// lookup result it came from.
type Candidate struct {
	AudioScore float64
	Recording  Recording
}

// Score is the per-candidate composite: acoustic confidence in [0,1],
// filename similarity in [0,100], and the winning release tier.
type Score struct {
	Audio   float64
	File    int
	Release ReleaseTier
}

// Match is a candidate song paired with its score.
type Match struct {
	Song  Song
	Score Score
}
