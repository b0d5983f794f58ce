package resolve

// Policy centralizes the confidence thresholds applied to a selected match.
// Zero or out-of-range fields fall back to the defaults, so a zero Policy
// behaves like DefaultPolicy.
type Policy struct {
	MinAudioScore  float64
	MinFileScore   int
	MinReleaseTier ReleaseTier
}

// DefaultPolicy returns the stock thresholds: the acoustic score must reach
// 0.40, the filename similarity 70, and the release classification at least
// a single.
func DefaultPolicy() Policy {
	return Policy{
		MinAudioScore:  0.40,
		MinFileScore:   70,
		MinReleaseTier: TierSingle,
	}
}

func (p Policy) normalized() Policy {
	d := DefaultPolicy()

	if p.MinAudioScore <= 0 || p.MinAudioScore > 1 {
		p.MinAudioScore = d.MinAudioScore
	}
	if p.MinFileScore <= 0 || p.MinFileScore > 100 {
		p.MinFileScore = d.MinFileScore
	}
	if p.MinReleaseTier < TierNone || p.MinReleaseTier > TierAlbum {
		p.MinReleaseTier = d.MinReleaseTier
	}
	return p
}

// Confident reports whether a match clears every threshold. All three
// conditions must hold: a perfect filename score on a recording with no
// classifiable release is still refused, because an unclassified release
// usually signals a low-quality or ambiguous database entry.
func (p Policy) Confident(m Match) bool {
	p = p.normalized()
	return m.Score.Audio >= p.MinAudioScore &&
		m.Score.File >= p.MinFileScore &&
		m.Score.Release >= p.MinReleaseTier
}
