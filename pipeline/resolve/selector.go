package resolve

// SelectBestMatch ranks every candidate against the target filename and
// returns the single best match.
//
// The candidate set always contains a synthetic zero-value entry (empty song,
// zero score, tier none), so selection has a defined answer even when the
// lookup produced nothing usable, and "no information" always fails the
// confidence gate. Ranking maximizes file*1000 + tier: filename similarity
// dominates, release tier breaks near-ties. Equal ranks keep the earlier
// candidate, so encounter order of the lookup response decides exact ties.
func SelectBestMatch(candidates []Candidate, basename string) Match {
	best := Match{} // sentinel: Song{"", "", ""}, Score{0, 0, TierNone}
	bestRank := rank(best.Score)

	for _, candidate := range candidates {
		file := FilenameScore(basename, candidate.Recording.Artist+" - "+candidate.Recording.Title)
		release := BestRelease(candidate.Recording)
		match := Match{
			Song: Song{
				Artist: candidate.Recording.Artist,
				Title:  candidate.Recording.Title,
				Album:  release.Title,
			},
			Score: Score{
				Audio:   candidate.AudioScore,
				File:    file,
				Release: release.Tier,
			},
		}
		if r := rank(match.Score); r > bestRank {
			best = match
			bestRank = r
		}
	}
	return best
}

// rank folds filename similarity and release tier into one comparable key.
// The acoustic score is intentionally absent: it gates acceptance later but
// never influences which candidate wins.
func rank(s Score) int {
	return s.File*1000 + int(s.Release)
}
