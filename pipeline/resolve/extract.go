package resolve

import "github.com/sv4u/songprep/pipeline/acoustid"

// ExtractCandidates walks a raw lookup response into a flat list of scoring
// candidates. Recordings without a parseable artist or a title are dropped:
// the lookup service legitimately omits metadata on weak entries, so this is
// expected attrition, not an error. Results without recordings contribute
// nothing. A nil or empty response yields an empty candidate list, which
// downstream selection handles via the sentinel match.
func ExtractCandidates(resp *acoustid.LookupResponse) []Candidate {
	if resp == nil {
		return nil
	}
	var candidates []Candidate
	for _, result := range resp.Results {
		for _, rec := range result.Recordings {
			if len(rec.Artists) == 0 || rec.Title == "" {
				continue
			}
			artist := JoinArtists(rec.Artists)
			if artist == "" {
				continue
			}
			releases := make([]Release, 0, len(rec.ReleaseGroups))
			for _, group := range rec.ReleaseGroups {
				if release, ok := ClassifyReleaseGroup(group, artist); ok {
					releases = append(releases, release)
				}
			}
			candidates = append(candidates, Candidate{
				AudioScore: result.Score,
				Recording: Recording{
					Artist:   artist,
					Title:    rec.Title,
					Releases: releases,
				},
			})
		}
	}
	return candidates
}
