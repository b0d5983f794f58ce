package resolve

import (
	"fmt"
	"strings"

	"github.com/sv4u/songprep/pipeline/acoustid"
)

// ReleaseTier is the ordinal trust classification of a release group. Higher
// tiers indicate metadata more likely to describe the song's canonical
// release. The tier is used for ranking and gating only; the album text shown
// to the user comes from the release title.
type ReleaseTier int

const (
	TierNone ReleaseTier = iota
	TierMix
	TierCompilation
	TierSingle
	TierAlbum
)

// String returns the lowercase tier name.
func (t ReleaseTier) String() string {
	switch t {
	case TierNone:
		return "none"
	case TierMix:
		return "mix"
	case TierCompilation:
		return "compilation"
	case TierSingle:
		return "single"
	case TierAlbum:
		return "album"
	default:
		return fmt.Sprintf("tier(%d)", int(t))
	}
}

// ParseTier maps a tier name from configuration to its ReleaseTier value.
func ParseTier(name string) (ReleaseTier, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none":
		return TierNone, nil
	case "mix":
		return TierMix, nil
	case "compilation":
		return TierCompilation, nil
	case "single":
		return TierSingle, nil
	case "album":
		return TierAlbum, nil
	default:
		return TierNone, fmt.Errorf("unknown release tier: %q", name)
	}
}

// singleSuffix is appended to single titles so the album tag reads the way
// stores label standalone tracks.
const singleSuffix = " - Single"

// ClassifyReleaseGroup maps one raw release-group record onto a classified
// release, comparing the group's credited artist against the recording's.
//
//   - Album by the same artist with no secondary types is an exact album.
//   - Album by the same artist with secondary types (live, remix, ...) is a
//     compilation.
//   - Album by a different artist is a mix.
//   - Single by the same artist is a single; by a different artist, a mix.
//
// A group whose credited artist is absent is assumed to belong to the
// recording artist: the lookup service routinely omits the credit when it
// matches. Groups without a primary type, or with a type outside
// album/single, contribute nothing and return ok = false.
func ClassifyReleaseGroup(group acoustid.ReleaseGroup, recordingArtist string) (Release, bool) {
	groupArtist := JoinArtists(group.Artists)
	sameArtist := groupArtist == "" || groupArtist == recordingArtist

	switch group.Type {
	case "Album":
		switch {
		case !sameArtist:
			return Release{Title: group.Title, Tier: TierMix}, true
		case len(group.SecondaryTypes) > 0:
			return Release{Title: group.Title, Tier: TierCompilation}, true
		default:
			return Release{Title: group.Title, Tier: TierAlbum}, true
		}
	case "Single":
		if !sameArtist {
			return Release{Title: group.Title, Tier: TierMix}, true
		}
		return Release{Title: group.Title + singleSuffix, Tier: TierSingle}, true
	default:
		return Release{}, false
	}
}

// BestRelease picks the highest-tier release of a recording; ties keep the
// first one seen. A recording with no classifiable release gets a synthetic
// fallback titled after the recording with tier none, so an unclassified
// release can never on its own clear the confidence gate.
func BestRelease(rec Recording) Release {
	if len(rec.Releases) == 0 {
		return Release{Title: rec.Title + singleSuffix, Tier: TierNone}
	}
	best := rec.Releases[0]
	for _, release := range rec.Releases[1:] {
		if release.Tier > best.Tier {
			best = release
		}
	}
	return best
}
