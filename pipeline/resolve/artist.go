package resolve

import (
	"strings"

	"github.com/sv4u/songprep/pipeline/acoustid"
)

// JoinArtists flattens a sequence of artist credit fragments into one display
// string. Each fragment contributes its name followed by its join phrase
// ("feat. ", " & ", ...); no separator is inserted beyond what the credit
// itself supplies. An empty credit list yields an empty string.
func JoinArtists(credits []acoustid.ArtistCredit) string {
	var b strings.Builder
	for _, credit := range credits {
		b.WriteString(credit.Name)
		b.WriteString(credit.JoinPhrase)
	}
	return b.String()
}
