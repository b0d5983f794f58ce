package resolve

import (
	"testing"

	"github.com/sv4u/songprep/pipeline/acoustid"
)

func TestJoinArtists(t *testing.T) {
	tests := []struct {
		name    string
		credits []acoustid.ArtistCredit
		want    string
	}{
		{
			name:    "empty",
			credits: nil,
			want:    "",
		},
		{
			name: "single artist",
			credits: []acoustid.ArtistCredit{
				{Name: "Daft Punk"},
			},
			want: "Daft Punk",
		},
		{
			name: "featured artist",
			credits: []acoustid.ArtistCredit{
				{Name: "Daft Punk", JoinPhrase: " feat. "},
				{Name: "Pharrell Williams"},
			},
			want: "Daft Punk feat. Pharrell Williams",
		},
		{
			name: "three credits with mixed phrases",
			credits: []acoustid.ArtistCredit{
				{Name: "A", JoinPhrase: ", "},
				{Name: "B", JoinPhrase: " & "},
				{Name: "C"},
			},
			want: "A, B & C",
		},
		{
			name: "trailing join phrase is kept verbatim",
			credits: []acoustid.ArtistCredit{
				{Name: "A", JoinPhrase: " & "},
			},
			want: "A & ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JoinArtists(tt.credits); got != tt.want {
				t.Errorf("JoinArtists() = %q, want %q", got, tt.want)
			}
		})
	}
}
