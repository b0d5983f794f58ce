package resolve

import "testing"

func TestFilenameScore(t *testing.T) {
	tests := []struct {
		name      string
		filename  string
		candidate string
		want      int
	}{
		{
			name:      "identical strings",
			filename:  "Daft Punk - One More Time",
			candidate: "Daft Punk - One More Time",
			want:      100,
		},
		{
			name:      "case and punctuation are ignored",
			filename:  "daft punk   one_more_time",
			candidate: "Daft Punk - One More Time",
			want:      100,
		},
		{
			name:      "filename decoration is tolerated",
			filename:  "Daft Punk - One More Time (Official Video)",
			candidate: "Daft Punk - One More Time",
			want:      100,
		},
		{
			name:      "candidate superset is tolerated",
			filename:  "One More Time",
			candidate: "Daft Punk - One More Time",
			want:      100,
		},
		{
			name:      "both empty",
			filename:  "",
			candidate: "",
			want:      0,
		},
		{
			name:      "one side empty",
			filename:  "Daft Punk - One More Time",
			candidate: "",
			want:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FilenameScore(tt.filename, tt.candidate); got != tt.want {
				t.Errorf("FilenameScore(%q, %q) = %d, want %d", tt.filename, tt.candidate, got, tt.want)
			}
		})
	}
}

func TestFilenameScore_DifferentTitlesPenalized(t *testing.T) {
	same := FilenameScore("Daft Punk - One More Time", "Daft Punk - One More Time")
	different := FilenameScore("Daft Punk - One More Time", "Daft Punk - Around the World")
	if different >= same {
		t.Errorf("Different titles scored %d, >= identical score %d", different, same)
	}
	if different > 80 {
		t.Errorf("Different titles scored %d, expected a clear penalty", different)
	}
}

func TestFilenameScore_Symmetric(t *testing.T) {
	a := "Daft Punk - One More Time (Lyrics)"
	b := "Daft Punk - One More Time"
	if FilenameScore(a, b) != FilenameScore(b, a) {
		t.Errorf("FilenameScore is not symmetric: %d vs %d", FilenameScore(a, b), FilenameScore(b, a))
	}
}

func TestFilenameScore_Range(t *testing.T) {
	pairs := [][2]string{
		{"abc", "xyz"},
		{"a completely different phrase", "nothing shared at all"},
		{"one", "one two three four five six"},
	}
	for _, pair := range pairs {
		got := FilenameScore(pair[0], pair[1])
		if got < 0 || got > 100 {
			t.Errorf("FilenameScore(%q, %q) = %d, out of [0,100]", pair[0], pair[1], got)
		}
	}
}
