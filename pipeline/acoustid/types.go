package acoustid

// LookupResponse is the top-level payload of a fingerprint lookup.
type LookupResponse struct {
	Status  string    `json:"status"`
	Error   *APIError `json:"error,omitempty"`
	Results []Result  `json:"results"`
}

// APIError carries the error object AcoustID returns on non-ok status.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Result is one fingerprint match. Score is the acoustic matching confidence
// in [0,1], independent of metadata quality; recordings may be absent on
// low-confidence entries.
type Result struct {
	ID         string      `json:"id,omitempty"`
	Score      float64     `json:"score"`
	Recordings []Recording `json:"recordings,omitempty"`
}

// Recording is one candidate song known to the service's database. Title and
// artists are optional on the wire; entries missing either are unusable for
// identification.
type Recording struct {
	ID            string         `json:"id,omitempty"`
	Title         string         `json:"title,omitempty"`
	Artists       []ArtistCredit `json:"artists,omitempty"`
	ReleaseGroups []ReleaseGroup `json:"releasegroups,omitempty"`
}

// ArtistCredit is one fragment of an artist credit. JoinPhrase, when present,
// is the connective text that follows the name ("feat. ", " & ", ...).
type ArtistCredit struct {
	ID         string `json:"id,omitempty"`
	Name       string `json:"name"`
	JoinPhrase string `json:"joinphrase,omitempty"`
}

// ReleaseGroup is one album/single/compilation grouping containing a
// recording.
type ReleaseGroup struct {
	ID             string         `json:"id,omitempty"`
	Type           string         `json:"type,omitempty"`
	SecondaryTypes []string       `json:"secondarytypes,omitempty"`
	Title          string         `json:"title"`
	Artists        []ArtistCredit `json:"artists,omitempty"`
}

// Fingerprint is the Chromaprint digest of one audio file, as produced by
// fpcalc.
type Fingerprint struct {
	Duration    float64 `json:"duration"`
	Fingerprint string  `json:"fingerprint"`
}

// Submission carries a crowd-sourced tag correction for one file back to the
// service's write endpoint.
type Submission struct {
	Duration    float64
	Fingerprint string
	Artist      string
	Track       string
	Album       string
	AlbumArtist string
	FileFormat  string
}
