package metadata

// Song represents song metadata destined for ID3 tags.
type Song struct {
	Artist string
	Title  string
	Album  string
}
