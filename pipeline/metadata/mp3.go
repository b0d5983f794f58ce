package metadata

import (
	"fmt"

	"github.com/bogem/id3v2/v2"
)

// embedMP3 rewrites the file's ID3v2 tag from scratch: existing frames are
// cleared so stale downloader tags never survive resolution.
func (e *Embedder) embedMP3(filePath string, song *Song, cover []byte) error {
	tag, err := id3v2.Open(filePath, id3v2.Options{Parse: true})
	if err != nil {
		// No parseable tag yet; open for writing only
		tag, err = id3v2.Open(filePath, id3v2.Options{Parse: false})
		if err != nil {
			return &MetadataError{
				Message:  fmt.Sprintf("Failed to open MP3 file: %s", filePath),
				Original: err,
			}
		}
	}
	defer tag.Close()

	tag.DeleteAllFrames()
	tag.SetDefaultEncoding(id3v2.EncodingUTF8)

	tag.SetArtist(song.Artist)
	tag.SetTitle(song.Title)
	tag.SetAlbum(song.Album)

	if len(cover) > 0 {
		tag.AddAttachedPicture(id3v2.PictureFrame{
			Encoding:    id3v2.EncodingUTF8,
			MimeType:    coverMIMEType(cover),
			PictureType: id3v2.PTFrontCover,
			Description: "Cover",
			Picture:     cover,
		})
	}

	if err := tag.Save(); err != nil {
		return &MetadataError{
			Message:  "Failed to save MP3 metadata",
			Original: err,
		}
	}
	return nil
}

// coverMIMEType sniffs PNG versus JPEG from the image bytes; sacad delivers
// JPEG unless told otherwise.
func coverMIMEType(data []byte) string {
	if len(data) > 4 && data[0] == 0x89 && data[1] == 0x50 && data[2] == 0x4E && data[3] == 0x47 {
		return "image/png"
	}
	return "image/jpeg"
}
