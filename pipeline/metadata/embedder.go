package metadata

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sv4u/songprep/pipeline/logging"
)

// Embedder writes resolved song metadata into audio files.
type Embedder struct {
	cover  CoverSource
	logger *logging.Logger
}

// NewEmbedder creates a metadata embedder. cover may be nil to skip cover
// art entirely.
func NewEmbedder(cover CoverSource, logger *logging.Logger) *Embedder {
	return &Embedder{cover: cover, logger: logger}
}

// Embed replaces the file's tags with the resolved song metadata plus, when
// one can be sourced, a front cover image. A missing or failed cover is a
// warning, never a tagging failure.
func (e *Embedder) Embed(ctx context.Context, filePath string, song *Song) error {
	if err := ctx.Err(); err != nil {
		return &MetadataError{
			Message:  fmt.Sprintf("Context cancelled: %v", err),
			Original: err,
		}
	}

	if _, err := os.Stat(filePath); err != nil {
		return &MetadataError{
			Message:  fmt.Sprintf("File not found: %s", filePath),
			Original: err,
		}
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filePath), "."))
	if ext != "mp3" {
		return &MetadataError{
			Message: fmt.Sprintf("Unsupported format: %s", ext),
		}
	}

	cover := e.fetchCover(ctx, filePath, song)
	return e.embedMP3(filePath, song, cover)
}

func (e *Embedder) fetchCover(ctx context.Context, filePath string, song *Song) []byte {
	if e.cover == nil {
		return nil
	}
	data, err := e.cover.Fetch(ctx, song.Artist, song.Album)
	if err != nil {
		var notFound *CoverNotFoundError
		if errors.As(err, &notFound) {
			e.logger.WarnFile(filePath, "No cover art available", err)
		} else {
			e.logger.WarnFile(filePath, "Cover art retrieval failed", err)
		}
		return nil
	}
	return data
}
