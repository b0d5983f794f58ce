package workflow

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sv4u/songprep/pipeline/logging"
	"github.com/sv4u/songprep/pipeline/resolve"
)

// PlaceAsSong moves (or, with keepOriginal, copies) the file into outputDir
// under the name "Artist - Title.mp3". A literal slash cannot appear in a
// filename, so it is swapped for the unicode division slash U+29F8.
func PlaceAsSong(source string, song resolve.Song, outputDir string, keepOriginal bool, logger *logging.Logger) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}
	name := strings.ReplaceAll(fmt.Sprintf("%s - %s.mp3", song.Artist, song.Title), "/", "⧸")
	destination := filepath.Join(outputDir, name)
	if err := CopyOrMove(source, destination, keepOriginal, logger); err != nil {
		return "", err
	}
	return destination, nil
}

// Shelve places an unconfident file untouched into the skip directory under
// its original name. No tag or metadata mutation happens on this path.
func Shelve(source, skipDir string, keepOriginal bool, logger *logging.Logger) (string, error) {
	if err := os.MkdirAll(skipDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create skip directory %s: %w", skipDir, err)
	}
	destination := filepath.Join(skipDir, filepath.Base(source))
	if err := CopyOrMove(source, destination, keepOriginal, logger); err != nil {
		return "", err
	}
	return destination, nil
}

// CopyOrMove places source at destination. With keepOriginal the source is
// copied; when source and destination are already the same file the desired
// end state holds, so the operation degrades to a warning no-op instead of
// an error.
func CopyOrMove(source, destination string, keepOriginal bool, logger *logging.Logger) error {
	if !keepOriginal {
		return os.Rename(source, destination)
	}

	if sameFile(source, destination) {
		logger.WarnFile(source, fmt.Sprintf("Keep-original requested but %s already is the destination; leaving it in place", source), nil)
		return nil
	}
	return copyFile(source, destination)
}

func sameFile(a, b string) bool {
	infoA, errA := os.Stat(a)
	infoB, errB := os.Stat(b)
	if errA == nil && errB == nil && os.SameFile(infoA, infoB) {
		return true
	}
	absA, errA2 := filepath.Abs(a)
	absB, errB2 := filepath.Abs(b)
	return errA2 == nil && errB2 == nil && absA == absB
}

func copyFile(source, destination string) error {
	in, err := os.Open(source)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(destination, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
