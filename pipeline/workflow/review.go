package workflow

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"

	"github.com/sv4u/songprep/pipeline/resolve"
)

// PromptReviewer asks the operator for corrections on the terminal. It
// presents the best guess, takes up to three field overrides (blank keeps
// the previous value), and offers to submit the corrected tags upstream.
type PromptReviewer struct{}

// Review implements Reviewer.
func (PromptReviewer) Review(ctx context.Context, file string, song resolve.Song) (ReviewResult, error) {
	fmt.Println("Auto tagging finished with a low confidence level")
	fmt.Printf("Filename: %s\n", filepath.Base(file))
	fmt.Printf("Artist: %s\n", song.Artist)
	fmt.Printf("Title: %s\n", song.Title)
	fmt.Printf("Album: %s\n", song.Album)

	adjust := false
	if err := survey.AskOne(&survey.Confirm{Message: "Perform manual adjustments?"}, &adjust); err != nil {
		return ReviewResult{}, err
	}
	if !adjust {
		return ReviewResult{Song: song}, nil
	}

	fmt.Println("Leave individual fields blank to keep the old value")
	var artist, title, album string
	if err := survey.AskOne(&survey.Input{Message: "New Artist:"}, &artist); err != nil {
		return ReviewResult{}, err
	}
	if err := survey.AskOne(&survey.Input{Message: "New Title:"}, &title); err != nil {
		return ReviewResult{}, err
	}
	if err := survey.AskOne(&survey.Input{Message: "New Album:"}, &album); err != nil {
		return ReviewResult{}, err
	}

	corrected := resolve.Song{
		Artist: orDefault(artist, song.Artist),
		Title:  orDefault(title, song.Title),
		Album:  orDefault(album, song.Album),
	}

	submit := false
	if err := survey.AskOne(&survey.Confirm{Message: "Submit the corrected tags to the AcoustID web service?"}, &submit); err != nil {
		return ReviewResult{}, err
	}

	return ReviewResult{Song: corrected, Adjusted: true, SubmitCorrection: submit}, nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
