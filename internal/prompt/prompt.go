// Package prompt asks the split parameters interactively.
package prompt

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/benoitkugler/sunder"
)

// Answers holds the raw answers, in the textual forms
// accepted by sunder.ParsePartition and sunder.ParseSelection.
type Answers struct {
	X       string `survey:"x"`
	Y       string `survey:"y"`
	Select  string `survey:"select"`
	Exclude string `survey:"exclude"`
	Output  string `survey:"output"`
}

// Questions returns the questions asked by Ask, with
// `output` as default output path.
func Questions(output string) []*survey.Question {
	return []*survey.Question{
		{
			Name:     "x",
			Prompt:   &survey.Input{Message: "Horizontal split (n, or lo:hi,lo:hi):"},
			Validate: ValidatePartition,
		},
		{
			Name:     "y",
			Prompt:   &survey.Input{Message: "Vertical split (n, or lo:hi,lo:hi):"},
			Validate: ValidatePartition,
		},
		{
			Name:     "select",
			Prompt:   &survey.Input{Message: "Cells to create (empty for all):"},
			Validate: ValidateSelection,
		},
		{
			Name:     "exclude",
			Prompt:   &survey.Input{Message: "Cells to exclude:"},
			Validate: ValidateSelection,
		},
		{
			Name:     "output",
			Prompt:   &survey.Input{Message: "Output file (.png, .pdf or .svg):", Default: output},
			Validate: survey.ComposeValidators(survey.Required, ValidateOutput),
		},
	}
}

// Ask runs the questions on the terminal.
func Ask(output string, opts ...survey.AskOpt) (Answers, error) {
	var ans Answers
	if err := survey.Ask(Questions(output), &ans, opts...); err != nil {
		return Answers{}, fmt.Errorf("prompt: %w", err)
	}
	return ans, nil
}

func asString(ans interface{}) (string, error) {
	s, ok := ans.(string)
	if !ok {
		return "", fmt.Errorf("unexpected answer type %T", ans)
	}
	return s, nil
}

// ValidatePartition is a survey.Validator accepting partitions.
func ValidatePartition(ans interface{}) error {
	s, err := asString(ans)
	if err != nil {
		return err
	}
	_, err = sunder.ParsePartition(s)
	return err
}

// ValidateSelection is a survey.Validator accepting selections.
func ValidateSelection(ans interface{}) error {
	s, err := asString(ans)
	if err != nil {
		return err
	}
	_, err = sunder.ParseSelection(s)
	return err
}

// ValidateOutput is a survey.Validator accepting the supported output files.
func ValidateOutput(ans interface{}) error {
	s, err := asString(ans)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(s)) {
	case ".png", ".pdf", ".svg":
		return nil
	default:
		return fmt.Errorf("unsupported output format %q", filepath.Ext(s))
	}
}
