// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package prompt

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
)

// ErrAborted is returned when the user cancels a prompt.
var ErrAborted = errors.New("prompt aborted")

// Question describes one free-text prompt.
type Question struct {
	Title       string
	Description string
	Default     string
	Required    bool
}

// Asker asks the user for values. The interactive flow only talks to this
// interface, so tests can script the answers.
type Asker interface {
	// Input asks for a line of text, pre-filled with q.Default.
	Input(q Question) (string, error)

	// Select asks for one of options, preselecting def.
	Select(title string, options []string, def string) (string, error)

	// MultiSelect asks for any subset of options, preselecting defs.
	MultiSelect(title string, options []string, defs []string) ([]string, error)
}

// HuhAsker asks through charmbracelet/huh terminal forms.
type HuhAsker struct {
	// Accessible switches huh to plain line-based prompts for screen readers.
	Accessible bool
}

func (h HuhAsker) run(field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).WithAccessible(h.Accessible)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return fmt.Errorf("prompt failed: %w", err)
	}
	return nil
}

// Input implements Asker.
func (h HuhAsker) Input(q Question) (string, error) {
	value := q.Default
	input := huh.NewInput().
		Title(q.Title).
		Description(q.Description).
		Value(&value).
		Validate(func(s string) error {
			if q.Required && strings.TrimSpace(s) == "" {
				return fmt.Errorf("this field is required")
			}
			return nil
		})
	if err := h.run(input); err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

// Select implements Asker.
func (h HuhAsker) Select(title string, options []string, def string) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("no options provided")
	}
	selected := def
	field := huh.NewSelect[string]().
		Title(title).
		Options(huh.NewOptions(options...)...).
		Value(&selected)
	if err := h.run(field); err != nil {
		return "", err
	}
	return selected, nil
}

// MultiSelect implements Asker.
func (h HuhAsker) MultiSelect(title string, options []string, defs []string) ([]string, error) {
	if len(options) == 0 {
		return nil, fmt.Errorf("no options provided")
	}
	chosen := make(map[string]bool, len(defs))
	for _, d := range defs {
		chosen[d] = true
	}
	opts := make([]huh.Option[string], len(options))
	for i, o := range options {
		opts[i] = huh.NewOption(o, o).Selected(chosen[o])
	}

	var selected []string
	field := huh.NewMultiSelect[string]().
		Title(title).
		Options(opts...).
		Value(&selected)
	if err := h.run(field); err != nil {
		return nil, err
	}
	return selected, nil
}

// IsInteractive reports whether stdin is a terminal.
func IsInteractive() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// ShouldPrompt reports whether prompts should be shown: stdin must be a
// terminal and no common CI variable may be set.
func ShouldPrompt() bool {
	for _, env := range []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "BUILDKITE"} {
		if os.Getenv(env) != "" {
			return false
		}
	}
	return IsInteractive()
}
