// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	createdStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	failedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Report prints a summary of a write run: created files, unchanged files,
// and failures with their errors.
func Report(r WriteResult, w io.Writer) {
	sections := []struct {
		status Status
		title  string
		style  lipgloss.Style
	}{
		{StatusCreated, "Created:", createdStyle},
		{StatusUnchanged, "Unchanged:", mutedStyle},
		{StatusFailed, "Failed:", failedStyle},
	}

	for _, s := range sections {
		if r.Count(s.status) == 0 {
			continue
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, headingStyle.Render(s.title))
		for _, f := range r.Files {
			if f.Status != s.status {
				continue
			}
			line := "  - " + f.FullPath
			if f.FullPath == "" {
				line = "  - " + f.Document.Path
			}
			if f.Err != nil {
				line += fmt.Sprintf(" (%v)", f.Err)
			}
			fmt.Fprintln(w, s.style.Render(line))
		}
	}

	if !r.HasFailures() {
		fmt.Fprintln(w)
		fmt.Fprintln(w, headingStyle.Render("Done"))
	}
}
