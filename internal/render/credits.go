// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"strings"

	"github.com/pdiddy/aidottxt/pkg/types"
)

const (
	teamHeader   = "/* TEAM */"
	thanksHeader = "/* THANKS */"
	siteHeader   = "/* SITE */"
)

// Credits renders humans.txt.
func Credits(cfg types.CreditsConfig) string {
	lines := []string{teamHeader}
	for _, m := range cfg.Team {
		lines = append(lines, m.Role+": "+m.Name)
		if m.Link != "" {
			lines = append(lines, "Contact: "+m.Link)
		}
		lines = append(lines, "")
	}
	if len(cfg.Team) == 0 {
		lines = append(lines, "")
	}

	if len(cfg.Thanks) > 0 {
		lines = append(lines, thanksHeader)
		lines = append(lines, cfg.Thanks...)
		lines = append(lines, "")
	}

	lines = append(lines,
		siteHeader,
		"Last update: "+cfg.LastUpdate,
		"Language: "+cfg.Language,
	)

	standards, components := ClassifyTechnology(cfg.Technology)
	if len(standards) > 0 {
		lines = append(lines, "Standards: "+strings.Join(standards, ", "))
	}
	if len(components) > 0 {
		lines = append(lines, "Components: "+strings.Join(components, ", "))
	}

	return joinLines(lines)
}

// ClassifyTechnology splits tags into standards (those containing "html",
// case-insensitively) and components (everything else), keeping input order
// within each bucket.
func ClassifyTechnology(tags []string) (standards, components []string) {
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), "html") {
			standards = append(standards, t)
		} else {
			components = append(components, t)
		}
	}
	return standards, components
}
