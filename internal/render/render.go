// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render produces the exact text of each intent-declaration document
// from its normalized configuration. Every renderer is a pure function: the
// same input always yields byte-identical output, and renderers share no
// state, so they are safe to call concurrently.
package render

import (
	"path"
	"strings"

	"github.com/pdiddy/aidottxt/pkg/types"
)

// WellKnownDir is the directory that holds llms.txt under the site root.
const WellKnownDir = ".well-known"

// Document is one rendered file and the slash-separated path, relative to
// the site root, it is conventionally published at.
type Document struct {
	Format  types.Format
	Path    string
	Content string
}

// PathFor returns the conventional relative path for f.
func PathFor(f types.Format) string {
	switch f {
	case types.FormatLLMs:
		return path.Join(WellKnownDir, "llms.txt")
	case types.FormatAI:
		return "ai.txt"
	case types.FormatRobots:
		return "robots.txt"
	case types.FormatHumans:
		return "humans.txt"
	}
	return ""
}

// Documents renders every format in formats whose configuration family is
// present in cfg. Output follows the order of formats.
func Documents(cfg types.NormalizedConfig, formats types.FormatSet) []Document {
	docs := make([]Document, 0, len(formats))
	for _, f := range formats {
		var content string
		switch {
		case f == types.FormatLLMs && cfg.Policy != nil:
			content = PolicyJSON(*cfg.Policy)
		case f == types.FormatAI && cfg.Policy != nil:
			content = PolicyText(*cfg.Policy)
		case f == types.FormatRobots && cfg.Robots != nil:
			content = Robots(*cfg.Robots)
		case f == types.FormatHumans && cfg.Credits != nil:
			content = Credits(*cfg.Credits)
		default:
			continue
		}
		docs = append(docs, Document{Format: f, Path: PathFor(f), Content: content})
	}
	return docs
}

// joinLines joins lines with newlines and terminates the result with exactly
// one newline.
func joinLines(lines []string) string {
	return strings.Join(lines, "\n") + "\n"
}
