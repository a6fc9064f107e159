// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"strings"
)

// Format identifies one generated document.
type Format string

const (
	FormatAI     Format = "ai"
	FormatLLMs   Format = "llms"
	FormatRobots Format = "robots"
	FormatHumans Format = "humans"
)

// AllFormats lists every format in generation order.
var AllFormats = []Format{FormatLLMs, FormatAI, FormatRobots, FormatHumans}

// ParseFormat converts a user-supplied name into a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllFormats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q: use ai, llms, robots, or humans", s)
}

// FormatSet is an ordered, duplicate-free selection of formats.
type FormatSet []Format

// NewFormatSet builds a FormatSet from fs, dropping duplicates and ordering
// the result by AllFormats.
func NewFormatSet(fs ...Format) FormatSet {
	seen := make(map[Format]bool, len(fs))
	for _, f := range fs {
		seen[f] = true
	}
	set := make(FormatSet, 0, len(seen))
	for _, f := range AllFormats {
		if seen[f] {
			set = append(set, f)
		}
	}
	return set
}

// Has reports whether f is in the set.
func (s FormatSet) Has(f Format) bool {
	for _, x := range s {
		if x == f {
			return true
		}
	}
	return false
}

// NeedsPolicy reports whether either AI-policy document was requested.
func (s FormatSet) NeedsPolicy() bool { return s.Has(FormatAI) || s.Has(FormatLLMs) }

// NeedsRobots reports whether robots.txt was requested.
func (s FormatSet) NeedsRobots() bool { return s.Has(FormatRobots) }

// NeedsCredits reports whether humans.txt was requested.
func (s FormatSet) NeedsCredits() bool { return s.Has(FormatHumans) }

// NeedsPaths reports whether any requested format uses the allow/disallow lists.
func (s FormatSet) NeedsPaths() bool { return s.NeedsPolicy() || s.NeedsRobots() }

// Strings returns the format names in set order.
func (s FormatSet) Strings() []string {
	out := make([]string, len(s))
	for i, f := range s {
		out[i] = string(f)
	}
	return out
}
