// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize converts raw answers into the typed configuration records
// the renderers consume. Normalization never fails: malformed numbers fall
// back to defaults and empty list entries are dropped.
package normalize

import (
	"math"
	"strconv"
	"strings"

	"github.com/pdiddy/aidottxt/pkg/types"
)

// Normalize builds one record per document family needed by formats. Fields
// belonging to families that were not requested are never read, so they need
// not be well-formed.
func Normalize(a types.Answers, formats types.FormatSet) types.NormalizedConfig {
	var cfg types.NormalizedConfig

	var allow, disallow []string
	if formats.NeedsPaths() {
		allow = SplitList(a.AllowPaths)
		disallow = SplitList(a.DisallowPaths)
	}

	if formats.NeedsPolicy() {
		cfg.Policy = &types.PolicyConfig{
			SiteName:      a.SiteName,
			BaseURL:       a.BaseURL,
			Contact:       a.Contact,
			Models:        SplitList(a.Models),
			Capabilities:  capabilities(a.Capabilities),
			AllowPaths:    allow,
			DisallowPaths: disallow,
			Training:      permission(a.Training),
			Retention:     permission(a.Retention),
			CommercialUse: permission(a.CommercialUse),
			RateLimitRPS:  RateLimit(a.RateLimitRPS),
		}
	}

	if formats.NeedsRobots() {
		ua := strings.TrimSpace(a.RobotsUserAgent)
		if ua == "" {
			ua = types.DefaultRobotsUserAgent
		}
		cfg.Robots = &types.RobotsConfig{
			UserAgent:     ua,
			AllowPaths:    allow,
			DisallowPaths: disallow,
			CrawlDelay:    CrawlDelay(a.RobotsCrawlDelay),
			Sitemap:       strings.TrimSpace(a.RobotsSitemap),
		}
	}

	if formats.NeedsCredits() {
		cfg.Credits = &types.CreditsConfig{
			SiteName:   a.SiteName,
			SiteURL:    a.BaseURL,
			Language:   a.Language,
			Team:       team(a.Team),
			Thanks:     trimAll(a.Thanks),
			Technology: SplitList(a.Technology),
			LastUpdate: a.LastUpdate,
		}
	}

	return cfg
}

// SplitList splits a comma-delimited string into trimmed, non-empty entries
// in input order. It never returns nil.
func SplitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// RateLimit parses a requests-per-second value. Empty, unparsable,
// non-finite, and negative input yields types.DefaultRateLimitRPS.
func RateLimit(s string) float64 {
	v, ok := parseNonNegative(s)
	if !ok {
		return types.DefaultRateLimitRPS
	}
	return v
}

// CrawlDelay parses a delay in seconds. Anything that is not a finite,
// non-negative number yields 0. Fractions truncate.
func CrawlDelay(s string) int {
	v, ok := parseNonNegative(s)
	if !ok || v > math.MaxInt32 {
		return 0
	}
	return int(v)
}

func parseNonNegative(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, false
	}
	return v, true
}

// permission trims p. Only a missing value is defaulted; unrecognized values
// pass through for the renderer to interpret.
func permission(p string) types.Permission {
	p = strings.TrimSpace(p)
	if p == "" {
		return types.PermissionAllow
	}
	return types.Permission(p)
}

func capabilities(in []string) []types.Capability {
	out := []types.Capability{}
	for _, c := range in {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, types.Capability(c))
		}
	}
	return out
}

func team(in []types.TeamMember) []types.TeamMember {
	out := []types.TeamMember{}
	for _, m := range in {
		name := strings.TrimSpace(m.Name)
		if name == "" {
			continue
		}
		role := strings.TrimSpace(m.Role)
		if role == "" {
			role = types.DefaultRole
		}
		out = append(out, types.TeamMember{
			Name: name,
			Role: role,
			Link: strings.TrimSpace(m.Link),
		})
	}
	return out
}

func trimAll(in []string) []string {
	out := []string{}
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
