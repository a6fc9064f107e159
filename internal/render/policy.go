// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/pdiddy/aidottxt/pkg/types"
)

// policyVersion is the schema version written to llms.txt.
const policyVersion = "1.0"

// policyDocument fixes the llms.txt key order through field order.
type policyDocument struct {
	Version       string      `json:"version"`
	SiteName      string      `json:"site_name"`
	Contact       string      `json:"contact"`
	Models        []string    `json:"models"`
	Capabilities  []string    `json:"capabilities"`
	Policy        pathsPolicy `json:"policy"`
	Training      bool        `json:"training"`
	Retention     bool        `json:"retention"`
	CommercialUse bool        `json:"commercial_use"`
	RateLimitRPS  float64     `json:"rate_limit_rps"`
}

type pathsPolicy struct {
	Allow    []string `json:"allow"`
	Disallow []string `json:"disallow"`
}

// PolicyJSON renders the llms.txt manifest: pretty-printed JSON with 2-space
// indentation and one trailing newline. Permissions encode as true only when
// they are exactly "allow"; anything else, including unknown values, is
// false.
func PolicyJSON(cfg types.PolicyConfig) string {
	doc := policyDocument{
		Version:      policyVersion,
		SiteName:     cfg.SiteName,
		Contact:      cfg.Contact,
		Models:       nonNil(cfg.Models),
		Capabilities: capabilityNames(cfg.Capabilities),
		Policy: pathsPolicy{
			Allow:    nonNil(cfg.AllowPaths),
			Disallow: nonNil(cfg.DisallowPaths),
		},
		Training:      cfg.Training.Allows(),
		Retention:     cfg.Retention.Allows(),
		CommercialUse: cfg.CommercialUse.Allows(),
		RateLimitRPS:  finite(cfg.RateLimitRPS),
	}

	// Every field is a string, bool, slice of strings, or finite float, so
	// encoding cannot fail.
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	_ = enc.Encode(doc)
	return buf.String()
}

// PolicyText renders ai.txt. Permission values are echoed verbatim.
func PolicyText(cfg types.PolicyConfig) string {
	lines := []string{
		"# ai.txt for " + cfg.SiteName,
		"# Base: " + cfg.BaseURL,
		"# Contact: " + cfg.Contact,
		"# Models: " + strings.Join(cfg.Models, ", "),
		"# Capabilities: " + strings.Join(capabilityNames(cfg.Capabilities), ", "),
		"",
		"User-agent: *",
	}
	lines = appendDirectives(lines, "Allow", cfg.AllowPaths)
	lines = appendDirectives(lines, "Disallow", cfg.DisallowPaths)
	lines = append(lines,
		"",
		"Training: "+string(cfg.Training),
		"Retention: "+string(cfg.Retention),
		"Commercial-Use: "+string(cfg.CommercialUse),
		"Rate-Limit-RPS: "+formatNumber(cfg.RateLimitRPS),
	)
	return joinLines(lines)
}

// formatNumber prints v in its shortest round-tripping form (10, 2.5).
// Magnitudes below 1e-6 or from 1e21 up use exponent form (1e-7, 1e+21),
// matching the llms.txt encoding of the same value.
func formatNumber(v float64) string {
	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		s := strconv.FormatFloat(v, 'e', -1, 64)
		// 1e-07 becomes 1e-7.
		if n := len(s); n >= 4 && s[n-4] == 'e' && s[n-3] == '-' && s[n-2] == '0' {
			s = s[:n-2] + s[n-1:]
		}
		return s
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// finite maps NaN and infinities, which JSON cannot carry, to the default.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return types.DefaultRateLimitRPS
	}
	return v
}

func capabilityNames(cs []types.Capability) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = string(c)
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
