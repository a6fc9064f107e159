// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"strconv"

	"github.com/pdiddy/aidottxt/pkg/types"
)

// Robots renders robots.txt. Allow lines always precede Disallow lines;
// Crawl-delay appears only for a positive delay and Sitemap only when set.
func Robots(cfg types.RobotsConfig) string {
	lines := []string{"User-agent: " + cfg.UserAgent}
	lines = appendDirectives(lines, "Allow", cfg.AllowPaths)
	lines = appendDirectives(lines, "Disallow", cfg.DisallowPaths)
	if cfg.CrawlDelay > 0 {
		lines = append(lines, "Crawl-delay: "+strconv.Itoa(cfg.CrawlDelay))
	}
	if cfg.Sitemap != "" {
		lines = append(lines, "Sitemap: "+cfg.Sitemap)
	}
	return joinLines(lines)
}

// appendDirectives adds one "<name>: <value>" line per value.
func appendDirectives(lines []string, name string, values []string) []string {
	for _, v := range values {
		lines = append(lines, name+": "+v)
	}
	return lines
}
