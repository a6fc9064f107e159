// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package prompt collects answers interactively. Only the questions needed by
// the requested formats are asked, and every question is pre-filled with the
// answer resolved from defaults and configuration.
package prompt

import (
	"fmt"

	"github.com/pdiddy/aidottxt/pkg/types"
)

var formatLabels = map[types.Format]string{
	types.FormatAI:     "ai.txt (AI/LLM policies)",
	types.FormatLLMs:   "llms.txt (LLM policies JSON)",
	types.FormatRobots: "robots.txt (Web crawler rules)",
	types.FormatHumans: "humans.txt (Team credits)",
}

// FormatLabel returns the menu label for f.
func FormatLabel(f types.Format) string {
	return formatLabels[f]
}

// ChooseFormats asks which documents to generate. All are preselected.
func ChooseFormats(ask Asker) (types.FormatSet, error) {
	order := []types.Format{types.FormatAI, types.FormatLLMs, types.FormatRobots, types.FormatHumans}
	labels := make([]string, len(order))
	byLabel := make(map[string]types.Format, len(order))
	for i, f := range order {
		labels[i] = formatLabels[f]
		byLabel[labels[i]] = f
	}

	picked, err := ask.MultiSelect("Which files would you like to generate?", labels, labels)
	if err != nil {
		return nil, err
	}
	fs := make([]types.Format, 0, len(picked))
	for _, p := range picked {
		if f, ok := byLabel[p]; ok {
			fs = append(fs, f)
		}
	}
	return types.NewFormatSet(fs...), nil
}

// Collect asks the questions relevant to formats, starting from base.
func Collect(ask Asker, base types.Answers, formats types.FormatSet) (types.Answers, error) {
	a := base
	var err error

	input := func(dst *string, q Question) {
		if err != nil {
			return
		}
		q.Default = *dst
		*dst, err = ask.Input(q)
	}
	permission := func(dst *string, title string) {
		if err != nil {
			return
		}
		*dst, err = ask.Select(title, []string{string(types.PermissionAllow), string(types.PermissionDisallow)}, *dst)
	}

	input(&a.SiteName, Question{Title: "Site / app name:", Required: true})
	input(&a.BaseURL, Question{Title: "Public base URL:", Required: true})

	if formats.NeedsPolicy() {
		input(&a.Contact, Question{Title: "Contact (for AI/LLM):", Description: "An email (mailto:) or URL AI operators can reach."})
		input(&a.Models, Question{Title: "Models (comma-separated):", Description: "Use * for every model."})
		if err == nil {
			a.Capabilities, err = ask.MultiSelect("Capabilities allowed:", capabilityNames(), a.Capabilities)
		}
	}
	if formats.NeedsPaths() {
		input(&a.AllowPaths, Question{Title: "Allow paths (comma-separated):"})
		input(&a.DisallowPaths, Question{Title: "Disallow paths (comma-separated):"})
	}
	if formats.NeedsPolicy() {
		permission(&a.Training, "Training permission:")
		permission(&a.Retention, "Data retention permission:")
		permission(&a.CommercialUse, "Commercial use permission:")
		input(&a.RateLimitRPS, Question{Title: "Rate-limit RPS (for AI/LLM):", Description: "Invalid or negative values fall back to 10."})
	}

	if formats.NeedsRobots() {
		input(&a.RobotsUserAgent, Question{Title: "robots.txt User-agent:"})
		input(&a.RobotsCrawlDelay, Question{Title: "robots.txt Crawl delay (seconds, 0 for none):"})
		input(&a.RobotsSitemap, Question{Title: "robots.txt Sitemap URL (leave empty to skip):"})
	}

	if formats.NeedsCredits() {
		input(&a.Language, Question{Title: "humans.txt Language:"})
		input(&a.LastUpdate, Question{Title: "humans.txt Last update (YYYY/MM/DD):"})
		if err == nil {
			a.Team, err = collectTeam(ask, a.Team)
		}
		if err == nil {
			a.Thanks, err = collectThanks(ask, a.Thanks)
		}
		input(&a.Technology, Question{Title: "Technology stack (comma-separated, e.g., Node.js, React, HTML5):"})
	}

	if err != nil {
		return base, err
	}
	return a, nil
}

// collectTeam adds team members until an empty name is entered.
func collectTeam(ask Asker, team []types.TeamMember) ([]types.TeamMember, error) {
	out := append([]types.TeamMember(nil), team...)
	for {
		name, err := ask.Input(Question{
			Title: fmt.Sprintf("Team member name (or press Enter to %s):", skipOrFinish(len(out))),
		})
		if err != nil {
			return nil, err
		}
		if name == "" {
			return out, nil
		}
		role, err := ask.Input(Question{Title: "Role/Title:", Default: types.DefaultRole})
		if err != nil {
			return nil, err
		}
		link, err := ask.Input(Question{Title: "Contact link (GitHub, Twitter, website, etc.):"})
		if err != nil {
			return nil, err
		}
		out = append(out, types.TeamMember{Name: name, Role: role, Link: link})
	}
}

// collectThanks adds thank-you lines until an empty one is entered.
func collectThanks(ask Asker, thanks []string) ([]string, error) {
	out := append([]string(nil), thanks...)
	for {
		line, err := ask.Input(Question{
			Title: fmt.Sprintf("Add a thank you (or press Enter to %s):", skipOrFinish(len(out))),
		})
		if err != nil {
			return nil, err
		}
		if line == "" {
			return out, nil
		}
		out = append(out, line)
	}
}

func skipOrFinish(n int) string {
	if n == 0 {
		return "skip"
	}
	return "finish"
}

func capabilityNames() []string {
	out := make([]string, len(types.AllCapabilities))
	for i, c := range types.AllCapabilities {
		out[i] = string(c)
	}
	return out
}
