// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package answers resolves the raw answers a generation run starts from:
// built-in defaults, overlaid by configuration (file and environment, via
// viper), and persisted as a reusable YAML answers file.
package answers

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/aidottxt/pkg/types"
)

// Configuration keys. They match the YAML tags of types.Answers so an
// answers file doubles as a viper config file.
const (
	KeySiteName         = "site_name"
	KeyBaseURL          = "base_url"
	KeyContact          = "contact"
	KeyModels           = "models"
	KeyCapabilities     = "capabilities"
	KeyAllowPaths       = "allow_paths"
	KeyDisallowPaths    = "disallow_paths"
	KeyTraining         = "training"
	KeyRetention        = "retention"
	KeyCommercialUse    = "commercial_use"
	KeyRateLimitRPS     = "rate_limit_rps"
	KeyRobotsUserAgent  = "robots_user_agent"
	KeyRobotsCrawlDelay = "robots_crawl_delay"
	KeyRobotsSitemap    = "robots_sitemap"
	KeyLanguage         = "language"
	KeyLastUpdate       = "last_update"
	KeyTeam             = "team"
	KeyThanks           = "thanks"
	KeyTechnology       = "technology"
)

// DefaultTechnology is offered when the user has not named a stack.
const DefaultTechnology = "Node.js, JavaScript, HTML5"

// Defaults returns the answers used when nothing else is configured. now
// supplies the humans.txt last-update date.
func Defaults(now time.Time) types.Answers {
	caps := make([]string, len(types.AllCapabilities))
	for i, c := range types.AllCapabilities {
		caps[i] = string(c)
	}
	return types.Answers{
		SiteName:         "My Site",
		BaseURL:          "https://example.com",
		Contact:          "mailto:admin@example.com",
		Models:           "*",
		Capabilities:     caps,
		AllowPaths:       "/*",
		DisallowPaths:    "",
		Training:         string(types.PermissionAllow),
		Retention:        string(types.PermissionAllow),
		CommercialUse:    string(types.PermissionAllow),
		RateLimitRPS:     fmt.Sprint(types.DefaultRateLimitRPS),
		RobotsUserAgent:  types.DefaultRobotsUserAgent,
		RobotsCrawlDelay: "0",
		RobotsSitemap:    "",
		Language:         "English",
		LastUpdate:       now.Format(types.LastUpdateLayout),
		Team:             []types.TeamMember{},
		Thanks:           []string{},
		Technology:       DefaultTechnology,
	}
}

// FromViper overlays every key set in v onto base. List-valued keys accept
// either a YAML sequence or a comma-delimited string.
func FromViper(v *viper.Viper, base types.Answers) (types.Answers, error) {
	a := base

	strs := []struct {
		key string
		dst *string
	}{
		{KeySiteName, &a.SiteName},
		{KeyBaseURL, &a.BaseURL},
		{KeyContact, &a.Contact},
		{KeyTraining, &a.Training},
		{KeyRetention, &a.Retention},
		{KeyCommercialUse, &a.CommercialUse},
		{KeyRateLimitRPS, &a.RateLimitRPS},
		{KeyRobotsUserAgent, &a.RobotsUserAgent},
		{KeyRobotsCrawlDelay, &a.RobotsCrawlDelay},
		{KeyRobotsSitemap, &a.RobotsSitemap},
		{KeyLanguage, &a.Language},
		{KeyLastUpdate, &a.LastUpdate},
	}
	for _, s := range strs {
		if v.IsSet(s.key) {
			*s.dst = v.GetString(s.key)
		}
	}

	lists := []struct {
		key string
		dst *string
	}{
		{KeyModels, &a.Models},
		{KeyAllowPaths, &a.AllowPaths},
		{KeyDisallowPaths, &a.DisallowPaths},
		{KeyTechnology, &a.Technology},
	}
	for _, l := range lists {
		if v.IsSet(l.key) {
			*l.dst = joinedList(v.Get(l.key))
		}
	}

	if v.IsSet(KeyCapabilities) {
		a.Capabilities = splitOrSlice(v.Get(KeyCapabilities))
	}
	if v.IsSet(KeyThanks) {
		a.Thanks = nonNil(splitOrSlice(v.Get(KeyThanks)))
	}
	if v.IsSet(KeyTeam) {
		var team []types.TeamMember
		if err := v.UnmarshalKey(KeyTeam, &team); err != nil {
			return a, fmt.Errorf("decoding %s: %w", KeyTeam, err)
		}
		a.Team = nonNil(team)
	}

	return a, nil
}

// joinedList renders a config value as the comma-delimited form the
// normalizer splits.
func joinedList(raw any) string {
	switch x := raw.(type) {
	case []any:
		parts := make([]string, len(x))
		for i, p := range x {
			parts[i] = fmt.Sprint(p)
		}
		return strings.Join(parts, ", ")
	case []string:
		return strings.Join(x, ", ")
	case nil:
		return ""
	default:
		return fmt.Sprint(x)
	}
}

// splitOrSlice turns a sequence or a comma-delimited string into a slice.
func splitOrSlice(raw any) []string {
	switch x := raw.(type) {
	case []any:
		out := make([]string, 0, len(x))
		for _, p := range x {
			out = append(out, fmt.Sprint(p))
		}
		return out
	case []string:
		return x
	case nil:
		return nil
	default:
		var out []string
		for _, p := range strings.Split(fmt.Sprint(x), ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	}
}

// answersFile is the on-disk shape of saved answers. Lists the user typed as
// comma-delimited text are stored as YAML sequences so the file is easy to
// edit by hand. Every key is written, empty ones included, so a cleared
// answer loads back cleared instead of falling back to its default.
type answersFile struct {
	SiteName         string             `yaml:"site_name"`
	BaseURL          string             `yaml:"base_url"`
	Contact          string             `yaml:"contact"`
	Models           []string           `yaml:"models"`
	Capabilities     []string           `yaml:"capabilities"`
	AllowPaths       []string           `yaml:"allow_paths"`
	DisallowPaths    []string           `yaml:"disallow_paths"`
	Training         string             `yaml:"training"`
	Retention        string             `yaml:"retention"`
	CommercialUse    string             `yaml:"commercial_use"`
	RateLimitRPS     string             `yaml:"rate_limit_rps"`
	RobotsUserAgent  string             `yaml:"robots_user_agent"`
	RobotsCrawlDelay string             `yaml:"robots_crawl_delay"`
	RobotsSitemap    string             `yaml:"robots_sitemap"`
	Language         string             `yaml:"language"`
	LastUpdate       string             `yaml:"last_update"`
	Team             []types.TeamMember `yaml:"team"`
	Thanks           []string           `yaml:"thanks"`
	Technology       []string           `yaml:"technology"`
}

// Marshal encodes a as an answers-file YAML document.
func Marshal(a types.Answers) ([]byte, error) {
	f := answersFile{
		SiteName:         a.SiteName,
		BaseURL:          a.BaseURL,
		Contact:          a.Contact,
		Models:           nonNil(splitOrSlice(a.Models)),
		Capabilities:     nonNil(a.Capabilities),
		AllowPaths:       nonNil(splitOrSlice(a.AllowPaths)),
		DisallowPaths:    nonNil(splitOrSlice(a.DisallowPaths)),
		Training:         a.Training,
		Retention:        a.Retention,
		CommercialUse:    a.CommercialUse,
		RateLimitRPS:     a.RateLimitRPS,
		RobotsUserAgent:  a.RobotsUserAgent,
		RobotsCrawlDelay: a.RobotsCrawlDelay,
		RobotsSitemap:    a.RobotsSitemap,
		Language:         a.Language,
		LastUpdate:       a.LastUpdate,
		Team:             nonNil(a.Team),
		Thanks:           nonNil(a.Thanks),
		Technology:       nonNil(splitOrSlice(a.Technology)),
	}
	data, err := yaml.Marshal(&f)
	if err != nil {
		return nil, fmt.Errorf("marshaling answers: %w", err)
	}
	return data, nil
}

// nonNil makes empty lists encode as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// Save writes a to path as YAML.
func Save(path string, a types.Answers) error {
	data, err := Marshal(a)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing answers file: %w", err)
	}
	return nil
}

// Load reads an answers file and overlays it onto base.
func Load(path string, base types.Answers) (types.Answers, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return base, fmt.Errorf("reading answers file %s: %w", path, err)
	}
	return FromViper(v, base)
}
