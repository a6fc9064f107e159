// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Answers holds raw, caller-supplied input before normalization. List-valued
// fields that users type as free text (models, paths, technology) stay
// comma-delimited strings here; numbers stay strings. The YAML tags define
// the answers-file schema.
type Answers struct {
	SiteName string `json:"site_name" yaml:"site_name"`
	BaseURL  string `json:"base_url" yaml:"base_url"`

	Contact       string   `json:"contact" yaml:"contact"`
	Models        string   `json:"models" yaml:"models"`
	Capabilities  []string `json:"capabilities" yaml:"capabilities"`
	AllowPaths    string   `json:"allow_paths" yaml:"allow_paths"`
	DisallowPaths string   `json:"disallow_paths" yaml:"disallow_paths"`
	Training      string   `json:"training" yaml:"training"`
	Retention     string   `json:"retention" yaml:"retention"`
	CommercialUse string   `json:"commercial_use" yaml:"commercial_use"`
	RateLimitRPS  string   `json:"rate_limit_rps" yaml:"rate_limit_rps"`

	RobotsUserAgent  string `json:"robots_user_agent" yaml:"robots_user_agent"`
	RobotsCrawlDelay string `json:"robots_crawl_delay" yaml:"robots_crawl_delay"`
	RobotsSitemap    string `json:"robots_sitemap" yaml:"robots_sitemap"`

	Language   string       `json:"language" yaml:"language"`
	LastUpdate string       `json:"last_update" yaml:"last_update"`
	Team       []TeamMember `json:"team,omitempty" yaml:"team,omitempty"`
	Thanks     []string     `json:"thanks,omitempty" yaml:"thanks,omitempty"`
	Technology string       `json:"technology" yaml:"technology"`
}
