// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Permission is the two-valued setting used for training, retention, and
// commercial-use policy. Values outside the enum are carried verbatim so the
// renderers can decide how to treat them.
type Permission string

const (
	PermissionAllow    Permission = "allow"
	PermissionDisallow Permission = "disallow"
)

// Allows reports whether p grants access. Only the exact value "allow" does.
func (p Permission) Allows() bool {
	return p == PermissionAllow
}

// Capability names an AI model operation a site permits.
type Capability string

const (
	CapabilityChat     Capability = "chat"
	CapabilityEmbed    Capability = "embed"
	CapabilityFineTune Capability = "fine_tune"
	CapabilityCrawl    Capability = "crawl"
	CapabilityTrain    Capability = "train"
)

// AllCapabilities lists every capability in presentation order.
var AllCapabilities = []Capability{
	CapabilityChat,
	CapabilityEmbed,
	CapabilityFineTune,
	CapabilityCrawl,
	CapabilityTrain,
}

// PolicyConfig is the normalized input for both AI-policy documents
// (llms.txt JSON and ai.txt text). The two renderers encode the same content
// differently.
type PolicyConfig struct {
	// SiteName is the human-readable site or app name.
	SiteName string `json:"site_name" yaml:"site_name"`

	// BaseURL is the public base URL of the site.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// Contact is where AI operators reach the site owner (mailto: or URL).
	Contact string `json:"contact" yaml:"contact"`

	// Models lists permitted model identifiers; "*" matches any model.
	Models []string `json:"models" yaml:"models"`

	// Capabilities lists permitted operations.
	Capabilities []Capability `json:"capabilities" yaml:"capabilities"`

	// AllowPaths and DisallowPaths are path patterns. Neither contains
	// empty entries.
	AllowPaths    []string `json:"allow_paths" yaml:"allow_paths"`
	DisallowPaths []string `json:"disallow_paths" yaml:"disallow_paths"`

	Training      Permission `json:"training" yaml:"training"`
	Retention     Permission `json:"retention" yaml:"retention"`
	CommercialUse Permission `json:"commercial_use" yaml:"commercial_use"`

	// RateLimitRPS is the requested ceiling in requests per second.
	RateLimitRPS float64 `json:"rate_limit_rps" yaml:"rate_limit_rps"`
}

// RobotsConfig is the normalized input for robots.txt.
type RobotsConfig struct {
	// UserAgent is the crawler the rules apply to ("*" for all).
	UserAgent string `json:"user_agent" yaml:"user_agent"`

	AllowPaths    []string `json:"allow_paths" yaml:"allow_paths"`
	DisallowPaths []string `json:"disallow_paths" yaml:"disallow_paths"`

	// CrawlDelay is in whole seconds; 0 omits the directive.
	CrawlDelay int `json:"crawl_delay" yaml:"crawl_delay"`

	// Sitemap is the sitemap URL; empty omits the directive.
	Sitemap string `json:"sitemap" yaml:"sitemap"`
}

// TeamMember is one entry of the humans.txt TEAM section.
type TeamMember struct {
	Name string `json:"name" yaml:"name"`
	Role string `json:"role,omitempty" yaml:"role,omitempty"`
	Link string `json:"link,omitempty" yaml:"link,omitempty"`
}

// CreditsConfig is the normalized input for humans.txt.
type CreditsConfig struct {
	SiteName string `json:"site_name" yaml:"site_name"`
	SiteURL  string `json:"site_url" yaml:"site_url"`
	Language string `json:"language" yaml:"language"`

	Team       []TeamMember `json:"team" yaml:"team"`
	Thanks     []string     `json:"thanks" yaml:"thanks"`
	Technology []string     `json:"technology" yaml:"technology"`

	// LastUpdate is a date in YYYY/MM/DD form.
	LastUpdate string `json:"last_update" yaml:"last_update"`
}

// NormalizedConfig carries one record per document family. A family that no
// requested format needs is nil.
type NormalizedConfig struct {
	Policy  *PolicyConfig
	Robots  *RobotsConfig
	Credits *CreditsConfig
}
