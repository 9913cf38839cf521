package config

type (
	// SCE client configuration. Each of the below fields can also be set
	// through an environment variable with the same name, prefixed, and in uppercase. E.g.
	// `Node.URL` can be set with `SCE_NODE_URL`. Flags take precedence over the environment,
	// which takes precedence over $SCE_CONFIG_DIR/config.yaml.
	Config struct {
		// Organization is the organization name used in resource paths
		Organization string `json:"organization_name" key:"organization_name" yaml:"organization_name" mapstructure:"organization_name"`
		// Project is the project name used in resource paths
		Project string `json:"project_name" key:"project_name" yaml:"project_name" mapstructure:"project_name"`
		// APIKey authenticates calls to the public API. Falls back to $SCE_CONFIG_DIR/apikey
		APIKey string `json:"apikey" key:"apikey" yaml:"apikey" mapstructure:"apikey"`
		// ConfigDir holds the API key file, cookie jar and optional config.yaml
		ConfigDir string `json:"config_dir" key:"config_dir" yaml:"config_dir" mapstructure:"config_dir"`
		// CookieJar is the Netscape cookie file holding the portal session
		CookieJar string `json:"cookie_jar" key:"cookie_jar" yaml:"cookie_jar" mapstructure:"cookie_jar"`
		// LogFile enables a rotating JSON log file when set
		LogFile string `json:"log_file" key:"log_file" yaml:"log_file" mapstructure:"log_file"`
		// PortalURL is the base of the session-cookie authenticated API
		PortalURL string `json:"portal_url" key:"portal_url" yaml:"portal_url" mapstructure:"portal_url"`
		// PublicURL is the base of the API-key authenticated API
		PublicURL string `json:"public_url" key:"public_url" yaml:"public_url" mapstructure:"public_url"`
		// Node settings for privileged node operations
		Node Node `json:"node" key:"node" yaml:"node" mapstructure:"node"`

		// Invocation flags
		Verbose bool `json:"verbose" key:"verbose" yaml:"verbose" mapstructure:"verbose"`
		Trace   bool `json:"trace" key:"trace" yaml:"trace" mapstructure:"trace"`
		DryRun  bool `json:"dry_run" key:"dry_run" yaml:"dry_run" mapstructure:"dry_run"`
		JSON    bool `json:"json" key:"json" yaml:"json" mapstructure:"json"`
		Table   bool `json:"table" key:"table" yaml:"table" mapstructure:"table"`
	}

	Node struct {
		// URL is the base of the bearer-token authenticated node API
		URL string `json:"url" key:"url" yaml:"url" mapstructure:"url"`
		// Token is sent as `Authorization: Bearer <token>`
		Token string `json:"token" key:"token" yaml:"token" mapstructure:"token"`
	}
)

// Masked returns a copy safe to print, with secrets shortened.
func (c Config) Masked() Config {
	c.APIKey = mask(c.APIKey)
	c.Node.Token = mask(c.Node.Token)
	return c
}

func mask(s string) string {
	if len(s) <= 4 {
		if s == "" {
			return ""
		}
		return "****"
	}
	return s[:4] + "****"
}
