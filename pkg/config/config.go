package config

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "SCE"

	DefaultPublicURL = "https://api.salad.com/api/public"
	DefaultPortalURL = "https://portal-api.salad.com/api/portal"

	APIKeyFile    = "apikey"
	CookieJarFile = "cookie-jar"
	ConfigFile    = "config.yaml"
)

// global flag name -> config key
var flagKeys = map[string]string{
	"org":     "organization_name",
	"project": "project_name",
	"verbose": "verbose",
	"trace":   "trace",
	"dry-run": "dry_run",
	"json":    "json",
	"table":   "table",
}

// Load resolves the configuration for one invocation. fs may be nil, in which
// case only the environment, the config file and defaults are consulted.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, errors.Wrapf(err, "could not bind flag %s", name)
				}
			}
		}
	}

	dir := v.GetString("config_dir")
	if dir != "" {
		path := filepath.Join(dir, ConfigFile)
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, errors.Wrapf(err, "error loading config file %s", path)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "could not decode config")
	}

	if cfg.CookieJar == "" && cfg.ConfigDir != "" {
		cfg.CookieJar = filepath.Join(cfg.ConfigDir, CookieJarFile)
	}

	if cfg.APIKey == "" && cfg.ConfigDir != "" {
		key, err := readAPIKey(filepath.Join(cfg.ConfigDir, APIKeyFile))
		if err != nil {
			return nil, err
		}
		cfg.APIKey = key
	}

	cfg.PublicURL = strings.TrimSuffix(cfg.PublicURL, "/")
	cfg.PortalURL = strings.TrimSuffix(cfg.PortalURL, "/")
	cfg.Node.URL = strings.TrimSuffix(cfg.Node.URL, "/")

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	configDir := ""
	if home, err := os.UserHomeDir(); err == nil {
		configDir = filepath.Join(home, ".config", "sce")
	}

	v.SetDefault("organization_name", "")
	v.SetDefault("project_name", "")
	v.SetDefault("apikey", "")
	v.SetDefault("config_dir", configDir)
	v.SetDefault("cookie_jar", "")
	v.SetDefault("log_file", "")
	v.SetDefault("portal_url", DefaultPortalURL)
	v.SetDefault("public_url", DefaultPublicURL)
	v.SetDefault("node.url", "")
	v.SetDefault("node.token", "")
	v.SetDefault("verbose", false)
	v.SetDefault("trace", false)
	v.SetDefault("dry_run", false)
	v.SetDefault("json", false)
	v.SetDefault("table", false)
}

// readAPIKey returns the first line of the key file. A missing file is not an
// error; calls that need the key check for it before they are made.
func readAPIKey(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.Wrapf(err, "could not read api key file %s", path)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if scanner.Scan() {
		return strings.TrimSpace(scanner.Text()), nil
	}
	if err := scanner.Err(); err != nil {
		return "", errors.Wrapf(err, "could not read api key file %s", path)
	}
	return "", nil
}
