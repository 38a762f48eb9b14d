package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML
// friendly. Credentials live in their own table so a config file reads as
//
//	store = "tweets.csv"
//	daily_at = "09:00"
//
//	[credentials]
//	consumer_key = "..."
type FileConfig struct {
	StorePath  string `toml:"store"`
	Prefix     string `toml:"prefix"`
	DailyAt    string `toml:"daily_at"`
	Interval   string `toml:"interval"`
	Once       *bool  `toml:"once"`
	Simulate   *bool  `toml:"simulate"`
	Progress   *bool  `toml:"progress"`
	WatchStore *bool  `toml:"watch_store"`

	Credentials FileCredentials `toml:"credentials"`
}

// FileCredentials is the [credentials] table.
type FileCredentials struct {
	ConsumerKey    string `toml:"consumer_key"`
	ConsumerSecret string `toml:"consumer_secret"`
	AccessToken    string `toml:"access_token"`
	AccessSecret   string `toml:"access_secret"`
}

// LoadFileConfig reads and parses a TOML config file.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.driptweet/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".driptweet", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("store", fc.StorePath, &cfg.StorePath)
	s.setString("prefix", fc.Prefix, &cfg.Prefix)
	s.setString("at", fc.DailyAt, &cfg.DailyAt)

	if err := s.setDuration("every", fc.Interval, &cfg.Interval); err != nil {
		return err
	}

	s.setBool("once", fc.Once, &cfg.Once)
	s.setBool("simulate", fc.Simulate, &cfg.Simulate)
	s.setBool("progress", fc.Progress, &cfg.Progress)
	s.setBool("watch-store", fc.WatchStore, &cfg.WatchStore)

	// Credentials have no flag equivalents; the changed map never blocks them.
	s.setString("consumer-key", fc.Credentials.ConsumerKey, &cfg.ConsumerKey)
	s.setString("consumer-secret", fc.Credentials.ConsumerSecret, &cfg.ConsumerSecret)
	s.setString("access-token", fc.Credentials.AccessToken, &cfg.AccessToken)
	s.setString("access-secret", fc.Credentials.AccessSecret, &cfg.AccessSecret)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
