package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables
// (DRIPTWEET_*). It respects flags that have been explicitly set (changed
// map). Returns an error if any environment variable has an invalid format.
//
// The credential variables are also satisfied by a .env file when the
// caller loads one before applying (godotenv in cmd/driptweet).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("store", os.Getenv("DRIPTWEET_STORE"), &cfg.StorePath)
	s.setString("prefix", os.Getenv("DRIPTWEET_PREFIX"), &cfg.Prefix)
	s.setString("at", os.Getenv("DRIPTWEET_AT"), &cfg.DailyAt)

	if err := s.setDuration("every", os.Getenv("DRIPTWEET_EVERY"), &cfg.Interval); err != nil {
		return err
	}

	s.setBoolFromString("once", os.Getenv("DRIPTWEET_ONCE"), &cfg.Once)
	s.setBoolFromString("simulate", os.Getenv("DRIPTWEET_SIMULATE"), &cfg.Simulate)
	s.setBoolFromString("progress", os.Getenv("DRIPTWEET_PROGRESS"), &cfg.Progress)
	s.setBoolFromString("watch-store", os.Getenv("DRIPTWEET_WATCH_STORE"), &cfg.WatchStore)

	s.setString("consumer-key", os.Getenv("DRIPTWEET_CONSUMER_KEY"), &cfg.ConsumerKey)
	s.setString("consumer-secret", os.Getenv("DRIPTWEET_CONSUMER_SECRET"), &cfg.ConsumerSecret)
	s.setString("access-token", os.Getenv("DRIPTWEET_ACCESS_TOKEN"), &cfg.AccessToken)
	s.setString("access-secret", os.Getenv("DRIPTWEET_ACCESS_SECRET"), &cfg.AccessSecret)

	return nil
}
