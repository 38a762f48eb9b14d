package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/driplab/driptweet/internal/adapters/twitter"
	"github.com/driplab/driptweet/internal/agent"
	"github.com/driplab/driptweet/internal/cliconfig"
	"github.com/driplab/driptweet/internal/store"
)

const helpDescription = `
Drip-feed an ordered list of messages to a Twitter account, one per tick.

The account's own newest post decides which message comes next: its embedded
sequence label is parsed back out, and the following entry in the store is
selected, wrapping around after the last one. No local state is kept.

Highlights:
  - Daily posting time, fixed interval, or one-shot runs.
  - Dry-run mode that exercises the full selection path without posting.
  - Store file is hot-reloaded when it changes on disk.
  - Configure via flags, DRIPTWEET_* environment, or a TOML file.
`

var exampleUsage = strings.TrimSpace(`
  driptweet --store tweets.csv --once --simulate
  driptweet --store tweets.csv --at 09:00
  driptweet --config $HOME/.driptweet/config.toml --every 6h
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	// A .env file is the easiest place to keep the four secrets out of
	// shell history; absence is fine.
	_ = godotenv.Load()

	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	log := cliconfig.Logger()

	root := &cobra.Command{
		Use:     "driptweet",
		Short:   "Post the next message from an ordered list on a schedule",
		Long:    strings.TrimSpace(helpDescription),
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load config file first (default $HOME/.driptweet/config.toml),
			// then env, then flag overrides via the changed-flags map.
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			// Log the effective configuration, masking the secrets.
			logCfg := cfg
			logCfg.ConsumerKey = mask(logCfg.ConsumerKey)
			logCfg.ConsumerSecret = mask(logCfg.ConsumerSecret)
			logCfg.AccessToken = mask(logCfg.AccessToken)
			logCfg.AccessSecret = mask(logCfg.AccessSecret)
			log.Info().Interface("config", logCfg).Msg("configuration")

			st, err := store.Load(cfg.StorePath)
			if err != nil {
				return err
			}
			log.Info().Int("entries", st.Len()).Str("store", cfg.StorePath).Msg("store loaded")

			creds := twitter.Credentials{
				ConsumerKey:    cfg.ConsumerKey,
				ConsumerSecret: cfg.ConsumerSecret,
				AccessToken:    cfg.AccessToken,
				AccessSecret:   cfg.AccessSecret,
			}
			gw, err := twitter.NewGateway(creds, log)
			if err != nil {
				return fmt.Errorf("create gateway: %w", err)
			}
			log.Info().Str("account", gw.ScreenName()).Msg("gateway ready")

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if cfg.WatchStore && !cfg.Once {
				go store.NewWatcher(st, log).Run(ctx)
			}

			a := agent.New(agent.Config{
				Prefix:      cfg.Prefix,
				Interval:    cfg.Interval,
				DailyHour:   cfg.DailyHour,
				DailyMinute: cfg.DailyMinute,
				Once:        cfg.Once,
				Simulate:    cfg.Simulate,
				Progress:    cfg.Progress,
			}, st, gw, log)

			if err := a.Run(ctx); err != nil {
				if errors.Is(err, context.Canceled) {
					log.Info().Msg("received signal, stopping")
					return nil
				}
				return err
			}
			return nil
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.driptweet/config.toml)")
	root.Flags().StringVar(&cfg.StorePath, "store", cfg.StorePath, "CSV file of (label, body) messages")
	root.Flags().StringVar(&cfg.Prefix, "prefix", cfg.Prefix, "label prefix for published messages")
	root.Flags().StringVar(&cfg.DailyAt, "at", cfg.DailyAt, "daily posting time, 24-hour HH:MM")
	root.Flags().DurationVar(&cfg.Interval, "every", cfg.Interval, "fixed posting interval (overrides --at)")
	root.Flags().BoolVar(&cfg.Once, "once", cfg.Once, "publish a single message and exit")
	root.Flags().BoolVar(&cfg.Simulate, "simulate", cfg.Simulate, "run the selection path without transmitting")
	root.Flags().BoolVar(&cfg.Progress, "progress", cfg.Progress, "render a countdown bar between ticks")
	root.Flags().BoolVar(&cfg.WatchStore, "watch-store", cfg.WatchStore, "reload the store file when it changes")

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("driptweet")
		os.Exit(1)
	}
}

func mask(s string) string {
	if s == "" {
		return ""
	}
	return "*****"
}
