// Package agent runs the scheduled publish loop: one selection/publish
// cycle per tick, strictly sequential, with the wait between ticks the only
// thing separating daemon mode from run-once mode.
package agent

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/driplab/driptweet/internal/ports"
	"github.com/driplab/driptweet/internal/sequence"
	"github.com/driplab/driptweet/internal/store"
)

// MaxPostLen is the longest message the remote service accepts, in runes.
const MaxPostLen = 280

// Config controls the publish loop.
type Config struct {
	// Prefix is the textual prefix that tags published messages with their
	// sequence label, e.g. "TRCP" yields posts like "TRCP 7: ...".
	Prefix string

	// Interval selects fixed-interval mode when positive.
	Interval time.Duration

	// DailyHour and DailyMinute select the daily posting time (24-hour
	// clock) when Interval is zero.
	DailyHour   int
	DailyMinute int

	// Once publishes a single message and exits.
	Once bool

	// Simulate runs the full selection path but suppresses transmission.
	Simulate bool

	// Progress renders a countdown bar to stderr between ticks.
	Progress bool
}

// Agent wires the store, parser, selector, and gateway into the loop.
type Agent struct {
	cfg    Config
	store  *store.Store
	gw     ports.Gateway
	parser *sequence.Parser
	logger zerolog.Logger
}

// New creates an Agent. The gateway is taken as an interface so the loop
// can be driven against a fake in tests.
func New(cfg Config, st *store.Store, gw ports.Gateway, logger zerolog.Logger) *Agent {
	return &Agent{
		cfg:    cfg,
		store:  st,
		gw:     gw,
		parser: sequence.NewParser(cfg.Prefix),
		logger: logger,
	}
}

// Run executes publish ticks until the context is canceled or a gateway
// call fails. There is no internal retry: a failed tick ends the run, and
// in daemon mode the process supervisor is expected to restart us.
func (a *Agent) Run(ctx context.Context) error {
	for {
		if err := a.tick(ctx); err != nil {
			return err
		}
		if a.cfg.Once {
			return nil
		}
		next := a.nextTick(time.Now())
		a.logger.Info().Time("next_tick", next).Msg("waiting for next tick")
		if err := a.wait(ctx, next); err != nil {
			return err
		}
	}
}

// tick runs one selection/publish cycle.
func (a *Agent) tick(ctx context.Context) error {
	last, err := a.gw.LastPublished(ctx)
	if err != nil {
		return fmt.Errorf("fetch last published: %w", err)
	}

	var lastLabel int
	var hasLabel bool
	if last.Exists {
		lastLabel, hasLabel = a.parser.Parse(last.Text)
	}

	entries := a.store.Entries()
	entry, reason := sequence.Next(entries, lastLabel, hasLabel)

	switch reason {
	case sequence.ReasonNoLabel:
		a.logger.Warn().Str("last_text", last.Text).
			Msg("no label in last post, restarting sequence from entry 1")
	case sequence.ReasonOutOfRange:
		a.logger.Warn().Int("last_label", lastLabel).Int("store_size", len(entries)).
			Msg("last label out of range, restarting sequence from entry 1")
	case sequence.ReasonWrap:
		a.logger.Info().Int("store_size", len(entries)).
			Msg("sequence complete, wrapping around to entry 1")
	default:
		a.logger.Info().Int("last_label", lastLabel).Msg("advancing sequence")
	}

	body := Render(a.cfg.Prefix, entry.Label, entry.Body)
	if n := utf8.RuneCountInString(body); n > MaxPostLen {
		a.logger.Warn().Int("label", entry.Label).Int("runes", n).
			Msg("rendered message exceeds post length limit")
	}

	if err := a.gw.Publish(ctx, body, a.cfg.Simulate); err != nil {
		return fmt.Errorf("publish entry %d: %w", entry.Label, err)
	}
	a.logger.Info().Int("label", entry.Label).Str("reason", reason.String()).
		Bool("simulate", a.cfg.Simulate).Msg("published")
	return nil
}

// Render formats an entry for publishing. The parser recognizes exactly
// this shape on the next tick.
func Render(prefix string, label int, body string) string {
	return fmt.Sprintf("%s %d: %s", prefix, label, body)
}
