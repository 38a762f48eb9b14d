package agent

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestNextDailyTick(t *testing.T) {
	loc := time.UTC
	tests := []struct {
		name string
		now  time.Time
		hour int
		min  int
		want time.Time
	}{
		{
			name: "later today",
			now:  time.Date(2026, 8, 23, 7, 30, 0, 0, loc),
			hour: 9, min: 0,
			want: time.Date(2026, 8, 23, 9, 0, 0, 0, loc),
		},
		{
			name: "already passed today",
			now:  time.Date(2026, 8, 23, 10, 15, 0, 0, loc),
			hour: 9, min: 0,
			want: time.Date(2026, 8, 24, 9, 0, 0, 0, loc),
		},
		{
			name: "exactly now rolls to tomorrow",
			now:  time.Date(2026, 8, 23, 9, 0, 0, 0, loc),
			hour: 9, min: 0,
			want: time.Date(2026, 8, 24, 9, 0, 0, 0, loc),
		},
		{
			name: "midnight schedule",
			now:  time.Date(2026, 8, 23, 23, 59, 0, 0, loc),
			hour: 0, min: 0,
			want: time.Date(2026, 8, 24, 0, 0, 0, 0, loc),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nextDailyTick(tt.now, tt.hour, tt.min)
			if !got.Equal(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestNextTickIntervalMode(t *testing.T) {
	a := New(Config{Prefix: "TRCP", Interval: 2 * time.Hour}, nil, nil, zerolog.Nop())
	now := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	if got, want := a.nextTick(now), now.Add(2*time.Hour); !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestCountdownFill(t *testing.T) {
	tests := []struct {
		name      string
		remaining time.Duration
		total     time.Duration
		want      int
	}{
		{"full", time.Hour, time.Hour, 30},
		{"half", 30 * time.Minute, time.Hour, 15},
		{"empty", 0, time.Hour, 0},
		{"negative remaining", -time.Second, time.Hour, 0},
		{"zero total", time.Minute, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := countdownFill(tt.remaining, tt.total, 30); got != tt.want {
				t.Fatalf("expected %d cells, got %d", tt.want, got)
			}
		})
	}
}

func TestFmtRemaining(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{26*time.Hour + 13*time.Minute, "26h13m"},
		{2*time.Hour + 5*time.Minute, "2h05m"},
		{14*time.Minute + 9*time.Second, "14m09s"},
		{42 * time.Second, "42s"},
		{900 * time.Millisecond, "0s"},
	}
	for _, tt := range tests {
		if got := fmtRemaining(tt.d); got != tt.want {
			t.Fatalf("fmtRemaining(%v): expected %q, got %q", tt.d, tt.want, got)
		}
	}
}
