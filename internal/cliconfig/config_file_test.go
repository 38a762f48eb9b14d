package cliconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestApplyFileConfig(t *testing.T) {
	trueVal := true
	falseVal := false

	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Config
		expected   Config
		wantErr    bool
	}{
		{
			name: "applies all valid config values",
			fileConfig: FileConfig{
				StorePath: "/data/tweets.csv",
				Prefix:    "RULE",
				DailyAt:   "07:30",
				Interval:  "12h",
				Once:      &trueVal,
				Simulate:  &falseVal,
				Credentials: FileCredentials{
					ConsumerKey:    "ck",
					ConsumerSecret: "cs",
					AccessToken:    "at",
					AccessSecret:   "as",
				},
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				StorePath:      "/data/tweets.csv",
				Prefix:         "RULE",
				DailyAt:        "07:30",
				Interval:       12 * time.Hour,
				Once:           true,
				ConsumerKey:    "ck",
				ConsumerSecret: "cs",
				AccessToken:    "at",
				AccessSecret:   "as",
			},
			wantErr: false,
		},
		{
			name: "respects changed flags",
			fileConfig: FileConfig{
				StorePath: "/config/tweets.csv",
				Prefix:    "config-prefix",
			},
			changed: map[string]bool{"store": true},
			initial: Config{
				StorePath: "/flag/tweets.csv",
				Prefix:    "flag-prefix",
			},
			expected: Config{
				StorePath: "/flag/tweets.csv", // unchanged because flag was set
				Prefix:    "config-prefix",
			},
			wantErr: false,
		},
		{
			name:       "invalid interval",
			fileConfig: FileConfig{Interval: "tomorrow"},
			changed:    map[string]bool{},
			initial:    Config{},
			wantErr:    true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			err := ApplyFileConfig(&cfg, tt.fileConfig, tt.changed)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg != tt.expected {
				t.Fatalf("expected %+v, got %+v", tt.expected, cfg)
			}
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	content := `
store = "/data/tweets.csv"
prefix = "TRCP"
daily_at = "09:00"
progress = false

[credentials]
consumer_key = "ck"
consumer_secret = "cs"
access_token = "at"
access_secret = "as"
`
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if fc.StorePath != "/data/tweets.csv" {
		t.Fatalf("unexpected store %q", fc.StorePath)
	}
	if fc.Progress == nil || *fc.Progress {
		t.Fatal("expected progress=false")
	}
	if fc.Credentials.ConsumerKey != "ck" || fc.Credentials.AccessSecret != "as" {
		t.Fatalf("credentials not parsed: %+v", fc.Credentials)
	}
}

func TestLoadFileConfigMissingFile(t *testing.T) {
	if _, err := LoadFileConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadFileConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("store = [unclosed"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadFileConfig(path); err == nil {
		t.Fatal("expected error for malformed TOML")
	}
}
