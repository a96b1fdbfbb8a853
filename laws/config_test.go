package laws_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/authcorp/libs/go/optics/laws"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg, err := laws.LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Samples != 100 || cfg.Seed != 1 || cfg.LogLevel != "info" || cfg.FailFast {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if level, _ := cfg.Level(); level != slog.LevelInfo {
		t.Errorf("expected info level, got %s", level)
	}
}

func TestLoadConfigFromYAML(t *testing.T) {
	path := writeFile(t, "laws.yaml", `
samples: 25
seed: 7
log_level: debug
laws: [lens, prism]
fail_fast: true
`)

	cfg, err := laws.LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Samples != 25 || cfg.Seed != 7 || !cfg.FailFast {
		t.Errorf("unexpected %+v", cfg)
	}
	if !slices.Equal(cfg.Laws, []string{"lens", "prism"}) {
		t.Errorf("unexpected laws %v", cfg.Laws)
	}
	if level, _ := cfg.Level(); level != slog.LevelDebug {
		t.Errorf("expected debug level, got %s", level)
	}
}

func TestLoadConfigFromJSON(t *testing.T) {
	path := writeFile(t, "laws.json", `{"samples": 10, "log_level": "warn"}`)

	cfg, err := laws.LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Samples != 10 || cfg.Seed != 1 || cfg.LogLevel != "warn" {
		t.Errorf("unexpected %+v", cfg)
	}
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := writeFile(t, "laws.yml", "samples: 25\nseed: 7\n")
	t.Setenv("OPTICS_LAWS_SAMPLES", "3")
	t.Setenv("OPTICS_LAWS_LAWS", " iso , ,setter")
	t.Setenv("OPTICS_LAWS_FAIL_FAST", "true")

	cfg, err := laws.LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Samples != 3 || cfg.Seed != 7 || !cfg.FailFast {
		t.Errorf("unexpected %+v", cfg)
	}
	if !slices.Equal(cfg.Laws, []string{"iso", "setter"}) {
		t.Errorf("unexpected laws %v", cfg.Laws)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
		env  map[string]string
		want string
	}{
		{name: "missing file", file: "", want: "failed to read config file"},
		{name: "bad yaml", file: "bad.yaml", body: "samples: [", want: "failed to parse YAML"},
		{name: "bad json", file: "bad.json", body: "{", want: "failed to parse JSON"},
		{name: "bad env samples", env: map[string]string{"OPTICS_LAWS_SAMPLES": "many"}, want: "invalid OPTICS_LAWS_SAMPLES"},
		{name: "bad env seed", env: map[string]string{"OPTICS_LAWS_SEED": "x"}, want: "invalid OPTICS_LAWS_SEED"},
		{name: "bad fail fast", env: map[string]string{"OPTICS_LAWS_FAIL_FAST": "maybe"}, want: "invalid OPTICS_LAWS_FAIL_FAST"},
		{name: "invalid values", env: map[string]string{"OPTICS_LAWS_SAMPLES": "0", "OPTICS_LAWS_LOG_LEVEL": "loud"}, want: "samples must be positive"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			path := ""
			switch {
			case tc.file != "":
				path = writeFile(t, tc.file, tc.body)
			case tc.name == "missing file":
				path = filepath.Join(t.TempDir(), "absent.yaml")
			}

			_, err := laws.LoadConfig(path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("expected %q in %q", tc.want, err)
			}
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := laws.Config{Samples: -1, Seed: -1, LogLevel: "loud"}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected an error")
	}
	for _, want := range []string{"samples must be positive", "seed must not be negative", `invalid log level "loud"`} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected %q in %q", want, err)
		}
	}
}
