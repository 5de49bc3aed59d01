package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSubcommands(t *testing.T) {
	root := newRootCmd()
	want := []string{"view", "render", "stats", "wells", "curves", "logs"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Fatalf("Find(%q) = %v, %v", name, cmd, err)
		}
	}
}

func TestDepthWindowFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		valid   bool
		wantErr bool
	}{
		{"unset", nil, false, false},
		{"both", []string{"--min", "1000", "--max", "1200"}, true, false},
		{"inverted", []string{"--min", "1200", "--max", "1000"}, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := newRootCmd()
			render, _, err := root.Find([]string{"render"})
			if err != nil {
				t.Fatalf("Find(render): %v", err)
			}
			if err := render.ParseFlags(tt.args); err != nil {
				t.Fatalf("ParseFlags: %v", err)
			}
			var d depthFlags
			d.min, _ = render.Flags().GetFloat64("min")
			d.max, _ = render.Flags().GetFloat64("max")
			rng, err := d.window(render)
			if (err != nil) != tt.wantErr {
				t.Fatalf("window err = %v, wantErr %v", err, tt.wantErr)
			}
			if rng.Valid() != tt.valid {
				t.Fatalf("window = %+v, valid want %v", rng, tt.valid)
			}
		})
	}
}

func TestLogsCommand(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "strata.log")
	if err := os.WriteFile(logPath, []byte("strata poll failed\nstrata layout reloaded\n"), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}
	configPath := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(configPath, []byte("log_file = \""+logPath+"\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"logs", "--config", configPath, "layout"})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "strata layout reloaded" {
		t.Fatalf("logs output = %q, want the layout line", got)
	}
}

func TestStatsRejectsUnknownMethod(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(configPath, []byte("workarea = \"wa\"\nwell = \"W1\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"stats", "--config", configPath, "--curve", "GR", "--method", "zscore"})
	err := root.Execute()
	if err == nil || !strings.Contains(err.Error(), "invalid outlier method") {
		t.Fatalf("Execute err = %v, want invalid outlier method", err)
	}
}
