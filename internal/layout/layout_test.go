package layout

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/five82/strata/internal/complog"
)

const tomlLayout = `
well_name = "W1"
title = "W1 composite log"
depth_range = { min = 1000, max = 1200 }

[[tracks]]
id = "depth"
type = "depth"

[[tracks]]
id = "gr"
type = "Curve"
title = "GR / Sonic"
width = 150

  [[tracks.curves]]
  curve_name = "GR"

  [[tracks.curves]]
  curve_name = "AC"
  color = "#123456"
  min = 50
  max = 150
  line_style = "dashed"
  fill = { color = "#ffcc00", direction = "right" }

[[tracks]]
type = "interpretation"
hidden = true
`

func TestDecodeTOML(t *testing.T) {
	cfg, err := Decode([]byte(tomlLayout), FormatTOML)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if cfg.WellName != "W1" || cfg.DepthRange != (complog.DepthRange{Min: 1000, Max: 1200}) {
		t.Fatalf("config = %+v", cfg)
	}
	if cfg.Scale != complog.DefaultScale {
		t.Fatalf("Scale = %v, want default", cfg.Scale)
	}
	if len(cfg.Tracks) != 3 {
		t.Fatalf("len(Tracks) = %d, want 3", len(cfg.Tracks))
	}

	depth := cfg.Tracks[0]
	if !depth.Visible || depth.Width != 55 {
		t.Fatalf("depth track = %+v, want visible with default width", depth)
	}

	gr := cfg.Tracks[1]
	if gr.Type != complog.TrackCurve || gr.Width != 150 {
		t.Fatalf("curve track = %+v", gr)
	}
	first := gr.Curves[0]
	if first.Color != "#008000" || first.Max != 200 || first.Unit != "API" || first.LineStyle != complog.LineSolid {
		t.Fatalf("GR curve = %+v, want preset values", first)
	}
	second := gr.Curves[1]
	if second.Color != "#123456" || second.Min != 50 || second.Max != 150 || second.LineStyle != complog.LineDashed {
		t.Fatalf("AC curve = %+v, want explicit values kept", second)
	}
	if second.Fill == nil || second.Fill.Direction != complog.FillRight {
		t.Fatalf("AC fill = %+v", second.Fill)
	}

	interp := cfg.Tracks[2]
	if interp.Visible || interp.ID == "" {
		t.Fatalf("interpretation track = %+v, want hidden with generated id", interp)
	}
}

func TestDecodeYAML(t *testing.T) {
	raw := `
well_name: W2
depth_range: {min: 0, max: 500}
grid:
  enabled: true
  major_interval: 4
tracks:
  - type: lithology
  - type: mineral
    mineral_curves:
      - {curve_name: QTZ, color: "#FFD700", label: Quartz}
  - type: text
    text_content:
      - {top_depth: 10, bottom_depth: 40, text: "core run 1"}
`
	cfg, err := Decode([]byte(raw), FormatYAML)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if cfg.Grid == nil || cfg.Grid.MajorInterval != 4 {
		t.Fatalf("Grid = %+v", cfg.Grid)
	}
	if len(cfg.Tracks) != 3 {
		t.Fatalf("len(Tracks) = %d, want 3", len(cfg.Tracks))
	}
	if cfg.Tracks[1].MineralCurves[0].Label != "Quartz" {
		t.Fatalf("mineral curves = %+v", cfg.Tracks[1].MineralCurves)
	}
	if cfg.Tracks[2].TextContent[0].Text != "core run 1" || cfg.Tracks[2].Width != 160 {
		t.Fatalf("text track = %+v", cfg.Tracks[2])
	}
}

func TestDecodeRejectsBadLayouts(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"bad syntax", `tracks = [`, "parse layout"},
		{"inverted range", "depth_range = { min = 10, max = 5 }", "min must be below max"},
		{"unknown type", "[[tracks]]\ntype = \"seismic\"", "unknown track type"},
		{"duplicate id", "[[tracks]]\nid = \"a\"\ntype = \"depth\"\n[[tracks]]\nid = \"a\"\ntype = \"depth\"", "duplicate id"},
		{"unnamed curve", "[[tracks]]\ntype = \"curve\"\n[[tracks.curves]]\ncolor = \"#000\"", "has no name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.raw), FormatTOML)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Decode error = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	cfg, err := Decode([]byte(tomlLayout), FormatTOML)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	for _, name := range []string{"layout.toml", "layout.yaml", "layout.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)
			if err := Save(path, cfg); err != nil {
				t.Fatalf("Save returned error: %v", err)
			}
			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load returned error: %v", err)
			}
			if len(got.Tracks) != len(cfg.Tracks) {
				t.Fatalf("len(Tracks) = %d, want %d", len(got.Tracks), len(cfg.Tracks))
			}
			for i := range cfg.Tracks {
				if got.Tracks[i].ID != cfg.Tracks[i].ID || got.Tracks[i].Visible != cfg.Tracks[i].Visible {
					t.Fatalf("track %d = %+v, want %+v", i, got.Tracks[i], cfg.Tracks[i])
				}
			}
			if got.DepthRange != cfg.DepthRange {
				t.Fatalf("DepthRange = %+v, want %+v", got.DepthRange, cfg.DepthRange)
			}
		})
	}
}

func TestFormatForPath(t *testing.T) {
	if _, err := FormatForPath("layout.ini"); err == nil {
		t.Fatal("FormatForPath accepted .ini")
	}
	if f, _ := FormatForPath("A.YML"); f != FormatYAML {
		t.Fatalf("FormatForPath(A.YML) = %q, want yaml", f)
	}
}

func TestWatchReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.toml")
	if err := os.WriteFile(path, []byte("well_name = \"before\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	got := make(chan string, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(cfg complog.CompositeLogConfig, err error) {
			if err == nil {
				got <- cfg.WellName
			}
		})
	}()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(dir, "other.toml"), []byte("well_name = \"ignored\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := os.WriteFile(path, []byte("well_name = \"after\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	select {
	case name := <-got:
		if name != "after" {
			t.Fatalf("reloaded well = %q, want after", name)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no reload within 3s")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Watch returned error: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Watch did not stop after cancel")
	}
}
