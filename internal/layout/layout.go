package layout

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/five82/strata/internal/complog"
)

// Format is a layout file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatForPath picks the encoding from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported layout extension %q", filepath.Ext(path))
	}
}

// document is the on-disk shape of a layout. Tracks default to visible, so
// a file hides a track with hidden = true.
type document struct {
	WellName   string              `json:"wellName" toml:"well_name" yaml:"well_name"`
	Title      string              `json:"title" toml:"title" yaml:"title"`
	DepthRange *complog.DepthRange `json:"depthRange,omitempty" toml:"depth_range,omitempty" yaml:"depth_range,omitempty"`
	Scale      float64             `json:"scale,omitempty" toml:"scale,omitempty" yaml:"scale,omitempty"`
	Grid       *complog.GridConfig `json:"grid,omitempty" toml:"grid,omitempty" yaml:"grid,omitempty"`
	Tracks     []track             `json:"tracks" toml:"tracks" yaml:"tracks"`
}

type track struct {
	ID            string                 `json:"id,omitempty" toml:"id,omitempty" yaml:"id,omitempty"`
	Type          complog.TrackType      `json:"type" toml:"type" yaml:"type"`
	Title         string                 `json:"title,omitempty" toml:"title,omitempty" yaml:"title,omitempty"`
	Width         float64                `json:"width,omitempty" toml:"width,omitempty" yaml:"width,omitempty"`
	Hidden        bool                   `json:"hidden,omitempty" toml:"hidden,omitempty" yaml:"hidden,omitempty"`
	Curves        []complog.CurveStyle   `json:"curves,omitempty" toml:"curves,omitempty" yaml:"curves,omitempty"`
	MineralCurves []complog.MineralCurve `json:"mineralCurves,omitempty" toml:"mineral_curves,omitempty" yaml:"mineral_curves,omitempty"`
	TextContent   []complog.TextSegment  `json:"textContent,omitempty" toml:"text_content,omitempty" yaml:"text_content,omitempty"`
	BgColor       string                 `json:"bgColor,omitempty" toml:"bg_color,omitempty" yaml:"bg_color,omitempty"`
}

// Load reads, normalizes and validates the layout at path.
func Load(path string) (complog.CompositeLogConfig, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return complog.CompositeLogConfig{}, err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return complog.CompositeLogConfig{}, fmt.Errorf("read layout: %w", err)
	}
	cfg, err := Decode(raw, format)
	if err != nil {
		return complog.CompositeLogConfig{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}

// Decode parses a layout document and returns the normalized config.
func Decode(raw []byte, format Format) (complog.CompositeLogConfig, error) {
	var doc document
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(raw, &doc)
	case FormatYAML:
		err = yaml.Unmarshal(raw, &doc)
	case FormatJSON:
		err = json.Unmarshal(raw, &doc)
	default:
		return complog.CompositeLogConfig{}, fmt.Errorf("unsupported layout format %q", format)
	}
	if err != nil {
		return complog.CompositeLogConfig{}, fmt.Errorf("parse layout: %w", err)
	}
	return doc.config()
}

// Encode renders cfg as a layout document.
func Encode(cfg complog.CompositeLogConfig, format Format) ([]byte, error) {
	doc := fromConfig(cfg)
	switch format {
	case FormatTOML:
		return toml.Marshal(doc)
	case FormatYAML:
		return yaml.Marshal(doc)
	case FormatJSON:
		return json.MarshalIndent(doc, "", "  ")
	default:
		return nil, fmt.Errorf("unsupported layout format %q", format)
	}
}

// Save writes cfg to path in the encoding its extension names.
func Save(path string, cfg complog.CompositeLogConfig) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}
	raw, err := Encode(cfg, format)
	if err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create layout dir: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write layout: %w", err)
	}
	return nil
}

func (d document) config() (complog.CompositeLogConfig, error) {
	cfg := complog.CompositeLogConfig{
		WellName: strings.TrimSpace(d.WellName),
		Title:    strings.TrimSpace(d.Title),
		Scale:    d.Scale,
		Grid:     d.Grid,
		Tracks:   make([]complog.TrackConfig, 0, len(d.Tracks)),
	}
	if cfg.Scale <= 0 {
		cfg.Scale = complog.DefaultScale
	}
	if d.DepthRange != nil {
		if !d.DepthRange.Valid() {
			return complog.CompositeLogConfig{}, fmt.Errorf("depth range %v-%v: min must be below max", d.DepthRange.Min, d.DepthRange.Max)
		}
		cfg.DepthRange = *d.DepthRange
	}

	seen := make(map[string]bool, len(d.Tracks))
	for i, t := range d.Tracks {
		tc, err := t.config()
		if err != nil {
			return complog.CompositeLogConfig{}, fmt.Errorf("track %d: %w", i+1, err)
		}
		if seen[tc.ID] {
			return complog.CompositeLogConfig{}, fmt.Errorf("track %d: duplicate id %q", i+1, tc.ID)
		}
		seen[tc.ID] = true
		cfg.Tracks = append(cfg.Tracks, tc)
	}
	return cfg, nil
}

func (t track) config() (complog.TrackConfig, error) {
	kind := complog.TrackType(strings.ToLower(strings.TrimSpace(string(t.Type))))
	if !kind.Valid() {
		return complog.TrackConfig{}, fmt.Errorf("unknown track type %q", t.Type)
	}
	tc := complog.TrackConfig{
		ID:            strings.TrimSpace(t.ID),
		Type:          kind,
		Title:         strings.TrimSpace(t.Title),
		Width:         t.Width,
		Visible:       !t.Hidden,
		MineralCurves: t.MineralCurves,
		TextContent:   t.TextContent,
		BgColor:       t.BgColor,
	}
	if tc.ID == "" {
		tc.ID = complog.NextTrackID()
	}
	if tc.Width <= 0 {
		tc.Width = defaultWidth(kind)
	}
	if len(t.Curves) > 0 {
		tc.Curves = make([]complog.CurveStyle, len(t.Curves))
		for i, cs := range t.Curves {
			if strings.TrimSpace(cs.CurveName) == "" {
				return complog.TrackConfig{}, fmt.Errorf("curve %d has no name", i+1)
			}
			tc.Curves[i] = withPreset(cs)
		}
	}
	return tc, nil
}

// withPreset fills the fields a layout left empty from the curve's preset.
func withPreset(cs complog.CurveStyle) complog.CurveStyle {
	cs.CurveName = strings.TrimSpace(cs.CurveName)
	preset := complog.DefaultCurveStyle(cs.CurveName)
	if cs.Color == "" {
		cs.Color = preset.Color
	}
	if cs.LineWidth <= 0 {
		cs.LineWidth = preset.LineWidth
	}
	if cs.LineStyle == "" {
		cs.LineStyle = complog.LineSolid
	}
	if cs.Unit == "" {
		cs.Unit = preset.Unit
	}
	if cs.Min == 0 && cs.Max == 0 {
		cs.Min, cs.Max = preset.Min, preset.Max
		cs.Logarithmic = cs.Logarithmic || preset.Logarithmic
	}
	return cs
}

func defaultWidth(kind complog.TrackType) float64 {
	switch kind {
	case complog.TrackDepth, complog.TrackLithology:
		return 55
	case complog.TrackCurve, complog.TrackDiscrete:
		return 140
	case complog.TrackMineral:
		return 120
	case complog.TrackText:
		return 160
	default:
		return 80
	}
}

func fromConfig(cfg complog.CompositeLogConfig) document {
	doc := document{
		WellName: cfg.WellName,
		Title:    cfg.Title,
		Scale:    cfg.Scale,
		Grid:     cfg.Grid,
		Tracks:   make([]track, len(cfg.Tracks)),
	}
	if cfg.DepthRange.Valid() {
		r := cfg.DepthRange
		doc.DepthRange = &r
	}
	for i, t := range cfg.Tracks {
		doc.Tracks[i] = track{
			ID:            t.ID,
			Type:          t.Type,
			Title:         t.Title,
			Width:         t.Width,
			Hidden:        !t.Visible,
			Curves:        t.Curves,
			MineralCurves: t.MineralCurves,
			TextContent:   t.TextContent,
			BgColor:       t.BgColor,
		}
	}
	return doc
}
