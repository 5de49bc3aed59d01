package complog

import (
	"encoding/json"
	"fmt"
)

// TrackType identifies how a track body is drawn.
type TrackType string

const (
	TrackFormation      TrackType = "formation"
	TrackDepth          TrackType = "depth"
	TrackLithology      TrackType = "lithology"
	TrackCurve          TrackType = "curve"
	TrackDiscrete       TrackType = "discrete"
	TrackInterpretation TrackType = "interpretation"
	TrackMineral        TrackType = "mineral"
	TrackText           TrackType = "text"
)

// Valid reports whether t is one of the known track types.
func (t TrackType) Valid() bool {
	switch t {
	case TrackFormation, TrackDepth, TrackLithology, TrackCurve, TrackDiscrete,
		TrackInterpretation, TrackMineral, TrackText:
		return true
	}
	return false
}

// HasCurves reports whether tracks of this type carry CurveStyle rows.
func (t TrackType) HasCurves() bool {
	return t == TrackCurve || t == TrackDiscrete
}

// LineStyle is the stroke pattern of a curve.
type LineStyle string

const (
	LineSolid  LineStyle = "solid"
	LineDashed LineStyle = "dashed"
	LineDotted LineStyle = "dotted"
)

// dash returns the dash array for the style; nil means a solid stroke.
func (s LineStyle) dash() []float64 {
	switch s {
	case LineDashed:
		return []float64{6, 3}
	case LineDotted:
		return []float64{2, 2}
	default:
		return nil
	}
}

// DrawMode selects between a connected trace and per-sample bars.
type DrawMode string

const (
	DrawLine DrawMode = "line"
	DrawBar  DrawMode = "bar"
)

// FillDirection is the track edge an area fill extends to.
type FillDirection string

const (
	FillLeft  FillDirection = "left"
	FillRight FillDirection = "right"
)

// CurveFill describes an optional semi-transparent area fill.
type CurveFill struct {
	Color     string        `json:"color" toml:"color" yaml:"color"`
	Direction FillDirection `json:"direction" toml:"direction" yaml:"direction"`
}

// CurveStyle is the display style of one curve inside a curve or discrete track.
type CurveStyle struct {
	CurveName   string     `json:"curveName" toml:"curve_name" yaml:"curve_name"`
	Color       string     `json:"color" toml:"color" yaml:"color"`
	LineWidth   float64    `json:"lineWidth" toml:"line_width" yaml:"line_width"`
	LineStyle   LineStyle  `json:"lineStyle" toml:"line_style" yaml:"line_style"`
	DrawMode    DrawMode   `json:"drawMode,omitempty" toml:"draw_mode,omitempty" yaml:"draw_mode,omitempty"`
	Unit        string     `json:"unit,omitempty" toml:"unit,omitempty" yaml:"unit,omitempty"`
	Min         float64    `json:"min" toml:"min" yaml:"min"`
	Max         float64    `json:"max" toml:"max" yaml:"max"`
	Logarithmic bool       `json:"logarithmic,omitempty" toml:"logarithmic,omitempty" yaml:"logarithmic,omitempty"`
	Fill        *CurveFill `json:"fill,omitempty" toml:"fill,omitempty" yaml:"fill,omitempty"`
}

// Degenerate reports whether the value domain cannot be mapped.
func (c CurveStyle) Degenerate() bool {
	return !(c.Max > c.Min)
}

// Mode returns the draw mode, defaulting to line.
func (c CurveStyle) Mode() DrawMode {
	if c.DrawMode == DrawBar {
		return DrawBar
	}
	return DrawLine
}

// Legend returns the header text for the curve: "name min—max unit [log]".
func (c CurveStyle) Legend() string {
	text := fmt.Sprintf("%s %s—%s", c.CurveName, formatNumber(c.Min), formatNumber(c.Max))
	if c.Unit != "" {
		text += " " + c.Unit
	}
	if c.Logarithmic {
		text += " log"
	}
	return text
}

// MineralCurve is one component of a stacked mineral track.
type MineralCurve struct {
	CurveName string `json:"curveName" toml:"curve_name" yaml:"curve_name"`
	Color     string `json:"color" toml:"color" yaml:"color"`
	Label     string `json:"label" toml:"label" yaml:"label"`
}

// TextSegment is a free-text annotation spanning a depth interval.
type TextSegment struct {
	TopDepth    float64 `json:"topDepth" toml:"top_depth" yaml:"top_depth"`
	BottomDepth float64 `json:"bottomDepth" toml:"bottom_depth" yaml:"bottom_depth"`
	Text        string  `json:"text" toml:"text" yaml:"text"`
	Color       string  `json:"color,omitempty" toml:"color,omitempty" yaml:"color,omitempty"`
}

// TrackConfig describes one column of the chart.
type TrackConfig struct {
	ID            string         `json:"id" toml:"id" yaml:"id"`
	Type          TrackType      `json:"type" toml:"type" yaml:"type"`
	Title         string         `json:"title" toml:"title" yaml:"title"`
	Width         float64        `json:"width" toml:"width" yaml:"width"`
	Visible       bool           `json:"visible" toml:"visible" yaml:"visible"`
	Curves        []CurveStyle   `json:"curves,omitempty" toml:"curves,omitempty" yaml:"curves,omitempty"`
	MineralCurves []MineralCurve `json:"mineralCurves,omitempty" toml:"mineral_curves,omitempty" yaml:"mineral_curves,omitempty"`
	TextContent   []TextSegment  `json:"textContent,omitempty" toml:"text_content,omitempty" yaml:"text_content,omitempty"`
	BgColor       string         `json:"bgColor,omitempty" toml:"bg_color,omitempty" yaml:"bg_color,omitempty"`
}

// DepthRange is a closed depth interval with Min < Max.
type DepthRange struct {
	Min float64 `json:"min" toml:"min" yaml:"min"`
	Max float64 `json:"max" toml:"max" yaml:"max"`
}

// Width returns Max-Min.
func (r DepthRange) Width() float64 {
	return r.Max - r.Min
}

// Valid reports whether Min < Max.
func (r DepthRange) Valid() bool {
	return r.Max > r.Min
}

// GridConfig controls the horizontal depth grid and the vertical value grid
// drawn inside curve tracks.
type GridConfig struct {
	Enabled       bool    `json:"enabled" toml:"enabled" yaml:"enabled"`
	MajorInterval int     `json:"majorInterval" toml:"major_interval" yaml:"major_interval"`
	MinorInterval int     `json:"minorInterval" toml:"minor_interval" yaml:"minor_interval"`
	MajorColor    string  `json:"majorColor" toml:"major_color" yaml:"major_color"`
	MajorWidth    float64 `json:"majorWidth" toml:"major_width" yaml:"major_width"`
	MinorColor    string  `json:"minorColor" toml:"minor_color" yaml:"minor_color"`
	MinorWidth    float64 `json:"minorWidth" toml:"minor_width" yaml:"minor_width"`
}

// DefaultGridConfig returns the grid used when a chart has none configured.
func DefaultGridConfig() GridConfig {
	return GridConfig{
		Enabled:       true,
		MajorInterval: 5,
		MinorInterval: 0,
		MajorColor:    "#e0e0e0",
		MajorWidth:    0.5,
		MinorColor:    "#f0f0f0",
		MinorWidth:    0.3,
	}
}

// CompositeLogConfig is the chart-level description of a composite log.
type CompositeLogConfig struct {
	WellName   string        `json:"wellName" toml:"well_name" yaml:"well_name"`
	Title      string        `json:"title" toml:"title" yaml:"title"`
	DepthRange DepthRange    `json:"depthRange" toml:"depth_range" yaml:"depth_range"`
	Scale      float64       `json:"scale" toml:"scale" yaml:"scale"`
	Tracks     []TrackConfig `json:"tracks" toml:"tracks" yaml:"tracks"`
	Grid       *GridConfig   `json:"grid,omitempty" toml:"grid,omitempty" yaml:"grid,omitempty"`
}

// VisibleTracks returns the visible tracks in display order.
func (c *CompositeLogConfig) VisibleTracks() []*TrackConfig {
	if c == nil {
		return nil
	}
	visible := make([]*TrackConfig, 0, len(c.Tracks))
	for i := range c.Tracks {
		if c.Tracks[i].Visible {
			visible = append(visible, &c.Tracks[i])
		}
	}
	return visible
}

// Track returns the track with the given id, or nil.
func (c *CompositeLogConfig) Track(id string) *TrackConfig {
	if c == nil {
		return nil
	}
	for i := range c.Tracks {
		if c.Tracks[i].ID == id {
			return &c.Tracks[i]
		}
	}
	return nil
}

// GridOrDefault returns the configured grid or DefaultGridConfig.
func (c *CompositeLogConfig) GridOrDefault() GridConfig {
	if c == nil || c.Grid == nil {
		return DefaultGridConfig()
	}
	return *c.Grid
}

// CurveNames lists every curve referenced by curve, discrete and mineral
// tracks, in first-use order without duplicates.
func (c *CompositeLogConfig) CurveNames() []string {
	if c == nil {
		return nil
	}
	seen := make(map[string]bool)
	var names []string
	add := func(name string) {
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		names = append(names, name)
	}
	for _, track := range c.Tracks {
		for _, cs := range track.Curves {
			add(cs.CurveName)
		}
		for _, mc := range track.MineralCurves {
			add(mc.CurveName)
		}
	}
	return names
}

// Clone returns a deep copy of the config.
func (c CompositeLogConfig) Clone() CompositeLogConfig {
	out := c
	if c.Grid != nil {
		grid := *c.Grid
		out.Grid = &grid
	}
	if c.Tracks != nil {
		out.Tracks = make([]TrackConfig, len(c.Tracks))
		for i, track := range c.Tracks {
			out.Tracks[i] = track.clone()
		}
	}
	return out
}

func (t TrackConfig) clone() TrackConfig {
	out := t
	if t.Curves != nil {
		out.Curves = make([]CurveStyle, len(t.Curves))
		for i, cs := range t.Curves {
			if cs.Fill != nil {
				fill := *cs.Fill
				cs.Fill = &fill
			}
			out.Curves[i] = cs
		}
	}
	if t.MineralCurves != nil {
		out.MineralCurves = append([]MineralCurve(nil), t.MineralCurves...)
	}
	if t.TextContent != nil {
		out.TextContent = append([]TextSegment(nil), t.TextContent...)
	}
	return out
}

// MissingValue is the sentinel the upstream service uses for absent samples.
const MissingValue = -9999

// Sample is one depth-indexed curve value. A sample is missing when Null is
// set or Value equals MissingValue.
type Sample struct {
	Depth float64
	Value float64
	Null  bool
}

// Valid reports whether the sample carries data.
func (s Sample) Valid() bool {
	return !s.Null && s.Value != MissingValue
}

// MarshalJSON encodes the sample as {"depth":d,"value":v|null}.
func (s Sample) MarshalJSON() ([]byte, error) {
	var value *float64
	if !s.Null {
		v := s.Value
		value = &v
	}
	return json.Marshal(struct {
		Depth float64  `json:"depth"`
		Value *float64 `json:"value"`
	}{s.Depth, value})
}

// UnmarshalJSON decodes {"depth":d,"value":v|null}.
func (s *Sample) UnmarshalJSON(data []byte) error {
	var raw struct {
		Depth float64  `json:"depth"`
		Value *float64 `json:"value"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.Depth = raw.Depth
	if raw.Value == nil {
		s.Value = 0
		s.Null = true
		return nil
	}
	s.Value = *raw.Value
	s.Null = false
	return nil
}

// ValidValues returns the values of the samples that carry data.
func ValidValues(samples []Sample) []float64 {
	values := make([]float64, 0, len(samples))
	for _, s := range samples {
		if s.Valid() {
			values = append(values, s.Value)
		}
	}
	return values
}

// Layer is a formation interval.
type Layer struct {
	ID          int64   `json:"id"`
	Formation   string  `json:"formation"`
	TopDepth    float64 `json:"top_depth"`
	BottomDepth float64 `json:"bottom_depth"`
}

// LithologyInterval is a described rock interval.
type LithologyInterval struct {
	ID          int64   `json:"id"`
	TopDepth    float64 `json:"top_depth"`
	BottomDepth float64 `json:"bottom_depth"`
	Description string  `json:"description"`
}

// Interpretation is a categorical log interpretation interval.
type Interpretation struct {
	ID          int64   `json:"id"`
	TopDepth    float64 `json:"top_depth"`
	BottomDepth float64 `json:"bottom_depth"`
	Conclusion  string  `json:"conclusion"`
	Category    string  `json:"category"`
}

// Label returns the conclusion, or the category when no conclusion is set.
func (i Interpretation) Label() string {
	if i.Conclusion != "" {
		return i.Conclusion
	}
	return i.Category
}

// CompositeLogData holds the depth-indexed samples drawn by a chart.
type CompositeLogData struct {
	Curves          map[string][]Sample
	Layers          []Layer
	Lithology       []LithologyInterval
	Interpretations []Interpretation
}

// Curve returns the samples of the named curve.
func (d *CompositeLogData) Curve(name string) []Sample {
	if d == nil || d.Curves == nil {
		return nil
	}
	return d.Curves[name]
}

// Extent returns the depth interval covered by the data. ok is false when
// the data holds nothing with a depth, or spans a single depth.
func (d *CompositeLogData) Extent() (rng DepthRange, ok bool) {
	if d == nil {
		return DepthRange{}, false
	}
	first := true
	add := func(depth float64) {
		if first {
			rng = DepthRange{Min: depth, Max: depth}
			first = false
			return
		}
		rng.Min = min(rng.Min, depth)
		rng.Max = max(rng.Max, depth)
	}
	for _, samples := range d.Curves {
		for _, s := range samples {
			add(s.Depth)
		}
	}
	for _, l := range d.Layers {
		add(l.TopDepth)
		add(l.BottomDepth)
	}
	for _, l := range d.Lithology {
		add(l.TopDepth)
		add(l.BottomDepth)
	}
	for _, in := range d.Interpretations {
		add(in.TopDepth)
		add(in.BottomDepth)
	}
	return rng, rng.Valid()
}
