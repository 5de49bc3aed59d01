package complog

import (
	"fmt"
	"slices"
	"sync/atomic"
)

// CurvePreset is the recommended display of a well-known curve.
type CurvePreset struct {
	Min         float64
	Max         float64
	Color       string
	LineWidth   float64
	Unit        string
	Logarithmic bool
}

// CurvePresets covers common curve mnemonics and their Chinese names.
var CurvePresets = map[string]CurvePreset{
	"井径":      {Min: 150, Max: 350, Color: "#000000", LineWidth: 1, Unit: "mm"},
	"自然电位":    {Min: -100, Max: 100, Color: "#0000FF", LineWidth: 1, Unit: "mV"},
	"自然伽马":    {Min: 0, Max: 200, Color: "#008000", LineWidth: 1, Unit: "API"},
	"浅侧向":     {Min: 0.1, Max: 10000, Color: "#FF0000", LineWidth: 1, Unit: "Ωm", Logarithmic: true},
	"深侧向":     {Min: 0.1, Max: 10000, Color: "#800000", LineWidth: 1, Unit: "Ωm", Logarithmic: true},
	"DT":      {Min: 40, Max: 140, Color: "#FF00FF", LineWidth: 1, Unit: "μs/ft"},
	"补偿中子孔隙度": {Min: 0, Max: 60, Color: "#0000CD", LineWidth: 1, Unit: "%"},
	"岩性密度":    {Min: 1.5, Max: 3.0, Color: "#8B0000", LineWidth: 1, Unit: "g/cm³"},
	"孔隙度":     {Min: 0, Max: 30, Color: "#4169E1", LineWidth: 1, Unit: "%"},
	"测井TOC":   {Min: 0, Max: 10, Color: "#2F4F4F", LineWidth: 1.5, Unit: "%"},
	"脆性指数":    {Min: 0, Max: 100, Color: "#FF8C00", LineWidth: 1, Unit: "%"},
	"GR":      {Min: 0, Max: 200, Color: "#008000", LineWidth: 1, Unit: "API"},
	"SP":      {Min: -100, Max: 100, Color: "#0000FF", LineWidth: 1, Unit: "mV"},
	"AC":      {Min: 40, Max: 140, Color: "#FF00FF", LineWidth: 1, Unit: "μs/ft"},
	"RT":      {Min: 0.1, Max: 10000, Color: "#FF0000", LineWidth: 1, Unit: "Ωm", Logarithmic: true},
	"CAL":     {Min: 150, Max: 350, Color: "#000000", LineWidth: 1, Unit: "mm"},
	"DEN":     {Min: 1.5, Max: 3.0, Color: "#8B0000", LineWidth: 1, Unit: "g/cm³"},
	"CNL":     {Min: 0, Max: 60, Color: "#0000CD", LineWidth: 1, Unit: "%"},
}

// DefaultCurveStyle returns the preset style for name, or a black 0–100
// solid line when the curve is unknown.
func DefaultCurveStyle(name string) CurveStyle {
	if p, ok := CurvePresets[name]; ok {
		return CurveStyle{
			CurveName:   name,
			Color:       p.Color,
			LineWidth:   p.LineWidth,
			LineStyle:   LineSolid,
			Unit:        p.Unit,
			Min:         p.Min,
			Max:         p.Max,
			Logarithmic: p.Logarithmic,
		}
	}
	return CurveStyle{
		CurveName: name,
		Color:     "#000000",
		LineWidth: 1,
		LineStyle: LineSolid,
		Min:       0,
		Max:       100,
	}
}

// DefaultScale is the vertical scale denominator of a new chart (1:200).
const DefaultScale = 200

// EmptyConfig returns a chart with no tracks for the given well.
func EmptyConfig(wellName string, depthRange DepthRange) CompositeLogConfig {
	return CompositeLogConfig{
		WellName:   wellName,
		Title:      wellName + " composite log",
		DepthRange: depthRange,
		Scale:      DefaultScale,
		Tracks:     []TrackConfig{},
	}
}

var trackSeq atomic.Uint64

// NextTrackID returns a process-unique track id.
func NextTrackID() string {
	return fmt.Sprintf("track_%d", trackSeq.Add(1))
}

// curveGroup is one suggested curve track. Each slot lists alternative
// names; the first one present in the well is used.
type curveGroup struct {
	title string
	slots [][]string
}

var suggestedCurveGroups = []curveGroup{
	{title: "CAL / SP", slots: [][]string{{"井径", "CAL"}, {"自然电位", "SP"}}},
	{title: "GR / Sonic", slots: [][]string{{"自然伽马", "GR"}, {"DT", "AC"}}},
	{title: "Resistivity", slots: [][]string{{"浅侧向"}, {"深侧向"}, {"RT"}}},
	{title: "Density / Neutron / Porosity", slots: [][]string{{"岩性密度", "DEN"}, {"补偿中子孔隙度", "CNL"}, {"孔隙度"}}},
	{title: "TOC / Brittleness", slots: [][]string{{"测井TOC"}, {"脆性指数"}}},
}

const (
	suggestedNarrowWidth = 55
	suggestedBandWidth   = 80
	suggestedCurveWidth  = 140
)

// SuggestedTracks lays out a conventional composite log for a well that
// carries the given curves: formation, depth and lithology columns, one
// curve track per group that has at least one curve present, and the
// interpretation column.
func SuggestedTracks(curveNames []string) []TrackConfig {
	tracks := []TrackConfig{
		{ID: NextTrackID(), Type: TrackFormation, Title: "Formation", Width: suggestedBandWidth, Visible: true},
		{ID: NextTrackID(), Type: TrackDepth, Title: "Depth (m)", Width: suggestedNarrowWidth, Visible: true},
		{ID: NextTrackID(), Type: TrackLithology, Title: "Lithology", Width: suggestedNarrowWidth, Visible: true},
	}
	for _, group := range suggestedCurveGroups {
		var curves []CurveStyle
		for _, slot := range group.slots {
			for _, name := range slot {
				if slices.Contains(curveNames, name) {
					curves = append(curves, DefaultCurveStyle(name))
					break
				}
			}
		}
		if len(curves) == 0 {
			continue
		}
		tracks = append(tracks, TrackConfig{
			ID:      NextTrackID(),
			Type:    TrackCurve,
			Title:   group.title,
			Width:   suggestedCurveWidth,
			Visible: true,
			Curves:  curves,
		})
	}
	return append(tracks, TrackConfig{
		ID: NextTrackID(), Type: TrackInterpretation, Title: "Interpretation", Width: suggestedBandWidth, Visible: true,
	})
}
