package welldata

import "github.com/five82/strata/internal/complog"

// Well is one entry of a workarea's well list.
type Well struct {
	ID   int64    `json:"id"`
	Name string   `json:"name"`
	X    *float64 `json:"x"`
	Y    *float64 `json:"y"`
	KB   *float64 `json:"kb"`
	TD   *float64 `json:"td"`
}

// CurveInfo describes a curve stored for a well.
type CurveInfo struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Unit           string   `json:"unit"`
	SampleInterval *float64 `json:"sample_interval"`
}

// DepthFilter restricts curve-data requests. Nil bounds are unbounded.
type DepthFilter struct {
	Min *float64
	Max *float64
}

// FilterFor builds a closed DepthFilter from a depth range.
func FilterFor(r complog.DepthRange) DepthFilter {
	lo, hi := r.Min, r.Max
	return DepthFilter{Min: &lo, Max: &hi}
}

type wellListResponse struct {
	Status string `json:"status"`
	Wells  []Well `json:"wells"`
}

type curveListResponse struct {
	Status string      `json:"status"`
	Curves []CurveInfo `json:"curves"`
}

type curveDataResponse struct {
	Status string                      `json:"status"`
	Data   map[string][]complog.Sample `json:"data"`
}

type layersResponse struct {
	Status string          `json:"status"`
	Layers []complog.Layer `json:"layers"`
}

type lithologyResponse struct {
	Status    string                      `json:"status"`
	Lithology []complog.LithologyInterval `json:"lithology"`
}

type interpretationResponse struct {
	Status          string                   `json:"status"`
	Interpretations []complog.Interpretation `json:"interpretations"`
}

type discreteCurvesResponse struct {
	Status         string                      `json:"status"`
	DiscreteCurves map[string][]complog.Sample `json:"discrete_curves"`
}
