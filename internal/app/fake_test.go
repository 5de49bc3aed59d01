package app

import (
	"context"
	"errors"
	"sync"

	"github.com/five82/strata/internal/complog"
	"github.com/five82/strata/internal/welldata"
)

var errUnavailable = errors.New("service unavailable")

// fakeService serves one well from memory.
type fakeService struct {
	mu      sync.Mutex
	curves  map[string][]complog.Sample
	units   map[string]string
	fail    bool
	filters []welldata.DepthFilter
	asked   [][]string
}

func newFakeService() *fakeService {
	gr := make([]complog.Sample, 0, 400)
	ac := make([]complog.Sample, 0, 400)
	for i := range 400 {
		depth := 1000 + float64(i)*0.5
		gr = append(gr, complog.Sample{Depth: depth, Value: 40 + float64(i%20)})
		ac = append(ac, complog.Sample{Depth: depth, Value: 200 + 2*float64(i%20)})
	}
	return &fakeService{
		curves: map[string][]complog.Sample{"GR": gr, "AC": ac},
		units:  map[string]string{"GR": "API", "AC": "μs/m"},
	}
}

func (f *fakeService) setFail(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fail = fail
}

func (f *fakeService) ListWells(ctx context.Context, workarea string) ([]welldata.Well, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return nil, errUnavailable
	}
	kb, td := 152.5, 2400.0
	return []welldata.Well{{ID: 1, Name: "W1", KB: &kb, TD: &td}, {ID: 2, Name: "W2"}}, nil
}

func (f *fakeService) ListCurves(ctx context.Context, workarea, well string) ([]welldata.CurveInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return nil, errUnavailable
	}
	var out []welldata.CurveInfo
	for _, name := range []string{"GR", "AC"} {
		out = append(out, welldata.CurveInfo{Name: name, Unit: f.units[name]})
	}
	return out, nil
}

func (f *fakeService) FetchCurveData(ctx context.Context, workarea, well string, curves []string, filter welldata.DepthFilter) (map[string][]complog.Sample, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return nil, errUnavailable
	}
	f.filters = append(f.filters, filter)
	f.asked = append(f.asked, curves)
	out := make(map[string][]complog.Sample)
	for _, name := range curves {
		samples, ok := f.curves[name]
		if !ok {
			continue
		}
		var kept []complog.Sample
		for _, s := range samples {
			if filter.Min != nil && s.Depth < *filter.Min {
				continue
			}
			if filter.Max != nil && s.Depth > *filter.Max {
				continue
			}
			kept = append(kept, s)
		}
		out[name] = kept
	}
	return out, nil
}

func (f *fakeService) FetchCompositeData(ctx context.Context, workarea, well string, curves []string, filter welldata.DepthFilter) (*complog.CompositeLogData, error) {
	samples, err := f.FetchCurveData(ctx, workarea, well, curves, filter)
	if err != nil {
		return nil, err
	}
	return &complog.CompositeLogData{
		Curves: samples,
		Layers: []complog.Layer{{Formation: "Fm1", TopDepth: 990, BottomDepth: 1100}},
	}, nil
}

func (f *fakeService) lastFilter() welldata.DepthFilter {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.filters[len(f.filters)-1]
}
