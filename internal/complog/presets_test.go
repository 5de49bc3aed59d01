package complog

import "testing"

func TestDefaultCurveStyle(t *testing.T) {
	rt := DefaultCurveStyle("RT")
	if !rt.Logarithmic || rt.Min != 0.1 || rt.Max != 10000 || rt.Unit != "Ωm" {
		t.Fatalf("RT style = %+v", rt)
	}
	unknown := DefaultCurveStyle("XYZ")
	if unknown.Color != "#000000" || unknown.Min != 0 || unknown.Max != 100 || unknown.LineStyle != LineSolid {
		t.Fatalf("fallback style = %+v", unknown)
	}
}

func TestSuggestedTracks(t *testing.T) {
	tracks := SuggestedTracks([]string{"GR", "AC", "RT", "深侧向", "DEN", "井径"})

	wantTypes := []TrackType{TrackFormation, TrackDepth, TrackLithology, TrackCurve, TrackCurve, TrackCurve, TrackCurve, TrackInterpretation}
	if len(tracks) != len(wantTypes) {
		t.Fatalf("got %d tracks, want %d", len(tracks), len(wantTypes))
	}
	seen := make(map[string]bool)
	for i, track := range tracks {
		if track.Type != wantTypes[i] {
			t.Fatalf("track %d type = %s, want %s", i, track.Type, wantTypes[i])
		}
		if !track.Visible || track.Width <= 0 {
			t.Fatalf("track %d = %+v, want visible with width", i, track)
		}
		if seen[track.ID] {
			t.Fatalf("duplicate track id %q", track.ID)
		}
		seen[track.ID] = true
	}

	calSP := tracks[3].Curves
	if len(calSP) != 1 || calSP[0].CurveName != "井径" {
		t.Fatalf("CAL/SP curves = %+v", calSP)
	}
	grAC := tracks[4].Curves
	if len(grAC) != 2 || grAC[0].CurveName != "GR" || grAC[1].CurveName != "AC" {
		t.Fatalf("GR/AC curves = %+v", grAC)
	}
	res := tracks[5].Curves
	if len(res) != 2 || res[0].CurveName != "深侧向" || res[1].CurveName != "RT" {
		t.Fatalf("resistivity curves = %+v", res)
	}
}

func TestSuggestedTracksWithoutCurves(t *testing.T) {
	tracks := SuggestedTracks(nil)
	if len(tracks) != 4 {
		t.Fatalf("got %d tracks, want formation, depth, lithology and interpretation", len(tracks))
	}
}
