package crt

import (
	"encoding/json"
	"testing"
)

func TestMergeNilAndEmpty(t *testing.T) {
	if got := Merge(nil); got != Defaults() {
		t.Errorf("Merge(nil) = %+v, want %+v", got, Defaults())
	}
	if got := Merge(&Options{}); got != Defaults() {
		t.Errorf("Merge(&Options{}) = %+v, want %+v", got, Defaults())
	}
}

func TestMergeFullRecordUnchanged(t *testing.T) {
	full := Params{
		Curvature:         0.4,
		ScanlineIntensity: 0.5,
		ScanlineFreq:      3.0,
		WobbleAmp:         0.002,
		WobbleFreq:        20,
		Vignette:          0.9,
		Desaturate:        0.5,
		Gamma:             0.8,
		MaskStrength:      0.1,
		Noise:             0.3,
	}
	if got := Merge(full.Options()); got != full {
		t.Errorf("Merge(full) = %+v, want %+v", got, full)
	}
}

func TestMergePartial(t *testing.T) {
	got := Merge(&Options{Curvature: Float(0.3)})

	want := Defaults()
	want.Curvature = 0.3
	if got != want {
		t.Errorf("Merge(curvature=0.3) = %+v, want %+v", got, want)
	}
	if got.ScanlineIntensity != 0.15 {
		t.Errorf("ScanlineIntensity = %v, want 0.15", got.ScanlineIntensity)
	}
}

func TestMergeExplicitZeroWins(t *testing.T) {
	got := Merge(&Options{Curvature: Float(0), Gamma: Float(0)})
	if got.Curvature != 0 || got.Gamma != 0 {
		t.Errorf("explicit zeros lost: curvature=%v gamma=%v", got.Curvature, got.Gamma)
	}
}

func TestMergeDoesNotClamp(t *testing.T) {
	got := Merge(&Options{Noise: Float(5), Curvature: Float(-1)})
	if got.Noise != 5 || got.Curvature != -1 {
		t.Errorf("values were modified: noise=%v curvature=%v", got.Noise, got.Curvature)
	}
}

func TestDefaultValues(t *testing.T) {
	tests := []struct {
		key      string
		expected float64
	}{
		{KeyCurvature, 0.15},
		{KeyScanlineIntensity, 0.15},
		{KeyScanlineFreq, 1.9},
		{KeyWobbleAmp, 0.0008},
		{KeyWobbleFreq, 40},
		{KeyVignette, 0.25},
		{KeyDesaturate, 0.08},
		{KeyGamma, 1.05},
		{KeyMaskStrength, 0.04},
		{KeyNoise, 0},
	}

	d := Defaults()
	for _, tc := range tests {
		if got := d.Get(tc.key); got != tc.expected {
			t.Errorf("Defaults().Get(%q) = %v, want %v", tc.key, got, tc.expected)
		}
	}
}

func TestOptionsJSONAbsentKeys(t *testing.T) {
	var o Options
	if err := json.Unmarshal([]byte(`{"curvature": 0.3, "noise": 0}`), &o); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if o.ScanlineIntensity != nil {
		t.Error("absent key should stay nil")
	}
	if o.Noise == nil || *o.Noise != 0 {
		t.Error("explicit zero should be present")
	}

	want := Defaults()
	want.Curvature = 0.3
	if got := Merge(&o); got != want {
		t.Errorf("Merge = %+v, want %+v", got, want)
	}
}

func TestParamsSetGet(t *testing.T) {
	var p Params
	for i, info := range AvailableParams {
		if !p.Set(info.Key, float64(i+1)) {
			t.Errorf("Set(%q) reported unknown key", info.Key)
		}
	}
	for i, info := range AvailableParams {
		if got := p.Get(info.Key); got != float64(i+1) {
			t.Errorf("Get(%q) = %v, want %v", info.Key, got, float64(i+1))
		}
	}
	if p.Set("unknown", 1) {
		t.Error("Set(unknown) should report false")
	}
	if got := p.Get("unknown"); got != 0 {
		t.Errorf("Get(unknown) = %v, want 0", got)
	}
}

func TestParamsUniforms(t *testing.T) {
	u := Defaults().Uniforms()
	if len(u) != 10 {
		t.Fatalf("uniform count = %d, want 10", len(u))
	}
	if u[UniformVignette] != float32(0.25) {
		t.Errorf("%s = %v, want 0.25", UniformVignette, u[UniformVignette])
	}
	if u[UniformGamma] != float32(1.05) {
		t.Errorf("%s = %v, want 1.05", UniformGamma, u[UniformGamma])
	}
}
