package crt

// Parameter keys as they appear in options files
const (
	KeyCurvature         = "curvature"
	KeyScanlineIntensity = "scanlineIntensity"
	KeyScanlineFreq      = "scanlineFreq"
	KeyWobbleAmp         = "wobbleAmp"
	KeyWobbleFreq        = "wobbleFreq"
	KeyVignette          = "vignette"
	KeyDesaturate        = "desaturate"
	KeyGamma             = "gamma"
	KeyMaskStrength      = "maskStrength"
	KeyNoise             = "noise"
)

// Uniform names read by the shading program. Kage only binds exported
// (capitalized) names.
const (
	UniformTime              = "Time"
	UniformResolution        = "Resolution"
	UniformCurvature         = "Curvature"
	UniformScanlineIntensity = "ScanlineIntensity"
	UniformScanlineFreq      = "ScanlineFreq"
	UniformWobbleAmp         = "WobbleAmp"
	UniformWobbleFreq        = "WobbleFreq"
	UniformVignette          = "VignetteAmt"
	UniformDesaturate        = "DesaturateAmt"
	UniformGamma             = "GammaAmt"
	UniformMaskStrength      = "MaskStrength"
	UniformNoise             = "NoiseAmt"
)

// ParamInfo describes one tunable knob
type ParamInfo struct {
	Key         string  // Options file key
	Uniform     string  // Shader uniform name
	Name        string  // Display name for tooling
	Description string  // Brief description of the knob
	Min         float64 // Nominal lower bound (not enforced)
	Max         float64 // Nominal upper bound (not enforced)
	Step        float64 // Suggested increment for interactive tuning
}

// AvailableParams lists every knob in uniform push order
var AvailableParams = []ParamInfo{
	{
		Key:         KeyCurvature,
		Uniform:     UniformCurvature,
		Name:        "Curvature",
		Description: "Barrel distortion of the tube glass",
		Min:         0,
		Max:         0.4,
		Step:        0.01,
	},
	{
		Key:         KeyScanlineIntensity,
		Uniform:     UniformScanlineIntensity,
		Name:        "Scanline Intensity",
		Description: "Darkness of the gaps between scanlines",
		Min:         0,
		Max:         0.5,
		Step:        0.01,
	},
	{
		Key:         KeyScanlineFreq,
		Uniform:     UniformScanlineFreq,
		Name:        "Scanline Frequency",
		Description: "Scanlines per output pixel row",
		Min:         1.5,
		Max:         4.0,
		Step:        0.05,
	},
	{
		Key:         KeyWobbleAmp,
		Uniform:     UniformWobbleAmp,
		Name:        "Wobble Amplitude",
		Description: "Horizontal sync jitter",
		Min:         0,
		Max:         0.003,
		Step:        0.0001,
	},
	{
		Key:         KeyWobbleFreq,
		Uniform:     UniformWobbleFreq,
		Name:        "Wobble Frequency",
		Description: "Vertical frequency of the sync jitter",
		Min:         10,
		Max:         80,
		Step:        1,
	},
	{
		Key:         KeyVignette,
		Uniform:     UniformVignette,
		Name:        "Vignette",
		Description: "Darkening toward the screen edges",
		Min:         0,
		Max:         1,
		Step:        0.05,
	},
	{
		Key:         KeyDesaturate,
		Uniform:     UniformDesaturate,
		Name:        "Desaturate",
		Description: "Blend toward grayscale",
		Min:         0,
		Max:         1,
		Step:        0.02,
	},
	{
		Key:         KeyGamma,
		Uniform:     UniformGamma,
		Name:        "Gamma",
		Description: "Output gamma exponent",
		Min:         0.8,
		Max:         1.2,
		Step:        0.01,
	},
	{
		Key:         KeyMaskStrength,
		Uniform:     UniformMaskStrength,
		Name:        "Phosphor Mask",
		Description: "Strength of the aperture grille pattern",
		Min:         0,
		Max:         0.1,
		Step:        0.005,
	},
	{
		Key:         KeyNoise,
		Uniform:     UniformNoise,
		Name:        "Noise",
		Description: "Animated static grain",
		Min:         0,
		Max:         0.3,
		Step:        0.01,
	},
}

// paramsByKey provides O(1) lookup by key
var paramsByKey map[string]ParamInfo

func init() {
	paramsByKey = make(map[string]ParamInfo, len(AvailableParams))
	for _, p := range AvailableParams {
		paramsByKey[p.Key] = p
	}
}

// GetParamInfo returns the metadata for a key
func GetParamInfo(key string) (ParamInfo, bool) {
	info, ok := paramsByKey[key]
	return info, ok
}

// OutOfRange returns the keys of p whose values fall outside their nominal
// range, in AvailableParams order. Values are left untouched.
func OutOfRange(p Params) []string {
	var keys []string
	for _, info := range AvailableParams {
		v := p.Get(info.Key)
		if v < info.Min || v > info.Max {
			keys = append(keys, info.Key)
		}
	}
	return keys
}
