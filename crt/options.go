package crt

// Params is a fully populated set of effect parameters. Every value is
// forwarded to the shading program as-is; nothing is clamped here.
type Params struct {
	Curvature         float64 `json:"curvature" yaml:"curvature" toml:"curvature"`
	ScanlineIntensity float64 `json:"scanlineIntensity" yaml:"scanlineIntensity" toml:"scanlineIntensity"`
	ScanlineFreq      float64 `json:"scanlineFreq" yaml:"scanlineFreq" toml:"scanlineFreq"`
	WobbleAmp         float64 `json:"wobbleAmp" yaml:"wobbleAmp" toml:"wobbleAmp"`
	WobbleFreq        float64 `json:"wobbleFreq" yaml:"wobbleFreq" toml:"wobbleFreq"`
	Vignette          float64 `json:"vignette" yaml:"vignette" toml:"vignette"`
	Desaturate        float64 `json:"desaturate" yaml:"desaturate" toml:"desaturate"`
	Gamma             float64 `json:"gamma" yaml:"gamma" toml:"gamma"`
	MaskStrength      float64 `json:"maskStrength" yaml:"maskStrength" toml:"maskStrength"`
	Noise             float64 `json:"noise" yaml:"noise" toml:"noise"`
}

// Options is the caller-facing partial record. A nil field takes the
// default value when merged.
type Options struct {
	Curvature         *float64 `json:"curvature,omitempty" yaml:"curvature,omitempty" toml:"curvature,omitempty"`
	ScanlineIntensity *float64 `json:"scanlineIntensity,omitempty" yaml:"scanlineIntensity,omitempty" toml:"scanlineIntensity,omitempty"`
	ScanlineFreq      *float64 `json:"scanlineFreq,omitempty" yaml:"scanlineFreq,omitempty" toml:"scanlineFreq,omitempty"`
	WobbleAmp         *float64 `json:"wobbleAmp,omitempty" yaml:"wobbleAmp,omitempty" toml:"wobbleAmp,omitempty"`
	WobbleFreq        *float64 `json:"wobbleFreq,omitempty" yaml:"wobbleFreq,omitempty" toml:"wobbleFreq,omitempty"`
	Vignette          *float64 `json:"vignette,omitempty" yaml:"vignette,omitempty" toml:"vignette,omitempty"`
	Desaturate        *float64 `json:"desaturate,omitempty" yaml:"desaturate,omitempty" toml:"desaturate,omitempty"`
	Gamma             *float64 `json:"gamma,omitempty" yaml:"gamma,omitempty" toml:"gamma,omitempty"`
	MaskStrength      *float64 `json:"maskStrength,omitempty" yaml:"maskStrength,omitempty" toml:"maskStrength,omitempty"`
	Noise             *float64 `json:"noise,omitempty" yaml:"noise,omitempty" toml:"noise,omitempty"`
}

// Float returns a pointer to v for building Options literals.
func Float(v float64) *float64 {
	return &v
}

// defaults is the canonical default record. Noise defaults to off.
var defaults = Params{
	Curvature:         0.15,
	ScanlineIntensity: 0.15,
	ScanlineFreq:      1.9,
	WobbleAmp:         0.0008,
	WobbleFreq:        40.0,
	Vignette:          0.25,
	Desaturate:        0.08,
	Gamma:             1.05,
	MaskStrength:      0.04,
	Noise:             0.0,
}

// Defaults returns the default parameter record.
func Defaults() Params {
	return defaults
}

// Merge completes o against the defaults. Fields set in o win; nil fields
// (or a nil o) take the default.
func Merge(o *Options) Params {
	p := defaults
	if o == nil {
		return p
	}
	pick(&p.Curvature, o.Curvature)
	pick(&p.ScanlineIntensity, o.ScanlineIntensity)
	pick(&p.ScanlineFreq, o.ScanlineFreq)
	pick(&p.WobbleAmp, o.WobbleAmp)
	pick(&p.WobbleFreq, o.WobbleFreq)
	pick(&p.Vignette, o.Vignette)
	pick(&p.Desaturate, o.Desaturate)
	pick(&p.Gamma, o.Gamma)
	pick(&p.MaskStrength, o.MaskStrength)
	pick(&p.Noise, o.Noise)
	return p
}

func pick(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

// Options returns p as a partial record with every field set.
func (p Params) Options() *Options {
	return &Options{
		Curvature:         Float(p.Curvature),
		ScanlineIntensity: Float(p.ScanlineIntensity),
		ScanlineFreq:      Float(p.ScanlineFreq),
		WobbleAmp:         Float(p.WobbleAmp),
		WobbleFreq:        Float(p.WobbleFreq),
		Vignette:          Float(p.Vignette),
		Desaturate:        Float(p.Desaturate),
		Gamma:             Float(p.Gamma),
		MaskStrength:      Float(p.MaskStrength),
		Noise:             Float(p.Noise),
	}
}

// Uniforms maps each knob's uniform name to its value.
func (p Params) Uniforms() map[string]float32 {
	u := make(map[string]float32, len(AvailableParams))
	for _, info := range AvailableParams {
		u[info.Uniform] = float32(p.Get(info.Key))
	}
	return u
}

// Get returns the value of the knob with the given key (0 if unknown).
func (p Params) Get(key string) float64 {
	if f := p.field(key); f != nil {
		return *f
	}
	return 0
}

// Set assigns the knob with the given key. Reports false for unknown keys.
func (p *Params) Set(key string, v float64) bool {
	f := p.field(key)
	if f == nil {
		return false
	}
	*f = v
	return true
}

func (p *Params) field(key string) *float64 {
	switch key {
	case KeyCurvature:
		return &p.Curvature
	case KeyScanlineIntensity:
		return &p.ScanlineIntensity
	case KeyScanlineFreq:
		return &p.ScanlineFreq
	case KeyWobbleAmp:
		return &p.WobbleAmp
	case KeyWobbleFreq:
		return &p.WobbleFreq
	case KeyVignette:
		return &p.Vignette
	case KeyDesaturate:
		return &p.Desaturate
	case KeyGamma:
		return &p.Gamma
	case KeyMaskStrength:
		return &p.MaskStrength
	case KeyNoise:
		return &p.Noise
	}
	return nil
}
