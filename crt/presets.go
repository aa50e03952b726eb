package crt

// Preset is a named option set
type Preset struct {
	ID          string   // Unique identifier used in config
	Name        string   // Display name for UI
	Description string   // Brief description of the look
	Options     *Options // Partial record merged over the defaults
}

// Presets lists the built-in looks. The first entry is the default look.
var Presets = []Preset{
	{
		ID:          "default",
		Name:        "Default",
		Description: "Gentle curvature with light scanlines",
		Options:     &Options{},
	},
	{
		ID:          "subtle",
		Name:        "Subtle",
		Description: "Flat glass, faint scanlines, no wobble",
		Options: &Options{
			Curvature:         Float(0.05),
			ScanlineIntensity: Float(0.08),
			WobbleAmp:         Float(0),
			Vignette:          Float(0.1),
			Desaturate:        Float(0.02),
			Gamma:             Float(1.0),
			MaskStrength:      Float(0.02),
		},
	},
	{
		ID:          "arcade",
		Name:        "Arcade",
		Description: "Strong tube curve and heavy scanlines",
		Options: &Options{
			Curvature:         Float(0.3),
			ScanlineIntensity: Float(0.35),
			ScanlineFreq:      Float(2.0),
			Vignette:          Float(0.45),
			Desaturate:        Float(0.0),
			Gamma:             Float(1.1),
			MaskStrength:      Float(0.08),
		},
	},
	{
		ID:          "broken-tv",
		Name:        "Broken TV",
		Description: "Sync wobble and static on a worn set",
		Options: &Options{
			Curvature:         Float(0.2),
			ScanlineIntensity: Float(0.25),
			WobbleAmp:         Float(0.003),
			WobbleFreq:        Float(70),
			Vignette:          Float(0.6),
			Desaturate:        Float(0.35),
			Noise:             Float(0.12),
		},
	},
	{
		ID:          "monochrome",
		Name:        "Monochrome",
		Description: "Black and white monitor",
		Options: &Options{
			Desaturate:   Float(1.0),
			Gamma:        Float(1.15),
			MaskStrength: Float(0),
			Noise:        Float(0.03),
		},
	},
}

// PresetByID returns the preset with the given ID, or nil if not found
func PresetByID(id string) *Preset {
	for i := range Presets {
		if Presets[i].ID == id {
			return &Presets[i]
		}
	}
	return nil
}

// PresetIDs returns preset IDs in list order
func PresetIDs() []string {
	ids := make([]string, len(Presets))
	for i, p := range Presets {
		ids[i] = p.ID
	}
	return ids
}
