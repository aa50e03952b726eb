package style

import (
	"bytes"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Panel colors (package-level variables updated by ApplyTheme)
var (
	Background    = color.NRGBA{0x10, 0x12, 0x18, 0xff}
	Surface       = color.NRGBA{0x20, 0x24, 0x30, 0xff}
	Primary       = color.NRGBA{0x3c, 0x6e, 0x8a, 0xff}
	PrimaryHover  = color.NRGBA{0x4c, 0x80, 0x9c, 0xff}
	Text          = color.NRGBA{0xee, 0xee, 0xee, 0xff}
	TextSecondary = color.NRGBA{0x99, 0x99, 0xa4, 0xff}
	Accent        = color.NRGBA{0x7c, 0xd8, 0xff, 0xff}
	Warning       = color.NRGBA{0xff, 0xa0, 0x40, 0xff} // Knob outside its nominal range
	Border        = color.NRGBA{0x34, 0x38, 0x48, 0xff}
)

// Theme holds the color set of the tuning panel
type Theme struct {
	Name          string
	Background    color.NRGBA
	Surface       color.NRGBA
	Primary       color.NRGBA
	PrimaryHover  color.NRGBA
	Text          color.NRGBA
	TextSecondary color.NRGBA
	Accent        color.NRGBA
	Warning       color.NRGBA
	Border        color.NRGBA
}

// Predefined themes
var (
	ThemeDefault = Theme{
		Name:          "Default",
		Background:    color.NRGBA{0x10, 0x12, 0x18, 0xff},
		Surface:       color.NRGBA{0x20, 0x24, 0x30, 0xff},
		Primary:       color.NRGBA{0x3c, 0x6e, 0x8a, 0xff},
		PrimaryHover:  color.NRGBA{0x4c, 0x80, 0x9c, 0xff},
		Text:          color.NRGBA{0xee, 0xee, 0xee, 0xff},
		TextSecondary: color.NRGBA{0x99, 0x99, 0xa4, 0xff},
		Accent:        color.NRGBA{0x7c, 0xd8, 0xff, 0xff},
		Warning:       color.NRGBA{0xff, 0xa0, 0x40, 0xff},
		Border:        color.NRGBA{0x34, 0x38, 0x48, 0xff},
	}

	ThemePhosphor = Theme{
		Name:          "Phosphor",
		Background:    color.NRGBA{0x04, 0x14, 0x06, 0xff}, // Unlit tube
		Surface:       color.NRGBA{0x0a, 0x26, 0x0e, 0xff},
		Primary:       color.NRGBA{0x2a, 0x70, 0x30, 0xff},
		PrimaryHover:  color.NRGBA{0x3c, 0x8c, 0x42, 0xff},
		Text:          color.NRGBA{0x66, 0xff, 0x66, 0xff}, // P1 green
		TextSecondary: color.NRGBA{0x33, 0xa0, 0x33, 0xff},
		Accent:        color.NRGBA{0xb0, 0xff, 0xb0, 0xff},
		Warning:       color.NRGBA{0xff, 0xe0, 0x40, 0xff},
		Border:        color.NRGBA{0x16, 0x40, 0x1a, 0xff},
	}

	ThemeAmber = Theme{
		Name:          "Amber",
		Background:    color.NRGBA{0x16, 0x0c, 0x02, 0xff},
		Surface:       color.NRGBA{0x2a, 0x18, 0x06, 0xff},
		Primary:       color.NRGBA{0x8a, 0x50, 0x10, 0xff},
		PrimaryHover:  color.NRGBA{0xa6, 0x64, 0x18, 0xff},
		Text:          color.NRGBA{0xff, 0xb0, 0x00, 0xff}, // P3 amber
		TextSecondary: color.NRGBA{0xb0, 0x78, 0x10, 0xff},
		Accent:        color.NRGBA{0xff, 0xd8, 0x80, 0xff},
		Warning:       color.NRGBA{0xff, 0x50, 0x30, 0xff},
		Border:        color.NRGBA{0x48, 0x2c, 0x0a, 0xff},
	}

	// AvailableThemes lists all themes in cycle order
	AvailableThemes = []Theme{ThemeDefault, ThemePhosphor, ThemeAmber}

	// CurrentThemeName tracks the active theme name
	CurrentThemeName = "Default"
)

// ThemeNames returns the list of valid theme names
func ThemeNames() []string {
	names := make([]string, len(AvailableThemes))
	for i, t := range AvailableThemes {
		names[i] = t.Name
	}
	return names
}

// GetThemeByName returns theme by name, or ThemeDefault if not found
func GetThemeByName(name string) Theme {
	for _, t := range AvailableThemes {
		if t.Name == name {
			return t
		}
	}
	return ThemeDefault
}

// NextTheme returns the theme after the current one, wrapping around
func NextTheme() Theme {
	for i, t := range AvailableThemes {
		if t.Name == CurrentThemeName {
			return AvailableThemes[(i+1)%len(AvailableThemes)]
		}
	}
	return ThemeDefault
}

// ApplyTheme updates package-level color variables from a theme. Widgets
// built earlier keep their colors until rebuilt.
func ApplyTheme(theme Theme) {
	Background = theme.Background
	Surface = theme.Surface
	Primary = theme.Primary
	PrimaryHover = theme.PrimaryHover
	Text = theme.Text
	TextSecondary = theme.TextSecondary
	Accent = theme.Accent
	Warning = theme.Warning
	Border = theme.Border
	CurrentThemeName = theme.Name
}

// baseFontSize is the panel font size in points
const baseFontSize = 13

// fontSource is the cached TrueType source shared by all faces
var fontSource *text.GoTextFaceSource

// fontFace is the cached panel face. Widgets hold &fontFace.
var fontFace text.Face

func loadFontSource() *text.GoTextFaceSource {
	if fontSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			log.Printf("Failed to load font source: %v", err)
			return nil
		}
		fontSource = source
	}
	return fontSource
}

// FontFace returns the face used for panel text
func FontFace() *text.Face {
	if fontFace == nil {
		if source := loadFontSource(); source != nil {
			fontFace = &text.GoTextFace{
				Source: source,
				Size:   baseFontSize,
			}
		}
	}
	return &fontFace
}

// MeasureWidth returns the pixel width of s in the panel face
func MeasureWidth(s string) float64 {
	face := *FontFace()
	if face == nil {
		return 0
	}
	w, _ := text.Measure(s, face, 0)
	return w
}

// PanelImage creates the translucent panel background
func PanelImage() *image.NineSlice {
	c := Background
	c.A = 0xd8
	return image.NewNineSliceColor(c)
}

// ButtonImage creates a standard button image set
func ButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(Surface),
		Hover:    image.NewNineSliceColor(PrimaryHover),
		Pressed:  image.NewNineSliceColor(Primary),
		Disabled: image.NewNineSliceColor(Border),
	}
}

// ButtonTextColor returns the standard button text colors
func ButtonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:     Text,
		Disabled: TextSecondary,
	}
}

// SliderButtonImage creates a slider handle image set
func SliderButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(Primary),
		Hover:    image.NewNineSliceColor(PrimaryHover),
		Pressed:  image.NewNineSliceColor(Primary),
		Disabled: image.NewNineSliceColor(Border),
	}
}

// SliderTrackImage creates a slider track image set
func SliderTrackImage() *widget.SliderTrackImage {
	return &widget.SliderTrackImage{
		Idle:  image.NewNineSliceColor(Border),
		Hover: image.NewNineSliceColor(Border),
	}
}
