package style

import (
	"image/color"

	"github.com/ebitenui/ebitenui/widget"
)

// Layout values in pixels
const (
	PanelPadding  = 12
	PanelMargin   = 12
	SmallSpacing  = 6
	ButtonPadding = 6
	SliderWidth   = 180
	SliderHeight  = 14
	SliderHandle  = 10
	ValueWidth    = 64
)

// RootContainer creates a transparent full-screen container that anchors
// its children
func RootContainer() *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(PanelMargin)),
		)),
	)
}

// SidePanel creates a vertical panel anchored to the left edge, centered
// vertically
func SidePanel() *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(PanelImage()),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(PanelPadding)),
			widget.RowLayoutOpts.Spacing(SmallSpacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
}

// Label creates a single line of panel text
func Label(s string, c color.Color) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(s, FontFace(), c),
	)
}

// FixedLabel creates a label with a minimum width so columns line up
func FixedLabel(s string, c color.Color, width int) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(s, FontFace(), c),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(width, 0),
			widget.WidgetOpts.LayoutData(widget.GridLayoutData{
				VerticalPosition: widget.GridLayoutPositionCenter,
			}),
		),
	)
}

// TextButton creates a standard text button
func TextButton(label string, handler func(*widget.ButtonClickedEventArgs)) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(ButtonImage()),
		widget.ButtonOpts.Text(label, FontFace(), ButtonTextColor()),
		widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(ButtonPadding)),
		widget.ButtonOpts.ClickedHandler(handler),
	)
}

// ButtonRow creates a horizontal container for buttons
func ButtonRow() *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(SmallSpacing),
		)),
	)
}

// SliderRow creates a three-column row: name, slider, value
func SliderRow() *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(3),
			widget.GridLayoutOpts.Stretch([]bool{false, true, false}, []bool{false}),
			widget.GridLayoutOpts.Spacing(SmallSpacing, 0),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
		),
	)
}

// HorizontalSlider creates a slider over [0, steps]. The slider is left
// out of tab order so arrow keys stay with the game.
func HorizontalSlider(steps int, handler func(*widget.SliderChangedEventArgs)) *widget.Slider {
	return widget.NewSlider(
		widget.SliderOpts.TabOrder(-1),
		widget.SliderOpts.Direction(widget.DirectionHorizontal),
		widget.SliderOpts.MinMax(0, steps),
		widget.SliderOpts.Images(SliderTrackImage(), SliderButtonImage()),
		widget.SliderOpts.FixedHandleSize(SliderHandle),
		widget.SliderOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(SliderWidth, SliderHeight),
			widget.WidgetOpts.LayoutData(widget.GridLayoutData{
				VerticalPosition: widget.GridLayoutPositionCenter,
			}),
		),
		widget.SliderOpts.ChangedHandler(handler),
	)
}
