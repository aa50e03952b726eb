package main

import (
	"fmt"
	"math"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/user-none/crtfx/crt"
	"github.com/user-none/crtfx/style"
)

// PanelActions are the callbacks the tuning panel triggers
type PanelActions struct {
	SetKnob    func(key string, v float64)
	Toggle     func()
	NextPreset func()
	Reset      func()
	Save       func()
	Open       func()
	NextTheme  func()
}

// paramRow is one knob: name, slider and value readout
type paramRow struct {
	info   crt.ParamInfo
	name   *widget.Text
	slider *widget.Slider
	value  *widget.Text

	// Value the slider position was last synced from
	current float64
}

// TuningPanel is the on-screen knob editor. Slider moves go through
// PanelActions.SetKnob; Sync pulls the knob values back in.
type TuningPanel struct {
	ui      *ebitenui.UI
	actions PanelActions
	status  *widget.Text
	rows    []*paramRow
}

// NewTuningPanel builds the panel with the current style theme
func NewTuningPanel(actions PanelActions) *TuningPanel {
	p := &TuningPanel{actions: actions}

	root := style.RootContainer()
	panel := style.SidePanel()

	p.status = style.Label("", style.Accent)
	panel.AddChild(p.status)

	nameWidth := 0
	for _, info := range crt.AvailableParams {
		nameWidth = max(nameWidth, int(math.Ceil(style.MeasureWidth(info.Name))))
	}

	for _, info := range crt.AvailableParams {
		panel.AddChild(p.buildRow(info, nameWidth))
	}

	buttons := style.ButtonRow()
	buttons.AddChild(style.TextButton("On/Off", func(*widget.ButtonClickedEventArgs) { call(actions.Toggle) }))
	buttons.AddChild(style.TextButton("Preset", func(*widget.ButtonClickedEventArgs) { call(actions.NextPreset) }))
	buttons.AddChild(style.TextButton("Reset", func(*widget.ButtonClickedEventArgs) { call(actions.Reset) }))
	panel.AddChild(buttons)

	files := style.ButtonRow()
	files.AddChild(style.TextButton("Save", func(*widget.ButtonClickedEventArgs) { call(actions.Save) }))
	files.AddChild(style.TextButton("Open...", func(*widget.ButtonClickedEventArgs) { call(actions.Open) }))
	files.AddChild(style.TextButton("Theme", func(*widget.ButtonClickedEventArgs) { call(actions.NextTheme) }))
	panel.AddChild(files)

	panel.AddChild(style.Label(keyHelp, style.TextSecondary))

	root.AddChild(panel)
	p.ui = &ebitenui.UI{Container: root}
	return p
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}

func (p *TuningPanel) buildRow(info crt.ParamInfo, nameWidth int) *widget.Container {
	row := &paramRow{info: info}

	container := style.SliderRow()
	row.name = style.FixedLabel(info.Name, style.Text, nameWidth)
	container.AddChild(row.name)

	row.slider = style.HorizontalSlider(sliderSteps(info), func(args *widget.SliderChangedEventArgs) {
		p.onSlider(row, args.Current)
	})
	container.AddChild(row.slider)

	row.value = style.FixedLabel("", style.Text, style.ValueWidth)
	container.AddChild(row.value)

	p.rows = append(p.rows, row)
	return container
}

// onSlider forwards a user move. Positions that match the synced value are
// echoes of Sync and are dropped.
func (p *TuningPanel) onSlider(row *paramRow, pos int) {
	if pos == sliderPos(row.info, row.current) {
		return
	}
	v := sliderValue(row.info, pos)
	row.current = v
	if p.actions.SetKnob != nil {
		p.actions.SetKnob(row.info.Key, v)
	}
}

// Sync updates sliders and labels from params
func (p *TuningPanel) Sync(params crt.Params, selected int, enabled bool, preset string) {
	outOfRange := make(map[string]bool)
	for _, key := range crt.OutOfRange(params) {
		outOfRange[key] = true
	}

	for i, row := range p.rows {
		v := params.Get(row.info.Key)
		row.current = v
		row.slider.Current = sliderPos(row.info, v)
		row.value.Label = formatValue(row.info, v)

		if outOfRange[row.info.Key] {
			row.value.SetColor(style.Warning)
		} else {
			row.value.SetColor(style.Text)
		}
		if i == selected {
			row.name.SetColor(style.Accent)
		} else {
			row.name.SetColor(style.Text)
		}
	}

	if enabled {
		p.status.Label = "CRT ON - " + preset
	} else {
		p.status.Label = "CRT OFF"
	}
}

// Update runs the widget tree's input handling
func (p *TuningPanel) Update() {
	p.ui.Update()
}

// Draw renders the panel on top of screen
func (p *TuningPanel) Draw(screen *ebiten.Image) {
	p.ui.Draw(screen)
}

// sliderSteps is the number of Step increments between Min and Max
func sliderSteps(info crt.ParamInfo) int {
	if info.Step <= 0 {
		return 1
	}
	return max(int(math.Round((info.Max-info.Min)/info.Step)), 1)
}

// sliderPos maps v to the nearest slider position, clamped to the track
func sliderPos(info crt.ParamInfo, v float64) int {
	steps := sliderSteps(info)
	span := info.Max - info.Min
	if span <= 0 {
		return 0
	}
	pos := int(math.Round((v - info.Min) / span * float64(steps)))
	return min(max(pos, 0), steps)
}

// sliderValue maps a slider position back to a knob value
func sliderValue(info crt.ParamInfo, pos int) float64 {
	steps := sliderSteps(info)
	v := info.Min + (info.Max-info.Min)*float64(pos)/float64(steps)
	// Trim float noise from the division so saved files stay readable
	return math.Round(v*1e6) / 1e6
}

// formatValue prints v with as many decimals as the knob's step needs
func formatValue(info crt.ParamInfo, v float64) string {
	decimals := 0
	for s := info.Step; decimals < 6 && math.Abs(s-math.Round(s)) > 1e-9; s *= 10 {
		decimals++
	}
	return fmt.Sprintf("%.*f", decimals, v)
}
