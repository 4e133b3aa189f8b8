package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// SettingsView is what the panel displays.
type SettingsView struct {
	Sensitivity   float64
	InvertY       bool
	Fullscreen    bool
	Resolution    string
	Variant       string // preference saved for the next launch
	ActiveVariant string // variant of the running controller
}

// SettingsUI is the panel shown while the pointer is released.
type SettingsUI struct {
	UI *ebitenui.UI

	OnSensitivity func(steps int)
	OnInvertY     func()
	OnVariant     func()
	OnFullscreen  func()
	OnResolution  func()
	OnResume      func()

	sensitivityLabel *widget.Label
	invertBtn        *widget.Button
	variantBtn       *widget.Button
	fullscreenBtn    *widget.Button
	resolutionBtn    *widget.Button
	noteLabel        *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewSettingsUI() *SettingsUI {
	ui := &SettingsUI{}
	ui.loadFonts()
	ui.buildUI()
	return ui
}

func (ui *SettingsUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 20}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 14}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 11}
}

func (ui *SettingsUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 12, Bottom: 12, Left: 16, Right: 16}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 45, 230})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("SETTINGS", &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))

	panel.AddChild(ui.buildSensitivityRow())

	ui.invertBtn = ui.newButton("", 220, func() { call(ui.OnInvertY) })
	panel.AddChild(ui.invertBtn)

	ui.variantBtn = ui.newButton("", 220, func() { call(ui.OnVariant) })
	panel.AddChild(ui.variantBtn)

	ui.fullscreenBtn = ui.newButton("", 220, func() { call(ui.OnFullscreen) })
	panel.AddChild(ui.fullscreenBtn)

	ui.resolutionBtn = ui.newButton("", 220, func() { call(ui.OnResolution) })
	panel.AddChild(ui.resolutionBtn)

	ui.noteLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 100, 255},
		}),
	)
	panel.AddChild(ui.noteLabel)

	resume := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(220, 30)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{40, 100, 40, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{60, 140, 60, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{30, 80, 30, 255}),
		}),
		widget.ButtonOpts.Text("Resume", &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 255, 200, 255},
			Pressed: color.RGBA{150, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			call(ui.OnResume)
		}),
	)
	panel.AddChild(resume)

	rootContainer.AddChild(panel)
	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *SettingsUI) buildSensitivityRow() *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	row.AddChild(ui.newButton("-", 30, func() { ui.stepSensitivity(-1) }))

	ui.sensitivityLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	)
	row.AddChild(ui.sensitivityLabel)

	row.AddChild(ui.newButton("+", 30, func() { ui.stepSensitivity(1) }))
	return row
}

func (ui *SettingsUI) newButton(label string, width int, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(width, 26)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		}),
		widget.ButtonOpts.Text(label, &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 220, 255, 255},
			Pressed: color.RGBA{150, 170, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (ui *SettingsUI) stepSensitivity(steps int) {
	if ui.OnSensitivity != nil {
		ui.OnSensitivity(steps)
	}
}

// Refresh rewrites every label from v.
func (ui *SettingsUI) Refresh(v SettingsView) {
	ui.sensitivityLabel.Label = fmt.Sprintf("Sensitivity %.2f", v.Sensitivity)
	ui.invertBtn.Text().Label = "Invert Y: " + onOff(v.InvertY)
	ui.variantBtn.Text().Label = "Controller: " + v.Variant
	ui.fullscreenBtn.Text().Label = "Fullscreen: " + onOff(v.Fullscreen)
	ui.resolutionBtn.Text().Label = "Window: " + v.Resolution

	ui.noteLabel.Label = ""
	if v.Variant != v.ActiveVariant {
		ui.noteLabel.Label = "Controller change applies on restart"
	}
}

func (ui *SettingsUI) Update() {
	ui.UI.Update()
}

func (ui *SettingsUI) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}

func onOff(b bool) string {
	if b {
		return "On"
	}
	return "Off"
}
