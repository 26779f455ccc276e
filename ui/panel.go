package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// PanelCamera is one camera row in the rig panel.
type PanelCamera struct {
	Slot  int
	Label string
}

// RigPanel holds the ebitenui control surface for the rig: one cut button per
// camera plus projection toggle and save/load controls.
type RigPanel struct {
	UI *ebitenui.UI

	// Callbacks
	OnActivate   func(slot int)
	OnToggleKind func()
	OnPunchIn    func()
	OnSaveRig    func()
	OnLoadRig    func()

	cameras     []PanelCamera
	camButtons  map[int]*widget.Button
	statusLabel *widget.Label

	normalFace text.Face
	smallFace  text.Face
}

// NewRigPanel creates the panel for the given cameras
func NewRigPanel(cameras []PanelCamera, onActivate func(slot int), onToggleKind, onPunchIn, onSaveRig, onLoadRig func()) *RigPanel {
	p := &RigPanel{
		OnActivate:   onActivate,
		OnToggleKind: onToggleKind,
		OnPunchIn:    onPunchIn,
		OnSaveRig:    onSaveRig,
		OnLoadRig:    onLoadRig,
		cameras:      cameras,
		camButtons:   make(map[int]*widget.Button),
	}

	p.loadFonts()
	p.buildUI()

	return p
}

func (p *RigPanel) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	p.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
	p.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
}

func (p *RigPanel) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}
	panelContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 200})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(3),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	title := widget.NewLabel(
		widget.LabelOpts.Text("RIG", &p.normalFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 255, 255},
		}),
	)
	panelContainer.AddChild(title)

	for _, cam := range p.cameras {
		slot := cam.Slot // Capture for closure
		button := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(90, 20),
			),
			widget.ButtonOpts.Image(p.buttonImage()),
			widget.ButtonOpts.Text(fmt.Sprintf("[%d] %s", cam.Slot, cam.Label), &p.smallFace, &widget.ButtonTextColor{
				Idle:    color.RGBA{255, 255, 255, 255},
				Hover:   color.RGBA{255, 255, 200, 255},
				Pressed: color.RGBA{200, 200, 200, 255},
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if p.OnActivate != nil {
					p.OnActivate(slot)
				}
			}),
		)
		p.camButtons[cam.Slot] = button
		panelContainer.AddChild(button)
	}

	toggleButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(90, 20)),
		widget.ButtonOpts.Image(p.buttonImage()),
		widget.ButtonOpts.Text("ortho/persp", &p.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{200, 200, 200, 255},
			Hover:   color.RGBA{255, 255, 255, 255},
			Pressed: color.RGBA{150, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if p.OnToggleKind != nil {
				p.OnToggleKind()
			}
		}),
	)
	panelContainer.AddChild(toggleButton)

	punchButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(90, 20)),
		widget.ButtonOpts.Image(p.buttonImage()),
		widget.ButtonOpts.Text("punch in", &p.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{200, 200, 200, 255},
			Hover:   color.RGBA{255, 255, 255, 255},
			Pressed: color.RGBA{150, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if p.OnPunchIn != nil {
				p.OnPunchIn()
			}
		}),
	)
	panelContainer.AddChild(punchButton)

	saveButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(90, 20)),
		widget.ButtonOpts.Image(p.buttonImage()),
		widget.ButtonOpts.Text("save rig", &p.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{200, 200, 200, 255},
			Hover:   color.RGBA{255, 255, 255, 255},
			Pressed: color.RGBA{150, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if p.OnSaveRig != nil {
				p.OnSaveRig()
			}
		}),
	)
	panelContainer.AddChild(saveButton)

	loadButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(90, 20)),
		widget.ButtonOpts.Image(p.buttonImage()),
		widget.ButtonOpts.Text("load rig", &p.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{200, 200, 200, 255},
			Hover:   color.RGBA{255, 255, 255, 255},
			Pressed: color.RGBA{150, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if p.OnLoadRig != nil {
				p.OnLoadRig()
			}
		}),
	)
	panelContainer.AddChild(loadButton)

	p.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &p.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 100, 255},
		}),
	)
	panelContainer.AddChild(p.statusLabel)

	rootContainer.AddChild(panelContainer)

	p.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// SetStatus updates the panel's status line.
func (p *RigPanel) SetStatus(msg string) {
	if p.statusLabel != nil {
		p.statusLabel.Label = msg
	}
}

func (p *RigPanel) Update() {
	p.UI.Update()
}

func (p *RigPanel) Draw(screen *ebiten.Image) {
	p.UI.Draw(screen)
}

func (p *RigPanel) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}
