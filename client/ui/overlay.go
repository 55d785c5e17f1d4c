package ui

import (
	"image/color"

	"github.com/Quelsed/azngameahun/client/fonts"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// Screen is what the overlay shows.
type Screen int

const (
	ScreenNone Screen = iota
	ScreenStart
	ScreenGameOver
)

// Overlay is the start and game-over panel drawn over the world.
type Overlay struct {
	onStart   func()
	onRestart func()

	ui      *ebitenui.UI
	screen  Screen
	text    string
	message string
}

type NewOverlayOptions struct {
	// OnStart is called when the start button is pressed.
	OnStart func()
	// OnRestart is called when the restart button is pressed.
	OnRestart func()
}

func NewOverlay(opts NewOverlayOptions) *Overlay {
	return &Overlay{
		onStart:   opts.OnStart,
		onRestart: opts.OnRestart,
	}
}

// Show switches the overlay to screen. text is the final score line of the game-over screen.
// The widget tree is only rebuilt when something changed.
func (o *Overlay) Show(screen Screen, text string) {
	if o.ui != nil && screen == o.screen && text == o.text {
		return
	}
	o.screen = screen
	o.text = text
	o.renderUI()
}

// SetError shows err under the buttons until the next screen change.
func (o *Overlay) SetError(err error) {
	message := "Something went wrong. Please try again."
	if actionableErr, ok := err.(*ActionableError); ok {
		message = actionableErr.Message
	}
	if message == o.message {
		return
	}
	o.message = message
	o.renderUI()
}

func (o *Overlay) Visible() bool {
	return o.screen != ScreenNone
}

func (o *Overlay) renderUI() {
	if o.screen == ScreenNone {
		o.ui = nil
		return
	}

	buttonImage := &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(color.NRGBA{R: 46, G: 204, B: 113, A: 255}),
		Hover:   image.NewNineSliceColor(color.NRGBA{R: 39, G: 174, B: 96, A: 255}),
		Pressed: image.NewNineSliceColor(color.NRGBA{R: 30, G: 132, B: 73, A: 255}),
	}

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.NRGBA{A: 140})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(20),
		)),
	)
	rootContainer.AddChild(panel)

	title := "Lumberjack"
	label := "Start"
	onClick := o.onStart
	if o.screen == ScreenGameOver {
		title = "Game Over"
		label = "Restart"
		onClick = o.onRestart
	}

	panel.AddChild(centeredText(title, fonts.MPlusTitleFont, color.NRGBA{R: 254, G: 255, B: 255, A: 255}))
	if o.screen == ScreenGameOver && o.text != "" {
		panel.AddChild(centeredText(o.text, fonts.TTFNormalFont, color.NRGBA{R: 254, G: 255, B: 255, A: 255}))
	}

	button := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
		widget.ButtonOpts.Image(buttonImage),
		widget.ButtonOpts.Text(label, fonts.TTFNormalFont, &widget.ButtonTextColor{
			Idle:     color.NRGBA{254, 255, 255, 255},
			Disabled: color.NRGBA{R: 200, G: 200, B: 200, A: 255},
		}),
		widget.ButtonOpts.TextPadding(widget.Insets{
			Left:   30,
			Right:  30,
			Top:    5,
			Bottom: 5,
		}),
	)
	button.ClickedEvent.AddHandler(func(args interface{}) {
		o.message = ""
		if onClick != nil {
			onClick()
		}
	})
	panel.AddChild(button)

	if o.message != "" {
		panel.AddChild(centeredText(o.message, fonts.TTFSmallFont, color.NRGBA{R: 255, G: 0, B: 0, A: 255}))
	}

	o.ui = &ebitenui.UI{
		Container: rootContainer,
	}
}

func centeredText(s string, face font.Face, c color.Color) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(s, face, c),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
	)
}

func (o *Overlay) Update() {
	if o.ui != nil {
		o.ui.Update()
	}
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.ui != nil {
		o.ui.Draw(screen)
	}
}
