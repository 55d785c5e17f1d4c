// Package renderer draws frames with ebiten.
package renderer

import (
	"fmt"
	"image/color"

	"github.com/Quelsed/azngameahun/client/fonts"
	"github.com/Quelsed/azngameahun/client/renderer/timerbar"
	"github.com/Quelsed/azngameahun/pkg/log"
	"github.com/Quelsed/azngameahun/pkg/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	hudMargin       = 10
	timerBarHeight  = 12
	timerBarPadding = 2
)

// ImageSource provides the sprites referenced by image directives.
type ImageSource interface {
	Image(key render.AssetKey) (*ebiten.Image, bool)
}

type Renderer struct {
	images   ImageSource
	pixel    *ebiten.Image
	face     font.Face
	timerBar *timerbar.TimerBar
	colors   map[string]color.RGBA
}

func New(images ImageSource) *Renderer {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &Renderer{
		images:   images,
		pixel:    pixel,
		face:     fonts.TTFNormalFont,
		timerBar: &timerbar.TimerBar{},
		colors:   make(map[string]color.RGBA),
	}
}

// Update advances HUD animations by dt seconds.
func (r *Renderer) Update(frame *render.Frame, dt float32) {
	if frame == nil {
		return
	}
	r.timerBar.SetTarget(float32(frame.HUD.TimeLeft))
	r.timerBar.Update(dt)
}

// Draw draws the directives of frame in order, then the HUD.
func (r *Renderer) Draw(screen *ebiten.Image, frame *render.Frame) {
	if frame == nil {
		return
	}
	for _, d := range frame.Directives {
		r.drawDirective(screen, d)
	}
	if frame.HUD.Phase == "running" || frame.HUD.Phase == "dying" {
		r.drawHUD(screen, frame)
	}
}

func (r *Renderer) drawDirective(screen *ebiten.Image, d render.Directive) {
	switch d.Kind {
	case render.KindImage:
		img, ok := r.images.Image(d.Key)
		if !ok {
			log.Trace("Sprite %s is not loaded", d.Key)
			return
		}
		iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(d.W/float64(iw), d.H/float64(ih))
		op.GeoM.Translate(d.X, d.Y)
		op.ColorScale.ScaleAlpha(float32(d.Alpha))
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(img, op)
	case render.KindImageRotated:
		img, ok := r.images.Image(d.Key)
		if !ok {
			log.Trace("Sprite %s is not loaded", d.Key)
			return
		}
		iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(d.W/float64(iw), d.H/float64(ih))
		op.GeoM.Translate(-d.W/2, -d.H/2)
		op.GeoM.Rotate(d.Angle)
		op.GeoM.Translate(d.X, d.Y)
		op.ColorScale.ScaleAlpha(float32(d.Alpha))
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(img, op)
	case render.KindRect:
		c := r.color(d.Color)
		if d.Angle == 0 {
			vector.DrawFilledRect(screen, float32(d.X), float32(d.Y), float32(d.W), float32(d.H), withAlpha(c, d.Alpha), false)
			return
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(d.W, d.H)
		op.GeoM.Translate(-d.W/2, -d.H/2)
		op.GeoM.Rotate(d.Angle)
		op.GeoM.Translate(d.X+d.W/2, d.Y+d.H/2)
		op.ColorScale.ScaleWithColor(c)
		op.ColorScale.ScaleAlpha(float32(d.Alpha))
		screen.DrawImage(r.pixel, op)
	default:
		log.Warn("Unknown directive kind %s", d.Kind)
	}
}

func (r *Renderer) drawHUD(screen *ebiten.Image, frame *render.Frame) {
	barWidth := float32(frame.Width) - 2*hudMargin
	vector.DrawFilledRect(screen, hudMargin, hudMargin, barWidth, timerBarHeight, color.RGBA{0, 0, 0, 160}, false)
	fill := r.timerBar.Value()
	if fill < 0 {
		fill = 0
	}
	vector.DrawFilledRect(screen, hudMargin+timerBarPadding, hudMargin+timerBarPadding,
		(barWidth-2*timerBarPadding)*fill, timerBarHeight-2*timerBarPadding,
		r.color(frame.HUD.TimerColor), false)

	score := fmt.Sprintf("%d", frame.HUD.Score)
	bounds, _ := font.BoundString(r.face, score)
	x := int(frame.Width)/2 - (bounds.Max.X-bounds.Min.X).Ceil()/2
	text.Draw(screen, score, r.face, x, hudMargin+timerBarHeight+36, color.White)

	best := fmt.Sprintf("Best: %d", frame.HUD.HighScore)
	text.Draw(screen, best, fonts.TTFSmallFont, hudMargin, hudMargin+timerBarHeight+24, color.White)
}

// color caches parsed hex colors. Unparseable colors draw magenta.
func (r *Renderer) color(hex string) color.RGBA {
	if c, ok := r.colors[hex]; ok {
		return c
	}
	c, err := render.ParseHexColor(hex)
	if err != nil {
		log.Warn("Invalid color %q: %v", hex, err)
		c = color.RGBA{255, 0, 255, 255}
	}
	r.colors[hex] = c
	return c
}

func withAlpha(c color.RGBA, alpha float64) color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(alpha * 255)}
}
