package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/Quelsed/azngameahun/client/input"
	"github.com/Quelsed/azngameahun/client/renderer"
	"github.com/Quelsed/azngameahun/client/ui"
	"github.com/Quelsed/azngameahun/pkg/log"
	"github.com/Quelsed/azngameahun/pkg/network"
	"github.com/Quelsed/azngameahun/pkg/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// FrameSource returns the frame to draw for the current update.
// In local mode it ticks the game, in remote mode it reads the latest frame from the server.
type FrameSource func(ctx context.Context) (*render.Frame, error)

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// commander receives the player's input.
	commander network.Commander
	// frames provides the frame of every update.
	frames FrameSource
	// errChan reports a lost connection in remote mode. Optional.
	errChan <-chan error

	renderer *renderer.Renderer
	overlay  *ui.Overlay
	input    *input.Reader

	frame         *render.Frame
	width, height int
}

type NewGameOptions struct {
	Debug     bool
	Commander network.Commander
	Frames    FrameSource
	Images    renderer.ImageSource
	ErrChan   <-chan error
}

func NewGame(opts NewGameOptions) (*Game, error) {
	if opts.Commander == nil || opts.Frames == nil {
		return nil, fmt.Errorf("a commander and a frame source are required")
	}
	g := &Game{
		debug:     opts.Debug,
		commander: opts.Commander,
		frames:    opts.Frames,
		errChan:   opts.ErrChan,
		renderer:  renderer.New(opts.Images),
		input:     input.NewReader(),
	}
	g.overlay = ui.NewOverlay(ui.NewOverlayOptions{
		OnStart:   g.start,
		OnRestart: g.restart,
	})
	return g, nil
}

func (g *Game) start() {
	if err := g.commander.RequestStart(); err != nil {
		log.Error("Failed to request start: %v", err)
		g.overlay.SetError(&ui.ActionableError{Message: "Failed to start. Please try again."})
	}
}

func (g *Game) restart() {
	if err := g.commander.RequestRestart(); err != nil {
		log.Error("Failed to request restart: %v", err)
		g.overlay.SetError(&ui.ActionableError{Message: "Failed to restart. Please try again."})
	}
}

func (g *Game) Update() error {
	if input.IsQuitJustPressed() {
		return ebiten.Termination
	}

	if err := g.checkConnection(); err != nil {
		g.overlay.SetError(err)
	}

	// input is read against the previous frame so it lands on the next tick
	g.handleInput()

	frame, err := g.frames(context.Background())
	if err != nil {
		return fmt.Errorf("failed to get frame: %v", err)
	}
	g.frame = frame

	g.renderer.Update(frame, 1/float32(ebiten.TPS()))
	g.syncOverlay()
	g.overlay.Update()
	return nil
}

func (g *Game) checkConnection() error {
	if g.errChan == nil {
		return nil
	}
	select {
	case err := <-g.errChan:
		log.Error("Connection lost: %v", err)
		return &ui.ActionableError{Message: "Connection lost. Please restart the game."}
	default:
		return nil
	}
}

func (g *Game) phase() string {
	if g.frame == nil {
		return ""
	}
	return g.frame.HUD.Phase
}

func (g *Game) handleInput() {
	switch g.phase() {
	case "running":
		for _, side := range g.input.Moves(float64(g.width)) {
			if err := g.commander.RequestMove(side); err != nil {
				log.Warn("Failed to request move: %v", err)
			}
		}
	case "idle":
		g.input.Reset()
		if input.IsConfirmJustPressed() {
			g.start()
		}
	case "gameover":
		g.input.Reset()
		if input.IsConfirmJustPressed() {
			g.restart()
		}
	default:
		// dying: input is ignored until the game-over screen is shown
		g.input.Reset()
	}
}

func (g *Game) syncOverlay() {
	switch g.phase() {
	case "idle":
		g.overlay.Show(ui.ScreenStart, "")
	case "gameover":
		g.overlay.Show(ui.ScreenGameOver, g.frame.HUD.FinalText)
	default:
		g.overlay.Show(ui.ScreenNone, "")
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.frame)
	if g.overlay.Visible() {
		g.overlay.Draw(screen)
	}
	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n   FPS: %0.1f", ebiten.ActualFPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n   TPS: %0.1f", ebiten.ActualTPS()))
	if g.frame != nil {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n\n   Tick: %d Directives: %d", g.frame.Tick, len(g.frame.Directives)))
	}
}

// Layout follows the window size and resizes the game viewport when it changes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		if err := g.commander.ResizeViewport(float64(outsideWidth), float64(outsideHeight)); err != nil {
			log.Warn("Failed to resize viewport: %v", err)
		}
	}
	return outsideWidth, outsideHeight
}

// IsTermination reports whether err is the normal end of the game loop.
func IsTermination(err error) bool {
	return errors.Is(err, ebiten.Termination)
}
