package game

import (
	"fmt"
	"math"

	"github.com/Quelsed/azngameahun/pkg/game/constants"
	"github.com/Quelsed/azngameahun/pkg/game/types"
	"github.com/Quelsed/azngameahun/pkg/render"
)

// Placeholder colors used when a sprite is missing.
const (
	colorSky    = "#87CEEB"
	colorTrunk  = "#8b4513"
	colorBranch = "#2ecc71"
	colorDead   = "#888"
	colorPlayer = "#3498db"
	colorAxe    = "#8B4513"
)

// Render returns the draw directives for the current world, back to front.
// It does not mutate the session.
func (s *Session) Render(assets render.AssetSet) *render.Frame {
	if assets == nil {
		assets = render.NoAssets{}
	}
	g := s.geometry
	st := s.state

	b := &frameBuilder{
		assets:     assets,
		directives: make([]render.Directive, 0, 4+len(st.Branches)+len(st.Fragments)+len(st.Particles)),
	}

	b.draw(render.AssetBackground, 0, 0, g.Width, g.Height, colorSky)
	b.draw(render.AssetTree, g.TrunkLeft(), 0, g.TreeWidth, g.Height, colorTrunk)

	for _, branch := range st.Branches {
		y := g.LevelY(branch.Level) + st.Scroll - constants.BranchLift
		if y >= g.Height || y <= -g.BranchHeight {
			continue
		}
		x := g.TrunkRight() - g.BranchWidth + constants.BranchOffset
		if branch.Side == types.Left {
			x = g.TrunkLeft() - constants.BranchOffset
		}
		b.draw(branchAsset(branch.Side), x, y, g.BranchWidth, g.BranchHeight, colorBranch)
	}

	for _, f := range st.Fragments {
		key := branchAsset(f.Side)
		if assets.Has(key) {
			b.add(render.ImageRotated(key,
				f.Position.X+g.BranchWidth/2, f.Position.Y+g.BranchHeight/2,
				g.BranchWidth, g.BranchHeight, f.Rotation, 1))
			continue
		}
		b.add(render.RotatedRect(f.Position.X, f.Position.Y,
			g.BranchWidth, g.BranchHeight, f.Rotation, colorBranch, 1))
	}

	for _, p := range st.Particles {
		b.add(render.Rect(p.Position.X, p.Position.Y, p.Size, p.Size, p.Color, p.Life))
	}

	s.drawPlayer(b)

	return &render.Frame{
		Width:      g.Width,
		Height:     g.Height,
		Directives: b.directives,
		HUD:        s.hud(),
	}
}

func (s *Session) drawPlayer(b *frameBuilder) {
	g := s.geometry
	st := s.state
	side := st.Player.PlayerSide()

	if _, alive := st.Player.(types.Alive); !alive {
		x := g.TrunkRight() - g.PlayerSize*0.3
		if side == types.Left {
			x = g.TrunkLeft() - g.PlayerSize*0.7
		}
		y := g.Height - g.PlayerSize*0.5 - constants.DeadPoseBaseline +
			constants.DeadFallDistance*(1-types.FallProgress(st.Player))
		b.draw(render.AssetPlayerDead, x, y, g.PlayerSize, g.PlayerSize, colorDead)
		return
	}

	x := s.playerX(side)
	y := g.Height - g.PlayerSize - constants.PlayerStandOffset
	key := render.AssetPlayerRight
	if side == types.Left {
		key = render.AssetPlayerLeft
	}
	b.draw(key, x, y, g.PlayerSize, g.PlayerSize, colorPlayer)

	if !st.Axe.Active {
		return
	}
	progress := st.Axe.Progress()
	axeX := x - constants.AxeOffset*progress
	angle := progress * math.Pi
	if st.Axe.Side == types.Left {
		axeX = x + g.PlayerSize - constants.AxeOffset*progress
		angle = -angle
	}
	axeY := y + g.PlayerSize*0.3
	alpha := 1 - progress*0.5

	if b.assets.Has(render.AssetAxe) {
		b.add(render.ImageRotated(render.AssetAxe, axeX, axeY,
			constants.AxeSize, constants.AxeSize, angle, alpha))
		return
	}
	b.add(render.Rect(axeX, axeY,
		constants.AxeFallbackWidth, constants.AxeFallbackHeight, colorAxe, alpha))
}

func (s *Session) hud() render.HUD {
	st := s.state
	hud := render.HUD{
		Phase:      st.Phase().String(),
		Score:      st.Score,
		HighScore:  st.HighScore,
		TimeLeft:   st.TimeLeft,
		TimerColor: TimerBandFor(st.TimeLeft).Color(),
	}
	if st.Phase() == types.PhaseGameOverShown {
		hud.FinalText = fmt.Sprintf("Score: %d | Best: %d", st.Score, st.HighScore)
	}
	return hud
}

func branchAsset(side types.Side) render.AssetKey {
	if side == types.Left {
		return render.AssetBranchLeft
	}
	return render.AssetBranchRight
}

// frameBuilder collects directives and substitutes placeholders for missing sprites.
type frameBuilder struct {
	assets     render.AssetSet
	directives []render.Directive
}

func (b *frameBuilder) add(d render.Directive) {
	b.directives = append(b.directives, d)
}

func (b *frameBuilder) draw(key render.AssetKey, x, y, w, h float64, fallback string) {
	if b.assets.Has(key) {
		b.add(render.Image(key, x, y, w, h))
		return
	}
	b.add(render.Rect(x, y, w, h, fallback, 1))
}
