package game

import (
	"testing"

	"github.com/Quelsed/azngameahun/pkg/game/types"
	"github.com/Quelsed/azngameahun/pkg/kinematic"
	"github.com/Quelsed/azngameahun/pkg/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type allAssets struct{}

func (allAssets) Has(render.AssetKey) bool { return true }

func TestSession_RenderIdle(t *testing.T) {
	s := NewSession(NewSessionOptions{Width: 400, Height: 600, HighScore: 4})

	frame := s.Render(nil)

	assert.Equal(t, 400.0, frame.Width)
	assert.Equal(t, 600.0, frame.Height)
	assert.Equal(t, []render.Directive{
		render.Rect(0, 0, 400, 600, colorSky, 1),
		render.Rect(150, 0, 100, 600, colorTrunk, 1),
		render.Rect(250, 380, 100, 100, colorPlayer, 1),
	}, frame.Directives)
	assert.Equal(t, render.HUD{
		Phase:      "idle",
		Score:      0,
		HighScore:  4,
		TimeLeft:   1,
		TimerColor: "#2ecc71",
	}, frame.HUD)
}

func TestSession_RenderRunning(t *testing.T) {
	tests := []struct {
		name   string
		assets render.AssetSet
		want   []render.Directive
	}{
		{
			name:   "placeholders",
			assets: render.NoAssets{},
			want: []render.Directive{
				render.Rect(0, 0, 400, 600, colorSky, 1),
				render.Rect(150, 0, 100, 600, colorTrunk, 1),
				render.Rect(20, 20, 160, 80, colorBranch, 1),
				render.RotatedRect(-10, 300, 160, 80, 0.5, colorBranch, 1),
				render.Rect(1, 2, 3, 3, "#8B4513", 0.5),
				render.Rect(250, 380, 100, 100, colorPlayer, 1),
				render.Rect(250, 410, 30, 10, colorAxe, 1),
			},
		},
		{
			name:   "sprites",
			assets: allAssets{},
			want: []render.Directive{
				render.Image(render.AssetBackground, 0, 0, 400, 600),
				render.Image(render.AssetTree, 150, 0, 100, 600),
				render.Image(render.AssetBranchLeft, 20, 20, 160, 80),
				render.ImageRotated(render.AssetBranchLeft, 70, 340, 160, 80, 0.5, 1),
				render.Rect(1, 2, 3, 3, "#8B4513", 0.5),
				render.Image(render.AssetPlayerRight, 250, 380, 100, 100),
				render.ImageRotated(render.AssetAxe, 250, 410, 40, 40, 0, 1),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newRunningSession(t)
			s.state.Branches = []types.Branch{
				{Side: types.Left, Level: 0},
				// above the viewport
				{Side: types.Right, Level: 8},
			}
			s.state.Scroll = 100
			s.state.Fragments = []types.FallingFragment{{Side: types.Left, Position: kinematic.Vector{X: -10, Y: 300}, Rotation: 0.5}}
			s.state.Particles = []types.Particle{{Position: kinematic.Vector{X: 1, Y: 2}, Size: 3, Color: "#8B4513", Life: 0.5}}
			s.state.Player = types.Alive{Side: types.Right}
			s.state.Axe = types.AxeAnimation{Active: true, Side: types.Right}
			before := s.State()

			frame := s.Render(tt.assets)

			assert.Equal(t, tt.want, frame.Directives)
			assert.Equal(t, "running", frame.HUD.Phase)
			assert.Empty(t, frame.HUD.FinalText)
			assert.Equal(t, before, s.State())
		})
	}
}

func TestSession_RenderGameOver(t *testing.T) {
	s := newRunningSession(t)
	s.state.Branches = nil
	s.state.Player = types.Dead{Side: types.Right}
	s.state.Score = 4
	s.state.HighScore = 9
	s.state.TimeLeft = 0.1

	frame := s.Render(render.NoAssets{})

	require.Len(t, frame.Directives, 3)
	assert.Equal(t, render.Rect(220, 470, 100, 100, colorDead, 1), frame.Directives[2])
	assert.Equal(t, render.HUD{
		Phase:      "gameover",
		Score:      4,
		HighScore:  9,
		TimeLeft:   0.1,
		TimerColor: "#e74c3c",
		FinalText:  "Score: 4 | Best: 9",
	}, frame.HUD)
}

func TestSession_RenderDyingFallsTowardsRest(t *testing.T) {
	s := newRunningSession(t)
	s.state.Branches = nil
	s.state.Player = types.Dying{Side: types.Left, Frame: 10}

	frame := s.Render(render.NoAssets{})

	require.Len(t, frame.Directives, 3)
	// halfway through the fall the pose is 50 units above its resting place
	assert.Equal(t, render.Rect(80, 520, 100, 100, colorDead, 1), frame.Directives[2])
	assert.Equal(t, "dying", frame.HUD.Phase)
}
