package game

import (
	"github.com/Quelsed/azngameahun/pkg/game/constants"
	"github.com/Quelsed/azngameahun/pkg/game/types"
	"github.com/Quelsed/azngameahun/pkg/kinematic"
)

var particleColors = []string{"#8B4513", "#654321", "#A0522D"}

// spawnParticles adds a burst of debris at (x, y), thrown away from the trunk on the given side.
func (s *Session) spawnParticles(x, y float64, side types.Side) {
	direction := 1.0
	if side == types.Left {
		direction = -1.0
	}
	for i := 0; i < constants.ParticlesPerBurst; i++ {
		p := types.Particle{
			Position: kinematic.Vector{
				X: x + constants.ParticleSideOffset*direction,
				Y: y + s.geometry.BranchHeight/2,
			},
			Life: 1.0,
		}
		p.Size = s.rng.Float64()*constants.ParticleSizeRange + constants.ParticleMinSize
		p.Color = particleColors[int(s.rng.Float64()*float64(len(particleColors)))%len(particleColors)]
		p.Velocity = kinematic.Vector{
			X: (s.rng.Float64() - 0.5) * constants.ParticleSpeedX * direction,
			Y: -s.rng.Float64()*constants.ParticleRiseRange - constants.ParticleMinRise,
		}
		s.state.Particles = append(s.state.Particles, p)
	}
}

// breakBranch converts a passed branch into a falling fragment at its projected position.
func (s *Session) breakBranch(b types.Branch) {
	g := s.geometry
	x := g.TrunkRight()
	if b.Side == types.Left {
		x = g.TrunkLeft() - g.BranchWidth
	}
	y := g.LevelY(b.Level) + s.targetScroll()

	s.state.Fragments = append(s.state.Fragments, types.FallingFragment{
		Side:          b.Side,
		Position:      kinematic.Vector{X: x, Y: y},
		Rotation:      0,
		RotationSpeed: (s.rng.Float64() - 0.5) * constants.FragmentSpin,
	})
	s.spawnParticles(x, y, b.Side)
	s.emit(types.Event{Type: types.EventBranchDetached, Side: b.Side})
}
