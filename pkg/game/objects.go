package game

import (
	"github.com/Quelsed/azngameahun/pkg/game/constants"
	"github.com/Quelsed/azngameahun/pkg/game/types"
	"github.com/Quelsed/azngameahun/pkg/kinematic"
)

// Each entity store is advanced into a fresh slice so removals never skip elements.

func advanceParticles(particles []types.Particle) []types.Particle {
	if len(particles) == 0 {
		return nil
	}
	kept := make([]types.Particle, 0, len(particles))
	for _, p := range particles {
		p.Position = kinematic.Step(p.Position, p.Velocity)
		p.Life -= constants.ParticleDecay
		if p.Life <= 0 {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}

func advanceFragments(fragments []types.FallingFragment, viewportHeight float64) []types.FallingFragment {
	if len(fragments) == 0 {
		return nil
	}
	kept := make([]types.FallingFragment, 0, len(fragments))
	for _, f := range fragments {
		f.Position = kinematic.Step(f.Position, kinematic.Vector{Y: constants.FragmentFallSpeed})
		f.Rotation += f.RotationSpeed
		if f.Position.Y > viewportHeight {
			continue
		}
		kept = append(kept, f)
	}
	return kept
}

func advanceAxe(axe types.AxeAnimation) types.AxeAnimation {
	if !axe.Active {
		return axe
	}
	axe.Frame++
	if axe.Frame >= constants.AxeFrames {
		axe.Active = false
	}
	return axe
}
