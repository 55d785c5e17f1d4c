package constants

import "time"

const (
	// TickRate is the number of simulation ticks per second
	TickRate = 60
	// TickInterval is the duration of one simulation tick
	TickInterval = time.Second / TickRate

	// MaxTime is the full timer value
	MaxTime float64 = 1.0
	// TimeBoost is the timer refill per move before the speed multiplier is applied
	TimeBoost float64 = 0.3
	// BaseDecay is the timer drain per tick before the speed multiplier is applied
	BaseDecay float64 = 0.006
	// SpeedStepScore is the number of points between speed increases
	SpeedStepScore int = 20
	// SpeedStepBonus is the multiplier added at every speed step
	SpeedStepBonus float64 = 0.5

	// TimerGreenThreshold is the lowest timer value shown in green
	TimerGreenThreshold float64 = 0.6
	// TimerAmberThreshold is the lowest timer value shown in amber
	TimerAmberThreshold float64 = 0.3

	// ScrollEasing is the fraction of the remaining scroll covered per tick
	ScrollEasing float64 = 0.2
	// ScrollSnap is the distance under which scroll snaps to its target
	ScrollSnap float64 = 0.5

	// AxeFrames is the length of the axe swing (progress step 0.05)
	AxeFrames int = 20
	// FallFrames is the length of the death fall (progress step 0.05)
	FallFrames int = 20

	// ParticlesPerBurst is the number of particles spawned by a break or a hit
	ParticlesPerBurst int = 10
	// ParticleDecay is the life lost by a particle every tick
	ParticleDecay float64 = 0.02
	// ParticleSideOffset pushes a burst away from the trunk
	ParticleSideOffset float64 = 20
	// ParticleMinSize and ParticleSizeRange bound the particle square size
	ParticleMinSize   float64 = 2
	ParticleSizeRange float64 = 5
	// ParticleSpeedX is the spread of the horizontal particle speed
	ParticleSpeedX float64 = 10
	// ParticleMinRise and ParticleRiseRange bound the upward particle speed
	ParticleMinRise   float64 = 2
	ParticleRiseRange float64 = 5

	// FragmentFallSpeed is the distance a broken branch falls every tick
	FragmentFallSpeed float64 = 5
	// FragmentSpin is the spread of the broken branch rotation speed (radians/tick)
	FragmentSpin float64 = 0.2

	// The layout offsets below are screen units and do not scale with the viewport.

	// BranchOffset is how far a branch sprite reaches out from the trunk
	BranchOffset float64 = 130
	// BranchLift raises branch sprites above their level line
	BranchLift float64 = 80
	// PlayerStandOffset is the gap between the player's feet and the bottom edge
	PlayerStandOffset float64 = 120
	// CollisionBaseline is the gap used to place the player's hitbox
	CollisionBaseline float64 = 100
	// CollisionTolerance extends a branch downwards when checking hits
	CollisionTolerance float64 = 50
	// DetachBaseline is the gap used to place the player's band for detaching
	DetachBaseline float64 = 80
	// DetachMargin is how far below the player's band a branch must pass to break off
	DetachMargin float64 = 150
	// HeadOffset is the top of the head hitbox as a fraction of the player size
	HeadOffset float64 = 0.2
	// HeadHeight is the height of the head hitbox as a fraction of the player size
	HeadHeight float64 = 0.5
	// DeadFallDistance is how far the dead pose drops during the fall
	DeadFallDistance float64 = 100
	// DeadPoseBaseline is the gap above the bottom edge where the dead pose starts falling
	DeadPoseBaseline float64 = 80
	// HitDebrisBaseline is the gap used to place the debris burst of a fatal hit
	HitDebrisBaseline float64 = 80

	// AxeOffset is how far the axe travels during a swing
	AxeOffset float64 = 20
	// AxeSize is the width and height of the axe sprite
	AxeSize float64 = 40
	// AxeFallbackWidth and AxeFallbackHeight size the axe placeholder
	AxeFallbackWidth  float64 = 30
	AxeFallbackHeight float64 = 10
)
