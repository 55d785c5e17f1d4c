package game

import "github.com/Quelsed/azngameahun/pkg/game/types"

// Commands are enqueued by input collaborators and applied at the start of the next tick.

type MoveCommand struct {
	Side types.Side
}

type StartCommand struct{}

type RestartCommand struct{}

type ResizeCommand struct {
	Width  float64
	Height float64
}
