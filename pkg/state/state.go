package state

import (
	"context"

	"github.com/Quelsed/azngameahun/pkg/render"
)

// StateManager provides shared access to the latest rendered frame of a session.
// Implementations must be thread-safe.
type StateManager interface {
	// Get returns a copy of the latest frame.
	Get(ctx context.Context) (*render.Frame, error)
	// Set publishes a new frame.
	Set(ctx context.Context, frame *render.Frame) error
}
