package state

import (
	"context"
	"fmt"
	"sync"

	"github.com/Quelsed/azngameahun/pkg/render"
)

type InMemoryStateManager struct {
	lock  sync.RWMutex
	frame *render.Frame
}

func NewInMemoryStateManager() *InMemoryStateManager {
	return &InMemoryStateManager{
		frame: &render.Frame{},
	}
}

func (m *InMemoryStateManager) Get(ctx context.Context) (*render.Frame, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.frame.Copy(), nil
}

func (m *InMemoryStateManager) Set(ctx context.Context, frame *render.Frame) error {
	if frame == nil {
		return fmt.Errorf("frame is nil")
	}

	m.lock.Lock()
	defer m.lock.Unlock()
	m.frame = frame
	return nil
}
