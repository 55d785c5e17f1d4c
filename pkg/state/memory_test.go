package state

import (
	"context"
	"testing"

	"github.com/Quelsed/azngameahun/pkg/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryStateManager(t *testing.T) {
	ctx := context.Background()
	m := NewInMemoryStateManager()

	initial, err := m.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), initial.Tick)

	frame := &render.Frame{
		Tick:       5,
		Directives: []render.Directive{render.Rect(0, 0, 10, 10, "#fff", 1)},
		HUD:        render.HUD{Score: 3},
	}
	require.NoError(t, m.Set(ctx, frame))

	got, err := m.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, frame, got)

	got.Directives[0].X = 99
	again, err := m.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0.0, again.Directives[0].X)

	assert.Error(t, m.Set(ctx, nil))
}
