package gesture

import (
	"testing"

	"github.com/Quelsed/azngameahun/pkg/game/types"
	"github.com/stretchr/testify/assert"
)

func TestSwipe(t *testing.T) {
	tests := []struct {
		name     string
		dx       float64
		wantSide types.Side
		wantOK   bool
	}{
		{name: "no travel", dx: 0, wantOK: false},
		{name: "exactly the threshold", dx: 30, wantOK: false},
		{name: "short left", dx: -30, wantOK: false},
		{name: "right", dx: 31, wantSide: types.Right, wantOK: true},
		{name: "left", dx: -120, wantSide: types.Left, wantOK: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			side, ok := Swipe(tt.dx)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantSide, side)
			}
		})
	}
}

func TestTap(t *testing.T) {
	assert.Equal(t, types.Left, Tap(0, 400))
	assert.Equal(t, types.Left, Tap(199, 400))
	assert.Equal(t, types.Right, Tap(200, 400))
	assert.Equal(t, types.Right, Tap(399, 400))
}

func TestTouch(t *testing.T) {
	// a swipe wins over the half it ends on
	assert.Equal(t, types.Left, Touch(350, 250, 400))
	assert.Equal(t, types.Right, Touch(50, 150, 400))
	// a tap uses the half
	assert.Equal(t, types.Right, Touch(300, 310, 400))
	assert.Equal(t, types.Left, Touch(100, 90, 400))
}
