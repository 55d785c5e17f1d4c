package game

import (
	"testing"

	"github.com/Quelsed/azngameahun/pkg/game/types"
	"github.com/stretchr/testify/assert"
)

func TestGenerateSide(t *testing.T) {
	tests := []struct {
		name     string
		branches []types.Branch
		level    int
		random   float64
		want     types.Side
	}{
		{
			name:     "both sides occupied",
			branches: []types.Branch{{Side: types.Left, Level: 3}, {Side: types.Right, Level: 3}},
			level:    3,
			random:   0.9,
			want:     types.Left,
		},
		{
			name:     "left occupied",
			branches: []types.Branch{{Side: types.Left, Level: 3}},
			level:    3,
			random:   0.1,
			want:     types.Right,
		},
		{
			name:     "right occupied",
			branches: []types.Branch{{Side: types.Right, Level: 3}},
			level:    3,
			random:   0.9,
			want:     types.Left,
		},
		{
			name:     "two recent lefts",
			branches: []types.Branch{{Side: types.Left, Level: 1}, {Side: types.Left, Level: 3}},
			level:    5,
			random:   0.1,
			want:     types.Right,
		},
		{
			name:     "two recent rights",
			branches: []types.Branch{{Side: types.Right, Level: 1}, {Side: types.Right, Level: 3}},
			level:    5,
			random:   0.9,
			want:     types.Left,
		},
		{
			name:     "alternating history uses the random value below half",
			branches: []types.Branch{{Side: types.Left, Level: 1}, {Side: types.Right, Level: 3}},
			level:    5,
			random:   0.49,
			want:     types.Left,
		},
		{
			name:     "empty history uses the random value at half",
			branches: nil,
			level:    0,
			random:   0.5,
			want:     types.Right,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateSide(tt.branches, tt.level, &scriptedRandom{values: []float64{tt.random}})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateSide_NeverThreeInARow(t *testing.T) {
	rng := &scriptedRandom{values: []float64{0.1, 0.2, 0.3, 0.05, 0.4}}
	var branches []types.Branch
	for level := 0; level < 50; level++ {
		branches = append(branches, types.Branch{Side: GenerateSide(branches, level, rng), Level: level})
	}
	for i := 2; i < len(branches); i++ {
		sameSide := branches[i].Side == branches[i-1].Side && branches[i-1].Side == branches[i-2].Side
		assert.False(t, sameSide, "three branches in a row on %s at level %d", branches[i].Side, i)
	}
}
