package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateHours(t *testing.T) {
	tests := []struct {
		materials int
		want      float64
	}{
		{0, 1.0},
		{1, 2.0},
		{3, 6.0},
		{10, 20.0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EstimateHours(tt.materials), "%d materials", tt.materials)
	}
}
