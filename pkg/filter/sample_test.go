package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampIndex(t *testing.T) {
	tests := []struct {
		name        string
		index, size int
		want        int
	}{
		{"far below", -5, 10, 0},
		{"just below", -1, 10, 0},
		{"first", 0, 10, 0},
		{"interior", 4, 10, 4},
		{"last", 9, 10, 9},
		{"just past", 10, 10, 9},
		{"far past", 100, 10, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clampIndex(tt.index, tt.size))
		})
	}
}

func TestSample_ClampToEdge(t *testing.T) {
	// 2x2 RGB image with distinct corner values on the red channel.
	rgb := []byte{
		10, 0, 0, 20, 0, 0,
		30, 0, 0, 40, 0, 0,
	}

	// out-of-range coordinates resolve to the nearest corner
	assert.Equal(t, byte(10), sample(rgb, 2, 2, Channels, -1, -1, 0))
	assert.Equal(t, byte(20), sample(rgb, 2, 2, Channels, 5, -3, 0))
	assert.Equal(t, byte(30), sample(rgb, 2, 2, Channels, -2, 9, 0))
	assert.Equal(t, byte(40), sample(rgb, 2, 2, Channels, 7, 7, 0))

	// in-range reads are plain indexing, per channel
	assert.Equal(t, byte(40), sample(rgb, 2, 2, Channels, 1, 1, 0))
	assert.Equal(t, byte(0), sample(rgb, 2, 2, Channels, 1, 1, 1))

	// single-channel planes use the same clamp rule
	grey := []byte{1, 2, 3, 4}
	assert.Equal(t, byte(1), sample(grey, 2, 2, 1, -1, 0, 0))
	assert.Equal(t, byte(4), sample(grey, 2, 2, 1, 3, 3, 0))
}
