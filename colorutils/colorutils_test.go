package colorutils

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestIsDigital(t *testing.T) {
	extremes := []int{ChannelMin, ChannelMax}
	for _, r := range extremes {
		for _, g := range extremes {
			for _, b := range extremes {
				rgb := [3]int{r, g, b}
				assert.True(t, IsDigital(rgb), "%v", rgb)
				assert.Equal(t, [3]int{r / 255, g / 255, b / 255}, Digital(rgb))
			}
		}
	}

	for _, rgb := range [][3]int{
		{255, 191, 0},
		{1, 0, 0},
		{0, 254, 0},
		{0, 0, 128},
		{256, 0, 0},
		{-1, 255, 255},
		{510, 0, 0},
	} {
		assert.False(t, IsDigital(rgb), "%v", rgb)
	}
}

func TestDigitalFloors(t *testing.T) {
	assert.Equal(t, [3]int{-1, 0, 2}, Digital([3]int{-1, 254, 510}))
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#ffbf00", Hex([3]int{255, 191, 0}))
	assert.Equal(t, "#000000", Hex([3]int{0, 0, 0}))
	assert.Equal(t, "#ff0000", Hex([3]int{300, -4, 0}))
}
