package colorutils

import (
	"github.com/lucasb-eyer/go-colorful"
)

const (
	ChannelMin = 0
	ChannelMax = 255
)

// IsDigital reports whether every channel is fully off or fully on.
// Values outside 0..255 are never digital.
func IsDigital(rgb [3]int) bool {
	for _, c := range rgb {
		if c != ChannelMin && c != ChannelMax {
			return false
		}
	}
	return true
}

// Digital normalizes a digital triple to 0/1 channels
func Digital(rgb [3]int) [3]int {
	return [3]int{
		floorDiv(rgb[0], ChannelMax),
		floorDiv(rgb[1], ChannelMax),
		floorDiv(rgb[2], ChannelMax),
	}
}

// Hex renders the triple as #rrggbb, clamping out-of-range channels
func Hex(rgb [3]int) string {
	return colorful.Color{
		R: unit(rgb[0]),
		G: unit(rgb[1]),
		B: unit(rgb[2]),
	}.Clamped().Hex()
}

func unit(c int) float64 {
	return float64(c) / ChannelMax
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
