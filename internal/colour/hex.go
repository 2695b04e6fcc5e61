package colour

import (
	"fmt"
	"math"
)

// Hex formats real-valued RGB channels as a canonical 7-character "#RRGGBB"
// string, zero-padded and uppercase. Each channel is independently rounded
// half away from zero. Inputs are assumed to lie in [0, 255]; out-of-range
// input is a caller bug, not a checked error.
func Hex(r, g, b float64) string {
	return fmt.Sprintf("#%02X%02X%02X",
		uint8(math.Round(r)),
		uint8(math.Round(g)),
		uint8(math.Round(b)))
}
