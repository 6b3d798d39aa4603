package sink

import (
	"math"
	"strconv"
	"strings"

	"github.com/jmylchreest/volctl/internal/model"
)

// MutedMarker is the token wpctl appends when the sink is muted.
const MutedMarker = "[MUTED]"

// ParseVolume parses wpctl get-volume output such as "Volume: 0.45 [MUTED]".
//
// Every whitespace-separated token is inspected: the muted marker sets Muted,
// and any finite number is taken as a unit-interval gain. When several
// numbers appear the last one wins. Unknown tokens are ignored, so empty or
// unexpected output yields the zero state.
func ParseVolume(output []byte) model.VolumeState {
	var state model.VolumeState

	text := strings.ToValidUTF8(string(output), "\uFFFD")
	for _, token := range strings.Fields(text) {
		if token == MutedMarker {
			state.Muted = true
			continue
		}

		gain, err := strconv.ParseFloat(token, 64)
		if err != nil || math.IsNaN(gain) || math.IsInf(gain, 0) {
			continue
		}
		state.Percent = gainToPercent(gain)
	}

	return state
}

// gainToPercent converts a gain multiplier to a rounded percentage.
// Boosted gains above 1.0 are reported as 100.
func gainToPercent(gain float64) int {
	p := math.Round(gain * 100)
	if p > 100 {
		return 100
	}
	if p < 0 {
		return 0
	}
	return int(p)
}
