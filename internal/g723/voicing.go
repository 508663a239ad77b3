package g723

import (
	"github.com/speechcore/g723dec/internal/fixedpoint"
	"github.com/speechcore/g723dec/util"
)

// classifyVoicing searches a 2-subframe (120-sample) window of the
// excitation history for the best backward-correlation lag near the
// decoded pitch lag, and reports it only if the match is strong enough
// to justify treating the frame as voiced for concealment purposes
// . buf holds the prior-excitation-plus-frame buffer ending at
// the current frame boundary; pitchLag is the most recently decoded
// lag. Returns 0 for unvoiced.
func classifyVoicing(buf []int32, pitchLag int) int {
	const window = 2 * SubframeLen

	lo := util.Max(pitchLag-3, PitchMin)
	hi := util.Min(pitchLag+3, PitchMax-3)
	if lo > hi {
		return 0
	}

	// The whole buffer is normalized once so the energy and correlation
	// accumulators below stay in range regardless of signal level.
	scaled := make([]int32, len(buf))
	fixedpoint.ScaleVector(scaled, buf)

	n := len(scaled)
	target := scaled[n-window:]

	bestLag := 0
	var bestCCR, bestEng int64

	for lag := lo; lag <= hi; lag++ {
		start := n - window - lag
		if start < 0 {
			continue
		}
		shifted := scaled[start : start+window]

		var ccr, eng int64
		for i := 0; i < window; i++ {
			ccr += int64(target[i]) * int64(shifted[i])
			eng += int64(shifted[i]) * int64(shifted[i])
		}
		if ccr > bestCCR {
			bestCCR = ccr
			bestEng = eng
			bestLag = lag
		}
	}

	if bestCCR <= 0 {
		return 0
	}

	var tgtEng int64
	for i := 0; i < window; i++ {
		tgtEng += int64(target[i]) * int64(target[i])
	}

	if (bestEng*tgtEng)/8 < bestCCR*bestCCR {
		return bestLag
	}
	return 0
}
