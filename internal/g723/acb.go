package g723

import "github.com/speechcore/g723dec/internal/fixedpoint"

// acbWindowLen is SUBFRAME_LEN + PITCH_ORDER - 1, the residual window
// decodeAdaptiveCodebook composes before running the predictor.
const acbWindowLen = SubframeLen + PitchOrder - 1

// buildACBWindow composes the residual window used by the pitch
// predictor: prevExcitation is the excitation history, oldest first,
// ending where the current subframe begins. The window starts
// PITCH_ORDER/2 + effectiveLag samples before that end;
// the first two samples are read directly, and every sample from the
// third onward wraps modulo effectiveLag once the direct history is
// exhausted (short pitch lags replay the same cycle repeatedly).
func buildACBWindow(prevExcitation []int32, effectiveLag int) [acbWindowLen]int32 {
	var win [acbWindowLen]int32
	n := len(prevExcitation)
	start := n - PitchOrder/2 - effectiveLag
	for i := 0; i < acbWindowLen; i++ {
		idx := start + i
		if i >= 2 && effectiveLag > 0 {
			idx = start + 2 + (i-2)%effectiveLag
		}
		for idx < 0 {
			idx += n
		}
		win[i] = prevExcitation[idx%n]
	}
	return win
}

// decodeAdaptiveCodebook reconstructs the pitch-predicted contribution to
// one subframe's excitation. prevExcitation is the previously
// synthesized excitation, ending where this subframe begins; pitchLag/adCbLag give the
// subframe's lag fields. The 2-bit adCbLag both offsets the integer lag
// (-1..+2, with subframes 0 and 2 pinned to 1 by the unpacker) and
// selects which of the four fractional-lag tap variants the predictor
// row provides. gainIdx selects the row, from the 85-entry table when
// use85 (6.3 kbit/s with pitchLag<58), else the 170-entry table.
func decodeAdaptiveCodebook(prevExcitation []int32, pitchLag, adCbLag, gainIdx int, use85 bool) [SubframeLen]int32 {
	var out [SubframeLen]int32
	effectiveLag := pitchLag + adCbLag - 1
	if effectiveLag <= 0 {
		return out
	}

	var taps [4][PitchOrder]int32
	if use85 {
		if gainIdx < 0 || gainIdx >= len(adaptiveCbGain85) {
			gainIdx = len(adaptiveCbGain85) - 1
		}
		taps = adaptiveCbGain85[gainIdx]
	} else {
		if gainIdx < 0 || gainIdx >= len(adaptiveCbGain170) {
			gainIdx = len(adaptiveCbGain170) - 1
		}
		taps = adaptiveCbGain170[gainIdx]
	}
	coeffs := taps[adCbLag&3]

	win := buildACBWindow(prevExcitation, effectiveLag)
	for i := 0; i < SubframeLen; i++ {
		acc := int64(1) << 15
		for k := 0; k < PitchOrder; k++ {
			acc += int64(win[i+k]) * int64(coeffs[k])
		}
		out[i] = fixedpoint.ClipInt32FromInt64(acc) >> 16
	}
	return out
}

// combineExcitation adds the fixed- and adaptive-codebook contributions
// with saturation, producing the subframe's full excitation signal.
func combineExcitation(fixed, adaptive [SubframeLen]int32) [SubframeLen]int32 {
	var out [SubframeLen]int32
	for i := range out {
		out[i] = fixedpoint.SatAdd32(fixed[i], adaptive[i])
	}
	return out
}
