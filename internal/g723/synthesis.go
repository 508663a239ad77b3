package g723

import "github.com/speechcore/g723dec/internal/fixedpoint"

// synthesize runs the 10-tap all-pole LP synthesis filter over one
// subframe's excitation, using and updating mem (the filter's LPCOrder
// past output samples) in place:
//
//	y[n] = (excitation[n]<<13 - sum(lpc[k]*y[n-1-k] for k in 0..9) + 2^12) >> 13
func synthesize(mem *[LPCOrder]int32, lpc [LPCOrder]int32, excitation [SubframeLen]int32) [SubframeLen]int32 {
	var out [SubframeLen]int32
	hist := make([]int32, LPCOrder+SubframeLen)
	copy(hist[:LPCOrder], mem[:])

	for n := 0; n < SubframeLen; n++ {
		acc := int64(excitation[n]) << 13
		for k := 0; k < LPCOrder; k++ {
			acc -= int64(lpc[k]) * int64(hist[LPCOrder+n-1-k])
		}
		y := fixedpoint.ClipInt32FromInt64((acc + (1 << 12)) >> 13)
		hist[LPCOrder+n] = y
		out[n] = y
	}

	copy(mem[:], hist[len(hist)-LPCOrder:])
	return out
}
