package g723

import "github.com/speechcore/g723dec/internal/fixedpoint"

// formantFilterState holds the per-decoder memory the formant
// post-filter carries across subframes: the weighted-filter IIR
// history, the smoothed reflection-coefficient estimate, and the
// adaptive output gain.
type formantFilterState struct {
	iirHistory [LPCOrder]int32
	refl       int32
	pfGain     int32
}

func newFormantFilterState() formantFilterState {
	return formantFilterState{pfGain: 4096}
}

// applyFormantPostFilter runs the pole-zero weighted filter derived from
// one subframe's LPC coefficients over srcWin and writes the result into
// dst. srcWin carries LPCOrder samples of lead-in history ahead
// of the SubframeLen samples being filtered, so the FIR side sees real
// past input across subframe boundaries; dst is SubframeLen long.
func (s *formantFilterState) applyFormantPostFilter(dst []int32, srcWin []int32, lpc [LPCOrder]int32) {
	src := srcWin[LPCOrder:]

	var fir, iir [LPCOrder]int32
	for k := 0; k < LPCOrder; k++ {
		fir[k] = fixedpoint.ClipInt32FromInt64(-int64(lpc[k]) * int64(postfilterTbl[0][k]) >> 15)
		iir[k] = fixedpoint.ClipInt32FromInt64(-int64(lpc[k]) * int64(postfilterTbl[1][k]) >> 15)
	}

	history := make([]int32, LPCOrder+len(src))
	copy(history[:LPCOrder], s.iirHistory[:])

	for m := 0; m < len(src); m++ {
		acc := int64(src[m]) << 16
		for n := 1; n <= LPCOrder; n++ {
			srcPast := srcWin[LPCOrder+m-n]
			destPast := history[LPCOrder+m-n]
			acc += 8 * (int64(iir[n-1])*int64(destPast>>16) - int64(fir[n-1])*int64(srcPast))
		}
		v := fixedpoint.ClipInt32FromInt64(acc + (1 << 15))
		history[LPCOrder+m] = v
		dst[m] = v >> 16
	}
	copy(s.iirHistory[:], history[len(history)-LPCOrder:])

	s.updateReflection(dst)
	s.scaleGain(dst, src)
}

// updateReflection smooths a first-order reflection-coefficient estimate
// from dst's own lag-0/lag-1 autocorrelation and folds it into a
// first-order compensation term. The compensation is applied in
// place as a tilt correction.
func (s *formantFilterState) updateReflection(buf []int32) {
	var ac0, ac1 int64
	for i := 0; i < len(buf); i++ {
		ac0 += int64(buf[i]) * int64(buf[i])
		if i > 0 {
			ac1 += int64(buf[i]) * int64(buf[i-1])
		}
	}
	if ac0>>16 == 0 {
		return
	}
	estimate := int32(ac1 / (ac0 >> 16))
	s.refl = (3*s.refl + estimate + 2) >> 2

	temp := (-s.refl >> 1) &^ 3
	prev := int32(0)
	for i := range buf {
		cur := buf[i]
		buf[i] = cur + fixedpoint.Mull2(temp, prev)
		prev = cur
	}
}

// scaleGain derives the gain that would match buf's energy to src's,
// smooths it with a first-order filter to avoid audible gain steps
// between subframes, and multiplies buf by 17/16 of the smoothed gain
// and by two (the same doubling the unfiltered output path applies).
func (s *formantFilterState) scaleGain(buf, src []int32) {
	var srcEnergy, bufEnergy int64
	for i := range src {
		q := src[i] / 4
		srcEnergy += int64(q) * int64(q)
		b := buf[i] / 4
		bufEnergy += int64(b) * int64(b)
	}
	if bufEnergy == 0 {
		return
	}

	// Q12 energy-matching gain: 4096 when the filtered energy already
	// equals the source energy, matching pfGain's cold-start value.
	ratio := (srcEnergy << 25) / bufEnergy
	gain := fixedpoint.SquareRoot(fixedpoint.ClipInt32FromInt64(ratio))
	s.pfGain = (15*s.pfGain + int32(gain) + 8) >> 4

	scale := s.pfGain + s.pfGain/16
	for i := range buf {
		scaled := fixedpoint.ClipInt32FromInt64(int64(buf[i])*int64(scale)+1024) >> 11
		buf[i] = int32(fixedpoint.ClipInt16(scaled))
	}
}
