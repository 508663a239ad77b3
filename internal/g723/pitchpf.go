package g723

import "github.com/speechcore/g723dec/internal/fixedpoint"

// pitchPostFilter sharpens pitch periodicity in the synthesized
// excitation by blending each sample of one subframe with its
// best-matching neighbor one pitch cycle away, earlier or later in the
// frame. buf is the full excitation buffer (history plus the
// current frame); offset is where the subframe starts; pitchLag is the
// subframe pair's decoded lag; rate selects the gain-weighting table
// entry. Returns the filtered SubframeLen output.
func pitchPostFilter(buf []int32, offset, pitchLag, rate int) [SubframeLen]int32 {
	backLag, backCCR, backRes := bestLag(buf, offset, pitchLag, -1)
	fwdLag, fwdCCR, fwdRes := bestLag(buf, offset, pitchLag, +1)

	tgt := energy(buf[offset : offset+SubframeLen])

	// Normalize all five energies by the largest one's magnitude so the
	// squared comparisons below stay inside 64 bits.
	maxEng := tgt
	for _, e := range []int64{fwdCCR, fwdRes, backCCR, backRes} {
		if e > maxEng {
			maxEng = e
		}
	}
	if maxEng >= 1<<15 {
		norm := uint(0)
		for maxEng>>norm >= 1<<15 {
			norm++
		}
		tgt >>= norm
		fwdCCR >>= norm
		fwdRes >>= norm
		backCCR >>= norm
		backRes >>= norm
	}

	var lag int
	var ccr, res int64
	switch {
	case fwdLag == 0 && backLag == 0:
		return copySubframe(buf, offset)
	case fwdLag != 0 && backLag == 0:
		lag, ccr, res = fwdLag, fwdCCR, fwdRes
	case fwdLag == 0 && backLag != 0:
		lag, ccr, res = backLag, backCCR, backRes
	default:
		// e4*(e1^2) vs e2*(e3^2): compare forward/backward suitability
		// ratios without dividing.
		lhs := backRes * (fwdCCR * fwdCCR)
		rhs := fwdRes * (backCCR * backCCR)
		if lhs > rhs {
			lag, ccr, res = fwdLag, fwdCCR, fwdRes
		} else {
			lag, ccr, res = backLag, backCCR, backRes
		}
	}

	weight := ppfGainWeight[0]
	if rate == 5300 {
		weight = ppfGainWeight[1]
	}

	var optGain, scGain int32
	if res > 0 && 2*ccr*ccr > tgt*res {
		// opt_gain = min(1, ccr/res) * weight, all in Q15.
		g := (ccr << 15) / res
		if g > 1<<15 {
			g = 1 << 15
		}
		optGain = int32(g) * weight >> 15

		pfRes := tgt + (2*ccr*int64(optGain))>>15 + (res*int64(optGain)*int64(optGain))>>30
		scGain = 0x7FFF
		if pfRes > 0 {
			ratio := (tgt << 16) / pfRes
			scGain = int32(fixedpoint.SquareRoot(fixedpoint.ClipInt32FromInt64(ratio << 15)))
			if scGain > 0x7FFF {
				scGain = 0x7FFF
			}
		}
		optGain = int32(fixedpoint.ClipInt16(int32((int64(optGain) * int64(scGain)) >> 15)))
	} else {
		optGain = 0
		scGain = 0x7FFF
	}

	var out [SubframeLen]int32
	for k := 0; k < SubframeLen; k++ {
		cur := buf[offset+k]
		neigh := int32(0)
		if idx := offset + k + lag; idx >= 0 && idx < len(buf) {
			neigh = buf[idx]
		}
		out[k] = fixedpoint.ClipInt32FromInt64(int64(cur)*int64(scGain)+int64(neigh)*int64(optGain)+(1<<14)) >> 15
	}
	return out
}

func copySubframe(buf []int32, offset int) [SubframeLen]int32 {
	var out [SubframeLen]int32
	copy(out[:], buf[offset:offset+SubframeLen])
	return out
}

// bestLag scans +-3 around pitchLag in the given direction (-1 toward
// the past, +1 toward the frame's later samples) and returns the signed
// lag with the strongest cross-correlation along with its ccr and
// residual energy. A zero lag means no positively-correlated
// candidate exists in that direction.
func bestLag(buf []int32, offset, pitchLag, dir int) (lag int, ccr, res int64) {
	target := buf[offset : offset+SubframeLen]

	var best int64
	for d := -3; d <= 3; d++ {
		l := pitchLag + d
		if l < PitchMin || l > PitchMax-3 {
			continue
		}
		start := offset + dir*l
		if start < 0 || start+SubframeLen > len(buf) {
			continue
		}
		shifted := buf[start : start+SubframeLen]

		var c int64
		for i := 0; i < SubframeLen; i++ {
			c += int64(target[i]) * int64(shifted[i])
		}
		if c > best {
			best = c
			lag = dir * l
			ccr = c
			res = energy(shifted)
		}
	}
	if best <= 0 {
		return 0, 0, 0
	}
	return lag, ccr, res
}

func energy(v []int32) int64 {
	var e int64
	for _, x := range v {
		e += int64(x) * int64(x)
	}
	return e
}
