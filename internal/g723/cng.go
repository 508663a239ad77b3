package g723

import (
	"github.com/speechcore/g723dec/internal/fixedpoint"
	"github.com/speechcore/g723dec/util"
)

// cngInitialSeed is the CNG PRNG's cold-start value. It is also the
// value the decoder resets the CNG seed to after every ACTIVE frame, so
// comfort noise always restarts from the same point whenever voice
// activity resumes and later stops again.
const cngInitialSeed = 12345

// cngPulsesPerPair is how many noise pulses comfort-noise synthesis
// injects into each subframe pair.
const cngPulsesPerPair = 11

// cngState carries the comfort-noise generator's PRNG seed across
// frames. A fresh decoder starts it at cngInitialSeed, matching the
// reference decoder's reset state.
type cngState struct {
	seed uint32
}

// rand advances the congruential generator and scales the result by
// base: state = state*521+259; return (state&0x7FFF)*base>>15.
func (c *cngState) rand(base int32) int32 {
	c.seed = c.seed*521 + 259
	return int32(c.seed&0x7FFF) * base >> 15
}

// cngPitchLags derives the two subframe-pair pitch lags used while
// synthesizing comfort noise.
func (c *cngState) cngPitchLags() [2]int {
	return [2]int{
		int(c.rand(21)) + 123,
		int(c.rand(19)) + 123,
	}
}

// cngSubframeGains derives each subframe's adaptive-codebook gain index
// and fixed lag offset for comfort-noise synthesis.
func (c *cngState) cngSubframeGains() [Subframes]SubframeParams {
	var sf [Subframes]SubframeParams
	for i := 0; i < Subframes; i++ {
		sf[i].AdCbGain = int(c.rand(50)) + 1
		sf[i].AdCbLag = cngAdaptiveCbLag[i]
	}
	return sf
}

// drawPositions draws n positions without replacement from a shrinking
// pool of {0..poolSize-1}, consuming PRNG draws from c, matching the
// reference decoder's pulse placement for comfort noise.
func (c *cngState) drawPositions(poolSize, n int) []int {
	pool := make([]int, poolSize)
	for i := range pool {
		pool[i] = i
	}
	out := make([]int, 0, n)
	for i := 0; i < n && len(pool) > 0; i++ {
		idx := int(c.rand(int32(len(pool))))
		if idx < 0 {
			idx = -idx
		}
		idx %= len(pool)
		out = append(out, pool[idx])
		pool = append(pool[:idx], pool[idx+1:]...)
	}
	return out
}

// solvePulseAmplitude solves the quadratic x^2 + 2*b0*x + c = 0 for the
// common pulse amplitude shared by the comfort-noise pulses of one
// subframe pair, picking the root with smaller magnitude. v
// holds the pair's adaptive-codebook excitation, positions/signs give
// the pulse plan (signs pre-scaled by 2^14), and curGain is the frame's
// target CNG gain. b0 and the constant term are rescaled by a shift
// derived from log2(max|v|) so both fit 32 bits before the discriminant
// is formed.
func solvePulseAmplitude(v []int32, positions []int, signs []int32, curGain int32) int32 {
	var maxAbs int32
	for _, s := range v {
		maxAbs = util.Max(maxAbs, util.Abs(s))
	}
	shift := 0
	if maxAbs > 0 {
		shift = util.Max(2*fixedpoint.Log2Floor(uint32(maxAbs))-25, 0)
	}

	var sumVS, sumVV int64
	for j, pos := range positions {
		if pos < 0 || pos >= len(v) {
			continue
		}
		sumVS += int64(v[pos]) * int64(signs[j]>>14)
		sumVV += int64(v[pos]) * int64(v[pos])
	}

	n := int64(len(positions))
	b0 := int32((2*sumVS + n/2) / n >> uint(shift/2))
	c := fixedpoint.ClipInt32FromInt64((2*sumVV - int64(curGain)*int64(curGain)*SubframeLen/32) >> uint(shift))

	disc := int64(b0)*int64(b0) - int64(c)
	var x int32
	if disc <= 0 {
		x = -b0
	} else {
		root := int32(fixedpoint.SquareRoot(fixedpoint.ClipInt32FromInt64(disc * 2)))
		x1 := -b0 + root
		x2 := -b0 - root
		if util.Abs(x1) < util.Abs(x2) {
			x = x1
		} else {
			x = x2
		}
	}
	x <<= uint(shift / 2)
	return util.Clip(x, -10000, 10000)
}

// generateNoise synthesizes one full frame of comfort-noise
// excitation: pseudo-random pitch lags and adaptive-codebook gains drive a
// pitch-predicted base signal, then each subframe pair receives 11
// pulses at positions drawn without replacement, all sharing one
// quadratic-solved amplitude that matches the frame's target gain. The
// result lands in excitation and its tail replaces prevExcitation.
func (d *Decoder) generateNoise(excitation *[FrameLen]int32) {
	d.pitchLag = d.cng.cngPitchLags()
	sf := d.cng.cngSubframeGains()

	buf := make([]int32, PitchMax+FrameLen)
	copy(buf[:PitchMax], d.prevExcitation[:])

	for pair := 0; pair < 2; pair++ {
		// One 13-bit draw per pair: pulse grid offsets for the even and
		// odd subframe, then 11 sign bits pre-scaled by 2^14.
		t := d.cng.rand(1 << 13)
		off := [2]int{int(t & 1), int((t>>1)&1) + SubframeLen}
		var signs [cngPulsesPerPair]int32
		for j := 0; j < cngPulsesPerPair; j++ {
			if (t>>uint(2+j))&1 != 0 {
				signs[j] = 1 << 14
			} else {
				signs[j] = -(1 << 14)
			}
		}

		drawn := d.cng.drawPositions(SubframeLen/2, cngPulsesPerPair)
		positions := make([]int, len(drawn))
		for j, pv := range drawn {
			positions[j] = 2*pv + off[j&1]
		}

		// Adaptive-codebook base excitation, one subframe at a time so
		// each sees the previous one as history.
		pairLag := d.pitchLag[pair]
		for half := 0; half < 2; half++ {
			subIdx := pair*2 + half
			acb := decodeAdaptiveCodebook(buf[:PitchMax+subIdx*SubframeLen], pairLag, sf[subIdx].AdCbLag, sf[subIdx].AdCbGain, false)
			copy(buf[PitchMax+subIdx*SubframeLen:], acb[:])
		}

		pairVec := buf[PitchMax+pair*2*SubframeLen : PitchMax+(pair+1)*2*SubframeLen]
		x := solvePulseAmplitude(pairVec, positions, signs[:], d.curGain)
		for j, pos := range positions {
			if pos < 0 || pos >= len(pairVec) {
				continue
			}
			amp := int32(int64(x) * int64(signs[j]) >> 15)
			pairVec[pos] = int32(fixedpoint.ClipInt16(pairVec[pos] + amp))
		}
	}

	copy(excitation[:], buf[PitchMax:])
	copy(d.prevExcitation[:], buf[len(buf)-PitchMax:])
}

// estimateSIDGain derives a 6-bit SID gain index from excitation energy
// by bisecting the segmented quadratic quantizer: five halving steps
// locate the in-segment value whose square best matches the energy,
// then one refinement step picks the closer neighbor. Used when the
// decoder transitions into CNG from an ACTIVE frame without ever
// receiving an explicit SID frame.
func estimateSIDGain(excitation []int32) int {
	var energy int64
	for _, v := range excitation {
		energy += int64(v) * int64(v)
	}
	x := fixedpoint.ClipInt32FromInt64(energy * int64(cngFilt[0]) >> 16)

	if x >= cngBseg[2] {
		return 0x3F
	}

	var shift, seg int32
	if x >= cngBseg[1] {
		shift = 4
		seg = 3
	} else {
		shift = 3
		if x >= cngBseg[0] {
			seg = 1
		}
	}
	seg2 := util.Min(seg, 3)

	val := int32(1) << shift
	valAdd := val >> 1
	for i := 0; i < 5; i++ {
		t := seg*32 + (val << seg2)
		t *= t
		if x >= t {
			val += valAdd
		} else {
			val -= valAdd
		}
		valAdd >>= 1
	}

	t := seg*32 + (val << seg2)
	y := t*t - x
	if y <= 0 {
		t = seg*32 + ((val + 1) << seg2)
		t = t*t - x
		val = ((seg2 - 1) << 4) + val
		if t >= y {
			val++
		}
	} else {
		t = seg*32 + ((val - 1) << seg2)
		t = t*t - x
		val = ((seg2 - 1) << 4) + val
		if t >= y {
			val--
		}
	}

	return int(util.Clip(val, 0, 0x3F))
}

// sidGainToMagnitude maps a 6-bit SID gain index back to a scaled gain
// magnitude through the quantizer's three segments: step 64 below index
// 16, step 128 below 32, step 256 above.
func sidGainToMagnitude(idx int) int32 {
	idx = util.Clip(idx, 0, 0x3F)
	switch {
	case idx < 0x10:
		return int32(idx) << 6
	case idx < 0x20:
		return int32(idx-8) << 7
	default:
		return int32(idx-20) << 8
	}
}
