package g723

import "github.com/speechcore/g723dec/internal/fixedpoint"

// lspToCosine converts one Q15 LSP value to its Q15 negative cosine via
// linear interpolation into the 257-entry cosine table, using the high 8
// bits as the table index and the low 7 bits (shifted to a byte-scale
// fractional offset) to interpolate between adjacent entries.
func lspToCosine(lsp int32) int32 {
	idx := (lsp >> 7) & 0xFF
	frac := (lsp&0x7F)<<8 | 0x80
	c0 := cosTable[idx]
	c1 := cosTable[idx+1]
	return c0 + fixedpoint.Mull2((c1-c0)<<9, frac)>>9
}

// lspToLPC builds the sum/difference polynomials P and Q from the LSP
// cosines and combines them into 10 LPC coefficients. Coefficients
// are produced in the order lpc[0..9].
func lspToLPC(lsp [LPCOrder]int32) [LPCOrder]int32 {
	var cos [LPCOrder]int32
	for i := 0; i < LPCOrder; i++ {
		cos[i] = lspToCosine(lsp[i])
	}

	// f1 tracks the sum polynomial P (even-indexed cosines), f2 the
	// difference polynomial Q (odd-indexed cosines). Both start in Q28
	// with the closed-form degree 0-2 coefficients and are iteratively
	// extended through degree 5, halving contributions each step so the
	// final accumulator lands in Q25.
	var f1, f2 [6]int64
	f1[0] = 1 << 28
	f2[0] = 1 << 28

	buildPoly := func(dst *[6]int64, cosines [5]int32) {
		// Degrees 0-2 carry the full Q28 scale; each degree 3-5
		// extension halves the whole accumulator, landing at Q25.
		dst[1] = -int64(cosines[0]) << 14
		for deg := 2; deg <= 5; deg++ {
			c := cosines[deg-1]
			for k := deg; k >= 1; k-- {
				term := fixedpoint.Mull2(int32(dst[k-1]>>13), c)
				dst[k] = dst[k] - (int64(term) << 13)
				if k >= 2 {
					dst[k] += dst[k-2] >> 1
				}
			}
			if deg >= 3 {
				for k := 0; k <= deg; k++ {
					dst[k] >>= 1
				}
			}
		}
	}

	var evenCos, oddCos [5]int32
	for i := 0; i < 5; i++ {
		evenCos[i] = cos[2*i]
		oddCos[i] = cos[2*i+1]
	}
	buildPoly(&f1, evenCos)
	buildPoly(&f2, oddCos)

	var lpc [LPCOrder]int32
	for i := 0; i < 5; i++ {
		ff1 := f1[i+1] + f1[i]
		ff2 := f2[i+1] - f2[i]
		lpc[i] = fixedpoint.ClipInt32FromInt64((ff1+ff2)<<3+(1<<15)) >> 16
		lpc[9-i] = fixedpoint.ClipInt32FromInt64((ff1-ff2)<<3+(1<<15)) >> 16
	}
	return lpc
}

// interpWeights holds the (current, previous) LSP blend weights for the 4
// subframes of a frame, in Q14.
var interpWeights = [Subframes][2]int32{
	{0x1000, 0x3000}, // 0.25 cur, 0.75 prev
	{0x2000, 0x2000}, // 0.5 / 0.5
	{0x3000, 0x1000}, // 0.75 cur, 0.25 prev
	{0x4000, 0},      // 1.0 cur, 0.0 prev
}

// interpolateLPC produces the 4 per-subframe LPC coefficient sets by
// blending curLsp and prevLsp with the weights above, then running each
// blended LSP vector through lspToLPC.
func interpolateLPC(curLsp, prevLsp [LPCOrder]int32) [Subframes][LPCOrder]int32 {
	var out [Subframes][LPCOrder]int32
	for s := 0; s < Subframes; s++ {
		wCur := interpWeights[s][0]
		wPrev := interpWeights[s][1]
		var blended [LPCOrder]int32
		for i := 0; i < LPCOrder; i++ {
			blended[i] = (curLsp[i]*wCur + prevLsp[i]*wPrev + (1 << 13)) >> 14
		}
		out[s] = lspToLPC(blended)
	}
	return out
}
