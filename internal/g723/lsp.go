package g723

// dequantLSP decodes the three VQ band indices into curLsp, applies the
// predictive DC term, and enforces the minimum-spacing stability
// invariant. good reports whether the frame parsed cleanly; a bad
// frame uses a wider minimum distance and a heavier DC prediction weight,
// and forces the VQ indices to 0 rather than trusting corrupted bits.
func dequantLSP(curLsp *[LPCOrder]int32, prevLsp [LPCOrder]int32, lspIndex [LSPBands]int, good bool) {
	var minDist, pred int32
	idx := lspIndex
	if good {
		minDist = 0x100
		pred = 12288
	} else {
		minDist = 0x200
		pred = 23552
		idx = [LSPBands]int{0, 0, 0}
	}

	b0 := lspBand0[idx[0]&0xFF]
	b1 := lspBand1[idx[1]&0xFF]
	b2 := lspBand2[idx[2]&0xFF]
	curLsp[0] = b0[0]
	curLsp[1] = b0[1]
	curLsp[2] = b0[2]
	curLsp[3] = b1[0]
	curLsp[4] = b1[1]
	curLsp[5] = b1[2]
	curLsp[6] = b2[0]
	curLsp[7] = b2[1]
	curLsp[8] = b2[2]
	curLsp[9] = b2[3]

	for i := 0; i < LPCOrder; i++ {
		curLsp[i] += dcLsp[i] + (((prevLsp[i]-dcLsp[i])*pred + (1 << 14)) >> 15)
	}

	if !stabilizeLSP(curLsp, minDist) {
		*curLsp = prevLsp
	}
}

// stabilizeLSP runs up to 10 relaxation passes enforcing the minimum-gap
// invariant between adjacent LSP values, clamping the first and last
// entries to the valid range. It reports whether the result converged.
func stabilizeLSP(lsp *[LPCOrder]int32, minDist int32) bool {
	const (
		lowerBound = 0x180
		upperBound = 0x7E00
	)

	stable := func() bool {
		if lsp[0] < lowerBound || lsp[LPCOrder-1] > upperBound {
			return false
		}
		for j := 1; j < LPCOrder; j++ {
			if lsp[j-1]+minDist-lsp[j]-4 > 0 {
				return false
			}
		}
		return true
	}

	for iter := 0; iter < 10; iter++ {
		if lsp[0] < lowerBound {
			lsp[0] = lowerBound
		}
		if lsp[LPCOrder-1] > upperBound {
			lsp[LPCOrder-1] = upperBound
		}
		for j := 1; j < LPCOrder; j++ {
			diff := minDist + lsp[j-1] - lsp[j]
			if diff > 0 {
				half := diff >> 1
				lsp[j-1] -= half
				lsp[j] += diff - half
			}
		}
		if stable() {
			return true
		}
	}
	return stable()
}
