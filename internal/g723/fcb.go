package g723

// decodeFixedCodebook reconstructs the multipulse fixed-codebook
// excitation for one subframe. At 6.3 kbit/s it walks the
// combinatorial index; at 5.3 kbit/s it places a fixed 4-pulse regular
// grid with harmonic enhancement. subIdx selects the per-subframe pulse
// count/position-bit-width shape (0..3); pitchLag is the subframe pair's
// decoded pitch lag.
func decodeFixedCodebook(rate int, subIdx int, sf SubframeParams, pitchLag int) [SubframeLen]int32 {
	var vec [SubframeLen]int32
	if rate == 6300 {
		decodeCombinatorial(&vec, subIdx, sf)
		if sf.DiracTrain == 1 {
			overlayDiracTrain(&vec, pitchLag)
		}
		return vec
	}
	decodeRegularPulses(&vec, sf, pitchLag)
	return vec
}

// decodeCombinatorial implements the 6.3 kbit/s combinatorial pulse
// position decode: repeated subtraction against combinatorialTable,
// placing one pulse per chosen grid slot at grid_index + GridSize*slot.
// If pulse_pos is out of range for this subframe's table the excitation
// is left all-zero.
func decodeCombinatorial(vec *[SubframeLen]int32, subIdx int, sf SubframeParams) {
	n := pulses[subIdx]
	if sf.PulsePos >= maxPos[subIdx] {
		return
	}

	// Lexicographic combinadic walk: at slot i with r pulses left to
	// place, C(29-i, r-1) codes start with slot i chosen.
	temp := sf.PulsePos
	j := 0
	for i := 0; i < combGridSlot && j < n; i++ {
		c := combinatorialTable[n-j-1][combGridSlot-1-i]
		if temp < c {
			pos := sf.GridIndex + GridSize*i
			sign := (sf.PulseSign >> uint(n-j-1)) & 1
			amp := fixedCbGain[sf.AmpIndex]
			if sign != 0 {
				amp = -amp
			}
			vec[pos] += amp
			j++
		} else {
			temp -= c
		}
	}
}

// overlayDiracTrain overlays period-pitchLag shifted copies of vec onto
// itself, implementing the short-pitch-lag enhancement used at 6.3 kbit/s
// .
func overlayDiracTrain(vec *[SubframeLen]int32, pitchLag int) {
	if pitchLag <= 0 {
		return
	}
	orig := *vec
	for shift := pitchLag; shift < SubframeLen; shift += pitchLag {
		for i := shift; i < SubframeLen; i++ {
			vec[i] += orig[i-shift]
		}
	}
}

// decodeRegularPulses implements the 5.3 kbit/s fixed grid: 4 pulses at
// ((cb_pos&7)<<3)+cb_shift+2k, then applies harmonic enhancement from the
// pitch_contrib table.
func decodeRegularPulses(vec *[SubframeLen]int32, sf SubframeParams, pitchLag int) {
	cbPos := sf.PulsePos
	cbShift := sf.GridIndex
	for k := 0; k < 4; k++ {
		pos := int(((cbPos&7)<<3)+uint32(cbShift)) + 2*k
		if pos >= SubframeLen {
			continue
		}
		sign := (sf.PulseSign >> uint(k)) & 1
		amp := fixedCbGain[sf.AmpIndex]
		if sign != 0 {
			amp = -amp
		}
		vec[pos] += amp
		cbPos >>= 3
	}

	lag := int(pitchContrib[2*sf.AdCbGain]) + pitchLag + sf.AdCbLag - 1
	beta := pitchContrib[2*sf.AdCbGain+1]
	if lag > 0 && lag < SubframeLen-2 {
		for i := lag; i < SubframeLen; i++ {
			vec[i] += (beta * vec[i-lag]) >> 15
		}
	}
}
