package g723

import "testing"

func pulsePositions(vec *[SubframeLen]int32) []int {
	var pos []int
	for i, v := range vec {
		if v != 0 {
			pos = append(pos, i)
		}
	}
	return pos
}

func TestDecodeCombinatorialPulseCount(t *testing.T) {
	for subIdx := 0; subIdx < Subframes; subIdx++ {
		sf := SubframeParams{PulsePos: 0, AmpIndex: 3}
		var vec [SubframeLen]int32
		decodeCombinatorial(&vec, subIdx, sf)
		if got := len(pulsePositions(&vec)); got != pulses[subIdx] {
			t.Fatalf("subframe %d: %d pulses, want %d", subIdx, got, pulses[subIdx])
		}
	}
}

func TestDecodeCombinatorialUniqueSelections(t *testing.T) {
	// Distinct in-range position codes must decode to distinct slot
	// selections: the combinatorial index is a bijection onto
	// C(30, pulses) subsets.
	const subIdx = 1 // 5 pulses
	const sample = 3000
	seen := make(map[[SubframeLen]int32]uint32, sample)
	for code := uint32(0); code < sample && code < maxPos[subIdx]; code++ {
		sf := SubframeParams{PulsePos: code, AmpIndex: 0}
		var vec [SubframeLen]int32
		decodeCombinatorial(&vec, subIdx, sf)
		var key [SubframeLen]int32
		for i, v := range vec {
			if v != 0 {
				key[i] = 1
			}
		}
		if prev, dup := seen[key]; dup {
			t.Fatalf("codes %d and %d decode to the same selection", prev, code)
		}
		seen[key] = code
		if got := len(pulsePositions(&vec)); got != pulses[subIdx] {
			t.Fatalf("code %d: %d pulses, want %d", code, got, pulses[subIdx])
		}
	}
}

func TestDecodeCombinatorialOutOfRangeIsSilent(t *testing.T) {
	sf := SubframeParams{PulsePos: maxPos[0], AmpIndex: 5}
	var vec [SubframeLen]int32
	decodeCombinatorial(&vec, 0, sf)
	for _, v := range vec {
		if v != 0 {
			t.Fatal("out-of-range position code must produce zero excitation")
		}
	}
}

func TestDecodeCombinatorialGridOffset(t *testing.T) {
	sfEven := SubframeParams{PulsePos: 0, AmpIndex: 0, GridIndex: 0}
	sfOdd := SubframeParams{PulsePos: 0, AmpIndex: 0, GridIndex: 1}
	var even, odd [SubframeLen]int32
	decodeCombinatorial(&even, 0, sfEven)
	decodeCombinatorial(&odd, 0, sfOdd)
	for _, p := range pulsePositions(&even) {
		if p%GridSize != 0 {
			t.Fatalf("grid 0 pulse at odd position %d", p)
		}
	}
	for _, p := range pulsePositions(&odd) {
		if p%GridSize != 1 {
			t.Fatalf("grid 1 pulse at even position %d", p)
		}
	}
}

func TestOverlayDiracTrain(t *testing.T) {
	var vec [SubframeLen]int32
	vec[0] = 100
	overlayDiracTrain(&vec, 20)
	for _, p := range []int{0, 20, 40} {
		if vec[p] != 100 {
			t.Fatalf("expected pulse copy at %d, got %d", p, vec[p])
		}
	}
	if vec[10] != 0 {
		t.Fatalf("unexpected energy between pulse copies: %d", vec[10])
	}
}

func TestDecodeRegularPulsesPlacement(t *testing.T) {
	sf := SubframeParams{
		PulsePos:  0, // all octal digits zero
		PulseSign: 0b0101,
		GridIndex: 1,
		AmpIndex:  2,
		AdCbGain:  0,
		AdCbLag:   1,
	}
	var vec [SubframeLen]int32
	// A large pitch lag keeps the harmonic enhancement out of range.
	decodeRegularPulses(&vec, sf, 120)

	amp := fixedCbGain[2]
	for k := 0; k < 4; k++ {
		pos := 1 + 2*k
		want := amp
		if k%2 == 0 {
			want = -amp
		}
		if vec[pos] != want {
			t.Fatalf("pulse %d at %d: got %d, want %d", k, pos, vec[pos], want)
		}
	}
}
