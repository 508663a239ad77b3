package g723

import "testing"

func TestCNGRandDeterministic(t *testing.T) {
	c1 := &cngState{}
	c2 := &cngState{}
	for i := 0; i < 50; i++ {
		a := c1.rand(1000)
		b := c2.rand(1000)
		if a != b {
			t.Fatalf("cng PRNG must be deterministic from a fixed seed, diverged at step %d", i)
		}
	}
}

func TestCNGPitchLagsInRange(t *testing.T) {
	c := &cngState{seed: 7}
	lags := c.cngPitchLags()
	for _, lag := range lags {
		if lag < 123 || lag > 123+0x7FFF {
			t.Fatalf("cng pitch lag out of expected offset range: %d", lag)
		}
	}
}

func TestDrawPositionsNoRepeats(t *testing.T) {
	c := &cngState{seed: 3}
	positions := c.drawPositions(30, 11)
	seen := map[int]bool{}
	for _, p := range positions {
		if seen[p] {
			t.Fatalf("position %d drawn more than once", p)
		}
		seen[p] = true
		if p < 0 || p >= 30 {
			t.Fatalf("position %d out of pool range", p)
		}
	}
}

func TestSIDGainMappingMonotonic(t *testing.T) {
	if got := sidGainToMagnitude(0); got != 0 {
		t.Fatalf("index 0 must map to silence, got %d", got)
	}
	prev := int32(-1)
	for idx := 0; idx <= 63; idx++ {
		v := sidGainToMagnitude(idx)
		if v <= prev {
			t.Fatalf("gain mapping not strictly increasing at index %d: %d -> %d", idx, prev, v)
		}
		prev = v
	}
	// Out-of-range indices clamp to the table ends.
	if sidGainToMagnitude(-1) != sidGainToMagnitude(0) || sidGainToMagnitude(64) != sidGainToMagnitude(63) {
		t.Fatal("out-of-range indices must clamp")
	}
}

func TestEstimateSIDGainBounded(t *testing.T) {
	exc := make([]int32, FrameLen)
	for i := range exc {
		exc[i] = int32(i * 100)
	}
	idx := estimateSIDGain(exc)
	if idx < 0 || idx > 63 {
		t.Fatalf("sid gain index out of 6-bit range: %d", idx)
	}
}
