package g723

import "testing"

func TestSynthesizeSilentInputStaysNearZero(t *testing.T) {
	var mem [LPCOrder]int32
	var lpc [LPCOrder]int32
	var exc [SubframeLen]int32

	out := synthesize(&mem, lpc, exc)
	for _, v := range out {
		if v != 0 {
			t.Fatalf("zero excitation through zero LPC must stay silent, got %d", v)
		}
	}
}

func TestSynthesizeUpdatesMemory(t *testing.T) {
	var mem [LPCOrder]int32
	var lpc [LPCOrder]int32
	var exc [SubframeLen]int32
	// With all-zero LPC the filter does not ring, so the impulse sits in
	// the last sample, inside the tail the memory keeps.
	exc[SubframeLen-1] = 1 << 16

	synthesize(&mem, lpc, exc)
	allZero := true
	for _, v := range mem {
		if v != 0 {
			allZero = false
		}
	}
	if allZero {
		t.Fatalf("synthesis memory should reflect the tail of this subframe's output")
	}
}
