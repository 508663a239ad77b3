package g723

import "testing"

func TestDecodeAdaptiveCodebookZeroLag(t *testing.T) {
	history := make([]int32, PitchMax)
	out := decodeAdaptiveCodebook(history, 0, 0, 0, true)
	for _, v := range out {
		if v != 0 {
			t.Fatalf("zero effective lag should yield silent excitation, got %v", v)
		}
	}
}

func TestDecodeAdaptiveCodebookBounded(t *testing.T) {
	history := make([]int32, PitchMax)
	for i := range history {
		history[i] = int32(i*37%4000 - 2000)
	}
	out := decodeAdaptiveCodebook(history, 40, 1, 5, true)
	for _, v := range out {
		if v > 1<<20 || v < -(1<<20) {
			t.Fatalf("predictor output out of sane range: %d", v)
		}
	}
}

func TestDecodeAdaptiveCodebookUsesLagVariant(t *testing.T) {
	history := make([]int32, PitchMax)
	for i := range history {
		history[i] = int32((i*97)%6000 - 3000)
	}
	// Same effective lag reached through different ad_cb_lag values must
	// still select different fractional-lag predictor taps.
	a := decodeAdaptiveCodebook(history, 50, 1, 12, false)
	b := decodeAdaptiveCodebook(history, 48, 3, 12, false)
	if a == b {
		t.Fatal("different ad_cb_lag variants must apply different predictor taps")
	}
}

func TestCombineExcitationSaturates(t *testing.T) {
	var a, b [SubframeLen]int32
	a[0] = 1 << 30
	b[0] = 1 << 30
	out := combineExcitation(a, b)
	if out[0] != 1<<31-1 {
		t.Fatalf("expected saturation to int32 max, got %d", out[0])
	}
}
