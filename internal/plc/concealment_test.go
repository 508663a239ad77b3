package plc

import "testing"

func TestConcealVoicedTilesLastCycle(t *testing.T) {
	history := make([]int32, 200)
	for i := range history {
		history[i] = int32(i)
	}
	out := make([]int32, FrameLen)
	const lag = 40
	ConcealVoiced(out, history, lag)

	want0 := (history[len(history)-lag] * 3) / 4
	if out[0] != want0 {
		t.Fatalf("out[0] = %d, want %d", out[0], want0)
	}
	if out[lag] != out[0] {
		t.Fatalf("tiling should repeat the first cycle at offset lag")
	}
}

func TestConcealUnvoicedDeterministic(t *testing.T) {
	r1 := &RandomState{Seed: 42}
	r2 := &RandomState{Seed: 42}
	out1 := make([]int32, FrameLen)
	out2 := make([]int32, FrameLen)
	ConcealUnvoiced(out1, 1000, r1)
	ConcealUnvoiced(out2, 1000, r2)
	for i := range out1 {
		if out1[i] != out2[i] {
			t.Fatalf("same seed must produce identical noise at index %d", i)
		}
	}
}

func TestConcealUnvoicedBounded(t *testing.T) {
	r := &RandomState{Seed: 1}
	out := make([]int32, FrameLen)
	ConcealUnvoiced(out, 5000, r)
	for _, v := range out {
		if v > 5000 || v < -5000 {
			t.Fatalf("noise sample %d out of expected gain-bounded range", v)
		}
	}
}
