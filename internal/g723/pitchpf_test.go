package g723

import "testing"

func TestPitchPostFilterSilenceStaysSilent(t *testing.T) {
	buf := make([]int32, PitchMax+FrameLen)
	out := pitchPostFilter(buf, PitchMax, 60, 6300)
	for i, v := range out {
		if v != 0 {
			t.Fatalf("silent input produced %d at %d", v, i)
		}
	}
}

func TestPitchPostFilterPreservesLength(t *testing.T) {
	buf := make([]int32, PitchMax+FrameLen)
	for i := range buf {
		buf[i] = int32((i%70)*100 - 3500)
	}
	out := pitchPostFilter(buf, PitchMax+SubframeLen, 70, 5300)
	if len(out) != SubframeLen {
		t.Fatalf("output length %d, want %d", len(out), SubframeLen)
	}
}

func TestPitchPostFilterReinforcesPeriodicSignal(t *testing.T) {
	const lag = 60
	buf := make([]int32, PitchMax+FrameLen)
	for i := range buf {
		if i%lag == 0 {
			buf[i] = 8000
		}
	}
	offset := PitchMax + 3*SubframeLen // last subframe: only the past is usable
	out := pitchPostFilter(buf, offset, lag, 6300)
	for k := 0; k < SubframeLen; k++ {
		orig := buf[offset+k]
		if orig != 0 && out[k] == 0 {
			t.Fatalf("pitch pulse at %d was erased", k)
		}
		if orig == 0 && (out[k] > 4000 || out[k] < -4000) {
			t.Fatalf("excess energy introduced at %d: %d", k, out[k])
		}
	}
}

func TestBestLagFindsPeriodBothDirections(t *testing.T) {
	const lag = 40
	buf := make([]int32, PitchMax+FrameLen)
	for i := range buf {
		if i%lag == 0 {
			buf[i] = 5000
		}
	}
	offset := PitchMax + SubframeLen

	got, ccr, res := bestLag(buf, offset, lag, -1)
	if got != -lag {
		t.Fatalf("best past lag = %d, want %d", got, -lag)
	}
	if ccr <= 0 || res <= 0 {
		t.Fatalf("expected positive correlation and energy, got %d/%d", ccr, res)
	}

	got, _, _ = bestLag(buf, offset, lag, +1)
	if got != lag {
		t.Fatalf("best future lag = %d, want %d", got, lag)
	}
}

func TestBestLagNoCandidateOutsideBuffer(t *testing.T) {
	buf := make([]int32, PitchMax+FrameLen)
	for i := range buf {
		buf[i] = int32(i % 97)
	}
	// The last subframe has no future samples to search.
	got, _, _ := bestLag(buf, PitchMax+3*SubframeLen, 90, +1)
	if got != 0 {
		t.Fatalf("future search past the buffer end must yield 0, got %d", got)
	}
}
