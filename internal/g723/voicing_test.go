package g723

import "testing"

func TestClassifyVoicingPeriodicSignal(t *testing.T) {
	const period = 50
	buf := make([]int32, PitchMax+2*SubframeLen+10)
	for i := range buf {
		buf[i] = int32(1000 * (i % period))
	}
	lag := classifyVoicing(buf, period)
	if lag == 0 {
		t.Fatalf("expected a nonzero lag for a strongly periodic signal")
	}
}

func TestClassifyVoicingSilence(t *testing.T) {
	buf := make([]int32, PitchMax+2*SubframeLen+10)
	lag := classifyVoicing(buf, 60)
	if lag != 0 {
		t.Fatalf("silence must classify as unvoiced, got lag %d", lag)
	}
}
