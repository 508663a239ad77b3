package g723

import "testing"

// forbiddenPitchFrame builds a 24-byte ACTIVE@6300 frame whose first
// pitch lag field carries the forbidden code 124.
func forbiddenPitchFrame() []byte {
	var p bitPacker
	p.put(0, 2)
	p.put(0, 24)
	p.put(124, 7)
	return p.bytes(24)
}

// goodActiveFrame builds a parseable 24-byte ACTIVE@6300 frame with
// non-trivial pitch and codebook fields.
func goodActiveFrame() []byte {
	var p bitPacker
	p.put(0, 2)
	p.put(0x11, 8)
	p.put(0x22, 8)
	p.put(0x33, 8)
	p.put(40, 7) // pitch_lag[0] = 58
	p.put(1, 2)
	p.put(42, 7) // pitch_lag[1] = 60
	p.put(1, 2)
	for i := 0; i < Subframes; i++ {
		p.put(24*2+5, 12) // ad_cb_gain 2, amp_index 5
	}
	for i := 0; i < Subframes; i++ {
		p.put(uint32(i&1), 1)
	}
	p.put(0, 1)  // reserved
	p.put(0, 13) // combined pulse position digits
	p.put(0, 16)
	p.put(0, 14)
	p.put(0, 16)
	p.put(0, 14)
	p.put(0x2A, 6)
	p.put(0x15, 5)
	p.put(0x2A, 6)
	p.put(0x15, 5)
	return p.bytes(24)
}

func TestDecodeIsDeterministic(t *testing.T) {
	frames := [][]byte{
		goodActiveFrame(),
		sidFrame(),
		untransmittedFrame(),
		goodActiveFrame(),
		forbiddenPitchFrame(),
	}
	a := NewDecoder(true)
	b := NewDecoder(true)
	for i, f := range frames {
		outA, _, errA := a.DecodeFrame(f)
		outB, _, errB := b.DecodeFrame(f)
		if errA != errB {
			t.Fatalf("frame %d: error mismatch %v vs %v", i, errA, errB)
		}
		if outA != outB {
			t.Fatalf("frame %d: identical inputs from identical state diverged", i)
		}
	}
}

func TestFreshUntransmittedIsNearSilent(t *testing.T) {
	d := NewDecoder(true)
	out, n, err := d.DecodeFrame(untransmittedFrame())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1 {
		t.Fatalf("consumed %d bytes, want 1", n)
	}
	for i, v := range out {
		if v > 16 || v < -16 {
			t.Fatalf("sample %d = %d, want near-zero from fresh state", i, v)
		}
	}
	if d.pastFrameType != FrameUntransmitted {
		t.Fatalf("past frame type = %v, want untransmitted", d.pastFrameType)
	}
}

func TestForbiddenPitchFromFreshStateEntersCNG(t *testing.T) {
	d := NewDecoder(true)
	_, _, err := d.DecodeFrame(forbiddenPitchFrame())
	if err != nil {
		t.Fatalf("a forbidden code must be concealed, not reported: %v", err)
	}
	// Initial past type is SID, so the bad frame remaps to CNG
	// continuation rather than speech erasure.
	if d.pastFrameType != FrameUntransmitted {
		t.Fatalf("past frame type = %v, want untransmitted", d.pastFrameType)
	}
}

func TestThreeErasuresMuteOutput(t *testing.T) {
	d := NewDecoder(false)
	if _, _, err := d.DecodeFrame(goodActiveFrame()); err != nil {
		t.Fatalf("good frame: %v", err)
	}
	bad := forbiddenPitchFrame()
	var out [FrameLen]int16
	for i := 0; i < 3; i++ {
		var err error
		out, _, err = d.DecodeFrame(bad)
		if err != nil {
			t.Fatalf("bad frame %d: %v", i, err)
		}
	}
	for i, v := range out {
		if v != 0 {
			t.Fatalf("third erasure sample %d = %d, want full mute", i, v)
		}
	}
	if d.prevExcitation != [PitchMax]int32{} {
		t.Fatal("mute must zero the excitation history")
	}
	if d.erasedFrames != 3 {
		t.Fatalf("erasedFrames = %d, want saturated at 3", d.erasedFrames)
	}

	// A following good frame must decode cleanly and reset the counter.
	if _, _, err := d.DecodeFrame(goodActiveFrame()); err != nil {
		t.Fatalf("recovery frame: %v", err)
	}
	if d.erasedFrames != 0 {
		t.Fatalf("erasedFrames = %d after a good frame, want 0", d.erasedFrames)
	}
}

func TestRateSwitchStaysStable(t *testing.T) {
	var p bitPacker
	p.put(1, 2) // ACTIVE @ 5300
	p.put(0x44, 8)
	p.put(0x55, 8)
	p.put(0x66, 8)
	p.put(30, 7)
	p.put(1, 2)
	p.put(33, 7)
	p.put(1, 2)
	for i := 0; i < Subframes; i++ {
		p.put(24*1+3, 12)
	}
	for i := 0; i < Subframes; i++ {
		p.put(0, 1)
	}
	for i := 0; i < Subframes; i++ {
		p.put(0x155, 12)
	}
	for i := 0; i < Subframes; i++ {
		p.put(0x5, 4)
	}
	frame5300 := p.bytes(20)

	d := NewDecoder(true)
	if _, n, err := d.DecodeFrame(goodActiveFrame()); err != nil || n != 24 {
		t.Fatalf("6300 frame: n=%d err=%v", n, err)
	}
	out, n, err := d.DecodeFrame(frame5300)
	if err != nil || n != 20 {
		t.Fatalf("5300 frame: n=%d err=%v", n, err)
	}
	_ = out
}

func TestConcealFrameAdvancesStateLikeAnErasure(t *testing.T) {
	d := NewDecoder(true)
	if _, _, err := d.DecodeFrame(goodActiveFrame()); err != nil {
		t.Fatalf("good frame: %v", err)
	}
	before := d.erasedFrames
	d.ConcealFrame()
	if d.erasedFrames != before+1 {
		t.Fatalf("erasedFrames = %d, want %d", d.erasedFrames, before+1)
	}
	if !d.pastFrameType.IsActive() {
		t.Fatalf("concealing an active stream must stay active, got %v", d.pastFrameType)
	}
}

func TestShortFrameConsumesSuppliedBytes(t *testing.T) {
	d := NewDecoder(true)
	_, n, err := d.DecodeFrame([]byte{0x00, 0x01, 0x02})
	if err != ErrShortFrame {
		t.Fatalf("got %v, want ErrShortFrame", err)
	}
	if n != 3 {
		t.Fatalf("consumed %d, want all 3 supplied bytes", n)
	}
}

func TestSIDUpdatesComfortNoiseReference(t *testing.T) {
	var p bitPacker
	p.put(2, 2)
	p.put(0x10, 8)
	p.put(0x20, 8)
	p.put(0x30, 8)
	p.put(0x18, 6)
	sid := p.bytes(4)

	d := NewDecoder(true)
	if _, _, err := d.DecodeFrame(sid); err != nil {
		t.Fatalf("sid frame: %v", err)
	}
	if d.sidLSP == dcLsp {
		t.Fatal("a SID frame with non-zero LSP indices must move the CNG reference spectrum")
	}
	if d.sidGain != sidGainToMagnitude(0x18) {
		t.Fatalf("sid gain = %d, want table entry for index 0x18", d.sidGain)
	}
}
