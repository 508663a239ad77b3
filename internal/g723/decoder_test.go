package g723

import "testing"

func untransmittedFrame() []byte {
	return []byte{0x03}
}

func sidFrame() []byte {
	buf := make([]byte, 4)
	buf[0] = 0x02
	return buf
}

func activeFrame6300() []byte {
	buf := make([]byte, 24)
	buf[0] = 0x00
	return buf
}

func TestDecodeFrameUntransmittedProducesSilence(t *testing.T) {
	d := NewDecoder(true)
	out, n, err := d.DecodeFrame(untransmittedFrame())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 byte consumed, got %d", n)
	}
	for i, v := range out {
		if v != 0 {
			t.Fatalf("sample %d = %d, want silence from fresh state", i, v)
		}
	}
}

func TestDecodeFrameShortBufferErrors(t *testing.T) {
	d := NewDecoder(true)
	_, _, err := d.DecodeFrame([]byte{0x00, 0x01})
	if err != ErrShortFrame {
		t.Fatalf("expected ErrShortFrame, got %v", err)
	}
}

func TestDecodeFrameSIDDoesNotPanic(t *testing.T) {
	d := NewDecoder(true)
	_, n, err := d.DecodeFrame(sidFrame())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 4 {
		t.Fatalf("expected 4 bytes consumed, got %d", n)
	}
}

func TestDecodeFrameActiveDoesNotPanic(t *testing.T) {
	d := NewDecoder(true)
	out, n, err := d.DecodeFrame(activeFrame6300())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 24 {
		t.Fatalf("expected 24 bytes consumed, got %d", n)
	}
	if len(out) != FrameLen {
		t.Fatalf("expected %d samples, got %d", FrameLen, len(out))
	}
}

func TestResetRestoresColdStart(t *testing.T) {
	d := NewDecoder(true)
	d.DecodeFrame(activeFrame6300())
	d.Reset()
	if d.prevLSP != dcLsp {
		t.Fatalf("reset must restore prevLSP to the DC initializer")
	}
	if d.erasedFrames != 0 {
		t.Fatalf("reset must clear erasedFrames")
	}
}

func TestDecodeFrameSequenceStaysStable(t *testing.T) {
	d := NewDecoder(true)
	frames := [][]byte{activeFrame6300(), activeFrame6300(), sidFrame(), untransmittedFrame(), activeFrame6300()}
	for i, f := range frames {
		if _, _, err := d.DecodeFrame(f); err != nil {
			t.Fatalf("frame %d: unexpected error %v", i, err)
		}
	}
}
