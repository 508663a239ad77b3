package g723

import "testing"

// bitPacker assembles test frames LSB-first within each byte, mirroring
// the wire order the Reader consumes.
type bitPacker struct {
	buf    []byte
	bitPos int
}

func (p *bitPacker) put(v uint32, n int) {
	for i := 0; i < n; i++ {
		byteIdx := p.bitPos >> 3
		for byteIdx >= len(p.buf) {
			p.buf = append(p.buf, 0)
		}
		if (v>>uint(i))&1 != 0 {
			p.buf[byteIdx] |= 1 << uint(p.bitPos&7)
		}
		p.bitPos++
	}
}

func (p *bitPacker) bytes(size int) []byte {
	out := make([]byte, size)
	copy(out, p.buf)
	return out
}

func TestUnpackUntransmitted(t *testing.T) {
	f, err := Unpack([]byte{0x03})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Type != FrameUntransmitted {
		t.Fatalf("type = %v, want untransmitted", f.Type)
	}
}

func TestUnpackShortBuffer(t *testing.T) {
	if _, err := Unpack(nil); err != ErrShortFrame {
		t.Fatalf("empty buffer: got %v, want ErrShortFrame", err)
	}
	// Declares 6300 (24 bytes) but supplies 5.
	if _, err := Unpack(make([]byte, 5)); err != ErrShortFrame {
		t.Fatalf("truncated active frame: got %v, want ErrShortFrame", err)
	}
}

func TestUnpackSIDFieldOrder(t *testing.T) {
	var p bitPacker
	p.put(2, 2) // info_bits: SID
	p.put(0xAB, 8)
	p.put(0xCD, 8)
	p.put(0xEF, 8)
	p.put(0x15, 6) // amp index

	f, err := Unpack(p.bytes(4))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Type != FrameSID {
		t.Fatalf("type = %v, want SID", f.Type)
	}
	// The three LSP bytes arrive highest band first.
	if f.LSPIndex[2] != 0xAB || f.LSPIndex[1] != 0xCD || f.LSPIndex[0] != 0xEF {
		t.Fatalf("lsp indices = %v, want [0xEF 0xCD 0xAB]", f.LSPIndex)
	}
	if f.SIDGain != 0x15 {
		t.Fatalf("sid gain = %#x, want 0x15", f.SIDGain)
	}
}

func TestUnpackForbiddenPitchCode(t *testing.T) {
	var p bitPacker
	p.put(0, 2)   // ACTIVE @ 6300
	p.put(0, 24)  // LSP indices
	p.put(124, 7) // forbidden pitch code

	f, err := Unpack(p.bytes(24))
	if err != nil {
		t.Fatalf("forbidden code must not be an error, got %v", err)
	}
	if !f.BadFrame {
		t.Fatal("expected BadFrame for pitch code 124")
	}
}

func TestUnpackActivePitchAndLagFields(t *testing.T) {
	var p bitPacker
	p.put(0, 2)  // ACTIVE @ 6300
	p.put(0, 24) // LSP indices
	p.put(40, 7) // pitch_lag[0] = 40 + PitchMin
	p.put(2, 2)  // subframe 1 ad_cb_lag
	p.put(55, 7) // pitch_lag[1] = 55 + PitchMin
	p.put(3, 2)  // subframe 3 ad_cb_lag

	f, err := Unpack(p.bytes(24))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.BadFrame {
		t.Fatal("unexpected bad frame")
	}
	if f.PitchLag[0] != 40+PitchMin || f.PitchLag[1] != 55+PitchMin {
		t.Fatalf("pitch lags = %v", f.PitchLag)
	}
	if f.Subframes[1].AdCbLag != 2 || f.Subframes[3].AdCbLag != 3 {
		t.Fatalf("odd subframe lags = %d,%d", f.Subframes[1].AdCbLag, f.Subframes[3].AdCbLag)
	}
	if f.Subframes[0].AdCbLag != 1 || f.Subframes[2].AdCbLag != 1 {
		t.Fatalf("even subframes must default ad_cb_lag to 1")
	}
}

func TestUnpackDiracTrainAndGainSplit(t *testing.T) {
	var p bitPacker
	p.put(0, 2)  // ACTIVE @ 6300
	p.put(0, 24) // LSP
	p.put(20, 7) // pitch_lag[0] = 38, < SUBFRAME_LEN-2, so dirac applies
	p.put(0, 2)
	p.put(20, 7) // pitch_lag[1] = 38
	p.put(0, 2)

	// Subframe 0 combined gain: dirac bit set, gain payload 24*3+7.
	p.put((1<<11)|uint32(24*3+7), 12)
	p.put(0, 12)
	p.put(0, 12)
	p.put(0, 12)

	f, err := Unpack(p.bytes(24))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sf := f.Subframes[0]
	if sf.DiracTrain != 1 {
		t.Fatal("dirac train bit lost")
	}
	if sf.AdCbGain != 3 || sf.AmpIndex != 7 {
		t.Fatalf("gain split = (%d,%d), want (3,7)", sf.AdCbGain, sf.AmpIndex)
	}
}

func TestUnpackOutOfRangeAdCbGain(t *testing.T) {
	var p bitPacker
	p.put(1, 2)  // ACTIVE @ 5300: table length always 170
	p.put(0, 24) // LSP
	p.put(0, 7)  // pitch_lag[0]
	p.put(0, 2)
	p.put(0, 7) // pitch_lag[1]
	p.put(0, 2)
	p.put(4095, 12) // combined gain: 4095/24 = 170, out of range

	f, err := Unpack(p.bytes(20))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !f.BadFrame {
		t.Fatal("expected BadFrame for ad_cb_gain >= 170")
	}
}

func TestUnpack5300PulseFields(t *testing.T) {
	var p bitPacker
	p.put(1, 2)  // ACTIVE @ 5300
	p.put(0, 24) // LSP
	p.put(10, 7)
	p.put(0, 2)
	p.put(10, 7)
	p.put(0, 2)
	for i := 0; i < Subframes; i++ {
		p.put(0, 12) // combined gains
	}
	for i := 0; i < Subframes; i++ {
		p.put(1, 1) // grid indices
	}
	for i := 0; i < Subframes; i++ {
		p.put(uint32(0x321+i), 12) // pulse positions
	}
	for i := 0; i < Subframes; i++ {
		p.put(uint32(i), 4) // pulse signs
	}

	f, err := Unpack(p.bytes(20))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < Subframes; i++ {
		if f.Subframes[i].PulsePos != uint32(0x321+i) {
			t.Fatalf("subframe %d pulse pos = %#x", i, f.Subframes[i].PulsePos)
		}
		if f.Subframes[i].PulseSign != uint32(i) {
			t.Fatalf("subframe %d pulse sign = %#x", i, f.Subframes[i].PulseSign)
		}
		if f.Subframes[i].GridIndex != 1 {
			t.Fatalf("subframe %d grid index lost", i)
		}
	}
}

func TestRemapBadFrame(t *testing.T) {
	cases := []struct {
		parsed FrameType
		ok     bool
		past   FrameType
		want   FrameType
	}{
		{FrameActive6300, true, FrameSID, FrameActive6300},
		{FrameSID, true, FrameActive6300, FrameSID},
		{FrameActive6300, false, FrameActive6300, FrameActive6300},
		{FrameActive6300, false, FrameActive5300, FrameActive6300},
		{FrameActive6300, false, FrameSID, FrameUntransmitted},
		{FrameActive5300, false, FrameUntransmitted, FrameUntransmitted},
	}
	for i, c := range cases {
		if got := remapBadFrame(c.parsed, c.ok, c.past); got != c.want {
			t.Fatalf("case %d: got %v, want %v", i, got, c.want)
		}
	}
}
