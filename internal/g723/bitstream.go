package g723

import "github.com/speechcore/g723dec/internal/bitreader"

// frameSizeFor returns the canonical byte length for a dec_mode (the low 2
// bits of the first byte).
func frameSizeFor(decMode int) int {
	return frameSize[decMode&3]
}

// Unpack decodes a raw frame buffer into a Frame. It never returns an
// error for a malformed ACTIVE frame's forbidden codes: instead it sets
// Frame.BadFrame so the caller can apply the bad-frame remap policy
// (see also ErrInvalidBitstream's doc comment).
// A short buffer is the only case reported as an error, since it means no
// frame type could be determined safely at all.
func Unpack(buf []byte) (Frame, error) {
	var f Frame
	if len(buf) == 0 {
		return f, ErrShortFrame
	}
	decMode := int(buf[0] & 3)
	need := frameSizeFor(decMode)
	if len(buf) < need {
		return f, ErrShortFrame
	}

	r := bitreader.New(buf[:need])
	infoBits := r.ReadInt(2)
	switch infoBits {
	case 0:
		f.Type = FrameActive6300
	case 1:
		f.Type = FrameActive5300
	case 2:
		f.Type = FrameSID
	default:
		f.Type = FrameUntransmitted
		return f, nil
	}

	// Three 8-bit LSP indices, reverse field order.
	f.LSPIndex[2] = r.ReadInt(8)
	f.LSPIndex[1] = r.ReadInt(8)
	f.LSPIndex[0] = r.ReadInt(8)

	if f.Type == FrameSID {
		f.SIDGain = r.ReadInt(6)
		return f, nil
	}

	// ACTIVE frame: pitch lags and the first adaptive-codebook lag of
	// each subframe pair.
	rawLag0 := r.ReadInt(7)
	if rawLag0 > 123 {
		f.BadFrame = true
		return f, nil
	}
	f.PitchLag[0] = rawLag0 + PitchMin
	f.Subframes[1].AdCbLag = r.ReadInt(2)

	rawLag1 := r.ReadInt(7)
	if rawLag1 > 123 {
		f.BadFrame = true
		return f, nil
	}
	f.PitchLag[1] = rawLag1 + PitchMin
	f.Subframes[3].AdCbLag = r.ReadInt(2)

	f.Subframes[0].AdCbLag = 1
	f.Subframes[2].AdCbLag = 1

	for i := 0; i < Subframes; i++ {
		combined := r.ReadInt(12)
		pairLag := f.PitchLag[i/2]
		tableLen := 170
		if f.Type == FrameActive6300 && pairLag < SubframeLen-2 {
			f.Subframes[i].DiracTrain = (combined >> 11) & 1
			combined &= 0x7FF
			tableLen = 85
		}
		adCbGain := combined / GainLevels
		ampIndex := combined - adCbGain*GainLevels
		if adCbGain >= tableLen {
			f.BadFrame = true
			return f, nil
		}
		f.Subframes[i].AdCbGain = adCbGain
		f.Subframes[i].AmpIndex = ampIndex
	}

	for i := 0; i < Subframes; i++ {
		f.Subframes[i].GridIndex = r.ReadInt(1)
	}

	if f.Type == FrameActive6300 {
		r.Read(1) // reserved bit

		combined := r.Read(13)
		digits := make([]uint32, Subframes)
		remaining := combined
		for i := 0; i < Subframes; i++ {
			base := posBases[i]
			if base > 1 {
				digits[i] = remaining / base
				remaining -= digits[i] * base
			} else {
				digits[i] = remaining
			}
		}

		tailBits := [Subframes]int{16, 14, 16, 14}
		for i := 0; i < Subframes; i++ {
			tail := r.Read(tailBits[i])
			f.Subframes[i].PulsePos = (digits[i] << uint(tailBits[i])) | tail
		}

		signBits := [Subframes]int{6, 5, 6, 5}
		for i := 0; i < Subframes; i++ {
			f.Subframes[i].PulseSign = r.Read(signBits[i])
		}
	} else {
		for i := 0; i < Subframes; i++ {
			f.Subframes[i].PulsePos = r.Read(12)
		}
		for i := 0; i < Subframes; i++ {
			f.Subframes[i].PulseSign = r.Read(4)
		}
	}

	return f, nil
}

// remapBadFrame implements the small state-machine the design notes call
// for: the frame-type the decoder should actually treat a frame as, given
// what was parsed, whether parsing hit a forbidden code, and what the
// previous frame's type was.
func remapBadFrame(parsed FrameType, parseOK bool, past FrameType) FrameType {
	if parseOK {
		return parsed
	}
	if past.IsActive() {
		return FrameActive6300
	}
	return FrameUntransmitted
}
