package g723

import "github.com/speechcore/g723dec/internal/plc"

// Decoder holds the full persistent state of one G.723.1 decoder
// instance. Distinct instances are independent; a single instance
// must not be shared between goroutines without external locking.
type Decoder struct {
	prevLSP [LPCOrder]int32
	sidLSP  [LPCOrder]int32

	prevExcitation [PitchMax]int32

	synthMem [LPCOrder]int32
	formant  formantFilterState

	pitchLag [2]int // lags for subframe pairs (0,1) and (2,3)

	erasedFrames int
	interpGain   int32
	interpIndex  int

	sidGain int32
	curGain int32

	randomSeed uint32
	cng        cngState

	pastFrameType FrameType

	postfilter bool
}

// NewDecoder returns a freshly initialized Decoder, matching the
// reference decoder's cold-start condition.
func NewDecoder(postfilter bool) *Decoder {
	d := &Decoder{postfilter: postfilter}
	d.Reset()
	return d
}

// Reset restores the decoder to its cold-start state, as if freshly
// constructed, without discarding its postfilter configuration.
func (d *Decoder) Reset() {
	d.prevLSP = dcLsp
	d.sidLSP = dcLsp
	d.prevExcitation = [PitchMax]int32{}
	d.synthMem = [LPCOrder]int32{}
	d.formant = newFormantFilterState()
	d.pitchLag = [2]int{PitchMin, PitchMin}
	d.erasedFrames = 0
	d.interpGain = 0
	d.interpIndex = 0
	d.sidGain = 0
	d.curGain = 0
	d.randomSeed = cngInitialSeed
	d.cng = cngState{seed: cngInitialSeed}
	// The past type starts as SID so a lost first frame falls into CNG
	// continuation rather than speech concealment.
	d.pastFrameType = FrameSID
}

// DecodeFrame decodes one bitstream frame into a 240-sample output
// buffer and reports how many input bytes were consumed. A
// buffer shorter than its declared frame type's canonical size yields
// ErrShortFrame, consumes everything that was supplied, and produces no
// samples. A parseable but corrupted ACTIVE frame is not an error: it
// is concealed via the bad-frame path. Callers with no bitstream at all
// (a frame reported lost by the transport) should call ConcealFrame
// instead.
func (d *Decoder) DecodeFrame(buf []byte) ([FrameLen]int16, int, error) {
	var out [FrameLen]int16

	parsed, err := Unpack(buf)
	if err != nil {
		return out, len(buf), err
	}

	frameType := remapBadFrame(parsed.Type, !parsed.BadFrame, d.pastFrameType)

	var excitation [FrameLen]int32
	var lpcSet [Subframes][LPCOrder]int32

	if frameType.IsActive() {
		d.decodeActive(parsed, frameType, &excitation, &lpcSet)
	} else {
		d.decodeNonActive(parsed, frameType, &excitation, &lpcSet)
	}

	out = d.finishFrame(excitation, lpcSet)
	d.pastFrameType = frameType
	return out, frameSizeFor(int(parsed.Type)), nil
}

// ConcealFrame runs the erasure concealer for one lost frame with no
// associated bitstream at all (as opposed to a received-but-corrupted
// ACTIVE frame, which DecodeFrame conceals via its bad-frame path). It
// advances decoder state exactly as a bad frame would: speech erasure
// when the stream was active, CNG continuation otherwise.
func (d *Decoder) ConcealFrame() [FrameLen]int16 {
	frameType := remapBadFrame(FrameUntransmitted, false, d.pastFrameType)

	var excitation [FrameLen]int32
	var lpcSet [Subframes][LPCOrder]int32
	lost := Frame{Type: frameType, BadFrame: true, PitchLag: d.pitchLag}
	if frameType.IsActive() {
		d.decodeActive(lost, frameType, &excitation, &lpcSet)
	} else {
		d.decodeNonActive(lost, frameType, &excitation, &lpcSet)
	}

	out := d.finishFrame(excitation, lpcSet)
	d.pastFrameType = frameType
	return out
}

// finishFrame runs LP synthesis and, if enabled, the formant
// post-filter over one frame's excitation and LPC sets.
func (d *Decoder) finishFrame(excitation [FrameLen]int32, lpcSet [Subframes][LPCOrder]int32) [FrameLen]int16 {
	var out [FrameLen]int16
	audio := make([]int32, LPCOrder+FrameLen)
	copy(audio[:LPCOrder], d.synthMem[:])
	for s := 0; s < Subframes; s++ {
		var exc [SubframeLen]int32
		copy(exc[:], excitation[s*SubframeLen:(s+1)*SubframeLen])
		res := synthesize(&d.synthMem, lpcSet[s], exc)
		copy(audio[LPCOrder+s*SubframeLen:], res[:])
	}

	if d.postfilter {
		for s := 0; s < Subframes; s++ {
			window := audio[s*SubframeLen : LPCOrder+(s+1)*SubframeLen]
			var filtered [SubframeLen]int32
			d.formant.applyFormantPostFilter(filtered[:], window, lpcSet[s])
			for i, v := range filtered {
				out[s*SubframeLen+i] = clipToInt16(v)
			}
		}
	} else {
		for i := 0; i < FrameLen; i++ {
			out[i] = clipToInt16(audio[LPCOrder+i] << 1)
		}
	}
	return out
}

func clipToInt16(v int32) int16 {
	if v > 1<<15-1 {
		return 1<<15 - 1
	}
	if v < -(1 << 15) {
		return -(1 << 15)
	}
	return int16(v)
}

// decodeActive implements the ACTIVE-frame path: LSP
// dequantization, LPC interpolation, and per-subframe excitation
// synthesis (fixed + adaptive codebook, with pitch post-filtering), or,
// on an erased frame, residual interpolation concealment.
func (d *Decoder) decodeActive(f Frame, frameType FrameType, excitation *[FrameLen]int32, lpcSet *[Subframes][LPCOrder]int32) {
	good := !f.BadFrame
	if good {
		d.erasedFrames = 0
		d.pitchLag = f.PitchLag
	} else if d.erasedFrames < 3 {
		d.erasedFrames++
	}

	var curLSP [LPCOrder]int32
	dequantLSP(&curLSP, d.prevLSP, f.LSPIndex, good)
	*lpcSet = interpolateLPC(curLSP, d.prevLSP)
	d.prevLSP = curLSP

	history := make([]int32, PitchMax+FrameLen)
	copy(history[:PitchMax], d.prevExcitation[:])

	switch {
	case good:
		rate := frameType.Rate()
		for s := 0; s < Subframes; s++ {
			pairLag := f.PitchLag[s/2]
			sf := f.Subframes[s]

			fixed := decodeFixedCodebook(rate, s, sf, pairLag)
			use85 := rate == 6300 && pairLag < 58
			adaptive := decodeAdaptiveCodebook(history[:PitchMax+s*SubframeLen], pairLag, sf.AdCbLag, sf.AdCbGain, use85)
			combined := combineExcitation(fixed, adaptive)
			copy(history[PitchMax+s*SubframeLen:], combined[:])
			copy(excitation[s*SubframeLen:(s+1)*SubframeLen], combined[:])
		}

		// Concealment carryover for a possible erasure next frame: the
		// voicing lag over the frame's own excitation and a gain level
		// representative of the frame's second half.
		d.interpIndex = classifyVoicing(history, f.PitchLag[1])
		d.interpGain = fixedCbGain[(f.Subframes[2].AmpIndex+f.Subframes[3].AmpIndex)>>1]

		if d.postfilter {
			for s := 0; s < Subframes; s++ {
				filtered := pitchPostFilter(history, PitchMax+s*SubframeLen, f.PitchLag[s/2], rate)
				copy(excitation[s*SubframeLen:(s+1)*SubframeLen], filtered[:])
			}
		}

		copy(d.prevExcitation[:], history[len(history)-PitchMax:])

	case d.erasedFrames == 3:
		// Third consecutive erasure: full mute. Excitation history and
		// filter memories are all zeroed so the output is exactly
		// silent, not a decaying filter tail.
		*excitation = [FrameLen]int32{}
		d.prevExcitation = [PitchMax]int32{}
		d.synthMem = [LPCOrder]int32{}
		d.formant.iirHistory = [LPCOrder]int32{}

	default:
		d.interpGain = (d.interpGain * 3) >> 2
		if d.interpIndex > 0 {
			plc.ConcealVoiced(excitation[:], d.prevExcitation[:], d.interpIndex)
			copy(d.prevExcitation[:], excitation[FrameLen-PitchMax:])
		} else {
			rnd := &plc.RandomState{Seed: d.randomSeed}
			plc.ConcealUnvoiced(excitation[:], d.interpGain, rnd)
			d.randomSeed = rnd.Seed
			d.prevExcitation = [PitchMax]int32{}
		}
	}

	d.cng.seed = cngInitialSeed
}

// decodeNonActive implements the SID/UNTRANSMITTED path:
// deriving the comfort-noise gain, generating noise excitation, and
// interpolating LPC from the SID/previous LSP vectors.
func (d *Decoder) decodeNonActive(f Frame, frameType FrameType, excitation *[FrameLen]int32, lpcSet *[Subframes][LPCOrder]int32) {
	switch {
	case frameType == FrameSID:
		var lsp [LPCOrder]int32
		dequantLSP(&lsp, d.prevLSP, f.LSPIndex, !f.BadFrame)
		d.sidLSP = lsp
		d.sidGain = sidGainToMagnitude(f.SIDGain)
	case d.pastFrameType.IsActive():
		// First CNG frame after active speech with no SID received:
		// estimate the noise floor from the last speech excitation.
		d.sidGain = sidGainToMagnitude(estimateSIDGain(d.prevExcitation[:]))
	}
	d.curGain = (7*d.curGain + d.sidGain) >> 3

	d.generateNoise(excitation)

	*lpcSet = interpolateLPC(d.sidLSP, d.prevLSP)
	d.prevLSP = d.sidLSP
}
