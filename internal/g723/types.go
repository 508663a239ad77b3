// Package g723 implements the bit-exact fixed-point synthesis pipeline
// for the ITU-T G.723.1 dual-rate speech decoder: bitstream unpacking,
// LSP dequantization and LSP->LPC conversion, fixed- and adaptive-codebook
// excitation, erasure concealment, comfort-noise generation, and the
// pitch/formant post-filters. The package is organized as a persistent
// Decoder state struct, small single-purpose files per DSP stage, and
// package-level constant tables treated as immutable.
package g723

// Normative constants from the codec's data model. These sizes are fixed
// by the bitstream format itself, never configuration.
const (
	FrameLen     = 240 // samples per decoded frame, 30ms @ 8kHz
	Subframes    = 4
	SubframeLen  = 60
	LPCOrder     = 10
	PitchMin     = 18
	PitchMax     = 146
	PitchOrder   = 5 // taps in the adaptive-codebook predictor
	GridSize     = 2
	PulseMax     = 6
	GainLevels   = 24
	LSPBands     = 3
	combGridSlot = SubframeLen / GridSize // 30
)

// FrameType is the tagged variant decoded from the first 2 bits of a
// packet (info_bits).
type FrameType int

const (
	FrameActive6300 FrameType = iota
	FrameActive5300
	FrameSID
	FrameUntransmitted
)

// Rate returns the active bitrate in bits/s for an ACTIVE frame type, or 0
// for SID/UNTRANSMITTED.
func (t FrameType) Rate() int {
	switch t {
	case FrameActive6300:
		return 6300
	case FrameActive5300:
		return 5300
	default:
		return 0
	}
}

func (t FrameType) IsActive() bool {
	return t == FrameActive6300 || t == FrameActive5300
}

// frameSize gives the canonical input size in bytes per dec_mode (the low
// 2 bits of the first byte).
var frameSize = [4]int{24, 20, 4, 1}

// SubframeParams holds the decoded fields for one of the 4 subframes in a
// frame.
type SubframeParams struct {
	AdCbLag    int // 0..3, fine lag offset -1..+2
	AdCbGain   int // combined gain index
	AmpIndex   int // 0..GainLevels-1, fixed-codebook gain index
	DiracTrain int // 0 or 1, 6.3-only
	GridIndex  int // 0 or 1
	PulseSign  uint32
	PulsePos   uint32
}

// Frame holds everything decoded from one bitstream frame, ready for
// synthesis.
type Frame struct {
	Type      FrameType
	LSPIndex  [LSPBands]int
	SIDGain   int    // 6-bit SID amplitude index (SID frames only)
	PitchLag  [2]int // lag for subframe pairs (0,1) and (2,3)
	Subframes [Subframes]SubframeParams
	BadFrame  bool // forbidden code or out-of-range field hit during parse
}

// cngAdaptiveCbLag gives the per-subframe adaptive-codebook lag offset
// used while synthesizing comfort noise.
var cngAdaptiveCbLag = [Subframes]int{1, 0, 1, 3}
