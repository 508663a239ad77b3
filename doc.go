// Package g723dec implements a decoder for the ITU-T G.723.1 dual-rate
// (6.3/5.3 kbit/s) speech codec.
//
// G.723.1 is a fixed-point, frame-based speech codec standardized for
// voice-over-packet and voicemail applications. Each 30ms frame decodes
// to 240 signed 16-bit PCM samples at 8000 Hz, mono. The bitstream
// carries one of four frame types, distinguished by the low 2 bits of
// the first byte: ACTIVE at 6.3 kbit/s (24 bytes), ACTIVE at 5.3 kbit/s
// (20 bytes), SID comfort-noise (4 bytes), and UNTRANSMITTED (1 byte,
// typically silence-suppressed).
//
// # Usage
//
// A Decoder is constructed once per stream and fed consecutive frames:
//
//	dec := g723dec.NewDecoder(g723dec.Config{PostFilter: true})
//	pcm, err := dec.Decode(frame)
//
// When the transport reports a frame lost entirely, call
// DecodeConcealed instead of Decode; the decoder runs its erasure
// concealer and returns a full frame of estimated audio. A frame that
// arrived but failed to parse cleanly (a corrupted bitstream field) is
// concealed automatically by Decode itself, never returned as an error.
//
// This implementation follows the bit-exact fixed-point arithmetic the
// standard specifies throughout: all internal signal processing uses
// saturating integer arithmetic in internal/fixedpoint, never floating
// point, so results are reproducible across platforms.
package g723dec
