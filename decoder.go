// decoder.go implements the public Decoder API for G.723.1 decoding.

package g723dec

import (
	"github.com/charmbracelet/log"

	"github.com/speechcore/g723dec/internal/g723"
)

// FrameLen is the number of PCM samples a single decoded frame produces.
const FrameLen = g723.FrameLen

// Config configures a Decoder.
type Config struct {
	// PostFilter enables the pitch and formant post-filters, matching
	// the reference decoder's optional quality enhancement stage.
	// NewDecoder uses the value as given; it has no default of its own,
	// so a zero Config leaves the post-filters off.
	PostFilter bool

	// Logger receives Debug-level messages when Decode skips a frame
	// that is too short and when DecodeConcealed runs. Frames concealed
	// inside Decode and frame type transitions are not logged. A nil
	// Logger disables logging entirely.
	Logger *log.Logger
}

// Decoder decodes G.723.1 frames into PCM audio samples.
//
// A Decoder instance maintains internal state and is NOT safe for
// concurrent use. Each goroutine should create its own Decoder
// instance.
type Decoder struct {
	engine *g723.Decoder
	logger *log.Logger
}

// NewDecoder creates a new G.723.1 decoder using cfg.
func NewDecoder(cfg Config) *Decoder {
	return &Decoder{
		engine: g723.NewDecoder(cfg.PostFilter),
		logger: cfg.Logger,
	}
}

// Decode decodes one G.723.1 frame into 240 signed 16-bit PCM samples.
//
// data is the raw frame buffer; its first byte's low 2 bits select the
// frame type and therefore the expected length. A buffer shorter than
// its declared type's canonical length returns ErrShortFrame and no
// samples. A parseable but corrupted frame is concealed automatically,
// not reported as an error. For frames the transport reports lost
// entirely, use DecodeConcealed instead of calling Decode with no data.
func (d *Decoder) Decode(data []byte) ([]int16, error) {
	samples, _, err := d.engine.DecodeFrame(data)
	if err != nil {
		if d.logger != nil {
			d.logger.Debug("frame skipped", "err", err, "len", len(data))
		}
		return nil, err
	}
	out := make([]int16, FrameLen)
	copy(out, samples[:])
	return out, nil
}

// DecodeConcealed runs the erasure concealer for one frame the
// transport reported lost entirely (no bitstream at all), returning the
// decoder's best estimate of the missing audio.
func (d *Decoder) DecodeConcealed() []int16 {
	if d.logger != nil {
		d.logger.Debug("concealing lost frame")
	}
	samples := d.engine.ConcealFrame()
	out := make([]int16, FrameLen)
	copy(out, samples[:])
	return out
}

// Reset restores the decoder to its cold-start state, as if freshly
// constructed with the same Config. Call this when starting to decode a
// new, unrelated stream.
func (d *Decoder) Reset() {
	d.engine.Reset()
}
