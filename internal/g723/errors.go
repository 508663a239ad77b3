package g723

import "errors"

var (
	// ErrInvalidBitstream indicates a forbidden pitch code (>123) or an
	// out-of-range adaptive-codebook gain index was encountered while
	// parsing an ACTIVE frame. This is not a fatal error: the
	// caller is expected to let concealment take over, per the bad-frame
	// policy.
	ErrInvalidBitstream = errors.New("g723: invalid bitstream (forbidden code)")

	// ErrShortFrame indicates the supplied buffer is shorter than the
	// canonical size for its declared frame type. The frame is
	// skipped entirely: no samples are produced.
	ErrShortFrame = errors.New("g723: frame buffer shorter than declared mode requires")
)
