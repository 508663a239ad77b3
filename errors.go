// errors.go defines public error types for the g723dec package.

package g723dec

import "github.com/speechcore/g723dec/internal/g723"

// ErrShortFrame indicates the supplied buffer is shorter than the
// canonical size for the frame type its first byte declares. The frame
// is skipped entirely: Decode returns this error and no samples.
// A malformed ACTIVE frame (forbidden pitch code) is deliberately NOT an
// error: the decoder treats it as an erasure and conceals it, per the
// bad-frame policy in the bitstream unpacker.
var ErrShortFrame = g723.ErrShortFrame
