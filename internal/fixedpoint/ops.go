// Package fixedpoint implements the bit-exact saturating arithmetic
// primitives the G.723.1 decoder is built on. Every operation here is
// normative: the reference fixed-point decoder defines its output in
// terms of these exact shifts, rounding constants, and saturation rules,
// so none of them may be replaced by a floating-point approximation.
//
// Each helper does exactly one job with explicit operand widths:
// saturating adds, clips, scaled multiplies, and the bit-by-bit square
// root, named for the operation they perform.
package fixedpoint

import (
	"math/bits"

	"github.com/speechcore/g723dec/util"
)

const (
	int32Max = 1<<31 - 1
	int32Min = -1 << 31
	int16Max = 1<<15 - 1
	int16Min = -1 << 15
)

// SatAdd32 adds two signed 32-bit values, saturating on overflow instead
// of wrapping.
func SatAdd32(a, b int32) int32 {
	sum := int64(a) + int64(b)
	return ClipInt32FromInt64(sum)
}

// SatDAdd32 adds a to b after first saturating b (computed in a wider
// intermediate, typically a 32x16 or 32x32 multiply-accumulate) to the
// int32 range. This mirrors the reference decoder's two-step saturation:
// the second operand is clamped on its own before the saturating add, so
// a huge intermediate doesn't get averaged away by the final clamp.
func SatDAdd32(a int32, b int64) int32 {
	return SatAdd32(a, ClipInt32FromInt64(b))
}

// ClipInt16 saturates a 32-bit value to the signed 16-bit range.
func ClipInt16(x int32) int16 {
	if x > int16Max {
		return int16Max
	}
	if x < int16Min {
		return int16Min
	}
	return int16(x)
}

// ClipInt32FromInt64 saturates a 64-bit value to the signed 32-bit range.
func ClipInt32FromInt64(x int64) int32 {
	if x > int32Max {
		return int32Max
	}
	if x < int32Min {
		return int32Min
	}
	return int32(x)
}

// Clip restricts x to the closed interval [lo, hi].
func Clip(x, lo, hi int32) int32 {
	return util.Clip(x, lo, hi)
}

// Log2Floor returns floor(log2(n)) for n > 0. The caller guarantees n
// is non-zero; log2 of zero has no defined result here and is not
// papered over with a sentinel.
func Log2Floor(n uint32) int {
	return bits.Len32(n) - 1
}

// NormalizeBits returns the number of left shifts needed to bring the
// magnitude n as close to full scale as possible within a value of the
// given bit width, i.e. width - log2(n) - 1.
func NormalizeBits(n uint32, width int) int {
	if n == 0 {
		return width - 1
	}
	return width - Log2Floor(n) - 1
}

// SquareRoot computes floor(sqrt(val/2)) via the bit-by-bit (non-restoring)
// method the reference decoder uses: 14 iterations, each tentatively
// setting the next lower bit of a 14-bit result and keeping it only if the
// squared-and-doubled candidate still fits under val.
func SquareRoot(val int32) int16 {
	if val <= 0 {
		return 0
	}
	var root int32
	for i := 13; i >= 0; i-- {
		trial := root | (int32(1) << uint(i))
		if int64(trial)*int64(trial)*2 <= int64(val) {
			root = trial
		}
	}
	return int16(root)
}

// Mull2 computes the bit-exact 32x16 product a*b scaled by 2^-16,
// preserving the mid-word carry the way the reference decoder's fixed
// point multiply does: ((a>>16)*b << 1) + ((a & 0xFFFF)*b >> 15).
func Mull2(a int32, b int32) int32 {
	hi := (a >> 16) * b
	lo := (a & 0xFFFF) * b
	return (hi << 1) + (lo >> 15)
}

// ScaleVector normalizes src by the number of bits needed to bring its
// largest-magnitude element close to full 15-bit scale, then writes
// src[i] << bits >> 3 into dst. It returns bits - 3, the net shift applied
// so callers can track the Q-format of dst. A vector whose peak already
// exceeds 15-bit scale gets a negative normalization, applied as an
// arithmetic right shift.
func ScaleVector(dst, src []int32) int {
	var maxAbs uint32
	for _, v := range src {
		a := v
		if a < 0 {
			a = -a
		}
		if uint32(a) > maxAbs {
			maxAbs = uint32(a)
		}
	}
	shiftBits := NormalizeBits(maxAbs, 15)
	for i, v := range src {
		if shiftBits >= 0 {
			dst[i] = (v << uint(shiftBits)) >> 3
		} else {
			dst[i] = (v >> uint(-shiftBits)) >> 3
		}
	}
	return shiftBits - 3
}
