package fixedpoint

import "testing"

func TestSatAdd32Saturates(t *testing.T) {
	if got := SatAdd32(int32Max, 1); got != int32Max {
		t.Fatalf("overflow: got %d want %d", got, int32Max)
	}
	if got := SatAdd32(int32Min, -1); got != int32Min {
		t.Fatalf("underflow: got %d want %d", got, int32Min)
	}
	if got := SatAdd32(2, 3); got != 5 {
		t.Fatalf("normal add: got %d want 5", got)
	}
}

func TestSatDAdd32(t *testing.T) {
	// b is supplied as a wide intermediate that itself overflows int32.
	huge := int64(int32Max) + 1000
	if got := SatDAdd32(0, huge); got != int32Max {
		t.Fatalf("got %d want %d", got, int32Max)
	}
}

func TestClipInt16(t *testing.T) {
	cases := []struct {
		in   int32
		want int16
	}{
		{0, 0},
		{40000, int16Max},
		{-40000, int16Min},
		{100, 100},
	}
	for _, c := range cases {
		if got := ClipInt16(c.in); got != c.want {
			t.Fatalf("ClipInt16(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestLog2Floor(t *testing.T) {
	cases := []struct {
		in   uint32
		want int
	}{
		{1, 0},
		{2, 1},
		{3, 1},
		{4, 2},
		{0x7FFF, 14},
		{0x8000, 15},
	}
	for _, c := range cases {
		if got := Log2Floor(c.in); got != c.want {
			t.Fatalf("Log2Floor(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestNormalizeBits(t *testing.T) {
	// A value already at the top of a 15-bit range needs no shift.
	if got := NormalizeBits(0x4000, 15); got != 0 {
		t.Fatalf("got %d want 0", got)
	}
	// A small value needs many shifts to reach full scale.
	if got := NormalizeBits(1, 15); got != 14 {
		t.Fatalf("got %d want 14", got)
	}
}

func TestSquareRoot(t *testing.T) {
	// SquareRoot computes floor(sqrt(val/2)).
	cases := []struct {
		val  int32
		want int16
	}{
		{0, 0},
		{2, 1},    // sqrt(1) = 1
		{8, 2},    // sqrt(4) = 2
		{200, 10}, // sqrt(100) = 10
	}
	for _, c := range cases {
		if got := SquareRoot(c.val); got != c.want {
			t.Fatalf("SquareRoot(%d) = %d, want %d", c.val, got, c.want)
		}
	}
}

func TestMull2(t *testing.T) {
	// Mull2(1<<16, 2) should equal ((1*2)<<1) + 0 = 4.
	if got := Mull2(1<<16, 2); got != 4 {
		t.Fatalf("got %d want 4", got)
	}
}

func TestScaleVector(t *testing.T) {
	src := []int32{100, -200, 300}
	dst := make([]int32, len(src))
	shift := ScaleVector(dst, src)
	_ = shift
	// dst must preserve relative sign and ordering.
	if dst[1] >= 0 {
		t.Fatalf("expected negative dst[1], got %d", dst[1])
	}
	if dst[2] <= dst[0] {
		t.Fatalf("expected dst[2] > dst[0]")
	}
}
