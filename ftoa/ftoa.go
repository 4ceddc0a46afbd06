// Package ftoa renders float64 values as exact positional decimal text.
//
// Digits are produced with arena-backed big-unsigned arithmetic: the value
// and the midpoints to its neighbouring doubles are scaled to integers,
// expanded to decimal, and the shortest digit string inside that interval
// is selected. No heap allocation happens after the powers-of-five table
// is built.
package ftoa

import (
	"io"
	"math"

	"github.com/pkg/errors"

	"github.com/ykiselev/arena"
	"github.com/ykiselev/arena/bigu"
)

// DefaultPrecision is the number of significant digits that always suffices
// to round-trip a float64. Precisions outside [1, DefaultPrecision] use it.
const DefaultPrecision = 17

const (
	mantBits = 52
	expBits  = 11
	expMax   = 1<<expBits - 1
	bias     = 1023
)

// maxLen bounds the output length: sign, "0.", 323 zeros and 17 digits.
const maxLen = 1 + 2 + 323 + DefaultPrecision

// Append appends the decimal text of v to dst using scratch memory from a.
// At most precision significant digits are emitted; with the default
// precision the text is the shortest that parses back to v.
func Append(a *arena.Arena, dst []byte, v float64, precision int) []byte {
	bits := math.Float64bits(v)
	neg := bits>>63 != 0
	exp := int(bits>>mantBits) & expMax
	mant := bits & (1<<mantBits - 1)

	switch {
	case exp == expMax && mant != 0:
		return append(dst, "NaN"...)
	case exp == expMax:
		if neg {
			dst = append(dst, '-')
		}
		return append(dst, "Infinity"...)
	}
	if neg {
		dst = append(dst, '-')
	}
	if exp == 0 && mant == 0 {
		return append(dst, "0.0"...)
	}
	if precision < 1 || precision > DefaultPrecision {
		precision = DefaultPrecision
	}

	s := a.Open()
	defer s.Close()

	var digs [DefaultPrecision + 1]byte
	iv := expand(a, exp, mant)
	d := shortest(iv, precision, digs[:0])
	return layout(dst, d)
}

// Format writes the decimal text of v to w. Scratch memory comes from an
// arena of the default registry, which must have been configured.
func Format(w io.Writer, v float64, precision int) (err error) {
	a, err := arena.Get()
	if err != nil {
		return err
	}
	defer arena.Put(a)
	defer arena.Recover(&err)

	s := a.Open()
	defer s.Close()
	out := a.AllocBytes(maxLen)
	text := Append(a, out.Slice()[:0], v, precision)
	if _, err := w.Write(text); err != nil {
		return errors.Wrap(err, "ftoa: write")
	}
	return nil
}

// String returns the shortest decimal text of v using scratch memory from a.
func String(a *arena.Arena, v float64) string {
	var buf [maxLen]byte
	return string(Append(a, buf[:0], v, DefaultPrecision))
}

// interval holds the decimal digits of the low bound, the value and the
// high bound, all scaled by the same power of ten.
type interval struct {
	lo, mid, hi []byte
	scale       int  // value = mid * 10^scale
	inclusive   bool // bounds round to the value when parsed
}

// expand decodes a finite nonzero double and builds its rounding interval.
// With f the significand and q the binary exponent of the unit in the last
// place, the value is 4f*2^(q-2) and the bounds are (4f-2)*2^(q-2) and
// (4f+2)*2^(q-2); when f is a power of two above the subnormal range the
// lower neighbour is twice as close, so the low bound is (4f-1)*2^(q-2).
// A negative power of two becomes a power of five and a decimal scale.
func expand(a *arena.Arena, exp int, mant uint64) interval {
	f := mant
	e := exp - bias
	if exp == 0 {
		e = 1 - bias
	} else {
		f |= 1 << mantBits
	}
	q := e - mantBits
	sc := q - 2

	loX := int64(4*f - 2)
	if mant == 0 && exp > 1 {
		loX = int64(4*f - 1)
	}
	midX := int64(4 * f)
	hiX := int64(4*f + 2)

	var lo, mid, hi bigu.Uint
	scale := 0
	if sc < 0 {
		p := bigu.FromWords(a, bigu.PowerOfFive(-sc))
		lo = bigu.MulInt(a, p, loX)
		mid = bigu.MulInt(a, p, midX)
		hi = bigu.MulInt(a, p, hiX)
		scale = sc
	} else {
		lo = bigu.MulPow2(a, bigu.FromInt(a, loX), sc)
		mid = bigu.MulPow2(a, bigu.FromInt(a, midX), sc)
		hi = bigu.MulPow2(a, bigu.FromInt(a, hiX), sc)
	}
	return interval{
		lo:        bigu.Digits(a, lo).Slice(),
		mid:       bigu.Digits(a, mid).Slice(),
		hi:        bigu.Digits(a, hi).Slice(),
		scale:     scale,
		inclusive: f&1 == 0,
	}
}
