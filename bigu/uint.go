// Package bigu implements strictly positive arbitrary-precision integers
// stored as base-10^9 words in arena memory.
//
// A Uint never represents zero: every constructor and operation that would
// produce zero panics with ErrNotPositive. Results are allocated from the
// arena passed in and live until the enclosing arena scope closes.
package bigu

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/ykiselev/arena"
)

const (
	// Base is the radix of a word.
	Base = 1_000_000_000
	// DigitsPerWord is the number of decimal digits one word holds.
	DigitsPerWord = 9
)

var (
	ErrNotPositive       = errors.New("bigu: value must be positive")
	ErrInvalidMultiplier = errors.New("bigu: small operand must be in (0, 10^9)")
	ErrSyntax            = errors.New("bigu: invalid decimal string")
)

// Uint is a positive integer; word i contributes words[i] * Base^i.
// The highest word is never zero.
type Uint struct {
	w *arena.Words
}

// FromInt returns v as a Uint. Panics with ErrNotPositive if v <= 0.
func FromInt(a *arena.Arena, v int64) Uint {
	if v <= 0 {
		panic(errors.Wrapf(ErrNotPositive, "FromInt(%d)", v))
	}
	n := 1
	for t := v / Base; t > 0; t /= Base {
		n++
	}
	x := a.AllocWords(n)
	w := x.Slice()
	for i := range w {
		w[i] = uint32(v % Base)
		v /= Base
	}
	return Uint{w: x}
}

// FromWords copies normalized base-10^9 words, least significant first.
func FromWords(a *arena.Arena, words []uint32) Uint {
	n := normLen(words)
	if n == 0 {
		panic(errors.Wrap(ErrNotPositive, "FromWords"))
	}
	for i, w := range words[:n] {
		if w >= Base {
			panic(errors.Wrapf(ErrSyntax, "word %d is %d", i, w))
		}
	}
	x := a.AllocWords(n)
	x.CopyIn(0, words[:n])
	return Uint{w: x}
}

// Parse parses a string of decimal digits with no sign or separators.
// Leading zeros are accepted as long as the value is not zero.
func Parse(a *arena.Arena, s string) Uint {
	if len(s) == 0 {
		panic(errors.Wrap(ErrSyntax, "empty string"))
	}
	x := a.AllocWords((len(s) + DigitsPerWord - 1) / DigitsPerWord)
	w := x.Slice()
	end := len(s)
	for i := range w {
		start := max(end-DigitsPerWord, 0)
		var v uint32
		for j := start; j < end; j++ {
			c := s[j]
			if c < '0' || c > '9' {
				panic(errors.Wrapf(ErrSyntax, "invalid character %q at %d", c, j))
			}
			v = v*10 + uint32(c-'0')
		}
		w[i] = v
		end = start
	}
	z := Uint{w: x}
	if z.norm() == 0 {
		panic(errors.Wrapf(ErrNotPositive, "Parse(%q)", s))
	}
	return z
}

// MulSmall returns x*m. Panics with ErrInvalidMultiplier unless 0 < m < Base.
func MulSmall(a *arena.Arena, x Uint, m uint32) Uint {
	if m == 0 || m >= Base {
		panic(errors.Wrapf(ErrInvalidMultiplier, "MulSmall by %d", m))
	}
	xw := x.words()
	z := a.AllocWords(len(xw) + 1)
	zw := z.Slice()
	zw[len(xw)] = mulVW(zw[:len(xw)], xw, m)
	r := Uint{w: z}
	r.norm()
	return r
}

// MulInt returns x*v for a machine integer v. Panics with ErrNotPositive if v <= 0.
func MulInt(a *arena.Arena, x Uint, v int64) Uint {
	if v <= 0 {
		panic(errors.Wrapf(ErrNotPositive, "MulInt by %d", v))
	}
	var vw [3]uint32
	n := 0
	for ; v > 0; n++ {
		vw[n] = uint32(v % Base)
		v /= Base
	}
	xw := x.words()
	z := a.AllocWords(len(xw) + n)
	mulVV(z.Slice(), xw, vw[:n])
	r := Uint{w: z}
	r.norm()
	return r
}

// Mul returns x*y.
func Mul(a *arena.Arena, x, y Uint) Uint {
	xw, yw := x.words(), y.words()
	z := a.AllocWords(len(xw) + len(yw))
	mulVV(z.Slice(), xw, yw)
	r := Uint{w: z}
	r.norm()
	return r
}

// pow2Step is the largest power of two below Base used per MulPow2 step.
const pow2Step = 29

// MulPow2 returns x*2^k for k >= 0.
func MulPow2(a *arena.Arena, x Uint, k int) Uint {
	if k < 0 {
		panic(errors.Wrapf(ErrInvalidMultiplier, "MulPow2 by 2^%d", k))
	}
	xw := x.words()
	z := a.AllocWords(len(xw) + k/pow2Step + 1)
	zw := z.Slice()
	copy(zw, xw)
	n := len(xw)
	for k > 0 {
		s := min(k, pow2Step)
		if c := mulVW(zw[:n], zw[:n], 1<<s); c != 0 {
			zw[n] = c
			n++
		}
		k -= s
	}
	z.Resize(n)
	return Uint{w: z}
}

// DivSmall divides x by d in place and discards the remainder.
// Panics with ErrInvalidMultiplier unless 0 < d < Base, and with
// ErrNotPositive if the quotient is zero.
func (x Uint) DivSmall(d uint32) {
	if d == 0 || d >= Base {
		panic(errors.Wrapf(ErrInvalidMultiplier, "DivSmall by %d", d))
	}
	w := x.words()
	divVW(w, w, d)
	if x.norm() == 0 {
		panic(errors.Wrapf(ErrNotPositive, "DivSmall by %d", d))
	}
}

// Len returns the number of words.
func (x Uint) Len() int {
	return x.w.Len()
}

// Word returns word i, least significant first.
func (x Uint) Word(i int) uint32 {
	return x.w.Get(i)
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x Uint) Cmp(y Uint) int {
	xw, yw := x.words(), y.words()
	if len(xw) != len(yw) {
		if len(xw) < len(yw) {
			return -1
		}
		return 1
	}
	for i := len(xw) - 1; i >= 0; i-- {
		switch {
		case xw[i] < yw[i]:
			return -1
		case xw[i] > yw[i]:
			return 1
		}
	}
	return 0
}

// DigitsUpperBound returns a bound on the number of decimal digits of x
// suitable for sizing buffers.
func (x Uint) DigitsUpperBound() int {
	return x.Len() * DigitsPerWord
}

// Digits writes the decimal digits of x into a new byte array, most
// significant first. The array is sized by DigitsUpperBound and then
// trimmed, so it is topmost and exact when returned.
func Digits(a *arena.Arena, x Uint) *arena.Bytes {
	b := a.AllocBytes(x.DigitsUpperBound())
	d := x.AppendDecimal(b.Slice()[:0])
	b.Resize(len(d))
	return b
}

// AppendDecimal appends the decimal digits of x to dst. Only leading zeros
// are skipped.
func (x Uint) AppendDecimal(dst []byte) []byte {
	w := x.words()
	n := len(w)
	dst = strconv.AppendUint(dst, uint64(w[n-1]), 10)
	for i := n - 2; i >= 0; i-- {
		dst = appendWord(dst, w[i])
	}
	return dst
}

// String returns the decimal representation of x.
func (x Uint) String() string {
	return string(x.AppendDecimal(make([]byte, 0, x.DigitsUpperBound())))
}

func (x Uint) words() []uint32 {
	return x.w.Slice()
}

// norm strips high zero words and returns the remaining length.
func (x Uint) norm() int {
	n := normLen(x.w.Slice())
	x.w.Resize(n)
	return n
}
