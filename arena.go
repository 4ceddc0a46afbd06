package arena

import "github.com/pkg/errors"

const (
	// DefaultBytes is the default byte buffer capacity (16 KiB).
	DefaultBytes = 1 << 14
	// DefaultWords is the default word buffer capacity (16 Ki words).
	DefaultWords = 1 << 14
)

// mark records the live array counts at the moment a scope was opened.
type mark struct {
	bytes int
	words int
	gen   uint64
}

// Arena is a stack-disciplined bump allocator with one fixed buffer per
// element kind. Not goroutine-safe; use a Registry to hand arenas out to
// concurrent workers.
type Arena struct {
	bytes    store[byte]
	words    store[uint32]
	scopes   []mark
	gen      uint64
	released bool
}

// NewArena creates an Arena with the given byte and word capacities.
// A capacity <= 0 selects DefaultBytes or DefaultWords respectively.
// The buffers are allocated once and never grow.
func NewArena(bytes, words int) *Arena {
	if bytes <= 0 {
		bytes = DefaultBytes
	}
	if words <= 0 {
		words = DefaultWords
	}
	a := &Arena{}
	a.bytes.init("bytes", bytes)
	a.words.init("words", words)
	return a
}

// AllocBytes returns a zeroed byte array of length n from the byte buffer.
// The array becomes the topmost byte array. Panics with ErrArenaExhausted
// if fewer than n bytes remain.
func (a *Arena) AllocBytes(n int) *Bytes {
	a.panicIfReleased()
	return a.bytes.alloc(n)
}

// AllocWords returns a zeroed word array of length n from the word buffer.
// The array becomes the topmost word array. Panics with ErrArenaExhausted
// if fewer than n words remain.
func (a *Arena) AllocWords(n int) *Words {
	a.panicIfReleased()
	return a.words.alloc(n)
}

// Depth returns the number of currently open scopes.
func (a *Arena) Depth() int {
	return len(a.scopes)
}

// Allocated returns the number of live arrays of both kinds.
func (a *Arena) Allocated() int {
	return len(a.bytes.live) + len(a.words.live)
}

// Free returns the number of retired array handles kept for reuse.
func (a *Arena) Free() int {
	return len(a.bytes.free) + len(a.words.free)
}

// Reset closes every open scope and reclaims all arrays, including those
// allocated outside any scope. Buffers and retired handles are kept.
func (a *Arena) Reset() {
	a.panicIfReleased()
	a.scopes = a.scopes[:0]
	a.bytes.release(0)
	a.words.release(0)
	a.bytes.floor, a.words.floor = 0, 0
}

// Release drops the backing buffers and makes the arena unusable.
// Any subsequent allocation or scope operation will panic.
func (a *Arena) Release() {
	a.bytes.release(0)
	a.words.release(0)
	a.bytes = store[byte]{}
	a.words = store[uint32]{}
	a.scopes = nil
	a.released = true
}

func (a *Arena) open() Scope {
	a.panicIfReleased()
	a.gen++
	m := mark{bytes: len(a.bytes.live), words: len(a.words.live), gen: a.gen}
	a.scopes = append(a.scopes, m)
	a.bytes.floor, a.words.floor = m.bytes, m.words
	return Scope{a: a, gen: m.gen}
}

func (a *Arena) close(gen uint64) {
	a.panicIfReleased()
	n := len(a.scopes)
	if n == 0 {
		panic(errors.WithStack(ErrScopeUnderflow))
	}
	if top := a.scopes[n-1]; top.gen != gen {
		for _, m := range a.scopes[:n-1] {
			if m.gen == gen {
				panic(errors.Wrapf(ErrScopeMismatch, "closing scope %d of %d", gen, top.gen))
			}
		}
		panic(errors.Wrapf(ErrScopeUnderflow, "scope %d already closed", gen))
	}
	m := a.scopes[n-1]
	a.scopes = a.scopes[:n-1]
	a.bytes.release(m.bytes)
	a.words.release(m.words)
	if n > 1 {
		outer := a.scopes[n-2]
		a.bytes.floor, a.words.floor = outer.bytes, outer.words
	} else {
		a.bytes.floor, a.words.floor = 0, 0
	}
}

// panicIfReleased panics if the arena has been released.
func (a *Arena) panicIfReleased() {
	if a.released {
		panic(errors.WithStack(ErrReleased))
	}
}
