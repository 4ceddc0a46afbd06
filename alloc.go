package arena

import "github.com/pkg/errors"

// Elem is the set of element kinds an arena keeps a backing buffer for.
type Elem interface {
	~byte | ~uint32
}

// Bytes is an array view into the arena's byte buffer.
type Bytes = Array[byte]

// Words is an array view into the arena's word buffer.
type Words = Array[uint32]

// store is the per-kind allocator state: a fixed buffer, a bump cursor,
// live handles in allocation order and retired handles waiting for reuse.
type store[T Elem] struct {
	kind  string
	buf   []T
	top   int
	peak  int
	floor int // live index where the innermost open scope starts
	live  []*Array[T]
	free  []*Array[T]
}

func (s *store[T]) init(kind string, n int) {
	s.kind = kind
	s.buf = make([]T, n)
}

func (s *store[T]) alloc(n int) *Array[T] {
	if n < 0 {
		panic(errors.Wrapf(ErrIndexOutOfRange, "negative %s length %d", s.kind, n))
	}
	if n > len(s.buf)-s.top {
		panic(errors.Wrapf(ErrArenaExhausted, "need %d %s, %d of %d left", n, s.kind, len(s.buf)-s.top, len(s.buf)))
	}
	var x *Array[T]
	if k := len(s.free); k > 0 {
		x = s.free[k-1]
		s.free[k-1] = nil
		s.free = s.free[:k-1]
	} else {
		x = &Array[T]{s: s}
	}
	x.offset = s.top
	x.length = n
	x.index = len(s.live)
	clear(s.buf[s.top : s.top+n])
	s.live = append(s.live, x)
	s.moveTop(s.top + n)
	return x
}

// release retires every live array at index >= from, newest first,
// and moves the cursor back to where the oldest of them started.
func (s *store[T]) release(from int) {
	if from >= len(s.live) {
		return
	}
	s.top = s.live[from].offset
	for i := len(s.live) - 1; i >= from; i-- {
		x := s.live[i]
		x.offset = -1
		x.length = 0
		x.index = -1
		s.live[i] = nil
		s.free = append(s.free, x)
	}
	s.live = s.live[:from]
}

func (s *store[T]) moveTop(top int) {
	s.top = top
	if top > s.peak {
		s.peak = top
	}
}

// Array is a handle to a contiguous run of elements inside an arena buffer.
// Its offset is fixed while it is live; its length changes only via Resize.
// Handles are recycled once their scope closes, so they must not be kept
// past it.
type Array[T Elem] struct {
	s      *store[T]
	offset int
	length int
	index  int
}

// Len returns the logical length of the array.
func (x *Array[T]) Len() int {
	x.panicIfStale()
	return x.length
}

// Get returns the element at index i.
func (x *Array[T]) Get(i int) T {
	x.panicIfStale()
	if uint(i) >= uint(x.length) {
		panic(outOfRange(i, x.length))
	}
	return x.s.buf[x.offset+i]
}

// Set stores v at index i.
func (x *Array[T]) Set(i int, v T) {
	x.panicIfStale()
	if uint(i) >= uint(x.length) {
		panic(outOfRange(i, x.length))
	}
	x.s.buf[x.offset+i] = v
}

// Slice returns the live window of the array. It aliases the arena buffer
// and is valid until the array is resized or its scope closes.
func (x *Array[T]) Slice() []T {
	x.panicIfStale()
	end := x.offset + x.length
	return x.s.buf[x.offset:end:end]
}

// CopyIn copies src into the array starting at dst.
func (x *Array[T]) CopyIn(dst int, src []T) {
	x.panicIfStale()
	if dst < 0 || dst > x.length-len(src) {
		panic(outOfRange(dst+len(src), x.length))
	}
	copy(x.s.buf[x.offset+dst:], src)
}

// CopyOut copies n elements starting at src into dst.
func (x *Array[T]) CopyOut(src int, dst []T, n int) {
	x.panicIfStale()
	if src < 0 || n < 0 || src > x.length-n {
		panic(outOfRange(src+n, x.length))
	}
	if n > len(dst) {
		panic(outOfRange(n, len(dst)))
	}
	copy(dst[:n], x.s.buf[x.offset+src:x.offset+src+n])
}

// Fill sets every element to v.
func (x *Array[T]) Fill(v T) {
	x.FillRange(0, x.Len(), v)
}

// FillRange sets the elements in [from, to) to v.
func (x *Array[T]) FillRange(from, to int, v T) {
	x.panicIfStale()
	if from < 0 || from > to || to > x.length {
		panic(errors.Wrapf(ErrIndexOutOfRange, "range [%d, %d), length %d", from, to, x.length))
	}
	w := x.s.buf[x.offset+from : x.offset+to]
	for i := range w {
		w[i] = v
	}
}

// IsTopmost reports whether x is the most recently allocated live array of
// its kind within the innermost open scope.
func (x *Array[T]) IsTopmost() bool {
	x.panicIfStale()
	return x.topmost()
}

func (x *Array[T]) topmost() bool {
	return x.index == len(x.s.live)-1 && x.index >= x.s.floor
}

// Resize changes the logical length to n. Shrinking always succeeds; for the
// topmost array it also hands the freed tail back to the next allocation.
// Growing is allowed only for the topmost array and zeroes the new tail.
func (x *Array[T]) Resize(n int) {
	x.panicIfStale()
	if n < 0 {
		panic(outOfRange(n, x.length))
	}
	if n <= x.length {
		if x.topmost() {
			x.s.top = x.offset + n
		}
		x.length = n
		return
	}
	if !x.topmost() {
		panic(errors.Wrapf(ErrOnlyTopmostArrayMayGrow, "%s array at %d: %d -> %d", x.s.kind, x.offset, x.length, n))
	}
	if n > len(x.s.buf)-x.offset {
		panic(errors.Wrapf(ErrArenaExhausted, "grow %s array to %d, %d left", x.s.kind, n, len(x.s.buf)-x.offset))
	}
	clear(x.s.buf[x.offset+x.length : x.offset+n])
	x.length = n
	x.s.moveTop(x.offset + n)
}

func (x *Array[T]) panicIfStale() {
	if x.offset < 0 {
		panic(errors.WithStack(ErrStaleArray))
	}
}
