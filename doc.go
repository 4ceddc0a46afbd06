// Package arena implements a scoped stack allocator over fixed backing buffers.
//
// # Overview
//
// An Arena owns one byte buffer and one 32-bit word buffer, both sized up
// front. Arrays are bump-allocated from them inside nested scopes; closing a
// scope reclaims every array allocated since it was opened in one step and
// keeps the array handles for reuse. This suits recursive or nested
// computations that create many short-lived temporaries, such as the
// big-integer scratch space of a number formatter.
//
// # Basic Usage
//
//	a := arena.NewArena(0, 0) // default capacities
//	defer a.Release()
//
//	s := a.Open()
//	defer s.Close()
//
//	w := a.AllocWords(8)
//	w.Set(0, 42)
//	b := a.AllocBytes(64)
//	b.Resize(10) // topmost: the freed tail goes back to the arena
//
// # Array Views
//
// Arrays are handles carrying an offset and a logical length. Any array may
// shrink; only the topmost one (the most recent allocation of its kind in
// the innermost open scope) may grow. Slice exposes the live window without
// copying.
//
// # Errors
//
// Misuse is a programming error and panics with one of the Err values of this
// package, wrapped with details. Recover turns such a panic back into an
// error at an API boundary.
//
// # Thread Safety
//
// An Arena is not thread-safe. A Registry hands out one arena per worker:
//
//	arena.Configure(arena.Config{Words: 1 << 12})
//	a, err := arena.Get()
//	if err != nil {
//		return err // ErrArenaNotConfigured
//	}
//	defer arena.Put(a)
//
// # Metrics and Monitoring
//
//	m := a.Metrics()
//	fmt.Printf("Words in use: %d of %d\n", m.WordsInUse, m.WordsCapacity)
//	fmt.Printf("Live arrays: %d, retired handles: %d\n", m.Allocated, m.Free)
package arena
