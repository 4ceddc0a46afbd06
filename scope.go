package arena

// Scope is the guard returned by Arena.Open. Closing it reclaims every
// array allocated since it was opened. Scopes must be closed in LIFO order.
type Scope struct {
	a   *Arena
	gen uint64
}

// Open opens a nested scope. Pair it with a deferred Close:
//
//	s := a.Open()
//	defer s.Close()
func (a *Arena) Open() Scope {
	return a.open()
}

// Close closes the scope, invalidating its arrays and retiring their handles.
// Panics with ErrScopeUnderflow if no scope is open or this scope was
// already closed, and with ErrScopeMismatch if an inner scope is still open.
func (s Scope) Close() {
	s.a.close(s.gen)
}

// Do runs fn inside a fresh scope. The scope is closed even if fn panics.
func (a *Arena) Do(fn func()) {
	s := a.Open()
	defer s.Close()
	fn()
}
