package arena

import (
	"runtime"

	"github.com/pkg/errors"
)

// Contract violations. They are raised with panic, wrapped with the
// offending sizes or indices; use errors.Is to match them.
var (
	ErrArenaExhausted          = errors.New("arena: backing buffer exhausted")
	ErrScopeUnderflow          = errors.New("arena: no open scope to close")
	ErrScopeMismatch           = errors.New("arena: scope is not the innermost open scope")
	ErrOnlyTopmostArrayMayGrow = errors.New("arena: only the topmost array may grow")
	ErrIndexOutOfRange         = errors.New("arena: index out of range")
	ErrStaleArray              = errors.New("arena: array used after its scope was closed")
	ErrReleased                = errors.New("arena: use after Release()")
)

// ErrArenaNotConfigured is returned by Registry.Get before Configure was called.
var ErrArenaNotConfigured = errors.New("arena: registry is not configured")

// Recover converts a contract panic raised by this module into an error
// stored in *err. Runtime errors and non-error panics are re-raised.
// It must be deferred directly:
//
//	defer arena.Recover(&err)
func Recover(err *error) {
	r := recover()
	if r == nil {
		return
	}
	e, ok := r.(error)
	if !ok {
		panic(r)
	}
	if _, rt := e.(runtime.Error); rt {
		panic(r)
	}
	*err = e
}

func outOfRange(i, n int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "index %d, length %d", i, n)
}
