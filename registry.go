package arena

import (
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Config sizes the arenas handed out by a Registry.
type Config struct {
	Bytes  int         // byte buffer capacity; <= 0 means DefaultBytes
	Words  int         // word buffer capacity; <= 0 means DefaultWords
	Logger *zap.Logger // nil means zap.NewNop()
}

// Registry hands out one Arena per worker goroutine. Arenas are pooled and
// reused; a goroutine owns the arena it got from Get until it calls Put.
// Registry is safe for concurrent use, the arenas themselves are not.
type Registry struct {
	mu   sync.RWMutex
	cfg  Config
	log  *zap.Logger
	pool *sync.Pool
}

// NewRegistry returns an unconfigured registry. Get fails until Configure is called.
func NewRegistry() *Registry {
	return &Registry{}
}

// Configure sets the arena sizes and logger. Arenas pooled under a previous
// configuration are dropped.
func (r *Registry) Configure(cfg Config) {
	if cfg.Bytes <= 0 {
		cfg.Bytes = DefaultBytes
	}
	if cfg.Words <= 0 {
		cfg.Words = DefaultWords
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.cfg = cfg
	r.log = cfg.Logger.Named("arena")
	r.pool = &sync.Pool{
		New: func() any { return NewArena(cfg.Bytes, cfg.Words) },
	}
	r.log.Debug("registry configured", zap.Int("bytes", cfg.Bytes), zap.Int("words", cfg.Words))
}

// Configured reports whether Configure has been called.
func (r *Registry) Configured() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.pool != nil
}

// Get returns an arena with no open scopes and nothing allocated.
func (r *Registry) Get() (*Arena, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.pool == nil {
		return nil, errors.WithStack(ErrArenaNotConfigured)
	}
	return r.pool.Get().(*Arena), nil
}

// Put returns an arena obtained from Get. Scopes left open are a bracketing
// bug in the caller; they are logged and reclaimed.
func (r *Registry) Put(a *Arena) {
	if a == nil || a.released {
		return
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.pool == nil {
		return
	}
	if d := a.Depth(); d != 0 {
		r.log.Warn("arena returned with open scopes",
			zap.Int("depth", d),
			zap.Int("allocated", a.Allocated()))
	}
	a.Reset()
	if a.BytesCapacity() != r.cfg.Bytes || a.WordsCapacity() != r.cfg.Words {
		// Sized for an earlier configuration.
		return
	}
	r.pool.Put(a)
}

// Default is the process-wide registry used by the package-level functions.
var Default = NewRegistry()

// Configure configures the Default registry.
func Configure(cfg Config) {
	Default.Configure(cfg)
}

// Get returns an arena from the Default registry.
func Get() (*Arena, error) {
	return Default.Get()
}

// Put returns an arena to the Default registry.
func Put(a *Arena) {
	Default.Put(a)
}
