// quickmemo/autosave/autosave.go

// Package autosave debounces writes of the scratch buffer to a single file.
package autosave

import (
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// AutoSave writes the scratch buffer at most once per interval while dirty.
// CheckAndSave has to be polled; nothing happens in the background.
type AutoSave struct {
	path     string
	interval time.Duration
	lastSave time.Time
	dirty    bool
	now      func() time.Time
	log      zerolog.Logger
}

type Option func(*AutoSave)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(a *AutoSave) {
		a.now = now
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(a *AutoSave) {
		a.log = log.With().Str("component", "autosave").Logger()
	}
}

// New starts the debounce timer at construction time.
func New(path string, interval time.Duration, opts ...Option) *AutoSave {
	a := &AutoSave{
		path:     path,
		interval: interval,
		now:      time.Now,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.lastSave = a.now()
	return a
}

func (a *AutoSave) Path() string {
	return a.path
}

func (a *AutoSave) MarkDirty() {
	a.dirty = true
}

func (a *AutoSave) Dirty() bool {
	return a.dirty
}

// CheckAndSave writes content when dirty and the interval has elapsed since
// the last write. It reports whether a write happened.
func (a *AutoSave) CheckAndSave(content string) bool {
	if !a.dirty || a.now().Sub(a.lastSave) < a.interval {
		return false
	}
	return a.Save(content)
}

// Save writes content unconditionally. Failures are logged and leave the
// dirty flag and timer untouched.
func (a *AutoSave) Save(content string) bool {
	if err := os.MkdirAll(filepath.Dir(a.path), 0755); err != nil {
		a.log.Warn().Err(err).Str("path", a.path).Msg("autosave directory unavailable")
		return false
	}
	if err := os.WriteFile(a.path, []byte(content), 0644); err != nil {
		a.log.Warn().Err(err).Str("path", a.path).Msg("autosave write failed")
		return false
	}

	a.lastSave = a.now()
	a.dirty = false
	return true
}

// LoadLastSave returns the previous scratch content, if any could be read.
func (a *AutoSave) LoadLastSave() (string, bool) {
	data, err := os.ReadFile(a.path)
	if err != nil {
		if !os.IsNotExist(err) {
			a.log.Warn().Err(err).Str("path", a.path).Msg("autosave read failed")
		}
		return "", false
	}
	return string(data), true
}
