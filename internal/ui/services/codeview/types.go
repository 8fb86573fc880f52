package codeview

import (
	"errors"
	"sync"

	"linkdeck/internal/qr"
)

// Phase is the lifecycle position of the code view
type Phase int

const (
	PhaseUninitialized Phase = iota // mounted, environment not ready
	PhaseReady                      // environment ready, engine may exist
	PhaseUnmounted                  // render target gone
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhaseUnmounted:
		return "unmounted"
	}
	return "uninitialized"
}

// Engine is the rendering engine the view drives. It is built once and then
// updated in place.
type Engine interface {
	Update(payload string) error
	Attach(target qr.Target) error
	Payload() string
	PNG(size int) ([]byte, error)
}

// Factory builds an engine for the first payload
type Factory func(payload string) (Engine, error)

// QRFactory returns a Factory building qr engines with fixed options
func QRFactory(opts qr.Options) Factory {
	return func(payload string) (Engine, error) {
		o := opts
		o.Payload = payload
		return qr.New(o)
	}
}

// ErrNoEngine is returned by operations that need a constructed engine
var ErrNoEngine = errors.New("codeview: engine not constructed")

// Surface is the render target the engine draws into
type Surface struct {
	mu      sync.RWMutex
	content string
	writes  int
}

// SetContent implements qr.Target
func (s *Surface) SetContent(frame string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.content = frame
	s.writes++
}

// Content returns the last frame written
func (s *Surface) Content() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.content
}

// Writes returns how many frames have been written
func (s *Surface) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}

// Reset clears the surface
func (s *Surface) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.content = ""
}
