package codeview

import (
	"fmt"
	"log"
)

// Service owns the code rendering for one mount. The engine is created on
// the first payload after the environment is ready and reused afterwards.
type Service struct {
	surface *Surface
	factory Factory
	phase   Phase
	engine  Engine
	payload string
	builds  int
	err     error
}

// NewService creates a mounted, uninitialized code view
func NewService(surface *Surface, factory Factory) *Service {
	if surface == nil {
		surface = &Surface{}
	}
	return &Service{
		surface: surface,
		factory: factory,
		phase:   PhaseUninitialized,
	}
}

// MarkReady signals that the environment can host the engine.
// Only the first call while mounted has an effect.
func (s *Service) MarkReady() {
	if s.phase != PhaseUninitialized {
		return
	}
	s.phase = PhaseReady
	s.sync()
}

// SetURL records the payload and pushes it to the engine when possible
func (s *Service) SetURL(url string) {
	if s.phase == PhaseUnmounted {
		return
	}
	s.payload = url
	s.sync()
}

// Unmount detaches the view; nothing is built or updated afterwards
func (s *Service) Unmount() {
	if s.phase == PhaseUnmounted {
		return
	}
	s.phase = PhaseUnmounted
	s.surface.Reset()
}

func (s *Service) sync() {
	if s.phase != PhaseReady || s.payload == "" {
		return
	}

	if s.engine == nil {
		// A failed build is not retried for this mount
		if s.err != nil || s.factory == nil {
			return
		}
		engine, err := s.factory(s.payload)
		s.builds++
		if err != nil {
			s.err = fmt.Errorf("failed to build code engine: %w", err)
			log.Printf("codeview: %v", s.err)
			return
		}
		s.surface.Reset()
		if err := engine.Attach(s.surface); err != nil {
			s.err = fmt.Errorf("failed to attach code engine: %w", err)
			log.Printf("codeview: %v", s.err)
			return
		}
		s.engine = engine
		return
	}

	if s.engine.Payload() == s.payload {
		return
	}
	if err := s.engine.Update(s.payload); err != nil {
		log.Printf("codeview: failed to update payload %q: %v", s.payload, err)
	}
}

// Ready reports whether a frame is available to draw
func (s *Service) Ready() bool {
	return s.phase == PhaseReady && s.engine != nil
}

// Phase returns the lifecycle phase
func (s *Service) Phase() Phase {
	return s.phase
}

// Err returns the construction error, if any
func (s *Service) Err() error {
	return s.err
}

// Builds returns how many times the factory was invoked
func (s *Service) Builds() int {
	return s.builds
}

// Payload returns the most recent payload handed to the view
func (s *Service) Payload() string {
	return s.payload
}

// Surface returns the render target
func (s *Service) Surface() *Surface {
	return s.surface
}

// Frame returns the drawn code, empty until ready
func (s *Service) Frame() string {
	if !s.Ready() {
		return ""
	}
	return s.surface.Content()
}

// PNG exports the current code as an image
func (s *Service) PNG(size int) ([]byte, error) {
	if s.engine == nil {
		return nil, ErrNoEngine
	}
	return s.engine.PNG(size)
}
