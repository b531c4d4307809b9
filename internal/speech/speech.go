package speech

import (
	"context"
	"errors"
	"strings"
	"sync"
)

var (
	// ErrUnavailable is returned when no synthesis engine is installed
	ErrUnavailable = errors.New("speech synthesis unavailable")
	// ErrCanceled is returned to an utterance replaced by a newer one
	ErrCanceled = errors.New("utterance canceled")
)

// Utterance settings used for every word
const (
	DefaultRate   = 0.75
	DefaultPitch  = 1.1
	DefaultVolume = 0.9
)

// Utterance is one synthesis request.
// Rate and Pitch are relative to the engine default (1.0), Volume is 0..1.
type Utterance struct {
	Text   string
	Rate   float64
	Pitch  float64
	Volume float64
}

// NewUtterance creates an utterance with the default voice settings
func NewUtterance(text string) Utterance {
	return Utterance{
		Text:   text,
		Rate:   DefaultRate,
		Pitch:  DefaultPitch,
		Volume: DefaultVolume,
	}
}

// Engine turns an utterance into audio
type Engine interface {
	Synthesize(ctx context.Context, u Utterance) ([]byte, error)
}

// Speaker pronounces words, one at a time
type Speaker struct {
	engine Engine

	mu       sync.Mutex
	cancel   context.CancelFunc
	inFlight uint64
}

// NewSpeaker creates a speaker. A nil engine makes every call fail with ErrUnavailable.
func NewSpeaker(engine Engine) *Speaker {
	return &Speaker{engine: engine}
}

// Available reports whether a synthesis engine is present
func (s *Speaker) Available() bool {
	return s.engine != nil
}

// Speak cancels the utterance in flight, if any, and synthesizes word
func (s *Speaker) Speak(ctx context.Context, word string) ([]byte, error) {
	if s.engine == nil {
		return nil, ErrUnavailable
	}
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, errors.New("empty word")
	}

	ctx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.cancel = cancel
	s.inFlight++
	id := s.inFlight
	s.mu.Unlock()

	audio, err := s.engine.Synthesize(ctx, NewUtterance(word))

	s.mu.Lock()
	if s.inFlight == id {
		s.cancel = nil
	}
	s.mu.Unlock()
	cancel()

	if err != nil {
		if ctx.Err() != nil {
			return nil, ErrCanceled
		}
		return nil, err
	}
	return audio, nil
}

// Cancel stops the utterance in flight, if any
func (s *Speaker) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}
