package taxcalc

import (
	"sync"

	"github.com/flexprice/taxengine/internal/types"
)

// Listener receives the result of every recomputation.
type Listener func(cfg Configuration, result Result)

// Session holds the live configuration of one tax panel. Every mutation
// recomputes the result synchronously and hands it to the listeners in the
// order they were added, before the mutator returns.
type Session struct {
	// edit serializes Apply calls so fn can run without holding mu
	edit      sync.Mutex
	mu        sync.Mutex
	cfg       Configuration
	result    Result
	listeners []Listener
}

// NewSession starts a session from cfg and computes its first result.
// Listeners added later are only called on subsequent changes.
func NewSession(cfg Configuration) *Session {
	return &Session{
		cfg:    cfg,
		result: Compute(cfg),
	}
}

// OnChange registers l for all future recomputations.
func (s *Session) OnChange(l Listener) {
	if l == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Configuration returns the current configuration.
func (s *Session) Configuration() Configuration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// Result returns the result computed for the current configuration.
func (s *Session) Result() Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// Apply replaces the configuration with fn's edit of it. fn may read the
// session but must not call Apply or a setter.
func (s *Session) Apply(fn func(cfg *Configuration)) Result {
	s.edit.Lock()
	next := s.Configuration()
	fn(&next)

	s.mu.Lock()
	s.cfg = next
	s.result = Compute(next)
	result := s.result
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()
	s.edit.Unlock()

	for _, l := range listeners {
		l(next, result)
	}
	return result
}

func (s *Session) SetSubtotal(subtotal float64) Result {
	return s.Apply(func(cfg *Configuration) { cfg.Subtotal = subtotal })
}

func (s *Session) SetMode(mode types.TaxMode) Result {
	return s.Apply(func(cfg *Configuration) { cfg.Mode = mode })
}

func (s *Session) SetVATRate(rate types.VATRate) Result {
	return s.Apply(func(cfg *Configuration) { cfg.VATRate = rate })
}

func (s *Session) SetWithholding(scheme types.WithholdingScheme) Result {
	return s.Apply(func(cfg *Configuration) { cfg.Withholding = scheme })
}

// SetCustomRate stores the rate text the way the input field would,
// dropping anything but digits, commas and dots.
func (s *Session) SetCustomRate(text string) Result {
	return s.Apply(func(cfg *Configuration) { cfg.CustomRate = SanitizeRateInput(text) })
}

func (s *Session) SetAdditionalCostBase(amount float64) Result {
	return s.Apply(func(cfg *Configuration) { cfg.AdditionalCostBase = amount })
}
