package maintenance

import "sync"

// Selector holds the default strategy kind used when a request does not name
// one. Selection by an unknown name fails and keeps the prior kind. The kind
// is resolved once per request and passed to IsDue as a value, so a
// concurrent switch never changes an evaluation already in flight.
type Selector struct {
	mu   sync.RWMutex
	kind StrategyKind
}

// NewSelector returns a selector defaulting to the given kind.
func NewSelector(kind StrategyKind) *Selector {
	return &Selector{kind: kind}
}

// Select switches the default strategy by name. An unknown name returns an
// error and leaves the current selection untouched.
func (s *Selector) Select(name string) error {
	kind, err := ParseStrategy(name)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.kind = kind
	s.mu.Unlock()
	return nil
}

// Current returns the currently selected default kind.
func (s *Selector) Current() StrategyKind {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.kind
}

// Resolve maps a request's strategy name to a kind, falling back to the
// current default when the name is empty.
func (s *Selector) Resolve(name string) (StrategyKind, error) {
	if name == "" {
		return s.Current(), nil
	}
	return ParseStrategy(name)
}
