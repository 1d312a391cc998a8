package maintenance

import "testing"

func TestSelector_UnknownNameRetainsPrior(t *testing.T) {
	s := NewSelector(TimeBased)

	if err := s.Select("usage"); err != nil {
		t.Fatalf("select usage: %v", err)
	}
	if s.Current() != UsageBased {
		t.Fatalf("expected usage selected, got %v", s.Current())
	}

	if err := s.Select("psychic"); err == nil {
		t.Error("expected error for unknown strategy name")
	}
	if s.Current() != UsageBased {
		t.Errorf("failed selection must retain prior strategy, got %v", s.Current())
	}
}

func TestSelector_ResolveFallsBackToCurrent(t *testing.T) {
	s := NewSelector(Predictive)

	kind, err := s.Resolve("")
	if err != nil {
		t.Fatalf("resolve empty: %v", err)
	}
	if kind != Predictive {
		t.Errorf("empty name must resolve to current default, got %v", kind)
	}

	kind, err = s.Resolve("time")
	if err != nil {
		t.Fatalf("resolve time: %v", err)
	}
	if kind != TimeBased {
		t.Errorf("expected time kind, got %v", kind)
	}
	if s.Current() != Predictive {
		t.Error("resolving a named strategy must not change the default")
	}

	if _, err := s.Resolve("bogus"); err == nil {
		t.Error("expected error resolving unknown name")
	}
}
