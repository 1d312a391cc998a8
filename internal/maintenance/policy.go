package maintenance

import (
	"os"
	"strconv"
)

// PredictivePolicy tightens the base policy for the early-warning blend.
// Scales are fractions applied to the base interval and threshold.
type PredictivePolicy struct {
	IntervalScale       float64
	UsageThresholdScale float64
}

// Policy holds the tunable constants behind the due rules. Call sites never
// carry numeric literals; changing the policy never touches them.
type Policy struct {
	IntervalDays   int
	UsageThreshold float64
	Predictive     PredictivePolicy
}

// DefaultPolicy returns the agency's standing maintenance policy.
func DefaultPolicy() Policy {
	return Policy{
		IntervalDays:   90,
		UsageThreshold: 0.8,
		Predictive: PredictivePolicy{
			IntervalScale:       0.5,
			UsageThresholdScale: 0.75,
		},
	}
}

// PolicyFromEnv builds a policy from environment variables, falling back to
// the defaults for anything unset or unparsable.
func PolicyFromEnv() Policy {
	p := DefaultPolicy()
	if v := os.Getenv("MAINT_INTERVAL_DAYS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			p.IntervalDays = parsed
		}
	}
	if v := os.Getenv("MAINT_USAGE_THRESHOLD"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			p.UsageThreshold = parsed
		}
	}
	if v := os.Getenv("MAINT_PREDICTIVE_INTERVAL_SCALE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 && parsed <= 1 {
			p.Predictive.IntervalScale = parsed
		}
	}
	if v := os.Getenv("MAINT_PREDICTIVE_USAGE_SCALE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 && parsed <= 1 {
			p.Predictive.UsageThresholdScale = parsed
		}
	}
	return p
}

// PredictiveIntervalDays is the tightened service interval used by the
// predictive rule.
func (p Policy) PredictiveIntervalDays() int {
	days := int(float64(p.IntervalDays) * p.Predictive.IntervalScale)
	if days < 1 {
		days = 1
	}
	return days
}

// PredictiveUsageThreshold is the tightened usage threshold used by the
// predictive rule.
func (p Policy) PredictiveUsageThreshold() float64 {
	return p.UsageThreshold * p.Predictive.UsageThresholdScale
}
