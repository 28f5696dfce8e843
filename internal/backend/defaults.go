package backend

// DefaultRegistry builds the stock backend catalog. The ratings and
// availability probabilities are fixed configuration, not measurements.
func DefaultRegistry(randFn func() float64) *Registry {
	r := NewRegistry(randFn)
	for _, p := range defaultProfiles() {
		_ = r.Register(p)
	}
	return r
}

func defaultProfiles() []Profile {
	return []Profile{
		{
			ID:           "gemma-3n-2b",
			Tiers:        []Tier{TierLow, TierMedium},
			Supports:     SupportFor("c_to_python", "python_to_javascript", "javascript_to_python"),
			CostPerToken: 0.0001,
			Speed:        8,
			Quality:      7,
			Availability: 0.95,
			Fallbacks:    []string{"claude-3-sonnet", "gpt-4"},
		},
		{
			ID:           "claude-3-sonnet",
			Tiers:        []Tier{TierMedium, TierHigh},
			Supports:     SupportFor("python_to_java", "java_to_python", "java_to_javascript", "javascript_to_java"),
			CostPerToken: 0.003,
			Speed:        6,
			Quality:      9,
			Availability: 0.90,
			Fallbacks:    []string{"gpt-4", "gemma-3n-2b"},
		},
		{
			ID:           "gpt-4",
			Tiers:        []Tier{TierLow, TierMedium, TierHigh},
			Supports:     SupportFor("typescript_to_python"),
			CostPerToken: 0.03,
			Speed:        4,
			Quality:      10,
			Availability: 0.85,
			Fallbacks:    []string{"claude-3-sonnet", "gemma-3n-2b"},
		},
		{
			ID:           "codellama-34b",
			Tiers:        []Tier{TierMedium, TierHigh},
			Supports:     SupportAll(),
			CostPerToken: 0.0005,
			Speed:        5,
			Quality:      8,
			Availability: 0.80,
			Fallbacks:    []string{"claude-3-sonnet", "gpt-4"},
		},
	}
}
