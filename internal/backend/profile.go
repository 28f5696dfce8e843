// Package backend keeps the catalog of conversion backends and picks
// one per request based on capability, cost, speed and recent history.
package backend

// Tier is a code-complexity level a backend can handle.
type Tier string

const (
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

// Support declares which conversion pairs a backend handles. A backend
// is either universal or lists its pairs explicitly; the former never
// earns the specialization bonus during scoring.
type Support struct {
	universal bool
	ids       map[string]struct{}
}

// SupportAll marks a backend as handling every conversion pair.
func SupportAll() Support {
	return Support{universal: true}
}

// SupportFor lists the conversion pairs a backend is specialized in.
func SupportFor(ids ...string) Support {
	m := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		m[id] = struct{}{}
	}
	return Support{ids: m}
}

// Universal reports whether the backend accepts any conversion pair.
func (s Support) Universal() bool { return s.universal }

// Contains reports whether the backend accepts the given pair.
func (s Support) Contains(id string) bool {
	if s.universal {
		return true
	}
	_, ok := s.ids[id]
	return ok
}

// Lists reports whether the pair is explicitly listed (not via wildcard).
func (s Support) Lists(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Profile describes one conversion backend. Everything here is static
// configuration; runtime state (rolling outcomes, load) lives in the
// registry.
type Profile struct {
	ID           string
	Tiers        []Tier
	Supports     Support
	CostPerToken float64
	// Speed and Quality are 1-10 ratings, higher is better.
	Speed   int
	Quality int
	// Availability is the probability (0-1) that the backend answers.
	Availability float64
	Fallbacks    []string
}

func (p Profile) supportsTier(t Tier) bool {
	for _, pt := range p.Tiers {
		if pt == t {
			return true
		}
	}
	return false
}
