package backend

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
)

var (
	ErrNoBackendAvailable = errors.New("backend: no backend available for conversion")
	ErrUnknownBackend     = errors.New("backend: unknown backend id")
)

// Scoring weights. Hand-tuned constants; not derived from anything.
const (
	weightQuality       = 2.0
	weightSpeedPrio     = 1.5
	weightSpeedDefault  = 0.5
	weightAvailability  = 5.0
	weightSuccessRate   = 10.0
	bonusSpecialization = 5.0
	bonusTierMatch      = 3.0

	// A backend whose load gauge exceeds this is treated as down.
	loadThreshold = 0.8

	// Rolling outcome window per backend; oldest entries evicted first.
	outcomeWindow = 100
)

// SelectOptions tunes one Select call.
type SelectOptions struct {
	// CostCeiling enables the cost bonus when > 0.
	CostCeiling float64
	PreferSpeed bool
}

type profileState struct {
	Profile
	outcomes []float64
	load     float64
}

// Registry holds backend profiles in insertion order plus their mutable
// runtime counters. All methods are safe for concurrent use; the
// availability draw comes from an injectable source so tests can force
// backends up or down.
type Registry struct {
	mu       sync.Mutex
	order    []string
	profiles map[string]*profileState
	rand     func() float64
}

// NewRegistry creates an empty registry. A nil randFn falls back to
// math/rand/v2.
func NewRegistry(randFn func() float64) *Registry {
	if randFn == nil {
		randFn = rand.Float64
	}
	return &Registry{
		profiles: map[string]*profileState{},
		rand:     randFn,
	}
}

// Register adds a profile. Re-registering an id replaces the static
// profile but keeps its runtime counters.
func (r *Registry) Register(p Profile) error {
	if p.ID == "" {
		return fmt.Errorf("backend: register: empty id")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if st, ok := r.profiles[p.ID]; ok {
		st.Profile = p
		return nil
	}
	r.order = append(r.order, p.ID)
	r.profiles[p.ID] = &profileState{Profile: p}
	return nil
}

// Profile returns the static profile for an id.
func (r *Registry) Profile(id string) (Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.profiles[id]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %s", ErrUnknownBackend, id)
	}
	return st.Profile, nil
}

// Fallbacks returns the configured fallback ordering for a backend, or
// nil when the backend is unknown.
func (r *Registry) Fallbacks(id string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.profiles[id]
	if !ok {
		return nil
	}
	out := make([]string, len(st.Fallbacks))
	copy(out, st.Fallbacks)
	return out
}

// RecordOutcome appends a success/failure sample to the backend's
// rolling window, evicting the oldest entry past the window size.
// Unknown ids are ignored.
func (r *Registry) RecordOutcome(id string, success bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.profiles[id]
	if !ok {
		return
	}
	v := 0.0
	if success {
		v = 1.0
	}
	st.outcomes = append(st.outcomes, v)
	if len(st.outcomes) > outcomeWindow {
		st.outcomes = st.outcomes[len(st.outcomes)-outcomeWindow:]
	}
}

// OutcomeCount reports the current window length for a backend.
func (r *Registry) OutcomeCount(id string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.profiles[id]
	if !ok {
		return 0
	}
	return len(st.outcomes)
}

// SuccessRate returns the mean of the rolling window; ok is false when
// no outcomes have been recorded yet.
func (r *Registry) SuccessRate(id string) (float64, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.profiles[id]
	if !ok || len(st.outcomes) == 0 {
		return 0, false
	}
	sum := 0.0
	for _, v := range st.outcomes {
		sum += v
	}
	return sum / float64(len(st.outcomes)), true
}

// SetLoad overwrites the backend's load gauge (last write wins).
func (r *Registry) SetLoad(id string, load float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if st, ok := r.profiles[id]; ok {
		st.load = load
	}
}

// Available lists the backends currently passing the availability check.
// The result is probabilistic by design.
func (r *Registry) Available() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, id := range r.order {
		if r.isUpLocked(r.profiles[id]) {
			out = append(out, id)
		}
	}
	return out
}

// Select picks the best backend for a conversion id and complexity tier.
//
// Candidates are filtered to profiles supporting the pair and the tier
// that pass the availability draw. When that set is empty the filter is
// widened to any available profile regardless of pair or tier support;
// the widened path can therefore return a backend that does not support
// the requested tier. That gap is inherited behavior and kept on
// purpose. Ties keep the first-registered backend.
func (r *Registry) Select(conversionID string, tier Tier, opts SelectOptions) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var candidates []*profileState
	for _, id := range r.order {
		st := r.profiles[id]
		if st.Supports.Contains(conversionID) && st.supportsTier(tier) && r.isUpLocked(st) {
			candidates = append(candidates, st)
		}
	}
	if len(candidates) == 0 {
		for _, id := range r.order {
			st := r.profiles[id]
			if r.isUpLocked(st) {
				candidates = append(candidates, st)
			}
		}
	}
	if len(candidates) == 0 {
		return "", ErrNoBackendAvailable
	}

	best := candidates[0]
	bestScore := r.scoreLocked(best, conversionID, tier, opts)
	for _, st := range candidates[1:] {
		if s := r.scoreLocked(st, conversionID, tier, opts); s > bestScore {
			best, bestScore = st, s
		}
	}
	return best.ID, nil
}

// RecommendFor maps code size to a tier (<500 low, <2000 medium, else
// high) and returns the selected backend with its fallback ordering.
func (r *Registry) RecommendFor(conversionID string, codeSize int) (string, []string, error) {
	tier := TierHigh
	switch {
	case codeSize < 500:
		tier = TierLow
	case codeSize < 2000:
		tier = TierMedium
	}
	id, err := r.Select(conversionID, tier, SelectOptions{})
	if err != nil {
		return "", nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	st := r.profiles[id]
	fallbacks := make([]string, len(st.Fallbacks))
	copy(fallbacks, st.Fallbacks)
	return id, fallbacks, nil
}

func (r *Registry) isUpLocked(st *profileState) bool {
	if r.rand() > st.Availability {
		return false
	}
	return st.load <= loadThreshold
}

func (r *Registry) scoreLocked(st *profileState, conversionID string, tier Tier, opts SelectOptions) float64 {
	score := float64(st.Quality) * weightQuality

	if opts.PreferSpeed {
		score += float64(st.Speed) * weightSpeedPrio
	} else {
		score += float64(st.Speed) * weightSpeedDefault
	}

	if opts.CostCeiling > 0 {
		costScore := 10 - st.CostPerToken*1000
		if costScore < 0 {
			costScore = 0
		}
		score += costScore
	}

	score += st.Availability * weightAvailability

	if n := len(st.outcomes); n > 0 {
		sum := 0.0
		for _, v := range st.outcomes {
			sum += v
		}
		score += sum / float64(n) * weightSuccessRate
	}

	if st.Supports.Lists(conversionID) {
		score += bonusSpecialization
	}
	if st.supportsTier(tier) {
		score += bonusTierMatch
	}
	return score
}
