package region

import (
	"sync"

	"github.com/aqua-tools/aquascope/pkg/models/domain"
	"github.com/paulmach/orb"
)

// Store owns the current region of interest and the two compared periods.
// It is replace-only: the region is swapped wholesale, never edited in
// place, so snapshots handed out earlier stay valid. The mutex exists
// because the HTTP gateway serves concurrent requests; the semantics remain
// single-writer.
type Store struct {
	mu         sync.RWMutex
	region     *domain.RegionOfInterest
	baseline   domain.DateRange
	comparison domain.DateRange
}

func NewStore() *Store {
	return &Store{}
}

// SetRegion atomically replaces the region of interest. The ring is cloned
// so later caller-side mutation cannot leak into held snapshots. An empty
// label falls back to the placeholder.
func (s *Store) SetRegion(ring orb.Ring, label string) {
	if label == "" {
		label = domain.DefaultRegionLabel
	}
	snapshot := ring.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.region = &domain.RegionOfInterest{Ring: snapshot, Label: label}
}

func (s *Store) ClearRegion() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.region = nil
}

func (s *Store) CurrentRegion() (domain.RegionOfInterest, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.region == nil {
		return domain.RegionOfInterest{}, false
	}
	return *s.region, true
}

// SetDateRange replaces one of the two periods. A range with start > end is
// accepted here so the two bounds can be edited independently; it is
// validated when an analysis is requested.
func (s *Store) SetDateRange(which domain.Period, r domain.DateRange) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch which {
	case domain.PeriodComparison:
		s.comparison = r
	default:
		s.baseline = r
	}
}

func (s *Store) DateRange(which domain.Period) domain.DateRange {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if which == domain.PeriodComparison {
		return s.comparison
	}
	return s.baseline
}
