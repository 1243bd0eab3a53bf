// Package session sequences region + date validation, the remote submit and
// result projection behind a single-flight state machine.
package session

import (
	"context"
	"sync"

	"github.com/aqua-tools/aquascope/pkg/models/domain"
	"github.com/rs/zerolog"
)

type State string

const (
	StateIdle      State = "idle"
	StateRunning   State = "running"
	StateSucceeded State = "succeeded"
	StateFailed    State = "failed"
)

// Submitter is the analysis-service client boundary.
type Submitter interface {
	Submit(ctx context.Context, req domain.AnalysisRequest) (*domain.AnalysisResult, error)
}

// RegionReader is the slice of the region store the session needs.
type RegionReader interface {
	CurrentRegion() (domain.RegionOfInterest, bool)
	DateRange(which domain.Period) domain.DateRange
}

// Snapshot is an atomic view of the session. Result and Err are never both
// set and are both nil while an analysis is running.
type Snapshot struct {
	State  State
	Result *domain.AnalysisResult
	Err    *domain.AnalysisError
}

// Session owns the current analysis result or error. States move
// Idle → Running → Succeeded/Failed, and both terminal states accept a new
// request. A request issued while Running is rejected, not queued: the
// in-flight call always runs to completion and is never superseded.
type Session struct {
	mu      sync.Mutex
	state   State
	result  *domain.AnalysisResult
	lastErr *domain.AnalysisError

	regions RegionReader
	client  Submitter
}

func NewSession(regions RegionReader, client Submitter) *Session {
	return &Session{
		state:   StateIdle,
		regions: regions,
		client:  client,
	}
}

// RequestAnalysis validates preconditions, snapshots the request and runs it
// to completion. Precondition failures leave the session untouched and issue
// no remote call. The region and dates may keep changing while the call is
// in flight; the snapshot taken here is what the service sees.
func (s *Session) RequestAnalysis(ctx context.Context) (*domain.AnalysisResult, error) {
	logger := zerolog.Ctx(ctx)

	s.mu.Lock()
	if s.state == StateRunning {
		s.mu.Unlock()
		return nil, domain.NewAlreadyRunning()
	}

	roi, ok := s.regions.CurrentRegion()
	if !ok {
		s.mu.Unlock()
		return nil, domain.NewNoRegionSelected()
	}

	baseline := s.regions.DateRange(domain.PeriodBaseline)
	comparison := s.regions.DateRange(domain.PeriodComparison)
	for _, r := range []domain.DateRange{baseline, comparison} {
		if err := r.Validate(); err != nil {
			s.mu.Unlock()
			return nil, err
		}
	}

	req := domain.AnalysisRequest{
		Ring:       roi.Ring,
		Baseline:   baseline,
		Comparison: comparison,
	}
	s.state = StateRunning
	s.result = nil
	s.lastErr = nil
	s.mu.Unlock()

	result, err := s.client.Submit(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.lastErr = asAnalysisError(err)
		s.state = StateFailed
		logger.Warn().Str("kind", string(s.lastErr.Kind)).Msg("analysis failed")
		return nil, s.lastErr
	}

	s.result = result
	s.state = StateSucceeded
	return result, nil
}

// CurrentResult returns the last completed result, nil while Running or
// after a failure.
func (s *Session) CurrentResult() *domain.AnalysisResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// CurrentError returns the last classified failure, nil while Running or
// after a success.
func (s *Session) CurrentError() *domain.AnalysisError {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{State: s.state, Result: s.result, Err: s.lastErr}
}

func asAnalysisError(err error) *domain.AnalysisError {
	if ae, ok := domain.AsAnalysisError(err); ok {
		return ae
	}
	return domain.NewUnclassifiedRemote(0, err.Error())
}
