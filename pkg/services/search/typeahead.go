package search

import (
	"context"
	"strings"
	"sync"
	"time"
)

// DefaultQuietPeriod is how long typing must pause before a lookup fires.
const DefaultQuietPeriod = 300 * time.Millisecond

type LookupFunc func(ctx context.Context, query string) ([]Candidate, error)

type DeliverFunc func(query string, candidates []Candidate, err error)

// Typeahead debounces search-as-you-type. Each Update restarts the quiet
// timer and cancels the previous pending lookup, so a newer query always
// supersedes an older one. This is the opposite of the analysis session's
// single-flight rule, where the in-flight request wins and the newcomer is
// rejected.
type Typeahead struct {
	mu      sync.Mutex
	lookup  LookupFunc
	deliver DeliverFunc
	quiet   time.Duration
	timer   *time.Timer
	cancel  context.CancelFunc
}

func NewTypeahead(lookup LookupFunc, deliver DeliverFunc) *Typeahead {
	return &Typeahead{
		lookup:  lookup,
		deliver: deliver,
		quiet:   DefaultQuietPeriod,
	}
}

// WithQuietPeriod overrides the debounce interval.
func (t *Typeahead) WithQuietPeriod(d time.Duration) *Typeahead {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.quiet = d
	return t
}

// Update registers the latest query text. Pending timers and in-flight
// lookups for older queries are cancelled; queries below the minimum length
// only cancel, they never schedule.
func (t *Typeahead) Update(query string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.cancelPendingLocked()

	if len(strings.TrimSpace(query)) < MinQueryLength {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.cancel = cancel
	t.timer = time.AfterFunc(t.quiet, func() {
		candidates, err := t.lookup(ctx, query)
		if ctx.Err() != nil {
			return
		}
		t.deliver(query, candidates, err)
	})
}

// Stop cancels any pending or in-flight lookup.
func (t *Typeahead) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelPendingLocked()
}

func (t *Typeahead) cancelPendingLocked() {
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
}
