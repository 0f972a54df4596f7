package client

import (
	"context"
	"errors"
	"sync"

	"go-catalog/models"
	"go-catalog/objects"
)

// Fetcher owns the listing view's {loading, data, error} state. Each fetch
// gets a generation number; a result is applied only while its generation
// is still current, so a fetch that was canceled or superseded by a newer
// one can never mutate the state afterwards.
type Fetcher struct {
	mu      sync.Mutex
	gen     int
	cancel  context.CancelFunc
	loading bool
	data    *models.PaginationData[objects.Item]
	err     error
}

// FetchState is a snapshot of the view state. Data survives failed
// fetches: stale-but-valid beats blank.
type FetchState struct {
	Loading bool
	Data    *models.PaginationData[objects.Item]
	Err     error
}

func NewFetcher() *Fetcher {
	return &Fetcher{}
}

// Begin supersedes any in-flight fetch (canceling its context) and opens a
// new one. The returned generation must be handed back to Resolve together
// with the fetch outcome.
func (f *Fetcher) Begin(parent context.Context) (int, context.Context) {

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.cancel != nil {
		f.cancel()
	}

	ctx, cancel := context.WithCancel(parent)
	f.cancel = cancel

	f.gen++
	f.loading = true

	return f.gen, ctx
}

// Resolve applies a fetch outcome. It reports false, leaving the state
// untouched, when the fetch was superseded or ended in cancellation.
func (f *Fetcher) Resolve(gen int, data *models.PaginationData[objects.Item], err error) bool {

	f.mu.Lock()
	defer f.mu.Unlock()

	if gen != f.gen {
		return false
	}

	if errors.Is(err, context.Canceled) {
		return false
	}

	f.loading = false

	if err != nil {
		f.err = err
		return true
	}

	f.data = data
	f.err = nil

	return true
}

// Cancel tears the current fetch down, e.g. when the view unmounts. The
// generation advances so even an already-completed result is dropped.
func (f *Fetcher) Cancel() {

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}

	f.gen++
	f.loading = false
}

func (f *Fetcher) State() FetchState {

	f.mu.Lock()
	defer f.mu.Unlock()

	return FetchState{
		Loading: f.loading,
		Data:    f.data,
		Err:     f.err,
	}
}
