package ui

import (
	"strings"
	"sync"
	"time"
)

const loadingBase = "Loading"

// loader cycles a 0-3 dot suffix on the loading label until stopped. The
// ticker goroutine must be cancelled by StopLoading; otherwise it keeps
// firing after the indicator is hidden.
type loader struct {
	mu     sync.Mutex
	dots   int
	stopCh chan struct{}
}

func (l *loader) run(interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-l.stopCh:
			return
		case <-t.C:
			l.mu.Lock()
			l.dots = (l.dots + 1) % 4
			l.mu.Unlock()
		}
	}
}

func (l *loader) label() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return loadingBase + strings.Repeat(".", l.dots)
}

// StartLoading shows the indicator and starts the dot cycler. Starting an
// already-running loader is a no-op.
func (s *State) StartLoading() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loader != nil {
		return
	}
	l := &loader{stopCh: make(chan struct{})}
	s.loader = l
	go l.run(s.opts.LoadingInterval)
}

// StopLoading cancels the ticker and resets the label. Stopping a stopped
// loader is a no-op.
func (s *State) StopLoading() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loader == nil {
		return
	}
	close(s.loader.stopCh)
	s.loader = nil
}
