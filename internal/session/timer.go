package session

import (
	"sync"
	"time"
)

// countdown owns the ticker goroutine for one exam session. Stop is
// idempotent and safe from every exit path: submission, a replacing
// session, or controller teardown.
type countdown struct {
	stop     chan struct{}
	stopOnce sync.Once
}

func newCountdown(interval time.Duration, tick func()) *countdown {
	cd := &countdown{stop: make(chan struct{})}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-cd.stop:
				return
			case <-ticker.C:
				tick()
			}
		}
	}()
	return cd
}

func (cd *countdown) Stop() {
	cd.stopOnce.Do(func() { close(cd.stop) })
}
