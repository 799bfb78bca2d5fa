package device

import (
	"context"
	"errors"
	"log"
	"sync"
)

// BrightnessSync forwards in-app brightness changes to the OS. Writes happen on a
// background goroutine and only the newest value is written. Sync stays disabled until
// Connect succeeds and turns itself off again if the OS later refuses a write.
type BrightnessSync struct {
	target Brightness

	mu      sync.Mutex
	ctx     context.Context
	enabled bool
	pending *float64
	running bool
	wg      sync.WaitGroup
}

// NewBrightnessSync returns a disabled sync writing to target.
func NewBrightnessSync(target Brightness) *BrightnessSync {
	return &BrightnessSync{target: target, ctx: context.Background()}
}

// Connect asks for permission and reads the current OS brightness. ok is false when
// no value could be read; the sync is enabled whenever permission was granted.
func (s *BrightnessSync) Connect(ctx context.Context) (current float64, ok bool) {
	if err := s.target.RequestPermission(ctx); err != nil {
		switch {
		case errors.Is(err, ErrUnsupported):
			log.Printf("[Device] Brightness control unavailable: %v", err)
		default:
			if _, denied := IsPermission(err); denied {
				log.Printf("[Device] Brightness permission denied, sync disabled: %v", err)
			} else {
				log.Printf("[Device] Brightness permission error: %v", err)
			}
		}
		return 0, false
	}

	s.mu.Lock()
	s.ctx = ctx
	s.enabled = true
	s.mu.Unlock()

	current, err := s.target.Get(ctx)
	if err != nil {
		log.Printf("[Device] Error reading brightness: %v", err)
		return 0, false
	}
	log.Printf("[Device] Brightness sync enabled, OS brightness %.2f", current)
	return current, true
}

// Enabled reports whether updates are forwarded.
func (s *BrightnessSync) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

// Update queues fraction for writing and returns immediately.
func (s *BrightnessSync) Update(fraction float64) {
	s.mu.Lock()
	if !s.enabled {
		s.mu.Unlock()
		return
	}
	s.pending = &fraction
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.wg.Add(1)
	s.mu.Unlock()

	go s.process()
}

// Wait blocks until queued writes are done.
func (s *BrightnessSync) Wait() {
	s.wg.Wait()
}

func (s *BrightnessSync) process() {
	defer s.wg.Done()

	for {
		s.mu.Lock()
		next := s.pending
		s.pending = nil
		if next == nil || !s.enabled {
			s.running = false
			s.mu.Unlock()
			return
		}
		ctx := s.ctx
		s.mu.Unlock()

		err := s.target.Set(ctx, *next)
		if err == nil {
			continue
		}
		if ctx.Err() != nil {
			continue
		}

		if _, denied := IsPermission(err); denied {
			log.Printf("[Device] Brightness permission revoked, sync disabled: %v", err)
			s.mu.Lock()
			s.enabled = false
			s.mu.Unlock()
			continue
		}
		log.Printf("[Device] Error setting brightness: %v", err)
	}
}
