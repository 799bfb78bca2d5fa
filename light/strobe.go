package light

import (
	"log"
	"time"
)

// DefaultTickInterval is the strobe step length.
const DefaultTickInterval = 30 * time.Millisecond

// StrobeOpt configures a Strobe.
type StrobeOpt func(*Strobe)

// WithTickSource replaces the time.Ticker based source.
func WithTickSource(newSource func(time.Duration) TickSource) StrobeOpt {
	return func(s *Strobe) {
		s.newSource = newSource
	}
}

// Strobe drives State.Tick while the state is in Rainbow mode.
// It starts when the state enters Rainbow and stops when it leaves, so at most one
// ticker goroutine exists at a time. Start and Stop must be called from the goroutine
// that owns the State.
type Strobe struct {
	state     *State
	interval  time.Duration
	dispatch  func(func())
	newSource func(time.Duration) TickSource

	running    bool
	generation int
	stop       chan struct{}
}

// NewStrobe binds a strobe timer to the mode transitions of state. dispatch must run
// each tick on the goroutine that owns state, e.g. fyne.Do; it panics when nil.
func NewStrobe(state *State, interval time.Duration, dispatch func(func()), opts ...StrobeOpt) *Strobe {
	if dispatch == nil {
		panic("light: NewStrobe called with a nil dispatcher")
	}
	if interval <= 0 {
		interval = DefaultTickInterval
	}

	s := &Strobe{
		state:    state,
		interval: interval,
		dispatch: dispatch,
		newSource: func(d time.Duration) TickSource {
			return NewTicker(d)
		},
	}
	for _, opt := range opts {
		opt(s)
	}

	state.RegisterModeCallback(func(m Mode) {
		if m == Rainbow {
			s.Start()
		} else {
			s.Stop()
		}
	})
	if state.Mode() == Rainbow {
		s.Start()
	}
	return s
}

// Running reports whether the ticker goroutine is active.
func (s *Strobe) Running() bool {
	return s.running
}

// Interval returns the tick interval.
func (s *Strobe) Interval() time.Duration {
	return s.interval
}

// Start launches the ticker goroutine if it is not already running.
func (s *Strobe) Start() {
	if s.running {
		return
	}
	s.running = true
	s.generation++
	s.stop = make(chan struct{})

	log.Printf("[Strobe] Started (interval %v)", s.interval)
	go s.loop(s.generation, s.newSource(s.interval), s.stop)
}

// Stop tears the ticker down. Ticks already queued on the dispatcher are dropped.
func (s *Strobe) Stop() {
	if !s.running {
		return
	}
	s.running = false
	s.generation++
	close(s.stop)
	log.Println("[Strobe] Stopped")
}

func (s *Strobe) loop(generation int, source TickSource, stop <-chan struct{}) {
	defer source.Stop()

	for {
		select {
		case <-stop:
			return
		case <-source.C():
			s.dispatch(func() {
				if generation != s.generation {
					return
				}
				s.state.Tick()
			})
		}
	}
}
