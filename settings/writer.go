package settings

import (
	"log"
	"sync"

	"flashlight/light"
)

// Writer persists settings in the background. Save never blocks the caller; when
// several snapshots arrive while a write is in progress only the latest is written.
// Failed writes are logged and dropped.
type Writer struct {
	store *Store

	mu         sync.Mutex
	pending    *light.Settings
	processing bool
	wg         sync.WaitGroup

	// onError is called from the writer goroutine after a failed write
	onError func(error)
	// onSaved is called from the writer goroutine after a successful write
	onSaved func(light.Settings)
}

// NewWriter returns a writer saving through store.
func NewWriter(store *Store) *Writer {
	return &Writer{store: store}
}

// SetCallbacks sets optional callbacks for write results.
func (w *Writer) SetCallbacks(onSaved func(light.Settings), onError func(error)) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.onSaved = onSaved
	w.onError = onError
}

// Save queues settings for writing and returns immediately.
func (w *Writer) Save(settings light.Settings) {
	w.mu.Lock()
	w.pending = &settings
	if w.processing {
		w.mu.Unlock()
		return
	}
	w.processing = true
	w.wg.Add(1)
	w.mu.Unlock()

	go w.process()
}

// Wait blocks until every queued snapshot has been written or has failed.
func (w *Writer) Wait() {
	w.wg.Wait()
}

func (w *Writer) process() {
	defer w.wg.Done()

	for {
		w.mu.Lock()
		next := w.pending
		w.pending = nil
		if next == nil {
			w.processing = false
			w.mu.Unlock()
			return
		}
		onSaved, onError := w.onSaved, w.onError
		w.mu.Unlock()

		if err := w.store.Save(*next); err != nil {
			log.Printf("[Settings] Save error: %v", err)
			if onError != nil {
				onError(err)
			}
			continue
		}

		log.Printf("[Settings] Saved %s %s", next.Color, next.HSL)
		if onSaved != nil {
			onSaved(*next)
		}
	}
}
