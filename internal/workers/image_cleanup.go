package workers

import (
	"context"
	"time"

	"github.com/azimovr/go-user-admin/internal/logger"
	"github.com/azimovr/go-user-admin/internal/store"
)

const (
	cleanupQueueSize     = 128
	cleanupDeleteTimeout = 15 * time.Second
)

// ImageCleanupWorker deletes replaced avatar objects from the image store in
// the background.
//
// Replacing an avatar must never block on cleanup of the previous object,
// so the request path only enqueues the old storage key here. Deletion is
// best effort: failures are logged and the key is dropped (the orphaned
// object is recoverable by manual bucket maintenance), and a full queue
// drops the key immediately with a warning instead of blocking.
type ImageCleanupWorker struct {
	images store.ImageStorage
	queue  chan string
	done   chan struct{}
	logger *logger.Logger
}

// NewImageCleanupWorker constructs a worker draining into the given image
// storage adapter.
func NewImageCleanupWorker(images store.ImageStorage, logger *logger.Logger) *ImageCleanupWorker {
	return &ImageCleanupWorker{
		images: images,
		queue:  make(chan string, cleanupQueueSize),
		done:   make(chan struct{}),
		logger: logger,
	}
}

// Enqueue schedules the object with the given storage key for deletion.
// Empty keys are ignored. Never blocks: when the queue is full the key is
// dropped with a warning.
func (w *ImageCleanupWorker) Enqueue(key string) {
	if key == "" {
		return
	}

	select {
	case w.queue <- key:
	default:
		w.logger.Warn().Str("key", key).Msg("image cleanup queue full, dropping key")
	}
}

// Run starts the processing loop.
func (w *ImageCleanupWorker) Run() {
	go func() {
		defer close(w.done)

		for key := range w.queue {
			ctx, cancel := context.WithTimeout(context.Background(), cleanupDeleteTimeout)
			if err := w.images.DeleteImage(ctx, key); err != nil {
				w.logger.Err(err).Str("key", key).Msg("best-effort image cleanup failed")
			} else {
				w.logger.Debug().Str("key", key).Msg("replaced image deleted")
			}
			cancel()
		}
	}()
}

// Stop closes the queue and waits for the loop to drain outstanding keys.
func (w *ImageCleanupWorker) Stop() {
	close(w.queue)
	<-w.done
}
