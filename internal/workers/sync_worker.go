package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-doc-vault/internal/access"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
)

// SyncWorker periodically folds pending share notifications from the
// session's inbox into its private document index, so documents shared
// by other users appear without a manual refresh.
type SyncWorker struct {
	acl      access.AccessControl
	sess     *access.Session
	interval time.Duration
	logger   *logger.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

func NewSyncWorker(acl access.AccessControl, sess *access.Session, interval time.Duration, log *logger.Logger) *SyncWorker {
	return &SyncWorker{
		acl:      acl,
		sess:     sess,
		interval: interval,
		logger:   log,
	}
}

// Run starts the periodic inbox sync in a background goroutine and
// returns immediately. Call Stop to terminate it.
func (w *SyncWorker) Run() {
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.done = make(chan struct{})

	go func() {
		defer close(w.done)

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				w.syncOnce(ctx)
			}
		}
	}()
}

// Stop terminates the background sync loop and waits for it to finish.
func (w *SyncWorker) Stop() {
	if w.cancel == nil {
		return
	}
	w.cancel()
	<-w.done
}

func (w *SyncWorker) syncOnce(ctx context.Context) {
	added, err := w.acl.SyncInbox(ctx, w.sess)
	if err != nil {
		// transient store trouble is expected for a background job,
		// the next tick retries
		w.logger.Warn().Err(err).Msg("inbox sync failed")
		return
	}

	if len(added) > 0 {
		w.logger.Info().Int("added", len(added)).Msg("inbox sync discovered shared documents")
	}
}
