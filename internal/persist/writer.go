// Package persist saves progress snapshots in the background.
//
// A Writer is registered as an engine observer. Transitions hand it a deep
// copy of the state and return immediately; a single goroutine writes the
// newest pending snapshot, so bursts of transitions collapse into one save.
package persist

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/vocabstreak/internal/progress"
	"github.com/abhisek/vocabstreak/internal/store"
)

// DefaultSaveTimeout bounds a single save.
const DefaultSaveTimeout = 5 * time.Second

// ErrClosed is returned by Flush after Close.
var ErrClosed = errors.New("persist: writer closed")

// Options configures a Writer.
type Options struct {
	Key         string
	WriterID    string
	SaveTimeout time.Duration
	Logger      *zap.Logger
}

// Writer is a write-behind progress.Observer.
type Writer struct {
	repo    store.DocumentRepo
	key     string
	id      string
	timeout time.Duration
	log     *zap.Logger

	mu      sync.Mutex
	pending *progress.State

	wake     chan struct{}
	flushReq chan chan struct{}
	stop     chan struct{}
	done     chan struct{}
	once     sync.Once

	saves    atomic.Int64
	failures atomic.Int64
}

// NewWriter starts the background goroutine. Close must be called to stop it.
func NewWriter(repo store.DocumentRepo, opts Options) *Writer {
	if opts.SaveTimeout <= 0 {
		opts.SaveTimeout = DefaultSaveTimeout
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	w := &Writer{
		repo:     repo,
		key:      opts.Key,
		id:       opts.WriterID,
		timeout:  opts.SaveTimeout,
		log:      opts.Logger.With(zap.String("key", opts.Key), zap.String("writer", opts.WriterID)),
		wake:     make(chan struct{}, 1),
		flushReq: make(chan chan struct{}),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go w.loop()
	return w
}

// StateChanged queues snapshot, replacing any snapshot not yet written.
func (w *Writer) StateChanged(snapshot *progress.State) {
	w.mu.Lock()
	w.pending = snapshot
	w.mu.Unlock()

	select {
	case w.wake <- struct{}{}:
	default:
	}
}

// Flush blocks until every snapshot queued before the call has been written
// (or failed).
func (w *Writer) Flush(ctx context.Context) error {
	reply := make(chan struct{})
	select {
	case w.flushReq <- reply:
	case <-w.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-reply:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close writes the pending snapshot and stops the goroutine.
func (w *Writer) Close() error {
	w.once.Do(func() { close(w.stop) })
	<-w.done
	return nil
}

// Saves returns the number of successful saves.
func (w *Writer) Saves() int64 { return w.saves.Load() }

// Failures returns the number of failed saves.
func (w *Writer) Failures() int64 { return w.failures.Load() }

func (w *Writer) loop() {
	defer close(w.done)
	for {
		select {
		case <-w.wake:
			w.drain()
		case reply := <-w.flushReq:
			w.drain()
			close(reply)
		case <-w.stop:
			w.drain()
			return
		}
	}
}

func (w *Writer) drain() {
	w.mu.Lock()
	s := w.pending
	w.pending = nil
	w.mu.Unlock()

	if s != nil {
		w.save(s)
	}
}

func (w *Writer) save(s *progress.State) {
	rec, err := store.NewRecord(w.key, w.id, s)
	if err != nil {
		w.failures.Add(1)
		w.log.Warn("encode progress document failed", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	start := time.Now()
	if err := w.repo.Save(ctx, rec); err != nil {
		w.failures.Add(1)
		w.log.Warn("save progress document failed, keeping in-memory state", zap.Error(err))
		return
	}
	w.saves.Add(1)
	w.log.Debug("progress document saved", zap.Duration("took", time.Since(start)))
}
