package cmd

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/abhisek/vocabstreak/internal/notify"
	"github.com/abhisek/vocabstreak/internal/persist"
	"github.com/abhisek/vocabstreak/internal/progress"
	"github.com/abhisek/vocabstreak/internal/store"
)

// session is one opened learner document with its engine and writer.
type session struct {
	repo    store.DocumentRepo
	writer  *persist.Writer
	engine  *progress.Engine
	watcher *notify.Watcher
}

// openSession opens the configured repository, loads the document and
// wires the engine to a write-behind writer.
func openSession(ctx context.Context) (*session, error) {
	sc, err := storeConfig()
	if err != nil {
		return nil, err
	}
	repo, err := store.Open(ctx, sc)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	state, err := store.LoadState(ctx, repo, cfg.Storage.Key, logger, store.WithFreshState(func() *progress.State {
		s := progress.NewState()
		s.DailyGoal = cfg.DailyGoal
		return s
	}))
	if err != nil {
		repo.Close()
		return nil, err
	}

	loc, err := cfg.Location()
	if err != nil {
		repo.Close()
		return nil, err
	}

	writerID := store.NewWriterID()
	log := logger.With(zap.String("writer", writerID))
	w := persist.NewWriter(repo, persist.Options{
		Key:         cfg.Storage.Key,
		WriterID:    writerID,
		SaveTimeout: cfg.Storage.SaveTimeout,
		Logger:      log,
	})
	e := progress.NewEngine(state,
		progress.WithObserver(w),
		progress.WithLocation(loc),
		progress.WithLogger(log),
	)
	watcher := notify.NewWatcher(e, e.Catalog(), nil, notify.ConsolePresenter{W: os.Stdout}, log)

	return &session{repo: repo, writer: w, engine: e, watcher: watcher}, nil
}

// Close drains pending saves and closes the repository.
func (s *session) Close() error {
	s.writer.Close()
	if n := s.writer.Failures(); n > 0 {
		fmt.Fprintf(os.Stderr, "warning: %d save(s) failed, progress may not be persisted\n", n)
	}
	return s.repo.Close()
}
