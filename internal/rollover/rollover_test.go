package rollover

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/vocabstreak/internal/progress"
)

type countingRoller struct {
	calls  atomic.Int32
	result bool
}

func (r *countingRoller) Rollover() bool {
	r.calls.Add(1)
	return r.result
}

func TestStartRollsOverImmediatelyAndSchedules(t *testing.T) {
	r := &countingRoller{}
	s := New(r, time.UTC, nil)
	require.NoError(t, s.Start())
	defer s.Stop()

	assert.Equal(t, int32(1), r.calls.Load())
	assert.Eventually(t, func() bool {
		next := s.NextRun()
		return next.After(time.Now()) && next.Hour() == 0 && next.Minute() == 0
	}, time.Second, 10*time.Millisecond)
}

func TestNextRunBeforeStart(t *testing.T) {
	s := New(&countingRoller{}, nil, nil)
	assert.True(t, s.NextRun().IsZero())
}

func TestRunNowLogsOnlyWhenRolled(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := &countingRoller{}
	s := New(r, time.UTC, zap.New(core))

	assert.False(t, s.RunNow())
	assert.Equal(t, 0, logs.Len())

	r.result = true
	assert.True(t, s.RunNow())
	assert.Equal(t, 1, logs.FilterMessage("today counter reset for new day").Len())
}

func TestRunNowResetsEngineCounter(t *testing.T) {
	now := time.Date(2026, 3, 9, 23, 50, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	e := progress.NewEngine(nil, progress.WithClock(clock), progress.WithLocation(time.UTC))
	e.RecordWordsLearned(7)

	s := New(e, time.UTC, nil)
	assert.False(t, s.RunNow(), "same day")

	now = now.Add(20 * time.Minute)
	assert.True(t, s.RunNow())
	assert.Equal(t, 0, e.Snapshot().TodayWordsLearned)
	assert.Equal(t, progress.Day("2026-03-10"), e.Snapshot().TodayDate)
}
