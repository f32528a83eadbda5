package progress_test

import (
	"testing"
	"time"

	"github.com/HorizonColonel/orient-launch-pad/internal/progress"
	progresserrors "github.com/HorizonColonel/orient-launch-pad/internal/progress/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func TestApply(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	earlier := now.Add(-48 * time.Hour)

	t.Run("missing row moves to in_progress with percentage", func(t *testing.T) {
		next, changed, err := progress.Apply(nil, progress.StatusInProgress, intPtr(40), now)

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, progress.StatusInProgress, next.Status)
		assert.Equal(t, 40, next.ProgressPercentage)
		require.NotNil(t, next.StartedAt)
		assert.Equal(t, now, *next.StartedAt)
		assert.Nil(t, next.CompletedAt)
		assert.Equal(t, now, next.UpdatedAt)
	})

	t.Run("completion forces 100 and ignores the given percentage", func(t *testing.T) {
		current := &progress.EmployeeProgress{Status: progress.StatusInProgress, ProgressPercentage: 40, StartedAt: &earlier}

		next, changed, err := progress.Apply(current, progress.StatusCompleted, intPtr(10), now)

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, 100, next.ProgressPercentage)
		require.NotNil(t, next.CompletedAt)
		assert.Equal(t, earlier, *next.StartedAt)
	})

	t.Run("skipping straight to completed also stamps started_at", func(t *testing.T) {
		current := &progress.EmployeeProgress{Status: progress.StatusNotStarted}

		next, _, err := progress.Apply(current, progress.StatusCompleted, nil, now)

		require.NoError(t, err)
		require.NotNil(t, next.StartedAt)
		require.NotNil(t, next.CompletedAt)
	})

	t.Run("started_at is never overwritten", func(t *testing.T) {
		current := &progress.EmployeeProgress{Status: progress.StatusInProgress, ProgressPercentage: 20, StartedAt: &earlier}

		next, changed, err := progress.Apply(current, progress.StatusInProgress, intPtr(60), now)

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, earlier, *next.StartedAt)
		assert.Equal(t, 60, next.ProgressPercentage)
	})

	t.Run("same state on completed is a no-op", func(t *testing.T) {
		completedAt := earlier
		current := &progress.EmployeeProgress{Status: progress.StatusCompleted, ProgressPercentage: 100, StartedAt: &earlier, CompletedAt: &completedAt, UpdatedAt: earlier}

		next, changed, err := progress.Apply(current, progress.StatusCompleted, nil, now)

		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, earlier, next.UpdatedAt)
		assert.Equal(t, earlier, *next.CompletedAt)
	})

	t.Run("same state on not_started is a no-op", func(t *testing.T) {
		current := &progress.EmployeeProgress{Status: progress.StatusNotStarted}

		_, changed, err := progress.Apply(current, progress.StatusNotStarted, nil, now)

		require.NoError(t, err)
		assert.False(t, changed)
	})

	tests := []struct {
		name    string
		from    progress.Status
		to      progress.Status
		pct     *int
		wantErr error
	}{
		{"completed back to in_progress", progress.StatusCompleted, progress.StatusInProgress, nil, progresserrors.ErrInvalidStatusTransition},
		{"completed back to not_started", progress.StatusCompleted, progress.StatusNotStarted, nil, progresserrors.ErrInvalidStatusTransition},
		{"in_progress back to not_started", progress.StatusInProgress, progress.StatusNotStarted, nil, progresserrors.ErrInvalidStatusTransition},
		{"percentage above 100", progress.StatusInProgress, progress.StatusInProgress, intPtr(101), progresserrors.ErrInvalidPercentage},
		{"negative percentage", progress.StatusNotStarted, progress.StatusInProgress, intPtr(-1), progresserrors.ErrInvalidPercentage},
		{"not_started with progress", progress.StatusNotStarted, progress.StatusNotStarted, intPtr(30), progresserrors.ErrNotStartedPercentage},
		{"unknown status", progress.StatusNotStarted, progress.Status("paused"), nil, progresserrors.ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current := &progress.EmployeeProgress{Status: tt.from, StartedAt: &earlier}
			_, _, err := progress.Apply(current, tt.to, tt.pct, now)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestReopen(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	started := now.Add(-time.Hour)
	completed := now.Add(-time.Minute)
	done := progress.EmployeeProgress{Status: progress.StatusCompleted, ProgressPercentage: 100, StartedAt: &started, CompletedAt: &completed}

	t.Run("keeps started_at and clears completion", func(t *testing.T) {
		next, err := progress.Reopen(done, intPtr(80), now)

		require.NoError(t, err)
		assert.Equal(t, progress.StatusInProgress, next.Status)
		assert.Equal(t, 80, next.ProgressPercentage)
		assert.Equal(t, started, *next.StartedAt)
		assert.Nil(t, next.CompletedAt)
	})

	t.Run("defaults to zero percent", func(t *testing.T) {
		next, err := progress.Reopen(done, nil, now)

		require.NoError(t, err)
		assert.Zero(t, next.ProgressPercentage)
	})

	t.Run("only completed rows can be reopened", func(t *testing.T) {
		_, err := progress.Reopen(progress.EmployeeProgress{Status: progress.StatusInProgress, StartedAt: &started}, nil, now)
		assert.ErrorIs(t, err, progresserrors.ErrInvalidStatusTransition)
	})
}
