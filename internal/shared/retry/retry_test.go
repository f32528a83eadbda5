package retry_test

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/HorizonColonel/orient-launch-pad/internal/shared/retry"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func fastPolicy(attempts int) retry.Policy {
	return retry.Policy{
		Attempts:  attempts,
		BaseDelay: time.Millisecond,
		MaxDelay:  2 * time.Millisecond,
		Timeout:   50 * time.Millisecond,
	}
}

func TestDo(t *testing.T) {
	ctx := context.Background()

	t.Run("retries transient errors until success", func(t *testing.T) {
		calls := 0
		err := retry.Do(ctx, fastPolicy(3), func(ctx context.Context) error {
			calls++
			if calls < 3 {
				return driver.ErrBadConn
			}
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops on non-transient error", func(t *testing.T) {
		calls := 0
		boom := errors.New("constraint violated")
		err := retry.Do(ctx, fastPolicy(3), func(ctx context.Context) error {
			calls++
			return boom
		})

		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, calls)
	})

	t.Run("exhausted attempts keep the cause", func(t *testing.T) {
		calls := 0
		err := retry.Do(ctx, fastPolicy(2), func(ctx context.Context) error {
			calls++
			return &pgconn.PgError{Code: "40001"}
		})

		assert.Error(t, err)
		assert.Equal(t, 2, calls)
		var pgErr *pgconn.PgError
		assert.ErrorAs(t, err, &pgErr)
	})

	t.Run("hung attempt is cut by the per-attempt timeout", func(t *testing.T) {
		calls := 0
		err := retry.Do(ctx, fastPolicy(2), func(ctx context.Context) error {
			calls++
			<-ctx.Done()
			return ctx.Err()
		})

		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Equal(t, 2, calls)
	})

	t.Run("cancelled parent returns immediately", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		calls := 0
		err := retry.Do(cctx, fastPolicy(3), func(ctx context.Context) error {
			calls++
			return nil
		})

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 0, calls)
	})
}

func TestDoValue(t *testing.T) {
	v, err := retry.DoValue(context.Background(), fastPolicy(1), func(ctx context.Context) (int, error) {
		return 42, nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestIsTransient(t *testing.T) {
	assert.True(t, retry.IsTransient(&pgconn.PgError{Code: "08006"}))
	assert.True(t, retry.IsTransient(&pgconn.PgError{Code: "40P01"}))
	assert.False(t, retry.IsTransient(&pgconn.PgError{Code: "23505"}))
	assert.False(t, retry.IsTransient(errors.New("record not found")))
	assert.False(t, retry.IsTransient(nil))
}

func TestWait(t *testing.T) {
	assert.NoError(t, retry.Wait(context.Background(), fastPolicy(3), 1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	slow := retry.Policy{BaseDelay: time.Hour, MaxDelay: time.Hour}
	assert.ErrorIs(t, retry.Wait(ctx, slow, 1), context.Canceled)
}
