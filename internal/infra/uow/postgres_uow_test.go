//go:build unit

package uow

import (
	"context"
	"testing"
	"time"

	"aerotrav/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "シリアライズ失敗", err: &pgconn.PgError{Code: "40001"}, want: true},
		{name: "デッドロック", err: &pgconn.PgError{Code: "40P01"}, want: true},
		{name: "ラップされていても判定", err: errs.Wrap(&pgconn.PgError{Code: "40001"}, "commit"), want: true},
		{name: "一意制約違反", err: &pgconn.PgError{Code: "23505"}, want: false},
		{name: "PgError以外", err: assert.AnError, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}

func TestShouldRetry(t *testing.T) {
	retryable := &pgconn.PgError{Code: "40001"}

	assert.True(t, shouldRetry(retryable, 0, defaultMaxRetries))
	assert.False(t, shouldRetry(retryable, defaultMaxRetries, defaultMaxRetries))
	assert.False(t, shouldRetry(retryable, 0, 0), "リトライ無効なら1回のみ")
}

func TestCalculateBackoff(t *testing.T) {
	base := 100 * time.Millisecond
	for attempt := range 3 {
		got := calculateBackoff(attempt, base)
		floor := time.Duration(1<<attempt) * base
		assert.GreaterOrEqual(t, got, floor)
		assert.Less(t, got, floor+floor/5+time.Nanosecond)
	}
}

type recordingTx struct {
	rollbacks int
	err       error
}

func (r *recordingTx) Rollback(context.Context) error {
	r.rollbacks++
	return r.err
}

func TestCallRollingBackOnPanic(t *testing.T) {
	t.Run("パニック時はロールバックしてから再パニック", func(t *testing.T) {
		tx := &recordingTx{}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.PanicsWithValue(t, "boom", func() {
			_ = callRollingBackOnPanic(ctx, tx, func() error { panic("boom") })
		})
		assert.Equal(t, 1, tx.rollbacks)
	})

	t.Run("ロールバック失敗でも元のパニックを伝える", func(t *testing.T) {
		tx := &recordingTx{err: assert.AnError}

		assert.PanicsWithValue(t, "boom", func() {
			_ = callRollingBackOnPanic(context.Background(), tx, func() error { panic("boom") })
		})
		assert.Equal(t, 1, tx.rollbacks)
	})

	t.Run("通常のエラーはそのまま返しロールバックは呼び出し側", func(t *testing.T) {
		tx := &recordingTx{}

		err := callRollingBackOnPanic(context.Background(), tx, func() error { return assert.AnError })
		assert.ErrorIs(t, err, assert.AnError)
		assert.Zero(t, tx.rollbacks)
	})
}
