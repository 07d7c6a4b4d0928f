package commands

import (
	"context"
	"log/slog"

	"aerotrav/internal/usecase/shared"
)

// ActivityRecorder writes audit entries on a best-effort basis.
type ActivityRecorder interface {
	Record(ctx context.Context, entry shared.ActivityEntry)
}

type asyncActivityRecorder struct {
	uow shared.UnitOfWork
}

// NewActivityRecorder returns a recorder that writes each entry in its own
// goroutine and transaction. Failures are logged and dropped.
func NewActivityRecorder(uow shared.UnitOfWork) ActivityRecorder {
	return &asyncActivityRecorder{uow: uow}
}

func (r *asyncActivityRecorder) Record(ctx context.Context, entry shared.ActivityEntry) {
	detached := context.WithoutCancel(ctx)
	go func() {
		err := r.uow.Within(detached, func(ctx context.Context, tx shared.Tx) error {
			return tx.ActivityLogs().Record(ctx, tx.DB(), entry)
		}, shared.WithoutRetry())
		if err != nil {
			slog.Warn("failed to record activity",
				"action", entry.Action,
				"entity_type", entry.EntityType,
				"error", err.Error())
		}
	}()
}
