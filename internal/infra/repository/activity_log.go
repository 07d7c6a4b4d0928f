package repository

import (
	"context"
	"encoding/json"

	"aerotrav/internal/infra"
	sqlc "aerotrav/internal/infra/sqlc/generated"
	"aerotrav/internal/pkg/pgconv"
	"aerotrav/internal/usecase/shared"
)

type ActivityLogWriteQueries interface {
	CreateActivityLog(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateActivityLogParams) error
}

type ActivityLogRepository struct {
	queries ActivityLogWriteQueries
}

func NewActivityLogRepository(queries ActivityLogWriteQueries) *ActivityLogRepository {
	return &ActivityLogRepository{
		queries: queries,
	}
}

func (r *ActivityLogRepository) Record(ctx context.Context, tx sqlc.DBTX, entry shared.ActivityEntry) error {
	details := []byte("{}")
	if len(entry.Details) > 0 {
		b, err := json.Marshal(entry.Details)
		if err != nil {
			return infra.WrapRepoErr("failed to encode activity details", err)
		}
		details = b
	}

	err := r.queries.CreateActivityLog(ctx, tx, sqlc.CreateActivityLogParams{
		UserID:     pgconv.UUIDPtrToPgtype(entry.UserID),
		Action:     entry.Action,
		EntityType: entry.EntityType,
		EntityID:   pgconv.UUIDPtrToPgtype(entry.EntityID),
		Details:    details,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create activity log", err)
	}
	return nil
}
