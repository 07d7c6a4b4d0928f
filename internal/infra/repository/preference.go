package repository

import (
	"context"

	"aerotrav/internal/domain/preference"
	"aerotrav/internal/infra"
	sqlc "aerotrav/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type PreferenceWriteQueries interface {
	DeleteUserPreferences(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) error
	InsertUserPreference(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertUserPreferenceParams) error
}

type PreferenceRepository struct {
	queries PreferenceWriteQueries
}

func NewPreferenceRepository(queries PreferenceWriteQueries) *PreferenceRepository {
	return &PreferenceRepository{
		queries: queries,
	}
}

// ReplaceAll deletes every stored key for the user before inserting rows.
func (r *PreferenceRepository) ReplaceAll(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, rows []preference.Row) error {
	if err := r.queries.DeleteUserPreferences(ctx, tx, userID); err != nil {
		return infra.WrapRepoErr("failed to delete user preferences", err)
	}

	for _, row := range rows {
		err := r.queries.InsertUserPreference(ctx, tx, sqlc.InsertUserPreferenceParams{
			UserID:          userID,
			PreferenceKey:   row.Key,
			PreferenceValue: row.Value,
		})
		if err != nil {
			return infra.WrapRepoErr("failed to insert user preference "+row.Key, err)
		}
	}
	return nil
}
