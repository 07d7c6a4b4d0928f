package readstore

import (
	"context"

	"aerotrav/internal/domain/preference"
	"aerotrav/internal/infra"
	sqlc "aerotrav/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type PreferenceReadQueries interface {
	ListUserPreferences(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.ListUserPreferencesRow, error)
}

type PreferenceReadStore struct {
	queries PreferenceReadQueries
	db      sqlc.DBTX
}

func NewPreferenceReadStore(queries PreferenceReadQueries, db sqlc.DBTX) *PreferenceReadStore {
	return &PreferenceReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PreferenceReadStore) ListRows(ctx context.Context, userID uuid.UUID) ([]preference.Row, error) {
	rows, err := r.queries.ListUserPreferences(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user preferences", err)
	}

	out := make([]preference.Row, 0, len(rows))
	for _, row := range rows {
		out = append(out, preference.Row{Key: row.PreferenceKey, Value: row.PreferenceValue})
	}
	return out, nil
}
