package queries

import (
	"context"

	"aerotrav/internal/domain/preference"
	"aerotrav/internal/pkg/errs"

	"github.com/google/uuid"
)

type PreferenceReadStore interface {
	ListRows(ctx context.Context, userID uuid.UUID) ([]preference.Row, error)
}

type PreferenceQueries interface {
	GetPreferences(ctx context.Context, userID uuid.UUID) (*PreferencesView, error)
}

type preferenceQueriesImpl struct {
	readStore PreferenceReadStore
}

func NewPreferenceQueries(readStore PreferenceReadStore) PreferenceQueries {
	return &preferenceQueriesImpl{readStore: readStore}
}

func (q *preferenceQueriesImpl) GetPreferences(ctx context.Context, userID uuid.UUID) (*PreferencesView, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	rows, err := q.readStore.ListRows(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	view := NewPreferencesView(preference.Decode(rows))
	return &view, nil
}
