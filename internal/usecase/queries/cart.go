package queries

import (
	"context"

	"aerotrav/internal/pkg/errs"

	"github.com/google/uuid"
)

type CartReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]CartItemView, error)
}

type CartQueries interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*CartView, error)
}

type cartQueriesImpl struct {
	readStore CartReadStore
}

func NewCartQueries(readStore CartReadStore) CartQueries {
	return &cartQueriesImpl{readStore: readStore}
}

func (q *cartQueriesImpl) GetCart(ctx context.Context, userID uuid.UUID) (*CartView, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	items, err := q.readStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	count := 0
	for _, it := range items {
		count += it.Quantity
	}
	return &CartView{Items: items, ItemCount: count}, nil
}
