package repository

import (
	"context"

	"aerotrav/internal/domain/cart"
	"aerotrav/internal/infra"
	sqlc "aerotrav/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type CartWriteQueries interface {
	UpsertCartItem(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertCartItemParams) (sqlc.Carts, error)
	UpdateCartItemQuantity(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCartItemQuantityParams) (int64, error)
	DeleteCartItem(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteCartItemParams) (int64, error)
	DeleteCartByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (int64, error)
}

type CartRepository struct {
	queries CartWriteQueries
}

func NewCartRepository(queries CartWriteQueries) *CartRepository {
	return &CartRepository{
		queries: queries,
	}
}

// Upsert returns the id of the stored row, which is the existing one when the
// (user, service, type) line already exists.
func (r *CartRepository) Upsert(ctx context.Context, tx sqlc.DBTX, item *cart.Item) (uuid.UUID, error) {
	row, err := r.queries.UpsertCartItem(ctx, tx, sqlc.UpsertCartItemParams{
		ID:          item.ID(),
		UserID:      item.UserID(),
		ServiceID:   item.ServiceID(),
		ServiceType: item.ServiceType().String(),
		Quantity:    int32(item.Quantity().Value()), // #nosec G115 -- bounded by cart.MaxQuantity
		Details:     item.Details(),
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to upsert cart item", err)
	}
	return row.ID, nil
}

func (r *CartRepository) UpdateQuantity(ctx context.Context, tx sqlc.DBTX, userID, itemID uuid.UUID, qty cart.Quantity) (bool, error) {
	n, err := r.queries.UpdateCartItemQuantity(ctx, tx, sqlc.UpdateCartItemQuantityParams{
		ID:       itemID,
		UserID:   userID,
		Quantity: int32(qty.Value()), // #nosec G115 -- bounded by cart.MaxQuantity
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to update cart item quantity", err)
	}
	return n > 0, nil
}

func (r *CartRepository) Delete(ctx context.Context, tx sqlc.DBTX, userID, itemID uuid.UUID) (bool, error) {
	n, err := r.queries.DeleteCartItem(ctx, tx, sqlc.DeleteCartItemParams{ID: itemID, UserID: userID})
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete cart item", err)
	}
	return n > 0, nil
}

func (r *CartRepository) Clear(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) (int64, error) {
	n, err := r.queries.DeleteCartByUser(ctx, tx, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to clear cart", err)
	}
	return n, nil
}
