package readstore

import (
	"context"
	"encoding/json"

	"aerotrav/internal/domain/cart"
	"aerotrav/internal/infra"
	sqlc "aerotrav/internal/infra/sqlc/generated"
	"aerotrav/internal/pkg/pgconv"
	"aerotrav/internal/usecase/queries"
	"aerotrav/internal/usecase/shared"

	"github.com/google/uuid"
)

type CartReadQueries interface {
	ListCartItemsByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.Carts, error)
}

type CartReadStore struct {
	queries CartReadQueries
	db      sqlc.DBTX
}

func NewCartReadStore(queries CartReadQueries, db sqlc.DBTX) *CartReadStore {
	return &CartReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CartReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]queries.CartItemView, error) {
	rows, err := r.queries.ListCartItemsByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cart items", err)
	}

	out := make([]queries.CartItemView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toCartItemView(row))
	}
	return out, nil
}

func toCartItemView(row sqlc.Carts) queries.CartItemView {
	details := json.RawMessage(row.Details)
	if len(details) == 0 {
		details = json.RawMessage(`{}`)
	}
	return queries.CartItemView{
		ID:          row.ID,
		ServiceID:   row.ServiceID,
		ServiceType: row.ServiceType,
		Quantity:    int(row.Quantity),
		Details:     details,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

type CartLineQueries interface {
	ListCartItemsByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.Carts, error)
	FindCartItemByService(ctx context.Context, db sqlc.DBTX, arg sqlc.FindCartItemByServiceParams) (sqlc.Carts, error)
}

// CartLineStore serves command-side cart reads inside a transaction.
type CartLineStore struct {
	queries CartLineQueries
	db      sqlc.DBTX
}

func NewCartLineStore(queries CartLineQueries, db sqlc.DBTX) *CartLineStore {
	return &CartLineStore{
		queries: queries,
		db:      db,
	}
}

func (r *CartLineStore) Lines(ctx context.Context, userID uuid.UUID) ([]shared.CartLine, error) {
	rows, err := r.queries.ListCartItemsByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cart lines", err)
	}

	out := make([]shared.CartLine, 0, len(rows))
	for _, row := range rows {
		out = append(out, toCartLine(row))
	}
	return out, nil
}

// LineByService locks the matching row until the transaction ends.
func (r *CartLineStore) LineByService(ctx context.Context, userID, serviceID uuid.UUID, serviceType cart.ServiceType) (*shared.CartLine, error) {
	row, err := r.queries.FindCartItemByService(ctx, r.db, sqlc.FindCartItemByServiceParams{
		UserID:      userID,
		ServiceID:   serviceID,
		ServiceType: serviceType.String(),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("cart line not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find cart line", err)
	}
	line := toCartLine(row)
	return &line, nil
}

func toCartLine(row sqlc.Carts) shared.CartLine {
	return shared.CartLine{
		ID:          row.ID,
		ServiceID:   row.ServiceID,
		ServiceType: cart.ServiceType(row.ServiceType),
		Quantity:    int(row.Quantity),
		Details:     json.RawMessage(row.Details),
	}
}
