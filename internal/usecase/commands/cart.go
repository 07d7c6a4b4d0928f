package commands

import (
	"context"
	"encoding/json"

	"aerotrav/internal/domain/cart"
	"aerotrav/internal/infra"
	"aerotrav/internal/pkg/clock"
	"aerotrav/internal/pkg/errs"
	"aerotrav/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCartItemNotFound = errs.New("cart item not found")
	ErrCartUpdateFailed = errs.New("failed to update cart")
)

type AddCartItemInput struct {
	ServiceID   uuid.UUID
	ServiceType string
	Quantity    int
	Details     json.RawMessage
}

type AddCartItemResult struct {
	ItemID      uuid.UUID
	Quantity    int
	ServiceName string
}

type CartCommands interface {
	AddItem(ctx context.Context, userID uuid.UUID, in AddCartItemInput) (*AddCartItemResult, error)
	UpdateItemQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) error
	RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error
	Clear(ctx context.Context, userID uuid.UUID) error
}

type cartCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCartCommands(uow shared.UnitOfWork, clk clock.Clock) CartCommands {
	return &cartCommandsImpl{uow: uow, clock: clk}
}

func (uc *cartCommandsImpl) AddItem(ctx context.Context, userID uuid.UUID, in AddCartItemInput) (*AddCartItemResult, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	serviceType, err := cart.ParseServiceType(in.ServiceType)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	qty, err := cart.NewQuantity(in.Quantity)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	quote, err := uc.uow.CommandReads().ServiceQuote(ctx, serviceType, in.ServiceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, unavailable(serviceType.String(), in.ServiceID)
		}
		return nil, errs.Mark(err, ErrCartUpdateFailed)
	}

	var result *AddCartItemResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, rerr := tx.Reads().CartItemByService(ctx, userID, in.ServiceID, serviceType)
		if rerr != nil && !infra.IsKind(rerr, infra.KindNotFound) {
			return rerr
		}
		if existing != nil {
			current, qerr := cart.NewQuantity(existing.Quantity)
			if qerr != nil {
				return qerr
			}
			qty = cart.MergeQuantity(current, qty)
		}

		item, derr := cart.NewItem(userID, in.ServiceID, serviceType, qty, in.Details, uc.clock.Now())
		if derr != nil {
			return errs.Mark(derr, errs.ErrDomainValidation)
		}
		id, uerr := tx.Carts().Upsert(ctx, tx.DB(), item)
		if uerr != nil {
			return uerr
		}
		result = &AddCartItemResult{ItemID: id, Quantity: qty.Value(), ServiceName: quote.Name}
		return nil
	})
	if err != nil {
		if errs.Is(err, errs.ErrDomainValidation) {
			return nil, err
		}
		return nil, errs.Mark(err, ErrCartUpdateFailed)
	}
	return result, nil
}

func (uc *cartCommandsImpl) UpdateItemQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) error {
	if userID == uuid.Nil {
		return ErrUnauthenticated
	}
	qty, err := cart.NewQuantity(quantity)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	var found bool
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var uerr error
		found, uerr = tx.Carts().UpdateQuantity(ctx, tx.DB(), userID, itemID, qty)
		return uerr
	})
	if err != nil {
		return errs.Mark(err, ErrCartUpdateFailed)
	}
	if !found {
		return ErrCartItemNotFound
	}
	return nil
}

func (uc *cartCommandsImpl) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthenticated
	}
	var found bool
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		found, derr = tx.Carts().Delete(ctx, tx.DB(), userID, itemID)
		return derr
	})
	if err != nil {
		return errs.Mark(err, ErrCartUpdateFailed)
	}
	if !found {
		return ErrCartItemNotFound
	}
	return nil
}

func (uc *cartCommandsImpl) Clear(ctx context.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthenticated
	}
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, cerr := tx.Carts().Clear(ctx, tx.DB(), userID)
		return cerr
	})
	if err != nil {
		return errs.Mark(err, ErrCartUpdateFailed)
	}
	return nil
}
