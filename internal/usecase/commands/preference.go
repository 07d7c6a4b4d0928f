package commands

import (
	"context"

	"aerotrav/internal/domain/preference"
	"aerotrav/internal/pkg/errs"
	"aerotrav/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrPreferencesSaveFailed = errs.New("failed to save preferences")

type SavePreferencesInput struct {
	PreferredActivities  []string
	FavoriteDestinations []string
	TravelStyles         []string
	BudgetMin            *float64
	BudgetMax            *float64
}

type PreferenceCommands interface {
	SavePreferences(ctx context.Context, userID uuid.UUID, in SavePreferencesInput) (preference.Preferences, error)
}

type preferenceCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewPreferenceCommands(uow shared.UnitOfWork) PreferenceCommands {
	return &preferenceCommandsImpl{uow: uow}
}

// SavePreferences overwrites every stored preference of the user.
func (uc *preferenceCommandsImpl) SavePreferences(ctx context.Context, userID uuid.UUID, in SavePreferencesInput) (preference.Preferences, error) {
	if userID == uuid.Nil {
		return preference.Preferences{}, ErrUnauthenticated
	}

	prefs, err := preference.New(in.PreferredActivities, in.FavoriteDestinations, in.TravelStyles, in.BudgetMin, in.BudgetMax)
	if err != nil {
		return preference.Preferences{}, errs.Mark(err, errs.ErrDomainValidation)
	}

	rows := preference.Encode(prefs)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Preferences().ReplaceAll(ctx, tx.DB(), userID, rows)
	})
	if err != nil {
		return preference.Preferences{}, errs.Mark(err, ErrPreferencesSaveFailed)
	}

	return prefs, nil
}
