package readstore

import (
	"context"
	"fmt"

	"aerotrav/internal/domain/cart"
	"aerotrav/internal/infra"
	sqlc "aerotrav/internal/infra/sqlc/generated"
	"aerotrav/internal/pkg/errs"
	"aerotrav/internal/pkg/pgconv"
	"aerotrav/internal/usecase/shared"

	"github.com/google/uuid"
)

var errUnpriced = errs.New("service has no price")

type ServiceQuoteQueries interface {
	GetHotelQuote(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetHotelQuoteRow, error)
	GetFlightQuote(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetFlightQuoteRow, error)
	GetCarQuote(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetCarQuoteRow, error)
	GetPackageQuote(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetPackageQuoteRow, error)
}

// ServiceReadStore prices bookable services. Each lookup only matches rows
// that are currently bookable, so a missing row means "unavailable".
type ServiceReadStore struct {
	queries ServiceQuoteQueries
	db      sqlc.DBTX
}

func NewServiceReadStore(queries ServiceQuoteQueries, db sqlc.DBTX) *ServiceReadStore {
	return &ServiceReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ServiceReadStore) Quote(ctx context.Context, serviceType cart.ServiceType, id uuid.UUID) (*shared.ServiceQuote, error) {
	var (
		quote *shared.ServiceQuote
		err   error
	)
	switch serviceType {
	case cart.ServiceHotel:
		quote, err = r.hotel(ctx, id)
	case cart.ServiceFlight:
		quote, err = r.flight(ctx, id)
	case cart.ServiceCar:
		quote, err = r.car(ctx, id)
	case cart.ServicePackage:
		quote, err = r.pkg(ctx, id)
	default:
		return nil, infra.WrapRepoErr("unknown service type "+serviceType.String(), cart.ErrUnknownServiceType, infra.KindNotFound)
	}
	if err != nil {
		if pgconv.IsNoRows(err) || errs.Is(err, errUnpriced) {
			return nil, infra.WrapRepoErr(serviceType.String()+" not available", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to quote "+serviceType.String(), err)
	}
	return quote, nil
}

func (r *ServiceReadStore) hotel(ctx context.Context, id uuid.UUID) (*shared.ServiceQuote, error) {
	row, err := r.queries.GetHotelQuote(ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	price, err := pgconv.DecimalFromNumeric(row.PricePerNight)
	if err != nil {
		return nil, err
	}
	info := map[string]any{"city": row.City, "country": row.Country}
	if row.StarRating.Valid {
		info["star_rating"] = row.StarRating.Int32
	}
	return &shared.ServiceQuote{ID: row.ID, Type: cart.ServiceHotel, Name: row.Name, UnitPrice: price, Info: info}, nil
}

func (r *ServiceReadStore) flight(ctx context.Context, id uuid.UUID) (*shared.ServiceQuote, error) {
	row, err := r.queries.GetFlightQuote(ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	price, err := pgconv.DecimalFromNumeric(row.Price)
	if err != nil {
		return nil, err
	}
	return &shared.ServiceQuote{
		ID:        row.ID,
		Type:      cart.ServiceFlight,
		Name:      fmt.Sprintf("%s %s", row.Airline, row.FlightNumber),
		UnitPrice: price,
		Info: map[string]any{
			"origin":          row.Origin,
			"destination":     row.Destination,
			"departure_time":  pgconv.TimeFromPgtype(row.DepartureTime),
			"available_seats": row.AvailableSeats,
		},
	}, nil
}

func (r *ServiceReadStore) car(ctx context.Context, id uuid.UUID) (*shared.ServiceQuote, error) {
	row, err := r.queries.GetCarQuote(ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	price, err := pgconv.DecimalFromNumeric(row.PricePerDay)
	if err != nil {
		return nil, err
	}
	return &shared.ServiceQuote{
		ID:        row.ID,
		Type:      cart.ServiceCar,
		Name:      fmt.Sprintf("%s %s", row.Make, row.Model),
		UnitPrice: price,
		Info:      map[string]any{"location": row.Location},
	}, nil
}

func (r *ServiceReadStore) pkg(ctx context.Context, id uuid.UUID) (*shared.ServiceQuote, error) {
	row, err := r.queries.GetPackageQuote(ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	if !row.Price.Valid {
		return nil, errUnpriced
	}
	price, err := pgconv.DecimalFromNumeric(row.Price)
	if err != nil {
		return nil, err
	}
	info := map[string]any{"duration_days": row.DurationDays}
	if row.DestRegion.Valid {
		info["dest_region"] = row.DestRegion.String
	}
	return &shared.ServiceQuote{ID: row.ID, Type: cart.ServicePackage, Name: row.Name, UnitPrice: price, Info: info}, nil
}
