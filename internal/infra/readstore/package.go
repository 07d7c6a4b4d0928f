package readstore

import (
	"context"

	"aerotrav/internal/domain/catalog"
	"aerotrav/internal/infra"
	sqlc "aerotrav/internal/infra/sqlc/generated"
	"aerotrav/internal/pkg/pgconv"
)

type PackageReadQueries interface {
	ListActivePackages(ctx context.Context, db sqlc.DBTX) ([]sqlc.Packages, error)
}

type PackageReadStore struct {
	queries PackageReadQueries
	db      sqlc.DBTX
}

func NewPackageReadStore(queries PackageReadQueries, db sqlc.DBTX) *PackageReadStore {
	return &PackageReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PackageReadStore) ListActive(ctx context.Context) ([]catalog.Package, error) {
	rows, err := r.queries.ListActivePackages(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active packages", err)
	}

	out := make([]catalog.Package, 0, len(rows))
	for _, row := range rows {
		pkg, err := toPackage(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert package "+row.ID.String(), err)
		}
		out = append(out, pkg)
	}
	return out, nil
}

// Malformed tag columns degrade to empty lists rather than failing the listing.
func toPackage(row sqlc.Packages) (catalog.Package, error) {
	price, err := pgconv.DecimalPtrFromNumeric(row.Price)
	if err != nil {
		return catalog.Package{}, err
	}
	basePrice, err := pgconv.DecimalPtrFromNumeric(row.BasePrice)
	if err != nil {
		return catalog.Package{}, err
	}

	pkg := catalog.Package{
		ID:           row.ID,
		Name:         row.Name,
		Price:        price,
		BasePrice:    basePrice,
		DurationDays: int(row.DurationDays),
		Activities:   catalog.ParseTagList(pgconv.StringPtrFromPgtype(row.Activities)),
		TravelStyles: catalog.ParseTagList(pgconv.StringPtrFromPgtype(row.TravelStyles)),
		Tags:         catalog.ParseTagList(pgconv.StringPtrFromPgtype(row.Tags)),
		DestRegion:   pgconv.StringPtrFromPgtype(row.DestRegion),
		Status:       row.Status,
	}
	if row.Description.Valid {
		pkg.Description = row.Description.String
	}
	return pkg, nil
}
