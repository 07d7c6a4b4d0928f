package queries

import (
	"context"
	"time"

	"aerotrav/internal/domain/catalog"
	"aerotrav/internal/domain/preference"
	"aerotrav/internal/domain/recommendation"
	"aerotrav/internal/pkg/errs"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

var (
	ErrUnauthenticated       = errs.New("authentication required")
	ErrRecommendationsFailed = errs.New("failed to get recommendations")
)

const (
	activePackagesKey  = "active-packages"
	packageScanTimeout = 30 * time.Second
)

type PackageReadStore interface {
	ListActive(ctx context.Context) ([]catalog.Package, error)
}

type RecommendationQueries interface {
	GetRecommendations(ctx context.Context, userID uuid.UUID, page, limit int) (*RecommendationsView, error)
}

type recommendationQueriesImpl struct {
	preferences PreferenceReadStore
	packages    PackageReadStore
	group       singleflight.Group
}

func NewRecommendationQueries(preferences PreferenceReadStore, packages PackageReadStore) RecommendationQueries {
	return &recommendationQueriesImpl{
		preferences: preferences,
		packages:    packages,
	}
}

func (q *recommendationQueriesImpl) GetRecommendations(ctx context.Context, userID uuid.UUID, page, limit int) (*RecommendationsView, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	page, limit = recommendation.NormalizePage(page, limit)

	rows, err := q.preferences.ListRows(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrRecommendationsFailed)
	}
	prefs := preference.Decode(rows)

	pkgs, err := q.activePackages(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrRecommendationsFailed)
	}

	ranked := recommendation.Rank(prefs, pkgs)
	pageItems, pagination := recommendation.Paginate(ranked, page, limit)

	out := make([]ScoredPackageView, len(pageItems))
	for i, sp := range pageItems {
		out[i] = toScoredPackageView(sp)
	}

	return &RecommendationsView{
		Packages:        out,
		Pagination:      pagination,
		UserPreferences: NewPreferencesView(prefs),
	}, nil
}

// activePackages coalesces concurrent full scans. The shared scan is detached
// from any single caller's cancellation; each caller still stops waiting when
// its own context ends. The returned slice is shared and must not be modified.
func (q *recommendationQueriesImpl) activePackages(ctx context.Context) ([]catalog.Package, error) {
	ch := q.group.DoChan(activePackagesKey, func() (any, error) {
		scanCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), packageScanTimeout)
		defer cancel()
		return q.packages.ListActive(scanCtx)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]catalog.Package), nil
	}
}

func toScoredPackageView(sp recommendation.ScoredPackage) ScoredPackageView {
	p := sp.Package
	return ScoredPackageView{
		PackageView: PackageView{
			ID:           p.ID,
			Name:         p.Name,
			Description:  p.Description,
			Price:        p.EffectivePrice(),
			DurationDays: p.DurationDays,
			Activities:   nonNil(p.Activities),
			TravelStyles: nonNil(p.TravelStyles),
			Tags:         nonNil(p.Tags),
			DestRegion:   p.DestRegion,
		},
		SimilarityScore: sp.Score,
		InterestScore:   sp.InterestScore,
		PriceScore:      sp.PriceScore,
	}
}
