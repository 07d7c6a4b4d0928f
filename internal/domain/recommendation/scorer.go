package recommendation

import (
	"math"
	"sort"
	"strings"

	"aerotrav/internal/domain/catalog"
	"aerotrav/internal/domain/preference"
)

const (
	InterestWeight = 0.55
	PriceWeight    = 0.45
)

type ScoredPackage struct {
	Package       catalog.Package
	InterestScore float64
	PriceScore    float64
	Score         float64
}

// InterestScore is the case-insensitive Jaccard similarity of the two tag
// sets, or 0 when both are empty.
func InterestScore(userTags, pkgTags []string) float64 {
	a := tagSet(userTags)
	b := tagSet(pkgTags)

	intersection := 0
	for tag := range a {
		if _, ok := b[tag]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

func tagSet(tags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		set[tag] = struct{}{}
	}
	return set
}

// PriceScore is 1 at the budget midpoint and falls off linearly, reaching 0
// one half-span away. A half-span below 1 is treated as 1.
func PriceScore(price float64, budget preference.BudgetRange) float64 {
	halfSpan := math.Max(budget.HalfSpan(), 1)
	score := 1 - math.Abs(price-budget.Mid())/halfSpan
	return clamp01(score)
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

func Score(prefs preference.Preferences, pkg catalog.Package) ScoredPackage {
	interest := InterestScore(prefs.Tags(), pkg.InterestTags())
	price := PriceScore(pkg.EffectivePrice().InexactFloat64(), prefs.Budget())
	return ScoredPackage{
		Package:       pkg,
		InterestScore: interest,
		PriceScore:    price,
		Score:         InterestWeight*interest + PriceWeight*price,
	}
}

// Rank scores every package and orders them by descending score. Equal
// scores keep their input order. The input slice is not modified.
func Rank(prefs preference.Preferences, pkgs []catalog.Package) []ScoredPackage {
	scored := make([]ScoredPackage, len(pkgs))
	for i, pkg := range pkgs {
		scored[i] = Score(prefs, pkg)
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}
