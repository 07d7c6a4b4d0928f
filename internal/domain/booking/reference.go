package booking

import (
	"fmt"
	"math/rand/v2"

	"aerotrav/internal/pkg/clock"
)

const referencePrefix = "BK"

// ReferenceGenerator builds booking references.
// Primary: BK + YYYYMMDD + 6 random digits. Fallback: BK + epoch millis + 4 random digits.
type ReferenceGenerator struct {
	clock clock.Clock
	intN  func(n int) int
}

func NewReferenceGenerator(c clock.Clock) *ReferenceGenerator {
	return &ReferenceGenerator{clock: c, intN: rand.IntN}
}

// NewReferenceGeneratorWithRand is used where the random source must be deterministic.
func NewReferenceGeneratorWithRand(c clock.Clock, intN func(n int) int) *ReferenceGenerator {
	return &ReferenceGenerator{clock: c, intN: intN}
}

func (g *ReferenceGenerator) Primary() string {
	now := g.clock.Now()
	return fmt.Sprintf("%s%s%06d", referencePrefix, now.Format("20060102"), g.intN(1_000_000))
}

func (g *ReferenceGenerator) Fallback() string {
	now := g.clock.Now()
	return fmt.Sprintf("%s%d%04d", referencePrefix, now.UnixMilli(), g.intN(10_000))
}
