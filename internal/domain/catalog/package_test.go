//go:build unit

package catalog_test

import (
	"testing"

	"aerotrav/internal/domain/catalog"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func strp(s string) *string { return &s }

func TestParseTagList(t *testing.T) {
	tests := []struct {
		name string
		raw  *string
		want []string
	}{
		{name: "正常な配列", raw: strp(`["beach","snorkeling"]`), want: []string{"beach", "snorkeling"}},
		{name: "NULLは空", raw: nil, want: []string{}},
		{name: "壊れたJSONは空", raw: strp(`["beach"`), want: []string{}},
		{name: "配列以外は空", raw: strp(`"beach"`), want: []string{}},
		{name: "文字列以外の要素は除外", raw: strp(`["beach", 1, {"a":1}, ""]`), want: []string{"beach"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.ParseTagList(tt.raw))
		})
	}
}

func TestEffectivePrice(t *testing.T) {
	price := decimal.RequireFromString("1750")
	base := decimal.RequireFromString("1500")

	assert.True(t, price.Equal(catalog.Package{Price: &price, BasePrice: &base}.EffectivePrice()))
	assert.True(t, base.Equal(catalog.Package{BasePrice: &base}.EffectivePrice()))
	assert.True(t, decimal.Zero.Equal(catalog.Package{}.EffectivePrice()))
}

func TestInterestTags(t *testing.T) {
	p := catalog.Package{
		Activities:   []string{"beach"},
		TravelStyles: []string{"luxury"},
		DestRegion:   strp("Asia"),
	}
	assert.Equal(t, []string{"beach", "luxury", "Asia"}, p.InterestTags())

	p.DestRegion = strp("  ")
	assert.Equal(t, []string{"beach", "luxury"}, p.InterestTags())
}
