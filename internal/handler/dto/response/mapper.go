package response

import (
	"time"

	"aerotrav/internal/domain/booking"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// Money is rendered with two decimals; calendar dates as YYYY-MM-DD.
var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: decimal.Decimal{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(decimal.Decimal).StringFixed(2), nil
			},
		},
		{
			SrcType: time.Time{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return booking.FormatDate(src.(time.Time)), nil
			},
		},
	},
}

// mustCopy panics on mismatched shapes, which only a programming error produces.
func mustCopy(to, from any) {
	if err := copier.CopyWithOption(to, from, copyOption); err != nil {
		panic(err)
	}
}
