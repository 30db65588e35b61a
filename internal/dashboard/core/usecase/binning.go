package usecase

import (
	"customer-behaviour-dashboard/internal/dashboard/core/domain"

	"github.com/shopspring/decimal"
)

// binLayout holds the shared edges of a numeric histogram in exact arithmetic.
type binLayout struct {
	start decimal.Decimal
	end   decimal.Decimal
	width decimal.Decimal
	n     int
}

// newBinLayout floors min and ceils max to the policy precision. Bins are
// half-open except the last one, which also takes values equal to its end
// and may be narrower than the width.
// ok is false when there are no values or the width is not positive.
func newBinLayout(values []decimal.Decimal, p domain.HistogramPolicy) (binLayout, bool) {
	width := decimal.NewFromFloat(p.BinWidth)
	if len(values) == 0 || !width.IsPositive() {
		return binLayout{}, false
	}

	lo := decimal.Min(values[0], values[1:]...)
	hi := decimal.Max(values[0], values[1:]...)
	start := lo.RoundFloor(p.Precision)
	end := hi.RoundCeil(p.Precision)
	if end.Equal(start) {
		end = start.Add(width)
	}

	n := int(end.Sub(start).Div(width).Ceil().IntPart())
	return binLayout{start: start, end: end, width: width, n: n}, true
}

func (l binLayout) index(v decimal.Decimal) int {
	i := int(v.Sub(l.start).Div(l.width).Floor().IntPart())
	if i >= l.n {
		i = l.n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

func (l binLayout) count(values []decimal.Decimal) []domain.Bin {
	bins := make([]domain.Bin, l.n)
	for i := range bins {
		lo := l.start.Add(l.width.Mul(decimal.NewFromInt(int64(i))))
		// the last bin stops at the shared right edge
		hi := decimal.Min(lo.Add(l.width), l.end)
		bins[i] = domain.Bin{
			Start: lo.InexactFloat64(),
			End:   hi.InexactFloat64(),
		}
	}
	for _, v := range values {
		bins[l.index(v)].Count++
	}
	return bins
}

func (l binLayout) bins() *domain.Bins {
	return &domain.Bins{
		Start: l.start.InexactFloat64(),
		End:   l.end.InexactFloat64(),
		Size:  l.width.InexactFloat64(),
	}
}
