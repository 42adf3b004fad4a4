package metrics

import "github.com/cockroachdb/apd/v3"

// decCtx performs all rounded statistics. RoundHalfUp is half-away-from-zero,
// matching how the published reports round.
var decCtx = func() *apd.Context {
	ctx := apd.BaseContext.WithPrecision(20)
	ctx.Rounding = apd.RoundHalfUp

	return ctx
}()

// meanToTenth returns sum/n rounded to one decimal place. A zero n yields
// 0 rather than a division fault.
func meanToTenth(sum, n int64) float64 {
	if n == 0 {
		return 0
	}

	var q, r apd.Decimal

	decCtx.Quo(&q, apd.New(sum, 0), apd.New(n, 0))
	decCtx.Quantize(&r, &q, -1)

	f, _ := r.Float64()

	return f
}

// percentToTenth returns 100*part/total rounded to one decimal place. A zero
// total yields 0 rather than a division fault.
func percentToTenth(part, total int64) float64 {
	if total == 0 {
		return 0
	}

	var p, q, r apd.Decimal

	decCtx.Mul(&p, apd.New(part, 0), apd.New(100, 0))
	decCtx.Quo(&q, &p, apd.New(total, 0))
	decCtx.Quantize(&r, &q, -1)

	f, _ := r.Float64()

	return f
}
