package calculation

import (
	"github.com/rpgo/allocation-simulator/internal/domain"
)

// MaxCorrectionPasses bounds the remainder correction loop of Normalize
const MaxCorrectionPasses = 100

// Normalize sets source to value (clamped to [0,100]) and rescales the other
// three shares so the allocation sums to 100 again. The other shares keep
// their relative proportions as closely as integer rounding allows; when they
// are all zero the difference is split evenly. Tie-breaks follow
// domain.Assets() order. The argument is not modified. An unknown source
// returns a unchanged.
func Normalize(a domain.Allocation, source domain.Asset, value int) domain.Allocation {
	if !source.Known() {
		return a
	}
	value = clampPercent(value)
	out := a.Set(source, value)

	others := otherAssets(source)
	for _, k := range others {
		out = out.Set(k, clampPercent(out.Get(k)))
	}

	diff := domain.TotalPercent - value
	sumOthers := sumOf(out, others)

	if sumOthers == 0 {
		base := diff / len(others)
		rem := diff % len(others)
		for _, k := range others {
			v := base
			if rem > 0 {
				v++
				rem--
			}
			out = out.Set(k, v)
		}
	} else {
		for _, k := range others {
			out = out.Set(k, scaleShare(out.Get(k), diff, sumOthers))
		}
	}

	remainder := diff - sumOf(out, others)
	for pass := 0; remainder != 0 && pass < MaxCorrectionPasses; pass++ {
		if remainder > 0 {
			for _, k := range others {
				if remainder == 0 {
					break
				}
				out = out.Set(k, out.Get(k)+1)
				remainder--
			}
			continue
		}
		k, ok := largestPositive(out, others)
		if !ok {
			break
		}
		out = out.Set(k, out.Get(k)-1)
		remainder++
	}

	for _, k := range others {
		out = out.Set(k, clampPercent(out.Get(k)))
	}
	return out
}

// NormalizeAll restores the invariant of an arbitrary allocation, keeping the
// cash share and rescaling the rest. Valid allocations are returned unchanged.
func NormalizeAll(a domain.Allocation) domain.Allocation {
	if a.Validate() == nil {
		return a
	}
	return Normalize(a, domain.AssetCash, a.Cash)
}

// scaleShare rounds v*diff/sum half away from zero, floored at 0.
// sum must be positive.
func scaleShare(v, diff, sum int) int {
	if v <= 0 || diff <= 0 {
		return 0
	}
	return (2*v*diff + sum) / (2 * sum)
}

func largestPositive(a domain.Allocation, assets []domain.Asset) (domain.Asset, bool) {
	var best domain.Asset
	bestValue := 0
	for _, k := range assets {
		if v := a.Get(k); v > bestValue {
			best, bestValue = k, v
		}
	}
	return best, bestValue > 0
}

func otherAssets(source domain.Asset) []domain.Asset {
	all := domain.Assets()
	others := make([]domain.Asset, 0, len(all)-1)
	for _, k := range all {
		if k != source {
			others = append(others, k)
		}
	}
	return others
}

func sumOf(a domain.Allocation, assets []domain.Asset) int {
	total := 0
	for _, k := range assets {
		total += a.Get(k)
	}
	return total
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > domain.TotalPercent {
		return domain.TotalPercent
	}
	return v
}
