package segment

import "sort"

// Band is a closed acceptance interval over relative x-positions.
type Band struct {
	// Lo is the lower bound, inclusive
	Lo float64

	// Hi is the upper bound, inclusive
	Hi float64
}

// Contains reports whether x falls inside the band.
func (b Band) Contains(x float64) bool {
	return x >= b.Lo && x <= b.Hi
}

// median returns the median of values. values must be non-empty and is
// not modified.
func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// medianAbsoluteDeviation returns the MAD of values around med.
func medianAbsoluteDeviation(values []float64, med float64) float64 {
	deviations := make([]float64, len(values))
	for i, v := range values {
		d := v - med
		if d < 0 {
			d = -d
		}
		deviations[i] = d
	}
	return median(deviations)
}

// bandFromSamples derives an acceptance band [med-k*MAD, med+k*MAD]
// from position samples. The half-width never drops below minHalfWidth
// so a single clean sample still yields a usable band; with no samples
// the fallback band is returned unchanged.
func bandFromSamples(samples []float64, k, minHalfWidth float64, fallback Band) Band {
	if len(samples) == 0 {
		return fallback
	}

	med := median(samples)
	halfWidth := k * medianAbsoluteDeviation(samples, med)
	if halfWidth < minHalfWidth {
		halfWidth = minHalfWidth
	}

	return Band{Lo: med - halfWidth, Hi: med + halfWidth}
}
