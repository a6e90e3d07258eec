package segment

import "testing"

func TestMedian(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"odd", []float64{3, 1, 2}, 2},
		{"even", []float64{1, 2, 3, 4}, 2.5},
		{"single", []float64{7}, 7},
	}
	for _, tc := range tests {
		if got := median(tc.values); got != tc.want {
			t.Errorf("%s: median = %f, want %f", tc.name, got, tc.want)
		}
	}
}

func TestMedianAbsoluteDeviation(t *testing.T) {
	values := []float64{1, 2, 3, 4, 100}
	med := median(values)
	if med != 3 {
		t.Fatalf("median = %f, want 3", med)
	}
	// Deviations: 2, 1, 0, 1, 97 -> MAD 1; the outlier does not widen it
	if got := medianAbsoluteDeviation(values, med); got != 1 {
		t.Errorf("MAD = %f, want 1", got)
	}
}

func TestBandFromSamples_FloorsHalfWidth(t *testing.T) {
	// A single sample has MAD 0; the floor must still yield a usable band
	band := bandFromSamples([]float64{0.1}, 5, 0.02, Band{})
	if !band.Contains(0.1) {
		t.Error("Band excludes its own sample")
	}
	if !band.Contains(0.115) || band.Contains(0.13) {
		t.Errorf("Band half-width not floored at 0.02: [%f, %f]", band.Lo, band.Hi)
	}
}

func TestBandFromSamples_Fallback(t *testing.T) {
	fallback := Band{Lo: 0, Hi: 0.25}
	band := bandFromSamples(nil, 5, 0.02, fallback)
	if band != fallback {
		t.Errorf("Expected fallback band, got [%f, %f]", band.Lo, band.Hi)
	}
}

func TestBandFromSamples_ScalesWithMAD(t *testing.T) {
	samples := []float64{0.10, 0.11, 0.12, 0.10, 0.11}
	band := bandFromSamples(samples, 5, 0.001, Band{})
	if !band.Contains(0.11) {
		t.Error("Band excludes the median")
	}
	if band.Contains(0.5) {
		t.Error("Band far too wide for tight samples")
	}
}
