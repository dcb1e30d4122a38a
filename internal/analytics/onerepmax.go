package analytics

// EstimateOneRepMax returns the estimated single repetition max using the Epley formula.
// A single rep is already a 1RM. Reps <= 0 are not validated.
func EstimateOneRepMax(weight float64, reps int) float64 {
	if reps == 1 {
		return weight
	}
	return weight * (1 + float64(reps)/30.0)
}

// percentChange is (last-first)/first in percent, 0 when first is 0.
func percentChange(first, last float64) float64 {
	if first == 0 {
		return 0
	}
	return (last - first) / first * 100
}
