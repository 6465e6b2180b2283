package oracle

import "math"

// LiTimes computes li, the PAC sample-size bound: the number of random
// subsets to try before declaring the current hypothesis equivalent.
// i is the number of equivalence queries made so far, epsilon ∈ (0,1) is
// the accuracy tolerance, delta ∈ (0,1) is the confidence tolerance.
// Uses base-2 log and floors (truncates) toward zero, matching the always-
// positive value this formula produces for valid epsilon/delta.
func LiTimes(i int, epsilon, delta float64) int {
	return int((1.0 / epsilon) * (float64(i) - math.Log2(delta)))
}
