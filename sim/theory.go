package sim

import "math"

// SlottedAlohaThroughput returns the expected Slotted ALOHA throughput
// S(λ) = λ·(1 − λ/n)^(n−1) for n users sharing aggregate load λ.
// It is the probability that exactly one of n Bernoulli(λ/n) users
// transmits in a slot.
func SlottedAlohaThroughput(lambda float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	return lambda * math.Pow(1-lambda/float64(n), float64(n-1))
}
