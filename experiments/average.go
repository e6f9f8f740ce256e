package experiments

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

// MakeAveraged returns a function that calls fn numSamples times and returns the mean result.
func MakeAveraged[T Number](fn func() T, numSamples int) func() float64 {
	checkSamples(numSamples)
	return func() float64 {
		total := 0.0
		for i := 0; i < numSamples; i++ {
			total += float64(fn())
		}
		return total / float64(numSamples)
	}
}

// MakeAveraged2 is MakeAveraged for a function of two arguments, which are
// passed through unchanged on every call.
func MakeAveraged2[A, B any, T Number](fn func(A, B) T, numSamples int) func(A, B) float64 {
	checkSamples(numSamples)
	return func(a A, b B) float64 {
		return MakeAveraged(func() T { return fn(a, b) }, numSamples)()
	}
}

func checkSamples(numSamples int) {
	if numSamples < 1 {
		panic(fmt.Sprintf("experiments: need at least one sample, got %d", numSamples))
	}
}
