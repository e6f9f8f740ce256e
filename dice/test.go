package dice

import "fmt"

// Test dice replay a fixed sequence of outcomes. They are only meant for
// reproducible tests and never for real play.
type Test struct {
	outcomes []int
	index    int
	strict   bool
}

// NewTest returns test dice that cycle through outcomes forever.
func NewTest(outcomes ...int) *Test {
	return newTest(outcomes, false)
}

// NewStrictTest returns test dice that panic with ErrExhausted once every outcome has been rolled.
func NewStrictTest(outcomes ...int) *Test {
	return newTest(outcomes, true)
}

func newTest(outcomes []int, strict bool) *Test {
	if len(outcomes) == 0 {
		panic("dice: test dice need at least one outcome")
	}
	for _, o := range outcomes {
		if o < 1 {
			panic(fmt.Sprintf("dice: test dice outcomes must be positive, got %d", o))
		}
	}
	copied := make([]int, len(outcomes))
	copy(copied, outcomes)
	return &Test{outcomes: copied, strict: strict}
}

func (t *Test) Roll() int {
	if t.index == len(t.outcomes) {
		if t.strict {
			panic(fmt.Errorf("%w after %d rolls", ErrExhausted, len(t.outcomes)))
		}
		t.index = 0
	}
	outcome := t.outcomes[t.index]
	t.index++
	return outcome
}

// Remaining returns how many outcomes are left before the sequence wraps or is exhausted.
func (t *Test) Remaining() int {
	return len(t.outcomes) - t.index
}

// Reset rewinds the dice to the first outcome.
func (t *Test) Reset() {
	t.index = 0
}
