package dice

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/rand"
)

// ErrExhausted is raised by strict test dice rolled more times than they have outcomes.
var ErrExhausted = errors.New("dice: test dice exhausted")

// Dice produces a positive outcome each time it is rolled.
type Dice interface {
	Roll() int
}

// Func adapts a plain function to the Dice interface.
type Func func() int

func (f Func) Roll() int {
	return f()
}

// Standard dice are fair dice with faces 1..sides.
type Standard struct {
	sides int
	rng   *rand.Rand // nil draws from the shared source
}

var (
	FourSided Dice = New(4)
	SixSided  Dice = New(6)
)

func init() {
	Seed(uint64(time.Now().UnixNano()))
}

// Seed reseeds the shared source used by FourSided, SixSided and every dice built with New.
func Seed(seed uint64) {
	rand.Seed(seed)
}

// New returns dice with the given number of sides that draw from the shared source.
func New(sides int) *Standard {
	if sides < 1 {
		panic(fmt.Sprintf("dice: sides must be positive, got %d", sides))
	}
	return &Standard{sides: sides}
}

// NewSeeded returns dice with their own reproducible source.
func NewSeeded(sides int, seed uint64) *Standard {
	d := New(sides)
	d.rng = rand.New(rand.NewSource(seed))
	return d
}

func (d *Standard) Sides() int {
	return d.sides
}

func (d *Standard) Roll() int {
	if d.rng != nil {
		return d.rng.Intn(d.sides) + 1
	}
	return rand.Intn(d.sides) + 1
}

func (d *Standard) String() string {
	return fmt.Sprintf("d%d", d.sides)
}
