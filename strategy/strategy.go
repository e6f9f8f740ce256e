// Package strategy holds Hog strategies. Every strategy is a pure function of
// the two scores, so the engine may safely ask one twice in the same turn.
package strategy

import (
	"fmt"
	"hog/game"
	"hog/meta"
	"hog/utils"
)

// AlwaysRoll returns a strategy that always rolls n dice.
func AlwaysRoll(n int) game.Strategy {
	if n < 0 || n > meta.MAX_ROLLS {
		panic(fmt.Sprintf("strategy: cannot always roll %d dice", n))
	}
	return func(score, opponentScore int) int {
		return n
	}
}

// Baseline is the strategy win rates are measured against.
func Baseline() game.Strategy {
	return AlwaysRoll(meta.BASELINE_ROLLS)
}

var (
	DefaultBacon = BaconStrategy(8, 5)
	DefaultSwap  = SwapStrategy(5)
)

// Names lists the strategies the experiment script compares, in report order.
var Names = []string{"always_roll(8)", "bacon_strategy", "swap_strategy", "final_strategy"}

var named = []game.Strategy{AlwaysRoll(8), DefaultBacon, DefaultSwap, Final}

// Lookup returns the strategy registered under name.
func Lookup(name string) (game.Strategy, bool) {
	i := utils.FindIndex(Names, name)
	if i < 0 {
		return nil, false
	}
	return named[i], true
}
