package experiments

import (
	"hog/dice"
	"hog/engine"
	"hog/game"
	"hog/strategy"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMakeAveraged(t *testing.T) {
	t.Run("averages a nullary function", func(t *testing.T) {
		d := dice.NewTest(3, 1, 5, 6)
		require.Equal(t, 3.75, MakeAveraged(d.Roll, 1000)())
	})

	t.Run("passes arguments through", func(t *testing.T) {
		// Turns alternate between 3,1 (pig out) and 5,6 (11)
		d := dice.NewTest(3, 1, 5, 6)
		require.Equal(t, 5.5, MakeAveraged2(game.RollDice, 1000)(2, d))
	})

	t.Run("calls fn exactly numSamples times", func(t *testing.T) {
		calls := 0
		averaged := MakeAveraged(func() float64 {
			calls++
			return 0.5
		}, 40)

		require.Equal(t, 0.5, averaged())
		require.Equal(t, 40, calls)
	})

	t.Run("panics without samples", func(t *testing.T) {
		require.Panics(t, func() { MakeAveraged(func() int { return 1 }, 0) })
		require.Panics(t, func() { MakeAveraged2(game.RollDice, -1) })
	})
}

func TestMaxScoringNumRolls(t *testing.T) {
	t.Run("more dice win without pig outs", func(t *testing.T) {
		require.Equal(t, 10, MaxScoringNumRolls(dice.NewTest(3), 1000))
	})

	t.Run("ties keep the fewest dice", func(t *testing.T) {
		require.Equal(t, 1, MaxScoringNumRolls(dice.NewTest(1), 100))
	})

	t.Run("fair dice pick a count in range", func(t *testing.T) {
		got := MaxScoringNumRolls(dice.NewSeeded(6, 3), 200)
		require.GreaterOrEqual(t, got, 1)
		require.LessOrEqual(t, got, 10)
	})
}

func TestWinner(t *testing.T) {
	t.Run("player 0 wins when strictly ahead", func(t *testing.T) {
		// Free bacon against 5 scores 6 and reaches the goal
		require.Equal(t, 0, Winner(strategy.AlwaysRoll(0), strategy.AlwaysRoll(0), engine.WithScores(99, 5)))
	})

	t.Run("player 1 wins otherwise", func(t *testing.T) {
		require.Equal(t, 1, Winner(strategy.AlwaysRoll(5), strategy.AlwaysRoll(5), engine.WithScores(0, 100)))
		require.Equal(t, 1, Winner(strategy.AlwaysRoll(5), strategy.AlwaysRoll(5), engine.WithScores(100, 100)))
	})

	t.Run("agrees with play under fixed seeds", func(t *testing.T) {
		for seed := uint64(1); seed <= 20; seed++ {
			rules := func() game.Rules {
				return &game.StandardRules{
					GoalScore: 100,
					FourSided: dice.NewSeeded(4, seed),
					SixSided:  dice.NewSeeded(6, seed),
				}
			}
			score0, score1 := engine.Play(strategy.Final, strategy.Baseline(), engine.WithRules(rules()))
			want := 1
			if score0 > score1 {
				want = 0
			}
			require.Equal(t, want, Winner(strategy.Final, strategy.Baseline(), engine.WithRules(rules())), "seed %d", seed)
		}
	})
}

func TestAverageWinRate(t *testing.T) {
	t.Run("cancels out the first move advantage", func(t *testing.T) {
		// Whoever moves first from 99 wins at once
		got := AverageWinRate(strategy.AlwaysRoll(0), strategy.AlwaysRoll(0), 10, engine.WithScores(99, 5))
		require.Equal(t, 0.5, got)
	})

	t.Run("stays a probability", func(t *testing.T) {
		got := AverageWinRate(strategy.Final, strategy.Baseline(), 50)
		require.GreaterOrEqual(t, got, 0.0)
		require.LessOrEqual(t, got, 1.0)
	})
}
