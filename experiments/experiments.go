package experiments

import (
	"hog/dice"
	"hog/engine"
	"hog/game"
	"hog/meta"
)

// MaxScoringNumRolls returns the number of dice (1 to 10) with the highest
// average turn score over numSamples rolls of d. Ties keep the fewer dice.
func MaxScoringNumRolls(d dice.Dice, numSamples int) int {
	averagedRollDice := MakeAveraged2(game.RollDice, numSamples)
	best, bestAverage := 1, 0.0
	for numRolls := 1; numRolls <= meta.MAX_ROLLS; numRolls++ {
		average := averagedRollDice(numRolls, d)
		if average > bestAverage {
			best, bestAverage = numRolls, average
		}
	}
	return best
}

// Winner plays one game and returns 0 if strategy0 finished strictly ahead, 1 otherwise.
func Winner(strategy0, strategy1 game.Strategy, options ...engine.Option) int {
	score0, score1 := engine.Play(strategy0, strategy1, options...)
	if score0 > score1 {
		return 0
	}
	return 1
}

// AverageWinRate returns the win rate of strategy against baseline, averaged
// over playing first and playing second.
func AverageWinRate(strategy, baseline game.Strategy, numSamples int, options ...engine.Option) float64 {
	winRateAsPlayer0 := 1 - averageWinner(strategy, baseline, numSamples, options)
	winRateAsPlayer1 := averageWinner(baseline, strategy, numSamples, options)
	return (winRateAsPlayer0 + winRateAsPlayer1) / 2
}

// averageWinner is the fraction of games won by player 1.
func averageWinner(strategy0, strategy1 game.Strategy, numSamples int, options []engine.Option) float64 {
	winner := func(s0, s1 game.Strategy) int {
		return Winner(s0, s1, options...)
	}
	return MakeAveraged2(winner, numSamples)(strategy0, strategy1)
}
