package game

import (
	"fmt"
	"hog/dice"
	"hog/meta"
)

// StandardRules plays Hog with the usual goal and fair dice. The dice are
// fields so a game can be replayed with test dice.
type StandardRules struct {
	GoalScore int
	FourSided dice.Dice
	SixSided  dice.Dice
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		GoalScore: meta.GOAL_SCORE,
		FourSided: dice.FourSided,
		SixSided:  dice.SixSided,
	}
}

func (sr *StandardRules) Goal() int {
	return sr.GoalScore
}

// SelectDice applies Hog Wild: four-sided dice when the total score is a multiple of 7.
func (sr *StandardRules) SelectDice(score, opponentScore int) dice.Dice {
	if isHogWild(score, opponentScore) {
		return sr.FourSided
	}
	return sr.SixSided
}

func (sr *StandardRules) TakeTurn(numRolls, opponentScore int, d dice.Dice) int {
	if opponentScore >= sr.GoalScore {
		panic(fmt.Sprintf("game: opponent score %d already reached goal %d", opponentScore, sr.GoalScore))
	}
	return takeTurn(numRolls, opponentScore, d)
}

func (sr *StandardRules) IsSwap(score0, score1 int) bool {
	return IsSwap(score0, score1)
}
