package game

import "hog/dice"

type Rules interface {
	Goal() int
	SelectDice(score, opponentScore int) dice.Dice
	TakeTurn(numRolls, opponentScore int, d dice.Dice) int
	IsSwap(score0, score1 int) bool
}
