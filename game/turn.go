package game

import (
	"fmt"
	"hog/dice"
	"hog/meta"
	"hog/utils"
)

// RollDice rolls d exactly numRolls times and returns the sum of the outcomes,
// or 0 if any outcome was a 1 (Pig Out). Every die is rolled even after a 1.
// The Hogtimus Prime rule does not apply here.
func RollDice(numRolls int, d dice.Dice) int {
	if numRolls < 1 || numRolls > meta.MAX_ROLLS {
		panic(fmt.Sprintf("game: must roll between 1 and %d dice, got %d", meta.MAX_ROLLS, numRolls))
	}
	sum, pigOut := 0, false
	for i := 0; i < numRolls; i++ {
		outcome := d.Roll()
		if outcome == 1 {
			pigOut = true
		}
		sum += outcome
	}
	if pigOut {
		return 0
	}
	return sum
}

// FreeBacon returns the points for rolling zero dice: one more than the
// larger of the opponent's last two digits.
func FreeBacon(opponentScore int) int {
	tens, ones := utils.LastTwoDigits(opponentScore)
	return 1 + max(tens, ones)
}

func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	for i := 2; i*i <= n; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// HogtimusPrime bumps a prime turn score up to the next number that is not prime.
func HogtimusPrime(score int) int {
	for IsPrime(score) {
		score++
	}
	return score
}

// TakeTurn scores a turn of numRolls dice, or free bacon when numRolls is 0,
// then applies Hogtimus Prime. The opponent must not have reached the goal.
func TakeTurn(numRolls, opponentScore int, d dice.Dice) int {
	if opponentScore >= meta.GOAL_SCORE {
		panic(fmt.Sprintf("game: opponent score %d already reached goal %d", opponentScore, meta.GOAL_SCORE))
	}
	return takeTurn(numRolls, opponentScore, d)
}

func takeTurn(numRolls, opponentScore int, d dice.Dice) int {
	if numRolls < 0 || numRolls > meta.MAX_ROLLS {
		panic(fmt.Sprintf("game: must roll between 0 and %d dice, got %d", meta.MAX_ROLLS, numRolls))
	}
	var score int
	if numRolls == 0 {
		score = FreeBacon(opponentScore)
	} else {
		score = RollDice(numRolls, d)
	}
	return HogtimusPrime(score)
}
