package game

import (
	"hog/dice"
	"hog/utils"
)

// SelectDice returns the dice for the standard game: four-sided when the
// total score is a multiple of 7 (Hog Wild, which includes 0), six-sided otherwise.
func SelectDice(score, opponentScore int) dice.Dice {
	if isHogWild(score, opponentScore) {
		return dice.FourSided
	}
	return dice.SixSided
}

func isHogWild(score, opponentScore int) bool {
	return (score+opponentScore)%7 == 0
}

// IsSwap reports whether the last two digits of score0 and score1 are
// reversed versions of each other, such as 19 and 91 or 10 and 1.
func IsSwap(score0, score1 int) bool {
	tens0, ones0 := utils.LastTwoDigits(score0)
	tens1, ones1 := utils.LastTwoDigits(score1)
	return ones0 == tens1 && tens0 == ones1
}
