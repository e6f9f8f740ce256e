package strategy

import (
	"hog/game"
	"hog/meta"
)

// Final combines the other strategies, first match wins:
//   - roll 0 if free bacon wins the game
//   - roll 0 if it causes a beneficial swap
//   - roll 0 if trailing and it leaves the opponent on four-sided dice
//   - roll 0 if free bacon is worth at least 7
//   - roll 4 while at or below 55
//   - otherwise play swap with a bacon-derived roll count
func Final(score, opponentScore int) int {
	bacon := game.FreeBacon(opponentScore)
	if bacon+score >= meta.GOAL_SCORE {
		return 0
	}
	if Swap(score, opponentScore, 5) == 0 {
		return 0
	}
	if (bacon+score+opponentScore)%7 == 0 && score < opponentScore {
		return 0
	}
	if Bacon(score, opponentScore, 7, 4) == 0 {
		return 0
	}
	if score <= 55 {
		return 4
	}
	return Swap(score, opponentScore, Bacon(score, opponentScore, 6, 4))
}
