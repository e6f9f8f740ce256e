package strategy

import "hog/game"

// Bacon rolls 0 dice if free bacon would score at least margin points, and
// numRolls otherwise.
func Bacon(score, opponentScore, margin, numRolls int) int {
	if numRolls == 0 {
		return 0
	}
	if freeBaconTurn(opponentScore) >= margin {
		return 0
	}
	return numRolls
}

func BaconStrategy(margin, numRolls int) game.Strategy {
	return func(score, opponentScore int) int {
		return Bacon(score, opponentScore, margin, numRolls)
	}
}

// freeBaconTurn is what rolling 0 dice would score, Hogtimus Prime included.
func freeBaconTurn(opponentScore int) int {
	return game.HogtimusPrime(game.FreeBacon(opponentScore))
}
