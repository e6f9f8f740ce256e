package strategy

import "hog/game"

// Swap rolls 0 dice when free bacon would trigger a beneficial swap, and
// numRolls otherwise. Landing exactly on the opponent's score is not a swap
// worth taking.
func Swap(score, opponentScore, numRolls int) int {
	if score > opponentScore {
		return numRolls
	}
	after := score + freeBaconTurn(opponentScore)
	if after == opponentScore {
		return numRolls
	}
	if game.IsSwap(after, opponentScore) {
		return 0
	}
	return numRolls
}

func SwapStrategy(numRolls int) game.Strategy {
	return func(score, opponentScore int) int {
		return Swap(score, opponentScore, numRolls)
	}
}
