package game

// Strategy decides how many dice the current player rolls, given their own
// score and the opponent's. It returns a roll count in [0, meta.MAX_ROLLS],
// where 0 means taking free bacon.
//
// The engine may call a strategy twice in a single turn (see engine.Run), so
// strategies must not keep state between calls.
type Strategy func(score, opponentScore int) int
