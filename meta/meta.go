// meta/meta.go
package meta

// GOAL_SCORE defines the score that ends a game.
const GOAL_SCORE = 100

// MAX_ROLLS defines the most dice a player may roll in one turn.
const MAX_ROLLS = 10

// NUM_SAMPLES defines the default number of trials per averaged experiment.
const NUM_SAMPLES = 1000

// BASELINE_ROLLS is the roll count of the baseline strategy win rates are measured against.
const BASELINE_ROLLS = 5
