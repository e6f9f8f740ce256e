package engine

import (
	"hog/experiments/metrics"
	"hog/game"

	"github.com/rs/zerolog"
)

// Engine plays one game of Hog between two strategies. Player 0 moves first.
type Engine struct {
	Strategies [2]game.Strategy
	Scores     [2]int
	rules      game.Rules
	goal       int
	metrics    metrics.Collector
	metric     metrics.GameMetric
	logger     zerolog.Logger
}

func New(strategy0, strategy1 game.Strategy, options ...Option) *Engine {
	if strategy0 == nil || strategy1 == nil {
		panic("engine: need a strategy for both players")
	}
	e := &Engine{ // Default values
		Strategies: [2]game.Strategy{strategy0, strategy1},
		rules:      game.NewStandardRules(),
		metrics:    metrics.NewDummyCollector(),
		logger:     zerolog.Nop(),
	}
	for _, option := range options {
		option(e)
	}
	if e.goal == 0 {
		e.goal = e.rules.Goal()
	}
	return e
}

// Run plays turns until either score reaches the goal and returns the final
// scores, player 0 first.
func (e *Engine) Run() (int, int) {
	e.metrics.Start(e.Scores[0], e.Scores[1])

	who := 0
	for e.Scores[0] < e.goal && e.Scores[1] < e.goal {
		opponent := other(who)
		strategy := e.Strategies[who]

		numRolls := strategy(e.Scores[who], e.Scores[opponent])
		d := e.rules.SelectDice(e.Scores[who], e.Scores[opponent])
		turnScore := e.rules.TakeTurn(numRolls, e.Scores[opponent], d)
		e.Scores[who] += turnScore

		// A zero-point turn gifts the opponent whatever the strategy now asks for
		gift := 0
		if turnScore == 0 {
			gift = strategy(e.Scores[who], e.Scores[opponent])
			e.Scores[opponent] += gift
		}
		e.metrics.AddTurn(who, numRolls, turnScore, gift)

		swapped := e.rules.IsSwap(e.Scores[0], e.Scores[1])
		if swapped {
			e.Scores[0], e.Scores[1] = e.Scores[1], e.Scores[0]
			e.metrics.AddSwap()
		}

		e.logger.Trace().
			Int("player", who).
			Int("rolls", numRolls).
			Int("turn_score", turnScore).
			Int("gift", gift).
			Bool("swapped", swapped).
			Ints("scores", e.Scores[:]).
			Msg("turn")

		who = opponent
	}

	e.metric = e.metrics.Complete(e.Scores[0], e.Scores[1])
	e.logger.Trace().Msgf("game over with scores %d-%d", e.Scores[0], e.Scores[1])

	return e.Scores[0], e.Scores[1]
}

// Metric returns what the collector recorded for the last Run.
func (e *Engine) Metric() metrics.GameMetric {
	return e.metric
}

// other returns the other player, for a player numbered 0 or 1.
func other(who int) int {
	return 1 - who
}
