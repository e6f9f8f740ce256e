package engine

import (
	"hog/experiments/metrics"
	"hog/game"

	"github.com/rs/zerolog"
)

type Option func(e *Engine)

// WithScores sets the starting scores of both players.
func WithScores(score0, score1 int) Option {
	return func(e *Engine) {
		e.Scores = [2]int{score0, score1}
	}
}

// WithGoal ends the game at goal instead of the rules' goal. The turn engine
// still checks opponent scores against the rules' goal.
func WithGoal(goal int) Option {
	return func(e *Engine) {
		if goal > 0 {
			e.goal = goal
		}
	}
}

func WithRules(rules game.Rules) Option {
	return func(e *Engine) {
		if rules != nil {
			e.rules = rules
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(e *Engine) {
		if collector != nil {
			e.metrics = collector
		}
	}
}

// WithLogger sends the engine's per-turn trace events to logger. By default
// nothing is logged.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// Play simulates a game and returns the final scores of both players, player 0 first.
func Play(strategy0, strategy1 game.Strategy, options ...Option) (score0, score1 int) {
	return New(strategy0, strategy1, options...).Run()
}
