package experiments

import (
	"fmt"
	"hog/config"
	"hog/dice"
	"hog/engine"
	"hog/experiments/metrics"
	"hog/meta"
	"hog/strategy"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const baselineName = "always_roll(5)"

// Run runs the experiment script and prints its results to w.
func Run(w io.Writer, cfg config.Config) error {
	if cfg.Seed != 0 {
		dice.Seed(cfg.Seed)
	}
	if cfg.NumSamples == 0 {
		cfg.NumSamples = meta.NUM_SAMPLES
	}
	start := time.Now()

	log.Info().Msgf("finding max scoring num rolls with %d samples...", cfg.NumSamples)
	sixSidedMax := MaxScoringNumRolls(dice.SixSided, cfg.NumSamples)
	fmt.Fprintln(w, "Max scoring num rolls for six-sided dice:", sixSidedMax)
	fourSidedMax := MaxScoringNumRolls(dice.FourSided, cfg.NumSamples)
	fmt.Fprintln(w, "Max scoring num rolls for four-sided dice:", fourSidedMax)
	log.Info().Msg("completed max scoring num rolls")

	if !cfg.WinRates {
		return nil
	}

	options := []engine.Option{engine.WithLogger(log.Logger)}
	var rec *recorder
	if cfg.RecordsDir != "" {
		rec = newRecorder()
		options = append(options, engine.WithMetrics(rec))
	}
	baseline := strategy.Baseline()
	for i, name := range strategy.Names {
		s, _ := strategy.Lookup(name)
		log.Info().Msgf("starting matchup %d of %d between %s and %s...", i+1, len(strategy.Names), name, baselineName)
		rec.matchup(name, cfg.NumSamples)
		rate := AverageWinRate(s, baseline, cfg.NumSamples, options...)
		fmt.Fprintf(w, "%s win rate: %v\n", name, rate)
		log.Info().Msgf("completed matchup %d of %d", i+1, len(strategy.Names))
	}

	if rec == nil {
		return nil
	}
	end := time.Now()
	return storeRecords(cfg, rec.records, start, end)
}

func storeRecords(cfg config.Config, records []metrics.GameRecord, start, end time.Time) error {
	runID := uuid.New()
	writer, err := metrics.NewWriter(cfg.RecordsDir, runID)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteSetup(metrics.Setup{
		RunID:      runID,
		NumSamples: cfg.NumSamples,
		Seed:       cfg.Seed,
		Baseline:   baselineName,
		Strategies: strategy.Names,
		StartTime:  start,
		EndTime:    end,
		Duration:   end.Sub(start),
	})
	if err != nil {
		return fmt.Errorf("failed to store setup: %w", err)
	}
	log.Info().Msg("stored setup")

	err = writer.WriteGameRecords(records)
	if err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msgf("stored %d game records in %s", len(records), writer.Dir())
	return nil
}

// recorder collects a GameRecord for every game played with it. AverageWinRate
// plays numSamples games with the strategy first, then as many with it second.
type recorder struct {
	metrics.Collector
	strategy   string
	numSamples int
	played     int
	records    []metrics.GameRecord
}

func newRecorder() *recorder {
	return &recorder{Collector: metrics.NewCollector()}
}

// matchup names the strategy of the win rate games that follow.
func (r *recorder) matchup(strategy string, numSamples int) {
	if r == nil {
		return
	}
	r.strategy, r.numSamples, r.played = strategy, numSamples, 0
}

func (r *recorder) Complete(score0, score1 int) metrics.GameMetric {
	metric := r.Collector.Complete(score0, score1)
	strategy0, strategy1 := r.strategy, baselineName
	if r.played >= r.numSamples {
		strategy0, strategy1 = strategy1, strategy0
	}
	r.played++
	r.records = append(r.records, metrics.GameRecord{
		ID:         len(r.records) + 1,
		Strategy0:  strategy0,
		Strategy1:  strategy1,
		GameMetric: metric,
	})
	return metric
}
