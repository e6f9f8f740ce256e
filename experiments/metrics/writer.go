package metrics

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type Setup struct {
	RunID      uuid.UUID     `json:"runId"`
	NumSamples int           `json:"numSamples"`
	Seed       uint64        `json:"seed"`
	Baseline   string        `json:"baseline"`
	Strategies []string      `json:"strategies"`
	StartTime  time.Time     `json:"startTime"`
	EndTime    time.Time     `json:"endTime"`
	Duration   time.Duration `json:"duration"`
}

type GameRecord struct {
	ID        int
	Strategy0 string
	Strategy1 string
	GameMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates the run's folder under root, named by the current
// timestamp and the run ID so runs started in the same second stay apart.
func NewWriter(root string, runID uuid.UUID) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, timestamp+"-"+runID.String())
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteSetup(setup Setup) error {
	path := filepath.Join(w.baseDir, "setup.json")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create setup file: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(setup); err != nil {
		return fmt.Errorf("failed to write setup: %w", err)
	}

	return nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	// Create a file
	path := filepath.Join(w.baseDir, "game_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	// Write header
	header := []string{"id", "strategy0", "strategy1", "start_score0", "start_score1", "score0", "score1", "winner",
		"turns", "swaps", "pig_outs", "free_bacons", "gift_points", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	// Write each row
	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			record.Strategy0,
			record.Strategy1,
			strconv.Itoa(record.StartScores[0]),
			strconv.Itoa(record.StartScores[1]),
			strconv.Itoa(record.FinalScores[0]),
			strconv.Itoa(record.FinalScores[1]),
			strconv.Itoa(record.Winner),
			strconv.Itoa(record.Turns),
			strconv.Itoa(record.Swaps),
			strconv.Itoa(record.PigOuts),
			strconv.Itoa(record.FreeBacons),
			strconv.Itoa(record.GiftPoints),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush game records: %w", err)
	}
	return nil
}
