package experiments

import (
	"bytes"
	"encoding/csv"
	"hog/config"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Run("prints max scoring num rolls", func(t *testing.T) {
		var out bytes.Buffer
		err := Run(&out, config.Config{NumSamples: 100, Seed: 1})
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 2)
		require.Regexp(t, regexp.MustCompile(`^Max scoring num rolls for six-sided dice: ([1-9]|10)$`), lines[0])
		require.Regexp(t, regexp.MustCompile(`^Max scoring num rolls for four-sided dice: ([1-9]|10)$`), lines[1])
	})

	t.Run("same seed gives the same output", func(t *testing.T) {
		var first, second bytes.Buffer
		require.NoError(t, Run(&first, config.Config{NumSamples: 100, Seed: 9, WinRates: true}))
		require.NoError(t, Run(&second, config.Config{NumSamples: 100, Seed: 9, WinRates: true}))
		require.Equal(t, first.String(), second.String())
	})

	t.Run("records every win rate game", func(t *testing.T) {
		var out bytes.Buffer
		dir := t.TempDir()
		err := Run(&out, config.Config{NumSamples: 5, Seed: 2, WinRates: true, RecordsDir: dir})
		require.NoError(t, err)

		require.Contains(t, out.String(), "always_roll(8) win rate: ")
		require.Contains(t, out.String(), "bacon_strategy win rate: ")
		require.Contains(t, out.String(), "swap_strategy win rate: ")
		require.Contains(t, out.String(), "final_strategy win rate: ")

		runs, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, runs, 1)
		runDir := filepath.Join(dir, runs[0].Name())
		require.FileExists(t, filepath.Join(runDir, "setup.json"))

		f, err := os.Open(filepath.Join(runDir, "game_records.csv"))
		require.NoError(t, err)
		defer f.Close()
		rows, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 1+4*2*5, "Header plus both orderings of every matchup")
		require.Equal(t, []string{"1", "always_roll(8)", "always_roll(5)"}, rows[1][:3])
		require.Equal(t, []string{"always_roll(5)", "always_roll(8)"}, rows[6][1:3])
	})

	t.Run("returns writer failures", func(t *testing.T) {
		blocker := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

		err := Run(&bytes.Buffer{}, config.Config{NumSamples: 1, Seed: 3, WinRates: true, RecordsDir: blocker})
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to create experiment writer")
	})
}

func TestRun_DefaultSamples(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Run(&out, config.Config{Seed: 4}))
	require.Contains(t, out.String(), "Max scoring num rolls for six-sided dice: ")
}

func TestRecorder(t *testing.T) {
	t.Run("labels both orderings of a matchup", func(t *testing.T) {
		rec := newRecorder()
		rec.matchup("swap_strategy", 2)
		for i := 0; i < 4; i++ {
			rec.Start(0, 0)
			rec.Complete(100, 0)
		}
		rec.matchup("final_strategy", 1)
		for i := 0; i < 2; i++ {
			rec.Start(0, 0)
			rec.Complete(0, 100)
		}

		var got [][2]string
		for _, r := range rec.records {
			got = append(got, [2]string{r.Strategy0, r.Strategy1})
		}
		require.Equal(t, [][2]string{
			{"swap_strategy", "always_roll(5)"},
			{"swap_strategy", "always_roll(5)"},
			{"always_roll(5)", "swap_strategy"},
			{"always_roll(5)", "swap_strategy"},
			{"final_strategy", "always_roll(5)"},
			{"always_roll(5)", "final_strategy"},
		}, got)
		require.Equal(t, 6, rec.records[5].ID)
		require.Equal(t, 1, rec.records[5].Winner)
	})

	t.Run("nil recorder ignores matchups", func(t *testing.T) {
		var rec *recorder
		require.NotPanics(t, func() { rec.matchup("swap_strategy", 1) })
	})
}
