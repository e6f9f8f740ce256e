package metrics

import (
	"time"
)

type GameMetric struct {
	StartScores [2]int
	FinalScores [2]int
	Winner      int // Player index, 0 only if player 0 finished strictly ahead
	Turns       int
	Swaps       int
	PigOuts     int
	FreeBacons  int
	GiftPoints  int // Points handed to the opponent after zero-point turns
	StartTime   time.Time
	EndTime     time.Time
	Duration    time.Duration
}

type Collector interface {
	Start(score0, score1 int)
	AddTurn(player, numRolls, turnScore, gift int)
	AddSwap()
	Complete(score0, score1 int) GameMetric
}

type collector struct {
	metric GameMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(score0, score1 int) {
	c.metric = GameMetric{
		StartScores: [2]int{score0, score1},
		StartTime:   time.Now(),
	}
}

func (c *collector) AddTurn(player, numRolls, turnScore, gift int) {
	c.metric.Turns++
	if numRolls == 0 {
		c.metric.FreeBacons++
	} else if turnScore == 0 {
		c.metric.PigOuts++
	}
	c.metric.GiftPoints += gift
}

func (c *collector) AddSwap() {
	c.metric.Swaps++
}

func (c *collector) Complete(score0, score1 int) GameMetric {
	c.metric.FinalScores = [2]int{score0, score1}
	c.metric.Winner = 1
	if score0 > score1 {
		c.metric.Winner = 0
	}
	c.metric.EndTime = time.Now()
	c.metric.Duration = c.metric.EndTime.Sub(c.metric.StartTime)
	return c.metric
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) Start(score0, score1 int)                      {}
func (c *dummyCollector) AddTurn(player, numRolls, turnScore, gift int) {}
func (c *dummyCollector) AddSwap()                                      {}
func (c *dummyCollector) Complete(score0, score1 int) GameMetric        { return GameMetric{} }
