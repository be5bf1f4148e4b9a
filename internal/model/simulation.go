package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SimulationRequest struct {
	Spins   int64
	Coins   int
	Workers int
	Seed    uint64
}

// OutcomeStat сколько раз выпала конкретная тройка символов
type OutcomeStat struct {
	Symbols  [3]Symbol
	Category Category
	Payout   int
	Count    int64
}

// SimulationResult агрегат одного прогона симуляции
type SimulationResult struct {
	TotalSpins   int64
	TotalWagered int64
	TotalWon     int64
	TotalHits    int64
	// SumSquares сумма квадратов выигрыша спина в ставках, для стандартной ошибки RTP
	SumSquares     float64
	Outcomes       map[[3]Symbol]*OutcomeStat
	Categories     map[Category]int64
	PositionCounts [3][]int64
	Elapsed        time.Duration
}

// Summary итоговые показатели прогона
type Summary struct {
	RTP          decimal.Decimal // %
	HitFrequency decimal.Decimal // %
	AverageWin   decimal.Decimal // монет на выигрышный спин
	StdError     decimal.Decimal // стандартная ошибка RTP, п.п.
}

// CategoryExact точная вероятность категории и её вклад в RTP
type CategoryExact struct {
	Probability  float64 `json:"probability"`
	Contribution float64 `json:"contribution"`
}

// ExactResult точные показатели, посчитанные перебором всех остановок
type ExactResult struct {
	RTP          float64
	HitFrequency float64
	Categories   map[Category]CategoryExact
}

// SimulationRun сохранённый прогон
type SimulationRun struct {
	ID         uuid.UUID
	CreatedAt  time.Time
	Request    SimulationRequest
	Summary    Summary
	Exact      ExactResult
	TotalSpins int64
	TotalWon   int64
	TotalHits  int64
	Elapsed    time.Duration
	// Outcomes только выигрышные тройки
	Outcomes []OutcomeStat
}
