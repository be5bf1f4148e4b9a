package simulation

import (
	"time"

	"github.com/shopspring/decimal"
)

type RunRequest struct {
	Spins   int64  `json:"spins"`
	Coins   int    `json:"coins"`   // 0 - одна монета
	Workers int    `json:"workers"` // 0 - SIM_WORKERS
	Seed    uint64 `json:"seed"`    // 0 - случайный
}

type Outcome struct {
	Symbols  [3]string `json:"symbols"`
	Category string    `json:"category"`
	Payout   int       `json:"payout"`
	Count    int64     `json:"count"`
}

type CategoryExact struct {
	Probability  float64 `json:"probability"`
	Contribution float64 `json:"contribution"` // Вклад в RTP, доля ставки
}

type RunResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Spins     int64     `json:"spins"`
	Coins     int       `json:"coins"`
	Workers   int       `json:"workers"`
	Seed      uint64    `json:"seed"`

	TotalSpins int64 `json:"total_spins"`
	TotalWon   int64 `json:"total_won"`
	TotalHits  int64 `json:"total_hits"`

	RTP          decimal.Decimal `json:"rtp"`           // %
	HitFrequency decimal.Decimal `json:"hit_frequency"` // %
	AverageWin   decimal.Decimal `json:"average_win"`
	StdError     decimal.Decimal `json:"std_error"` // п.п.

	ExactRTP          float64                  `json:"exact_rtp"`           // %
	ExactHitFrequency float64                  `json:"exact_hit_frequency"` // %
	ExactCategories   map[string]CategoryExact `json:"exact_categories,omitempty"`

	ElapsedMS int64     `json:"elapsed_ms"`
	Outcomes  []Outcome `json:"outcomes,omitempty"`
}
