package report

import (
	"classic_slot/internal/model"
	"classic_slot/internal/service/simulation"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type jsonOutcome struct {
	Symbols  [3]model.Symbol `json:"symbols"`
	Category model.Category  `json:"category"`
	Payout   int             `json:"payout"`
	Count    int64           `json:"count"`
}

type jsonExact struct {
	RTP          float64                                `json:"rtp"`
	HitFrequency float64                                `json:"hit_frequency"`
	Categories   map[model.Category]model.CategoryExact `json:"categories"`
}

type jsonReport struct {
	TotalSpins   int64                    `json:"total_spins"`
	TotalWagered int64                    `json:"total_wagered"`
	TotalWon     int64                    `json:"total_won"`
	TotalHits    int64                    `json:"total_hits"`
	RTP          decimal.Decimal          `json:"rtp"`
	HitFrequency decimal.Decimal          `json:"hit_frequency"`
	AverageWin   decimal.Decimal          `json:"average_win"`
	StdError     decimal.Decimal          `json:"std_error"`
	Exact        *jsonExact               `json:"exact,omitempty"`
	Categories   map[model.Category]int64 `json:"categories"`
	Outcomes     []jsonOutcome            `json:"outcomes"`
	ElapsedMS    int64                    `json:"elapsed_ms"`
}

// WriteJSON полный результат прогона. exact может быть nil.
func WriteJSON(w io.Writer, res *model.SimulationResult, exact *model.ExactResult) error {
	s := simulation.Summarize(res)
	r := jsonReport{
		TotalSpins:   res.TotalSpins,
		TotalWagered: res.TotalWagered,
		TotalWon:     res.TotalWon,
		TotalHits:    res.TotalHits,
		RTP:          s.RTP,
		HitFrequency: s.HitFrequency,
		AverageWin:   s.AverageWin,
		StdError:     s.StdError,
		Categories:   res.Categories,
		ElapsedMS:    res.Elapsed.Milliseconds(),
	}
	if exact != nil {
		r.Exact = &jsonExact{RTP: exact.RTP, HitFrequency: exact.HitFrequency, Categories: exact.Categories}
	}
	for _, o := range simulation.WinningOutcomes(res) {
		r.Outcomes = append(r.Outcomes, jsonOutcome{
			Symbols:  o.Symbols,
			Category: o.Category,
			Payout:   o.Payout,
			Count:    o.Count,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
