package simulation

import (
	"classic_slot/internal/model"
	"math"

	"github.com/shopspring/decimal"
)

const summaryPlaces = 4

var hundred = decimal.NewFromInt(100)

// Summarize RTP и частота выигрыша в процентах, средний выигрыш в монетах,
// стандартная ошибка RTP в процентных пунктах
func Summarize(res *model.SimulationResult) model.Summary {
	if res == nil || res.TotalSpins == 0 || res.TotalWagered == 0 {
		return model.Summary{}
	}

	won := decimal.NewFromInt(res.TotalWon)
	var s model.Summary
	s.RTP = won.Div(decimal.NewFromInt(res.TotalWagered)).Mul(hundred).Round(summaryPlaces)
	s.HitFrequency = decimal.NewFromInt(res.TotalHits).
		Div(decimal.NewFromInt(res.TotalSpins)).
		Mul(hundred).
		Round(summaryPlaces)
	if res.TotalHits > 0 {
		s.AverageWin = won.Div(decimal.NewFromInt(res.TotalHits)).Round(summaryPlaces)
	}
	s.StdError = decimal.NewFromFloat(StdError(res) * 100).Round(summaryPlaces)
	return s
}

// StdError стандартная ошибка среднего возврата на спин (в долях ставки)
func StdError(res *model.SimulationResult) float64 {
	if res == nil || res.TotalSpins < 2 {
		return 0
	}
	n := float64(res.TotalSpins)
	mean := float64(res.TotalWon) / float64(res.TotalWagered)
	variance := res.SumSquares/n - mean*mean
	if variance < 0 {
		return 0
	}
	return math.Sqrt(variance * n / (n - 1) / n)
}
