package converter

import (
	"classic_slot/internal/api/dto/slot"
	"classic_slot/internal/model"
)

func ToSlotSpin(req slot.SpinRequest) model.SlotSpin {
	return model.SlotSpin{
		Coins: req.Coins,
	}
}

func ToSpinResponse(res model.PlayResult) slot.SpinResponse {
	out := slot.SpinResponse{
		Category: string(res.Result.Category),
		Payout:   res.Result.Payout,
		Coins:    res.Coins,
		BigWin:   res.BigWin,
	}
	for i, s := range res.Outcome.Stops {
		out.Stops[i] = slot.Stop{Position: s.Position, Symbol: string(s.Symbol)}
		out.Symbols[i] = string(s.Symbol)
	}
	return out
}

func ToEvaluateRequest(req slot.EvaluateRequest) model.EvaluateRequest {
	return model.EvaluateRequest{
		Symbols: req.Symbols,
		Coins:   req.Coins,
	}
}

func ToEvaluateResponse(res model.PayoutResult) slot.EvaluateResponse {
	return slot.EvaluateResponse{
		Category: string(res.Category),
		Payout:   res.Payout,
	}
}

func ToMachineResponse(info model.MachineInfo) slot.MachineResponse {
	out := slot.MachineResponse{
		Strip:     make([]string, len(info.Strip)),
		ReelTotal: info.ReelTotal,
		Weights:   info.Weights,
		Analysis:  make([][]slot.ReelAnalysis, len(info.Analysis)),
		Paytable:  make(map[string]int, len(info.Paytable)),
		Geometry:  toGeometry(info.Geometry),
	}
	for i, s := range info.Strip {
		out.Strip[i] = string(s)
	}
	for r, reel := range info.Analysis {
		out.Analysis[r] = toReelAnalysis(reel)
	}
	for c, v := range info.Paytable {
		out.Paytable[string(c)] = v
	}
	return out
}

func toReelAnalysis(analysis []model.ReelAnalysis) []slot.ReelAnalysis {
	result := make([]slot.ReelAnalysis, len(analysis))
	for i, a := range analysis {
		positions := make([]slot.PositionWeight, len(a.Positions))
		for j, p := range a.Positions {
			positions[j] = slot.PositionWeight{Position: p.Position, Count: p.Count}
		}
		result[i] = slot.ReelAnalysis{
			Symbol:     string(a.Symbol),
			Count:      a.Count,
			Percentage: a.Percentage,
			Positions:  positions,
		}
	}
	return result
}

func toGeometry(g model.Geometry) slot.Geometry {
	stops := make([]slot.GeometryStop, len(g.Stops))
	for i, s := range g.Stops {
		stops[i] = slot.GeometryStop{
			Index:   s.Index,
			Symbol:  string(s.Symbol),
			Height:  s.Height,
			CenterY: s.CenterY,
		}
	}
	return slot.Geometry{Stops: stops, TotalHeight: g.TotalHeight}
}

func ToStatsResponse(stats model.PlayStats) slot.StatsResponse {
	return slot.StatsResponse{
		TotalSpins:   stats.TotalSpins,
		TotalWagered: stats.TotalWagered,
		TotalWon:     stats.TotalWon,
		TotalHits:    stats.TotalHits,
		CurrentRTP:   stats.CurrentRTP,
		WindowRTP:    stats.WindowRTP,
		WindowSize:   stats.WindowSize,
	}
}
