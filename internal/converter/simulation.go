package converter

import (
	"classic_slot/internal/api/dto/simulation"
	"classic_slot/internal/model"
)

func ToSimulationRequest(req simulation.RunRequest) model.SimulationRequest {
	return model.SimulationRequest{
		Spins:   req.Spins,
		Coins:   req.Coins,
		Workers: req.Workers,
		Seed:    req.Seed,
	}
}

func ToRunResponse(run model.SimulationRun) simulation.RunResponse {
	out := simulation.RunResponse{
		ID:                run.ID.String(),
		CreatedAt:         run.CreatedAt,
		Spins:             run.Request.Spins,
		Coins:             run.Request.Coins,
		Workers:           run.Request.Workers,
		Seed:              run.Request.Seed,
		TotalSpins:        run.TotalSpins,
		TotalWon:          run.TotalWon,
		TotalHits:         run.TotalHits,
		RTP:               run.Summary.RTP,
		HitFrequency:      run.Summary.HitFrequency,
		AverageWin:        run.Summary.AverageWin,
		StdError:          run.Summary.StdError,
		ExactRTP:          run.Exact.RTP * 100,
		ExactHitFrequency: run.Exact.HitFrequency * 100,
		ElapsedMS:         run.Elapsed.Milliseconds(),
	}
	if len(run.Exact.Categories) > 0 {
		out.ExactCategories = make(map[string]simulation.CategoryExact, len(run.Exact.Categories))
		for c, e := range run.Exact.Categories {
			out.ExactCategories[string(c)] = simulation.CategoryExact{
				Probability:  e.Probability,
				Contribution: e.Contribution,
			}
		}
	}
	for _, o := range run.Outcomes {
		out.Outcomes = append(out.Outcomes, simulation.Outcome{
			Symbols:  [3]string{string(o.Symbols[0]), string(o.Symbols[1]), string(o.Symbols[2])},
			Category: string(o.Category),
			Payout:   o.Payout,
			Count:    o.Count,
		})
	}
	return out
}

func ToRunsResponse(runs []model.SimulationRun) []simulation.RunResponse {
	result := make([]simulation.RunResponse, len(runs))
	for i, r := range runs {
		result[i] = ToRunResponse(r)
	}
	return result
}
