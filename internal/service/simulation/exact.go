package simulation

import (
	"classic_slot/internal/model"
	"classic_slot/internal/service/payout"
	"classic_slot/internal/service/reel"
)

// Exact перебирает все тройки позиций с весами и считает точные RTP и частоту выигрыша
// при ставке в одну монету.
func Exact(machine *reel.Machine, paytable payout.Paytable) (model.ExactResult, error) {
	strip := machine.Strip()
	var weights [reel.ReelCount][]int
	for r := range weights {
		w, err := machine.WeightsByPosition(r)
		if err != nil {
			return model.ExactResult{}, err
		}
		weights[r] = w
	}

	total := float64(machine.Total())
	cycle := total * total * total

	var won, hits float64
	counts := make(map[model.Category]float64)
	paid := make(map[model.Category]float64)
	for p0, w0 := range weights[0] {
		if w0 == 0 {
			continue
		}
		for p1, w1 := range weights[1] {
			if w1 == 0 {
				continue
			}
			for p2, w2 := range weights[2] {
				if w2 == 0 {
					continue
				}
				n := float64(w0 * w1 * w2)
				res := paytable.Evaluate([3]model.Symbol{strip[p0], strip[p1], strip[p2]}, 1)
				counts[res.Category] += n
				paid[res.Category] += n * float64(res.Payout)
				won += n * float64(res.Payout)
				if res.Win() {
					hits += n
				}
			}
		}
	}

	out := model.ExactResult{
		RTP:          won / cycle,
		HitFrequency: hits / cycle,
		Categories:   make(map[model.Category]model.CategoryExact, len(counts)),
	}
	for c, n := range counts {
		out.Categories[c] = model.CategoryExact{
			Probability:  n / cycle,
			Contribution: paid[c] / cycle,
		}
	}
	return out, nil
}
