package reel

import (
	"classic_slot/internal/model"
	"classic_slot/pkg/rng"
)

// PickStop выбирает остановку барабана с вероятностью weight[p] / total.
// Один индекс в развёрнутом барабане, без поиска.
func (m *Machine) PickStop(reel int, src rng.Source) (model.Stop, error) {
	if err := m.checkReel(reel); err != nil {
		return model.Stop{}, err
	}
	return m.pick(reel, src), nil
}

func (m *Machine) pick(reel int, src rng.Source) model.Stop {
	list := m.stops[reel]
	i := int(src.Float64() * float64(len(list)))
	if i >= len(list) {
		// источник вернул 1.0
		i = len(list) - 1
	}
	pos := list[i]
	return model.Stop{Position: pos, Symbol: m.strip[pos]}
}

// Spin три независимые остановки, по одной на барабан
func (m *Machine) Spin(src rng.Source) model.SpinOutcome {
	var out model.SpinOutcome
	for r := 0; r < ReelCount; r++ {
		out.Stops[r] = m.pick(r, src)
	}
	return out
}
