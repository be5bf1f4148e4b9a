package slot

import (
	"classic_slot/internal/model"
	"classic_slot/internal/service/reel"
	"context"
)

// Machine лента, веса, анализ барабанов, таблица выплат и геометрия
func (s *serv) Machine(_ context.Context) (*model.MachineInfo, error) {
	m := s.def.Machine
	info := &model.MachineInfo{
		Strip:     m.Strip(),
		ReelTotal: m.Total(),
		Weights:   make([][]int, reel.ReelCount),
		Analysis:  make([][]model.ReelAnalysis, reel.ReelCount),
		Paytable:  s.def.Paytable.Copy(),
		Geometry:  s.def.Geometry,
	}
	info.Geometry.Stops = append([]model.GeometryStop(nil), s.def.Geometry.Stops...)

	for r := 0; r < reel.ReelCount; r++ {
		w, err := m.WeightsByPosition(r)
		if err != nil {
			return nil, err
		}
		info.Weights[r] = w

		a, err := m.Analyze(r)
		if err != nil {
			return nil, err
		}
		info.Analysis[r] = a
	}
	return info, nil
}

func (s *serv) Stats(_ context.Context) (*model.PlayStats, error) {
	stats := s.statsRepo.Stats()
	return &stats, nil
}
