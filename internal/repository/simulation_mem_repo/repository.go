package simulation_mem_repo

import (
	"classic_slot/internal/model"
	"classic_slot/internal/repository"
	"context"
	"sync"

	"github.com/google/uuid"
)

// repo хранит прогоны в памяти, когда Postgres не настроен
type repo struct {
	mtx   sync.RWMutex
	runs  map[uuid.UUID]model.SimulationRun
	order []uuid.UUID
}

func NewSimulationRepository() repository.SimulationRepository {
	return &repo{
		runs: make(map[uuid.UUID]model.SimulationRun),
	}
}

func (r *repo) Save(_ context.Context, run *model.SimulationRun) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.runs[run.ID]; !ok {
		r.order = append(r.order, run.ID)
	}
	r.runs[run.ID] = cloneRun(*run)
	return nil
}

func (r *repo) Get(_ context.Context, id uuid.UUID) (*model.SimulationRun, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	run, ok := r.runs[id]
	if !ok {
		return nil, repository.ErrRunNotFound
	}
	out := cloneRun(run)
	return &out, nil
}

// List как и в Postgres, тройки в списке не отдаются
func (r *repo) List(_ context.Context, limit int) ([]model.SimulationRun, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	out := make([]model.SimulationRun, 0, min(limit, len(r.order)))
	for i := len(r.order) - 1; i >= 0 && len(out) < limit; i-- {
		run := r.runs[r.order[i]]
		run.Outcomes = nil
		out = append(out, run)
	}
	return out, nil
}

func cloneRun(run model.SimulationRun) model.SimulationRun {
	run.Outcomes = append([]model.OutcomeStat(nil), run.Outcomes...)
	if run.Exact.Categories != nil {
		cats := make(map[model.Category]model.CategoryExact, len(run.Exact.Categories))
		for k, v := range run.Exact.Categories {
			cats[k] = v
		}
		run.Exact.Categories = cats
	}
	return run
}
