package repository

import (
	"classic_slot/internal/model"
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrRunNotFound = errors.New("simulation run not found")

// PlayStatsRepository статистика спинов, сыгранных через API. Только для отчётов, на шансы не влияет.
type PlayStatsRepository interface {
	Record(coins, payout int)
	Stats() model.PlayStats
}

type SimulationRepository interface {
	Save(ctx context.Context, run *model.SimulationRun) error
	Get(ctx context.Context, id uuid.UUID) (*model.SimulationRun, error)
	// List последние прогоны, новые первыми
	List(ctx context.Context, limit int) ([]model.SimulationRun, error)
}
