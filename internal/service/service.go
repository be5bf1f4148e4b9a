package service

import (
	"classic_slot/internal/model"
	"context"

	"github.com/google/uuid"
)

type SlotService interface {
	Spin(ctx context.Context, req model.SlotSpin) (*model.PlayResult, error)
	Evaluate(ctx context.Context, req model.EvaluateRequest) (*model.PayoutResult, error)
	Machine(ctx context.Context) (*model.MachineInfo, error)
	Stats(ctx context.Context) (*model.PlayStats, error)
}

type SimulationService interface {
	Run(ctx context.Context, req model.SimulationRequest) (*model.SimulationRun, error)
	Get(ctx context.Context, id uuid.UUID) (*model.SimulationRun, error)
	List(ctx context.Context, limit int) ([]model.SimulationRun, error)
}
