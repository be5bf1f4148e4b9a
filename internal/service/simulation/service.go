package simulation

import (
	"classic_slot/internal/config"
	"classic_slot/internal/model"
	"classic_slot/internal/repository"
	"classic_slot/internal/service"
	"classic_slot/internal/service/payout"
	"classic_slot/internal/service/reel"
	"classic_slot/pkg/rng"
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

var (
	ErrSpinsLimit   = fmt.Errorf("%w: spins above limit", ErrInvalidRequest)
	ErrWorkersLimit = fmt.Errorf("%w: workers above limit", ErrInvalidRequest)
)

type serv struct {
	driver   *Driver
	machine  *reel.Machine
	paytable payout.Paytable
	repo     repository.SimulationRepository
	cfg      config.SimulationConfig
	log      *zap.Logger

	exactOnce sync.Once
	exact     model.ExactResult
	exactErr  error
}

// NewSimulationService прогоны симуляции с сохранением результатов
func NewSimulationService(
	machine *reel.Machine,
	paytable payout.Paytable,
	repo repository.SimulationRepository,
	cfg config.SimulationConfig,
	log *zap.Logger,
) service.SimulationService {
	return &serv{
		driver:   NewDriver(machine, paytable),
		machine:  machine,
		paytable: paytable,
		repo:     repo,
		cfg:      cfg,
		log:      log,
	}
}

func (s *serv) exactResult() (model.ExactResult, error) {
	s.exactOnce.Do(func() {
		s.exact, s.exactErr = Exact(s.machine, s.paytable)
	})
	return s.exact, s.exactErr
}

// Run запускает прогон, сравнивает с точным RTP и сохраняет
func (s *serv) Run(ctx context.Context, req model.SimulationRequest) (*model.SimulationRun, error) {
	if req.Spins > s.cfg.MaxSpins() {
		return nil, fmt.Errorf("%w: %d > %d", ErrSpinsLimit, req.Spins, s.cfg.MaxSpins())
	}
	if req.Workers > s.cfg.MaxWorkers() {
		return nil, fmt.Errorf("%w: %d > %d", ErrWorkersLimit, req.Workers, s.cfg.MaxWorkers())
	}
	if req.Coins == 0 {
		req.Coins = 1
	}
	if req.Workers == 0 {
		req.Workers = s.cfg.Workers()
	}
	if req.Seed == 0 {
		req.Seed = rng.NewSeed()
	}

	res, err := s.driver.Run(ctx, Params{
		Spins:   req.Spins,
		Coins:   req.Coins,
		Workers: req.Workers,
		Seed:    req.Seed,
	})
	if err != nil {
		return nil, err
	}

	exact, err := s.exactResult()
	if err != nil {
		return nil, err
	}

	run := &model.SimulationRun{
		ID:         uuid.New(),
		CreatedAt:  time.Now().UTC(),
		Request:    req,
		Summary:    Summarize(res),
		Exact:      exact,
		TotalSpins: res.TotalSpins,
		TotalWon:   res.TotalWon,
		TotalHits:  res.TotalHits,
		Elapsed:    res.Elapsed,
		Outcomes:   WinningOutcomes(res),
	}

	if err := s.repo.Save(ctx, run); err != nil {
		return nil, fmt.Errorf("save simulation run: %w", err)
	}

	s.log.Info("simulation finished",
		zap.Stringer("id", run.ID),
		zap.Int64("spins", run.TotalSpins),
		zap.Uint64("seed", req.Seed),
		zap.Stringer("rtp", run.Summary.RTP),
		zap.Float64("exact_rtp", exact.RTP*100),
		zap.Duration("elapsed", run.Elapsed),
	)
	return run, nil
}

func (s *serv) Get(ctx context.Context, id uuid.UUID) (*model.SimulationRun, error) {
	return s.repo.Get(ctx, id)
}

func (s *serv) List(ctx context.Context, limit int) ([]model.SimulationRun, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	limit = min(limit, maxListLimit)
	return s.repo.List(ctx, limit)
}

// WinningOutcomes выигрышные тройки по убыванию выплаты, при равной выплате по частоте
func WinningOutcomes(res *model.SimulationResult) []model.OutcomeStat {
	out := make([]model.OutcomeStat, 0, len(res.Outcomes))
	for _, o := range res.Outcomes {
		if o.Payout > 0 {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Payout != out[j].Payout {
			return out[i].Payout > out[j].Payout
		}
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return symbolsKey(out[i].Symbols) < symbolsKey(out[j].Symbols)
	})
	return out
}

func symbolsKey(s [3]model.Symbol) string {
	return string(s[0]) + "|" + string(s[1]) + "|" + string(s[2])
}
