package simulation

import (
	"classic_slot/internal/model"
	"classic_slot/internal/service/payout"
	"classic_slot/internal/service/reel"
	"classic_slot/pkg/rng"
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// batchSize как часто воркер проверяет отмену контекста
const batchSize = 4096

var ErrInvalidRequest = errors.New("invalid simulation request")

// Params параметры прогона. Воркер i получает поток rng.NewSeeded(Seed, i).
// Progress, если задан, вызывается из воркеров каждые ProgressEvery спинов
// (по умолчанию 100 000) и должен быть безопасен для конкурентного вызова.
type Params struct {
	Spins         int64
	Coins         int
	Workers       int
	Seed          uint64
	Progress      func(done, total int64)
	ProgressEvery int64
}

const defaultProgressEvery = 100_000

// progress общий счетчик сделанных спинов, проверяется на границах батчей
type progress struct {
	done  atomic.Int64
	every int64
	total int64
	fn    func(done, total int64)
}

func newProgress(p Params) *progress {
	if p.Progress == nil {
		return nil
	}
	every := p.ProgressEvery
	if every <= 0 {
		every = defaultProgressEvery
	}
	return &progress{every: every, total: p.Spins, fn: p.Progress}
}

func (p *progress) add(n int64) {
	if p == nil {
		return
	}
	now := p.done.Add(n)
	if (now-n)/p.every != now/p.every {
		p.fn(now/p.every*p.every, p.total)
	}
}

func (p Params) validate() error {
	if p.Spins <= 0 {
		return fmt.Errorf("%w: spins must be positive", ErrInvalidRequest)
	}
	if p.Coins < 1 {
		return fmt.Errorf("%w: coins must be at least 1", ErrInvalidRequest)
	}
	if p.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1", ErrInvalidRequest)
	}
	return nil
}

// Driver гоняет спин -> оценку и собирает агрегаты
type Driver struct {
	machine  *reel.Machine
	paytable payout.Paytable
}

func NewDriver(machine *reel.Machine, paytable payout.Paytable) *Driver {
	return &Driver{machine: machine, paytable: paytable}
}

// Run параллельный прогон. Каждый воркер крутит свою долю спинов со своим потоком
// и своим агрегатом, агрегаты сливаются один раз в конце.
// Результат при фиксированных Seed и Workers воспроизводим.
func (d *Driver) Run(ctx context.Context, params Params) (*model.SimulationResult, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	start := time.Now()

	workers := params.Workers
	if int64(workers) > params.Spins {
		workers = int(params.Spins)
	}

	prog := newProgress(params)
	tallies := make([]*tally, workers)
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		share := params.Spins / int64(workers)
		if int64(i) < params.Spins%int64(workers) {
			share++
		}
		g.Go(func() error {
			t, err := d.loop(gctx, share, params.Coins, rng.NewSeeded(params.Seed, uint64(i)), prog)
			if err != nil {
				return err
			}
			tallies[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := tallies[0]
	for _, t := range tallies[1:] {
		total.merge(t)
	}
	res := total.result()
	res.Elapsed = time.Since(start)
	return res, nil
}

// RunWithSource однопоточный прогон на переданном источнике
func (d *Driver) RunWithSource(ctx context.Context, spins int64, coins int, src rng.Source) (*model.SimulationResult, error) {
	if err := (Params{Spins: spins, Coins: coins, Workers: 1}).validate(); err != nil {
		return nil, err
	}
	start := time.Now()
	t, err := d.loop(ctx, spins, coins, src, nil)
	if err != nil {
		return nil, err
	}
	res := t.result()
	res.Elapsed = time.Since(start)
	return res, nil
}

func (d *Driver) loop(ctx context.Context, spins int64, coins int, src rng.Source, prog *progress) (*tally, error) {
	t := newTally(len(d.machine.Strip()))
	for done := int64(0); done < spins; {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		n := min(int64(batchSize), spins-done)
		for j := int64(0); j < n; j++ {
			out := d.machine.Spin(src)
			t.add(out, d.paytable.Evaluate(out.Symbols(), coins), coins)
		}
		done += n
		prog.add(n)
	}
	return t, nil
}
