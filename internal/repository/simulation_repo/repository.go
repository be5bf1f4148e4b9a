package simulation_repo

import (
	"classic_slot/internal/model"
	"classic_slot/internal/repository"
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	jsoniter "github.com/json-iterator/go"
)

const (
	runsTable         = "simulation_runs"
	colID             = "id"
	colCreatedAt      = "created_at"
	colSpins          = "spins"
	colCoins          = "coins"
	colWorkers        = "workers"
	colSeed           = "seed"
	colTotalSpins     = "total_spins"
	colTotalWon       = "total_won"
	colTotalHits      = "total_hits"
	colRTP            = "rtp"
	colHitFrequency   = "hit_frequency"
	colAverageWin     = "average_win"
	colStdError       = "std_error"
	colExactRTP       = "exact_rtp"
	colExactHitFreq   = "exact_hit_frequency"
	colExactBreakdown = "exact_categories"
	colElapsed        = "elapsed_ns"

	outcomesTable = "simulation_outcomes"
	colRunID      = "run_id"
	colReel1      = "reel1"
	colReel2      = "reel2"
	colReel3      = "reel3"
	colCategory   = "category"
	colPayout     = "payout"
	colCount      = "count"
)

const schema = `
CREATE TABLE IF NOT EXISTS simulation_runs (
	id                  uuid PRIMARY KEY,
	created_at          timestamptz NOT NULL,
	spins               bigint NOT NULL,
	coins               integer NOT NULL,
	workers             integer NOT NULL,
	seed                bigint NOT NULL,
	total_spins         bigint NOT NULL,
	total_won           bigint NOT NULL,
	total_hits          bigint NOT NULL,
	rtp                 numeric NOT NULL,
	hit_frequency       numeric NOT NULL,
	average_win         numeric NOT NULL,
	std_error           numeric NOT NULL,
	exact_rtp           double precision NOT NULL,
	exact_hit_frequency double precision NOT NULL,
	exact_categories    jsonb NOT NULL,
	elapsed_ns          bigint NOT NULL
);
CREATE INDEX IF NOT EXISTS simulation_runs_created_at_idx ON simulation_runs (created_at DESC);
CREATE TABLE IF NOT EXISTS simulation_outcomes (
	run_id   uuid NOT NULL REFERENCES simulation_runs (id) ON DELETE CASCADE,
	reel1    text NOT NULL,
	reel2    text NOT NULL,
	reel3    text NOT NULL,
	category text NOT NULL,
	payout   integer NOT NULL,
	count    bigint NOT NULL,
	PRIMARY KEY (run_id, reel1, reel2, reel3)
);`

var runColumns = []string{
	colID, colCreatedAt, colSpins, colCoins, colWorkers, colSeed,
	colTotalSpins, colTotalWon, colTotalHits,
	colRTP, colHitFrequency, colAverageWin, colStdError,
	colExactRTP, colExactHitFreq, colExactBreakdown, colElapsed,
}

type repo struct {
	dbc       *pgxpool.Pool
	txManager trm.Manager
	getter    *trmpgx.CtxGetter
}

// NewSimulationRepository Хранилище прогонов в Postgres
func NewSimulationRepository(dbc *pgxpool.Pool, txManager trm.Manager) repository.SimulationRepository {
	return &repo{
		dbc:       dbc,
		txManager: txManager,
		getter:    trmpgx.DefaultCtxGetter,
	}
}

// EnsureSchema - создает таблицы, если их нет
func EnsureSchema(ctx context.Context, dbc *pgxpool.Pool) error {
	_, err := dbc.Exec(ctx, schema)
	return err
}

// Save - сохраняет прогон и его выигрышные тройки в одной транзакции
func (r *repo) Save(ctx context.Context, run *model.SimulationRun) error {
	breakdown, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(run.Exact.Categories)
	if err != nil {
		return fmt.Errorf("marshal exact categories: %w", err)
	}

	return r.txManager.Do(ctx, func(txCtx context.Context) error {
		conn := r.getter.DefaultTrOrDB(txCtx, r.dbc)

		// Формируем запрос
		query := sq.Insert(runsTable).
			Columns(runColumns...).
			Values(
				run.ID.String(), run.CreatedAt, run.Request.Spins, run.Request.Coins, run.Request.Workers, int64(run.Request.Seed),
				run.TotalSpins, run.TotalWon, run.TotalHits,
				run.Summary.RTP, run.Summary.HitFrequency, run.Summary.AverageWin, run.Summary.StdError,
				run.Exact.RTP, run.Exact.HitFrequency, string(breakdown), run.Elapsed.Nanoseconds(),
			).
			PlaceholderFormat(sq.Dollar)

		sqlStr, args, err := query.ToSql()
		if err != nil {
			return err
		}
		if _, err = conn.Exec(txCtx, sqlStr, args...); err != nil {
			return err
		}

		if len(run.Outcomes) == 0 {
			return nil
		}

		outcomes := sq.Insert(outcomesTable).
			Columns(colRunID, colReel1, colReel2, colReel3, colCategory, colPayout, colCount).
			PlaceholderFormat(sq.Dollar)
		for _, o := range run.Outcomes {
			outcomes = outcomes.Values(run.ID.String(), string(o.Symbols[0]), string(o.Symbols[1]), string(o.Symbols[2]),
				string(o.Category), o.Payout, o.Count)
		}

		sqlStr, args, err = outcomes.ToSql()
		if err != nil {
			return err
		}
		_, err = conn.Exec(txCtx, sqlStr, args...)
		return err
	})
}

// Get - прогон по id вместе с выигрышными тройками
func (r *repo) Get(ctx context.Context, id uuid.UUID) (*model.SimulationRun, error) {
	conn := r.getter.DefaultTrOrDB(ctx, r.dbc)

	query := sq.Select(runColumns...).
		From(runsTable).
		Where(sq.Eq{colID: id.String()}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	run, err := scanRun(conn.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrRunNotFound
		}
		return nil, err
	}

	outcomes := sq.Select(colReel1, colReel2, colReel3, colCategory, colPayout, colCount).
		From(outcomesTable).
		Where(sq.Eq{colRunID: id.String()}).
		OrderBy(colPayout+" DESC", colCount+" DESC").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err = outcomes.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := conn.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var o model.OutcomeStat
		var r1, r2, r3, category string
		if err := rows.Scan(&r1, &r2, &r3, &category, &o.Payout, &o.Count); err != nil {
			return nil, err
		}
		o.Symbols = [3]model.Symbol{model.Symbol(r1), model.Symbol(r2), model.Symbol(r3)}
		o.Category = model.Category(category)
		run.Outcomes = append(run.Outcomes, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return run, nil
}

// List - последние прогоны без троек, новые первыми
func (r *repo) List(ctx context.Context, limit int) ([]model.SimulationRun, error) {
	conn := r.getter.DefaultTrOrDB(ctx, r.dbc)

	query := sq.Select(runColumns...).
		From(runsTable).
		OrderBy(colCreatedAt + " DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := conn.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []model.SimulationRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}
	return runs, rows.Err()
}

func scanRun(row pgx.Row) (*model.SimulationRun, error) {
	var (
		run       model.SimulationRun
		seed      int64
		breakdown []byte
		elapsed   int64
	)
	err := row.Scan(
		&run.ID, &run.CreatedAt, &run.Request.Spins, &run.Request.Coins, &run.Request.Workers, &seed,
		&run.TotalSpins, &run.TotalWon, &run.TotalHits,
		&run.Summary.RTP, &run.Summary.HitFrequency, &run.Summary.AverageWin, &run.Summary.StdError,
		&run.Exact.RTP, &run.Exact.HitFrequency, &breakdown, &elapsed,
	)
	if err != nil {
		return nil, err
	}

	run.Request.Seed = uint64(seed)
	run.Elapsed = time.Duration(elapsed)
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(breakdown, &run.Exact.Categories); err != nil {
		return nil, fmt.Errorf("unmarshal exact categories: %w", err)
	}
	return &run, nil
}
