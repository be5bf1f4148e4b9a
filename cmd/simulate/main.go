package main

import (
	"classic_slot/internal/config/env"
	"classic_slot/internal/logger"
	"classic_slot/internal/model"
	"classic_slot/internal/report"
	"classic_slot/internal/service/simulation"
	"classic_slot/internal/service/slot"
	"classic_slot/pkg/rng"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"go.uber.org/zap"
)

func main() {
	os.Exit(runMain())
}

func runMain() int {
	var (
		spins    = flag.Int64("spins", 1_000_000, "number of spins")
		coins    = flag.Int("coins", 1, "coins per spin")
		workers  = flag.Int("workers", runtime.NumCPU(), "parallel workers")
		seedText = flag.String("seed", "", "seed (number or any text); random when empty")
		cfgPath  = flag.String("config", "", "machine YAML; embedded reference machine when empty")
		outDir   = flag.String("out", ".", "directory for CSV reports; empty disables them")
		jsonPath = flag.String("json", "", "write the full result as JSON to this file")
		top      = flag.Int("top", 20, "winning combinations shown in the console report")
		level    = flag.String("log-level", "info", "log level")
		every    = flag.Int64("progress", 100_000, "log progress every N spins; 0 disables it")
	)
	flag.Parse()

	log, err := logger.New(*level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	defer func() { _ = log.Sync() }()

	if err := run(log, *spins, *coins, *workers, *seedText, *cfgPath, *outDir, *jsonPath, *top, *every); err != nil {
		log.Error("simulation failed", zap.Error(err))
		return 1
	}
	return 0
}

func run(log *zap.Logger, spins int64, coins, workers int, seedText, cfgPath, outDir, jsonPath string, top int, every int64) error {
	cfg, err := env.NewMachineConfigFromYAML(cfgPath)
	if err != nil {
		return err
	}
	def, err := slot.NewDefinition(cfg)
	if err != nil {
		return err
	}

	seed := rng.NewSeed()
	if seedText != "" {
		seed = rng.ParseSeed(seedText)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("running simulation",
		zap.Int64("spins", spins),
		zap.Int("coins", coins),
		zap.Int("workers", workers),
		zap.Uint64("seed", seed),
	)
	params := simulation.Params{
		Spins:   spins,
		Coins:   coins,
		Workers: workers,
		Seed:    seed,
	}
	if every > 0 {
		params.ProgressEvery = every
		params.Progress = func(done, total int64) {
			log.Info("progress",
				zap.Int64("done", done),
				zap.Int64("total", total),
				zap.String("percent", fmt.Sprintf("%.1f%%", float64(done)*100/float64(total))),
			)
		}
	}
	res, err := simulation.NewDriver(def.Machine, def.Paytable).Run(ctx, params)
	if err != nil {
		return err
	}

	exact, err := simulation.Exact(def.Machine, def.Paytable)
	if err != nil {
		return err
	}

	report.Console(os.Stdout, res, &exact, top)

	if outDir != "" {
		paths, err := report.WriteCSVs(outDir, res, def.Machine)
		if err != nil {
			return err
		}
		for _, p := range paths {
			log.Info("created report", zap.String("path", p))
		}
	}

	if jsonPath != "" {
		if err := writeJSON(jsonPath, res, &exact); err != nil {
			return err
		}
		log.Info("created report", zap.String("path", jsonPath))
	}
	return nil
}

func writeJSON(path string, res *model.SimulationResult, exact *model.ExactResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := report.WriteJSON(f, res, exact); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
