package env

import (
	"classic_slot/internal/config"
	"fmt"
	"os"
	"runtime"
	"strconv"
)

const (
	simWorkersName  = "SIM_WORKERS"
	simMaxSpinsName = "SIM_MAX_SPINS"
	simMaxWorkName  = "SIM_MAX_WORKERS"

	defaultMaxSpins = 10_000_000
	// потолок воркеров по умолчанию, в CPU
	workersPerCPU   = 4
)

type simulationConfig struct {
	workers    int
	maxSpins   int64
	maxWorkers int
}

// NewSimulationConfig воркеров по умолчанию по числу CPU, потолок 4 на CPU,
// но не ниже SIM_WORKERS
func NewSimulationConfig() (config.SimulationConfig, error) {
	cfg := &simulationConfig{
		workers:  runtime.NumCPU(),
		maxSpins: defaultMaxSpins,
	}

	if v := os.Getenv(simWorkersName); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid %s: %q", simWorkersName, v)
		}
		cfg.workers = n
	}

	if v := os.Getenv(simMaxSpinsName); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid %s: %q", simMaxSpinsName, v)
		}
		cfg.maxSpins = n
	}

	cfg.maxWorkers = max(workersPerCPU*runtime.NumCPU(), cfg.workers)
	if v := os.Getenv(simMaxWorkName); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid %s: %q", simMaxWorkName, v)
		}
		if n < cfg.workers {
			return nil, fmt.Errorf("%s=%d below %s=%d", simMaxWorkName, n, simWorkersName, cfg.workers)
		}
		cfg.maxWorkers = n
	}

	return cfg, nil
}

func (cfg *simulationConfig) Workers() int {
	return cfg.workers
}

func (cfg *simulationConfig) MaxSpins() int64 {
	return cfg.maxSpins
}

func (cfg *simulationConfig) MaxWorkers() int {
	return cfg.maxWorkers
}
