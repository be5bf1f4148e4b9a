package env

import (
	"classic_slot/internal/config"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed machine.yaml
var referenceMachine []byte

const machineConfigName = "MACHINE_CONFIG"

type machineConfig struct {
	StripSymbols []string       `yaml:"strip"`
	Total        int            `yaml:"reel_total"`
	ReelWeights  []map[int]int  `yaml:"reels"`
	PayTable     map[string]int `yaml:"paytable"`
	Heights      map[string]int `yaml:"symbols"`
	BigWin       int            `yaml:"big_win_per_coin"`
}

// NewMachineConfig путь к YAML из MACHINE_CONFIG, без него встроенная конфигурация
func NewMachineConfig() (config.MachineConfig, error) {
	return NewMachineConfigFromYAML(os.Getenv(machineConfigName))
}

// NewMachineConfigFromYAML читает описание автомата из файла.
// Пустой путь - встроенная эталонная конфигурация.
func NewMachineConfigFromYAML(path string) (config.MachineConfig, error) {
	data := referenceMachine
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read machine config: %w", err)
		}
		data = raw
	}
	return parseMachineConfig(data)
}

func parseMachineConfig(data []byte) (*machineConfig, error) {
	var cfg machineConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse machine config: %w", err)
	}
	if len(cfg.StripSymbols) == 0 {
		return nil, errors.New("machine config: empty strip")
	}
	if cfg.Total <= 0 {
		return nil, errors.New("machine config: reel_total must be positive")
	}
	if len(cfg.ReelWeights) == 0 {
		return nil, errors.New("machine config: no reels")
	}
	return &cfg, nil
}

func (c *machineConfig) Strip() []string {
	return append([]string(nil), c.StripSymbols...)
}

func (c *machineConfig) ReelTotal() int {
	return c.Total
}

func (c *machineConfig) Reels() []map[int]int {
	out := make([]map[int]int, len(c.ReelWeights))
	for i, w := range c.ReelWeights {
		out[i] = make(map[int]int, len(w))
		for p, n := range w {
			out[i][p] = n
		}
	}
	return out
}

func (c *machineConfig) Paytable() map[string]int {
	out := make(map[string]int, len(c.PayTable))
	for k, v := range c.PayTable {
		out[k] = v
	}
	return out
}

func (c *machineConfig) SymbolHeights() map[string]int {
	out := make(map[string]int, len(c.Heights))
	for k, v := range c.Heights {
		out[k] = v
	}
	return out
}

func (c *machineConfig) BigWinPerCoin() int {
	return c.BigWin
}
