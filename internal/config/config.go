package config

import (
	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// MachineConfig описание автомата: лента, веса барабанов, таблица выплат
type MachineConfig interface {
	Strip() []string
	ReelTotal() int
	// Reels веса по позициям, по карте на барабан
	Reels() []map[int]int
	Paytable() map[string]int
	SymbolHeights() map[string]int
	BigWinPerCoin() int
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type SimulationConfig interface {
	Workers() int
	MaxSpins() int64
	MaxWorkers() int
}

type LogConfig interface {
	Level() string
}
