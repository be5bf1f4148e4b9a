package env

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNewMachineConfigFromYAML_Reference(t *testing.T) {
	cfg, err := NewMachineConfigFromYAML("")
	if err != nil {
		t.Fatalf("embedded config: %v", err)
	}

	if got := len(cfg.Strip()); got != 22 {
		t.Errorf("strip length = %d, want 22", got)
	}
	if cfg.ReelTotal() != 72 {
		t.Errorf("reel total = %d, want 72", cfg.ReelTotal())
	}
	reels := cfg.Reels()
	if len(reels) != 3 {
		t.Fatalf("reels = %d, want 3", len(reels))
	}
	for i, w := range reels {
		sum := 0
		for _, n := range w {
			sum += n
		}
		if sum != 72 {
			t.Errorf("reel %d sums to %d", i, sum)
		}
		if n, ok := w[17]; !ok || n != 0 {
			t.Errorf("reel %d position 17 = %d, %v; want explicit zero", i, n, ok)
		}
	}
	if cfg.Paytable()["JACKPOT"] != 800 {
		t.Errorf("jackpot = %d", cfg.Paytable()["JACKPOT"])
	}
	if cfg.SymbolHeights()["BLANK"] != 105 {
		t.Errorf("blank height = %d", cfg.SymbolHeights()["BLANK"])
	}
	if cfg.BigWinPerCoin() != 30 {
		t.Errorf("big win per coin = %d", cfg.BigWinPerCoin())
	}
}

func TestMachineConfig_ReturnsCopies(t *testing.T) {
	cfg, err := NewMachineConfigFromYAML("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Reels()[0][3] = 99
	cfg.Strip()[0] = "SEVEN"
	cfg.Paytable()["JACKPOT"] = 1

	if cfg.Reels()[0][3] != 12 || cfg.Strip()[0] != "BLANK" || cfg.Paytable()["JACKPOT"] != 800 {
		t.Fatal("config exposes internal state")
	}
}

func TestNewMachineConfigFromYAML_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "machine.yaml")
	body := []byte(`
strip: [BLANK, SEVEN]
reel_total: 3
reels:
  - {0: 1, 1: 2}
paytable: {JACKPOT: 10}
symbols: {BLANK: 1, SEVEN: 2}
big_win_per_coin: 5
`)
	if err := os.WriteFile(path, body, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewMachineConfigFromYAML(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ReelTotal() != 3 || cfg.Reels()[0][1] != 2 || cfg.BigWinPerCoin() != 5 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestNewMachineConfigFromYAML_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"broken yaml", "strip: [BLANK"},
		{"empty strip", "reel_total: 72\nreels: [{0: 72}]"},
		{"zero total", "strip: [BLANK]\nreels: [{0: 72}]"},
		{"no reels", "strip: [BLANK]\nreel_total: 72"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseMachineConfig([]byte(tt.body)); err == nil {
				t.Fatal("expected error")
			}
		})
	}

	if _, err := NewMachineConfigFromYAML(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestNewSimulationConfig(t *testing.T) {
	t.Setenv(simWorkersName, "3")
	t.Setenv(simMaxSpinsName, "5000")

	cfg, err := NewSimulationConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Workers() != 3 || cfg.MaxSpins() != 5000 {
		t.Fatalf("workers=%d max=%d", cfg.Workers(), cfg.MaxSpins())
	}

	if cfg.MaxWorkers() < 3 {
		t.Fatalf("max workers %d below workers", cfg.MaxWorkers())
	}

	t.Setenv(simMaxWorkName, "8")
	cfg, err = NewSimulationConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxWorkers() != 8 {
		t.Fatalf("max workers = %d", cfg.MaxWorkers())
	}

	t.Setenv(simMaxWorkName, "2")
	if _, err := NewSimulationConfig(); err == nil {
		t.Fatal("expected error for max workers below workers")
	}
	t.Setenv(simMaxWorkName, "")

	t.Setenv(simWorkersName, "0")
	if _, err := NewSimulationConfig(); err == nil {
		t.Fatal("expected error for zero workers")
	}
}

func TestNewHTTPConfig_Default(t *testing.T) {
	t.Setenv(httpAddressName, "")
	cfg, err := NewHTTPConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Address() != defaultHTTPAddress {
		t.Fatalf("address = %q", cfg.Address())
	}
}

func TestNewPGConfig_Missing(t *testing.T) {
	t.Setenv(dsnName, "")
	if _, err := NewPGConfig(); !errors.Is(err, ErrPGNotConfigured) {
		t.Fatalf("err = %v, want ErrPGNotConfigured", err)
	}
}
