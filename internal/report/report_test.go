package report

import (
	"bytes"
	"classic_slot/internal/config/env"
	"classic_slot/internal/model"
	"classic_slot/internal/service/reel"
	"classic_slot/internal/service/simulation"
	"classic_slot/internal/service/slot"
	"classic_slot/pkg/rng"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

const spins = 20_000

func fixture(t *testing.T) (*model.SimulationResult, *reel.Machine) {
	t.Helper()
	cfg, err := env.NewMachineConfigFromYAML("")
	if err != nil {
		t.Fatal(err)
	}
	def, err := slot.NewDefinition(cfg)
	if err != nil {
		t.Fatal(err)
	}
	res, err := simulation.NewDriver(def.Machine, def.Paytable).
		RunWithSource(context.Background(), spins, 1, rng.NewSeeded(3, 0))
	if err != nil {
		t.Fatal(err)
	}
	return res, def.Machine
}

func rowBySymbol(rows [][]string, sym string) []string {
	for _, r := range rows {
		if r[0] == sym {
			return r
		}
	}
	return nil
}

func TestWriteCSVs(t *testing.T) {
	res, machine := fixture(t)
	dir := filepath.Join(t.TempDir(), "out")

	paths, err := WriteCSVs(dir, res, machine)
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 4 {
		t.Fatalf("paths = %v", paths)
	}

	f, err := os.Open(filepath.Join(dir, ParSheetFile))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if rows[0][0] != "Reel 1" || rows[0][7] != "Contribution %" {
		t.Errorf("header = %v", rows[0])
	}
	if len(rows) != len(simulation.WinningOutcomes(res))+1 {
		t.Errorf("par sheet rows = %d", len(rows))
	}
	prev := int(^uint(0) >> 1)
	for _, r := range rows[1:] {
		p, _ := strconv.Atoi(r[4])
		if p > prev {
			t.Fatalf("par sheet not sorted by payout: %v", r)
		}
		prev = p
	}
}

func TestReelWeightRows(t *testing.T) {
	_, machine := fixture(t)
	rows := ReelWeightRows(machine)

	blank := rowBySymbol(rows, "BLANK")
	if blank == nil || blank[1] != "35" || blank[2] != "48.61" {
		t.Errorf("blank row = %v", blank)
	}
	dd := rowBySymbol(rows, "DOUBLE_DIAMOND")
	if dd == nil || dd[1] != "1" || dd[2] != "1.39" {
		t.Errorf("double diamond row = %v", dd)
	}
	bar := rowBySymbol(rows, "SINGLE_BAR")
	if bar == nil || bar[5] != "24" || bar[6] != "33.33" {
		t.Errorf("single bar row = %v", bar)
	}
}

func TestSymbolFrequencyRows(t *testing.T) {
	res, machine := fixture(t)
	rows := SymbolFrequencyRows(res, machine)

	var perReel [3]int64
	for _, r := range rows[1:] {
		for reelIdx := 0; reelIdx < 3; reelIdx++ {
			n, err := strconv.ParseInt(r[1+2*reelIdx], 10, 64)
			if err != nil {
				t.Fatal(err)
			}
			perReel[reelIdx] += n
		}
	}
	for r, n := range perReel {
		if n != spins {
			t.Errorf("reel %d counts %d spins", r, n)
		}
	}
}

func TestSummaryRows(t *testing.T) {
	res, _ := fixture(t)
	rows := SummaryRows(res)
	if rows[1][1] != strconv.Itoa(spins) {
		t.Errorf("total spins row = %v", rows[1])
	}
	if !strings.Contains(rows[4][1], ".") {
		t.Errorf("rtp row = %v", rows[4])
	}
}

func TestWriteJSON(t *testing.T) {
	res, _ := fixture(t)
	exact := &model.ExactResult{RTP: 0.95, HitFrequency: 0.15}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, res, exact); err != nil {
		t.Fatal(err)
	}
	var got struct {
		TotalSpins int64 `json:"total_spins"`
		Exact      struct {
			RTP float64 `json:"rtp"`
		} `json:"exact"`
		Outcomes []struct {
			Payout int `json:"payout"`
		} `json:"outcomes"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.TotalSpins != spins || got.Exact.RTP != 0.95 || len(got.Outcomes) == 0 {
		t.Fatalf("decoded %+v", got)
	}
}

func TestConsole(t *testing.T) {
	res, _ := fixture(t)

	var buf bytes.Buffer
	Console(&buf, res, &model.ExactResult{RTP: 0.9538671339, HitFrequency: 0.1464629415}, 5)
	out := buf.String()

	for _, want := range []string{"OVERALL STATISTICS", "PAR SHEET - TOP 5", "Exact RTP:", "Convergence:"} {
		if !strings.Contains(out, want) {
			t.Errorf("console output missing %q", want)
		}
	}
	if n := strings.Count(out, " | ") / 2; n > 5 {
		t.Errorf("printed %d combinations, want at most 5", n)
	}
}
