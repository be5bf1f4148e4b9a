package report

import (
	"classic_slot/internal/model"
	"classic_slot/internal/service/reel"
	"classic_slot/internal/service/simulation"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"
)

const (
	SummaryFile     = "summary.csv"
	ParSheetFile    = "par_sheet.csv"
	SymbolFreqFile  = "symbol_frequency.csv"
	ReelWeightsFile = "virtual_reel_weights.csv"
	percentPlaces   = 4
	weightPlaces    = 2
)

// WriteCSVs пишет четыре отчёта в dir и возвращает пути созданных файлов
func WriteCSVs(dir string, res *model.SimulationResult, machine *reel.Machine) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	files := []struct {
		name string
		rows [][]string
	}{
		{SummaryFile, SummaryRows(res)},
		{ParSheetFile, ParSheetRows(res)},
		{SymbolFreqFile, SymbolFrequencyRows(res, machine)},
		{ReelWeightsFile, ReelWeightRows(machine)},
	}

	paths := make([]string, 0, len(files))
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := writeCSV(path, f.rows); err != nil {
			return paths, fmt.Errorf("write %s: %w", f.name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func SummaryRows(res *model.SimulationResult) [][]string {
	s := simulation.Summarize(res)
	return [][]string{
		{"Metric", "Value"},
		{"Total Spins", strconv.FormatInt(res.TotalSpins, 10)},
		{"Total Wagered", strconv.FormatInt(res.TotalWagered, 10)},
		{"Total Won", strconv.FormatInt(res.TotalWon, 10)},
		{"RTP %", s.RTP.StringFixed(percentPlaces)},
		{"Hit Frequency %", s.HitFrequency.StringFixed(percentPlaces)},
		{"Average Win Per Hit", s.AverageWin.StringFixed(2)},
		{"RTP Std Error %", s.StdError.StringFixed(percentPlaces)},
	}
}

// ParSheetRows выигрышные тройки по убыванию выплаты
func ParSheetRows(res *model.SimulationResult) [][]string {
	rows := [][]string{{"Reel 1", "Reel 2", "Reel 3", "Win Type", "Payout", "Count", "Frequency %", "Contribution %"}}
	for _, o := range simulation.WinningOutcomes(res) {
		rows = append(rows, []string{
			string(o.Symbols[0]), string(o.Symbols[1]), string(o.Symbols[2]),
			string(o.Category),
			strconv.Itoa(o.Payout),
			strconv.FormatInt(o.Count, 10),
			percent(o.Count, res.TotalSpins).StringFixed(percentPlaces),
			percent(o.Count*int64(o.Payout), res.TotalWon).StringFixed(percentPlaces),
		})
	}
	return rows
}

// SymbolFrequencyRows сколько раз символ выпал на каждом барабане
func SymbolFrequencyRows(res *model.SimulationResult, machine *reel.Machine) [][]string {
	strip := machine.Strip()
	counts := make(map[model.Symbol]*[reel.ReelCount]int64)
	for r, positions := range res.PositionCounts {
		for p, n := range positions {
			if n == 0 {
				continue
			}
			c, ok := counts[strip[p]]
			if !ok {
				c = new([reel.ReelCount]int64)
				counts[strip[p]] = c
			}
			c[r] += n
		}
	}

	rows := [][]string{{"Symbol", "Reel 1 Count", "Reel 1 %", "Reel 2 Count", "Reel 2 %", "Reel 3 Count", "Reel 3 %"}}
	for _, sym := range sortedSymbols(counts) {
		row := []string{string(sym)}
		for r := 0; r < reel.ReelCount; r++ {
			n := counts[sym][r]
			row = append(row, strconv.FormatInt(n, 10), percent(n, res.TotalSpins).StringFixed(percentPlaces))
		}
		rows = append(rows, row)
	}
	return rows
}

// ReelWeightRows виртуальные остановки по символам, из таблиц весов
func ReelWeightRows(machine *reel.Machine) [][]string {
	counts := make(map[model.Symbol]*[reel.ReelCount]int64)
	for r := 0; r < reel.ReelCount; r++ {
		analysis, err := machine.Analyze(r)
		if err != nil {
			continue
		}
		for _, a := range analysis {
			c, ok := counts[a.Symbol]
			if !ok {
				c = new([reel.ReelCount]int64)
				counts[a.Symbol] = c
			}
			c[r] = int64(a.Count)
		}
	}

	total := int64(machine.Total())
	rows := [][]string{{"Symbol", "Reel 1 Stops", "Reel 1 Weight %", "Reel 2 Stops", "Reel 2 Weight %", "Reel 3 Stops", "Reel 3 Weight %"}}
	for _, sym := range sortedSymbols(counts) {
		row := []string{string(sym)}
		for r := 0; r < reel.ReelCount; r++ {
			n := counts[sym][r]
			row = append(row, strconv.FormatInt(n, 10), percent(n, total).StringFixed(weightPlaces))
		}
		rows = append(rows, row)
	}
	return rows
}

func percent(part, whole int64) decimal.Decimal {
	if whole == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(part).Mul(decimal.NewFromInt(100)).Div(decimal.NewFromInt(whole))
}

func sortedSymbols[V any](m map[model.Symbol]V) []model.Symbol {
	out := make([]model.Symbol, 0, len(m))
	for s := range m {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
