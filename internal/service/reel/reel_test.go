package reel

import (
	"classic_slot/internal/model"
	"classic_slot/pkg/rng"
	"errors"
	"math"
	"testing"
)

var referenceStrip = []model.Symbol{
	model.Blank, model.Seven, model.Blank, model.SingleBar, model.Blank, model.DoubleDiamond,
	model.Blank, model.TripleBar, model.Blank, model.Cherry, model.Blank, model.DoubleBar,
	model.Blank, model.Seven, model.Blank, model.SingleBar, model.Blank, model.DoubleDiamond,
	model.Blank, model.TripleBar, model.Blank, model.DoubleBar,
}

func referenceWeights() WeightTable {
	return WeightTable{
		0: 4, 1: 1, 2: 4, 3: 12, 4: 3, 5: 1, 6: 3, 7: 1,
		8: 3, 9: 1, 10: 3, 11: 4, 12: 3, 13: 1, 14: 3, 15: 12,
		16: 3, 17: 0, 18: 3, 19: 1, 20: 3, 21: 3,
	}
}

func referenceMachine(t *testing.T) *Machine {
	t.Helper()
	m, err := NewMachine(referenceStrip, []WeightTable{referenceWeights(), referenceWeights(), referenceWeights()}, ReferenceTotal)
	if err != nil {
		t.Fatalf("reference machine: %v", err)
	}
	return m
}

func TestExpand_WeightConservation(t *testing.T) {
	weights := referenceWeights()
	list, err := Strip(referenceStrip).Expand(weights, ReferenceTotal)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if len(list) != ReferenceTotal {
		t.Fatalf("len = %d, want %d", len(list), ReferenceTotal)
	}
	counts := make(map[int]int)
	for _, pos := range list {
		counts[pos]++
	}
	for pos, want := range weights {
		if counts[pos] != want {
			t.Errorf("position %d appears %d times, want %d", pos, counts[pos], want)
		}
	}
}

func TestExpand_Deterministic(t *testing.T) {
	a, _ := Strip(referenceStrip).Expand(referenceWeights(), ReferenceTotal)
	b, _ := Strip(referenceStrip).Expand(referenceWeights(), ReferenceTotal)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("entry %d differs: %d vs %d", i, a[i], b[i])
		}
	}
}

func TestExpand_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(WeightTable)
	}{
		{"sum too low", func(w WeightTable) { w[0] = 3 }},
		{"sum too high", func(w WeightTable) { w[17] = 1 }},
		{"missing position", func(w WeightTable) { delete(w, 17) }},
		{"missing position with balanced sum", func(w WeightTable) { delete(w, 0); w[2] = 8 }},
		{"position outside strip", func(w WeightTable) { w[22] = 0 }},
		{"negative weight", func(w WeightTable) { w[0] = -1; w[3] = 17 }},
		{"single weight above total", func(w WeightTable) { w[0] = ReferenceTotal + 1 }},
		{"sum wraps around to total", func(w WeightTable) {
			// 2*MaxInt == -2 по модулю 2^64
			w[2] += w[0] + w[1] + 2
			w[0], w[1] = math.MaxInt, math.MaxInt
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := referenceWeights()
			tt.mutate(w)
			_, err := Strip(referenceStrip).Expand(w, ReferenceTotal)
			if !errors.Is(err, ErrConfiguration) {
				t.Fatalf("err = %v, want ErrConfiguration", err)
			}
		})
	}
}

func TestExpand_ZeroWeightIsValid(t *testing.T) {
	list, err := Strip(referenceStrip).Expand(referenceWeights(), ReferenceTotal)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	for _, pos := range list {
		if pos == 17 {
			t.Fatal("position 17 has weight 0 but appears in the stop list")
		}
	}
}

func TestSymbolAt(t *testing.T) {
	m := referenceMachine(t)
	sym, err := m.SymbolAt(5)
	if err != nil || sym != model.DoubleDiamond {
		t.Fatalf("SymbolAt(5) = %v, %v", sym, err)
	}
	for _, pos := range []int{-1, 22, 100} {
		if _, err := m.SymbolAt(pos); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("SymbolAt(%d) err = %v, want ErrOutOfRange", pos, err)
		}
	}
}

func TestNewMachine_Errors(t *testing.T) {
	w := referenceWeights()
	tests := []struct {
		name    string
		strip   []model.Symbol
		weights []WeightTable
		total   int
	}{
		{"empty strip", nil, []WeightTable{w, w, w}, ReferenceTotal},
		{"unknown symbol", append(append([]model.Symbol(nil), referenceStrip[:21]...), "PLUM"), []WeightTable{w, w, w}, ReferenceTotal},
		{"two reels", referenceStrip, []WeightTable{w, w}, ReferenceTotal},
		{"zero total", referenceStrip, []WeightTable{w, w, w}, 0},
		{"total mismatch", referenceStrip, []WeightTable{w, w, w}, 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewMachine(tt.strip, tt.weights, tt.total); !errors.Is(err, ErrConfiguration) {
				t.Fatalf("err = %v, want ErrConfiguration", err)
			}
		})
	}
}

func TestMachine_AccessorsReturnCopies(t *testing.T) {
	m := referenceMachine(t)

	strip := m.Strip()
	strip[0] = model.Seven
	if sym, _ := m.SymbolAt(0); sym != model.Blank {
		t.Fatal("mutating Strip() result changed the machine")
	}

	w, _ := m.Weights(0)
	w[0] = 70
	w2, _ := m.Weights(0)
	if w2[0] != 4 {
		t.Fatal("mutating Weights() result changed the machine")
	}

	list, _ := m.StopList(1)
	list[0] = 21
	list2, _ := m.StopList(1)
	if list2[0] != 0 {
		t.Fatal("mutating StopList() result changed the machine")
	}
}

func TestMachine_InputTablesAreCopied(t *testing.T) {
	w := referenceWeights()
	m, err := NewMachine(referenceStrip, []WeightTable{w, w, w}, ReferenceTotal)
	if err != nil {
		t.Fatal(err)
	}
	w[0] = 0
	got, _ := m.Weights(2)
	if got[0] != 4 {
		t.Fatal("machine shares weight table with caller")
	}
}

func TestAnalyze(t *testing.T) {
	m := referenceMachine(t)
	analysis, err := m.Analyze(0)
	if err != nil {
		t.Fatal(err)
	}
	want := map[model.Symbol]int{
		model.Blank:         4 + 4 + 3 + 3 + 3 + 3 + 3 + 3 + 3 + 3 + 3,
		model.Seven:         2,
		model.SingleBar:     24,
		model.DoubleDiamond: 1,
		model.TripleBar:     2,
		model.Cherry:        1,
		model.DoubleBar:     7,
	}
	total := 0
	for _, a := range analysis {
		if a.Count != want[a.Symbol] {
			t.Errorf("%s count = %d, want %d", a.Symbol, a.Count, want[a.Symbol])
		}
		total += a.Count
		if math.Abs(a.Percentage-float64(a.Count)/72*100) > 1e-9 {
			t.Errorf("%s percentage = %v", a.Symbol, a.Percentage)
		}
	}
	if total != ReferenceTotal {
		t.Fatalf("analysis total = %d", total)
	}
	if _, err := m.Analyze(3); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("Analyze(3) err = %v", err)
	}
}

func TestPickStop_IndexesStopList(t *testing.T) {
	m := referenceMachine(t)
	list, _ := m.StopList(0)
	for i, pos := range list {
		u := (float64(i) + 0.5) / float64(len(list))
		stop, err := m.PickStop(0, rng.Func(func() float64 { return u }))
		if err != nil {
			t.Fatal(err)
		}
		if stop.Position != pos {
			t.Fatalf("draw %v: position %d, want %d", u, stop.Position, pos)
		}
		if stop.Symbol != referenceStrip[pos] {
			t.Fatalf("draw %v: symbol %s, want %s", u, stop.Symbol, referenceStrip[pos])
		}
	}
}

func TestPickStop_Bounds(t *testing.T) {
	m := referenceMachine(t)
	if _, err := m.PickStop(0, rng.Func(func() float64 { return 0 })); err != nil {
		t.Fatal(err)
	}
	stop, err := m.PickStop(2, rng.Func(func() float64 { return math.Nextafter(1, 0) }))
	if err != nil {
		t.Fatal(err)
	}
	if stop.Position != 21 {
		t.Fatalf("largest draw landed on %d, want 21", stop.Position)
	}
	for _, reel := range []int{-1, 3} {
		if _, err := m.PickStop(reel, rng.NewSeeded(1, 0)); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("PickStop(%d) err = %v, want ErrOutOfRange", reel, err)
		}
	}
}

func TestSpin_SeedReproducible(t *testing.T) {
	m := referenceMachine(t)
	a := rng.NewSeeded(2024, 0)
	b := rng.NewSeeded(2024, 0)
	for i := 0; i < 1000; i++ {
		if m.Spin(a) != m.Spin(b) {
			t.Fatalf("spin %d differs for the same seed", i)
		}
	}
}

func TestSpin_UsesReelsInOrder(t *testing.T) {
	m := referenceMachine(t)
	draws := []float64{0, 0.5, math.Nextafter(1, 0)}
	i := 0
	src := rng.Func(func() float64 {
		v := draws[i]
		i++
		return v
	})
	out := m.Spin(src)
	if out.Stops[0].Position != 0 || out.Stops[2].Position != 21 {
		t.Fatalf("unexpected stops %+v", out.Stops)
	}
	list, _ := m.StopList(1)
	if out.Stops[1].Position != list[36] {
		t.Fatalf("middle reel stop %d, want %d", out.Stops[1].Position, list[36])
	}
}

// χ² по позициям: 20 степеней свободы (21 позиция с ненулевым весом),
// критическое значение 45.31 при уровне 0.001.
func TestPickStop_ChiSquareCoverage(t *testing.T) {
	m := referenceMachine(t)
	const draws = 200_000
	const critical = 45.31

	for reel := 0; reel < ReelCount; reel++ {
		src := rng.NewSeeded(99, uint64(reel))
		counts := make([]int, PhysicalLength)
		for i := 0; i < draws; i++ {
			stop, err := m.PickStop(reel, src)
			if err != nil {
				t.Fatal(err)
			}
			counts[stop.Position]++
		}

		weights, _ := m.WeightsByPosition(reel)
		chi := 0.0
		for pos, w := range weights {
			if w == 0 {
				if counts[pos] != 0 {
					t.Fatalf("reel %d: zero-weight position %d drawn %d times", reel, pos, counts[pos])
				}
				continue
			}
			expected := float64(draws) * float64(w) / ReferenceTotal
			d := float64(counts[pos]) - expected
			chi += d * d / expected
		}
		if chi > critical {
			t.Errorf("reel %d: chi-square %.2f exceeds %.2f", reel, chi, critical)
		}
	}
}
