package simulation

import (
	"classic_slot/internal/model"
	"classic_slot/internal/service/reel"
)

// tally локальный агрегат одного воркера. Не потокобезопасен.
type tally struct {
	spins      int64
	wagered    int64
	won        int64
	hits       int64
	sumSquares float64
	outcomes   map[[3]model.Symbol]*model.OutcomeStat
	categories map[model.Category]int64
	positions  [reel.ReelCount][]int64
}

func newTally(stripLen int) *tally {
	t := &tally{
		outcomes:   make(map[[3]model.Symbol]*model.OutcomeStat),
		categories: make(map[model.Category]int64),
	}
	for r := range t.positions {
		t.positions[r] = make([]int64, stripLen)
	}
	return t
}

func (t *tally) add(out model.SpinOutcome, res model.PayoutResult, coins int) {
	t.spins++
	t.wagered += int64(coins)
	t.won += int64(res.Payout)
	if res.Win() {
		t.hits++
	}
	ret := float64(res.Payout) / float64(coins)
	t.sumSquares += ret * ret

	symbols := out.Symbols()
	stat, ok := t.outcomes[symbols]
	if !ok {
		stat = &model.OutcomeStat{Symbols: symbols, Category: res.Category, Payout: res.Payout}
		t.outcomes[symbols] = stat
	}
	stat.Count++
	t.categories[res.Category]++

	for r, s := range out.Stops {
		t.positions[r][s.Position]++
	}
}

// merge вливает o в t, o после этого не используется
func (t *tally) merge(o *tally) {
	t.spins += o.spins
	t.wagered += o.wagered
	t.won += o.won
	t.hits += o.hits
	t.sumSquares += o.sumSquares

	for k, s := range o.outcomes {
		if cur, ok := t.outcomes[k]; ok {
			cur.Count += s.Count
		} else {
			t.outcomes[k] = s
		}
	}
	for c, n := range o.categories {
		t.categories[c] += n
	}
	for r := range t.positions {
		for p, n := range o.positions[r] {
			t.positions[r][p] += n
		}
	}
}

func (t *tally) result() *model.SimulationResult {
	return &model.SimulationResult{
		TotalSpins:     t.spins,
		TotalWagered:   t.wagered,
		TotalWon:       t.won,
		TotalHits:      t.hits,
		SumSquares:     t.sumSquares,
		Outcomes:       t.outcomes,
		Categories:     t.categories,
		PositionCounts: t.positions,
	}
}
