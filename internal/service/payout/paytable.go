package payout

import (
	"classic_slot/internal/model"
	"classic_slot/internal/service/reel"
	"fmt"
)

// Paytable базовая выплата за 1 монету по категориям
type Paytable map[model.Category]int

// Категории, без которых оценка не определена
var requiredCategories = []model.Category{
	model.Jackpot, model.MixedBars, model.Cherry3, model.Cherry2, model.Cherry1,
}

// NewPaytable проверяет таблицу выплат и возвращает её копию
func NewPaytable(table map[model.Category]int) (Paytable, error) {
	for _, c := range requiredCategories {
		if _, ok := table[c]; !ok {
			return nil, fmt.Errorf("%w: paytable has no entry for %s", reel.ErrConfiguration, c)
		}
	}
	p := make(Paytable, len(table))
	for c, v := range table {
		if c == model.Lose {
			return nil, fmt.Errorf("%w: %s cannot carry a payout", reel.ErrConfiguration, c)
		}
		if v < 0 {
			return nil, fmt.Errorf("%w: negative payout %d for %s", reel.ErrConfiguration, v, c)
		}
		p[c] = v
	}
	return p, nil
}

// Reference таблица выплат эталонной конфигурации
func Reference() Paytable {
	return Paytable{
		model.Jackpot:        800,
		model.CategorySeven:  80,
		model.CategoryTriple: 40,
		model.CategoryDouble: 25,
		model.CategorySingle: 10,
		model.Cherry3:        10,
		model.MixedBars:      5,
		model.Cherry2:        5,
		model.Cherry1:        2,
	}
}

// Copy копия таблицы для отдачи наружу
func (p Paytable) Copy() map[model.Category]int {
	out := make(map[model.Category]int, len(p))
	for c, v := range p {
		out[c] = v
	}
	return out
}
