package payout

import "classic_slot/internal/model"

// Evaluate оценивает тройку символов. Правила проверяются по порядку, срабатывает первое.
// coins не проверяется: это делает вызывающая сторона.
func (p Paytable) Evaluate(symbols [3]model.Symbol, coins int) model.PayoutResult {
	// Считаем вайлды, остальные символы откладываем
	wilds := 0
	nonWild := make([]model.Symbol, 0, len(symbols))
	for _, s := range symbols {
		if s == model.Wild {
			wilds++
		} else {
			nonWild = append(nonWild, s)
		}
	}

	// Три вайлда - джекпот, множитель не применяется
	if wilds == 3 {
		return model.PayoutResult{Category: model.Jackpot, Payout: p[model.Jackpot] * coins}
	}

	mult := wildMultiplier(wilds)

	// Тройка с заменой вайлдами
	if sym := nonWild[0]; allEqual(nonWild) {
		if base := p[model.Category(sym)]; base > 0 {
			return model.PayoutResult{Category: model.Category(sym), Payout: base * mult * coins}
		}
	}

	// Любые три BAR вперемешку (вайлд тоже считается)
	mixed := true
	for _, s := range symbols {
		if !s.IsBar() && s != model.Wild {
			mixed = false
			break
		}
	}
	if mixed {
		return model.PayoutResult{Category: model.MixedBars, Payout: p[model.MixedBars] * mult * coins}
	}

	// Вишни: вайлды не считаются вишнями, но множитель применяется
	cherries := 0
	for _, s := range symbols {
		if s == model.Cherry {
			cherries++
		}
	}
	if cherries > 0 {
		c := model.CherryCategory(cherries)
		return model.PayoutResult{Category: c, Payout: p[c] * mult * coins}
	}

	return model.PayoutResult{Category: model.Lose, Payout: 0}
}

// wildMultiplier каждый вайлд удваивает выплату
func wildMultiplier(wilds int) int {
	switch wilds {
	case 2:
		return 4
	case 1:
		return 2
	default:
		return 1
	}
}

func allEqual(symbols []model.Symbol) bool {
	for _, s := range symbols[1:] {
		if s != symbols[0] {
			return false
		}
	}
	return true
}
