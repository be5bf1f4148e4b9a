package reel

import (
	"classic_slot/internal/model"
	"fmt"
	"sort"
)

const (
	// Барабанов в автомате
	ReelCount = 3
	// Длина физической ленты в эталонной конфигурации
	PhysicalLength = 22
	// Длина виртуального барабана в эталонной конфигурации
	ReferenceTotal = 72
)

// Strip физическая лента символов. Позиция - индекс в срезе.
type Strip []model.Symbol

// SymbolAt символ на позиции ленты
func (s Strip) SymbolAt(position int) (model.Symbol, error) {
	if position < 0 || position >= len(s) {
		return "", fmt.Errorf("%w: position %d not in [0, %d)", ErrOutOfRange, position, len(s))
	}
	return s[position], nil
}

// WeightTable позиция на ленте -> сколько раз она встречается на виртуальном барабане.
// Ноль допустим и означает, что позиция никогда не выпадает.
type WeightTable map[int]int

// Sum сумма весов таблицы
func (w WeightTable) Sum() int {
	total := 0
	for _, c := range w {
		total += c
	}
	return total
}

// StopList развёрнутый виртуальный барабан: позиция p встречается weights[p] раз.
// Порядок элементов не важен, важен только состав.
type StopList []int

// Expand проверяет таблицу весов и разворачивает её в список остановок
func (s Strip) Expand(weights WeightTable, expectedTotal int) (StopList, error) {
	total := 0
	for pos, count := range weights {
		if pos < 0 || pos >= len(s) {
			return nil, fmt.Errorf("%w: weight for position %d outside strip of %d stops", ErrConfiguration, pos, len(s))
		}
		if count < 0 {
			return nil, fmt.Errorf("%w: negative weight %d for position %d", ErrConfiguration, count, pos)
		}
		// сумма не превышает expectedTotal, поэтому не переполняется
		if count > expectedTotal-total {
			return nil, fmt.Errorf("%w: virtual reel weights exceed %d at position %d", ErrConfiguration, expectedTotal, pos)
		}
		total += count
	}
	if total != expectedTotal {
		return nil, fmt.Errorf("%w: virtual reel weights must sum to %d, got %d", ErrConfiguration, expectedTotal, total)
	}
	for pos := range s {
		if _, ok := weights[pos]; !ok {
			return nil, fmt.Errorf("%w: missing weight for physical position %d", ErrConfiguration, pos)
		}
	}

	// Разворачиваем по возрастанию позиций, чтобы список был одинаковым от запуска к запуску
	list := make(StopList, 0, total)
	for pos := range s {
		for i := 0; i < weights[pos]; i++ {
			list = append(list, pos)
		}
	}
	return list, nil
}

// Machine неизменяемая модель автомата: лента, таблицы весов, развёрнутые барабаны.
// Создаётся один раз при старте и передаётся всем потребителям по указателю.
type Machine struct {
	strip   Strip
	total   int
	weights [ReelCount]WeightTable
	stops   [ReelCount]StopList
}

// NewMachine проверяет конфигурацию и строит автомат
func NewMachine(strip []model.Symbol, weights []WeightTable, expectedTotal int) (*Machine, error) {
	if len(strip) == 0 {
		return nil, fmt.Errorf("%w: physical reel is empty", ErrConfiguration)
	}
	for i, sym := range strip {
		if _, err := model.ParseSymbol(string(sym)); err != nil {
			return nil, fmt.Errorf("%w: position %d: %v", ErrConfiguration, i, err)
		}
	}
	if expectedTotal <= 0 {
		return nil, fmt.Errorf("%w: virtual reel total must be positive, got %d", ErrConfiguration, expectedTotal)
	}
	if len(weights) != ReelCount {
		return nil, fmt.Errorf("%w: expected %d weight tables, got %d", ErrConfiguration, ReelCount, len(weights))
	}

	m := &Machine{
		strip: append(Strip(nil), strip...),
		total: expectedTotal,
	}
	for r, table := range weights {
		list, err := m.strip.Expand(table, expectedTotal)
		if err != nil {
			return nil, fmt.Errorf("reel %d: %w", r+1, err)
		}
		m.stops[r] = list
		m.weights[r] = copyTable(table)
	}
	return m, nil
}

func copyTable(t WeightTable) WeightTable {
	c := make(WeightTable, len(t))
	for k, v := range t {
		c[k] = v
	}
	return c
}

// SymbolAt символ на позиции физической ленты
func (m *Machine) SymbolAt(position int) (model.Symbol, error) {
	return m.strip.SymbolAt(position)
}

// Strip копия физической ленты
func (m *Machine) Strip() []model.Symbol {
	return append([]model.Symbol(nil), m.strip...)
}

// Total длина виртуального барабана
func (m *Machine) Total() int {
	return m.total
}

func (m *Machine) checkReel(reel int) error {
	if reel < 0 || reel >= ReelCount {
		return fmt.Errorf("%w: reel %d not in [0, %d)", ErrOutOfRange, reel, ReelCount)
	}
	return nil
}

// Weights копия таблицы весов барабана
func (m *Machine) Weights(reel int) (WeightTable, error) {
	if err := m.checkReel(reel); err != nil {
		return nil, err
	}
	return copyTable(m.weights[reel]), nil
}

// WeightsByPosition веса барабана в порядке позиций ленты
func (m *Machine) WeightsByPosition(reel int) ([]int, error) {
	if err := m.checkReel(reel); err != nil {
		return nil, err
	}
	out := make([]int, len(m.strip))
	for pos := range m.strip {
		out[pos] = m.weights[reel][pos]
	}
	return out, nil
}

// StopList копия развёрнутого барабана
func (m *Machine) StopList(reel int) (StopList, error) {
	if err := m.checkReel(reel); err != nil {
		return nil, err
	}
	return append(StopList(nil), m.stops[reel]...), nil
}

// Analyze распределение весов барабана по символам, в порядке первого появления на ленте
func (m *Machine) Analyze(reel int) ([]model.ReelAnalysis, error) {
	if err := m.checkReel(reel); err != nil {
		return nil, err
	}
	index := make(map[model.Symbol]int)
	var out []model.ReelAnalysis
	for pos, sym := range m.strip {
		i, ok := index[sym]
		if !ok {
			i = len(out)
			index[sym] = i
			out = append(out, model.ReelAnalysis{Symbol: sym})
		}
		count := m.weights[reel][pos]
		out[i].Count += count
		out[i].Positions = append(out[i].Positions, model.PositionWeight{Position: pos, Count: count})
	}
	for i := range out {
		out[i].Percentage = float64(out[i].Count) / float64(m.total) * 100
		sort.Slice(out[i].Positions, func(a, b int) bool {
			return out[i].Positions[a].Position < out[i].Positions[b].Position
		})
	}
	return out, nil
}
