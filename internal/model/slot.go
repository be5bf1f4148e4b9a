package model

// Stop остановка одного барабана: позиция на физической ленте и символ на ней
type Stop struct {
	Position int
	Symbol   Symbol
}

// SpinOutcome результат одного спина, по остановке на барабан
type SpinOutcome struct {
	Stops [3]Stop
}

// Symbols символы выпавшей тройки слева направо
func (o SpinOutcome) Symbols() [3]Symbol {
	return [3]Symbol{o.Stops[0].Symbol, o.Stops[1].Symbol, o.Stops[2].Symbol}
}

// PayoutResult результат оценки тройки символов
type PayoutResult struct {
	Category Category
	Payout   int
}

// Win true если тройка принесла выплату
func (r PayoutResult) Win() bool {
	return r.Payout > 0
}

type SlotSpin struct {
	Coins int
}

type EvaluateRequest struct {
	Symbols [3]string
	Coins   int
}

// PlayResult спин вместе с оценкой
type PlayResult struct {
	Outcome SpinOutcome
	Result  PayoutResult
	Coins   int
	BigWin  bool
}

// ReelAnalysis распределение весов одного барабана по символам
type ReelAnalysis struct {
	Symbol     Symbol
	Count      int
	Positions  []PositionWeight
	Percentage float64
}

type PositionWeight struct {
	Position int
	Count    int
}

// GeometryStop положение остановки на ленте для отрисовки
type GeometryStop struct {
	Index   int
	Symbol  Symbol
	Height  int
	CenterY float64
}

type Geometry struct {
	Stops       []GeometryStop
	TotalHeight int
}

// MachineInfo конфигурация автомата для отчётов и клиентов
type MachineInfo struct {
	Strip     []Symbol
	ReelTotal int
	Weights   [][]int
	Analysis  [][]ReelAnalysis
	Paytable  map[Category]int
	Geometry  Geometry
}

// PlayStats статистика спинов, сыгранных через API
type PlayStats struct {
	TotalSpins   int
	TotalWagered int
	TotalWon     int
	TotalHits    int
	CurrentRTP   float64
	WindowRTP    float64
	WindowSize   int
}
