package slot

type SpinRequest struct {
	Coins int `json:"coins"` // Ставка в монетах (>=1)
}

type Stop struct {
	Position int    `json:"position"` // Позиция на физической ленте 0-21
	Symbol   string `json:"symbol"`
}

type SpinResponse struct {
	Stops    [3]Stop   `json:"stops"`    // Остановки барабанов слева направо
	Symbols  [3]string `json:"symbols"`  // Выпавшая тройка
	Category string    `json:"category"` // Выигрышная категория или LOSE
	Payout   int       `json:"payout"`   // Выплата в монетах
	Coins    int       `json:"coins"`
	BigWin   bool      `json:"big_win"` // Выплата >= порога крупного выигрыша
}

type EvaluateRequest struct {
	Symbols [3]string `json:"symbols"`
	Coins   int       `json:"coins"`
}

type EvaluateResponse struct {
	Category string `json:"category"`
	Payout   int    `json:"payout"`
}

type PositionWeight struct {
	Position int `json:"position"`
	Count    int `json:"count"`
}

type ReelAnalysis struct {
	Symbol     string           `json:"symbol"`
	Count      int              `json:"count"` // Виртуальных остановок символа
	Percentage float64          `json:"percentage"`
	Positions  []PositionWeight `json:"positions"`
}

type GeometryStop struct {
	Index   int     `json:"index"`
	Symbol  string  `json:"symbol"`
	Height  int     `json:"height"`
	CenterY float64 `json:"center_y"`
}

type Geometry struct {
	Stops       []GeometryStop `json:"stops"`
	TotalHeight int            `json:"total_height"`
}

type MachineResponse struct {
	Strip     []string         `json:"strip"`
	ReelTotal int              `json:"reel_total"`
	Weights   [][]int          `json:"weights"` // Веса по позициям, по барабанам
	Analysis  [][]ReelAnalysis `json:"analysis"`
	Paytable  map[string]int   `json:"paytable"`
	Geometry  Geometry         `json:"geometry"`
}

type StatsResponse struct {
	TotalSpins   int     `json:"total_spins"`
	TotalWagered int     `json:"total_wagered"`
	TotalWon     int     `json:"total_won"`
	TotalHits    int     `json:"total_hits"`
	CurrentRTP   float64 `json:"current_rtp"` // %
	WindowRTP    float64 `json:"window_rtp"`  // % по последним window_size спинам
	WindowSize   int     `json:"window_size"`
}
