package model

// Состояние статистики игры
type PlayState struct {
	TotalSpins   int // Сколько всего спинов сделано
	TotalWagered int // Сумма всех ставок, монет
	TotalWon     int // Сумма всех выплат, монет
	TotalHits    int // Спинов с выплатой

	CurrentRTP float64 // Текущий RTP = (TotalWon/TotalWagered)*100

	SpinWindow []SpinResult // Окно последних спинов
	WindowRTP  float64      // RTP в окне последних спинов
	WindowSize int          // Размер окна
}

// Результат спина для окна
type SpinResult struct {
	Coins  int
	Payout int
}
