package play_stats_repo

import (
	"classic_slot/internal/model"
	"classic_slot/internal/repository"
	repoModel "classic_slot/internal/repository/play_stats_repo/model"
	"sync"
)

// defaultWindowSize Количество последних спинов для RTP окна
const defaultWindowSize = 500

// Реализация репозитория статистики спинов.
// Только считает, на выбор остановок не влияет.
type StatsRepo struct {
	mtx   sync.RWMutex
	state repoModel.PlayState
}

// NewPlayStatsRepository Конструктор с пустой статистикой. windowSize <= 0 - размер по умолчанию
func NewPlayStatsRepository(windowSize int) repository.PlayStatsRepository {
	if windowSize <= 0 {
		windowSize = defaultWindowSize
	}
	return &StatsRepo{
		state: repoModel.PlayState{
			SpinWindow: make([]repoModel.SpinResult, 0, windowSize),
			WindowSize: windowSize,
		},
	}
}

// Stats Возвращает снимок статистики
func (r *StatsRepo) Stats() model.PlayStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return model.PlayStats{
		TotalSpins:   r.state.TotalSpins,
		TotalWagered: r.state.TotalWagered,
		TotalWon:     r.state.TotalWon,
		TotalHits:    r.state.TotalHits,
		CurrentRTP:   r.state.CurrentRTP,
		WindowRTP:    r.state.WindowRTP,
		WindowSize:   len(r.state.SpinWindow),
	}
}

// Record Обновление статистики после спина
func (r *StatsRepo) Record(coins, payout int) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.TotalSpins++
	r.state.TotalWagered += coins
	r.state.TotalWon += payout
	if payout > 0 {
		r.state.TotalHits++
	}
	if r.state.TotalWagered > 0 {
		r.state.CurrentRTP = float64(r.state.TotalWon) / float64(r.state.TotalWagered) * 100
	}

	// Добавляем спин в окно
	r.state.SpinWindow = append(r.state.SpinWindow, repoModel.SpinResult{
		Coins:  coins,
		Payout: payout,
	})

	// Поддерживаем размер окна
	if len(r.state.SpinWindow) > r.state.WindowSize {
		r.state.SpinWindow = r.state.SpinWindow[1:]
	}

	// Пересчитываем RTP в окне
	var windowWagered, windowWon int
	for _, spin := range r.state.SpinWindow {
		windowWagered += spin.Coins
		windowWon += spin.Payout
	}

	if windowWagered > 0 {
		r.state.WindowRTP = float64(windowWon) / float64(windowWagered) * 100
	} else {
		r.state.WindowRTP = 0
	}
}
