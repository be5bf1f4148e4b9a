package slot

import (
	"classic_slot/internal/repository"
	"classic_slot/internal/service"
	"classic_slot/pkg/rng"
	"errors"
	"sync"

	"go.uber.org/zap"
)

var (
	ErrInvalidCoins  = errors.New("coins must be at least 1")
	ErrInvalidSymbol = errors.New("invalid symbol")
)

type serv struct {
	def       *Definition
	statsRepo repository.PlayStatsRepository
	log       *zap.Logger

	// источник не обязан быть потокобезопасным
	srcMtx sync.Mutex
	src    rng.Source
}

// NewSlotService Создать классический слот 3x1
func NewSlotService(
	def *Definition,
	statsRepo repository.PlayStatsRepository,
	src rng.Source,
	log *zap.Logger,
) service.SlotService {
	return &serv{
		def:       def,
		statsRepo: statsRepo,
		src:       src,
		log:       log,
	}
}
