package slot

import (
	"classic_slot/internal/model"
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Spin крутит три барабана, оценивает тройку и записывает статистику
func (s *serv) Spin(_ context.Context, req model.SlotSpin) (*model.PlayResult, error) {
	if req.Coins < 1 {
		return nil, ErrInvalidCoins
	}

	s.srcMtx.Lock()
	outcome := s.def.Machine.Spin(s.src)
	s.srcMtx.Unlock()

	result := s.def.Paytable.Evaluate(outcome.Symbols(), req.Coins)
	s.statsRepo.Record(req.Coins, result.Payout)

	play := &model.PlayResult{
		Outcome: outcome,
		Result:  result,
		Coins:   req.Coins,
		BigWin:  result.Payout >= s.def.BigWinPerCoin*req.Coins,
	}

	if play.BigWin {
		s.log.Info("big win",
			zap.String("category", string(result.Category)),
			zap.Int("payout", result.Payout),
			zap.Int("coins", req.Coins),
		)
	}
	return play, nil
}

// Evaluate оценивает заданную тройку без вращения
func (s *serv) Evaluate(_ context.Context, req model.EvaluateRequest) (*model.PayoutResult, error) {
	if req.Coins < 1 {
		return nil, ErrInvalidCoins
	}

	var symbols [3]model.Symbol
	for i, name := range req.Symbols {
		sym, err := model.ParseSymbol(name)
		if err != nil {
			return nil, fmt.Errorf("%w: reel %d: %v", ErrInvalidSymbol, i+1, err)
		}
		symbols[i] = sym
	}

	result := s.def.Paytable.Evaluate(symbols, req.Coins)
	return &result, nil
}
