package slot

import (
	"classic_slot/internal/config"
	"classic_slot/internal/model"
	"classic_slot/internal/service/payout"
	"classic_slot/internal/service/reel"
	"fmt"
)

// Definition собранный из конфигурации автомат со всем, что нужно сервисам
type Definition struct {
	Machine       *reel.Machine
	Paytable      payout.Paytable
	Geometry      model.Geometry
	BigWinPerCoin int
}

// NewDefinition проверяет конфигурацию. Любая ошибка оборачивает reel.ErrConfiguration.
func NewDefinition(cfg config.MachineConfig) (*Definition, error) {
	names := cfg.Strip()
	strip := make([]model.Symbol, len(names))
	for i, name := range names {
		sym, err := model.ParseSymbol(name)
		if err != nil {
			return nil, fmt.Errorf("%w: strip position %d: %v", reel.ErrConfiguration, i, err)
		}
		strip[i] = sym
	}

	reels := cfg.Reels()
	tables := make([]reel.WeightTable, len(reels))
	for i, w := range reels {
		tables[i] = reel.WeightTable(w)
	}
	machine, err := reel.NewMachine(strip, tables, cfg.ReelTotal())
	if err != nil {
		return nil, err
	}

	raw := make(map[model.Category]int)
	for name, v := range cfg.Paytable() {
		c, err := model.ParseCategory(name)
		if err != nil {
			return nil, fmt.Errorf("%w: paytable: %v", reel.ErrConfiguration, err)
		}
		raw[c] = v
	}
	paytable, err := payout.NewPaytable(raw)
	if err != nil {
		return nil, err
	}

	heights := make(map[model.Symbol]int)
	for name, h := range cfg.SymbolHeights() {
		sym, err := model.ParseSymbol(name)
		if err != nil {
			return nil, fmt.Errorf("%w: symbol heights: %v", reel.ErrConfiguration, err)
		}
		heights[sym] = h
	}
	geometry, err := BuildGeometry(strip, heights)
	if err != nil {
		return nil, err
	}

	if cfg.BigWinPerCoin() <= 0 {
		return nil, fmt.Errorf("%w: big_win_per_coin must be positive", reel.ErrConfiguration)
	}

	return &Definition{
		Machine:       machine,
		Paytable:      paytable,
		Geometry:      geometry,
		BigWinPerCoin: cfg.BigWinPerCoin(),
	}, nil
}

// BuildGeometry раскладывает ленту по высотам символов сверху вниз
func BuildGeometry(strip []model.Symbol, heights map[model.Symbol]int) (model.Geometry, error) {
	g := model.Geometry{Stops: make([]model.GeometryStop, 0, len(strip))}
	offset := 0
	for i, sym := range strip {
		h := heights[sym]
		if h <= 0 {
			return model.Geometry{}, fmt.Errorf("%w: missing height for symbol %s", reel.ErrConfiguration, sym)
		}
		g.Stops = append(g.Stops, model.GeometryStop{
			Index:   i,
			Symbol:  sym,
			Height:  h,
			CenterY: float64(offset) + float64(h)/2,
		})
		offset += h
	}
	g.TotalHeight = offset
	return g, nil
}
