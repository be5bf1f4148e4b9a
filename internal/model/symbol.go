package model

import "fmt"

// Symbol имя символа на физической ленте барабана
type Symbol string

const (
	Blank         Symbol = "BLANK"
	SingleBar     Symbol = "SINGLE_BAR"
	DoubleBar     Symbol = "DOUBLE_BAR"
	TripleBar     Symbol = "TRIPLE_BAR"
	Seven         Symbol = "SEVEN"
	DoubleDiamond Symbol = "DOUBLE_DIAMOND"
	Cherry        Symbol = "CHERRY"
)

// Wild заменяет любой символ при поиске тройки и удваивает выплату
const Wild = DoubleDiamond

var AllSymbols = []Symbol{Blank, SingleBar, DoubleBar, TripleBar, Seven, DoubleDiamond, Cherry}

// ParseSymbol возвращает символ по имени
func ParseSymbol(name string) (Symbol, error) {
	for _, s := range AllSymbols {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown symbol %q", name)
}

// IsBar true для всех видов BAR
func (s Symbol) IsBar() bool {
	return s == SingleBar || s == DoubleBar || s == TripleBar
}

// Category выигрышная категория
type Category string

const (
	Jackpot        Category = "JACKPOT"
	CategorySeven  Category = "SEVEN"
	CategoryTriple Category = "TRIPLE_BAR"
	CategoryDouble Category = "DOUBLE_BAR"
	CategorySingle Category = "SINGLE_BAR"
	Cherry3        Category = "CHERRY_3"
	MixedBars      Category = "MIXED_BARS"
	Cherry2        Category = "CHERRY_2"
	Cherry1        Category = "CHERRY_1"
	Lose           Category = "LOSE"
)

// AllCategories в порядке убывания базовой выплаты (как в таблице выплат)
var AllCategories = []Category{
	Jackpot, CategorySeven, CategoryTriple, CategoryDouble, CategorySingle,
	Cherry3, MixedBars, Cherry2, Cherry1, Lose,
}

// ParseCategory возвращает категорию по имени
func ParseCategory(name string) (Category, error) {
	for _, c := range AllCategories {
		if string(c) == name {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", name)
}

// CherryCategory категория для n вишен (1..3)
func CherryCategory(n int) Category {
	switch n {
	case 3:
		return Cherry3
	case 2:
		return Cherry2
	case 1:
		return Cherry1
	default:
		return Lose
	}
}
