package reel

import "errors"

var (
	// ErrConfiguration неверная конфигурация автомата. Фатально при старте.
	ErrConfiguration = errors.New("configuration error")
	// ErrOutOfRange позиция или номер барабана вне допустимого диапазона
	ErrOutOfRange = errors.New("out of range")
)
