package rng

import (
	cryptoRand "crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"math/rand/v2"
	"strconv"
)

// Source источник равномерных чисел в [0, 1)
type Source interface {
	Float64() float64
}

// Func адаптер функции к Source
type Func func() float64

func (f Func) Float64() float64 { return f() }

type cryptoSource struct{}

// Float64 берёт 53 бита из crypto/rand
func (cryptoSource) Float64() float64 {
	var buf [8]byte
	if _, err := cryptoRand.Read(buf[:]); err != nil {
		return rand.Float64()
	}
	u := binary.BigEndian.Uint64(buf[:]) >> 11
	return float64(u) / (1 << 53)
}

// Default криптостойкий источник, безопасен для конкурентного использования
func Default() Source { return cryptoSource{} }

// Seeded воспроизводимый поток PCG. Не потокобезопасен: один поток на воркер.
type Seeded struct {
	r *rand.Rand
}

// NewSeeded поток для пары (seed, stream). Разные stream дают независимые потоки.
func NewSeeded(seed, stream uint64) *Seeded {
	return &Seeded{r: rand.New(rand.NewPCG(seed, stream))}
}

func (s *Seeded) Float64() float64 { return s.r.Float64() }

// ParseSeed число как есть, любая другая строка через SHA256
func ParseSeed(text string) uint64 {
	if v, err := strconv.ParseUint(text, 10, 64); err == nil {
		return v
	}
	h := sha256.Sum256([]byte(text))
	return binary.LittleEndian.Uint64(h[:8])
}

// NewSeed случайный seed для прогонов без явного seed
func NewSeed() uint64 {
	var buf [8]byte
	if _, err := cryptoRand.Read(buf[:]); err != nil {
		return rand.Uint64()
	}
	return binary.LittleEndian.Uint64(buf[:])
}
