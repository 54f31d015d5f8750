// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed возвращает сид, с которым был создан генератор.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range возвращает число в диапазоне [min, max). При min >= max возвращается min.
func (s *PRNGService) Range(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + s.rng.Float64()*(max-min)
}

// ChooseIndex выбирает индекс из n элементов: случайно, если random, иначе первый.
// Для пустого набора возвращает -1.
func (s *PRNGService) ChooseIndex(n int, random bool) int {
	if n <= 0 {
		return -1
	}
	if !random {
		return 0
	}
	return s.rng.Intn(n)
}

// ChooseSpawnIndex выбирает точку спавна. Если allowSame == false и точек
// больше одной, результат никогда не совпадает с last.
func (s *PRNGService) ChooseSpawnIndex(n, last int, random, allowSame bool) int {
	if n <= 0 {
		return -1
	}
	if !random {
		return 0
	}
	if allowSame || n == 1 || last < 0 || last >= n {
		return s.rng.Intn(n)
	}
	// Выбираем среди n-1 оставшихся и сдвигаем за last, без повторных бросков
	idx := s.rng.Intn(n - 1)
	if idx >= last {
		idx++
	}
	return idx
}
