package game

import (
	"math"
	"math/rand"
)

// RNG 模拟使用的随机数源
// 所有随机抽样（原型选择、障碍物布置、掉落数值）都通过它进行，
// 测试中可以替换为固定序列
type RNG interface {
	Float64() float64
	Intn(n int) int
}

// NewRNG 创建基于种子的随机数源
func NewRNG(seed int64) RNG {
	return rand.New(rand.NewSource(seed))
}

// RandRange 返回 [min, max) 区间的随机浮点数
func RandRange(r RNG, min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + r.Float64()*(max-min)
}

// RandAngle 返回 [0, 2π) 的随机角度
func RandAngle(r RNG) float64 {
	return r.Float64() * 2 * math.Pi
}

// WeightedIndex 按权重随机选择一个下标
// 权重全为非正数时返回 0
func WeightedIndex(r RNG, weights []int) int {
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return 0
	}

	roll := r.Intn(total)
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if roll < w {
			return i
		}
		roll -= w
	}
	return len(weights) - 1
}

// FixedRNG 按固定序列循环返回值的随机源，用于重放与测试
// 序列为空时总是返回 0
type FixedRNG struct {
	Values []float64
	pos    int
}

// NewFixedRNG 创建固定序列随机源
func NewFixedRNG(values ...float64) *FixedRNG {
	return &FixedRNG{Values: values}
}

// Float64 返回序列中的下一个值（钳制到 [0, 1)）
func (f *FixedRNG) Float64() float64 {
	if len(f.Values) == 0 {
		return 0
	}
	v := f.Values[f.pos%len(f.Values)]
	f.pos++
	if v < 0 {
		return 0
	}
	if v >= 1 {
		return math.Nextafter(1, 0)
	}
	return v
}

// Intn 返回 [0, n) 的整数
func (f *FixedRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	i := int(f.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}
