package utils

import "math"

// 缓动函数
//
// 输入进度 t 会先被钳制到 [0, 1]，返回值同样位于 [0, 1]。
// 过场动画用它们把线性的 tick 进度转换为更自然的曲线。

func clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}

// EaseOutCubic 三次方缓出：开始快，结束慢
// f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	t = clamp01(t)
	return 1 - math.Pow(1-t, 3)
}

// EaseInOutCubic 三次方缓入缓出
func EaseInOutCubic(t float64) float64 {
	t = clamp01(t)
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// Lerp 在 a 和 b 之间按 t 插值（t 不钳制）
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
