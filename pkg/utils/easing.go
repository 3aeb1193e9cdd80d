package utils

// 缓动与插值
//
// 进度参数 t 都在 [0, 1] 内；只用于绘制，模拟逻辑不依赖这些函数。

// EaseOutQuad 二次方缓出：开始快，结束慢
// f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// EaseInQuad 二次方缓入：开始慢，结束快
// f(t) = t²
func EaseInQuad(t float64) float64 {
	return t * t
}

// PingPong 把 [0, 1] 映射为先升后降的三角波：0 → 1 → 0
func PingPong(t float64) float64 {
	if t < 0.5 {
		return t * 2
	}
	return (1 - t) * 2
}

// Clamp01 把 t 限制在 [0, 1]
func Clamp01(t float64) float64 {
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	default:
		return t
	}
}

// Lerp 线性插值，t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
