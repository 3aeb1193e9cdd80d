package utils

import (
	"math"
	"math/rand"
)

// Vec2 是竞技场坐标系中的二维向量（单位：格）
// 值类型，不带身份，总是由持有者拷贝
type Vec2 struct {
	X, Y float64
}

// Normalize 将向量缩放到指定长度
//
// 零向量没有方向，此时返回 (magnitude, 0)，即沿 X 轴的默认方向。
// 子弹和推力向量在出生点附近经常为零，不能除以零。
//
// 参数:
//   - v: 输入向量
//   - magnitude: 目标长度（可以为负，表示反向）
//
// 返回:
//   - Vec2: 长度为 |magnitude| 的向量
func Normalize(v Vec2, magnitude float64) Vec2 {
	r := math.Sqrt(v.X*v.X + v.Y*v.Y)
	if r == 0 {
		return Vec2{X: magnitude, Y: 0}
	}
	return Vec2{X: v.X * magnitude / r, Y: v.Y * magnitude / r}
}

// Add 向量加法
func Add(a, b Vec2) Vec2 {
	return Vec2{X: a.X + b.X, Y: a.Y + b.Y}
}

// Sub 向量减法 a - b
func Sub(a, b Vec2) Vec2 {
	return Vec2{X: a.X - b.X, Y: a.Y - b.Y}
}

// Scale 向量数乘
func Scale(v Vec2, k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Magnitude 向量长度
func Magnitude(v Vec2) float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// DistanceSq 两点距离的平方
func DistanceSq(a, b Vec2) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// Distance 两点距离
func Distance(a, b Vec2) float64 {
	return math.Sqrt(DistanceSq(a, b))
}

// AngleVec 返回角度对应的单位向量 (sin a, cos a)
// 角度 0 指向 +Y（屏幕下方）
func AngleVec(angle float64) Vec2 {
	return Vec2{X: math.Sin(angle), Y: math.Cos(angle)}
}

// RandomAngleVec 返回随机方向的单位向量
func RandomAngleVec(rng *rand.Rand) Vec2 {
	return AngleVec(rng.Float64() * 2 * math.Pi)
}

// ClampMagnitude 若向量长度超过 max，则缩放到 max
func ClampMagnitude(v Vec2, max float64) Vec2 {
	if Magnitude(v) > max {
		return Normalize(v, max)
	}
	return v
}

// Colliding 判断两个圆是否相交
// 比较中心距离的平方与半径和的平方，避免开方；结果对参数顺序对称
func Colliding(a Vec2, radiusA float64, b Vec2, radiusB float64) bool {
	sum := radiusA + radiusB
	return DistanceSq(a, b) < sum*sum
}
