package utils

// ArenaBounds 椭圆形竞技场边界
//
// 点在椭圆 x²/(a-m)² + y²/(b-m)² <= 1 内即视为在场内；
// 另外，距离安全区中心小于 SafeRadius 的点总是视为在场内（Boss 入口拱门附近）。
type ArenaBounds struct {
	MajorRadius float64 // 半长轴 a（X 方向）
	MinorRadius float64 // 半短轴 b（Y 方向）
	Margin      float64 // 向内收缩量 m
	SafeCenter  Vec2    // 安全区中心
	SafeRadius  float64 // 安全区半径
}

// Contains 判断点是否在竞技场内
func (b ArenaBounds) Contains(p Vec2) bool {
	if DistanceSq(p, b.SafeCenter) < b.SafeRadius*b.SafeRadius {
		return true
	}
	ax := b.MajorRadius - b.Margin
	by := b.MinorRadius - b.Margin
	return p.X*p.X/(ax*ax)+p.Y*p.Y/(by*by) <= 1
}
