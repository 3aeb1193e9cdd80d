package components

// PositionComponent 存储实体在竞技场坐标系中的位置（单位：格）
type PositionComponent struct {
	X float64
	Y float64
}
