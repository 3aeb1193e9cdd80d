package components

// CollisionComponent 定义实体的圆形碰撞体
// 两个实体相交当且仅当中心距离的平方 < 半径和的平方
type CollisionComponent struct {
	HitRadius float64 // 碰撞半径（格）
}
