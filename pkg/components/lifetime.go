package components

// LifetimeComponent 固定寿命的实体（羽毛、水花、弹出特效）
// CurrentLifetime 达到 MaxLifetime 时由 LifetimeSystem 标记删除
type LifetimeComponent struct {
	MaxLifetime     float64 // 寿命上限（秒）
	CurrentLifetime float64 // 已存在时间（秒）
	IsExpired       bool    // 已标记删除，不再累加
}
