package components

// EffectKind 瞬时特效类型
type EffectKind int

const (
	// EffectSplash 受击水花
	EffectSplash EffectKind = iota
	// EffectBulletSpawn 子弹出生/消失时的弹出特效
	EffectBulletSpawn
)

// String 返回特效类型名称（日志用）
func (k EffectKind) String() string {
	switch k {
	case EffectSplash:
		return "Splash"
	case EffectBulletSpawn:
		return "BulletSpawn"
	default:
		return "Unknown"
	}
}

// EffectComponent 带自动过期的短暂标记，寿命由 LifetimeComponent 管理
type EffectComponent struct {
	Kind     EffectKind
	Radius   float64 // 绘制半径（格）
	Progress float64 // 动画进度 0 ~ 1
}
