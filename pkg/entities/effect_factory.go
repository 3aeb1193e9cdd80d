package entities

import (
	"github.com/gonewx/ammodillo/pkg/components"
	"github.com/gonewx/ammodillo/pkg/config"
	"github.com/gonewx/ammodillo/pkg/ecs"
	"github.com/gonewx/ammodillo/pkg/utils"
)

// NewSplash 创建受击水花，寿命到期后由 LifetimeSystem 标记删除
func NewSplash(em *ecs.EntityManager, cfg config.EffectsConfig, pos utils.Vec2) ecs.EntityID {
	return newEffect(em, components.EffectSplash, cfg.SplashRadius, cfg.SplashDuration, pos)
}

// NewBulletSpawn 创建子弹弹出特效（发射、接住、子弹消失时使用）
func NewBulletSpawn(em *ecs.EntityManager, cfg config.EffectsConfig, pos utils.Vec2) ecs.EntityID {
	return newEffect(em, components.EffectBulletSpawn, cfg.BulletSpawnRadius, cfg.BulletSpawnDuration, pos)
}

func newEffect(em *ecs.EntityManager, kind components.EffectKind, radius, duration float64, pos utils.Vec2) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: pos.X, Y: pos.Y})
	ecs.AddComponent(em, id, &components.EffectComponent{Kind: kind, Radius: radius})
	ecs.AddComponent(em, id, &components.LifetimeComponent{MaxLifetime: duration})
	return id
}
