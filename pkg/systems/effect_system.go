package systems

import (
	"github.com/gonewx/ammodillo/pkg/components"
	"github.com/gonewx/ammodillo/pkg/ecs"
)

// EffectSystem 推进瞬时特效的动画进度
// 特效的过期由 LifetimeSystem 统一处理，这里只根据已存在时间计算 Progress
type EffectSystem struct {
	entityManager *ecs.EntityManager
}

// NewEffectSystem 创建特效系统
func NewEffectSystem(em *ecs.EntityManager) *EffectSystem {
	return &EffectSystem{entityManager: em}
}

// Update 更新所有特效的进度（0 ~ 1）
func (s *EffectSystem) Update(deltaTime float64) {
	ids := ecs.GetEntitiesWith2[*components.EffectComponent, *components.LifetimeComponent](s.entityManager)
	for _, id := range ids {
		effect, _ := ecs.GetComponent[*components.EffectComponent](s.entityManager, id)
		lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		if lifetime.MaxLifetime <= 0 {
			effect.Progress = 1
			continue
		}
		effect.Progress = min(lifetime.CurrentLifetime/lifetime.MaxLifetime, 1)
	}
}
