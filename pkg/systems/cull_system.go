package systems

import (
	"github.com/gonewx/ammodillo/pkg/components"
	"github.com/gonewx/ammodillo/pkg/ecs"
	"github.com/gonewx/ammodillo/pkg/utils"
)

// CullSystem 每帧唯一的清理点
//
// 先为寿命耗尽或出界的子弹生成弹出特效，再真正移除所有已标记的实体。
type CullSystem struct {
	entityManager *ecs.EntityManager
	effects       *EffectSpawner
}

// NewCullSystem 创建清理系统
func NewCullSystem(em *ecs.EntityManager, fx *EffectSpawner) *CullSystem {
	return &CullSystem{
		entityManager: em,
		effects:       fx,
	}
}

// Update 执行清理
//
// 返回:
//   - int: 本次移除的实体数量
func (s *CullSystem) Update() int {
	for _, id := range s.entityManager.MarkedEntities() {
		proj, ok := ecs.GetComponent[*components.ProjectileComponent](s.entityManager, id)
		if !ok || proj.InPocket || !IsProjectileDead(proj) {
			continue
		}
		if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id); ok && s.effects != nil {
			s.effects.BulletSpawn(utils.Vec2{X: pos.X, Y: pos.Y})
		}
	}
	return s.entityManager.RemoveMarkedEntities()
}
