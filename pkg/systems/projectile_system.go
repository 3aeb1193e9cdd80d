package systems

import (
	"github.com/gonewx/ammodillo/pkg/components"
	"github.com/gonewx/ammodillo/pkg/ecs"
	"github.com/gonewx/ammodillo/pkg/utils"
)

// ProjectileSystem 子弹积分、拖尾采样、寿命与出界判定
//
// 寿命耗尽或出界的子弹只被标记删除；消失特效由 CullSystem 在清理时生成。
// 口袋中的子弹不参与更新。
type ProjectileSystem struct {
	entityManager *ecs.EntityManager
	bounds        utils.ArenaBounds
}

// NewProjectileSystem 创建子弹系统
func NewProjectileSystem(em *ecs.EntityManager, bounds utils.ArenaBounds) *ProjectileSystem {
	return &ProjectileSystem{
		entityManager: em,
		bounds:        bounds,
	}
}

// Update 推进所有飞行中的子弹
func (s *ProjectileSystem) Update(deltaTime float64) {
	ids := ecs.GetEntitiesWith3[*components.ProjectileComponent, *components.PositionComponent, *components.VelocityComponent](s.entityManager)
	for _, id := range ids {
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](s.entityManager, id)
		if proj.InPocket {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)

		proj.Age += deltaTime
		pos.X += vel.VX * deltaTime
		pos.Y += vel.VY * deltaTime

		if trail, ok := ecs.GetComponent[*components.TrailComponent](s.entityManager, id); ok && trail.Period > 0 {
			trail.SinceSample += deltaTime
			if trail.SinceSample >= trail.Period {
				trail.Push(pos.X, pos.Y)
				trail.SinceSample -= trail.Period
			}
		}

		if !s.bounds.Contains(utils.Vec2{X: pos.X, Y: pos.Y}) {
			proj.OutOfBounds = true
		}

		if IsProjectileDead(proj) {
			s.entityManager.DestroyEntity(id)
		}
	}
}

// IsProjectileDead 子弹是否因寿命耗尽或出界而死亡（区别于命中目标被吸收）
func IsProjectileDead(proj *components.ProjectileComponent) bool {
	return proj.OutOfBounds || proj.Age >= proj.TimeToLive
}
