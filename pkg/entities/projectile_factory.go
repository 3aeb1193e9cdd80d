package entities

import (
	"github.com/gonewx/ammodillo/pkg/components"
	"github.com/gonewx/ammodillo/pkg/config"
	"github.com/gonewx/ammodillo/pkg/ecs"
	"github.com/gonewx/ammodillo/pkg/utils"
)

// NewProjectile 创建子弹实体
//
// 参数:
//   - em: 实体管理器
//   - cfg: 子弹参数（半径、伤害、击退、寿命、拖尾）
//   - pos: 出生位置（格）
//   - vel: 速度（格/秒）
//   - friendly: true 为玩家方子弹，只能伤害敌人
//
// 返回:
//   - ecs.EntityID: 子弹实体ID
func NewProjectile(em *ecs.EntityManager, cfg config.BulletConfig, pos, vel utils.Vec2, friendly bool) ecs.EntityID {
	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.PositionComponent{X: pos.X, Y: pos.Y})
	ecs.AddComponent(em, id, &components.VelocityComponent{VX: vel.X, VY: vel.Y})
	ecs.AddComponent(em, id, &components.CollisionComponent{HitRadius: cfg.HitRadius})
	ecs.AddComponent(em, id, &components.ProjectileComponent{
		Friendly:   friendly,
		Damage:     cfg.Damage,
		Knockback:  cfg.Knockback,
		TimeToLive: cfg.TimeToLive,
	})
	ecs.AddComponent(em, id, components.NewTrailComponent(cfg.TrailLength, cfg.TrailPeriod, pos.X, pos.Y))

	return id
}
