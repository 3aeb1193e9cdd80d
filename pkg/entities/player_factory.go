package entities

import (
	"github.com/gonewx/ammodillo/pkg/components"
	"github.com/gonewx/ammodillo/pkg/config"
	"github.com/gonewx/ammodillo/pkg/ecs"
)

// NewPlayer 创建玩家实体（出生点来自配置）
func NewPlayer(em *ecs.EntityManager, cfg *config.PlayerConfig) ecs.EntityID {
	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.PositionComponent{X: cfg.Spawn.X, Y: cfg.Spawn.Y})
	ecs.AddComponent(em, id, &components.VelocityComponent{})
	ecs.AddComponent(em, id, &components.CollisionComponent{HitRadius: cfg.HitRadius})
	ecs.AddComponent(em, id, &components.HealthComponent{CurrentHealth: cfg.MaxHP, MaxHealth: cfg.MaxHP})
	ecs.AddComponent(em, id, &components.PlayerComponent{
		Accel:             cfg.Accel,
		Deceleration:      cfg.Deceleration,
		MaxSpeed:          cfg.MaxSpeed,
		SinceLastDodge:    cfg.DodgeCooldown, // 开局即可闪避
		DodgeTime:         cfg.DodgeTime,
		DodgeSlowdownTime: cfg.DodgeSlowdownTime,
		DodgeCooldown:     cfg.DodgeCooldown,
		MinDodgeSpeed:     cfg.MinDodgeSpeed,
		DodgeSpeed:        cfg.DodgeSpeed(),
		NormalHitRadius:   cfg.HitRadius,
		DodgeHitRadius:    cfg.DodgeHitRadius,
		StunDuration:      cfg.StunDuration,
		BlinkDuration:     cfg.BlinkDuration,
		Pocket:            make([]ecs.EntityID, 0, cfg.PocketSize),
		PocketSize:        cfg.PocketSize,
		FireCooldown:      cfg.FireCooldown,
		SinceLastShot:     cfg.FireCooldown,
		Facing:            1,
	})

	return id
}
