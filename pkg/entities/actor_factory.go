package entities

import (
	"fmt"
	"math/rand"

	"github.com/gonewx/ammodillo/pkg/components"
	"github.com/gonewx/ammodillo/pkg/config"
	"github.com/gonewx/ammodillo/pkg/ecs"
	"github.com/gonewx/ammodillo/pkg/utils"
)

// ParseActorKind 把配置中的类型名转换为 ActorKind
func ParseActorKind(kind string) (components.ActorKind, error) {
	switch kind {
	case config.ActorKindBasic:
		return components.ActorBasic, nil
	case config.ActorKindBursty:
		return components.ActorBursty, nil
	case config.ActorKindChick:
		return components.ActorChick, nil
	case config.ActorKindKing:
		return components.ActorKing, nil
	default:
		return 0, fmt.Errorf("unknown actor kind %q", kind)
	}
}

// NewActor 创建敌人实体
//
// 除 King 外，新敌人立即加入主敌人集合（Engaged）。King 以休眠状态创建，
// 由 Boss 演出在激活阶段加入。
//
// 参数:
//   - em: 实体管理器
//   - kind: 敌人类型
//   - stats: 该类型的属性
//   - pos: 出生位置（格）
//   - rng: 随机源（射击相位）
//
// 返回:
//   - ecs.EntityID: 敌人实体ID
func NewActor(em *ecs.EntityManager, kind components.ActorKind, stats config.ActorStats, pos utils.Vec2, rng *rand.Rand) ecs.EntityID {
	id := em.CreateEntity()

	actor := &components.ActorComponent{
		Kind:          kind,
		Accel:         stats.Accel,
		MaxSpeed:      stats.MaxSpeed,
		Deceleration:  stats.Deceleration,
		BulletPeriod:  stats.BulletPeriod,
		BulletSpeed:   stats.BulletSpeed,
		RecoilSpeed:   stats.RecoilSpeed,
		Clip:          stats.ClipSize,
		ClipSize:      stats.ClipSize,
		ReloadTime:    stats.ReloadTime,
		Mode:          components.ModeFollowPlayer,
		Engaged:       kind != components.ActorKing,
		DeathFeathers: stats.DeathFeathers,
		HitFeathers:   stats.HitFeathers,
		Facing:        -1,
	}

	switch {
	case stats.InitialDelay > 0:
		actor.SinceLastBullet = -stats.InitialDelay
	case stats.RandomPhase && rng != nil:
		// 随机相位，避免同一波敌人同时开火
		actor.SinceLastBullet = -rng.Float64() * stats.BulletPeriod
	}

	if kind == components.ActorKing {
		actor.BulletPeriod = stats.SprinklerPeriod
		actor.Pattern = components.PatternSprinkler
		actor.Mode = components.ModeFollowPosition
		actor.TargetX = stats.HoldPosition.X
		actor.TargetY = stats.HoldPosition.Y
	}

	ecs.AddComponent(em, id, &components.PositionComponent{X: pos.X, Y: pos.Y})
	ecs.AddComponent(em, id, &components.VelocityComponent{})
	ecs.AddComponent(em, id, &components.CollisionComponent{HitRadius: stats.HitRadius})
	ecs.AddComponent(em, id, &components.HealthComponent{CurrentHealth: stats.HP, MaxHealth: stats.HP})
	ecs.AddComponent(em, id, actor)

	return id
}

// NewActorFromPlacement 按波次表中的摆放创建敌人
func NewActorFromPlacement(em *ecs.EntityManager, cfg *config.GameConfig, placement config.ActorPlacement, rng *rand.Rand) (ecs.EntityID, error) {
	kind, err := ParseActorKind(placement.Kind)
	if err != nil {
		return 0, err
	}
	stats, ok := cfg.Actors.GetActorStats(placement.Kind)
	if !ok {
		return 0, fmt.Errorf("no stats for actor kind %q", placement.Kind)
	}
	pos, err := placement.Resolve(cfg.Arena)
	if err != nil {
		return 0, fmt.Errorf("failed to place %s: %w", placement.Kind, err)
	}
	return NewActor(em, kind, stats, pos.Vec(), rng), nil
}
