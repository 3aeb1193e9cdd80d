package behavior

import (
	"log"
	"math"
	"math/rand"

	"github.com/gonewx/ammodillo/pkg/components"
	"github.com/gonewx/ammodillo/pkg/config"
	"github.com/gonewx/ammodillo/pkg/ecs"
	"github.com/gonewx/ammodillo/pkg/entities"
	"github.com/gonewx/ammodillo/pkg/game"
	"github.com/gonewx/ammodillo/pkg/systems"
	"github.com/gonewx/ammodillo/pkg/utils"
)

// ActorArenaPush 敌人离开竞技场时每帧获得的回拉速度
const ActorArenaPush = 3.0

// FacingThreshold 玩家与敌人横向距离超过该值时才转身
const FacingThreshold = 1.0

// ActorSystem 处理所有敌人的行为逻辑
//
// 每帧对每个敌人执行：减速 → 射击计时 → 射击策略 → 转向 → 限速 → 竞技场回拉 → 位移。
// 射击策略按 ActorKind 分发到各自的处理函数；休眠中的 King 只减速和位移。
//
// 同时实现 systems.ActorHitter（友方子弹命中）与 systems.BossActivator（唤醒 Boss）。
type ActorSystem struct {
	entityManager *ecs.EntityManager
	stats         *config.ActorStatsConfig
	bullet        config.BulletConfig
	bounds        utils.ArenaBounds
	effects       *systems.EffectSpawner
	gameState     *game.GameState
	rng           *rand.Rand
}

// NewActorSystem 创建敌人行为系统
//
// 参数:
//   - em: EntityManager 实例
//   - stats: 敌人属性表（Boss 弹幕参数从这里读取）
//   - bullet: 敌人子弹参数
//   - bounds: 竞技场边界
//   - fx: 反馈生成器（特效、震屏、音效）
//   - gs: 对局状态（用于击杀计数，可以为 nil）
//   - rng: 随机源
func NewActorSystem(em *ecs.EntityManager, stats *config.ActorStatsConfig, bullet config.BulletConfig, bounds utils.ArenaBounds, fx *systems.EffectSpawner, gs *game.GameState, rng *rand.Rand) *ActorSystem {
	return &ActorSystem{
		entityManager: em,
		stats:         stats,
		bullet:        bullet,
		bounds:        bounds,
		effects:       fx,
		gameState:     gs,
		rng:           rng,
	}
}

// actorContext 单个敌人一帧内需要的组件
type actorContext struct {
	id     ecs.EntityID
	actor  *components.ActorComponent
	pos    *components.PositionComponent
	vel    *components.VelocityComponent
	player utils.Vec2
	// hasPlayer 为 false 时敌人不转向也不射击
	hasPlayer bool
}

func (c *actorContext) position() utils.Vec2 {
	return utils.Vec2{X: c.pos.X, Y: c.pos.Y}
}

func (c *actorContext) push(v utils.Vec2) {
	c.vel.VX += v.X
	c.vel.VY += v.Y
}

// Update 更新所有敌人
func (s *ActorSystem) Update(deltaTime float64) {
	player, hasPlayer := s.playerPosition()

	ids := ecs.GetEntitiesWith3[*components.ActorComponent, *components.PositionComponent, *components.VelocityComponent](s.entityManager)
	for _, id := range ids {
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}
		ctx := &actorContext{id: id, player: player, hasPlayer: hasPlayer}
		ctx.actor, _ = ecs.GetComponent[*components.ActorComponent](s.entityManager, id)
		ctx.pos, _ = ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		ctx.vel, _ = ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
		s.updateActor(ctx, deltaTime)
	}
}

func (s *ActorSystem) updateActor(ctx *actorContext, dt float64) {
	actor := ctx.actor

	decay := math.Pow(actor.Deceleration, dt)
	ctx.vel.VX *= decay
	ctx.vel.VY *= decay

	dormant := actor.Kind == components.ActorKing && !actor.Active
	if dormant {
		// 休眠的 Boss 由入场演出控制速度
		s.move(ctx, dt)
		return
	}

	actor.SinceLastBullet += dt
	actor.RecoilLock.Tick(dt)

	if ctx.hasPlayer {
		switch actor.Kind {
		case components.ActorBasic, components.ActorChick:
			s.handleBasicFiring(ctx)
		case components.ActorBursty:
			s.handleBurstyFiring(ctx)
		case components.ActorKing:
			s.handleKingFiring(ctx)
		}
	}

	s.steer(ctx, dt)

	if !s.bounds.Contains(ctx.position()) {
		ctx.push(utils.Normalize(ctx.position(), -ActorArenaPush))
	}

	s.move(ctx, dt)
	s.updatePresentation(ctx, dt)
}

// steer 朝目标加速并限速
func (s *ActorSystem) steer(ctx *actorContext, dt float64) {
	actor := ctx.actor

	var target utils.Vec2
	switch actor.Mode {
	case components.ModeFollowPosition:
		target = utils.Vec2{X: actor.TargetX, Y: actor.TargetY}
	default:
		if !ctx.hasPlayer {
			return
		}
		target = ctx.player
	}

	diff := utils.Sub(target, ctx.position())
	v := utils.Add(utils.Vec2{X: ctx.vel.VX, Y: ctx.vel.VY}, utils.Normalize(diff, actor.Accel*dt))

	limit := actor.MaxSpeed
	if actor.RecoilLock.Active {
		limit = math.Min(limit, s.kingStats().RecoilLockSpeed)
	}
	v = utils.ClampMagnitude(v, limit)
	ctx.vel.VX, ctx.vel.VY = v.X, v.Y
}

func (s *ActorSystem) move(ctx *actorContext, dt float64) {
	ctx.pos.X += ctx.vel.VX * dt
	ctx.pos.Y += ctx.vel.VY * dt
}

// updatePresentation 朝向与跳跃计时，只影响绘制
func (s *ActorSystem) updatePresentation(ctx *actorContext, dt float64) {
	actor := ctx.actor
	if ctx.hasPlayer {
		if ctx.player.X < ctx.pos.X-FacingThreshold {
			actor.Facing = -1
		} else if ctx.player.X > ctx.pos.X+FacingThreshold {
			actor.Facing = 1
		}
	}
	if actor.Kind == components.ActorChick {
		actor.HopTimer += dt
	}
}

// fireBullet 从敌人位置发射一颗敌方子弹
// 子弹在本帧不参与碰撞
func (s *ActorSystem) fireBullet(ctx *actorContext, velocity utils.Vec2) ecs.EntityID {
	id := entities.NewProjectile(s.entityManager, s.bullet, ctx.position(), velocity, false)
	if proj, ok := ecs.GetComponent[*components.ProjectileComponent](s.entityManager, id); ok {
		proj.Fresh = true
	}
	return id
}

// fireAtPlayer 朝玩家发射一颗子弹并施加后坐力
func (s *ActorSystem) fireAtPlayer(ctx *actorContext) {
	actor := ctx.actor
	actor.SinceLastBullet = 0

	velocity := utils.Normalize(utils.Sub(ctx.player, ctx.position()), actor.BulletSpeed)
	ctx.push(utils.Normalize(velocity, -actor.RecoilSpeed))
	s.fireBullet(ctx, velocity)
	s.effects.BulletSpawn(ctx.position())
}

// fireRing 一次性发射均匀分布的一整圈子弹
func (s *ActorSystem) fireRing(ctx *actorContext, count int, speed float64) {
	for i := 0; i < count; i++ {
		angle := float64(i) / float64(count) * 2 * math.Pi
		s.fireBullet(ctx, utils.Normalize(utils.AngleVec(angle), speed))
	}
	s.effects.BulletSpawn(ctx.position())
}

func (s *ActorSystem) playerPosition() (utils.Vec2, bool) {
	ids := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](s.entityManager)
	if len(ids) == 0 {
		return utils.Vec2{}, false
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, ids[0])
	return utils.Vec2{X: pos.X, Y: pos.Y}, true
}

func (s *ActorSystem) kingStats() config.ActorStats {
	stats, _ := s.stats.GetActorStats(config.ActorKindKing)
	return stats
}

// Activate 唤醒休眠的 Boss
// 激活后 Boss 开始射击，但直到演出进入激活阶段才加入主敌人集合
func (s *ActorSystem) Activate(actorID ecs.EntityID) {
	actor, ok := ecs.GetComponent[*components.ActorComponent](s.entityManager, actorID)
	if !ok || actor.Active {
		return
	}
	actor.Active = true
	actor.SinceLastBullet = 0
	log.Printf("[ActorSystem] %s %d activated (pattern: %s)", actor.Kind, actorID, actor.Pattern)
}

// HitActor 敌人被友方子弹击中
//
// 扣血、生成水花、沿子弹方向击退，并标记子弹删除。
// 生命值降到 0 时只触发一次死亡效果（羽毛、震屏、音效、击杀计数）。
func (s *ActorSystem) HitActor(actorID, bulletID ecs.EntityID) {
	actor, ok := ecs.GetComponent[*components.ActorComponent](s.entityManager, actorID)
	if !ok {
		return
	}
	health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, actorID)
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, actorID)
	vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, actorID)
	proj, _ := ecs.GetComponent[*components.ProjectileComponent](s.entityManager, bulletID)
	bulletPos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, bulletID)
	bulletVel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, bulletID)
	if health == nil || pos == nil || vel == nil || proj == nil || bulletPos == nil || bulletVel == nil {
		return
	}

	health.CurrentHealth -= proj.Damage
	s.effects.Splash(utils.Vec2{X: bulletPos.X, Y: bulletPos.Y})

	impact := utils.Normalize(utils.Vec2{X: bulletVel.VX, Y: bulletVel.VY}, proj.Knockback)
	vel.VX += impact.X
	vel.VY += impact.Y

	s.entityManager.DestroyEntity(bulletID)

	here := utils.Vec2{X: pos.X, Y: pos.Y}
	if health.CurrentHealth > 0 {
		s.effects.Feathers(here, actor.HitFeathers)
		s.effects.Play(game.SoundEnemyHit)
		return
	}
	if actor.Dying {
		return
	}

	actor.Dying = true
	s.entityManager.DestroyEntity(actorID)
	s.effects.Feathers(here, actor.DeathFeathers)
	if actor.Kind == components.ActorKing {
		s.effects.Shake(s.kingStats().DeathShake)
	}
	s.effects.Play(game.SoundEnemyDeath)
	if s.gameState != nil {
		s.gameState.RecordKill()
	}
	log.Printf("[ActorSystem] %s %d destroyed", actor.Kind, actorID)
}
