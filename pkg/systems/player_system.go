package systems

import (
	"log"
	"math"

	"github.com/gonewx/ammodillo/pkg/components"
	"github.com/gonewx/ammodillo/pkg/config"
	"github.com/gonewx/ammodillo/pkg/ecs"
	"github.com/gonewx/ammodillo/pkg/game"
	"github.com/gonewx/ammodillo/pkg/utils"
)

// PlayerSystem 处理玩家的移动、闪避、眩晕、接弹与反击
//
// 三个状态相互独立：闪避（Dodging）、眩晕（Stun）、受击闪烁（Blink）。
// 闪避或眩晕期间忽略移动与射击输入；死亡后不再更新。
type PlayerSystem struct {
	entityManager *ecs.EntityManager
	cfg           *config.PlayerConfig
	bounds        utils.ArenaBounds
	effects       *EffectSpawner
	gameState     *game.GameState
}

// NewPlayerSystem 创建玩家系统
func NewPlayerSystem(em *ecs.EntityManager, cfg *config.PlayerConfig, bounds utils.ArenaBounds, fx *EffectSpawner, gs *game.GameState) *PlayerSystem {
	return &PlayerSystem{
		entityManager: em,
		cfg:           cfg,
		bounds:        bounds,
		effects:       fx,
		gameState:     gs,
	}
}

// PlayerID 返回玩家实体（场上最多一个玩家）
func (s *PlayerSystem) PlayerID() (ecs.EntityID, bool) {
	ids := ecs.GetEntitiesWith1[*components.PlayerComponent](s.entityManager)
	if len(ids) == 0 {
		return 0, false
	}
	return ids[0], true
}

// Update 推进玩家一帧
//
// 顺序：死亡检查 → 闪避请求 → 计时器 → 减速 → 输入 → 位移 → 竞技场约束 → 闪避速度与结束
func (s *PlayerSystem) Update(deltaTime float64, input utils.InputSnapshot) {
	for _, id := range ecs.GetEntitiesWith1[*components.PlayerComponent](s.entityManager) {
		s.updatePlayer(id, deltaTime, input)
	}
}

func (s *PlayerSystem) updatePlayer(id ecs.EntityID, dt float64, input utils.InputSnapshot) {
	pc, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
	if !ok {
		return
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
	health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)
	if pos == nil || vel == nil || health == nil {
		return
	}

	if health.CurrentHealth <= 0 && !pc.Dead {
		s.die(id, pc, pos)
	}
	if pc.Dead {
		return
	}

	if input.DodgePressed {
		s.Dodge(id)
	}

	pc.Stun.Tick(dt)
	pc.Blink.Tick(dt)
	pc.SinceLastDodge += dt
	pc.SinceLastShot += dt

	// 指数减速，与帧率无关
	decay := math.Pow(pc.Deceleration, dt)
	vel.VX *= decay
	vel.VY *= decay

	if !pc.Dodging && !pc.Stun.Active {
		intent := input.MoveIntent()
		v := utils.Add(utils.Vec2{X: vel.VX, Y: vel.VY}, utils.Scale(intent, pc.Accel*dt))
		v = utils.ClampMagnitude(v, pc.MaxSpeed)
		vel.VX, vel.VY = v.X, v.Y

		if input.Fire {
			s.ShootBullet(id, input.Cursor)
		}
	}

	pos.X += vel.VX * dt
	pos.Y += vel.VY * dt

	if !s.bounds.Contains(utils.Vec2{X: pos.X, Y: pos.Y}) {
		push := utils.Normalize(utils.Vec2{X: pos.X, Y: pos.Y}, -s.cfg.ArenaPush)
		vel.VX += push.X
		vel.VY += push.Y
		s.Stun(id, s.cfg.ArenaStun)
	}

	if vel.VX > 0 {
		pc.Facing = 1
	} else if vel.VX < 0 {
		pc.Facing = -1
	}

	if pc.Dodging {
		if pc.SinceLastDodge > pc.DodgeTime {
			s.endDodge(id, pc)
		} else if pc.SinceLastDodge < pc.DodgeSlowdownTime && (vel.VX != 0 || vel.VY != 0) {
			// 闪避初段强制保持冲刺速度
			v := utils.Normalize(utils.Vec2{X: vel.VX, Y: vel.VY}, pc.DodgeSpeed)
			vel.VX, vel.VY = v.X, v.Y
		}
	}
}

// Dodge 尝试闪避
//
// 冷却中、眩晕中、已死亡或速度低于阈值时不生效；成功时扩大命中半径。
//
// 返回:
//   - bool: 是否进入闪避
func (s *PlayerSystem) Dodge(id ecs.EntityID) bool {
	pc, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
	if !ok || pc.Dead {
		return false
	}
	if pc.SinceLastDodge < pc.DodgeCooldown || pc.Stun.Active {
		return false
	}
	vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
	if !ok {
		return false
	}
	if vel.VX*vel.VX+vel.VY*vel.VY <= pc.MinDodgeSpeed*pc.MinDodgeSpeed {
		return false
	}

	pc.Dodging = true
	pc.SinceLastDodge = 0
	if col, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id); ok {
		col.HitRadius = pc.DodgeHitRadius
	}
	return true
}

func (s *PlayerSystem) endDodge(id ecs.EntityID, pc *components.PlayerComponent) {
	pc.Dodging = false
	if col, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id); ok {
		col.HitRadius = pc.NormalHitRadius
	}
}

// Stun 眩晕玩家；已有更长的眩晕时保持不变。duration <= 0 时使用默认时长
func (s *PlayerSystem) Stun(id ecs.EntityID, duration float64) {
	pc, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
	if !ok {
		return
	}
	if duration <= 0 {
		duration = pc.StunDuration
	}
	pc.Stun.Start(duration)
}

// Freeze 清零速度并短暂眩晕（演出期间每帧调用）
func (s *PlayerSystem) Freeze(id ecs.EntityID) {
	if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id); ok {
		vel.VX, vel.VY = 0, 0
	}
	s.Stun(id, s.cfg.ArenaStun)
}

// ShootBullet 反击：弹出最后接住的子弹，从玩家位置射向 target
//
// 口袋为空或冷却未结束时不生效。
//
// 返回:
//   - bool: 是否射出
func (s *PlayerSystem) ShootBullet(id ecs.EntityID, target utils.Vec2) bool {
	pc, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
	if !ok || pc.Dead {
		return false
	}
	if len(pc.Pocket) == 0 || pc.SinceLastShot < pc.FireCooldown {
		return false
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return false
	}

	bulletID := pc.Pocket[len(pc.Pocket)-1]
	pc.Pocket = pc.Pocket[:len(pc.Pocket)-1]

	proj, ok := ecs.GetComponent[*components.ProjectileComponent](s.entityManager, bulletID)
	if !ok || s.entityManager.IsMarkedForDestroy(bulletID) {
		return false
	}
	bpos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, bulletID)
	bvel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, bulletID)
	if bpos == nil || bvel == nil {
		return false
	}

	origin := utils.Vec2{X: pos.X, Y: pos.Y}
	dir := utils.Normalize(utils.Sub(target, origin), s.cfg.RefireSpeed)

	bpos.X = origin.X
	bpos.Y = origin.Y + s.cfg.RefireOffset
	bvel.VX, bvel.VY = dir.X, dir.Y

	proj.Friendly = true
	proj.InPocket = false
	proj.OutOfBounds = false
	proj.Age = 0
	if trail, ok := ecs.GetComponent[*components.TrailComponent](s.entityManager, bulletID); ok {
		trail.Reset(bpos.X, bpos.Y)
	}

	pc.SinceLastShot = 0

	s.effects.BulletSpawn(utils.Vec2{X: bpos.X, Y: bpos.Y})
	s.effects.Shake(s.cfg.RefireShake)
	s.effects.Play(game.SoundShoot)
	return true
}

// CatchBullet 闪避中接住一颗敌方子弹
//
// 口袋已满时返回 false，子弹保持原状穿过玩家。
func (s *PlayerSystem) CatchBullet(id, bulletID ecs.EntityID) bool {
	pc, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
	if !ok || len(pc.Pocket) >= pc.PocketSize {
		return false
	}
	proj, ok := ecs.GetComponent[*components.ProjectileComponent](s.entityManager, bulletID)
	if !ok {
		return false
	}
	bpos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, bulletID)
	if !ok {
		return false
	}

	pc.Pocket = append(pc.Pocket, bulletID)
	proj.Friendly = true
	proj.InPocket = true
	if trail, ok := ecs.GetComponent[*components.TrailComponent](s.entityManager, bulletID); ok {
		trail.Reset(bpos.X, bpos.Y)
	}

	s.effects.BulletSpawn(utils.Vec2{X: bpos.X, Y: bpos.Y})
	s.effects.Play(game.SoundCatch)
	return true
}

// HitByBullet 玩家被敌方子弹击中：扣血、闪烁、眩晕、击退、震屏，子弹被标记删除
func (s *PlayerSystem) HitByBullet(id, bulletID ecs.EntityID) {
	pc, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
	if !ok || pc.Dead {
		return
	}
	health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)
	vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
	proj, _ := ecs.GetComponent[*components.ProjectileComponent](s.entityManager, bulletID)
	bpos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, bulletID)
	bvel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, bulletID)
	if health == nil || vel == nil || proj == nil || bpos == nil || bvel == nil {
		return
	}

	health.CurrentHealth -= proj.Damage
	pc.Blink.Start(pc.BlinkDuration)
	s.Stun(id, pc.StunDuration)

	impact := utils.Normalize(utils.Vec2{X: bvel.VX, Y: bvel.VY}, proj.Knockback)
	vel.VX += impact.X
	vel.VY += impact.Y

	s.entityManager.DestroyEntity(bulletID)

	s.effects.Splash(utils.Vec2{X: bpos.X, Y: bpos.Y})
	s.effects.Shake(s.cfg.HitShake)
	s.effects.Play(game.SoundHit)
}

// HitByActor 玩家与敌人接触
//
// 闪烁、闪避或眩晕期间无效；否则把玩家推离敌人并扣 1 点生命。
//
// 返回:
//   - bool: 是否造成了伤害
func (s *PlayerSystem) HitByActor(id, actorID ecs.EntityID) bool {
	pc, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
	if !ok || pc.Dead {
		return false
	}
	if pc.Blink.Active || pc.Dodging || pc.Stun.Active {
		return false
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
	health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)
	apos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, actorID)
	if pos == nil || vel == nil || health == nil || apos == nil {
		return false
	}

	push := utils.Normalize(utils.Vec2{X: pos.X - apos.X, Y: pos.Y - apos.Y}, s.cfg.ContactPush)
	vel.VX += push.X
	vel.VY += push.Y

	pc.Blink.Start(pc.BlinkDuration)
	s.Stun(id, pc.StunDuration)
	health.CurrentHealth--

	s.effects.Splash(utils.Vec2{X: pos.X, Y: pos.Y})
	s.effects.Shake(s.cfg.HitShake)
	s.effects.Play(game.SoundHit)
	return true
}

// Heal 回复生命，不超过上限；死亡后无效
func (s *PlayerSystem) Heal(id ecs.EntityID, amount int) {
	pc, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
	if !ok || pc.Dead {
		return
	}
	if health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, id); ok {
		health.CurrentHealth = min(health.CurrentHealth+amount, health.MaxHealth)
	}
}

// die 一次性的死亡处理
func (s *PlayerSystem) die(id ecs.EntityID, pc *components.PlayerComponent, pos *components.PositionComponent) {
	pc.Dead = true
	pc.Dodging = false

	// 口袋里的子弹随玩家一起消失
	for _, bulletID := range pc.Pocket {
		s.entityManager.DestroyEntity(bulletID)
	}
	pc.Pocket = pc.Pocket[:0]

	s.effects.Feathers(utils.Vec2{X: pos.X, Y: pos.Y}, s.cfg.DeathFeathers)
	s.effects.Play(game.SoundPlayerDie)
	if s.gameState != nil {
		s.gameState.MarkDefeat()
	}
	log.Printf("[PlayerSystem] Player %d died", id)
}
