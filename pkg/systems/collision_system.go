package systems

import (
	"github.com/gonewx/ammodillo/pkg/components"
	"github.com/gonewx/ammodillo/pkg/ecs"
	"github.com/gonewx/ammodillo/pkg/utils"
)

// ActorSeparationPush 两个敌人重叠时各自获得的分离速度
const ActorSeparationPush = 2.0

// ActorHitter 处理敌人被友方子弹击中（behavior.ActorSystem 实现此接口）
type ActorHitter interface {
	HitActor(actorID, bulletID ecs.EntityID)
}

// CollisionSystem 每帧一次的碰撞结算，在所有实体更新之后执行
//
// 结算顺序：
//  1. 玩家 vs 敌方子弹（闪避中接住，否则受伤）
//  2. 玩家 vs 敌人接触
//  3. 敌人 vs 友方子弹
//  4. 敌人之间的软分离
//
// 已被标记删除的子弹不会再命中其他目标；口袋中的子弹和刚射出的子弹不参与检测。
type CollisionSystem struct {
	entityManager *ecs.EntityManager
	players       *PlayerSystem
	actors        ActorHitter
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(em *ecs.EntityManager, players *PlayerSystem, actors ActorHitter) *CollisionSystem {
	return &CollisionSystem{
		entityManager: em,
		players:       players,
		actors:        actors,
	}
}

// collider 碰撞检测用的快照
type collider struct {
	id     ecs.EntityID
	pos    utils.Vec2
	radius float64
}

// Update 执行一次完整的碰撞结算
func (s *CollisionSystem) Update() {
	engaged := s.engagedActors()

	if playerID, ok := s.players.PlayerID(); ok {
		s.resolvePlayer(playerID, engaged)
	}
	s.resolveActorBullets(engaged)
	s.resolveSeparation(engaged)

	// 本帧射出的子弹从下一帧开始参与碰撞
	for _, id := range ecs.GetEntitiesWith1[*components.ProjectileComponent](s.entityManager) {
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](s.entityManager, id)
		proj.Fresh = false
	}
}

// engagedActors 主敌人集合中仍然存活的敌人
func (s *CollisionSystem) engagedActors() []collider {
	result := make([]collider, 0)
	ids := ecs.GetEntitiesWith3[*components.ActorComponent, *components.PositionComponent, *components.CollisionComponent](s.entityManager)
	for _, id := range ids {
		actor, _ := ecs.GetComponent[*components.ActorComponent](s.entityManager, id)
		if !actor.Engaged || s.entityManager.IsMarkedForDestroy(id) {
			continue
		}
		result = append(result, s.snapshot(id))
	}
	return result
}

func (s *CollisionSystem) snapshot(id ecs.EntityID) collider {
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	col, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)
	return collider{id: id, pos: utils.Vec2{X: pos.X, Y: pos.Y}, radius: col.HitRadius}
}

// liveBullets 可参与碰撞的子弹（按阵营过滤）
func (s *CollisionSystem) liveBullets(friendly bool) []ecs.EntityID {
	result := make([]ecs.EntityID, 0)
	ids := ecs.GetEntitiesWith3[*components.ProjectileComponent, *components.PositionComponent, *components.CollisionComponent](s.entityManager)
	for _, id := range ids {
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](s.entityManager, id)
		if proj.Friendly != friendly || proj.InPocket || proj.Fresh {
			continue
		}
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}
		result = append(result, id)
	}
	return result
}

func (s *CollisionSystem) resolvePlayer(playerID ecs.EntityID, engaged []collider) {
	pc, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, playerID)
	if !ok || pc.Dead {
		return
	}
	if !ecs.HasComponent[*components.CollisionComponent](s.entityManager, playerID) {
		return
	}

	for _, bulletID := range s.liveBullets(false) {
		// 命中半径随闪避状态变化，每颗子弹都重新读取
		player := s.snapshot(playerID)
		bullet := s.snapshot(bulletID)
		if !utils.Colliding(player.pos, player.radius, bullet.pos, bullet.radius) {
			continue
		}
		if pc.Dodging {
			// 口袋满了：子弹原样穿过，不造成伤害
			s.players.CatchBullet(playerID, bulletID)
			continue
		}
		s.players.HitByBullet(playerID, bulletID)
	}

	for _, actor := range engaged {
		player := s.snapshot(playerID)
		if utils.Colliding(player.pos, player.radius, actor.pos, actor.radius) {
			s.players.HitByActor(playerID, actor.id)
		}
	}
}

func (s *CollisionSystem) resolveActorBullets(engaged []collider) {
	if s.actors == nil {
		return
	}
	bullets := s.liveBullets(true)
	for _, actor := range engaged {
		for _, bulletID := range bullets {
			if s.entityManager.IsMarkedForDestroy(bulletID) {
				continue
			}
			if s.entityManager.IsMarkedForDestroy(actor.id) {
				break
			}
			bullet := s.snapshot(bulletID)
			if utils.Colliding(actor.pos, actor.radius, bullet.pos, bullet.radius) {
				s.actors.HitActor(actor.id, bulletID)
			}
		}
	}
}

// resolveSeparation 重叠的敌人互相推开（只改变速度，不造成伤害）
func (s *CollisionSystem) resolveSeparation(engaged []collider) {
	for i, a := range engaged {
		for j, b := range engaged {
			if i == j {
				continue
			}
			if !utils.Colliding(a.pos, a.radius, b.pos, b.radius) {
				continue
			}
			vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, a.id)
			if !ok {
				continue
			}
			push := utils.Normalize(utils.Sub(a.pos, b.pos), ActorSeparationPush)
			vel.VX += push.X
			vel.VY += push.Y
		}
	}
}
