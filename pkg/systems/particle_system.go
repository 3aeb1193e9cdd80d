package systems

import (
	"math"

	"github.com/gonewx/ammodillo/pkg/components"
	"github.com/gonewx/ammodillo/pkg/ecs"
	"github.com/gonewx/ammodillo/pkg/utils"
)

// ParticleSystem 装饰粒子（羽毛）的运动
//
// 速率指数衰减、方向保持；出界时朝原点推回。
type ParticleSystem struct {
	entityManager *ecs.EntityManager
	bounds        utils.ArenaBounds
}

// NewParticleSystem 创建粒子系统
func NewParticleSystem(em *ecs.EntityManager, bounds utils.ArenaBounds) *ParticleSystem {
	return &ParticleSystem{
		entityManager: em,
		bounds:        bounds,
	}
}

// Update 推进所有粒子
func (s *ParticleSystem) Update(deltaTime float64) {
	ids := ecs.GetEntitiesWith3[*components.ParticleComponent, *components.PositionComponent, *components.VelocityComponent](s.entityManager)
	for _, id := range ids {
		particle, _ := ecs.GetComponent[*components.ParticleComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)

		particle.Speed *= math.Pow(particle.Deceleration, deltaTime)
		v := utils.Normalize(utils.Vec2{X: vel.VX, Y: vel.VY}, particle.Speed)

		p := utils.Vec2{X: pos.X, Y: pos.Y}
		if !s.bounds.Contains(p) {
			v = utils.Add(v, utils.Normalize(p, -particle.BouncePush))
		}
		vel.VX, vel.VY = v.X, v.Y

		pos.X += vel.VX * deltaTime
		pos.Y += vel.VY * deltaTime
	}
}
