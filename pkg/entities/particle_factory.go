package entities

import (
	"math"
	"math/rand"

	"github.com/gonewx/ammodillo/pkg/components"
	"github.com/gonewx/ammodillo/pkg/config"
	"github.com/gonewx/ammodillo/pkg/ecs"
	"github.com/gonewx/ammodillo/pkg/utils"
)

// featherVariants 羽毛外观数量
const featherVariants = 3

// NewFeather 创建一根羽毛：随机方向、随机初速（不超过 MaxSpeed）
func NewFeather(em *ecs.EntityManager, cfg config.FeatherConfig, pos utils.Vec2, rng *rand.Rand) ecs.EntityID {
	speed := rng.Float64() * cfg.MaxSpeed
	vel := utils.Normalize(utils.RandomAngleVec(rng), speed)

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: pos.X, Y: pos.Y})
	ecs.AddComponent(em, id, &components.VelocityComponent{VX: vel.X, VY: vel.Y})
	ecs.AddComponent(em, id, &components.ParticleComponent{
		Speed:        speed,
		Deceleration: cfg.Deceleration,
		BouncePush:   cfg.BouncePush,
		Rotation:     rng.Float64() * 2 * math.Pi,
		Variant:      rng.Intn(featherVariants),
	})
	ecs.AddComponent(em, id, &components.LifetimeComponent{MaxLifetime: cfg.Lifetime})
	return id
}

// NewFeatherBurst 在同一位置创建 count 根羽毛
func NewFeatherBurst(em *ecs.EntityManager, cfg config.FeatherConfig, pos utils.Vec2, count int, rng *rand.Rand) {
	for i := 0; i < count; i++ {
		NewFeather(em, cfg, pos, rng)
	}
}
