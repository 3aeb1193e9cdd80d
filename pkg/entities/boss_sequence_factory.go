package entities

import (
	"log"

	"github.com/gonewx/ammodillo/pkg/components"
	"github.com/gonewx/ammodillo/pkg/ecs"
)

// NewBossSequence 创建 Boss 演出状态机实体，从 Windup 阶段开始
func NewBossSequence(em *ecs.EntityManager, bossID ecs.EntityID) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.BossSequenceComponent{
		Phase:  components.BossPhaseWindup,
		BossID: bossID,
	})
	log.Printf("[BossSequence] Created sequence %d for boss %d", id, bossID)
	return id
}
