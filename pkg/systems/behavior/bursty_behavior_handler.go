package behavior

import (
	"github.com/gonewx/ammodillo/pkg/components"
	"github.com/gonewx/ammodillo/pkg/config"
)

// handleBurstyFiring 连发鸟
//
// 机枪模式每个周期朝玩家单发并消耗 1 发；环形模式一次清空弹夹打出整圈。
// 弹夹打空后进入装填，并随机决定下一轮的模式。
func (s *ActorSystem) handleBurstyFiring(ctx *actorContext) {
	actor := ctx.actor
	stats := s.burstyStats()

	ready := actor.SinceLastBullet > actor.BulletPeriod && actor.Clip > 0
	if ready {
		switch actor.NextAttack {
		case components.BurstMachineGun:
			s.fireAtPlayer(ctx)
			actor.Clip--
		case components.BurstRadial:
			actor.Clip = 0
			s.fireRing(ctx, stats.RadialCount, stats.RadialSpeed)
		}
	}

	if actor.Clip <= 0 {
		actor.NextAttack = components.BurstMachineGun
		if s.rng.Float64() < stats.RadialChance {
			actor.NextAttack = components.BurstRadial
		}
		actor.SinceLastBullet = -actor.ReloadTime
		actor.Clip = actor.ClipSize
	}
}

func (s *ActorSystem) burstyStats() config.ActorStats {
	stats, _ := s.stats.GetActorStats(config.ActorKindBursty)
	return stats
}
