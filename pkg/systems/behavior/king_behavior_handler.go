package behavior

import (
	"log"
	"math"

	"github.com/gonewx/ammodillo/pkg/components"
	"github.com/gonewx/ammodillo/pkg/config"
	"github.com/gonewx/ammodillo/pkg/utils"
)

// handleKingFiring Boss 弹幕
//
// 洒水：定点悬停，每个周期向两个相反方向各发一颗，前半个弹夹顺时针扫动、后半个逆时针。
// 脉冲：追随玩家，每个周期发射一整圈，消耗大量弹药。
// 弹夹耗尽后装填并随机切换模式。弹幕左右对称，不产生后坐冲量，但射击后短暂限速。
func (s *ActorSystem) handleKingFiring(ctx *actorContext) {
	actor := ctx.actor
	stats := s.kingStats()

	if actor.Clip <= 0 {
		s.reloadKing(actor, stats)
		return
	}
	if actor.SinceLastBullet <= actor.BulletPeriod {
		return
	}
	actor.SinceLastBullet = 0

	switch actor.Pattern {
	case components.PatternSprinkler:
		dir := utils.AngleVec(actor.SweepAngle)
		s.fireBullet(ctx, utils.Scale(dir, actor.BulletSpeed))
		s.fireBullet(ctx, utils.Scale(dir, -actor.BulletSpeed))
		s.effects.BulletSpawn(ctx.position())
		if actor.Clip > actor.ClipSize/2 {
			actor.SweepAngle += stats.SprinklerSweep
		} else {
			actor.SweepAngle -= stats.SprinklerSweep
		}
		actor.Clip--
	case components.PatternPulsar:
		s.fireRing(ctx, stats.PulsarCount, stats.PulsarSpeed)
		actor.Clip -= stats.PulsarCost
	}

	actor.RecoilLock.Start(stats.RecoilLockDuration)
}

// reloadKing 装填并随机选择下一个弹幕模式
func (s *ActorSystem) reloadKing(actor *components.ActorComponent, stats config.ActorStats) {
	actor.SinceLastBullet = -actor.ReloadTime
	actor.Clip = actor.ClipSize
	actor.SweepAngle = 0

	if s.rng.Intn(2) == 0 {
		actor.Pattern = components.PatternSprinkler
	} else {
		actor.Pattern = components.PatternPulsar
	}
	applyPattern(actor, stats)
	log.Printf("[ActorSystem] king reloaded, next pattern: %s", actor.Pattern)
}

// applyPattern 按弹幕模式设置射击周期与转向目标
func applyPattern(actor *components.ActorComponent, stats config.ActorStats) {
	switch actor.Pattern {
	case components.PatternSprinkler:
		actor.BulletPeriod = stats.SprinklerPeriod
		actor.Mode = components.ModeFollowPosition
		actor.TargetX = stats.HoldPosition.X
		actor.TargetY = stats.HoldPosition.Y
	case components.PatternPulsar:
		actor.BulletPeriod = stats.PulsarPeriod
		actor.Mode = components.ModeFollowPlayer
	}
	if actor.SweepAngle > 2*math.Pi || actor.SweepAngle < -2*math.Pi {
		actor.SweepAngle = math.Mod(actor.SweepAngle, 2*math.Pi)
	}
}
