package behavior

// handleBasicFiring 基础敌人与小鸡：周期到达即朝玩家单发
func (s *ActorSystem) handleBasicFiring(ctx *actorContext) {
	if ctx.actor.SinceLastBullet > ctx.actor.BulletPeriod {
		s.fireAtPlayer(ctx)
	}
}
