package behavior

import (
	"math"
	"testing"

	"github.com/gonewx/ammodillo/pkg/components"
	"github.com/gonewx/ammodillo/pkg/config"
	"github.com/gonewx/ammodillo/pkg/ecs"
	"github.com/gonewx/ammodillo/pkg/entities"
	"github.com/gonewx/ammodillo/pkg/utils"
)

func (w *testWorld) spawn(t *testing.T, kind string, pos utils.Vec2) ecs.EntityID {
	t.Helper()
	k, err := entities.ParseActorKind(kind)
	if err != nil {
		t.Fatalf("ParseActorKind(%q): %v", kind, err)
	}
	stats, ok := w.cfg.Actors.GetActorStats(kind)
	if !ok {
		t.Fatalf("no stats for %q", kind)
	}
	return entities.NewActor(w.em, k, stats, pos, nil)
}

func TestBasicFiring(t *testing.T) {
	t.Run("周期到达时朝玩家单发", func(t *testing.T) {
		w := newTestWorld(t)
		id := w.spawn(t, config.ActorKindBasic, utils.Vec2{X: 0, Y: -5})
		actor := w.actor(id)
		actor.SinceLastBullet = actor.BulletPeriod

		w.actors.Update(0.01)

		if got := w.countProjectiles(); got != 1 {
			t.Fatalf("expected 1 projectile, got %d", got)
		}
		if actor.SinceLastBullet != 0 {
			t.Errorf("firing timer should reset, got %v", actor.SinceLastBullet)
		}
		if got := w.countEffects(components.EffectBulletSpawn); got != 1 {
			t.Errorf("expected 1 bullet spawn effect, got %d", got)
		}

		bulletID := ecs.GetEntitiesWith1[*components.ProjectileComponent](w.em)[0]
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](w.em, bulletID)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](w.em, bulletID)
		if proj.Friendly {
			t.Error("actor bullet should be hostile")
		}
		if !proj.Fresh {
			t.Error("bullet fired this frame should skip collision")
		}
		// 玩家在 (0,0)，子弹应向下飞
		if vel.VY <= 0 || math.Abs(utils.Magnitude(utils.Vec2{X: vel.VX, Y: vel.VY})-actor.BulletSpeed) > 1e-9 {
			t.Errorf("unexpected bullet velocity (%v, %v)", vel.VX, vel.VY)
		}
	})

	t.Run("后坐力把敌人推离玩家", func(t *testing.T) {
		w := newTestWorld(t)
		id := w.spawn(t, config.ActorKindChick, utils.Vec2{X: 0, Y: -5})
		actor := w.actor(id)
		actor.SinceLastBullet = actor.BulletPeriod

		w.actors.Update(0.001)

		vel, _ := ecs.GetComponent[*components.VelocityComponent](w.em, id)
		if vel.VY >= 0 {
			t.Errorf("recoil should push the chick away from the player, vy=%v", vel.VY)
		}
	})

	t.Run("周期未到不开火", func(t *testing.T) {
		w := newTestWorld(t)
		id := w.spawn(t, config.ActorKindBasic, utils.Vec2{X: 0, Y: -5})
		w.actor(id).SinceLastBullet = -10

		w.actors.Update(0.1)

		if got := w.countProjectiles(); got != 0 {
			t.Errorf("expected no projectiles, got %d", got)
		}
	})
}

func TestBurstyFiring(t *testing.T) {
	t.Run("机枪模式每发消耗一颗", func(t *testing.T) {
		w := newTestWorld(t)
		id := w.spawn(t, config.ActorKindBursty, utils.Vec2{X: 0, Y: -5})
		actor := w.actor(id)
		actor.NextAttack = components.BurstMachineGun
		actor.SinceLastBullet = 1

		w.actors.Update(0.01)

		if got := w.countProjectiles(); got != 1 {
			t.Fatalf("expected 1 projectile, got %d", got)
		}
		if actor.Clip != actor.ClipSize-1 {
			t.Errorf("expected clip %d, got %d", actor.ClipSize-1, actor.Clip)
		}
	})

	t.Run("打空弹夹后装填", func(t *testing.T) {
		w := newTestWorld(t)
		id := w.spawn(t, config.ActorKindBursty, utils.Vec2{X: 0, Y: -5})
		actor := w.actor(id)
		actor.NextAttack = components.BurstMachineGun
		actor.Clip = 1
		actor.SinceLastBullet = 1

		w.actors.Update(0.01)

		if actor.Clip != actor.ClipSize {
			t.Errorf("clip should be refilled to %d, got %d", actor.ClipSize, actor.Clip)
		}
		if actor.SinceLastBullet != -actor.ReloadTime {
			t.Errorf("expected reload delay %v, got %v", -actor.ReloadTime, actor.SinceLastBullet)
		}
	})

	t.Run("环形模式一次清空弹夹", func(t *testing.T) {
		w := newTestWorld(t)
		id := w.spawn(t, config.ActorKindBursty, utils.Vec2{X: 0, Y: -5})
		actor := w.actor(id)
		actor.NextAttack = components.BurstRadial
		actor.SinceLastBullet = 1

		w.actors.Update(0.01)

		stats, _ := w.cfg.Actors.GetActorStats(config.ActorKindBursty)
		if got := w.countProjectiles(); got != stats.RadialCount {
			t.Errorf("expected %d bullets in the ring, got %d", stats.RadialCount, got)
		}
		if actor.SinceLastBullet != -actor.ReloadTime {
			t.Errorf("radial burst should start a reload, got timer %v", actor.SinceLastBullet)
		}
	})
}

func TestKingBehavior(t *testing.T) {
	kingPos := utils.Vec2{X: 0, Y: -8}

	t.Run("休眠时不开火", func(t *testing.T) {
		w := newTestWorld(t)
		id := w.spawn(t, config.ActorKindKing, kingPos)
		w.actor(id).SinceLastBullet = 5

		w.actors.Update(0.1)

		if got := w.countProjectiles(); got != 0 {
			t.Errorf("dormant king fired %d bullets", got)
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, id)
		if pos.X != kingPos.X || pos.Y != kingPos.Y {
			t.Errorf("dormant king without velocity should not move, got (%v, %v)", pos.X, pos.Y)
		}
	})

	t.Run("洒水模式成对发射并锁定速度", func(t *testing.T) {
		w := newTestWorld(t)
		id := w.spawn(t, config.ActorKindKing, kingPos)
		w.actors.Activate(id)
		actor := w.actor(id)

		w.actors.Update(0.1)

		if got := w.countProjectiles(); got != 2 {
			t.Fatalf("expected 2 opposing bullets, got %d", got)
		}
		if got := w.countEffects(components.EffectBulletSpawn); got != 1 {
			t.Errorf("expected 1 muzzle pop for the pair, got %d", got)
		}
		if actor.Clip != actor.ClipSize-1 {
			t.Errorf("expected clip %d, got %d", actor.ClipSize-1, actor.Clip)
		}
		stats, _ := w.cfg.Actors.GetActorStats(config.ActorKindKing)
		if actor.SweepAngle != stats.SprinklerSweep {
			t.Errorf("sweep should advance while clip is above half, got %v", actor.SweepAngle)
		}
		if !actor.RecoilLock.Active {
			t.Fatal("recoil lock should start after a shot")
		}
		vel, _ := ecs.GetComponent[*components.VelocityComponent](w.em, id)
		if speed := utils.Magnitude(utils.Vec2{X: vel.VX, Y: vel.VY}); speed > stats.RecoilLockSpeed+1e-9 {
			t.Errorf("speed %v exceeds recoil lock %v", speed, stats.RecoilLockSpeed)
		}
	})

	t.Run("弹夹过半后反向扫动", func(t *testing.T) {
		w := newTestWorld(t)
		id := w.spawn(t, config.ActorKindKing, kingPos)
		w.actors.Activate(id)
		actor := w.actor(id)
		actor.Clip = actor.ClipSize / 2

		w.actors.Update(0.1)

		if actor.SweepAngle >= 0 {
			t.Errorf("sweep should reverse below half clip, got %v", actor.SweepAngle)
		}
	})

	t.Run("脉冲模式发射整圈并消耗弹药", func(t *testing.T) {
		w := newTestWorld(t)
		id := w.spawn(t, config.ActorKindKing, kingPos)
		w.actors.Activate(id)
		stats, _ := w.cfg.Actors.GetActorStats(config.ActorKindKing)
		actor := w.actor(id)
		actor.Pattern = components.PatternPulsar
		actor.BulletPeriod = stats.PulsarPeriod
		actor.SinceLastBullet = stats.PulsarPeriod

		w.actors.Update(0.01)

		if got := w.countProjectiles(); got != stats.PulsarCount {
			t.Errorf("expected %d bullets, got %d", stats.PulsarCount, got)
		}
		if actor.Clip != actor.ClipSize-stats.PulsarCost {
			t.Errorf("expected clip %d, got %d", actor.ClipSize-stats.PulsarCost, actor.Clip)
		}
	})

	t.Run("弹夹耗尽后装填并选择模式", func(t *testing.T) {
		w := newTestWorld(t)
		id := w.spawn(t, config.ActorKindKing, kingPos)
		w.actors.Activate(id)
		actor := w.actor(id)
		actor.Clip = 0
		actor.SweepAngle = 1

		w.actors.Update(0.01)

		if actor.Clip != actor.ClipSize {
			t.Errorf("expected full clip, got %d", actor.Clip)
		}
		if actor.SinceLastBullet != -actor.ReloadTime {
			t.Errorf("expected reload delay, got %v", actor.SinceLastBullet)
		}
		if actor.SweepAngle != 0 {
			t.Errorf("sweep angle should reset, got %v", actor.SweepAngle)
		}
		switch actor.Pattern {
		case components.PatternSprinkler:
			if actor.Mode != components.ModeFollowPosition {
				t.Error("sprinkler should hold position")
			}
		case components.PatternPulsar:
			if actor.Mode != components.ModeFollowPlayer {
				t.Error("pulsar should follow the player")
			}
		}
	})

	t.Run("重复激活无效", func(t *testing.T) {
		w := newTestWorld(t)
		id := w.spawn(t, config.ActorKindKing, kingPos)
		w.actors.Activate(id)
		w.actor(id).SinceLastBullet = 0.5
		w.actors.Activate(id)

		if got := w.actor(id).SinceLastBullet; got != 0.5 {
			t.Errorf("second activation should be ignored, timer=%v", got)
		}
	})
}

func TestActorArenaLeash(t *testing.T) {
	w := newTestWorld(t)
	id := w.spawn(t, config.ActorKindBasic, utils.Vec2{X: 20, Y: 0})
	w.actor(id).SinceLastBullet = -10

	w.actors.Update(0.01)

	vel, _ := ecs.GetComponent[*components.VelocityComponent](w.em, id)
	if vel.VX > -ActorArenaPush+0.5 {
		t.Errorf("actor outside the arena should be pulled back, vx=%v", vel.VX)
	}
}

func TestActorFacing(t *testing.T) {
	w := newTestWorld(t)
	left := w.spawn(t, config.ActorKindChick, utils.Vec2{X: -4, Y: -2})
	near := w.spawn(t, config.ActorKindChick, utils.Vec2{X: 0.5, Y: -2})
	w.actor(left).SinceLastBullet = -10
	w.actor(near).SinceLastBullet = -10

	w.actors.Update(0.01)

	if w.actor(left).Facing != 1 {
		t.Errorf("actor left of the player should face right, got %d", w.actor(left).Facing)
	}
	if w.actor(near).Facing != -1 {
		t.Errorf("actor within threshold should keep facing, got %d", w.actor(near).Facing)
	}
	if w.actor(left).HopTimer <= 0 {
		t.Error("chick hop timer should advance")
	}
}

func TestHitActor(t *testing.T) {
	newBullet := func(w *testWorld, pos utils.Vec2) ecs.EntityID {
		return entities.NewProjectile(w.em, w.cfg.Projectiles.Bullet, pos, utils.Vec2{X: 10, Y: 0}, true)
	}

	t.Run("受伤但未死亡", func(t *testing.T) {
		w := newTestWorld(t)
		id := w.spawn(t, config.ActorKindChick, utils.Vec2{X: 0, Y: -5})
		bullet := newBullet(w, utils.Vec2{X: -0.2, Y: -5})

		w.actors.HitActor(id, bullet)

		health, _ := ecs.GetComponent[*components.HealthComponent](w.em, id)
		if health.CurrentHealth != health.MaxHealth-w.cfg.Projectiles.Bullet.Damage {
			t.Errorf("unexpected hp %d", health.CurrentHealth)
		}
		if !w.em.IsMarkedForDestroy(bullet) {
			t.Error("bullet should be marked for destruction")
		}
		if w.em.IsMarkedForDestroy(id) {
			t.Error("actor should survive the first hit")
		}
		vel, _ := ecs.GetComponent[*components.VelocityComponent](w.em, id)
		if math.Abs(vel.VX-w.cfg.Projectiles.Bullet.Knockback) > 1e-9 {
			t.Errorf("expected knockback along the bullet, got vx=%v", vel.VX)
		}
		if got := w.countEffects(components.EffectSplash); got != 1 {
			t.Errorf("expected 1 splash, got %d", got)
		}
		feathers := len(ecs.GetEntitiesWith1[*components.ParticleComponent](w.em))
		if feathers != w.actor(id).HitFeathers {
			t.Errorf("expected %d hit feathers, got %d", w.actor(id).HitFeathers, feathers)
		}
	})

	t.Run("死亡效果只触发一次", func(t *testing.T) {
		w := newTestWorld(t)
		id := w.spawn(t, config.ActorKindBasic, utils.Vec2{X: 0, Y: -5})

		w.actors.HitActor(id, newBullet(w, utils.Vec2{X: 0, Y: -5}))
		w.actors.HitActor(id, newBullet(w, utils.Vec2{X: 0, Y: -5}))

		if !w.em.IsMarkedForDestroy(id) {
			t.Fatal("actor should be marked for destruction")
		}
		if !w.actor(id).Dying {
			t.Error("actor should be dying")
		}
		if w.gameState.Kills != 1 {
			t.Errorf("expected 1 kill, got %d", w.gameState.Kills)
		}
	})
}
