package systems

import (
	"math"
	"testing"

	"github.com/gonewx/ammodillo/pkg/components"
	"github.com/gonewx/ammodillo/pkg/ecs"
	"github.com/gonewx/ammodillo/pkg/game"
	"github.com/gonewx/ammodillo/pkg/utils"
)

func TestPlayerMovement(t *testing.T) {
	t.Run("速度不超过上限", func(t *testing.T) {
		w := newTestWorld(t)
		input := utils.InputSnapshot{Right: true, Down: true}
		for i := 0; i < 30; i++ {
			w.players.Update(1.0/60, input)
		}
		vel, _ := ecs.GetComponent[*components.VelocityComponent](w.em, w.playerID)
		speed := utils.Magnitude(utils.Vec2{X: vel.VX, Y: vel.VY})
		if speed > w.cfg.Player.MaxSpeed+1e-9 {
			t.Errorf("speed %v exceeds max %v", speed, w.cfg.Player.MaxSpeed)
		}
		if w.player().Facing != 1 {
			t.Errorf("expected facing right, got %d", w.player().Facing)
		}
	})

	t.Run("眩晕期间忽略移动输入", func(t *testing.T) {
		w := newTestWorld(t)
		w.players.Stun(w.playerID, 1)
		w.players.Update(0.1, utils.InputSnapshot{Right: true})

		vel, _ := ecs.GetComponent[*components.VelocityComponent](w.em, w.playerID)
		if vel.VX != 0 {
			t.Errorf("stunned player should not accelerate, vx=%v", vel.VX)
		}
	})

	t.Run("离开竞技场被推回并眩晕", func(t *testing.T) {
		w := newTestWorld(t)
		pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, w.playerID)
		pos.X = 20

		w.players.Update(0.01, utils.InputSnapshot{})

		vel, _ := ecs.GetComponent[*components.VelocityComponent](w.em, w.playerID)
		if vel.VX >= 0 {
			t.Errorf("expected inward push, vx=%v", vel.VX)
		}
		if !w.player().Stun.Active {
			t.Error("leaving the arena should stun the player")
		}
	})
}

func TestPlayerDodge(t *testing.T) {
	t.Run("移动中可以闪避并扩大半径", func(t *testing.T) {
		w := newTestWorld(t)
		w.setPlayerVelocity(3, 0)

		if !w.players.Dodge(w.playerID) {
			t.Fatal("dodge should start")
		}
		col, _ := ecs.GetComponent[*components.CollisionComponent](w.em, w.playerID)
		if col.HitRadius != w.cfg.Player.DodgeHitRadius {
			t.Errorf("expected dodge radius %v, got %v", w.cfg.Player.DodgeHitRadius, col.HitRadius)
		}
	})

	t.Run("静止时不能闪避", func(t *testing.T) {
		w := newTestWorld(t)
		if w.players.Dodge(w.playerID) {
			t.Error("dodge should require movement")
		}
	})

	t.Run("冷却中不能再次闪避", func(t *testing.T) {
		w := newTestWorld(t)
		w.setPlayerVelocity(3, 0)
		w.players.Dodge(w.playerID)
		w.player().Dodging = false

		if w.players.Dodge(w.playerID) {
			t.Error("dodge should respect cooldown")
		}
	})

	t.Run("闪避初段保持冲刺速度", func(t *testing.T) {
		w := newTestWorld(t)
		w.setPlayerVelocity(3, 0)
		w.players.Update(0.01, utils.InputSnapshot{DodgePressed: true})

		vel, _ := ecs.GetComponent[*components.VelocityComponent](w.em, w.playerID)
		speed := utils.Magnitude(utils.Vec2{X: vel.VX, Y: vel.VY})
		if math.Abs(speed-w.cfg.Player.DodgeSpeed()) > 1e-9 {
			t.Errorf("expected dodge speed %v, got %v", w.cfg.Player.DodgeSpeed(), speed)
		}
	})

	t.Run("闪避持续时间与冷却", func(t *testing.T) {
		w := newTestWorld(t)
		w.setPlayerVelocity(3, 0)
		w.players.Dodge(w.playerID)

		for i := 0; i < 40; i++ {
			w.players.Update(0.01, utils.InputSnapshot{})
		}
		if !w.player().Dodging {
			t.Fatal("dodge should still be active at 0.4s")
		}
		for i := 0; i < 5; i++ {
			w.players.Update(0.01, utils.InputSnapshot{})
		}
		if w.player().Dodging {
			t.Fatal("dodge should end at 0.45s")
		}

		w.setPlayerVelocity(3, 0)
		if w.players.Dodge(w.playerID) {
			t.Error("dodge should still be on cooldown at 0.45s")
		}
		for i := 0; i < 20; i++ {
			w.players.Update(0.01, utils.InputSnapshot{})
		}
		w.setPlayerVelocity(3, 0)
		if !w.players.Dodge(w.playerID) {
			t.Error("dodge should be ready again after the cooldown")
		}
	})

	t.Run("闪避结束后恢复半径", func(t *testing.T) {
		w := newTestWorld(t)
		w.setPlayerVelocity(3, 0)
		w.players.Dodge(w.playerID)

		for i := 0; i < 60; i++ {
			w.players.Update(1.0/60, utils.InputSnapshot{})
		}

		if w.player().Dodging {
			t.Fatal("dodge should end after dodgeTime")
		}
		col, _ := ecs.GetComponent[*components.CollisionComponent](w.em, w.playerID)
		if col.HitRadius != w.cfg.Player.HitRadius {
			t.Errorf("expected normal radius, got %v", col.HitRadius)
		}
	})
}

func TestPlayerStun(t *testing.T) {
	t.Run("较短的眩晕不会覆盖较长的眩晕", func(t *testing.T) {
		w := newTestWorld(t)
		w.players.Stun(w.playerID, 2)
		w.players.Stun(w.playerID, 0.5)

		if got := w.player().Stun.Remaining; got != 2 {
			t.Errorf("expected remaining 2, got %v", got)
		}
	})

	t.Run("较长的眩晕延长剩余时间", func(t *testing.T) {
		w := newTestWorld(t)
		w.players.Stun(w.playerID, 0.5)
		w.players.Stun(w.playerID, 2)

		if got := w.player().Stun.Remaining; got != 2 {
			t.Errorf("expected remaining 2, got %v", got)
		}
	})

	t.Run("非正时长使用默认值", func(t *testing.T) {
		w := newTestWorld(t)
		w.players.Stun(w.playerID, 0)

		if got := w.player().Stun.Remaining; got != w.cfg.Player.StunDuration {
			t.Errorf("expected default %v, got %v", w.cfg.Player.StunDuration, got)
		}
	})
}

// assertTrailFlat 检查拖尾的每个采样都落在 p
func assertTrailFlat(t *testing.T, trail *components.TrailComponent, p utils.Vec2) {
	t.Helper()
	for i := range trail.Points {
		if got := trail.At(i); got.X != p.X || got.Y != p.Y {
			t.Errorf("trail sample %d = (%v, %v), want (%v, %v)", i, got.X, got.Y, p.X, p.Y)
		}
	}
}

func TestPlayerCatchAndShoot(t *testing.T) {
	t.Run("接住的子弹变为友方并进入口袋", func(t *testing.T) {
		w := newTestWorld(t)
		bullet := w.hostileBullet(utils.Vec2{X: 0.1, Y: 0}, utils.Vec2{X: -5, Y: 0})

		trail, _ := ecs.GetComponent[*components.TrailComponent](w.em, bullet)
		trail.Push(3, 3)
		trail.Push(2, 1)

		if !w.players.CatchBullet(w.playerID, bullet) {
			t.Fatal("catch should succeed")
		}
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](w.em, bullet)
		if !proj.Friendly || !proj.InPocket {
			t.Errorf("caught bullet should be friendly and pocketed: %+v", proj)
		}
		assertTrailFlat(t, trail, utils.Vec2{X: 0.1, Y: 0})
		if len(w.player().Pocket) != 1 {
			t.Errorf("expected 1 bullet in pocket, got %d", len(w.player().Pocket))
		}
		if w.sound.count(game.SoundCatch) != 1 {
			t.Error("catch sound should play")
		}
	})

	t.Run("口袋满了无法接弹", func(t *testing.T) {
		w := newTestWorld(t)
		for i := 0; i < w.cfg.Player.PocketSize; i++ {
			b := w.hostileBullet(utils.Vec2{}, utils.Vec2{X: 1})
			if !w.players.CatchBullet(w.playerID, b) {
				t.Fatalf("catch %d should succeed", i)
			}
		}
		extra := w.hostileBullet(utils.Vec2{}, utils.Vec2{X: 1})
		if w.players.CatchBullet(w.playerID, extra) {
			t.Error("catch should fail when pocket is full")
		}
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](w.em, extra)
		if proj.Friendly || proj.InPocket {
			t.Error("overflow bullet should be left untouched")
		}
	})

	t.Run("反击弹出最后接住的子弹", func(t *testing.T) {
		w := newTestWorld(t)
		first := w.hostileBullet(utils.Vec2{}, utils.Vec2{X: 1})
		second := w.hostileBullet(utils.Vec2{}, utils.Vec2{X: 1})
		w.players.CatchBullet(w.playerID, first)
		w.players.CatchBullet(w.playerID, second)

		proj, _ := ecs.GetComponent[*components.ProjectileComponent](w.em, second)
		proj.Age = 1.5
		trail, _ := ecs.GetComponent[*components.TrailComponent](w.em, second)
		trail.Push(4, 4)

		if !w.players.ShootBullet(w.playerID, utils.Vec2{X: 0, Y: -5}) {
			t.Fatal("shoot should succeed")
		}
		vel, _ := ecs.GetComponent[*components.VelocityComponent](w.em, second)
		if proj.InPocket || !proj.Friendly {
			t.Errorf("fired bullet should be friendly and in flight: %+v", proj)
		}
		if proj.Age != 0 {
			t.Errorf("refire should reset age, got %v", proj.Age)
		}
		ppos, _ := ecs.GetComponent[*components.PositionComponent](w.em, w.playerID)
		origin := utils.Vec2{X: ppos.X, Y: ppos.Y + w.cfg.Player.RefireOffset}
		bpos, _ := ecs.GetComponent[*components.PositionComponent](w.em, second)
		if bpos.X != origin.X || bpos.Y != origin.Y {
			t.Errorf("expected bullet at %v, got (%v, %v)", origin, bpos.X, bpos.Y)
		}
		assertTrailFlat(t, trail, origin)
		if math.Abs(vel.VY+w.cfg.Player.RefireSpeed) > 1e-9 {
			t.Errorf("expected refire velocity toward the target, got (%v, %v)", vel.VX, vel.VY)
		}
		if len(w.player().Pocket) != 1 || w.player().Pocket[0] != first {
			t.Errorf("pocket should keep the first bullet, got %v", w.player().Pocket)
		}
	})

	t.Run("冷却期间不能连续反击", func(t *testing.T) {
		w := newTestWorld(t)
		for i := 0; i < 2; i++ {
			w.players.CatchBullet(w.playerID, w.hostileBullet(utils.Vec2{}, utils.Vec2{X: 1}))
		}
		w.players.ShootBullet(w.playerID, utils.Vec2{X: 1})
		if w.players.ShootBullet(w.playerID, utils.Vec2{X: 1}) {
			t.Error("second shot should wait for the cooldown")
		}
	})

	t.Run("口袋为空时不能反击", func(t *testing.T) {
		w := newTestWorld(t)
		if w.players.ShootBullet(w.playerID, utils.Vec2{X: 1}) {
			t.Error("shoot should fail with an empty pocket")
		}
	})
}

func TestPlayerDamage(t *testing.T) {
	t.Run("被子弹击中", func(t *testing.T) {
		w := newTestWorld(t)
		bullet := w.hostileBullet(utils.Vec2{X: -0.2}, utils.Vec2{X: 10})
		w.players.HitByBullet(w.playerID, bullet)

		pc := w.player()
		if w.playerHealth().CurrentHealth != w.cfg.Player.MaxHP-1 {
			t.Errorf("expected hp %d, got %d", w.cfg.Player.MaxHP-1, w.playerHealth().CurrentHealth)
		}
		if !pc.Blink.Active || !pc.Stun.Active {
			t.Error("hit should start blink and stun")
		}
		if !w.em.IsMarkedForDestroy(bullet) {
			t.Error("bullet should be marked")
		}
		if w.camera.ShakeMagnitude() != w.cfg.Player.HitShake {
			t.Errorf("expected shake %v, got %v", w.cfg.Player.HitShake, w.camera.ShakeMagnitude())
		}
	})

	t.Run("闪烁期间接触敌人无伤害", func(t *testing.T) {
		w := newTestWorld(t)
		actor := w.spawnActor(t, "basic", utils.Vec2{X: 0.3})
		w.player().Blink.Start(1)

		if w.players.HitByActor(w.playerID, actor) {
			t.Error("blinking player should ignore contact")
		}
		if w.playerHealth().CurrentHealth != w.cfg.Player.MaxHP {
			t.Error("hp should not change")
		}
	})

	t.Run("接触敌人被推开", func(t *testing.T) {
		w := newTestWorld(t)
		actor := w.spawnActor(t, "basic", utils.Vec2{X: 0.3})

		if !w.players.HitByActor(w.playerID, actor) {
			t.Fatal("contact should hurt")
		}
		vel, _ := ecs.GetComponent[*components.VelocityComponent](w.em, w.playerID)
		if math.Abs(vel.VX+w.cfg.Player.ContactPush) > 1e-9 {
			t.Errorf("expected push away from the actor, vx=%v", vel.VX)
		}
	})

	t.Run("生命归零后死亡一次", func(t *testing.T) {
		w := newTestWorld(t)
		w.players.CatchBullet(w.playerID, w.hostileBullet(utils.Vec2{}, utils.Vec2{X: 1}))
		pocketed := w.player().Pocket[0]
		w.playerHealth().CurrentHealth = 0

		w.players.Update(0.01, utils.InputSnapshot{})
		w.players.Update(0.01, utils.InputSnapshot{})

		if !w.player().Dead {
			t.Fatal("player should be dead")
		}
		if w.gameState.Outcome != game.OutcomeDefeat {
			t.Errorf("expected defeat, got %v", w.gameState.Outcome)
		}
		if w.sound.count(game.SoundPlayerDie) != 1 {
			t.Errorf("death sound should play once, got %d", w.sound.count(game.SoundPlayerDie))
		}
		if !w.em.IsMarkedForDestroy(pocketed) {
			t.Error("pocketed bullets should be destroyed with the player")
		}
	})

	t.Run("回复不超过上限", func(t *testing.T) {
		w := newTestWorld(t)
		w.playerHealth().CurrentHealth = 1
		w.players.Heal(w.playerID, 10)
		if w.playerHealth().CurrentHealth != w.cfg.Player.MaxHP {
			t.Errorf("expected hp capped at %d, got %d", w.cfg.Player.MaxHP, w.playerHealth().CurrentHealth)
		}
	})
}
