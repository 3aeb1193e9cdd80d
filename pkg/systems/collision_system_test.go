package systems

import (
	"math"
	"testing"

	"github.com/gonewx/ammodillo/pkg/components"
	"github.com/gonewx/ammodillo/pkg/config"
	"github.com/gonewx/ammodillo/pkg/ecs"
	"github.com/gonewx/ammodillo/pkg/entities"
	"github.com/gonewx/ammodillo/pkg/utils"
)

func TestCollisionPlayerBullets(t *testing.T) {
	t.Run("闪避中接住子弹", func(t *testing.T) {
		w := newTestWorld(t)
		w.setPlayerVelocity(3, 0)
		w.players.Dodge(w.playerID)
		bullet := w.hostileBullet(utils.Vec2{X: 0.5}, utils.Vec2{X: -10})

		w.collision.Update()

		if len(w.player().Pocket) != 1 {
			t.Fatalf("expected the bullet to be caught, pocket=%v", w.player().Pocket)
		}
		if w.em.IsMarkedForDestroy(bullet) {
			t.Error("caught bullet must stay alive")
		}
		if w.playerHealth().CurrentHealth != w.cfg.Player.MaxHP {
			t.Error("catching should not hurt")
		}
	})

	t.Run("口袋满时子弹穿过且无伤害", func(t *testing.T) {
		w := newTestWorld(t)
		w.setPlayerVelocity(3, 0)
		w.players.Dodge(w.playerID)
		for i := 0; i < w.cfg.Player.PocketSize; i++ {
			w.players.CatchBullet(w.playerID, w.hostileBullet(utils.Vec2{}, utils.Vec2{X: 1}))
		}
		bullet := w.hostileBullet(utils.Vec2{X: 0.5}, utils.Vec2{X: -10})

		w.collision.Update()

		proj, _ := ecs.GetComponent[*components.ProjectileComponent](w.em, bullet)
		if proj.Friendly || proj.InPocket {
			t.Error("overflow bullet should stay hostile")
		}
		if w.em.IsMarkedForDestroy(bullet) {
			t.Error("overflow bullet should pass through")
		}
		if w.playerHealth().CurrentHealth != w.cfg.Player.MaxHP {
			t.Error("dodging player should not take damage")
		}
	})

	t.Run("未闪避时被击中", func(t *testing.T) {
		w := newTestWorld(t)
		bullet := w.hostileBullet(utils.Vec2{X: 0.3}, utils.Vec2{X: -10})

		w.collision.Update()

		if w.playerHealth().CurrentHealth != w.cfg.Player.MaxHP-1 {
			t.Errorf("expected hp %d, got %d", w.cfg.Player.MaxHP-1, w.playerHealth().CurrentHealth)
		}
		if !w.em.IsMarkedForDestroy(bullet) {
			t.Error("bullet should be absorbed")
		}
	})

	t.Run("本帧刚射出的子弹下一帧才参与碰撞", func(t *testing.T) {
		w := newTestWorld(t)
		bullet := w.hostileBullet(utils.Vec2{X: 0.3}, utils.Vec2{X: -10})
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](w.em, bullet)
		proj.Fresh = true

		w.collision.Update()
		if w.playerHealth().CurrentHealth != w.cfg.Player.MaxHP {
			t.Fatal("fresh bullet should not hit this frame")
		}
		if proj.Fresh {
			t.Fatal("fresh flag should clear after the collision pass")
		}

		w.collision.Update()
		if w.playerHealth().CurrentHealth != w.cfg.Player.MaxHP-1 {
			t.Error("bullet should hit on the next frame")
		}
	})
}

func TestCollisionActors(t *testing.T) {
	friendly := func(w *testWorld, pos utils.Vec2) ecs.EntityID {
		return entities.NewProjectile(w.em, w.cfg.Projectiles.Bullet, pos, utils.Vec2{X: 10}, true)
	}

	t.Run("友方子弹命中敌人", func(t *testing.T) {
		w := newTestWorld(t)
		actor := w.spawnActor(t, config.ActorKindChick, utils.Vec2{X: 5})
		bullet := friendly(w, utils.Vec2{X: 5.2})

		w.collision.Update()

		if len(w.hitter.hits) != 1 || w.hitter.hits[0] != [2]ecs.EntityID{actor, bullet} {
			t.Errorf("unexpected hits %v", w.hitter.hits)
		}
	})

	t.Run("一颗子弹只命中一个敌人", func(t *testing.T) {
		w := newTestWorld(t)
		w.spawnActor(t, config.ActorKindChick, utils.Vec2{X: 5})
		w.spawnActor(t, config.ActorKindChick, utils.Vec2{X: 5.1})
		friendly(w, utils.Vec2{X: 5.05})

		w.collision.Update()

		if len(w.hitter.hits) != 1 {
			t.Errorf("expected exactly one hit, got %d", len(w.hitter.hits))
		}
	})

	t.Run("休眠的 Boss 不参与碰撞", func(t *testing.T) {
		w := newTestWorld(t)
		w.spawnActor(t, config.ActorKindKing, utils.Vec2{X: 5})
		friendly(w, utils.Vec2{X: 5})

		w.collision.Update()

		if len(w.hitter.hits) != 0 {
			t.Errorf("dormant boss should not be hit, got %v", w.hitter.hits)
		}
	})

	t.Run("敌方子弹不伤害敌人", func(t *testing.T) {
		w := newTestWorld(t)
		w.spawnActor(t, config.ActorKindChick, utils.Vec2{X: 5})
		w.hostileBullet(utils.Vec2{X: 5}, utils.Vec2{X: 1})

		w.collision.Update()

		if len(w.hitter.hits) != 0 {
			t.Errorf("hostile bullets should ignore actors, got %v", w.hitter.hits)
		}
	})

	t.Run("接触敌人扣血", func(t *testing.T) {
		w := newTestWorld(t)
		w.spawnActor(t, config.ActorKindBasic, utils.Vec2{X: 0.5})

		w.collision.Update()

		if w.playerHealth().CurrentHealth != w.cfg.Player.MaxHP-1 {
			t.Errorf("expected contact damage, hp=%d", w.playerHealth().CurrentHealth)
		}
	})

	t.Run("重叠的敌人互相推开", func(t *testing.T) {
		w := newTestWorld(t)
		a := w.spawnActor(t, config.ActorKindChick, utils.Vec2{X: 5})
		b := w.spawnActor(t, config.ActorKindChick, utils.Vec2{X: 5.2})

		w.collision.Update()

		va, _ := ecs.GetComponent[*components.VelocityComponent](w.em, a)
		vb, _ := ecs.GetComponent[*components.VelocityComponent](w.em, b)
		if math.Abs(va.VX+ActorSeparationPush) > 1e-9 || math.Abs(vb.VX-ActorSeparationPush) > 1e-9 {
			t.Errorf("expected symmetric push, got %v and %v", va.VX, vb.VX)
		}
	})

	t.Run("未重叠的敌人不推开", func(t *testing.T) {
		w := newTestWorld(t)
		a := w.spawnActor(t, config.ActorKindChick, utils.Vec2{X: 5})
		b := w.spawnActor(t, config.ActorKindChick, utils.Vec2{X: 5.8})

		w.collision.Update()

		va, _ := ecs.GetComponent[*components.VelocityComponent](w.em, a)
		vb, _ := ecs.GetComponent[*components.VelocityComponent](w.em, b)
		if va.VX != 0 || vb.VX != 0 {
			t.Errorf("separated actors should keep still, got %v and %v", va.VX, vb.VX)
		}
	})
}
