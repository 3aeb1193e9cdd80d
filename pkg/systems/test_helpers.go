package systems

import (
	"math/rand"
	"testing"

	"github.com/gonewx/ammodillo/pkg/components"
	"github.com/gonewx/ammodillo/pkg/config"
	"github.com/gonewx/ammodillo/pkg/ecs"
	"github.com/gonewx/ammodillo/pkg/entities"
	"github.com/gonewx/ammodillo/pkg/game"
	"github.com/gonewx/ammodillo/pkg/utils"
)

// testDataDir 测试从仓库根目录的 data/ 读取配置
const testDataDir = "../../data"

// recordingSound 记录播放过的音效
type recordingSound struct {
	played []string
}

func (r *recordingSound) PlaySound(soundID string) bool {
	r.played = append(r.played, soundID)
	return true
}

func (r *recordingSound) count(soundID string) int {
	n := 0
	for _, id := range r.played {
		if id == soundID {
			n++
		}
	}
	return n
}

// recordingHitter 记录友方子弹命中，并像真实实现一样标记子弹
type recordingHitter struct {
	em   *ecs.EntityManager
	hits [][2]ecs.EntityID
}

func (h *recordingHitter) HitActor(actorID, bulletID ecs.EntityID) {
	h.hits = append(h.hits, [2]ecs.EntityID{actorID, bulletID})
	h.em.DestroyEntity(bulletID)
}

// recordingActivator 记录 Boss 激活
type recordingActivator struct {
	em        *ecs.EntityManager
	activated []ecs.EntityID
}

func (a *recordingActivator) Activate(actorID ecs.EntityID) {
	a.activated = append(a.activated, actorID)
	if actor, ok := ecs.GetComponent[*components.ActorComponent](a.em, actorID); ok {
		actor.Active = true
	}
}

// testWorld 系统测试用的完整世界（敌人行为由 recordingHitter 代替）
type testWorld struct {
	em        *ecs.EntityManager
	cfg       *config.GameConfig
	rng       *rand.Rand
	gameState *game.GameState
	sound     *recordingSound
	camera    *CameraSystem
	effects   *EffectSpawner
	players   *PlayerSystem
	hitter    *recordingHitter
	collision *CollisionSystem
	cull      *CullSystem
	playerID  ecs.EntityID
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	cfg, err := config.LoadGameConfig(testDataDir)
	if err != nil {
		t.Fatalf("failed to load game config: %v", err)
	}

	w := &testWorld{
		em:        ecs.NewEntityManager(),
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(42)),
		gameState: game.NewGameState(),
		sound:     &recordingSound{},
	}
	w.camera = NewCameraSystem(w.em, cfg.Arena.Camera, cfg.Arena.TileSize)
	w.effects = NewEffectSpawner(w.em, cfg.Projectiles, w.rng, w.camera, w.sound)
	w.players = NewPlayerSystem(w.em, cfg.Player, cfg.Arena.Bounds(), w.effects, w.gameState)
	w.hitter = &recordingHitter{em: w.em}
	w.collision = NewCollisionSystem(w.em, w.players, w.hitter)
	w.cull = NewCullSystem(w.em, w.effects)
	w.playerID = entities.NewPlayer(w.em, cfg.Player)
	return w
}

func (w *testWorld) player() *components.PlayerComponent {
	pc, _ := ecs.GetComponent[*components.PlayerComponent](w.em, w.playerID)
	return pc
}

func (w *testWorld) playerHealth() *components.HealthComponent {
	h, _ := ecs.GetComponent[*components.HealthComponent](w.em, w.playerID)
	return h
}

func (w *testWorld) setPlayerVelocity(vx, vy float64) {
	vel, _ := ecs.GetComponent[*components.VelocityComponent](w.em, w.playerID)
	vel.VX, vel.VY = vx, vy
}

// hostileBullet 在 pos 处创建一颗敌方子弹
func (w *testWorld) hostileBullet(pos, vel utils.Vec2) ecs.EntityID {
	return entities.NewProjectile(w.em, w.cfg.Projectiles.Bullet, pos, vel, false)
}

// spawnActor 在 pos 处创建指定类型的敌人
func (w *testWorld) spawnActor(t *testing.T, kind string, pos utils.Vec2) ecs.EntityID {
	t.Helper()
	k, err := entities.ParseActorKind(kind)
	if err != nil {
		t.Fatalf("ParseActorKind(%q): %v", kind, err)
	}
	stats, _ := w.cfg.Actors.GetActorStats(kind)
	return entities.NewActor(w.em, k, stats, pos, nil)
}

func (w *testWorld) countEffects(kind components.EffectKind) int {
	n := 0
	for _, id := range ecs.GetEntitiesWith1[*components.EffectComponent](w.em) {
		effect, _ := ecs.GetComponent[*components.EffectComponent](w.em, id)
		if effect.Kind == kind {
			n++
		}
	}
	return n
}
