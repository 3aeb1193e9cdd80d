package scenes

import (
	"fmt"
	"log"
	"math"
	"math/rand"

	"github.com/gonewx/ammodillo/pkg/components"
	"github.com/gonewx/ammodillo/pkg/config"
	"github.com/gonewx/ammodillo/pkg/ecs"
	"github.com/gonewx/ammodillo/pkg/entities"
	"github.com/gonewx/ammodillo/pkg/game"
	"github.com/gonewx/ammodillo/pkg/systems"
	"github.com/gonewx/ammodillo/pkg/systems/behavior"
	"github.com/gonewx/ammodillo/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// SceneArena 竞技场场景名称（SceneManager 工厂使用）
const SceneArena = "arena"

// ArenaScene 一局遭遇战
//
// 场景持有实体管理器和全部系统，每帧按固定顺序推进：
// 玩家 → 敌人 → 子弹 → 粒子/特效 → 碰撞 → 清理 → 波次 → Boss 演出 → 镜头。
// Reset 会丢弃整个世界并按配置重建。
type ArenaScene struct {
	cfg      *config.GameConfig
	sound    systems.SoundPlayer
	settings *game.SettingsManager
	rng      *rand.Rand

	entityManager *ecs.EntityManager
	gameState     *game.GameState

	cameraSystem     *systems.CameraSystem
	effects          *systems.EffectSpawner
	playerSystem     *systems.PlayerSystem
	actorSystem      *behavior.ActorSystem
	projectileSystem *systems.ProjectileSystem
	particleSystem   *systems.ParticleSystem
	effectSystem     *systems.EffectSystem
	lifetimeSystem   *systems.LifetimeSystem
	collisionSystem  *systems.CollisionSystem
	cullSystem       *systems.CullSystem
	waveSystem       *systems.WaveSystem
	bossSystem       *systems.BossSequenceSystem
	renderSystem     *systems.RenderSystem

	playerID ecs.EntityID
	resets   int
}

// NewArenaScene 创建竞技场场景
//
// 参数:
//   - cfg: 已校验的游戏配置
//   - sound: 音效播放器，可为 nil（静音）
//   - settings: 设置管理器，可为 nil（使用默认设置）
//   - seed: 随机种子；相同的种子与输入序列产生相同的战斗
func NewArenaScene(cfg *config.GameConfig, sound systems.SoundPlayer, settings *game.SettingsManager, seed int64) *ArenaScene {
	s := &ArenaScene{
		cfg:      cfg,
		sound:    sound,
		settings: settings,
		rng:      rand.New(rand.NewSource(seed)),
	}
	s.buildWorld()
	log.Printf("[ArenaScene] Created (seed: %d)", seed)
	return s
}

// buildWorld 创建实体管理器、全部系统和玩家
func (s *ArenaScene) buildWorld() {
	cfg := s.cfg
	bounds := cfg.Arena.Bounds()

	s.entityManager = ecs.NewEntityManager()
	s.gameState = game.NewGameState()

	s.cameraSystem = systems.NewCameraSystem(s.entityManager, cfg.Arena.Camera, cfg.Arena.TileSize)
	if s.settings != nil {
		s.cameraSystem.SetShakeEnabled(s.settings.GetSettings().ScreenShake)
	}
	s.effects = systems.NewEffectSpawner(s.entityManager, cfg.Projectiles, s.rng, s.cameraSystem, s.sound)

	s.playerSystem = systems.NewPlayerSystem(s.entityManager, cfg.Player, bounds, s.effects, s.gameState)
	s.actorSystem = behavior.NewActorSystem(s.entityManager, cfg.Actors, cfg.Projectiles.Bullet, bounds, s.effects, s.gameState, s.rng)
	s.projectileSystem = systems.NewProjectileSystem(s.entityManager, bounds)
	s.particleSystem = systems.NewParticleSystem(s.entityManager, bounds)
	s.effectSystem = systems.NewEffectSystem(s.entityManager)
	s.lifetimeSystem = systems.NewLifetimeSystem(s.entityManager)
	s.collisionSystem = systems.NewCollisionSystem(s.entityManager, s.playerSystem, s.actorSystem)
	s.cullSystem = systems.NewCullSystem(s.entityManager, s.effects)
	s.waveSystem = systems.NewWaveSystem(s.entityManager, cfg, s.rng, s.playerSystem, s.effects, s.gameState)
	s.bossSystem = systems.NewBossSequenceSystem(
		s.entityManager,
		cfg.Arena.BossSequence,
		s.playerSystem,
		s.actorSystem,
		s.cameraSystem,
		s.effects,
		s.gameState,
	)

	arches := make([]utils.Vec2, 0, len(cfg.Arena.Arches))
	for _, name := range []string{"center", "left", "right"} {
		if arch, ok := cfg.Arena.Arch(name); ok {
			arches = append(arches, arch)
		}
	}
	s.renderSystem = systems.NewRenderSystem(s.entityManager, s.cameraSystem, bounds, arches)

	s.playerID = entities.NewPlayer(s.entityManager, cfg.Player)
}

// Tick 推进一帧模拟
//
// dt 会被限制在 MaxDeltaTime 以内。
func (s *ArenaScene) Tick(dt float64, input utils.InputSnapshot) {
	if dt <= 0 {
		return
	}
	dt = math.Min(dt, s.cfg.Arena.MaxDeltaTime)

	s.playerSystem.Update(dt, input)
	s.actorSystem.Update(dt)
	s.projectileSystem.Update(dt)
	s.particleSystem.Update(dt)
	s.effectSystem.Update(dt)
	s.lifetimeSystem.Update(dt)

	s.collisionSystem.Update()
	s.cullSystem.Update()

	s.waveSystem.Update(dt)
	s.bossSystem.Update(dt)

	s.cameraSystem.Update(dt, input.Cursor)
	s.gameState.Advance(dt)
}

// Update 实现 game.Scene：读取输入并推进一帧
func (s *ArenaScene) Update(deltaTime float64) {
	center := utils.Vec2{X: config.GameWindowWidth / 2, Y: config.GameWindowHeight / 2}
	input := utils.PollInput(s.cameraSystem.ScreenToWorld, center)
	if input.ResetPressed {
		s.Reset()
		return
	}
	s.Tick(deltaTime, input)
}

// Reset 丢弃当前世界并按配置重建
func (s *ArenaScene) Reset() {
	s.resets++
	s.buildWorld()
	log.Printf("[ArenaScene] Reset (#%d)", s.resets)
}

// TriggerBoss 立即开始 Boss 演出（波次队列保持不变）
//
// 返回:
//   - bool: 是否真正开始了演出；已经开始过时返回 false
func (s *ArenaScene) TriggerBoss() bool {
	return s.waveSystem.TriggerBoss()
}

// Draw 实现 game.Scene：绘制世界、死亡遮罩和 HUD
func (s *ArenaScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)
	systems.DrawShade(screen, s.gameState.ShadeAlpha)

	if s.settings != nil && !s.settings.GetSettings().ShowHUD {
		return
	}
	ebitenutil.DebugPrintAt(screen, s.hudText(), 8, 8)
}

// hudText 左上角调试信息
func (s *ArenaScene) hudText() string {
	hp, pocket := 0, 0
	if health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, s.playerID); ok {
		hp = health.CurrentHealth
	}
	if pc, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, s.playerID); ok {
		pocket = len(pc.Pocket)
	}

	text := fmt.Sprintf("HP: %d/%d  Pocket: %d/%d\nWave: %d/%d  Kills: %d",
		hp, s.cfg.Player.MaxHP,
		pocket, s.cfg.Player.PocketSize,
		s.gameState.WavesStarted, len(s.cfg.Waves.Waves),
		s.gameState.Kills,
	)
	if s.bossSystem.InCutscene() {
		text += "\n!!!"
	}
	switch s.gameState.Outcome {
	case game.OutcomeVictory:
		text += "\nVICTORY  [R] restart"
	case game.OutcomeDefeat:
		text += "\nDEFEAT  [R] restart"
	}
	return text
}

// EntityManager 当前世界的实体管理器（Reset 后会变化）
func (s *ArenaScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// GameState 当前一局的状态
func (s *ArenaScene) GameState() *game.GameState {
	return s.gameState
}

// PlayerID 当前玩家实体
func (s *ArenaScene) PlayerID() ecs.EntityID {
	return s.playerID
}

// Waves 波次系统
func (s *ArenaScene) Waves() *systems.WaveSystem {
	return s.waveSystem
}

// BossSequence Boss 演出系统
func (s *ArenaScene) BossSequence() *systems.BossSequenceSystem {
	return s.bossSystem
}

// Players 玩家系统
func (s *ArenaScene) Players() *systems.PlayerSystem {
	return s.playerSystem
}
