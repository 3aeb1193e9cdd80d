package systems

import (
	"log"
	"math/rand"

	"github.com/gonewx/ammodillo/pkg/components"
	"github.com/gonewx/ammodillo/pkg/config"
	"github.com/gonewx/ammodillo/pkg/ecs"
	"github.com/gonewx/ammodillo/pkg/entities"
	"github.com/gonewx/ammodillo/pkg/game"
)

// WaveSystem 波次调度
//
// 职责：
//   - 维护先进先出的波次队列
//   - 统计场上连续没有敌人的时间，超过间隔后激活下一波并为玩家回复 1 点生命
//   - 队列耗尽后触发 Boss 演出（只触发一次）
type WaveSystem struct {
	entityManager *ecs.EntityManager
	cfg           *config.GameConfig
	rng           *rand.Rand
	players       *PlayerSystem
	effects       *EffectSpawner
	gameState     *game.GameState
	stateEntity   ecs.EntityID
}

// NewWaveSystem 创建波次系统，并把配置中的全部波次放入队列
func NewWaveSystem(em *ecs.EntityManager, cfg *config.GameConfig, rng *rand.Rand, players *PlayerSystem, fx *EffectSpawner, gs *game.GameState) *WaveSystem {
	ws := &WaveSystem{
		entityManager: em,
		cfg:           cfg,
		rng:           rng,
		players:       players,
		effects:       fx,
		gameState:     gs,
	}

	pending := make([]config.WaveDefinition, len(cfg.Waves.Waves))
	copy(pending, cfg.Waves.Waves)

	ws.stateEntity = em.CreateEntity()
	ecs.AddComponent(em, ws.stateEntity, &components.WaveStateComponent{
		Pending: pending,
	})
	log.Printf("[WaveSystem] Created wave queue (ID: %d), total waves: %d", ws.stateEntity, len(pending))

	return ws
}

// State 返回波次状态组件
func (ws *WaveSystem) State() *components.WaveStateComponent {
	state, _ := ecs.GetComponent[*components.WaveStateComponent](ws.entityManager, ws.stateEntity)
	return state
}

// EnemyCount 主敌人集合中存活的敌人数量
func (ws *WaveSystem) EnemyCount() int {
	count := 0
	for _, id := range ecs.GetEntitiesWith1[*components.ActorComponent](ws.entityManager) {
		actor, _ := ecs.GetComponent[*components.ActorComponent](ws.entityManager, id)
		if actor.Engaged && !ws.entityManager.IsMarkedForDestroy(id) {
			count++
		}
	}
	return count
}

// Update 推进无敌人计时，必要时激活下一波或触发 Boss
func (ws *WaveSystem) Update(deltaTime float64) {
	state := ws.State()
	if state == nil {
		return
	}

	if ws.EnemyCount() > 0 {
		state.TimeWithoutEnemies = 0
		return
	}

	state.TimeWithoutEnemies += deltaTime
	if state.TimeWithoutEnemies < ws.cfg.Arena.WaveSpawnGap {
		return
	}
	state.TimeWithoutEnemies = 0

	if len(state.Pending) == 0 {
		ws.TriggerBoss()
		return
	}

	wave := state.Pending[0]
	state.Pending = state.Pending[1:]
	ws.activateWave(state, wave)
}

func (ws *WaveSystem) activateWave(state *components.WaveStateComponent, wave config.WaveDefinition) {
	spawned := 0
	for _, placement := range wave.Actors {
		if _, err := entities.NewActorFromPlacement(ws.entityManager, ws.cfg, placement, ws.rng); err != nil {
			log.Printf("[WaveSystem] Warning: failed to spawn %s: %v", placement.Kind, err)
			continue
		}
		spawned++
	}
	state.WavesActivated++

	if playerID, ok := ws.players.PlayerID(); ok {
		ws.players.Heal(playerID, 1)
	}
	if ws.gameState != nil {
		ws.gameState.RecordWave()
	}
	ws.effects.Play(game.SoundWave)

	log.Printf("[WaveSystem] Wave %d activated (%d actors, %d waves left)", state.WavesActivated, spawned, len(state.Pending))
}

// TriggerBoss 开始 Boss 演出：创建休眠的 King 与演出状态机
//
// 重复调用不会产生第二个演出。
//
// 返回:
//   - bool: 本次调用是否真正开始了演出
func (ws *WaveSystem) TriggerBoss() bool {
	state := ws.State()
	if state == nil || state.BossFightTriggered {
		return false
	}
	state.BossFightTriggered = true

	bossID, err := entities.NewActorFromPlacement(ws.entityManager, ws.cfg, ws.cfg.Waves.Boss, ws.rng)
	if err != nil {
		log.Printf("[WaveSystem] ERROR: failed to create boss: %v", err)
		return false
	}
	entities.NewBossSequence(ws.entityManager, bossID)
	if ws.gameState != nil {
		ws.gameState.BossStarted = true
	}

	log.Printf("[WaveSystem] Boss sequence triggered (boss ID: %d)", bossID)
	return true
}
