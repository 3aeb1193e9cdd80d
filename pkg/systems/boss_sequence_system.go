package systems

import (
	"log"

	"github.com/gonewx/ammodillo/pkg/components"
	"github.com/gonewx/ammodillo/pkg/config"
	"github.com/gonewx/ammodillo/pkg/ecs"
	"github.com/gonewx/ammodillo/pkg/game"
	"github.com/gonewx/ammodillo/pkg/utils"
)

// BossActivator 唤醒休眠的 Boss（behavior.ActorSystem 实现此接口）
type BossActivator interface {
	Activate(actorID ecs.EntityID)
}

// BossSequenceSystem Boss 入场演出
//
// 管理六个阶段：
//   - Windup: 冻结并眩晕玩家，镜头聚焦 Boss；LaunchDelay 后施加一次冲量
//   - Rise: 短暂停顿
//   - Fall: Boss 移到场外上方并以固定速度下落，越过落地线后停止并震屏
//   - Settle: 落地后停顿，结束时激活 Boss
//   - Activate: Boss 加入主敌人集合，镜头与玩家恢复自由（持续一帧）
//   - Battle: 正式战斗，Boss 被击败后进入 Defeated
//
// 每个阶段只是同一帧循环中的一个状态，演出期间世界的其他部分照常更新。
type BossSequenceSystem struct {
	entityManager *ecs.EntityManager
	cfg           config.BossSequenceConfig
	players       *PlayerSystem
	activator     BossActivator
	camera        *CameraSystem
	effects       *EffectSpawner
	gameState     *game.GameState
}

// NewBossSequenceSystem 创建 Boss 演出系统
func NewBossSequenceSystem(
	em *ecs.EntityManager,
	cfg config.BossSequenceConfig,
	players *PlayerSystem,
	activator BossActivator,
	camera *CameraSystem,
	fx *EffectSpawner,
	gs *game.GameState,
) *BossSequenceSystem {
	return &BossSequenceSystem{
		entityManager: em,
		cfg:           cfg,
		players:       players,
		activator:     activator,
		camera:        camera,
		effects:       fx,
		gameState:     gs,
	}
}

// Sequence 返回当前演出状态（没有演出时返回 nil）
func (s *BossSequenceSystem) Sequence() *components.BossSequenceComponent {
	for _, id := range ecs.GetEntitiesWith1[*components.BossSequenceComponent](s.entityManager) {
		seq, _ := ecs.GetComponent[*components.BossSequenceComponent](s.entityManager, id)
		return seq
	}
	return nil
}

// InCutscene 演出是否处于玩家被冻结的阶段
func (s *BossSequenceSystem) InCutscene() bool {
	seq := s.Sequence()
	return seq != nil && seq.Phase < components.BossPhaseActivate
}

// Update 推进演出状态机
func (s *BossSequenceSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.BossSequenceComponent](s.entityManager) {
		seq, _ := ecs.GetComponent[*components.BossSequenceComponent](s.entityManager, id)
		s.updateSequence(id, seq, deltaTime)
	}
}

func (s *BossSequenceSystem) updateSequence(id ecs.EntityID, seq *components.BossSequenceComponent, dt float64) {
	if seq.Phase == components.BossPhaseDefeated {
		return
	}

	pos, posOK := ecs.GetComponent[*components.PositionComponent](s.entityManager, seq.BossID)
	vel, velOK := ecs.GetComponent[*components.VelocityComponent](s.entityManager, seq.BossID)
	bossGone := !posOK || !velOK || s.entityManager.IsMarkedForDestroy(seq.BossID)

	if bossGone {
		if seq.Phase == components.BossPhaseBattle {
			s.enterPhase(seq, components.BossPhaseDefeated)
			if s.gameState != nil {
				s.gameState.MarkVictory()
			}
			log.Printf("[BossSequenceSystem] Boss %d defeated, arena cleared", seq.BossID)
			return
		}
		// Boss 在入场前消失（例如场景重置），直接结束演出
		log.Printf("[BossSequenceSystem] Boss %d vanished during %s, sequence aborted", seq.BossID, seq.Phase)
		s.releaseCutscene()
		s.entityManager.DestroyEntity(id)
		return
	}

	seq.PhaseTimer += dt

	if seq.Phase < components.BossPhaseActivate {
		s.holdCutscene(utils.Vec2{X: pos.X, Y: pos.Y})
	}

	switch seq.Phase {
	case components.BossPhaseWindup:
		if !seq.Launched && seq.PhaseTimer >= s.cfg.LaunchDelay {
			seq.Launched = true
			vel.VX += s.cfg.LaunchVelocity.X
			vel.VY += s.cfg.LaunchVelocity.Y
		}
		if seq.PhaseTimer > s.cfg.WindupDuration {
			s.enterPhase(seq, components.BossPhaseRise)
		}

	case components.BossPhaseRise:
		if seq.PhaseTimer > s.cfg.RiseDuration {
			pos.X = s.cfg.FallStart.X
			pos.Y = s.cfg.FallStart.Y
			vel.VX, vel.VY = 0, s.cfg.FallSpeed
			s.enterPhase(seq, components.BossPhaseFall)
		}

	case components.BossPhaseFall:
		if pos.Y >= s.cfg.LandY {
			vel.VX, vel.VY = 0, 0
			s.effects.Shake(s.cfg.LandShake)
			s.effects.Play(game.SoundBossLand)
			s.enterPhase(seq, components.BossPhaseSettle)
			return
		}
		vel.VX, vel.VY = 0, s.cfg.FallSpeed

	case components.BossPhaseSettle:
		if seq.PhaseTimer > s.cfg.SettleDuration {
			s.activator.Activate(seq.BossID)
			s.enterPhase(seq, components.BossPhaseActivate)
		}

	case components.BossPhaseActivate:
		if actor, ok := ecs.GetComponent[*components.ActorComponent](s.entityManager, seq.BossID); ok {
			actor.Engaged = true
		}
		s.releaseCutscene()
		s.enterPhase(seq, components.BossPhaseBattle)
	}
}

func (s *BossSequenceSystem) enterPhase(seq *components.BossSequenceComponent, phase components.BossPhase) {
	log.Printf("[BossSequenceSystem] Phase %s -> %s (after %.2fs)", seq.Phase, phase, seq.PhaseTimer)
	seq.Phase = phase
	seq.PhaseTimer = 0
}

// holdCutscene 演出期间冻结玩家并让镜头对准 Boss
func (s *BossSequenceSystem) holdCutscene(bossPos utils.Vec2) {
	if playerID, ok := s.players.PlayerID(); ok {
		s.players.Freeze(playerID)
	}
	if s.camera != nil {
		s.camera.SetFocus(true)
		s.camera.SetTarget(bossPos)
	}
}

func (s *BossSequenceSystem) releaseCutscene() {
	if s.camera != nil {
		s.camera.SetFocus(false)
	}
}
