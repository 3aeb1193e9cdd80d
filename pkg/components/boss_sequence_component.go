package components

import "github.com/gonewx/ammodillo/pkg/ecs"

// BossPhase Boss 入场演出的阶段
type BossPhase int

const (
	// BossPhaseWindup 冻结并眩晕玩家，镜头移向 Boss；蓄力后施加起跳冲量
	BossPhaseWindup BossPhase = iota
	// BossPhaseRise 短暂停顿
	BossPhaseRise
	// BossPhaseFall Boss 从场外上方下落，越过落地线后停止并震屏
	BossPhaseFall
	// BossPhaseSettle 落地后停顿
	BossPhaseSettle
	// BossPhaseActivate 激活 Boss 并加入主敌人集合（持续一帧）
	BossPhaseActivate
	// BossPhaseBattle 正式战斗，直到 Boss 被击败
	BossPhaseBattle
	// BossPhaseDefeated Boss 已被击败
	BossPhaseDefeated
)

// String 返回阶段名称（日志用）
func (p BossPhase) String() string {
	switch p {
	case BossPhaseWindup:
		return "Windup"
	case BossPhaseRise:
		return "Rise"
	case BossPhaseFall:
		return "Fall"
	case BossPhaseSettle:
		return "Settle"
	case BossPhaseActivate:
		return "Activate"
	case BossPhaseBattle:
		return "Battle"
	case BossPhaseDefeated:
		return "Defeated"
	default:
		return "Unknown"
	}
}

// BossSequenceComponent Boss 演出状态机
type BossSequenceComponent struct {
	Phase      BossPhase
	PhaseTimer float64      // 当前阶段已经过的时间（秒）
	BossID     ecs.EntityID // Boss 实体
	Launched   bool         // Windup 阶段是否已施加起跳冲量
}
