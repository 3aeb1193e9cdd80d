package game

import "log"

// Outcome 一局遭遇战的结果
type Outcome int

const (
	// OutcomePlaying 战斗进行中
	OutcomePlaying Outcome = iota
	// OutcomeVictory Boss 被击败
	OutcomeVictory
	// OutcomeDefeat 玩家死亡
	OutcomeDefeat
)

// String 返回结果名称
func (o Outcome) String() string {
	switch o {
	case OutcomeVictory:
		return "Victory"
	case OutcomeDefeat:
		return "Defeat"
	default:
		return "Playing"
	}
}

// 死亡遮罩参数
const (
	shadeRate     = 100.0 // 每秒增加的不透明度（0~255 标度）
	shadeMaxAlpha = 150.0
)

// GameState 存储一局遭遇战的全局状态
// 由场景持有，Reset 时整体重建；系统只通过方法修改它
type GameState struct {
	Outcome Outcome

	Elapsed      float64 // 本局经过的模拟时间（秒）
	WavesStarted int     // 已激活的波次数
	Kills        int     // 击败的敌人数量
	BossStarted  bool    // Boss 演出是否已开始

	// ShadeAlpha 玩家死亡后逐渐加深的黑色遮罩（0~150）
	ShadeAlpha float64
}

// NewGameState 创建新的游戏状态
func NewGameState() *GameState {
	return &GameState{}
}

// Advance 推进计时与死亡遮罩
func (gs *GameState) Advance(deltaTime float64) {
	gs.Elapsed += deltaTime
	if gs.Outcome == OutcomeDefeat && gs.ShadeAlpha < shadeMaxAlpha {
		gs.ShadeAlpha += deltaTime * shadeRate
		if gs.ShadeAlpha > shadeMaxAlpha {
			gs.ShadeAlpha = shadeMaxAlpha
		}
	}
}

// RecordKill 记录一次击杀
func (gs *GameState) RecordKill() {
	gs.Kills++
}

// RecordWave 记录一次波次激活
func (gs *GameState) RecordWave() {
	gs.WavesStarted++
}

// MarkDefeat 玩家死亡；已分出胜负时不再改变
func (gs *GameState) MarkDefeat() {
	if gs.Outcome != OutcomePlaying {
		return
	}
	gs.Outcome = OutcomeDefeat
	log.Printf("[GameState] Defeat at %.1fs (kills: %d)", gs.Elapsed, gs.Kills)
}

// MarkVictory Boss 被击败；已分出胜负时不再改变
func (gs *GameState) MarkVictory() {
	if gs.Outcome != OutcomePlaying {
		return
	}
	gs.Outcome = OutcomeVictory
	log.Printf("[GameState] Victory at %.1fs (kills: %d)", gs.Elapsed, gs.Kills)
}

// IsOver 是否已分出胜负
func (gs *GameState) IsOver() bool {
	return gs.Outcome != OutcomePlaying
}
