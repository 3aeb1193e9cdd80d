package components

import "github.com/gonewx/ammodillo/pkg/ecs"

// PlayerComponent 玩家状态
//
// 三个相互独立的标志：Dodging、Stun.Active（眩晕）、Blink.Active（受击闪烁）。
// Pocket 是接住的子弹实体栈，长度永远不超过 PocketSize。
type PlayerComponent struct {
	// 运动
	Accel        float64
	Deceleration float64
	MaxSpeed     float64

	// 闪避
	Dodging           bool
	SinceLastDodge    float64
	DodgeTime         float64
	DodgeSlowdownTime float64
	DodgeCooldown     float64
	MinDodgeSpeed     float64
	DodgeSpeed        float64
	NormalHitRadius   float64
	DodgeHitRadius    float64

	// 受击
	Stun          Countdown
	StunDuration  float64
	Blink         Countdown
	BlinkDuration float64

	// 接弹与反击
	Pocket        []ecs.EntityID
	PocketSize    int
	FireCooldown  float64
	SinceLastShot float64

	Dead   bool
	Facing int // 朝向：1 向右，-1 向左
}
