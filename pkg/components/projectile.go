package components

// ProjectileComponent 子弹数据
//
// Friendly 决定子弹能伤害哪一方：敌方子弹只与玩家检测，友方子弹只与敌人检测。
// 玩家接住的子弹保留同一个实体，InPocket 为 true 时不参与积分、碰撞和绘制。
type ProjectileComponent struct {
	Friendly  bool
	Damage    int
	Knockback float64

	Age        float64 // 自发射起经过的时间（秒）
	TimeToLive float64 // Age 达到该值即死亡

	OutOfBounds bool // 本帧离开了竞技场
	InPocket    bool // 在玩家口袋中
	Fresh       bool // 敌人本帧刚射出，下一帧才参与碰撞
}
