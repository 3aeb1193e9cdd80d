package components

// ActorKind 敌人类型（封闭集合）
type ActorKind int

const (
	// ActorBasic 基础冲锋者：固定周期单发
	ActorBasic ActorKind = iota
	// ActorBursty 连发鸟：机枪/环形弹幕两种模式交替，打空弹夹后装填
	ActorBursty
	// ActorChick 小鸡：与基础敌人相同，但射速更慢、出生时随机相位
	ActorChick
	// ActorKing Boss：激活前休眠，激活后在洒水/脉冲两种弹幕间切换
	ActorKing
)

// String 返回类型名称（与 actors.yaml 中的键一致）
func (k ActorKind) String() string {
	switch k {
	case ActorBasic:
		return "basic"
	case ActorBursty:
		return "bursty"
	case ActorChick:
		return "chick"
	case ActorKing:
		return "king"
	default:
		return "unknown"
	}
}

// ActorMode 转向目标
type ActorMode int

const (
	// ModeFollowPlayer 追随玩家
	ModeFollowPlayer ActorMode = iota
	// ModeFollowPosition 追随固定点（Boss 定点）
	ModeFollowPosition
)

// AttackPattern Boss 弹幕模式
type AttackPattern int

const (
	// PatternSprinkler 洒水：每个周期向相反方向各发一颗，角度来回扫动
	PatternSprinkler AttackPattern = iota
	// PatternPulsar 脉冲：每个周期发射一整圈
	PatternPulsar
)

// String 返回弹幕模式名称（日志用）
func (p AttackPattern) String() string {
	if p == PatternPulsar {
		return "Pulsar"
	}
	return "Sprinkler"
}

// BurstAttack 连发鸟的下一轮攻击
type BurstAttack int

const (
	// BurstMachineGun 逐发射击直到弹夹打空
	BurstMachineGun BurstAttack = iota
	// BurstRadial 一次性打出整圈，清空弹夹
	BurstRadial
)

// ActorComponent 敌人的共享数据记录
//
// 所有类型共用同一结构；类型专用字段（弹夹、弹幕模式、Boss 状态）
// 只由对应类型的行为处理函数读写。
type ActorComponent struct {
	Kind ActorKind

	// 运动
	Accel        float64
	MaxSpeed     float64
	Deceleration float64 // 每秒速度保留比例（velocity *= d^dt）

	// 射击
	BulletPeriod    float64
	SinceLastBullet float64 // 为负表示仍在等待（出生延迟或装填）
	BulletSpeed     float64
	RecoilSpeed     float64

	// 弹夹（bursty / king）
	Clip       int
	ClipSize   int
	ReloadTime float64
	NextAttack BurstAttack

	// 转向
	Mode    ActorMode
	TargetX float64
	TargetY float64

	// Boss 专用
	Active     bool          // 是否已激活
	Engaged    bool          // 是否在主敌人集合中（参与碰撞和波次计数）
	Pattern    AttackPattern // 当前弹幕模式
	SweepAngle float64       // 洒水角度偏移
	RecoilLock Countdown     // 射击后的限速窗口

	// 表现
	DeathFeathers int
	HitFeathers   int
	Facing        int     // 朝向：1 向右，-1 向左
	HopTimer      float64 // 小鸡跳跃计时（仅用于绘制偏移）
	Dying         bool    // 已触发死亡效果（防止重复）
}
