package components

// ParticleComponent 装饰性粒子（羽毛）
//
// Speed 按 Deceleration^dt 指数衰减，速度方向保持不变；
// 离开竞技场时被推回场内。
type ParticleComponent struct {
	Speed        float64
	Deceleration float64 // 每秒速度保留比例
	BouncePush   float64 // 出界时朝原点方向的推力
	Rotation     float64 // 绘制角度（弧度）
	Variant      int     // 外观变体（0..2）
}
