package components

// VelocityComponent 存储实体的速度（格/秒）
type VelocityComponent struct {
	VX float64
	VY float64
}
