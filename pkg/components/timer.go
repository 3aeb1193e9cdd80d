package components

// Countdown 显式的倒计时状态
//
// Active 为 true 时表示仍在计时，Remaining 为剩余秒数。
// 用于眩晕、受击闪烁、Boss 后坐锁定等可被覆盖的计时。
type Countdown struct {
	Active    bool
	Remaining float64
}

// Start 开始倒计时；已有更长的剩余时间时保持不变
func (c *Countdown) Start(duration float64) {
	if duration <= 0 {
		return
	}
	if c.Active && c.Remaining >= duration {
		return
	}
	c.Active = true
	c.Remaining = duration
}

// Tick 推进倒计时，到期时自动结束
func (c *Countdown) Tick(dt float64) {
	if !c.Active {
		return
	}
	c.Remaining -= dt
	if c.Remaining <= 0 {
		c.Active = false
		c.Remaining = 0
	}
}

// Cancel 立即结束倒计时
func (c *Countdown) Cancel() {
	c.Active = false
	c.Remaining = 0
}
