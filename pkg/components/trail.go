package components

// TrailComponent 子弹拖尾：最近 N 个采样位置组成的环形缓冲
//
// 缓冲长度在创建时确定，之后不再变化。Head 指向最新的采样。
type TrailComponent struct {
	Points      []TrailPoint
	Head        int
	SinceSample float64 // 距离上次采样的时间（秒）
	Period      float64 // 采样间隔（秒）
}

// TrailPoint 拖尾采样点
type TrailPoint struct {
	X, Y float64
}

// NewTrailComponent 创建长度为 length、全部位于 (x, y) 的拖尾
func NewTrailComponent(length int, period, x, y float64) *TrailComponent {
	if length < 1 {
		length = 1
	}
	t := &TrailComponent{
		Points: make([]TrailPoint, length),
		Period: period,
	}
	t.Reset(x, y)
	return t
}

// Reset 把整条拖尾压平到 (x, y)，并重新开始采样计时
func (t *TrailComponent) Reset(x, y float64) {
	for i := range t.Points {
		t.Points[i] = TrailPoint{X: x, Y: y}
	}
	t.Head = 0
	t.SinceSample = 0
}

// Push 写入一个新采样，覆盖最旧的采样
func (t *TrailComponent) Push(x, y float64) {
	if len(t.Points) == 0 {
		return
	}
	t.Head = (t.Head - 1 + len(t.Points)) % len(t.Points)
	t.Points[t.Head] = TrailPoint{X: x, Y: y}
}

// At 返回第 i 新的采样（0 为最新）
func (t *TrailComponent) At(i int) TrailPoint {
	return t.Points[(t.Head+i)%len(t.Points)]
}
