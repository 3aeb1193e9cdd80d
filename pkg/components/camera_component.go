package components

// CameraComponent 镜头状态
//
// TrueX/TrueY 是平滑追随后的位置，X/Y 是叠加震动偏移后的最终位置。
// FocusMode 为 true 时镜头目标由外部（Boss 演出）设置，不再跟随玩家与光标。
type CameraComponent struct {
	X, Y         float64
	TrueX, TrueY float64

	TargetX float64
	TargetY float64

	Scale       float64
	TargetScale float64

	ShakeMagnitude float64
	SinceShake     float64

	FocusMode bool
}
