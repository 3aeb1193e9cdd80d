// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSnapshot 一帧的输入快照
//
// 模拟核心只读取这个结构体，不直接访问 ebiten 的输入 API，
// 因此测试可以手工构造任意输入序列。
type InputSnapshot struct {
	// 移动意图
	Up, Down, Left, Right bool
	// 开火键是否按住（鼠标左键或触摸）
	Fire bool
	// 闪避键本帧刚按下（边沿触发）
	DodgePressed bool
	// 重置键本帧刚按下（边沿触发）
	ResetPressed bool
	// 光标在竞技场坐标系中的位置
	Cursor Vec2
}

// ScreenToWorld 把屏幕像素坐标转换为竞技场坐标
type ScreenToWorld func(sx, sy float64) Vec2

// 键位
const (
	KeyUp    = ebiten.KeyW
	KeyDown  = ebiten.KeyS
	KeyLeft  = ebiten.KeyA
	KeyRight = ebiten.KeyD
	KeyDodge = ebiten.KeySpace
	KeyReset = ebiten.KeyR
)

// TouchDeadZone 虚拟摇杆的死区半径（像素）
const TouchDeadZone = 40.0

// PollInput 从 ebiten 读取当前帧的输入状态
// 同时支持鼠标和触摸，优先使用触摸位置
//
// 参数:
//   - toWorld: 屏幕坐标到竞技场坐标的转换（通常由镜头提供）
//   - stickCenter: 移动端虚拟摇杆中心（屏幕像素）
//
// 返回:
//   - InputSnapshot: 本帧输入快照
func PollInput(toWorld ScreenToWorld, stickCenter Vec2) InputSnapshot {
	if IsMobile() {
		return pollTouch(toWorld, stickCenter)
	}

	snapshot := InputSnapshot{
		Up:           ebiten.IsKeyPressed(KeyUp) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:         ebiten.IsKeyPressed(KeyDown) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:         ebiten.IsKeyPressed(KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:        ebiten.IsKeyPressed(KeyRight) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		DodgePressed: inpututil.IsKeyJustPressed(KeyDodge) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
		ResetPressed: inpututil.IsKeyJustPressed(KeyReset),
	}

	pressed, x, y := GetPointerState()
	snapshot.Fire = pressed
	if toWorld != nil {
		snapshot.Cursor = toWorld(float64(x), float64(y))
	}
	return snapshot
}

// pollTouch 移动端操作：第一根手指是虚拟摇杆，第二根手指按住开火，
// 第二根手指按下的那一帧同时触发闪避
func pollTouch(toWorld ScreenToWorld, stickCenter Vec2) InputSnapshot {
	var snapshot InputSnapshot

	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) == 0 {
		return snapshot
	}

	x, y := ebiten.TouchPosition(touchIDs[0])
	snapshot.Up, snapshot.Down, snapshot.Left, snapshot.Right = StickIntent(
		Vec2{X: float64(x), Y: float64(y)}, stickCenter, TouchDeadZone)

	if len(touchIDs) < 2 {
		return snapshot
	}
	aim := touchIDs[1]
	ax, ay := ebiten.TouchPosition(aim)
	snapshot.Fire = true
	if toWorld != nil {
		snapshot.Cursor = toWorld(float64(ax), float64(ay))
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		if id == aim {
			snapshot.DodgePressed = true
		}
	}
	return snapshot
}

// StickIntent 把触点相对摇杆中心的偏移转换为方向键状态
// 偏移在死区内时没有移动；每个轴的分量超过偏移长度的一半才算按下
func StickIntent(touch, center Vec2, deadZone float64) (up, down, left, right bool) {
	d := Sub(touch, center)
	length := Magnitude(d)
	if length <= deadZone {
		return false, false, false, false
	}
	threshold := length / 2
	return d.Y < -threshold, d.Y > threshold, d.X < -threshold, d.X > threshold
}

// GetPointerState 获取指针的完整状态
// 返回：是否按下、X坐标、Y坐标
func GetPointerState() (pressed bool, x, y int) {
	// 检查触摸
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y = ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	// 检查鼠标
	x, y = ebiten.CursorPosition()
	pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	return pressed, x, y
}

// MoveIntent 把方向键状态转换为移动方向（未归一化，分量为 -1/0/1）
func (s InputSnapshot) MoveIntent() Vec2 {
	var v Vec2
	if s.Up {
		v.Y--
	}
	if s.Down {
		v.Y++
	}
	if s.Left {
		v.X--
	}
	if s.Right {
		v.X++
	}
	return v
}
