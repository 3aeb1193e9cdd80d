package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 由 SceneManager 驱动的场景，同一时刻只有一个场景在更新和绘制
type Scene interface {
	// Update 推进场景逻辑，deltaTime 为本帧经过的秒数
	Update(deltaTime float64)

	// Draw 把场景绘制到 screen
	Draw(screen *ebiten.Image)
}

// Resettable 是一个可选接口，支持场景原地重开
type Resettable interface {
	// Reset 丢弃当前状态并按配置重建
	Reset()
}
