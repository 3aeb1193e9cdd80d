package systems

import (
	"math"

	"github.com/gonewx/ammodillo/pkg/components"
	"github.com/gonewx/ammodillo/pkg/config"
	"github.com/gonewx/ammodillo/pkg/ecs"
	"github.com/gonewx/ammodillo/pkg/utils"
)

// CameraSystem 管理镜头跟随、缩放与震动，并提供世界坐标与屏幕坐标的转换。
//
// 自由模式下镜头目标是光标与玩家位置的加权平均（Tightness 为玩家权重）；
// 聚焦模式下目标由外部通过 SetTarget 设置（Boss 入场演出）。
type CameraSystem struct {
	entityManager *ecs.EntityManager
	cfg           config.CameraConfig
	tileSize      float64
	screenWidth   float64
	screenHeight  float64
	cameraEntity  ecs.EntityID
	shakeEnabled  bool
}

// NewCameraSystem 创建镜头系统并创建镜头实体。
func NewCameraSystem(em *ecs.EntityManager, cfg config.CameraConfig, tileSize float64) *CameraSystem {
	cs := &CameraSystem{
		entityManager: em,
		cfg:           cfg,
		tileSize:      tileSize,
		screenWidth:   config.GameWindowWidth,
		screenHeight:  config.GameWindowHeight,
		shakeEnabled:  true,
	}

	cs.cameraEntity = em.CreateEntity()
	ecs.AddComponent(em, cs.cameraEntity, &components.CameraComponent{
		Scale:       1.0,
		TargetScale: 1.0,
	})

	return cs
}

// SetShakeEnabled 开关镜头震动（设置项）
func (cs *CameraSystem) SetShakeEnabled(enabled bool) {
	cs.shakeEnabled = enabled
}

// Update 推进镜头：震动衰减、目标跟随、缩放插值。
//
// 参数:
//   - dt: 帧时间（秒）
//   - cursor: 光标的世界坐标
func (cs *CameraSystem) Update(dt float64, cursor utils.Vec2) {
	cam := cs.component()
	if cam == nil {
		return
	}

	cam.SinceShake += dt
	cam.ShakeMagnitude *= math.Pow(cs.cfg.ShakeDecay, dt)
	cam.ShakeMagnitude = math.Max(0, cam.ShakeMagnitude-cs.cfg.ShakeLinearDecay*dt)

	if !cam.FocusMode {
		if player, ok := cs.playerPosition(); ok {
			tightness := cs.cfg.Tightness
			cam.TargetX = cursor.X*(1-tightness) + player.X*tightness
			cam.TargetY = cursor.Y*(1-tightness) + player.Y*tightness
		}
	}

	cam.TrueX += cs.cfg.FollowRate * (cam.TargetX - cam.TrueX) * dt
	cam.TrueY += cs.cfg.FollowRate * (cam.TargetY - cam.TrueY) * dt

	offset := cs.shakeOffset(cam)
	cam.X = cam.TrueX + offset
	cam.Y = cam.TrueY + offset

	cam.Scale += (cam.TargetScale - cam.Scale) * dt * cs.cfg.ZoomRate
}

// shakeOffset 当前震动偏移（两个轴使用同一个相位）
func (cs *CameraSystem) shakeOffset(cam *components.CameraComponent) float64 {
	if !cs.shakeEnabled {
		return 0
	}
	return math.Sin(cam.SinceShake*cs.cfg.ShakeFrequency) * cam.ShakeMagnitude
}

// Shake 请求震动；只会增大当前震动幅度，不会减小
func (cs *CameraSystem) Shake(magnitude float64) {
	if cam := cs.component(); cam != nil {
		cam.ShakeMagnitude = math.Max(cam.ShakeMagnitude, magnitude)
	}
}

// ShakeMagnitude 当前震动幅度
func (cs *CameraSystem) ShakeMagnitude() float64 {
	if cam := cs.component(); cam != nil {
		return cam.ShakeMagnitude
	}
	return 0
}

// SetTarget 设置镜头目标位置（聚焦模式下使用）
func (cs *CameraSystem) SetTarget(pos utils.Vec2) {
	if cam := cs.component(); cam != nil {
		cam.TargetX = pos.X
		cam.TargetY = pos.Y
	}
}

// SetFocus 切换聚焦模式
func (cs *CameraSystem) SetFocus(focus bool) {
	if cam := cs.component(); cam != nil {
		cam.FocusMode = focus
	}
}

// IsFocused 是否处于聚焦模式
func (cs *CameraSystem) IsFocused() bool {
	if cam := cs.component(); cam != nil {
		return cam.FocusMode
	}
	return false
}

// Position 镜头位置（含震动）
func (cs *CameraSystem) Position() utils.Vec2 {
	if cam := cs.component(); cam != nil {
		return utils.Vec2{X: cam.X, Y: cam.Y}
	}
	return utils.Vec2{}
}

// Scale 当前缩放
func (cs *CameraSystem) Scale() float64 {
	if cam := cs.component(); cam != nil {
		return cam.Scale
	}
	return 1.0
}

// PixelsPerUnit 一格在屏幕上的像素数
func (cs *CameraSystem) PixelsPerUnit() float64 {
	return cs.Scale() * cs.tileSize
}

// WorldToScreen 世界坐标 -> 屏幕坐标
func (cs *CameraSystem) WorldToScreen(p utils.Vec2) (float64, float64) {
	cam := cs.Position()
	ppu := cs.PixelsPerUnit()
	return (p.X-cam.X)*ppu + cs.screenWidth/2, (p.Y-cam.Y)*ppu + cs.screenHeight/2
}

// ScreenToWorld 屏幕坐标 -> 世界坐标（WorldToScreen 的逆变换）
func (cs *CameraSystem) ScreenToWorld(sx, sy float64) utils.Vec2 {
	cam := cs.Position()
	ppu := cs.PixelsPerUnit()
	return utils.Vec2{
		X: (sx-cs.screenWidth/2)/ppu + cam.X,
		Y: (sy-cs.screenHeight/2)/ppu + cam.Y,
	}
}

func (cs *CameraSystem) component() *components.CameraComponent {
	cam, ok := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity)
	if !ok {
		return nil
	}
	return cam
}

// playerPosition 返回第一个存活玩家的位置
func (cs *CameraSystem) playerPosition() (utils.Vec2, bool) {
	for _, id := range ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](cs.entityManager) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](cs.entityManager, id)
		return utils.Vec2{X: pos.X, Y: pos.Y}, true
	}
	return utils.Vec2{}, false
}
