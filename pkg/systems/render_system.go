package systems

import (
	"image/color"
	"math"

	"github.com/gonewx/ammodillo/pkg/components"
	"github.com/gonewx/ammodillo/pkg/ecs"
	"github.com/gonewx/ammodillo/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// 竞技场边界绘制时的折线段数
const arenaOutlineSegments = 96

// 小鸡跳跃的绘制参数
const (
	chickHopPeriod = 0.45 // 一次跳跃的时长（秒）
	chickHopHeight = 0.25 // 跳跃高度（格）
)

// 各类实体的绘制颜色
var (
	arenaFloorColor   = color.RGBA{R: 58, G: 50, B: 44, A: 255}
	arenaOutlineColor = colornames.Burlywood
	archColor         = colornames.Saddlebrown

	playerColor      = colornames.Khaki
	playerStunColor  = colornames.Gray
	playerBlinkColor = colornames.White
	playerDodgeColor = colornames.Lightskyblue
	pocketColor      = colornames.Gold

	hostileBulletColor  = colornames.Tomato
	friendlyBulletColor = colornames.Gold

	splashColor      = colornames.Lightcyan
	bulletSpawnColor = colornames.Orange

	featherColors = []color.RGBA{colornames.Whitesmoke, colornames.Wheat, colornames.Lightgray}

	actorColors = map[components.ActorKind]color.RGBA{
		components.ActorBasic:  colornames.Indianred,
		components.ActorBursty: colornames.Mediumpurple,
		components.ActorChick:  colornames.Yellow,
		components.ActorKing:   colornames.Crimson,
	}
)

// RenderSystem 绘制竞技场中的所有实体
//
// 绘制顺序：地面与边界 → 羽毛 → 特效 → 敌人 → 玩家 → 子弹。
// 所有坐标都通过 CameraSystem 从世界坐标（格）转换为屏幕像素。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	camera        *CameraSystem
	bounds        utils.ArenaBounds
	arches        []utils.Vec2
}

// NewRenderSystem 创建渲染系统
//
// 参数:
//   - em: EntityManager 实例
//   - camera: 镜头系统（坐标变换）
//   - bounds: 竞技场边界（绘制椭圆）
//   - arches: 拱门位置（绘制入口标记）
func NewRenderSystem(em *ecs.EntityManager, camera *CameraSystem, bounds utils.ArenaBounds, arches []utils.Vec2) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		camera:        camera,
		bounds:        bounds,
		arches:        arches,
	}
}

// Draw 绘制一帧
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	s.drawArena(screen)
	s.drawFeathers(screen)
	s.drawEffects(screen)
	s.drawActors(screen)
	s.drawPlayer(screen)
	s.drawProjectiles(screen)
}

// toScreen 世界坐标 -> 屏幕坐标（float32）
func (s *RenderSystem) toScreen(p utils.Vec2) (float32, float32) {
	x, y := s.camera.WorldToScreen(p)
	return float32(x), float32(y)
}

// pixels 世界长度 -> 屏幕像素
func (s *RenderSystem) pixels(units float64) float32 {
	return float32(units * s.camera.PixelsPerUnit())
}

func (s *RenderSystem) drawArena(screen *ebiten.Image) {
	screen.Fill(color.Black)

	// 椭圆没有现成的填充原语，用同心折线近似地面
	outline := make([]utils.Vec2, arenaOutlineSegments)
	for i := range outline {
		angle := float64(i) / arenaOutlineSegments * 2 * math.Pi
		outline[i] = utils.Vec2{
			X: math.Cos(angle) * s.bounds.MajorRadius,
			Y: math.Sin(angle) * s.bounds.MinorRadius,
		}
	}

	for ring := 0.0; ring < 1.0; ring += 0.08 {
		s.strokePolygon(screen, outline, 1-ring, s.pixels(0.5), arenaFloorColor)
	}
	s.strokePolygon(screen, outline, 1, 3, arenaOutlineColor)

	for _, arch := range s.arches {
		x, y := s.toScreen(arch)
		vector.DrawFilledRect(screen, x-s.pixels(0.6), y-s.pixels(0.4), s.pixels(1.2), s.pixels(0.8), archColor, false)
	}
}

// strokePolygon 以 scale 缩放闭合折线并描边
func (s *RenderSystem) strokePolygon(screen *ebiten.Image, points []utils.Vec2, scale float64, width float32, clr color.Color) {
	for i := range points {
		a := utils.Scale(points[i], scale)
		b := utils.Scale(points[(i+1)%len(points)], scale)
		x0, y0 := s.toScreen(a)
		x1, y1 := s.toScreen(b)
		vector.StrokeLine(screen, x0, y0, x1, y1, width, clr, false)
	}
}

func (s *RenderSystem) drawFeathers(screen *ebiten.Image) {
	ids := ecs.GetEntitiesWith2[*components.ParticleComponent, *components.PositionComponent](s.entityManager)
	for _, id := range ids {
		particle, _ := ecs.GetComponent[*components.ParticleComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		// 羽毛画成一条短线，按旋转角倾斜
		half := utils.Scale(utils.AngleVec(particle.Rotation), 0.15)
		center := utils.Vec2{X: pos.X, Y: pos.Y}
		x0, y0 := s.toScreen(utils.Sub(center, half))
		x1, y1 := s.toScreen(utils.Add(center, half))
		clr := featherColors[particle.Variant%len(featherColors)]
		vector.StrokeLine(screen, x0, y0, x1, y1, s.pixels(0.06), clr, false)
	}
}

func (s *RenderSystem) drawEffects(screen *ebiten.Image) {
	ids := ecs.GetEntitiesWith2[*components.EffectComponent, *components.PositionComponent](s.entityManager)
	for _, id := range ids {
		effect, _ := ecs.GetComponent[*components.EffectComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		x, y := s.toScreen(utils.Vec2{X: pos.X, Y: pos.Y})
		progress := utils.Clamp01(effect.Progress)
		grow := utils.EaseOutQuad(progress)
		alpha := uint8(255 * (1 - progress))

		switch effect.Kind {
		case components.EffectSplash:
			clr := withAlpha(splashColor, alpha)
			vector.StrokeCircle(screen, x, y, s.pixels(effect.Radius*utils.Lerp(0.5, 1.5, grow)), 2, clr, false)
		case components.EffectBulletSpawn:
			clr := withAlpha(bulletSpawnColor, alpha)
			vector.DrawFilledCircle(screen, x, y, s.pixels(effect.Radius*(1-grow)), clr, false)
		}
	}
}

func (s *RenderSystem) drawActors(screen *ebiten.Image) {
	ids := ecs.GetEntitiesWith3[*components.ActorComponent, *components.PositionComponent, *components.CollisionComponent](s.entityManager)
	for _, id := range ids {
		actor, _ := ecs.GetComponent[*components.ActorComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)

		center := utils.Vec2{X: pos.X, Y: pos.Y}
		shadowX, shadowY := s.toScreen(utils.Vec2{X: pos.X, Y: pos.Y + col.HitRadius*0.8})
		vector.DrawFilledRect(screen, shadowX-s.pixels(col.HitRadius), shadowY-s.pixels(0.08),
			s.pixels(col.HitRadius*2), s.pixels(0.16), color.RGBA{A: 80}, false)

		if actor.Kind == components.ActorChick {
			center.Y -= chickHop(actor.HopTimer)
		}

		x, y := s.toScreen(center)
		r := s.pixels(col.HitRadius)
		clr, ok := actorColors[actor.Kind]
		if !ok {
			clr = colornames.White
		}
		if actor.Kind == components.ActorKing && !actor.Active {
			clr = withAlpha(clr, 160)
		}
		vector.DrawFilledCircle(screen, x, y, r, clr, false)

		// 眼睛朝向玩家一侧
		eyeX := x + float32(actor.Facing)*r*0.45
		vector.DrawFilledCircle(screen, eyeX, y-r*0.25, r*0.18, colornames.Black, false)

		if actor.Kind == components.ActorKing || actor.Kind == components.ActorBursty {
			s.drawHealthBar(screen, id, x, y-r-6, r*2)
		}
	}
}

// chickHop 小鸡跳跃的高度偏移（格）
func chickHop(timer float64) float64 {
	phase := math.Mod(timer, chickHopPeriod) / chickHopPeriod
	// 上升段缓出，下落段对称
	return utils.EaseOutQuad(utils.PingPong(phase)) * chickHopHeight
}

func (s *RenderSystem) drawHealthBar(screen *ebiten.Image, id ecs.EntityID, cx, top, width float32) {
	health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)
	if !ok || health.MaxHealth <= 0 || health.CurrentHealth >= health.MaxHealth {
		return
	}
	ratio := float32(math.Max(0, float64(health.CurrentHealth)/float64(health.MaxHealth)))
	vector.DrawFilledRect(screen, cx-width/2, top, width, 4, colornames.Darkred, false)
	vector.DrawFilledRect(screen, cx-width/2, top, width*ratio, 4, colornames.Limegreen, false)
}

func (s *RenderSystem) drawPlayer(screen *ebiten.Image) {
	ids := ecs.GetEntitiesWith3[*components.PlayerComponent, *components.PositionComponent, *components.CollisionComponent](s.entityManager)
	for _, id := range ids {
		pc, _ := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)
		if pc.Dead {
			continue
		}

		x, y := s.toScreen(utils.Vec2{X: pos.X, Y: pos.Y})
		r := s.pixels(pc.NormalHitRadius)

		clr := playerColor
		switch {
		case pc.Blink.Active:
			clr = playerBlinkColor
		case pc.Stun.Active:
			clr = playerStunColor
		}
		vector.DrawFilledCircle(screen, x, y, r, clr, false)

		if pc.Dodging {
			// 闪避时显示扩大后的接弹半径
			vector.StrokeCircle(screen, x, y, s.pixels(col.HitRadius), 2, playerDodgeColor, false)
		}

		// 口袋里的子弹排成一行显示在头顶
		pip := s.pixels(0.08)
		startX := x - float32(len(pc.Pocket)-1)*pip*1.5
		for i := range pc.Pocket {
			vector.DrawFilledCircle(screen, startX+float32(i)*pip*3, y-r-pip*3, pip, pocketColor, false)
		}
	}
}

func (s *RenderSystem) drawProjectiles(screen *ebiten.Image) {
	ids := ecs.GetEntitiesWith3[*components.ProjectileComponent, *components.PositionComponent, *components.CollisionComponent](s.entityManager)
	for _, id := range ids {
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](s.entityManager, id)
		if proj.InPocket {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)

		clr := hostileBulletColor
		if proj.Friendly {
			clr = friendlyBulletColor
		}

		if trail, ok := ecs.GetComponent[*components.TrailComponent](s.entityManager, id); ok {
			n := len(trail.Points)
			for i := n - 1; i >= 0; i-- {
				p := trail.At(i)
				tx, ty := s.toScreen(utils.Vec2{X: p.X, Y: p.Y})
				fade := 1 - float64(i+1)/float64(n+1)
				vector.DrawFilledCircle(screen, tx, ty, s.pixels(col.HitRadius*0.6*fade), withAlpha(clr, uint8(120*fade)), false)
			}
		}

		x, y := s.toScreen(utils.Vec2{X: pos.X, Y: pos.Y})
		vector.DrawFilledCircle(screen, x, y, s.pixels(col.HitRadius), clr, false)
	}
}

// DrawShade 在整个画面上覆盖一层半透明黑色（死亡后逐渐变暗）
func DrawShade(screen *ebiten.Image, alpha float64) {
	if alpha <= 0 {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	a := uint8(math.Min(alpha, 255))
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), color.RGBA{A: a}, false)
}

// withAlpha 返回预乘透明度后的颜色
func withAlpha(c color.RGBA, alpha uint8) color.RGBA {
	k := float64(alpha) / 255
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: alpha,
	}
}
