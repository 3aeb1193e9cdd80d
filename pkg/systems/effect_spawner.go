package systems

import (
	"math/rand"

	"github.com/gonewx/ammodillo/pkg/config"
	"github.com/gonewx/ammodillo/pkg/ecs"
	"github.com/gonewx/ammodillo/pkg/entities"
	"github.com/gonewx/ammodillo/pkg/utils"
)

// SoundPlayer 播放一次性音效（game.AudioManager 实现此接口）
type SoundPlayer interface {
	PlaySound(soundID string) bool
}

// EffectSpawner 战斗中的即发即弃反馈：水花、弹出特效、羽毛、震屏与音效
//
// 各系统只调用这里的方法，不关心反馈如何呈现。camera 与 sound 都可以为 nil。
type EffectSpawner struct {
	entityManager *ecs.EntityManager
	effects       config.EffectsConfig
	feather       config.FeatherConfig
	rng           *rand.Rand
	camera        *CameraSystem
	sound         SoundPlayer
}

// NewEffectSpawner 创建反馈生成器
func NewEffectSpawner(em *ecs.EntityManager, cfg *config.ProjectileConfig, rng *rand.Rand, camera *CameraSystem, sound SoundPlayer) *EffectSpawner {
	return &EffectSpawner{
		entityManager: em,
		effects:       cfg.Effects,
		feather:       cfg.Feather,
		rng:           rng,
		camera:        camera,
		sound:         sound,
	}
}

// Splash 在 pos 处生成受击水花
func (f *EffectSpawner) Splash(pos utils.Vec2) {
	entities.NewSplash(f.entityManager, f.effects, pos)
}

// BulletSpawn 在 pos 处生成弹出特效
func (f *EffectSpawner) BulletSpawn(pos utils.Vec2) {
	entities.NewBulletSpawn(f.entityManager, f.effects, pos)
}

// Feathers 在 pos 处炸出 count 根羽毛
func (f *EffectSpawner) Feathers(pos utils.Vec2, count int) {
	if count <= 0 {
		return
	}
	entities.NewFeatherBurst(f.entityManager, f.feather, pos, count, f.rng)
}

// Shake 请求镜头震动
func (f *EffectSpawner) Shake(magnitude float64) {
	if f.camera != nil {
		f.camera.Shake(magnitude)
	}
}

// Play 播放音效
func (f *EffectSpawner) Play(soundID string) {
	if f.sound != nil {
		f.sound.PlaySound(soundID)
	}
}
