package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ProjectileConfig 子弹、粒子与瞬时特效参数
//
// 配置文件位置: data/projectiles.yaml
type ProjectileConfig struct {
	Bullet  BulletConfig  `yaml:"bullet"`
	Feather FeatherConfig `yaml:"feather"`
	Effects EffectsConfig `yaml:"effects"`
}

// BulletConfig 子弹参数
type BulletConfig struct {
	HitRadius   float64 `yaml:"hitRadius"`
	Damage      int     `yaml:"damage"`
	Knockback   float64 `yaml:"knockback"`
	TimeToLive  float64 `yaml:"timeToLive"`
	TrailLength int     `yaml:"trailLength"`
	TrailPeriod float64 `yaml:"trailPeriod"`
}

// FeatherConfig 羽毛粒子参数
type FeatherConfig struct {
	MaxSpeed     float64 `yaml:"maxSpeed"`
	Deceleration float64 `yaml:"deceleration"`
	Lifetime     float64 `yaml:"lifetime"`
	BouncePush   float64 `yaml:"bouncePush"`
}

// EffectsConfig 瞬时特效参数
type EffectsConfig struct {
	SplashDuration      float64 `yaml:"splashDuration"`
	SplashRadius        float64 `yaml:"splashRadius"`
	BulletSpawnDuration float64 `yaml:"bulletSpawnDuration"`
	BulletSpawnRadius   float64 `yaml:"bulletSpawnRadius"`
}

// LoadProjectileConfig 加载子弹与特效配置
func LoadProjectileConfig(path string) (*ProjectileConfig, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read projectile config: %w", err)
	}
	return ParseProjectileConfig(data)
}

// ParseProjectileConfig 解析并校验子弹与特效配置
func ParseProjectileConfig(data []byte) (*ProjectileConfig, error) {
	var cfg ProjectileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse projectile config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid projectile config: %w", err)
	}
	return &cfg, nil
}

// Validate 验证配置有效性
func (c *ProjectileConfig) Validate() error {
	positives := []struct {
		name  string
		value float64
	}{
		{"bullet.hitRadius", c.Bullet.HitRadius},
		{"bullet.timeToLive", c.Bullet.TimeToLive},
		{"bullet.trailPeriod", c.Bullet.TrailPeriod},
		{"feather.lifetime", c.Feather.Lifetime},
		{"effects.splashDuration", c.Effects.SplashDuration},
		{"effects.bulletSpawnDuration", c.Effects.BulletSpawnDuration},
	}
	for _, p := range positives {
		if err := requirePositive(p.name, p.value); err != nil {
			return err
		}
	}
	if c.Bullet.Damage < 1 {
		return fmt.Errorf("bullet.damage must be at least 1, got %d", c.Bullet.Damage)
	}
	if c.Bullet.TrailLength < 1 {
		return fmt.Errorf("bullet.trailLength must be at least 1, got %d", c.Bullet.TrailLength)
	}
	if c.Feather.Deceleration <= 0 || c.Feather.Deceleration > 1 {
		return fmt.Errorf("feather.deceleration must be in (0, 1], got %v", c.Feather.Deceleration)
	}
	return requireNonNegative("feather.maxSpeed", c.Feather.MaxSpeed)
}
