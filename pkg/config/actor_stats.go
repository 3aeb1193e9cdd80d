package config

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// 角色类型名（actors.yaml 和 waves.yaml 中使用）
const (
	ActorKindBasic  = "basic"
	ActorKindBursty = "bursty"
	ActorKindChick  = "chick"
	ActorKindKing   = "king"
)

// ActorStatsConfig 所有敌人类型的属性表
//
// 配置文件位置: data/actors.yaml
type ActorStatsConfig struct {
	// Actors 敌人属性映射表
	// key: 敌人类型字符串（basic, bursty, chick, king）
	Actors map[string]ActorStats `yaml:"actors"`
}

// ActorStats 单个敌人类型的属性
//
// 共享字段所有类型都使用；连发（bursty）与 Boss（king）专用字段在其他类型中保持为零。
type ActorStats struct {
	HitRadius    float64 `yaml:"hitRadius"`
	HP           int     `yaml:"hp"`
	Accel        float64 `yaml:"accel"`
	MaxSpeed     float64 `yaml:"maxSpeed"`
	Deceleration float64 `yaml:"deceleration"`

	BulletPeriod float64 `yaml:"bulletPeriod"`
	BulletSpeed  float64 `yaml:"bulletSpeed"`
	RecoilSpeed  float64 `yaml:"recoilSpeed"`
	// InitialDelay 出生后首发前的固定延迟；RandomPhase 为 true 时改用 [0, BulletPeriod) 随机相位
	InitialDelay float64 `yaml:"initialDelay"`
	RandomPhase  bool    `yaml:"randomPhase"`

	DeathFeathers int `yaml:"deathFeathers"`
	HitFeathers   int `yaml:"hitFeathers"`

	// 弹夹（bursty / king）
	ClipSize   int     `yaml:"clipSize"`
	ReloadTime float64 `yaml:"reloadTime"`

	// 环形弹幕（bursty）
	RadialCount  int     `yaml:"radialCount"`
	RadialSpeed  float64 `yaml:"radialSpeed"`
	RadialChance float64 `yaml:"radialChance"`

	// Boss（king）
	SprinklerPeriod    float64 `yaml:"sprinklerPeriod"`
	SprinklerSweep     float64 `yaml:"sprinklerSweep"`
	PulsarPeriod       float64 `yaml:"pulsarPeriod"`
	PulsarCount        int     `yaml:"pulsarCount"`
	PulsarCost         int     `yaml:"pulsarCost"`
	PulsarSpeed        float64 `yaml:"pulsarSpeed"`
	RecoilLockDuration float64 `yaml:"recoilLockDuration"`
	RecoilLockSpeed    float64 `yaml:"recoilLockSpeed"`
	HoldPosition       Point   `yaml:"holdPosition"`
	DeathShake         float64 `yaml:"deathShake"`
}

// LoadActorStats 加载敌人属性配置
func LoadActorStats(path string) (*ActorStatsConfig, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read actor stats config: %w", err)
	}
	return ParseActorStats(data)
}

// ParseActorStats 解析并校验敌人属性配置
func ParseActorStats(data []byte) (*ActorStatsConfig, error) {
	var cfg ActorStatsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse actor stats config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid actor stats config: %w", err)
	}
	return &cfg, nil
}

// Validate 验证配置有效性
func (c *ActorStatsConfig) Validate() error {
	if len(c.Actors) == 0 {
		return fmt.Errorf("actors table is empty")
	}

	// 按名字排序，保证错误信息稳定
	names := make([]string, 0, len(c.Actors))
	for name := range c.Actors {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if !IsKnownActorKind(name) {
			return fmt.Errorf("unknown actor kind %q", name)
		}
		stats := c.Actors[name]
		if err := stats.validate(name); err != nil {
			return fmt.Errorf("actor %q: %w", name, err)
		}
	}
	return nil
}

func (s *ActorStats) validate(kind string) error {
	positives := []struct {
		name  string
		value float64
	}{
		{"hitRadius", s.HitRadius},
		{"maxSpeed", s.MaxSpeed},
		{"bulletSpeed", s.BulletSpeed},
	}
	for _, p := range positives {
		if err := requirePositive(p.name, p.value); err != nil {
			return err
		}
	}
	if s.HP < 1 {
		return fmt.Errorf("hp must be at least 1, got %d", s.HP)
	}
	if s.Deceleration <= 0 || s.Deceleration > 1 {
		return fmt.Errorf("deceleration must be in (0, 1], got %v", s.Deceleration)
	}
	if err := requireNonNegative("initialDelay", s.InitialDelay); err != nil {
		return err
	}

	switch kind {
	case ActorKindBursty:
		if s.ClipSize < 1 {
			return fmt.Errorf("clipSize must be at least 1, got %d", s.ClipSize)
		}
		if s.RadialCount < 1 {
			return fmt.Errorf("radialCount must be at least 1, got %d", s.RadialCount)
		}
		if s.RadialChance < 0 || s.RadialChance > 1 {
			return fmt.Errorf("radialChance must be in [0, 1], got %v", s.RadialChance)
		}
		return requirePositive("bulletPeriod", s.BulletPeriod)
	case ActorKindKing:
		if s.ClipSize < 1 {
			return fmt.Errorf("clipSize must be at least 1, got %d", s.ClipSize)
		}
		if s.PulsarCount < 1 || s.PulsarCost < 1 {
			return fmt.Errorf("pulsarCount and pulsarCost must be at least 1")
		}
		if err := requirePositive("sprinklerPeriod", s.SprinklerPeriod); err != nil {
			return err
		}
		return requirePositive("pulsarPeriod", s.PulsarPeriod)
	default:
		return requirePositive("bulletPeriod", s.BulletPeriod)
	}
}

// IsKnownActorKind 判断类型名是否属于封闭的敌人类型集合
func IsKnownActorKind(kind string) bool {
	switch kind {
	case ActorKindBasic, ActorKindBursty, ActorKindChick, ActorKindKing:
		return true
	}
	return false
}

// GetActorStats 获取指定类型的属性
func (c *ActorStatsConfig) GetActorStats(kind string) (ActorStats, bool) {
	stats, ok := c.Actors[kind]
	return stats, ok
}
