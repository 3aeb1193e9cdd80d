package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// PlayerConfig 玩家参数
//
// 配置文件位置: data/player.yaml
type PlayerConfig struct {
	Spawn Point `yaml:"spawn"`

	// 移动
	Accel        float64 `yaml:"accel"`
	Deceleration float64 `yaml:"deceleration"` // 每秒速度保留比例（velocity *= d^dt）
	MaxSpeed     float64 `yaml:"maxSpeed"`

	// 闪避
	DodgeTime         float64 `yaml:"dodgeTime"`
	DodgeSlowdownTime float64 `yaml:"dodgeSlowdownTime"`
	DodgeCooldown     float64 `yaml:"dodgeCooldown"`
	MinDodgeSpeed     float64 `yaml:"minDodgeSpeed"`
	DodgeSpeedFactor  float64 `yaml:"dodgeSpeedFactor"` // 闪避速度 = MaxSpeed * 系数

	// 受击
	BlinkDuration  float64 `yaml:"blinkDuration"`
	StunDuration   float64 `yaml:"stunDuration"`
	ContactPush    float64 `yaml:"contactPush"`
	HitShake       float64 `yaml:"hitShake"`
	ArenaPush      float64 `yaml:"arenaPush"`
	ArenaStun      float64 `yaml:"arenaStun"`
	DeathFeathers  int     `yaml:"deathFeathers"`
	HitRadius      float64 `yaml:"hitRadius"`
	DodgeHitRadius float64 `yaml:"dodgeHitRadius"`
	MaxHP          int     `yaml:"maxHP"`

	// 接弹与反击
	PocketSize   int     `yaml:"pocketSize"`
	FireCooldown float64 `yaml:"fireCooldown"`
	RefireSpeed  float64 `yaml:"refireSpeed"`
	RefireOffset float64 `yaml:"refireOffset"` // 反击子弹出生点相对玩家的 Y 偏移
	RefireShake  float64 `yaml:"refireShake"`
}

// LoadPlayerConfig 加载玩家配置
func LoadPlayerConfig(path string) (*PlayerConfig, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read player config: %w", err)
	}
	return ParsePlayerConfig(data)
}

// ParsePlayerConfig 解析并校验玩家配置
func ParsePlayerConfig(data []byte) (*PlayerConfig, error) {
	var cfg PlayerConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse player config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid player config: %w", err)
	}
	return &cfg, nil
}

// Validate 验证配置有效性
//
// 半径、速度、时长必须为正；衰减系数必须落在 (0, 1]；口袋容量至少为 1。
func (c *PlayerConfig) Validate() error {
	positives := []struct {
		name  string
		value float64
	}{
		{"accel", c.Accel},
		{"maxSpeed", c.MaxSpeed},
		{"dodgeTime", c.DodgeTime},
		{"dodgeSpeedFactor", c.DodgeSpeedFactor},
		{"stunDuration", c.StunDuration},
		{"hitRadius", c.HitRadius},
		{"dodgeHitRadius", c.DodgeHitRadius},
		{"refireSpeed", c.RefireSpeed},
	}
	for _, p := range positives {
		if err := requirePositive(p.name, p.value); err != nil {
			return err
		}
	}
	if c.Deceleration <= 0 || c.Deceleration > 1 {
		return fmt.Errorf("deceleration must be in (0, 1], got %v", c.Deceleration)
	}
	if c.DodgeSlowdownTime > c.DodgeTime {
		return fmt.Errorf("dodgeSlowdownTime (%.2f) exceeds dodgeTime (%.2f)", c.DodgeSlowdownTime, c.DodgeTime)
	}
	if c.MaxHP < 1 {
		return fmt.Errorf("maxHP must be at least 1, got %d", c.MaxHP)
	}
	if c.PocketSize < 1 {
		return fmt.Errorf("pocketSize must be at least 1, got %d", c.PocketSize)
	}
	if c.DeathFeathers < 0 {
		return fmt.Errorf("deathFeathers must not be negative, got %d", c.DeathFeathers)
	}
	return nil
}

// DodgeSpeed 闪避初段的固定速度
func (c *PlayerConfig) DodgeSpeed() float64 {
	return c.MaxSpeed * c.DodgeSpeedFactor
}
