package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// WaveConfig 波次表
//
// 配置文件位置: data/waves.yaml
// 波次严格按列表顺序（先进先出）激活；列表耗尽后触发一次 Boss 演出。
type WaveConfig struct {
	Waves []WaveDefinition `yaml:"waves"`
	Boss  ActorPlacement   `yaml:"boss"`
}

// WaveDefinition 单个波次：一组预先摆放好的敌人
type WaveDefinition struct {
	Actors []ActorPlacement `yaml:"actors"`
}

// ActorPlacement 敌人的出生位置
//
// 位置可以直接给出 (x, y)，也可以引用拱门名 arch 再加上偏移。
type ActorPlacement struct {
	Kind    string  `yaml:"kind"`
	Arch    string  `yaml:"arch,omitempty"`
	X       float64 `yaml:"x,omitempty"`
	Y       float64 `yaml:"y,omitempty"`
	OffsetX float64 `yaml:"offsetX,omitempty"`
	OffsetY float64 `yaml:"offsetY,omitempty"`
}

// LoadWaveConfig 加载波次配置
func LoadWaveConfig(path string) (*WaveConfig, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read wave config: %w", err)
	}
	return ParseWaveConfig(data)
}

// ParseWaveConfig 解析并校验波次配置
func ParseWaveConfig(data []byte) (*WaveConfig, error) {
	var cfg WaveConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse wave config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid wave config: %w", err)
	}
	return &cfg, nil
}

// Validate 验证配置有效性
// 空波次列表和空波次都会被拒绝
func (c *WaveConfig) Validate() error {
	if len(c.Waves) == 0 {
		return fmt.Errorf("wave list is empty")
	}
	for i, wave := range c.Waves {
		if len(wave.Actors) == 0 {
			return fmt.Errorf("wave %d has no actors", i+1)
		}
		for j, placement := range wave.Actors {
			if !IsKnownActorKind(placement.Kind) {
				return fmt.Errorf("wave %d actor %d: unknown kind %q", i+1, j+1, placement.Kind)
			}
		}
	}
	if c.Boss.Kind != ActorKindKing {
		return fmt.Errorf("boss kind must be %q, got %q", ActorKindKing, c.Boss.Kind)
	}
	return nil
}

// Resolve 计算出生位置
// 引用拱门时返回 拱门位置 + 偏移；拱门不存在时返回错误
func (p ActorPlacement) Resolve(arena *ArenaConfig) (Point, error) {
	if p.Arch == "" {
		return Point{X: p.X + p.OffsetX, Y: p.Y + p.OffsetY}, nil
	}
	arch, ok := arena.Arches[p.Arch]
	if !ok {
		return Point{}, fmt.Errorf("unknown arch %q", p.Arch)
	}
	return Point{X: arch.X + p.OffsetX, Y: arch.Y + p.OffsetY}, nil
}
