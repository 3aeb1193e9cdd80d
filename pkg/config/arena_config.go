package config

import (
	"fmt"

	"github.com/gonewx/ammodillo/pkg/utils"
	"gopkg.in/yaml.v3"
)

// ArenaConfig 竞技场与主循环配置
//
// 配置文件位置: data/arena.yaml
type ArenaConfig struct {
	// TileSize 一个竞技场单位对应的像素数
	TileSize float64 `yaml:"tileSize"`

	// MaxDeltaTime 单帧时间步长上限（秒），防止卡顿后物理爆炸
	MaxDeltaTime float64 `yaml:"maxDeltaTime"`

	// WaveSpawnGap 场上连续无敌人多久后激活下一波（秒）
	WaveSpawnGap float64 `yaml:"waveSpawnGap"`

	// Ellipse 椭圆边界
	Ellipse EllipseConfig `yaml:"ellipse"`

	// SafeZone 永远视为场内的圆形区域
	SafeZone SafeZoneConfig `yaml:"safeZone"`

	// Arches 敌人入场的拱门位置
	Arches map[string]Point `yaml:"arches"`

	// Camera 镜头参数
	Camera CameraConfig `yaml:"camera"`

	// BossSequence Boss 入场演出参数
	BossSequence BossSequenceConfig `yaml:"bossSequence"`
}

// EllipseConfig 椭圆边界参数
type EllipseConfig struct {
	MajorRadius float64 `yaml:"majorRadius"`
	MinorRadius float64 `yaml:"minorRadius"`
	Margin      float64 `yaml:"margin"`
}

// SafeZoneConfig 安全区参数
type SafeZoneConfig struct {
	Center Point   `yaml:"center"`
	Radius float64 `yaml:"radius"`
}

// CameraConfig 镜头参数
type CameraConfig struct {
	// FollowRate 镜头追随目标的比例系数（每秒）
	FollowRate float64 `yaml:"followRate"`
	// ZoomRate 缩放追随系数（每秒）
	ZoomRate float64 `yaml:"zoomRate"`
	// Tightness 自由模式下镜头目标 = 光标*(1-t) + 玩家*t
	Tightness float64 `yaml:"tightness"`
	// ShakeFrequency 震动频率
	ShakeFrequency float64 `yaml:"shakeFrequency"`
	// ShakeDecay 震动幅度每秒的指数衰减底数
	ShakeDecay float64 `yaml:"shakeDecay"`
	// ShakeLinearDecay 震动幅度每秒的线性衰减量
	ShakeLinearDecay float64 `yaml:"shakeLinearDecay"`
}

// BossSequenceConfig Boss 入场演出参数
type BossSequenceConfig struct {
	// WindupDuration 第一阶段总时长（秒）
	WindupDuration float64 `yaml:"windupDuration"`
	// LaunchDelay 第一阶段中施加起跳冲量的时刻（秒）
	LaunchDelay float64 `yaml:"launchDelay"`
	// LaunchVelocity 起跳冲量
	LaunchVelocity Point `yaml:"launchVelocity"`
	// RiseDuration 第二阶段停顿时长（秒）
	RiseDuration float64 `yaml:"riseDuration"`
	// FallStart 第三阶段 Boss 被放置的场外位置
	FallStart Point `yaml:"fallStart"`
	// FallSpeed 下落速度
	FallSpeed float64 `yaml:"fallSpeed"`
	// LandY 落地判定的 Y 坐标
	LandY float64 `yaml:"landY"`
	// LandShake 落地时的镜头震动幅度
	LandShake float64 `yaml:"landShake"`
	// SettleDuration 落地后到激活的停顿（秒）
	SettleDuration float64 `yaml:"settleDuration"`
}

// LoadArenaConfig 加载竞技场配置
//
// 参数:
//   - path: 配置文件路径（如 "data/arena.yaml"）
//
// 返回:
//   - *ArenaConfig: 加载成功后的配置结构
//   - error: 加载失败时返回错误
func LoadArenaConfig(path string) (*ArenaConfig, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read arena config: %w", err)
	}
	return ParseArenaConfig(data)
}

// ParseArenaConfig 解析并校验竞技场配置
func ParseArenaConfig(data []byte) (*ArenaConfig, error) {
	var cfg ArenaConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse arena config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid arena config: %w", err)
	}
	return &cfg, nil
}

// Validate 验证配置有效性
func (c *ArenaConfig) Validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"tileSize", c.TileSize},
		{"maxDeltaTime", c.MaxDeltaTime},
		{"waveSpawnGap", c.WaveSpawnGap},
		{"ellipse.majorRadius", c.Ellipse.MajorRadius},
		{"ellipse.minorRadius", c.Ellipse.MinorRadius},
		{"camera.followRate", c.Camera.FollowRate},
		{"camera.shakeDecay", c.Camera.ShakeDecay},
		{"bossSequence.windupDuration", c.BossSequence.WindupDuration},
		{"bossSequence.fallSpeed", c.BossSequence.FallSpeed},
	}
	for _, check := range checks {
		if err := requirePositive(check.name, check.value); err != nil {
			return err
		}
	}

	if err := requireNonNegative("safeZone.radius", c.SafeZone.Radius); err != nil {
		return err
	}
	if c.Ellipse.Margin < 0 || c.Ellipse.Margin >= c.Ellipse.MinorRadius || c.Ellipse.Margin >= c.Ellipse.MajorRadius {
		return fmt.Errorf("ellipse.margin %.2f must be in [0, min radius)", c.Ellipse.Margin)
	}
	if c.BossSequence.LaunchDelay > c.BossSequence.WindupDuration {
		return fmt.Errorf("bossSequence.launchDelay (%.2f) exceeds windupDuration (%.2f)",
			c.BossSequence.LaunchDelay, c.BossSequence.WindupDuration)
	}
	if c.BossSequence.FallStart.Y >= c.BossSequence.LandY {
		return fmt.Errorf("bossSequence.fallStart.y (%.2f) must be above landY (%.2f)",
			c.BossSequence.FallStart.Y, c.BossSequence.LandY)
	}
	return nil
}

// Bounds 构造竞技场边界判定
func (c *ArenaConfig) Bounds() utils.ArenaBounds {
	return utils.ArenaBounds{
		MajorRadius: c.Ellipse.MajorRadius,
		MinorRadius: c.Ellipse.MinorRadius,
		Margin:      c.Ellipse.Margin,
		SafeCenter:  c.SafeZone.Center.Vec(),
		SafeRadius:  c.SafeZone.Radius,
	}
}

// Arch 返回指定名字的拱门位置
func (c *ArenaConfig) Arch(name string) (utils.Vec2, bool) {
	p, ok := c.Arches[name]
	return p.Vec(), ok
}
