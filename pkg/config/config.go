// Package config 加载并校验 data/ 目录下的 YAML 调参表
//
// 每张表都有 LoadXxx(path) 和 ParseXxx(data) 两个入口：
// 前者读取文件（优先从嵌入资源读取），后者供测试直接传入 YAML 文本。
// 所有 ParseXxx 在返回前都会调用 Validate()，无效配置在构造阶段直接拒绝。
package config

import (
	"fmt"
	"os"

	"github.com/gonewx/ammodillo/pkg/embedded"
	"github.com/gonewx/ammodillo/pkg/utils"
)

// 窗口与渲染常量
const (
	// GameWindowWidth 逻辑屏幕宽度
	GameWindowWidth = 800
	// GameWindowHeight 逻辑屏幕高度
	GameWindowHeight = 600
	// WindowTitle 窗口标题
	WindowTitle = "Ammodillo"
)

// 数据文件路径
const (
	DefaultDataDir   = "data"
	ArenaConfigFile  = "arena.yaml"
	PlayerConfigFile = "player.yaml"
	ActorStatsFile   = "actors.yaml"
	ProjectileFile   = "projectiles.yaml"
	WaveConfigFile   = "waves.yaml"
)

// Point YAML 中的二维坐标
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Vec 转换为 utils.Vec2
func (p Point) Vec() utils.Vec2 {
	return utils.Vec2{X: p.X, Y: p.Y}
}

// readConfigFile 读取配置文件
// embedded 包已初始化且文件存在时从嵌入资源读取，否则从磁盘读取
func readConfigFile(path string) ([]byte, error) {
	if embedded.IsInitialized() && embedded.Exists(path) {
		return embedded.ReadFile(path)
	}
	return os.ReadFile(path)
}

// requirePositive 校验数值字段大于 0
func requirePositive(name string, value float64) error {
	if value <= 0 {
		return fmt.Errorf("%s must be positive, got %v", name, value)
	}
	return nil
}

// requireNonNegative 校验数值字段不小于 0
func requireNonNegative(name string, value float64) error {
	if value < 0 {
		return fmt.Errorf("%s must not be negative, got %v", name, value)
	}
	return nil
}
