package entities

import (
	"math/rand"
	"testing"

	"github.com/gonewx/ammodillo/pkg/config"
)

// testDataDir 测试从仓库根目录的 data/ 读取配置
const testDataDir = "../../data"

// loadTestConfig 加载完整游戏配置，失败时终止测试
func loadTestConfig(t *testing.T) *config.GameConfig {
	t.Helper()
	cfg, err := config.LoadGameConfig(testDataDir)
	if err != nil {
		t.Fatalf("failed to load game config: %v", err)
	}
	return cfg
}

// newTestRand 返回固定种子的随机源
func newTestRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}
