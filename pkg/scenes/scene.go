package scenes

import (
	"fmt"

	"github.com/gonewx/ammodillo/pkg/config"
	"github.com/gonewx/ammodillo/pkg/game"
	"github.com/gonewx/ammodillo/pkg/systems"
)

// Scene is a type alias for game.Scene.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

var (
	_ game.Scene      = (*ArenaScene)(nil)
	_ game.Resettable = (*ArenaScene)(nil)
)

// NewFactory 返回 SceneManager 使用的场景工厂
//
// 每次加载都会用同一个种子创建全新的场景。
func NewFactory(cfg *config.GameConfig, sound systems.SoundPlayer, settings *game.SettingsManager, seed int64) game.SceneFactory {
	return func(name string) (game.Scene, error) {
		switch name {
		case SceneArena:
			return NewArenaScene(cfg, sound, settings, seed), nil
		default:
			return nil, fmt.Errorf("unknown scene: %s", name)
		}
	}
}
