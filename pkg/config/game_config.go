package config

import (
	"fmt"
	"log"
	"path"
)

// GameConfig 一局游戏需要的全部调参表
type GameConfig struct {
	Arena       *ArenaConfig
	Player      *PlayerConfig
	Actors      *ActorStatsConfig
	Projectiles *ProjectileConfig
	Waves       *WaveConfig
}

// LoadGameConfig 从目录加载全部配置并做交叉校验
//
// 参数:
//   - dir: 配置目录（通常为 "data"）
//
// 返回:
//   - *GameConfig: 完整配置
//   - error: 任一文件读取、解析或校验失败
func LoadGameConfig(dir string) (*GameConfig, error) {
	arena, err := LoadArenaConfig(path.Join(dir, ArenaConfigFile))
	if err != nil {
		return nil, err
	}
	player, err := LoadPlayerConfig(path.Join(dir, PlayerConfigFile))
	if err != nil {
		return nil, err
	}
	actors, err := LoadActorStats(path.Join(dir, ActorStatsFile))
	if err != nil {
		return nil, err
	}
	projectiles, err := LoadProjectileConfig(path.Join(dir, ProjectileFile))
	if err != nil {
		return nil, err
	}
	waves, err := LoadWaveConfig(path.Join(dir, WaveConfigFile))
	if err != nil {
		return nil, err
	}

	cfg := &GameConfig{
		Arena:       arena,
		Player:      player,
		Actors:      actors,
		Projectiles: projectiles,
		Waves:       waves,
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	log.Printf("[Config] Loaded game config from %s: %d waves, %d actor kinds", dir, len(waves.Waves), len(actors.Actors))
	return cfg, nil
}

// Validate 交叉校验：波次引用的敌人类型与拱门必须存在
func (c *GameConfig) Validate() error {
	if c.Arena == nil || c.Player == nil || c.Actors == nil || c.Projectiles == nil || c.Waves == nil {
		return fmt.Errorf("incomplete game config")
	}
	for i, wave := range c.Waves.Waves {
		for j, placement := range wave.Actors {
			if _, ok := c.Actors.Actors[placement.Kind]; !ok {
				return fmt.Errorf("wave %d actor %d: no stats for kind %q", i+1, j+1, placement.Kind)
			}
			if _, err := placement.Resolve(c.Arena); err != nil {
				return fmt.Errorf("wave %d actor %d: %w", i+1, j+1, err)
			}
		}
	}
	if _, ok := c.Actors.Actors[c.Waves.Boss.Kind]; !ok {
		return fmt.Errorf("no stats for boss kind %q", c.Waves.Boss.Kind)
	}
	if _, err := c.Waves.Boss.Resolve(c.Arena); err != nil {
		return fmt.Errorf("boss placement: %w", err)
	}
	return nil
}
