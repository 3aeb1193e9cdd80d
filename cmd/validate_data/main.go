// validate_data 校验 data/ 下的全部调参表
//
// 用法：
//
//	go run ./cmd/validate_data [--data data]
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gonewx/ammodillo/pkg/config"
)

var dataFlag = flag.String("data", config.DefaultDataDir, "数据表目录")

func main() {
	flag.Parse()
	dir := *dataFlag

	checks := []struct {
		file string
		load func(path string) error
	}{
		{config.ArenaConfigFile, func(p string) error { _, err := config.LoadArenaConfig(p); return err }},
		{config.PlayerConfigFile, func(p string) error { _, err := config.LoadPlayerConfig(p); return err }},
		{config.ActorStatsFile, func(p string) error { _, err := config.LoadActorStats(p); return err }},
		{config.ProjectileFile, func(p string) error { _, err := config.LoadProjectileConfig(p); return err }},
		{config.WaveConfigFile, func(p string) error { _, err := config.LoadWaveConfig(p); return err }},
	}

	failed := 0
	for _, check := range checks {
		path := filepath.Join(dir, check.file)
		if err := check.load(path); err != nil {
			fmt.Printf("❌ %s: %v\n", path, err)
			failed++
			continue
		}
		fmt.Printf("✅ %s\n", path)
	}

	// 跨表引用（波次中的敌人类型、出生拱门）
	if failed == 0 {
		cfg, err := config.LoadGameConfig(dir)
		if err != nil {
			fmt.Printf("❌ 跨表校验失败: %v\n", err)
			failed++
		} else {
			actors := 0
			for _, wave := range cfg.Waves.Waves {
				actors += len(wave.Actors)
			}
			fmt.Printf("✅ %d 个波次，共 %d 个敌人，Boss: %s\n", len(cfg.Waves.Waves), actors, cfg.Waves.Boss.Kind)
		}
	}

	if failed > 0 {
		fmt.Printf("❌ %d 个检查失败\n", failed)
		os.Exit(1)
	}
	fmt.Println("✅ 所有数据表有效")
}
