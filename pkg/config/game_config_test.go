package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// dataDir 指向仓库根目录的 data/
const dataDir = "../../data"

func TestLoadGameConfigFromRepositoryData(t *testing.T) {
	cfg, err := LoadGameConfig(dataDir)
	if err != nil {
		t.Fatalf("LoadGameConfig failed: %v", err)
	}

	if len(cfg.Waves.Waves) != 4 {
		t.Errorf("Expected 4 waves, got %d", len(cfg.Waves.Waves))
	}
	if cfg.Player.PocketSize != 6 {
		t.Errorf("Expected pocket size 6, got %d", cfg.Player.PocketSize)
	}
	if got := cfg.Player.DodgeSpeed(); got != 7*2.25 {
		t.Errorf("DodgeSpeed = %v, want %v", got, 7*2.25)
	}

	for _, kind := range []string{ActorKindBasic, ActorKindBursty, ActorKindChick, ActorKindKing} {
		if _, ok := cfg.Actors.GetActorStats(kind); !ok {
			t.Errorf("Missing stats for %s", kind)
		}
	}

	// 第四波的 chick 在中央拱门下方一格
	pos, err := cfg.Waves.Waves[3].Actors[0].Resolve(cfg.Arena)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if pos.X != 0 || pos.Y != -7 {
		t.Errorf("Wave 4 chick position = %+v, want (0, -7)", pos)
	}
}

func TestLoadGameConfigMissingDir(t *testing.T) {
	_, err := LoadGameConfig(t.TempDir())
	if err == nil {
		t.Fatal("Expected error for empty directory")
	}
	if !strings.Contains(err.Error(), "failed to read arena config") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestGameConfigRejectsUnknownArch(t *testing.T) {
	tempDir := t.TempDir()

	// 拷贝仓库数据，然后把波次改成引用不存在的拱门
	for _, name := range []string{ArenaConfigFile, PlayerConfigFile, ActorStatsFile, ProjectileFile} {
		data, err := os.ReadFile(filepath.Join(dataDir, name))
		if err != nil {
			t.Fatalf("Failed to read %s: %v", name, err)
		}
		if err := os.WriteFile(filepath.Join(tempDir, name), data, 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	waves := `
waves:
  - actors:
      - {kind: chick, arch: nowhere}
boss:
  kind: king
  arch: center
`
	if err := os.WriteFile(filepath.Join(tempDir, WaveConfigFile), []byte(waves), 0644); err != nil {
		t.Fatalf("Failed to write waves: %v", err)
	}

	_, err := LoadGameConfig(tempDir)
	if err == nil {
		t.Fatal("Expected error for unknown arch")
	}
	if !strings.Contains(err.Error(), "unknown arch") {
		t.Errorf("Unexpected error: %v", err)
	}
}
