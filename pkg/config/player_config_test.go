package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func loadRepoPlayerConfig(t *testing.T) *PlayerConfig {
	t.Helper()
	cfg, err := LoadPlayerConfig(filepath.Join(dataDir, PlayerConfigFile))
	if err != nil {
		t.Fatalf("LoadPlayerConfig failed: %v", err)
	}
	return cfg
}

func TestLoadPlayerConfig(t *testing.T) {
	cfg := loadRepoPlayerConfig(t)

	if cfg.HitRadius != 0.4 || cfg.DodgeHitRadius != 0.65 {
		t.Errorf("Unexpected hit radii: %v / %v", cfg.HitRadius, cfg.DodgeHitRadius)
	}
	if cfg.DodgeHitRadius <= cfg.HitRadius {
		t.Error("Dodge hit radius should be wider than the normal one")
	}
	if cfg.MaxHP != 3 {
		t.Errorf("MaxHP = %d, want 3", cfg.MaxHP)
	}
}

func TestPlayerConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *PlayerConfig)
		wantErr string
	}{
		{"零半径", func(c *PlayerConfig) { c.HitRadius = 0 }, "hitRadius"},
		{"负闪避半径", func(c *PlayerConfig) { c.DodgeHitRadius = -0.1 }, "dodgeHitRadius"},
		{"口袋容量为零", func(c *PlayerConfig) { c.PocketSize = 0 }, "pocketSize"},
		{"衰减系数大于1", func(c *PlayerConfig) { c.Deceleration = 1.5 }, "deceleration"},
		{"减速窗口超过闪避时长", func(c *PlayerConfig) { c.DodgeSlowdownTime = 2 }, "dodgeSlowdownTime"},
		{"生命为零", func(c *PlayerConfig) { c.MaxHP = 0 }, "maxHP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := loadRepoPlayerConfig(t)
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Error %q should mention %q", err, tt.wantErr)
			}
		})
	}
}
