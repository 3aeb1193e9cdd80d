package config

import (
	"strings"
	"testing"
)

const validArenaYAML = `
tileSize: 32
maxDeltaTime: 0.05
waveSpawnGap: 5
ellipse: {majorRadius: 12, minorRadius: 8, margin: 0.5}
safeZone: {center: {x: 0, y: -8}, radius: 2}
arches:
  center: {x: 0, y: -8}
camera: {followRate: 2, zoomRate: 5, tightness: 0.7, shakeFrequency: 36, shakeDecay: 0.1, shakeLinearDecay: 0.8}
bossSequence:
  windupDuration: 3.5
  launchDelay: 2.5
  launchVelocity: {x: 0, y: 6}
  riseDuration: 0.5
  fallStart: {x: 0, y: -16}
  fallSpeed: 20
  landY: -3
  landShake: 1
  settleDuration: 1
`

func TestParseArenaConfig(t *testing.T) {
	cfg, err := ParseArenaConfig([]byte(validArenaYAML))
	if err != nil {
		t.Fatalf("ParseArenaConfig failed: %v", err)
	}

	bounds := cfg.Bounds()
	if bounds.MajorRadius != 12 || bounds.MinorRadius != 8 || bounds.Margin != 0.5 {
		t.Errorf("Unexpected ellipse: %+v", bounds)
	}
	if bounds.SafeCenter.Y != -8 || bounds.SafeRadius != 2 {
		t.Errorf("Unexpected safe zone: %+v", bounds)
	}

	center, ok := cfg.Arch("center")
	if !ok || center.Y != -8 {
		t.Errorf("Arch(center) = %v, %v", center, ok)
	}
	if _, ok := cfg.Arch("left"); ok {
		t.Error("Arch(left) should not exist in this config")
	}
}

func TestArenaConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ArenaConfig)
		wantErr string
	}{
		{"零半径", func(c *ArenaConfig) { c.Ellipse.MinorRadius = 0 }, "ellipse.minorRadius"},
		{"负步长上限", func(c *ArenaConfig) { c.MaxDeltaTime = -1 }, "maxDeltaTime"},
		{"收缩量过大", func(c *ArenaConfig) { c.Ellipse.Margin = 8 }, "ellipse.margin"},
		{"起跳晚于阶段结束", func(c *ArenaConfig) { c.BossSequence.LaunchDelay = 4 }, "launchDelay"},
		{"下落起点低于落地线", func(c *ArenaConfig) { c.BossSequence.FallStart.Y = 0 }, "fallStart"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseArenaConfig([]byte(validArenaYAML))
			if err != nil {
				t.Fatalf("ParseArenaConfig failed: %v", err)
			}
			tt.mutate(cfg)
			err = cfg.Validate()
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Error %q should mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseArenaConfigInvalidYAML(t *testing.T) {
	_, err := ParseArenaConfig([]byte("tileSize: [oops"))
	if err == nil {
		t.Fatal("Expected parse error")
	}
	if !strings.Contains(err.Error(), "failed to parse arena config") {
		t.Errorf("Unexpected error: %v", err)
	}
}
