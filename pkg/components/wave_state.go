package components

import "github.com/gonewx/ammodillo/pkg/config"

// WaveStateComponent 波次调度状态
//
// Pending 是尚未激活的波次（先进先出）；TimeWithoutEnemies 是场上
// 连续没有敌人的时长，只在敌人集合为空时累加，出现敌人即清零。
type WaveStateComponent struct {
	Pending            []config.WaveDefinition
	TimeWithoutEnemies float64
	WavesActivated     int
	BossFightTriggered bool
}
