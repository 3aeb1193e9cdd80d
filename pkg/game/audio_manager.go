package game

import (
	"log"

	synth "github.com/gonewx/ammodillo/internal/audio"
	"github.com/gonewx/ammodillo/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// 音效资源ID
const (
	SoundHit        = "SOUND_HIT"         // 玩家被子弹或敌人击中
	SoundCatch      = "SOUND_CATCH"       // 闪避接住子弹
	SoundShoot      = "SOUND_SHOOT"       // 玩家反击
	SoundEnemyHit   = "SOUND_ENEMY_HIT"   // 敌人被击中
	SoundEnemyDeath = "SOUND_ENEMY_DEATH" // 敌人死亡
	SoundPlayerDie  = "SOUND_PLAYER_DIE"  // 玩家死亡
	SoundWave       = "SOUND_WAVE"        // 新波次出现
	SoundBossLand   = "SOUND_BOSS_LAND"   // Boss 落地
)

// AudioSampleRate 音频上下文采样率
const AudioSampleRate = 48000

// soundTones 每个音效对应的合成参数（游戏不附带音频文件）
var soundTones = map[string]synth.Tone{
	SoundHit:        {Frequency: 220, EndFrequency: 110, Duration: 0.18, Volume: 0.6, Noise: 0.4},
	SoundCatch:      {Frequency: 660, EndFrequency: 990, Duration: 0.08, Volume: 0.4, Attack: 0.005},
	SoundShoot:      {Frequency: 880, EndFrequency: 440, Duration: 0.07, Volume: 0.35},
	SoundEnemyHit:   {Frequency: 330, EndFrequency: 260, Duration: 0.06, Volume: 0.3, Noise: 0.2},
	SoundEnemyDeath: {Frequency: 440, EndFrequency: 120, Duration: 0.3, Volume: 0.5, Noise: 0.3},
	SoundPlayerDie:  {Frequency: 300, EndFrequency: 60, Duration: 0.8, Volume: 0.6, Noise: 0.2},
	SoundWave:       {Frequency: 520, EndFrequency: 780, Duration: 0.25, Volume: 0.4, Attack: 0.02},
	SoundBossLand:   {Frequency: 80, EndFrequency: 40, Duration: 0.6, Volume: 0.8, Noise: 0.6},
}

// AudioManager 音频管理器
// 职责：
//   - 统一管理遭遇战中所有音效的播放
//   - 实现音量控制（从 SettingsManager 读取设置）
//   - 音频上下文为 nil 时进入静音模式（测试与无头模拟使用）
type AudioManager struct {
	audioContext    *audio.Context
	settingsManager *SettingsManager         // 设置管理器（用于读取音量设置，可为 nil）
	soundPlayers    map[string]*audio.Player // 音效播放器缓存（资源ID -> 播放器）
	played          map[string]int           // 每个音效的播放次数
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: 音频上下文，可为 nil（静音模式）
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		audioContext:    ctx,
		settingsManager: sm,
		soundPlayers:    make(map[string]*audio.Player),
		played:          make(map[string]int),
	}
}

// PlaySound 播放音效
// 音效使用 SoundVolume 设置控制音量，单次播放后停止
//
// 参数：
//   - soundID: 音效资源ID（如 SoundHit）
//
// 返回：
//   - bool: 是否实际发声（静音模式或音效关闭时返回 false）
func (am *AudioManager) PlaySound(soundID string) bool {
	if _, known := soundTones[soundID]; !known {
		log.Printf("[AudioManager] Warning: Sound not found: %s", soundID)
		return false
	}
	am.played[soundID]++

	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}

	player := am.getSoundPlayer(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(am.getSoundVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()

	return true
}

// PlayCount 返回音效被请求播放的次数（包括静音模式下的请求）
func (am *AudioManager) PlayCount(soundID string) int {
	return am.played[soundID]
}

// SetSoundVolume 设置音效音量
// 此方法会影响后续播放的所有音效
//
// 参数：
//   - volume: 音量值 (0.0 ~ 1.0)
func (am *AudioManager) SetSoundVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetSoundVolume(volume)
	}

	for _, player := range am.soundPlayers {
		player.SetVolume(utils.Clamp01(volume))
	}
}

// GetSoundVolume 获取当前音效音量
func (am *AudioManager) GetSoundVolume() float64 {
	return am.getSoundVolume()
}

// PreloadSounds 预先合成全部音效，避免首次播放时的延迟
func (am *AudioManager) PreloadSounds() {
	if am.audioContext == nil {
		return
	}
	for soundID := range soundTones {
		am.getSoundPlayer(soundID)
	}
	log.Printf("[AudioManager] Preloaded %d sounds", len(am.soundPlayers))
}

// getSoundPlayer 获取或合成音效播放器
func (am *AudioManager) getSoundPlayer(soundID string) *audio.Player {
	if am.audioContext == nil {
		return nil
	}
	if player, exists := am.soundPlayers[soundID]; exists {
		return player
	}

	stream, err := synth.Synthesize(soundTones[soundID], am.audioContext.SampleRate())
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to synthesize sound %s: %v", soundID, err)
		return nil
	}
	player := am.audioContext.NewPlayerFromBytes(stream.Bytes())
	am.soundPlayers[soundID] = player
	return player
}

// getSoundVolume 获取音效音量设置
func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return 0.8 // 默认值
}
