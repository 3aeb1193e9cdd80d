package game

import (
	"fmt"
	"log"

	"github.com/gonewx/ammodillo/pkg/utils"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// GameSettings 全局游戏设置（音效、镜头震动、显示）
type GameSettings struct {
	// 音频设置
	SoundVolume  float64 `yaml:"soundVolume"`  // 音效音量 0.0 ~ 1.0
	SoundEnabled bool    `yaml:"soundEnabled"` // 音效开关

	// 画面设置
	ScreenShake bool `yaml:"screenShake"` // 镜头震动开关
	ShowHUD     bool `yaml:"showHUD"`     // 是否显示调试信息
	Fullscreen  bool `yaml:"fullscreen"`  // 启动时是否全屏
}

// DefaultSettings 返回默认设置
func DefaultSettings() *GameSettings {
	return &GameSettings{
		SoundVolume:  0.8,
		SoundEnabled: true,
		ScreenShake:  true,
		ShowHUD:      true,
		Fullscreen:   false,
	}
}

// SettingsManager 设置管理器
// 负责游戏设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *GameSettings  // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例
//   - error: 保留的错误返回，加载失败只记录日志并回退到默认设置
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// 从默认值开始解析，旧版本文件缺少的字段保持默认
	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.SoundVolume = utils.Clamp01(loaded.SoundVolume)

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

// SetSoundVolume 设置音效音量（限制在 0.0 ~ 1.0）
// 仅修改内存中的设置，需调用 Save() 持久化
func (sm *SettingsManager) SetSoundVolume(volume float64) {
	sm.settings.SoundVolume = utils.Clamp01(volume)
}

// SettingToggle 可在游戏中切换的开关项
type SettingToggle int

const (
	ToggleSound SettingToggle = iota
	ToggleScreenShake
	ToggleHUD
	ToggleFullscreen
)

// String 返回开关名称（日志用）
func (t SettingToggle) String() string {
	switch t {
	case ToggleSound:
		return "Sound"
	case ToggleScreenShake:
		return "ScreenShake"
	case ToggleHUD:
		return "HUD"
	case ToggleFullscreen:
		return "Fullscreen"
	default:
		return "Unknown"
	}
}

// field 返回开关对应的设置字段
func (sm *SettingsManager) field(t SettingToggle) *bool {
	switch t {
	case ToggleSound:
		return &sm.settings.SoundEnabled
	case ToggleScreenShake:
		return &sm.settings.ScreenShake
	case ToggleHUD:
		return &sm.settings.ShowHUD
	case ToggleFullscreen:
		return &sm.settings.Fullscreen
	default:
		return nil
	}
}

// Set 设置开关项
func (sm *SettingsManager) Set(t SettingToggle, enabled bool) {
	if f := sm.field(t); f != nil {
		*f = enabled
	}
}

// Toggle 翻转开关项并返回新值
func (sm *SettingsManager) Toggle(t SettingToggle) bool {
	f := sm.field(t)
	if f == nil {
		return false
	}
	*f = !*f
	log.Printf("[SettingsManager] %s -> %v", t, *f)
	return *f
}
